package workload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSpec_StaticYAML_BuildsSource(t *testing.T) {
	path := writeTemp(t, "w.yaml", `
kind: static
processes:
  - {id: 1, arrival: 0, work: 10}
  - {id: 2, arrival: 2, work: 5, priority: 2}
`)
	g, err := Load(path)
	require.NoError(t, err)

	at0 := g.Arrivals(0)
	require.Len(t, at0, 1)
	assert.Equal(t, int64(10), at0[0].WorkTotal)

	at2 := g.Arrivals(2)
	require.Len(t, at2, 1)
	assert.Equal(t, int64(2), at2[0].PriorityWeight)
	assert.True(t, g.Exhausted(3))
}

func TestLoadSpec_UnknownField_Rejected(t *testing.T) {
	path := writeTemp(t, "w.yaml", `
kind: static
procesess:
  - {id: 1, work: 10}
`)
	_, err := LoadSpec(path)
	assert.Error(t, err)
}

func TestLoadSpec_MissingFile_Error(t *testing.T) {
	_, err := LoadSpec(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWorkloadSpec_Validate(t *testing.T) {
	tests := []struct {
		name    string
		spec    WorkloadSpec
		wantErr string
	}{
		{"unknown kind", WorkloadSpec{Kind: "bursty"}, "unknown workload kind"},
		{"static empty", WorkloadSpec{}, "at least one process"},
		{"zero work", WorkloadSpec{Processes: []ProcessSpec{{ID: 1, Work: 0}}}, "work must be positive"},
		{"negative arrival", WorkloadSpec{Processes: []ProcessSpec{{ID: 1, Work: 1, Arrival: -1}}}, "arrival"},
		{"duplicate id", WorkloadSpec{Processes: []ProcessSpec{{ID: 1, Work: 1}, {ID: 1, Work: 2}}}, "duplicate id"},
		{"random missing section", WorkloadSpec{Kind: "random"}, "random section"},
		{"cyclic ok", WorkloadSpec{Kind: "cyclic"}, ""},
		{"batch ok", WorkloadSpec{Kind: "batch"}, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.spec.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tc.wantErr), "error %q should contain %q", err, tc.wantErr)
		})
	}
}

func TestFromSpec_Kinds(t *testing.T) {
	g, err := FromSpec(&WorkloadSpec{Kind: "cyclic"})
	require.NoError(t, err)
	assert.IsType(t, Cyclic{}, g)

	g, err = FromSpec(&WorkloadSpec{Kind: "batch"})
	require.NoError(t, err)
	assert.IsType(t, &Static{}, g)

	g, err = FromSpec(&WorkloadSpec{Kind: "random", Random: &RandomSpec{Seed: 1, Count: 3, MinWork: 1, MaxWork: 3}})
	require.NoError(t, err)
	assert.Equal(t, 3, g.(*Static).Len())
}
