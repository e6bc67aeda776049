package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sim.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSimConfig_ValidYAML(t *testing.T) {
	path := writeTempYAML(t, `
policy: srt
quantum: 8
context_switch: 4
horizon: 500
workload: procs.csv
reports:
  - {quantum: 4, context_switch: 0}
  - {quantum: 8, context_switch: 4}
`)
	cfg, err := LoadSimConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "srt", cfg.Policy)
	require.NotNil(t, cfg.Quantum)
	assert.Equal(t, int64(8), *cfg.Quantum)
	require.NotNil(t, cfg.ContextSwitch)
	assert.Equal(t, int64(4), *cfg.ContextSwitch)
	assert.Equal(t, "procs.csv", cfg.Workload)
	assert.Len(t, cfg.Reports, 2)
}

func TestLoadSimConfig_ZeroValueIsDistinctFromUnset(t *testing.T) {
	path := writeTempYAML(t, "context_switch: 0\n")
	cfg, err := LoadSimConfig(path)
	require.NoError(t, err)

	// context_switch: 0 is explicitly set (non-nil); quantum is unset (nil)
	require.NotNil(t, cfg.ContextSwitch)
	assert.Equal(t, int64(0), *cfg.ContextSwitch)
	assert.Nil(t, cfg.Quantum)
}

func TestLoadSimConfig_UnknownKey_Rejected(t *testing.T) {
	path := writeTempYAML(t, "quantom: 4\n")
	_, err := LoadSimConfig(path)
	assert.Error(t, err)
}

func TestLoadSimConfig_MissingFile(t *testing.T) {
	_, err := LoadSimConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSimConfig_Validate_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  SimConfig
	}{
		{"unknown policy", SimConfig{Policy: "lottery"}},
		{"negative quantum", SimConfig{Quantum: int64Ptr(-1)}},
		{"negative switch", SimConfig{ContextSwitch: int64Ptr(-3)}},
		{"negative horizon", SimConfig{Horizon: int64Ptr(-3)}},
		{"zero report quantum", SimConfig{Reports: []ReportConfig{{Quantum: 0}}}},
		{"negative report switch", SimConfig{Reports: []ReportConfig{{Quantum: 4, ContextSwitch: -1}}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.cfg.Validate())
		})
	}
}

func TestSimConfig_Validate_EmptyIsValid(t *testing.T) {
	assert.NoError(t, (&SimConfig{}).Validate())
}
