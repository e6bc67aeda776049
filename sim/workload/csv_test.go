package workload

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCSV_HeaderCommentsAndOptionalColumns(t *testing.T) {
	in := `id,work,arrival,priority
# first process arrives at tick 0
1,10
2,15,3
3,5,3,2
`
	s, err := LoadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())

	at0 := s.Arrivals(0)
	require.Len(t, at0, 1)
	assert.Equal(t, uint32(1), at0[0].ID)
	assert.Equal(t, int64(1), at0[0].PriorityWeight)

	at3 := s.Arrivals(3)
	require.Len(t, at3, 2)
	assert.Equal(t, uint32(2), at3[0].ID)
	assert.Equal(t, int64(2), at3[1].PriorityWeight)
}

func TestLoadCSV_BadRows(t *testing.T) {
	tests := map[string]string{
		"too few columns":  "1\n",
		"bad work":         "1,abc\n",
		"zero work":        "1,0\n",
		"negative arrival": "1,5,-2\n",
		"duplicate id":     "1,5\n1,6\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadCSV(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestLoadCSV_Empty_ErrEmptyWorkload(t *testing.T) {
	_, err := LoadCSV(strings.NewReader("id,work\n"))
	assert.True(t, errors.Is(err, ErrEmptyWorkload))
}

func TestLoad_CSVExtension(t *testing.T) {
	path := writeTemp(t, "procs.CSV", "7,12,1\n")
	g, err := Load(path)
	require.NoError(t, err)
	got := g.Arrivals(1)
	require.Len(t, got, 1)
	assert.Equal(t, uint32(7), got[0].ID)
}
