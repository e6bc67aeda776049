package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/quantum-sim/sim"
)

func TestCyclic_ArrivalsFollowPattern(t *testing.T) {
	g := NewCyclic()

	// GIVEN the first period
	// THEN arrivals appear only at the pattern offsets
	var ids []uint32
	var work []int64
	for tick := int64(0); tick < cyclicPeriod; tick++ {
		for _, p := range g.Arrivals(tick) {
			ids = append(ids, p.ID)
			work = append(work, p.WorkTotal)
		}
	}
	assert.Equal(t, []uint32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, ids)
	assert.Equal(t, []int64{60, 20, 10, 70, 50, 30, 40, 50, 70, 20}, work)
	assert.Empty(t, g.Arrivals(1))
}

func TestCyclic_SecondPeriod_ContinuesIDs(t *testing.T) {
	g := NewCyclic()
	got := g.Arrivals(cyclicPeriod + 3)
	require.Len(t, got, 1)
	assert.Equal(t, uint32(12), got[0].ID)
	assert.Equal(t, int64(20), got[0].WorkTotal)
}

func TestCyclic_SameTickTwice_SameIDs(t *testing.T) {
	// Sources are pure functions of the tick.
	g := NewCyclic()
	assert.Equal(t, g.Arrivals(45), g.Arrivals(45))
	assert.False(t, g.Exhausted(1_000_000))
}

func TestBatch_TenProcessesOnePerTick(t *testing.T) {
	b := NewBatch()
	assert.Equal(t, 10, b.Len())
	for tick := int64(0); tick < 10; tick++ {
		got := b.Arrivals(tick)
		require.Len(t, got, 1, "tick %d", tick)
		assert.Equal(t, uint32(tick), got[0].ID)
		assert.Equal(t, batchWork[tick], got[0].WorkTotal)
	}
	assert.False(t, b.Exhausted(9))
	assert.True(t, b.Exhausted(10))
}

func TestStatic_SameTick_PreservesInputOrder(t *testing.T) {
	s := NewStatic([]Arrival{
		{Tick: 5, Process: sim.ProcessSpec{ID: 3, WorkTotal: 1}},
		{Tick: 0, Process: sim.ProcessSpec{ID: 1, WorkTotal: 1}},
		{Tick: 5, Process: sim.ProcessSpec{ID: 2, WorkTotal: 1}},
	})
	assert.Len(t, s.Arrivals(0), 1)
	at5 := s.Arrivals(5)
	require.Len(t, at5, 2)
	assert.Equal(t, uint32(3), at5[0].ID)
	assert.Equal(t, uint32(2), at5[1].ID)
	assert.False(t, s.Exhausted(5))
	assert.True(t, s.Exhausted(6))
}

func TestStatic_Empty_ExhaustedImmediately(t *testing.T) {
	s := NewStatic(nil)
	assert.True(t, s.Exhausted(0))
	assert.Empty(t, s.Arrivals(0))
}

func TestGenerateRandom_Deterministic(t *testing.T) {
	spec := RandomSpec{Seed: 42, Count: 25, MinWork: 5, MaxWork: 50, MaxGap: 3, MaxPriority: 2}
	a, err := GenerateRandom(spec)
	require.NoError(t, err)
	b, err := GenerateRandom(spec)
	require.NoError(t, err)

	assert.Equal(t, 25, a.Len())
	for tick := int64(0); !a.Exhausted(tick); tick++ {
		assert.Equal(t, a.Arrivals(tick), b.Arrivals(tick))
		for _, p := range a.Arrivals(tick) {
			assert.GreaterOrEqual(t, p.WorkTotal, int64(5))
			assert.LessOrEqual(t, p.WorkTotal, int64(50))
			assert.GreaterOrEqual(t, p.PriorityWeight, int64(1))
			assert.LessOrEqual(t, p.PriorityWeight, int64(2))
		}
	}
}

func TestGenerateRandom_InvalidSpec_Error(t *testing.T) {
	_, err := GenerateRandom(RandomSpec{Count: 3, MinWork: 10, MaxWork: 5})
	assert.Error(t, err)
}
