package workload

import (
	"fmt"
	"math/rand"

	"github.com/inference-sim/quantum-sim/sim"
)

// RandomSpec parameterizes a seeded synthetic workload.
type RandomSpec struct {
	Seed        int64 `yaml:"seed"`
	Count       int   `yaml:"count"`
	MinWork     int64 `yaml:"min_work"`
	MaxWork     int64 `yaml:"max_work"`
	MaxGap      int64 `yaml:"max_gap"`      // inter-arrival gap drawn from [0, MaxGap]
	MaxPriority int64 `yaml:"max_priority"` // weight drawn from [1, MaxPriority]; 0 means always 1
}

// Validate checks parameter ranges.
func (r *RandomSpec) Validate() error {
	if r.Count <= 0 {
		return fmt.Errorf("random.count must be positive, got %d", r.Count)
	}
	if r.MinWork <= 0 {
		return fmt.Errorf("random.min_work must be positive, got %d", r.MinWork)
	}
	if r.MaxWork < r.MinWork {
		return fmt.Errorf("random.max_work (%d) must be >= min_work (%d)", r.MaxWork, r.MinWork)
	}
	if r.MaxGap < 0 {
		return fmt.Errorf("random.max_gap must be non-negative, got %d", r.MaxGap)
	}
	if r.MaxPriority < 0 {
		return fmt.Errorf("random.max_priority must be non-negative, got %d", r.MaxPriority)
	}
	return nil
}

// GenerateRandom draws a workload from spec. Deterministic given the same seed.
// IDs are sequential from 1 in arrival order.
func GenerateRandom(spec RandomSpec) (*Static, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid random workload: %w", err)
	}
	rng := rand.New(rand.NewSource(spec.Seed))

	arrivals := make([]Arrival, 0, spec.Count)
	tick := int64(0)
	for i := 0; i < spec.Count; i++ {
		if i > 0 && spec.MaxGap > 0 {
			tick += rng.Int63n(spec.MaxGap + 1)
		}
		work := spec.MinWork + rng.Int63n(spec.MaxWork-spec.MinWork+1)
		weight := int64(1)
		if spec.MaxPriority > 1 {
			weight = 1 + rng.Int63n(spec.MaxPriority)
		}
		arrivals = append(arrivals, Arrival{
			Tick:    tick,
			Process: sim.ProcessSpec{ID: uint32(i + 1), WorkTotal: work, PriorityWeight: weight},
		})
	}
	return NewStatic(arrivals), nil
}
