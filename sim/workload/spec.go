package workload

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/quantum-sim/sim"
)

// WorkloadSpec is the top-level workload configuration.
// Loaded from YAML via LoadSpec(path).
type WorkloadSpec struct {
	Kind      string        `yaml:"kind"` // static (default), cyclic, batch, random
	Processes []ProcessSpec `yaml:"processes,omitempty"`
	Random    *RandomSpec   `yaml:"random,omitempty"`
}

// ProcessSpec is one explicitly listed process.
type ProcessSpec struct {
	ID       uint32 `yaml:"id"`
	Arrival  int64  `yaml:"arrival"`
	Work     int64  `yaml:"work"`
	Priority int64  `yaml:"priority,omitempty"`
}

var validKinds = map[string]bool{
	"": true, "static": true, "cyclic": true, "batch": true, "random": true,
}

// LoadSpec reads and parses a YAML workload specification file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadSpec(path string) (*WorkloadSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload spec: %w", err)
	}
	var spec WorkloadSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing workload spec: %w", err)
	}
	return &spec, nil
}

// Validate checks that all fields in the spec are valid.
func (s *WorkloadSpec) Validate() error {
	if !validKinds[s.Kind] {
		return fmt.Errorf("unknown workload kind %q; valid: static, cyclic, batch, random", s.Kind)
	}
	switch s.Kind {
	case "", "static":
		if len(s.Processes) == 0 {
			return fmt.Errorf("static workload requires at least one process")
		}
		seen := make(map[uint32]bool, len(s.Processes))
		for i, p := range s.Processes {
			if err := validateProcess(&p, i); err != nil {
				return err
			}
			if seen[p.ID] {
				return fmt.Errorf("processes[%d]: duplicate id %d", i, p.ID)
			}
			seen[p.ID] = true
		}
	case "random":
		if s.Random == nil {
			return fmt.Errorf("random workload requires a random section")
		}
		if err := s.Random.Validate(); err != nil {
			return err
		}
	}
	if s.Kind != "" && s.Kind != "static" && len(s.Processes) > 0 {
		logrus.Warnf("workload kind %q ignores %d listed processes", s.Kind, len(s.Processes))
	}
	return nil
}

func validateProcess(p *ProcessSpec, idx int) error {
	prefix := fmt.Sprintf("processes[%d]", idx)
	if p.Arrival < 0 {
		return fmt.Errorf("%s: arrival must be non-negative, got %d", prefix, p.Arrival)
	}
	if p.Work <= 0 {
		return fmt.Errorf("%s: work must be positive, got %d", prefix, p.Work)
	}
	if p.Priority < 0 {
		return fmt.Errorf("%s: priority must be non-negative, got %d", prefix, p.Priority)
	}
	return nil
}

// FromSpec validates spec and builds its arrival source.
func FromSpec(spec *WorkloadSpec) (sim.ArrivalSource, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload spec: %w", err)
	}
	switch spec.Kind {
	case "cyclic":
		return NewCyclic(), nil
	case "batch":
		return NewBatch(), nil
	case "random":
		return GenerateRandom(*spec.Random)
	default:
		arrivals := make([]Arrival, len(spec.Processes))
		for i, p := range spec.Processes {
			arrivals[i] = Arrival{
				Tick:    p.Arrival,
				Process: sim.ProcessSpec{ID: p.ID, WorkTotal: p.Work, PriorityWeight: p.Priority},
			}
		}
		return NewStatic(arrivals), nil
	}
}

// Load builds an arrival source from a workload file, choosing the format by
// extension: .csv files are read with LoadCSV, anything else as YAML.
func Load(path string) (sim.ArrivalSource, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening workload csv: %w", err)
		}
		defer func() { _ = f.Close() }()
		return LoadCSV(f)
	}
	spec, err := LoadSpec(path)
	if err != nil {
		return nil, err
	}
	return FromSpec(spec)
}
