package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SimConfig holds simulation configuration, loadable from a YAML file.
// Nil pointer fields mean "not set in YAML"; they do not override CLI defaults.
// String fields use empty string for "not set".
type SimConfig struct {
	Policy        string         `yaml:"policy"`
	Quantum       *int64         `yaml:"quantum"`
	ContextSwitch *int64         `yaml:"context_switch"`
	Horizon       *int64         `yaml:"horizon"`
	Workload      string         `yaml:"workload"`
	Reports       []ReportConfig `yaml:"reports,omitempty"`
}

// ReportConfig is one (quantum, context switch) pair compared by the report command.
type ReportConfig struct {
	Quantum       int64 `yaml:"quantum"`
	ContextSwitch int64 `yaml:"context_switch"`
}

// LoadSimConfig reads and parses a YAML simulation configuration file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadSimConfig(path string) (*SimConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sim config: %w", err)
	}
	var cfg SimConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing sim config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the policy name and parameter ranges are valid.
func (c *SimConfig) Validate() error {
	if !IsValidPolicy(c.Policy) {
		return fmt.Errorf("unknown policy %q; valid: %v", c.Policy, ValidPolicyNames())
	}
	if c.Quantum != nil && *c.Quantum < 0 {
		return fmt.Errorf("quantum must be non-negative, got %d", *c.Quantum)
	}
	if c.ContextSwitch != nil && *c.ContextSwitch < 0 {
		return fmt.Errorf("context_switch must be non-negative, got %d", *c.ContextSwitch)
	}
	if c.Horizon != nil && *c.Horizon < 0 {
		return fmt.Errorf("horizon must be non-negative, got %d", *c.Horizon)
	}
	for i, r := range c.Reports {
		if r.Quantum <= 0 {
			return fmt.Errorf("reports[%d]: quantum must be positive, got %d", i, r.Quantum)
		}
		if r.ContextSwitch < 0 {
			return fmt.Errorf("reports[%d]: context_switch must be non-negative, got %d", i, r.ContextSwitch)
		}
	}
	return nil
}
