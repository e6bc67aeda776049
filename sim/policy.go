package sim

import (
	"cmp"
	"fmt"
	"sort"
)

// Comparator orders two queue entries: negative if a runs before b, positive
// if b runs before a, zero if the policy does not distinguish them.
// The engine sorts stably, so entries that compare equal keep their order.
// Implementations MUST be pure.
type Comparator func(a, b QueueEntry) int

// FirstComeFirstServed orders entries by admission sequence.
// Sequence numbers are unique, so it never reports a tie.
func FirstComeFirstServed(a, b QueueEntry) int {
	return cmp.Compare(a.Seq, b.Seq)
}

// ShortestJobNext orders entries by the total work originally requested.
func ShortestJobNext(a, b QueueEntry) int {
	return cmp.Compare(a.Process.WorkTotal, b.Process.WorkTotal)
}

// ShortestRemainingTime orders entries by the work they still have left.
// Warning: like SJN, long processes can starve under sustained short arrivals.
func ShortestRemainingTime(a, b QueueEntry) int {
	return cmp.Compare(a.Process.WorkRemaining, b.Process.WorkRemaining)
}

// Policy names one of the built-in orderings.
type Policy string

const (
	PolicyFCFS Policy = "fcfs"
	PolicySJN  Policy = "sjn"
	PolicySRT  Policy = "srt"
)

// policyAliases maps every accepted spelling to its canonical policy.
// Empty string maps to fcfs (for CLI flag default compatibility).
var policyAliases = map[string]Policy{
	"":                   PolicyFCFS,
	"fcfs":               PolicyFCFS,
	"first-come":         PolicyFCFS,
	"sjn":                PolicySJN,
	"sjf":                PolicySJN,
	"shortest-next":      PolicySJN,
	"srt":                PolicySRT,
	"srtf":               PolicySRT,
	"shortest-remaining": PolicySRT,
}

// AllPolicies returns the built-in policies in reporting order.
func AllPolicies() []Policy {
	return []Policy{PolicyFCFS, PolicySJN, PolicySRT}
}

// IsValidPolicy reports whether name is a recognized policy name or alias.
func IsValidPolicy(name string) bool {
	_, ok := policyAliases[name]
	return ok
}

// ValidPolicyNames returns every accepted policy spelling, sorted, without the empty default.
func ValidPolicyNames() []string {
	names := make([]string, 0, len(policyAliases))
	for name := range policyAliases {
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// ParsePolicy resolves a policy name or alias.
func ParsePolicy(name string) (Policy, error) {
	p, ok := policyAliases[name]
	if !ok {
		return "", fmt.Errorf("unknown policy %q; valid: %v", name, ValidPolicyNames())
	}
	return p, nil
}

// Comparator returns the ordering function for p. Panics on an unknown policy.
func (p Policy) Comparator() Comparator {
	switch p {
	case PolicyFCFS:
		return FirstComeFirstServed
	case PolicySJN:
		return ShortestJobNext
	case PolicySRT:
		return ShortestRemainingTime
	default:
		panic(fmt.Sprintf("unhandled policy %q", string(p)))
	}
}

// DisplayName is the label used in reports.
func (p Policy) DisplayName() string {
	switch p {
	case PolicyFCFS:
		return "FCFS"
	case PolicySJN:
		return "Shortest Next"
	case PolicySRT:
		return "Shortest Remaining"
	default:
		return string(p)
	}
}

// NewComparator creates a Comparator by policy name.
// Empty string defaults to FirstComeFirstServed.
// Panics on unrecognized names.
func NewComparator(name string) Comparator {
	p, err := ParsePolicy(name)
	if err != nil {
		panic(err.Error())
	}
	return p.Comparator()
}
