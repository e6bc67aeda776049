package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/inference-sim/quantum-sim/sim"
)

// ErrEmptyWorkload is returned when a workload file lists no processes.
var ErrEmptyWorkload = errors.New("workload has no processes")

// LoadCSV reads processes from CSV rows of the form
//
//	id,work[,arrival[,priority]]
//
// Lines starting with '#' are comments. A first row whose id column is not a
// number is taken as a header and skipped. Missing arrival means tick 0;
// missing priority means weight 1.
func LoadCSV(r io.Reader) (*Static, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading workload csv: %w", err)
	}

	arrivals := make([]Arrival, 0, len(rows))
	seen := make(map[uint32]bool, len(rows))
	for i, row := range rows {
		if i == 0 && len(row) > 0 && !isNumber(row[0]) {
			continue
		}
		a, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("workload csv row %d: %w", i+1, err)
		}
		if seen[a.Process.ID] {
			return nil, fmt.Errorf("workload csv row %d: duplicate id %d", i+1, a.Process.ID)
		}
		seen[a.Process.ID] = true
		arrivals = append(arrivals, a)
	}
	if len(arrivals) == 0 {
		return nil, ErrEmptyWorkload
	}
	return NewStatic(arrivals), nil
}

func parseRow(row []string) (Arrival, error) {
	if len(row) < 2 || len(row) > 4 {
		return Arrival{}, fmt.Errorf("expected 2 to 4 columns, got %d", len(row))
	}
	id, err := strconv.ParseUint(strings.TrimSpace(row[0]), 10, 32)
	if err != nil {
		return Arrival{}, fmt.Errorf("id: %w", err)
	}
	work, err := parsePositive("work", row[1])
	if err != nil {
		return Arrival{}, err
	}
	a := Arrival{Process: sim.ProcessSpec{ID: uint32(id), WorkTotal: work, PriorityWeight: 1}}
	if len(row) >= 3 {
		if a.Tick, err = parseNonNegative("arrival", row[2]); err != nil {
			return Arrival{}, err
		}
	}
	if len(row) == 4 {
		if a.Process.PriorityWeight, err = parsePositive("priority", row[3]); err != nil {
			return Arrival{}, err
		}
	}
	return a, nil
}

func parsePositive(name, s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", name, v)
	}
	return v, nil
}

func parseNonNegative(name, s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s must be non-negative, got %d", name, v)
	}
	return v, nil
}

func isNumber(s string) bool {
	_, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return err == nil
}
