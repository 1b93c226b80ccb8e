package truthtable

import (
	"fmt"

	"github.com/eriklarko/logic-solver/src/boolexpr"
	"github.com/montanaflynn/stats"
	"github.com/samber/lo"
)

// Row is the outcome of evaluating the expression for one assignment. Value
// is meaningless when Err is set.
type Row struct {
	Assignment boolexpr.Assignment
	Value      bool
	Err        error
}

// Table holds one row per assignment, in enumeration order. Variables is only
// set when the table was built from a list of names.
type Table struct {
	Variables []string
	Rows      []Row
}

// Values returns the result of every row. Failed rows read as false, check
// Failed first when the table was solved with Collect.
func (t *Table) Values() []bool {
	return lo.Map(t.Rows, func(row Row, _ int) bool {
		return row.Value
	})
}

// Failed returns the indices of the rows that could not be evaluated.
func (t *Table) Failed() []int {
	return lo.FilterMap(t.Rows, func(row Row, i int) (int, bool) {
		return i, row.Err != nil
	})
}

// SatisfiedRatio is the share of evaluated rows where the expression is true.
func (t *Table) SatisfiedRatio() (float64, error) {
	evaluated := lo.FilterMap(t.Rows, func(row Row, _ int) (float64, bool) {
		if row.Value {
			return 1, row.Err == nil
		}
		return 0, row.Err == nil
	})

	ratio, err := stats.Mean(evaluated)
	if err != nil {
		return 0, fmt.Errorf("failed to calculate ratio over %d evaluated rows: %w", len(evaluated), err)
	}
	return ratio, nil
}

type Classification int

const (
	// Undetermined means some rows failed or the table is empty.
	Undetermined Classification = iota
	Tautology
	Contradiction
	Contingency
)

func (c Classification) String() string {
	switch c {
	case Tautology:
		return "tautology"
	case Contradiction:
		return "contradiction"
	case Contingency:
		return "contingency"
	default:
		return "undetermined"
	}
}

// Classify tells whether the rows of a complete table are all true, all false
// or mixed.
func (t *Table) Classify() Classification {
	if len(t.Rows) == 0 || len(t.Failed()) > 0 {
		return Undetermined
	}

	ratio, err := t.SatisfiedRatio()
	if err != nil {
		return Undetermined
	}

	switch ratio {
	case 1:
		return Tautology
	case 0:
		return Contradiction
	default:
		return Contingency
	}
}

// Report groups the rows of the table by outcome.
func (t *Table) Report() *Report {
	report := &Report{}
	for i, row := range t.Rows {
		report.RecordRow(i, row)
	}
	return report
}
