package truthtable

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/eriklarko/logic-solver/src/boolexpr"
	"github.com/samber/lo"
)

// FailurePolicy decides what Solve does when a row cannot be evaluated.
type FailurePolicy int

const (
	// FailFast stops at the first row that fails.
	FailFast FailurePolicy = iota
	// Collect evaluates every row and keeps the error on each failing row.
	Collect
)

var policyNames = map[FailurePolicy]string{
	FailFast: "fail-fast",
	Collect:  "collect",
}

func (p FailurePolicy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("FailurePolicy(%d)", int(p))
}

// ParseFailurePolicy is the inverse of FailurePolicy.String.
func ParseFailurePolicy(name string) (FailurePolicy, error) {
	policy, ok := lo.FindKey(policyNames, name)
	if !ok {
		return FailFast, fmt.Errorf("unknown failure policy '%s', expected %s or %s", name, FailFast, Collect)
	}
	return policy, nil
}

// RowError is returned when the expression could not be evaluated for one of
// the assignments.
type RowError struct {
	Index      int
	Assignment boolexpr.Assignment
	Err        error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("failed to evaluate row %d (%v): %v", e.Index, e.Assignment, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// SolveTruthTable evaluates expr for each assignment and returns the results in
// the same order. It stops at the first assignment that misses a variable.
func SolveTruthTable(expr boolexpr.Expression, assignments []boolexpr.Assignment) ([]bool, error) {
	table, err := Solve(expr, assignments, FailFast)
	if err != nil {
		return nil, err
	}
	return table.Values(), nil
}

// Solve evaluates expr for each assignment, keeping the order of assignments.
//
// With FailFast the first failing row is returned as a *RowError and no table
// is produced. With Collect the whole table is always returned; failing rows
// have Row.Err set and the returned error joins all of them.
func Solve(expr boolexpr.Expression, assignments []boolexpr.Assignment, policy FailurePolicy) (*Table, error) {
	table := &Table{
		Rows: make([]Row, 0, len(assignments)),
	}

	var errs []error
	for i, assignment := range assignments {
		value, err := expr.Solve(assignment)
		if err != nil {
			rowErr := &RowError{Index: i, Assignment: assignment, Err: err}
			if policy == FailFast {
				return nil, rowErr
			}

			slog.Debug("failed to evaluate row", "row", i, "assignment", assignment, "error", err)
			errs = append(errs, rowErr)
			table.Rows = append(table.Rows, Row{Assignment: assignment, Err: err})
			continue
		}

		table.Rows = append(table.Rows, Row{Assignment: assignment, Value: value})
	}

	return table, errors.Join(errs...)
}

// Build enumerates all assignments of names and solves expr for each of them.
func Build(expr boolexpr.Expression, names []string, policy FailurePolicy) (*Table, error) {
	if len(names) > MaxNames {
		return nil, fmt.Errorf("cannot build a truth table over %d variables, at most %d are supported", len(names), MaxNames)
	}

	table, err := Solve(expr, Enumerate(names), policy)
	if table != nil {
		table.Variables = names
	}
	return table, err
}
