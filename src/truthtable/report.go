package truthtable

import (
	"errors"

	"github.com/eriklarko/logic-solver/src/boolexpr"
)

// Report lists row indices by outcome. Rows that failed because of a missing
// variable are listed under that variable's name in Unbound; any other failure
// ends up in Errored.
type Report struct {
	True  []int
	False []int

	Unbound map[string][]int
	Errored []int
}

func (r *Report) RecordRow(index int, row Row) {
	if row.Err != nil {
		r.RecordFailure(index, row.Err)
		return
	}
	r.RecordValue(index, row.Value)
}

func (r *Report) RecordValue(index int, value bool) {
	if value {
		r.True = append(r.True, index)
	} else {
		r.False = append(r.False, index)
	}
}

func (r *Report) RecordFailure(index int, err error) {
	var unbound *boolexpr.UnboundVariableError
	if !errors.As(err, &unbound) {
		r.Errored = append(r.Errored, index)
		return
	}

	if r.Unbound == nil {
		r.Unbound = make(map[string][]int)
	}
	r.Unbound[unbound.VariableName] = append(r.Unbound[unbound.VariableName], index)
}

func (r *Report) HasFailures() bool {
	return len(r.Unbound) > 0 || len(r.Errored) > 0
}
