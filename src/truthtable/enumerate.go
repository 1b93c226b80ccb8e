package truthtable

import (
	"fmt"
	"strconv"

	"github.com/eriklarko/logic-solver/src/boolexpr"
	"github.com/samber/lo"
)

// MaxNames is the largest number of names Enumerate accepts.
const MaxNames = strconv.IntSize - 2

// Enumerate returns every assignment of true/false to the given names, 2^n of
// them, counting in binary from all-false to all-true with the last name as the
// least significant bit:
//
//	Enumerate([]string{"A", "B"})
//	// {A:F B:F}, {A:F B:T}, {A:T B:F}, {A:T B:T}
//
// No names yields a single, empty assignment. Names are not de-duplicated; if
// a name appears twice, its later position decides its value. The result grows
// exponentially, callers should cap len(names).
//
// Enumerate panics if there are more names than MaxNames, as 2^n rows can then
// no longer be counted with an int.
func Enumerate(names []string) []boolexpr.Assignment {
	n := len(names)
	if n > MaxNames {
		panic(fmt.Sprintf("cannot enumerate %d names, at most %d are supported", n, MaxNames))
	}
	return lo.Times(1<<n, func(row int) boolexpr.Assignment {
		assignment := make(boolexpr.Assignment, n)
		for i, name := range names {
			bit := n - 1 - i
			assignment[name] = row&(1<<bit) != 0
		}
		return assignment
	})
}
