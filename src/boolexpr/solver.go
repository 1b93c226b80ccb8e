package boolexpr

import (
	"fmt"
)

// Evaluate solves expr against the assignment. Every variable referenced by
// expr must be bound in the assignment, otherwise an *UnboundVariableError is
// returned (wrapped; use errors.As).
func Evaluate(expr Expression, assignment Assignment) (bool, error) {
	return expr.Solve(assignment)
}

func (l *Literal) Solve(Assignment) (bool, error) {
	return l.Value, nil
}

func (n *Variable) Solve(assignment Assignment) (bool, error) {
	value, ok := assignment[n.Name]
	if !ok {
		return false, NewUnboundVariableError(n.Name)
	}
	return value, nil
}

func (u *UnaryOp) Solve(assignment Assignment) (bool, error) {
	result, err := u.Operand.Solve(assignment)
	if err != nil {
		return false, fmt.Errorf("failed solving %v sub-expression: %w", u.Operator, err)
	}
	return u.Operator.apply(result)
}

// Solve evaluates the left operand, then the right one, regardless of the
// left operand's value.
func (b *BinaryOp) Solve(assignment Assignment) (bool, error) {
	leftResult, err := b.Left.Solve(assignment)
	if err != nil {
		return false, fmt.Errorf("failed solving left expression: %w", err)
	}
	rightResult, err := b.Right.Solve(assignment)
	if err != nil {
		return false, fmt.Errorf("failed solving right expression: %w", err)
	}

	return b.Operator.apply(leftResult, rightResult)
}
