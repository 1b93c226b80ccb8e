package boolexpr

import (
	"fmt"

	"github.com/samber/lo"
)

// Assignment maps variable names to their truth values.
type Assignment map[string]bool

// Expression is a node in a parsed propositional formula. The set of node
// types is closed: Literal, Variable, UnaryOp and BinaryOp.
//
// Expressions are never mutated after parsing, so the same tree can be solved
// against any number of assignments, from any number of goroutines.
type Expression interface {
	// Solve evaluates the expression using the values in the assignment.
	Solve(assignment Assignment) (bool, error)
	Accept(Visitor)
	String() string

	sealed()
}

// BinaryOperator is a connective joining two operands.
type BinaryOperator int

const (
	And BinaryOperator = iota
	Or
	Conditional
	Biconditional
)

var binarySymbols = map[BinaryOperator]string{
	And:           "∧",
	Or:            "∨",
	Conditional:   "⇒",
	Biconditional: "⇔",
}

func (o BinaryOperator) String() string {
	if s, ok := binarySymbols[o]; ok {
		return s
	}
	return fmt.Sprintf("BinaryOperator(%d)", int(o))
}

func (o BinaryOperator) apply(left, right bool) (bool, error) {
	switch o {
	case And:
		return left && right, nil
	case Or:
		return left || right, nil
	case Conditional:
		return !left || right, nil
	case Biconditional:
		return left == right, nil
	}
	return false, fmt.Errorf("unknown operator: %v", o)
}

// UnaryOperator is a connective applied to a single operand.
type UnaryOperator int

const (
	Not UnaryOperator = iota
)

func (o UnaryOperator) String() string {
	if o == Not {
		return "¬"
	}
	return fmt.Sprintf("UnaryOperator(%d)", int(o))
}

func (o UnaryOperator) apply(operand bool) (bool, error) {
	if o == Not {
		return !operand, nil
	}
	return false, fmt.Errorf("unknown operator: %v", o)
}

// Literal is a fixed truth value.
type Literal struct {
	Value bool
}

// Variable is a named proposition whose value comes from the assignment.
type Variable struct {
	Name string
}

// UnaryOp applies Operator to Operand, e.g. ¬A.
type UnaryOp struct {
	Operator UnaryOperator
	Operand  Expression
}

// BinaryOp combines Left and Right with Operator, e.g. (A ∧ B).
type BinaryOp struct {
	Left     Expression
	Operator BinaryOperator
	Right    Expression
}

func (*Literal) sealed()  {}
func (*Variable) sealed() {}
func (*UnaryOp) sealed()  {}
func (*BinaryOp) sealed() {}

func (l *Literal) Accept(v Visitor)  { v.AcceptLiteral(l) }
func (n *Variable) Accept(v Visitor) { v.AcceptVariable(n) }
func (u *UnaryOp) Accept(v Visitor)  { v.AcceptUnaryOp(u) }
func (b *BinaryOp) Accept(v Visitor) { v.AcceptBinaryOp(b) }

func (l *Literal) String() string  { return Render(l) }
func (n *Variable) String() string { return Render(n) }
func (u *UnaryOp) String() string  { return Render(u) }
func (b *BinaryOp) String() string { return Render(b) }

// Variables returns the names of all variables in the expression, in the order
// they first appear when reading the formula left to right.
func Variables(expr Expression) []string {
	vc := &variableCollector{}
	expr.Accept(vc)
	return lo.Uniq(vc.names)
}

// HasVariables reports whether the expression references at least one
// variable. Expressions without variables can be solved with an empty
// assignment.
func HasVariables(expr Expression) bool {
	return len(Variables(expr)) > 0
}
