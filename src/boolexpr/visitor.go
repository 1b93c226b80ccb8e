package boolexpr

import (
	"strings"
)

// Visitor is called back with the concrete type of the node it visits.
// Visitors that need the children call Accept on them themselves.
type Visitor interface {
	AcceptLiteral(*Literal)
	AcceptVariable(*Variable)
	AcceptUnaryOp(*UnaryOp)
	AcceptBinaryOp(*BinaryOp)
}

// Render returns the canonical text of an expression. Binary nodes are fully
// parenthesized and operators use their logic symbols, e.g.
//
//	(¬A ∧ (B ⇒ true))
//
// The output can be fed back to Parse.
func Render(expr Expression) string {
	r := &renderer{}
	expr.Accept(r)
	return r.sb.String()
}

type renderer struct {
	sb strings.Builder
}

func (r *renderer) AcceptLiteral(l *Literal) {
	if l.Value {
		r.sb.WriteString("true")
	} else {
		r.sb.WriteString("false")
	}
}

func (r *renderer) AcceptVariable(v *Variable) {
	r.sb.WriteString(v.Name)
}

func (r *renderer) AcceptUnaryOp(u *UnaryOp) {
	r.sb.WriteString(u.Operator.String())
	u.Operand.Accept(r)
}

func (r *renderer) AcceptBinaryOp(b *BinaryOp) {
	r.sb.WriteString("(")
	b.Left.Accept(r)
	r.sb.WriteString(" " + b.Operator.String() + " ")
	b.Right.Accept(r)
	r.sb.WriteString(")")
}

type variableCollector struct {
	names []string
}

func (vc *variableCollector) AcceptLiteral(*Literal) {}

func (vc *variableCollector) AcceptVariable(v *Variable) {
	vc.names = append(vc.names, v.Name)
}

func (vc *variableCollector) AcceptUnaryOp(u *UnaryOp) {
	u.Operand.Accept(vc)
}

func (vc *variableCollector) AcceptBinaryOp(b *BinaryOp) {
	b.Left.Accept(vc)
	b.Right.Accept(vc)
}
