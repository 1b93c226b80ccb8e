package tui

import (
	"fmt"

	"github.com/disiqueira/gotree/v3"
	"github.com/eriklarko/logic-solver/src/boolexpr"
)

// PrintTree writes the parsed structure of expr, one node per line, followed
// by its fully parenthesized form.
func (t *TUI) PrintTree(expr boolexpr.Expression) {
	fmt.Fprint(t.output, Tree(expr).Print())
	fmt.Fprintln(t.output, boolexpr.Render(expr))
}

// Tree converts expr into a printable tree. Operators label inner nodes,
// literals and variable names label the leaves.
func Tree(expr boolexpr.Expression) gotree.Tree {
	builder := &treeBuilder{}
	expr.Accept(builder)
	return builder.tree
}

type treeBuilder struct {
	tree gotree.Tree
}

func (b *treeBuilder) AcceptLiteral(l *boolexpr.Literal) {
	b.tree = gotree.New(boolexpr.Render(l))
}

func (b *treeBuilder) AcceptVariable(v *boolexpr.Variable) {
	b.tree = gotree.New(v.Name)
}

func (b *treeBuilder) AcceptUnaryOp(u *boolexpr.UnaryOp) {
	node := gotree.New(u.Operator.String())
	node.AddTree(Tree(u.Operand))
	b.tree = node
}

func (b *treeBuilder) AcceptBinaryOp(op *boolexpr.BinaryOp) {
	node := gotree.New(op.Operator.String())
	node.AddTree(Tree(op.Left))
	node.AddTree(Tree(op.Right))
	b.tree = node
}
