package boolexpr_test

import (
	"testing"

	"github.com/eriklarko/logic-solver/src/boolexpr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiterals(t *testing.T) {
	tests := map[string]bool{
		"true":  true,
		"false": false,
		"True":  true,
		"fAlSe": false,
	}
	runSolverTests(t, tests, boolexpr.Assignment{})
}

func TestVariables(t *testing.T) {
	assignment := boolexpr.Assignment{
		"A":  true,
		"B":  false,
		"AB": true,
	}
	tests := map[string]bool{
		"A":  true,
		"B":  false,
		"AB": true,

		"not A": false,
		"not B": true,

		"A and B": false,
		"A or B":  true,
	}
	runSolverTests(t, tests, assignment)
}

func TestNot(t *testing.T) {
	tests := map[string]bool{
		"not true":          false,
		"not false":         true,
		"not not true":      true,
		"¬false":            true,
		"not (not (false))": false,
	}
	runSolverTests(t, tests, boolexpr.Assignment{})
}

func TestAnd(t *testing.T) {
	tests := map[string]bool{
		"true and true":   true,
		"true and false":  false,
		"false and true":  false,
		"false and false": false,
	}
	runSolverTests(t, tests, boolexpr.Assignment{})
}

func TestOr(t *testing.T) {
	tests := map[string]bool{
		"true or true":   true,
		"true or false":  true,
		"false or true":  true,
		"false or false": false,
	}
	runSolverTests(t, tests, boolexpr.Assignment{})
}

func TestConditional(t *testing.T) {
	tests := map[string]bool{
		"true => true":   true,
		"true => false":  false,
		"false => true":  true,
		"false => false": true,
	}
	runSolverTests(t, tests, boolexpr.Assignment{})
}

func TestBiconditional(t *testing.T) {
	tests := map[string]bool{
		"true <=> true":   true,
		"true <=> false":  false,
		"false <=> true":  false,
		"false <=> false": true,
	}
	runSolverTests(t, tests, boolexpr.Assignment{})
}

func TestRecursiveExpressions(t *testing.T) {
	tests := map[string]bool{
		"true and false => false":                               true,
		"not true or false <=> false":                           true,
		"true and (false or not true) => false":                 true,
		"(not true or false) and not false <=> true":            false,
		"not (true and (false or not false)) => true":           true,
		"true or (false and not true) <=> true":                 true,
		"not (not true or false) or true => true":               true,
		"true and (false or true) <=> true":                     true,
		"not (true <=> false) or not false => true":             true,
		"not (true and false) or (not true and false) <=> true": true,
		"false => false => false":                               false,
		"false => (false => false)":                             true,
		"(true ∧ ¬false) ⇒ (false ∨ true)":                      true,
	}
	runSolverTests(t, tests, boolexpr.Assignment{})
}

func runSolverTests(t *testing.T, tests map[string]bool, assignment boolexpr.Assignment) {
	for expression, expected := range tests {
		t.Run(expression, func(t *testing.T) {
			expr, err := boolexpr.Parse(expression)
			require.NoError(t, err)

			result, err := boolexpr.Evaluate(expr, assignment)
			require.NoError(t, err)
			assert.Equal(t, expected, result)
		})
	}
}

func TestUnboundVariable(t *testing.T) {
	// create an expression referencing variable A
	expr, err := boolexpr.Parse("A")
	require.NoError(t, err)

	// and try to solve it without providing a value for A
	_, err = boolexpr.Evaluate(expr, boolexpr.Assignment{})

	var unbound *boolexpr.UnboundVariableError
	require.ErrorAs(t, err, &unbound)
	assert.Equal(t, "A", unbound.VariableName)
	assert.Contains(t, err.Error(), "unbound variable")
}

func TestUnboundVariableInSubExpression(t *testing.T) {
	tests := map[string]string{
		"A and B":           "B",
		"not B":             "B",
		"B or A":            "B",
		"(A => not C) or A": "C",
	}

	for expression, missing := range tests {
		t.Run(expression, func(t *testing.T) {
			expr, err := boolexpr.Parse(expression)
			require.NoError(t, err)

			_, err = expr.Solve(boolexpr.Assignment{"A": true})

			var unbound *boolexpr.UnboundVariableError
			require.ErrorAs(t, err, &unbound)
			assert.Equal(t, missing, unbound.VariableName)
		})
	}
}

// The left operand decides neither and nor or; both sides are always solved.
func TestNoShortCircuit(t *testing.T) {
	for _, expression := range []string{"false and A", "true or A", "false => A"} {
		t.Run(expression, func(t *testing.T) {
			expr, err := boolexpr.Parse(expression)
			require.NoError(t, err)

			_, err = boolexpr.Evaluate(expr, boolexpr.Assignment{})
			var unbound *boolexpr.UnboundVariableError
			assert.ErrorAs(t, err, &unbound)
		})
	}
}

func TestSolveDoesNotModifyTree(t *testing.T) {
	expr, err := boolexpr.Parse("not (A and B) or C")
	require.NoError(t, err)
	before := boolexpr.Render(expr)

	for _, assignment := range []boolexpr.Assignment{
		{"A": true, "B": true, "C": false},
		{"A": false, "B": true, "C": true},
		{"A": true},
	} {
		_, _ = expr.Solve(assignment)
	}

	assert.Equal(t, before, boolexpr.Render(expr))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		expression string
		reason     string
		token      string
	}{
		{"A and )", "unexpected token", ")"},
		{"", "unexpected end of input", ""},
		{"   \n", "unexpected end of input", ""},
		{"A and", "unexpected end of input", ""},
		{"(A and B", "unterminated parenthesis", "("},
		{"A B", "unexpected token", "B"},
		{"A)", "unexpected token", ")"},
		{"()", "unexpected token", ")"},
		{"and A", "unexpected token", "and"},
		{"A not B", "unexpected token", "not"},
		{"(A B)", "unexpected token", "B"},
		{"A ! B", "unrecognized symbol", "!"},
		{"A || B", "unrecognized symbol", "||"},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			expr, err := boolexpr.Parse(tt.expression)
			assert.Nil(t, expr)

			var parseErr *boolexpr.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.reason, parseErr.Reason)
			assert.Equal(t, tt.token, parseErr.Token)
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := boolexpr.Parse("A and )")
	require.Error(t, err)

	assert.Equal(t, `unexpected token ")" at 1:7`, err.Error())
}

func TestPrecedenceMatchesParentheses(t *testing.T) {
	tests := map[string]string{
		"A and B or C": "(A and B) or C",
		"not A and B":  "(not A) and B",
		"A => B => C":  "(A => B) => C",
		"A or B => C":  "(A or B) => C",
		"A => B <=> C": "(A => B) <=> C",
		"A <=> B or C": "A <=> (B or C)",
		"not not A":    "A",
		"A or B and C": "A or (B and C)",
	}

	for expression, parenthesized := range tests {
		t.Run(expression, func(t *testing.T) {
			assertEquivalent(t, expression, parenthesized)
		})
	}
}

func TestConnectiveIdentities(t *testing.T) {
	conditional, err := boolexpr.Parse("P => Q")
	require.NoError(t, err)
	biconditional, err := boolexpr.Parse("P <=> Q")
	require.NoError(t, err)

	for _, p := range []bool{false, true} {
		for _, q := range []bool{false, true} {
			assignment := boolexpr.Assignment{"P": p, "Q": q}

			result, err := boolexpr.Evaluate(conditional, assignment)
			require.NoError(t, err)
			assert.Equal(t, !p || q, result, "P=%t Q=%t", p, q)

			result, err = boolexpr.Evaluate(biconditional, assignment)
			require.NoError(t, err)
			assert.Equal(t, p == q, result, "P=%t Q=%t", p, q)
		}
	}
}

func TestRender(t *testing.T) {
	tests := map[string]string{
		"true":                                 "true",
		"A":                                    "A",
		"A and B":                              "(A ∧ B)",
		"not A":                                "¬A",
		"not not A":                            "¬¬A",
		"not (A or B)":                         "¬(A ∨ B)",
		"A and B or C":                         "((A ∧ B) ∨ C)",
		"A => B => C":                          "((A ⇒ B) ⇒ C)",
		"A <=> not false":                      "(A ⇔ ¬false)",
		"not (A and B) or (not A and B) <=> B": "((¬(A ∧ B) ∨ (¬A ∧ B)) ⇔ B)",
	}

	for expression, expected := range tests {
		t.Run(expression, func(t *testing.T) {
			expr, err := boolexpr.Parse(expression)
			require.NoError(t, err)

			assert.Equal(t, expected, boolexpr.Render(expr))
			assert.Equal(t, expected, expr.String())
		})
	}
}

func TestRenderRoundTrip(t *testing.T) {
	expressions := []string{
		"not (A and B) or (not A and B) <=> B",
		"A and (B or not A) => A",
		"not (A <=> B) or not B => not B",
		"A => B => C",
		"not not (C or false)",
	}

	for _, expression := range expressions {
		t.Run(expression, func(t *testing.T) {
			expr, err := boolexpr.Parse(expression)
			require.NoError(t, err)

			assertEquivalent(t, expression, boolexpr.Render(expr))
		})
	}
}

func TestVariablesAndHasVariables(t *testing.T) {
	tests := map[string][]string{
		"true and false":           {},
		"A":                        {"A"},
		"B and A or B":             {"B", "A"},
		"not (C => A) <=> C and B": {"C", "A", "B"},
	}

	for expression, expected := range tests {
		t.Run(expression, func(t *testing.T) {
			expr, err := boolexpr.Parse(expression)
			require.NoError(t, err)

			assert.Equal(t, expected, boolexpr.Variables(expr))
			assert.Equal(t, len(expected) > 0, boolexpr.HasVariables(expr))
		})
	}
}

func TestOperatorStrings(t *testing.T) {
	assert.Equal(t, "∧", boolexpr.And.String())
	assert.Equal(t, "∨", boolexpr.Or.String())
	assert.Equal(t, "⇒", boolexpr.Conditional.String())
	assert.Equal(t, "⇔", boolexpr.Biconditional.String())
	assert.Equal(t, "¬", boolexpr.Not.String())
	assert.Equal(t, "BinaryOperator(42)", boolexpr.BinaryOperator(42).String())
}

func TestUnknownOperator(t *testing.T) {
	expr := &boolexpr.BinaryOp{
		Left:     &boolexpr.Literal{Value: true},
		Operator: boolexpr.BinaryOperator(42),
		Right:    &boolexpr.Literal{Value: true},
	}

	_, err := expr.Solve(boolexpr.Assignment{})
	assert.ErrorContains(t, err, "unknown operator")
}

// assertEquivalent checks that both formulas agree under every assignment of
// the variables they mention.
func assertEquivalent(t *testing.T, expected, actual string) {
	t.Helper()

	expectedExpr, err := boolexpr.Parse(expected)
	require.NoError(t, err)
	actualExpr, err := boolexpr.Parse(actual)
	require.NoError(t, err)

	names := boolexpr.Variables(expectedExpr)
	for mask := 0; mask < 1<<len(names); mask++ {
		assignment := boolexpr.Assignment{}
		for i, name := range names {
			assignment[name] = mask&(1<<i) != 0
		}

		want, err := boolexpr.Evaluate(expectedExpr, assignment)
		require.NoError(t, err)
		got, err := boolexpr.Evaluate(actualExpr, assignment)
		require.NoError(t, err)
		assert.Equal(t, want, got, "%q vs %q with %v", expected, actual, assignment)
	}
}
