package boolexpr

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// UnboundVariableError is returned when an expression references a variable
// that has no value in the assignment it is solved against.
type UnboundVariableError struct {
	VariableName string
}

// NewUnboundVariableError creates a new UnboundVariableError with the given variable name.
func NewUnboundVariableError(variableName string) error {
	return &UnboundVariableError{VariableName: variableName}
}

func (e UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable: %s", e.VariableName)
}

// ParseError describes why a formula could not be parsed. Token is the
// offending input text, empty when the input ended early.
type ParseError struct {
	Reason   string
	Token    string
	Position lexer.Position
}

func newParseError(reason string, tok token) error {
	return &ParseError{
		Reason:   reason,
		Token:    tok.text,
		Position: tok.pos,
	}
}

func (e ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%s at %s", e.Reason, e.Position)
	}
	return fmt.Sprintf("%s %q at %s", e.Reason, e.Token, e.Position)
}
