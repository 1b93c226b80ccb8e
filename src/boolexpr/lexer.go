package boolexpr

import (
	"errors"
	"strings"
	"unicode"

	"github.com/alecthomas/participle/v2/lexer"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenIdent
	tokenTrue
	tokenFalse
	tokenNot
	tokenAnd
	tokenOr
	tokenConditional
	tokenBiconditional
	tokenLParen
	tokenRParen
)

type token struct {
	kind tokenKind
	text string
	pos  lexer.Position
}

// Rules are tried in order, so a word made only of uppercase letters is
// always an identifier, even when it spells a keyword.
var formulaLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Z]+\b`},
	{Name: "Keyword", Pattern: `(?i)(true|false|and|or|not)\b`},
	{Name: "Biconditional", Pattern: `<=>|⇔|↔`},
	{Name: "Conditional", Pattern: `=>|⇒|→`},
	{Name: "Connective", Pattern: `[¬∧∨]`},
	{Name: "Punct", Pattern: `[()]`},
	{Name: "whitespace", Pattern: `\s+`},
})

var (
	symbols = formulaLexer.Symbols()

	identType         = symbols["Ident"]
	keywordType       = symbols["Keyword"]
	biconditionalType = symbols["Biconditional"]
	conditionalType   = symbols["Conditional"]
	connectiveType    = symbols["Connective"]
	punctType         = symbols["Punct"]
	whitespaceType    = symbols["whitespace"]
)

var wordKinds = map[string]tokenKind{
	"true":  tokenTrue,
	"false": tokenFalse,
	"not":   tokenNot,
	"and":   tokenAnd,
	"or":    tokenOr,
	"¬":     tokenNot,
	"∧":     tokenAnd,
	"∨":     tokenOr,
	"(":     tokenLParen,
	")":     tokenRParen,
}

// tokenize splits the expression into tokens, dropping whitespace. The last
// token is always tokenEOF.
func tokenize(expression string) ([]token, error) {
	lex, err := formulaLexer.LexString("", expression)
	if err != nil {
		return nil, err
	}

	var tokens []token
	for {
		t, err := lex.Next()
		if err != nil {
			return nil, unrecognizedSymbol(expression, err)
		}
		if t.EOF() {
			return append(tokens, token{kind: tokenEOF, pos: t.Pos}), nil
		}

		tok := token{text: t.Value, pos: t.Pos}
		switch t.Type {
		case whitespaceType:
			continue
		case identType:
			tok.kind = tokenIdent
		case biconditionalType:
			tok.kind = tokenBiconditional
		case conditionalType:
			tok.kind = tokenConditional
		case keywordType, connectiveType, punctType:
			tok.kind = wordKinds[strings.ToLower(t.Value)]
		}
		tokens = append(tokens, tok)
	}
}

// unrecognizedSymbol turns a lexing failure into a ParseError carrying the
// word that could not be lexed.
func unrecognizedSymbol(expression string, err error) error {
	var lexErr *lexer.Error
	if !errors.As(err, &lexErr) {
		return err
	}

	offset := lexErr.Pos.Offset
	if offset < 0 || offset > len(expression) {
		offset = 0
	}
	rest := expression[offset:]
	if end := strings.IndexFunc(rest, unicode.IsSpace); end >= 0 {
		rest = rest[:end]
	}

	return newParseError("unrecognized symbol", token{text: rest, pos: lexErr.Pos})
}
