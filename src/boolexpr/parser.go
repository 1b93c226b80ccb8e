package boolexpr

// MaxNestingDepth bounds how deeply parentheses and negations may nest.
const MaxNestingDepth = 1000

// binaryLevels lists the binary operators from the loosest binding to the
// tightest. Every level is left-associative.
var binaryLevels = []struct {
	token    tokenKind
	operator BinaryOperator
}{
	{tokenBiconditional, Biconditional},
	{tokenConditional, Conditional},
	{tokenOr, Or},
	{tokenAnd, And},
}

// Parse builds an expression tree from a formula such as
//
//	not (A and B) or C => true
//
// Supported operators, tightest first: not (¬), and (∧), or (∨),
// => (⇒, →) and <=> (⇔, ↔). Variables are one or more uppercase letters.
//
// Errors are of type *ParseError.
func Parse(expression string) (Expression, error) {
	tokens, err := tokenize(expression)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens}
	root, err := p.parseBinary(0)
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokenEOF {
		return nil, newParseError("unexpected token", tok)
	}

	return root, nil
}

type parser struct {
	tokens []token
	pos    int
	depth  int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) parseBinary(level int) (Expression, error) {
	if level == len(binaryLevels) {
		return p.parseNot()
	}

	left, err := p.parseBinary(level + 1)
	if err != nil {
		return nil, err
	}

	for p.peek().kind == binaryLevels[level].token {
		p.next()
		right, err := p.parseBinary(level + 1)
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{
			Left:     left,
			Operator: binaryLevels[level].operator,
			Right:    right,
		}
	}

	return left, nil
}

func (p *parser) parseNot() (Expression, error) {
	if p.peek().kind != tokenNot {
		return p.parsePrimary()
	}

	tok := p.next()
	if err := p.enter(tok); err != nil {
		return nil, err
	}
	defer p.leave()

	operand, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	return &UnaryOp{
		Operator: Not,
		Operand:  operand,
	}, nil
}

func (p *parser) parsePrimary() (Expression, error) {
	tok := p.next()
	switch tok.kind {
	case tokenTrue:
		return &Literal{Value: true}, nil
	case tokenFalse:
		return &Literal{Value: false}, nil
	case tokenIdent:
		return &Variable{Name: tok.text}, nil
	case tokenLParen:
		return p.parseParenthesized(tok)
	case tokenEOF:
		return nil, newParseError("unexpected end of input", tok)
	default:
		return nil, newParseError("unexpected token", tok)
	}
}

func (p *parser) parseParenthesized(open token) (Expression, error) {
	if err := p.enter(open); err != nil {
		return nil, err
	}
	defer p.leave()

	inner, err := p.parseBinary(0)
	if err != nil {
		return nil, err
	}

	switch closing := p.next(); closing.kind {
	case tokenRParen:
		return inner, nil
	case tokenEOF:
		return nil, newParseError("unterminated parenthesis", open)
	default:
		return nil, newParseError("unexpected token", closing)
	}
}

func (p *parser) enter(tok token) error {
	p.depth++
	if p.depth > MaxNestingDepth {
		return newParseError("expression nested too deeply", tok)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}
