package parser

import (
	"strconv"
	"strings"

	"github.com/xiam/lishp/ast"
	"github.com/xiam/lishp/lexer"
)

// Parser builds a single value out of a list of tokens.
type Parser struct {
	tokens   []lexer.Token
	position int

	// byte offsets of the parentheses that are still open
	parens []int
}

// New creates a parser over tokens. Whitespace and comment tokens are
// ignored.
func New(tokens []lexer.Token) *Parser {
	filtered := make([]lexer.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Skippable() {
			continue
		}
		filtered = append(filtered, tok)
	}
	return &Parser{tokens: filtered}
}

// Parse turns tokens into a value. An empty token list parses as nil.
func Parse(tokens []lexer.Token) (*ast.Value, error) {
	return New(tokens).Parse()
}

// Depth returns the number of parentheses that are still open.
func (p *Parser) Depth() int {
	return len(p.parens)
}

// Parse does the actual parsing and returns the resulting tree. All tokens
// must be consumed.
func (p *Parser) Parse() (*ast.Value, error) {
	root, err := p.parseForm()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok != nil {
		if tok.Is(")") {
			return nil, p.unbalanced(tok)
		}
		return nil, &Error{Err: ErrUnexpectedToken, Offset: tok.Span.Start, Token: tok.Text}
	}

	return root, nil
}

func (p *Parser) peek() *lexer.Token {
	if p.position >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.position]
}

func (p *Parser) next() *lexer.Token {
	tok := p.peek()
	if tok != nil {
		p.position++
	}
	return tok
}

func (p *Parser) parseForm() (*ast.Value, error) {
	if len(p.tokens) == 0 {
		return ast.NewNil(), nil
	}

	if tok := p.peek(); tok != nil && tok.Is("(") {
		return p.parseList()
	}
	return p.parseAtom()
}

func (p *Parser) parseList() (*ast.Value, error) {
	open := p.next()
	p.parens = append(p.parens, open.Span.Start)

	items := []*ast.Value{}
	for {
		tok := p.peek()
		if tok == nil {
			return nil, p.eof()
		}
		if tok.Is(")") {
			p.next()
			p.parens = p.parens[:len(p.parens)-1]
			span := lexer.NewSpan(open.Span.Start, tok.Span.End)

			if len(items) == 0 {
				return ast.NewNil().WithSpan(span), nil
			}
			return ast.NewList(items...).WithSpan(span), nil
		}

		item, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

func (p *Parser) parseAtom() (*ast.Value, error) {
	tok := p.next()
	if tok == nil {
		return nil, p.eof()
	}
	if tok.Is(")") {
		return nil, p.unbalanced(tok)
	}

	text := tok.Text
	switch {
	case isNumeric(text):
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return ast.NewInteger(i).WithSpan(tok.Span), nil
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, &Error{Err: ErrInvalidNumber, Offset: tok.Span.Start, Token: text, Cause: err}
		}
		return ast.NewFloat(f).WithSpan(tok.Span), nil

	case strings.HasPrefix(text, `"`):
		return ast.NewString(ast.Unquote(text)).WithSpan(tok.Span), nil
	}

	switch text {
	case "nil":
		return ast.NewNil().WithSpan(tok.Span), nil
	case "true":
		return ast.NewBoolean(true).WithSpan(tok.Span), nil
	case "false":
		return ast.NewBoolean(false).WithSpan(tok.Span), nil
	}
	return ast.NewSymbol(text).WithSpan(tok.Span), nil
}

// isNumeric reports whether s starts with a digit, or with a minus sign
// followed by a digit.
func isNumeric(s string) bool {
	if len(s) > 1 && s[0] == '-' {
		s = s[1:]
	}
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}

// eof reports the outermost parenthesis that is still open.
func (p *Parser) eof() error {
	offset := 0
	if len(p.parens) > 0 {
		offset = p.parens[0]
	}
	return &Error{Err: ErrUnexpectedEOF, Offset: offset}
}

func (p *Parser) unbalanced(tok *lexer.Token) error {
	return &Error{Err: ErrUnbalancedParens, Offset: tok.Span.Start, Token: tok.Text}
}
