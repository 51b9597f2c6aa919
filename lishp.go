// Package lishp reads lishp source into a tree of values.
//
// Reading happens in two steps: the lexer package splits the source into
// tokens and the parser package builds a single value out of them. The
// functions in this package chain both steps.
package lishp

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/xiam/lishp/ast"
	"github.com/xiam/lishp/lexer"
	"github.com/xiam/lishp/parser"
)

// Reader reads and parses lishp source.
type Reader struct {
	r     io.Reader
	trace *log.Logger
}

// Parse reads in and returns the value it contains.
func Parse(in []byte) (*ast.Value, error) {
	return ParseString(string(in))
}

// ParseString is like Parse but takes a string.
func ParseString(in string) (*ast.Value, error) {
	return parse(in, nil)
}

// NewReader creates a Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// SetTrace sets a logger that receives every token read.
func (r *Reader) SetTrace(l *log.Logger) {
	r.trace = l
}

// Parse consumes the underlying reader and parses its content.
func (r *Reader) Parse() (*ast.Value, error) {
	buf, err := io.ReadAll(r.r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return parse(string(buf), r.trace)
}

// IsIncomplete reports whether err means the input ended before every
// parenthesis was closed, so more input could still make it valid.
func IsIncomplete(err error) bool {
	return errors.Is(err, parser.ErrUnexpectedEOF)
}

func parse(src string, trace *log.Logger) (*ast.Value, error) {
	tokens, err := lexer.TokenizeWithOptions(src, lexer.Options{Trace: trace})
	if err != nil {
		return nil, err
	}
	return parser.Parse(tokens)
}
