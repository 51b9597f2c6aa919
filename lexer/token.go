package lexer

import (
	"fmt"
	"strings"
)

// Span is a half-open [Start, End) byte range into the source text.
type Span struct {
	Start int
	End   int
}

// NewSpan creates a span
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// Len returns the number of bytes covered by the span
func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("[%d %d)", s.Start, s.End)
}

// Position returns the 1-based line and column of the span's start within
// src. Columns count bytes.
func (s Span) Position(src string) (line int, col int) {
	start := s.Start
	if start > len(src) {
		start = len(src)
	}
	line = 1 + strings.Count(src[:start], "\n")
	col = start + 1
	if i := strings.LastIndexByte(src[:start], '\n'); i >= 0 {
		col = start - i
	}
	return line, col
}

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	Type TokenType
	Text string
	Span Span
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, text string, span Span) Token {
	return Token{
		Type: tt,
		Text: text,
		Span: span,
	}
}

// Is returns true if the token's text is exactly s
func (t Token) Is(s string) bool {
	return t.Text == s
}

// Skippable reports whether the token carries no syntax (whitespace or
// comment).
func (t Token) Skippable() bool {
	return t.Type == TokenWhitespace || t.Type == TokenComment
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q %v)", t.Type, t.Text, t.Span)
}
