package lexer

import (
	"regexp"
)

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units, in matching priority order
const (
	TokenInvalid    TokenType = iota
	TokenFloat                // 12.3, -12.3
	TokenInteger              // 123, -123
	TokenOpenParen            // Open parenthesis: "("
	TokenCloseParen           // Close parenthesis: ")"
	TokenSymbol               // foo, +, equal?
	TokenString               // "double quoted"
	TokenComment              // ; until end of line
	TokenWhitespace           // Any Unicode white space: space, tab, newline, NBSP...
)

var tokenNames = map[TokenType]string{
	TokenInvalid:    "invalid",
	TokenFloat:      "float",
	TokenInteger:    "integer",
	TokenOpenParen:  "open_paren",
	TokenCloseParen: "close_paren",
	TokenSymbol:     "symbol",
	TokenString:     "string",
	TokenComment:    "comment",
	TokenWhitespace: "whitespace",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

type pattern struct {
	tt TokenType
	re *regexp.Regexp
}

// symbolChars are allowed anywhere in a symbol, digits only after the first
// character.
const symbolChars = `\-_a-zA-Z+=*^&$!@/?|%`

// patterns are tried in order against the unconsumed input, the first one
// that matches wins. Floats go before integers so "1.5" is not split, and
// integers go before symbols so "-1" is a number while a bare "-" is not.
var patterns = []pattern{
	{TokenFloat, regexp.MustCompile(`^-?[0-9]+\.[0-9]+`)},
	{TokenInteger, regexp.MustCompile(`^-?[0-9]+`)},
	{TokenOpenParen, regexp.MustCompile(`^\(`)},
	{TokenCloseParen, regexp.MustCompile(`^\)`)},
	{TokenSymbol, regexp.MustCompile(`^[` + symbolChars + `][` + symbolChars + `0-9]*`)},
	{TokenString, regexp.MustCompile(`(?s)^"(?:[^\\"]|\\.)*"`)},
	{TokenComment, regexp.MustCompile(`^;[^\n]*`)},
	// RE2's \s is ASCII only.
	{TokenWhitespace, regexp.MustCompile(`^[\s\v\p{Z}\x{85}]+`)},
}
