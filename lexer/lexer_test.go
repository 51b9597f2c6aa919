package lexer

import (
	"bytes"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tok(tt TokenType, text string, start int) Token {
	return NewToken(tt, text, NewSpan(start, start+len(text)))
}

func TestScanner(t *testing.T) {
	testCases := []string{
		`1`,

		`-1 -2.22`,

		`+ 1 1 1 1`,

		`(+ 1 2 3)`,

		`(- 1 2 3)`,

		`(foo a b c-d-e-f "ghi")`,

		`(foo
			a b
			c-d-e-f
			"g
			hi"
		)`,

		`(set foo (+ 3 3))`,

		`(define (sum a b) ; adds
			(+ a b))`,

		`(
			"hello world!" "brave new " world
		)`,

		`(equal? $ARGV$ nil)`,
	}

	for i := range testCases {
		tokens, err := Tokenize(testCases[i])

		assert.NotNil(t, tokens)
		assert.NoError(t, err)
	}
}

func TestNextTokenSingle(t *testing.T) {
	testCases := []struct {
		In  string
		Out Token
	}{
		{"1", tok(TokenInteger, "1", 0)},
		{"1.0", tok(TokenFloat, "1.0", 0)},
		{"-42", tok(TokenInteger, "-42", 0)},
		{"-4.2", tok(TokenFloat, "-4.2", 0)},
		{" ", tok(TokenWhitespace, " ", 0)},
		{"   ", tok(TokenWhitespace, "   ", 0)},
		{"\n", tok(TokenWhitespace, "\n", 0)},
		{"\n\t", tok(TokenWhitespace, "\n\t", 0)},
		{"foo", tok(TokenSymbol, "foo", 0)},
		{"FOO", tok(TokenSymbol, "FOO", 0)},
		{"l33t", tok(TokenSymbol, "l33t", 0)},
		{"f_", tok(TokenSymbol, "f_", 0)},
		{"_f", tok(TokenSymbol, "_f", 0)},
		{"$ARGV$", tok(TokenSymbol, "$ARGV$", 0)},
		{"equal?", tok(TokenSymbol, "equal?", 0)},
		{`"foo"`, tok(TokenString, `"foo"`, 0)},
		{`""`, tok(TokenString, `""`, 0)},
		{`"a \"quoted\" word"`, tok(TokenString, `"a \"quoted\" word"`, 0)},
		{`"back\\slash"`, tok(TokenString, `"back\\slash"`, 0)},
		{"; a comment", tok(TokenComment, "; a comment", 0)},
		{"(", tok(TokenOpenParen, "(", 0)},
		{")", tok(TokenCloseParen, ")", 0)},
	}

	for _, sym := range []string{"_", "+", "-", "/", "=", "?", "!", "$", "@", "*", "&", "|", "^", "%"} {
		testCases = append(testCases, struct {
			In  string
			Out Token
		}{sym, tok(TokenSymbol, sym, 0)})
	}

	for _, tc := range testCases {
		lx := New(tc.In)
		got, err := lx.NextToken()
		if assert.NoError(t, err, tc.In) {
			assert.Equal(t, tc.Out, got, tc.In)
		}
	}
}

func TestEmptySource(t *testing.T) {
	lx := New("")
	_, err := lx.NextToken()
	assert.Equal(t, io.EOF, err)

	tokens, err := Tokenize("")
	assert.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestTokenStreams(t *testing.T) {
	testCases := []struct {
		In  string
		Out []Token
	}{
		{
			"()",
			[]Token{
				tok(TokenOpenParen, "(", 0),
				tok(TokenCloseParen, ")", 1),
			},
		},
		{
			"(1 2)",
			[]Token{
				tok(TokenOpenParen, "(", 0),
				tok(TokenInteger, "1", 1),
				tok(TokenWhitespace, " ", 2),
				tok(TokenInteger, "2", 3),
				tok(TokenCloseParen, ")", 4),
			},
		},
		{
			"(+ a -42)",
			[]Token{
				tok(TokenOpenParen, "(", 0),
				tok(TokenSymbol, "+", 1),
				tok(TokenWhitespace, " ", 2),
				tok(TokenSymbol, "a", 3),
				tok(TokenWhitespace, " ", 4),
				tok(TokenInteger, "-42", 5),
				tok(TokenCloseParen, ")", 8),
			},
		},
		{
			"() ; foo",
			[]Token{
				tok(TokenOpenParen, "(", 0),
				tok(TokenCloseParen, ")", 1),
				tok(TokenWhitespace, " ", 2),
				tok(TokenComment, "; foo", 3),
			},
		},
		{
			";comment\n(stuff )",
			[]Token{
				tok(TokenComment, ";comment", 0),
				tok(TokenWhitespace, "\n", 8),
				tok(TokenOpenParen, "(", 9),
				tok(TokenSymbol, "stuff", 10),
				tok(TokenWhitespace, " ", 15),
				tok(TokenCloseParen, ")", 16),
			},
		},
	}

	for _, tc := range testCases {
		lx := New(tc.In)
		got := []Token{}
		for tok, err := range lx.Tokens() {
			require.NoError(t, err)
			got = append(got, tok)
		}
		assert.Equal(t, tc.Out, got, tc.In)
		assert.Equal(t, len(tc.In), lx.Position())
	}
}

func TestTokenizeFilters(t *testing.T) {
	src := "(foo ; bar\n  1.5)"

	{
		tokens, err := Tokenize(src)
		require.NoError(t, err)
		assert.Equal(t, []Token{
			tok(TokenOpenParen, "(", 0),
			tok(TokenSymbol, "foo", 1),
			tok(TokenFloat, "1.5", 13),
			tok(TokenCloseParen, ")", 16),
		}, tokens)
	}

	{
		tokens, err := TokenizeWithOptions(src, Options{KeepComments: true})
		require.NoError(t, err)
		assert.Equal(t, []Token{
			tok(TokenOpenParen, "(", 0),
			tok(TokenSymbol, "foo", 1),
			tok(TokenComment, "; bar", 5),
			tok(TokenFloat, "1.5", 13),
			tok(TokenCloseParen, ")", 16),
		}, tokens)
	}

	{
		tokens, err := TokenizeWithOptions(src, Options{KeepWhitespace: true, KeepComments: true})
		require.NoError(t, err)

		var rebuilt string
		for _, tok := range tokens {
			rebuilt += tok.Text
		}
		assert.Equal(t, src, rebuilt)
	}
}

func TestTokenizeUnicodeWhitespace(t *testing.T) {
	for _, space := range []string{"\v", "\f", "\u0085", "\u00a0", "\u1680", "\u2003", "\u2028", "\u2029", "\u202f", "\u3000"} {
		src := "(a" + space + "b)"

		tokens, err := Tokenize(src)
		require.NoError(t, err, "%q", space)
		assert.Equal(t, []Token{
			tok(TokenOpenParen, "(", 0),
			tok(TokenSymbol, "a", 1),
			tok(TokenSymbol, "b", 2+len(space)),
			tok(TokenCloseParen, ")", 3+len(space)),
		}, tokens, "%q", space)

		tokens, err = TokenizeWithOptions(src, Options{KeepWhitespace: true})
		require.NoError(t, err, "%q", space)
		require.Len(t, tokens, 5)
		assert.Equal(t, tok(TokenWhitespace, space, 2), tokens[2], "%q", space)
	}

	tokens, err := TokenizeWithOptions(" \t\v\u00a0\u3000\n", Options{KeepWhitespace: true})
	require.NoError(t, err)
	assert.Equal(t, []Token{tok(TokenWhitespace, " \t\v\u00a0\u3000\n", 0)}, tokens)
}

func TestInvalidToken(t *testing.T) {
	testCases := []struct {
		In     string
		Offset int
	}{
		{"#", 0},
		{"(foo #bar)", 5},
		{"12.3.4", 4},
		{`"unterminated`, 0},
		{"(a [b])", 3},
		{"\x00", 0},
	}

	for _, tc := range testCases {
		tokens, err := Tokenize(tc.In)
		assert.Nil(t, tokens)

		var tokErr *InvalidTokenError
		if assert.True(t, errors.As(err, &tokErr), tc.In) {
			assert.Equal(t, tc.Offset, tokErr.Offset, tc.In)
		}
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestNextTokenDoesNotMoveOnError(t *testing.T) {
	lx := New("a #")

	for _, want := range []Token{tok(TokenSymbol, "a", 0), tok(TokenWhitespace, " ", 1)} {
		got, err := lx.NextToken()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for i := 0; i < 2; i++ {
		_, err := lx.NextToken()
		assert.Error(t, err)
		assert.Equal(t, 2, lx.Position())
	}
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer

	_, err := TokenizeWithOptions("(a)", Options{Trace: log.New(&buf, "", 0)})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `0 (0, 1) => (:open_paren "(" [0 1))`)
	assert.Contains(t, buf.String(), `1 (1, 2) => (:symbol "a" [1 2))`)
}

func TestSpanPosition(t *testing.T) {
	src := "1\n\n\t\t23456"

	testCases := []struct {
		Span Span
		Line int
		Col  int
	}{
		{NewSpan(0, 1), 1, 1},
		{NewSpan(1, 2), 1, 2},
		{NewSpan(2, 3), 2, 1},
		{NewSpan(3, 5), 3, 1},
		{NewSpan(5, 10), 3, 3},
		{NewSpan(100, 100), 3, 8},
	}

	for _, tc := range testCases {
		line, col := tc.Span.Position(src)
		assert.Equal(t, tc.Line, line, tc.Span.String())
		assert.Equal(t, tc.Col, col, tc.Span.String())
	}

	assert.Equal(t, 5, NewSpan(5, 10).Len())
}
