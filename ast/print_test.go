package ast

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xiam/lishp/lexer"
)

func TestEncode(t *testing.T) {
	testCases := []struct {
		In  *Value
		Out string
	}{
		{NewNil(), `nil`},
		{nil, `nil`},
		{NewBoolean(true), `true`},
		{NewBoolean(false), `false`},
		{NewInteger(-123), `-123`},
		{NewFloat(12.3), `12.3`},
		{NewFloat(-12.3), `-12.3`},
		{NewFloat(3), `3.0`},
		{NewFloat(0.0000001), `0.0000001`},
		{NewFloat(math.Inf(1)), `+Inf`},
		{NewString("foo"), `"foo"`},
		{NewString(""), `""`},
		{NewString("a\n\"b\"\t\\c\r"), `"a\n\"b\"\t\\c\r"`},
		{NewSymbol("equal?"), `equal?`},
		{NewList(), `()`},
		{
			NewList(NewSymbol("+"), NewInteger(1), NewList(NewFloat(2.5), NewString("x"))),
			`(+ 1 (2.5 "x"))`,
		},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Out, string(Encode(tc.In)))
	}

	assert.Equal(t, `(a "b")`, NewList(NewSymbol("a"), NewString("b")).String())
}

func TestUnquote(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{`"foo"`, "foo"},
		{`""`, ""},
		{`"foo\n"`, "foo\n"},
		{`"foo\t"`, "foo\t"},
		{`"a\r\\b\"c\""`, "a\r\\b\"c\""},
		{`"keep \q as is"`, `keep \q as is`},
		{`"trailing\"`, `trailing\`},
		{`"ünïcode ✓"`, "ünïcode ✓"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Out, Unquote(tc.In), tc.In)
	}

	for _, s := range []string{"", "plain", "tab\there", `back\slash`, `"quoted"`, "multi\nline\r\n"} {
		assert.Equal(t, s, Unquote(Quote(s)))
	}
}

func TestFprint(t *testing.T) {
	root := NewList(
		NewSymbol("foo").WithSpan(lexer.NewSpan(1, 4)),
		NewList(NewInteger(9).WithSpan(lexer.NewSpan(6, 7))).WithSpan(lexer.NewSpan(5, 8)),
		NewNil(),
	).WithSpan(lexer.NewSpan(0, 9))

	var buf bytes.Buffer
	Fprint(&buf, root)

	expected := "(list): [0 9)\n" +
		"    (symbol): foo [1 4)\n" +
		"    (list): [5 8)\n" +
		"        (integer): 9 [6 7)\n" +
		"    (nil): nil [0 0)\n"
	assert.Equal(t, expected, buf.String())

	buf.Reset()
	Fprint(&buf, nil)
	assert.Equal(t, ":nil\n", buf.String())
}
