package ast

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Print displays a human-readable representation of a value on stdout
func Print(n *Value) {
	Fprint(os.Stdout, n)
}

// Fprint writes a human-readable, indented representation of a value to w
func Fprint(w io.Writer, n *Value) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Value, level int) {
	indent := strings.Repeat("    ", level)
	if n == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}
	fmt.Fprintf(w, "%s(%s): ", indent, n.Type())
	switch n.Type() {

	case ValueTypeList:
		fmt.Fprintf(w, "%v\n", n.Span())
		list := n.List()
		for i := range list {
			printLevel(w, list[i], level+1)
		}

	default:
		fmt.Fprintf(w, "%s %v\n", Encode(n), n.Span())
	}
}

// Encode transforms a value into source text that parses back into an equal
// value. Empty lists encode as "()", which parses as nil.
func Encode(n *Value) []byte {
	var b strings.Builder
	encodeValue(&b, n)
	return []byte(b.String())
}

func encodeValue(b *strings.Builder, n *Value) {
	if n == nil {
		b.WriteString("nil")
		return
	}
	switch n.Type() {
	case ValueTypeNil:
		b.WriteString("nil")

	case ValueTypeBoolean:
		b.WriteString(strconv.FormatBool(n.Bool()))

	case ValueTypeInteger:
		b.WriteString(strconv.FormatInt(n.Int(), 10))

	case ValueTypeFloat:
		b.WriteString(encodeFloat(n.Float()))

	case ValueTypeString:
		b.WriteString(Quote(n.Text()))

	case ValueTypeSymbol:
		b.WriteString(n.Text())

	case ValueTypeList:
		b.WriteByte('(')
		for i, item := range n.List() {
			if i > 0 {
				b.WriteByte(' ')
			}
			encodeValue(b, item)
		}
		b.WriteByte(')')

	default:
		panic("unknown value type")
	}
}

// encodeFloat always keeps a fractional part so the text lexes as a float.
func encodeFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

var quoteReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
)

// Quote wraps s in double quotes, escaping the characters the parser
// unescapes.
func Quote(s string) string {
	return `"` + quoteReplacer.Replace(s) + `"`
}

// Unquote strips the surrounding double quotes from a string literal and
// resolves its escape sequences. Unknown escapes are kept as they are.
func Unquote(lit string) string {
	if len(lit) >= 2 && lit[0] == '"' && lit[len(lit)-1] == '"' {
		lit = lit[1 : len(lit)-1]
	}
	if !strings.Contains(lit, `\`) {
		return lit
	}

	var b strings.Builder
	b.Grow(len(lit))
	for i := 0; i < len(lit); i++ {
		c := lit[i]
		if c != '\\' || i+1 == len(lit) {
			b.WriteByte(c)
			continue
		}
		i++
		switch lit[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		default:
			b.WriteByte('\\')
			b.WriteByte(lit[i])
		}
	}
	return b.String()
}
