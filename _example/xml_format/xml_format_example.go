package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/lishp"
	"github.com/xiam/lishp/ast"
)

// xmlPrinter prints every value as an XML element, one per line.
type xmlPrinter struct {
	ast.BaseVisitor

	indentationLevel int
}

func (p *xmlPrinter) indent() string {
	return strings.Repeat("  ", p.indentationLevel)
}

func (p *xmlPrinter) VisitList(items []*ast.Value) bool {
	fmt.Printf("%s<list>\n", p.indent())
	for i := range items {
		ast.Walk(&xmlPrinter{indentationLevel: p.indentationLevel + 1}, items[i])
	}
	fmt.Printf("%s</list>\n", p.indent())
	return false
}

func (p *xmlPrinter) VisitAtom(atom ast.Value) bool {
	if atom.IsNil() {
		fmt.Printf("%s<%s/>\n", p.indent(), atom.Type())
		return false
	}
	fmt.Printf("%s<%s>%v</%s>\n", p.indent(), atom.Type(), atom.Value(), atom.Type())
	return false
}

func main() {
	input := `(fn_a (fn_b (89 equal? (67 3.27))) (fn_c 66 3 53 "Hello world!" nil))`

	root, err := lishp.ParseString(input)
	if err != nil {
		log.Fatal("lishp.Parse:", err)
	}

	ast.Walk(&xmlPrinter{}, root)
}
