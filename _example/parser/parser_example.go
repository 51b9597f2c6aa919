package main

import (
	"log"

	"github.com/xiam/lishp/ast"
	"github.com/xiam/lishp/lexer"
	"github.com/xiam/lishp/parser"
)

func main() {
	input := `(fn_a (fn_b (89 equal? (67 3.27))) (fn_c 66 3 53 "Hello world!" nil))`

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	root, err := parser.Parse(tokens)
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(root)
}
