package parser_test

import (
	"fmt"

	"github.com/velocity-lang/velocity/ast"
	"github.com/velocity-lang/velocity/lexer"
	"github.com/velocity-lang/velocity/parser"
)

// ExampleParse parses a small program and walks its top-level declarations.
func ExampleParse() {
	src := `import math;

fn main() {
	println("hi");
}
`
	toks, err := lexer.Scan("demo.vel", src)
	if err != nil {
		fmt.Println(err)
		return
	}
	f, err := parser.Parse("demo.vel", toks)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, s := range f.Stmts {
		switch d := s.(type) {
		case *ast.ImportDecl:
			fmt.Println("import", d.Path.Name)
		case *ast.FnDecl:
			fmt.Println("fn", d.Name.Name)
		}
	}
	// Output:
	// import math
	// fn main
}

// ExampleParse_diagnostics shows how parse problems come back: positioned,
// one per mistake, alongside the statements that did parse.
func ExampleParse_diagnostics() {
	src := `var a = ;
var b = 2;
var c = ;
`
	toks, err := lexer.Scan("bad.vel", src)
	if err != nil {
		fmt.Println(err)
		return
	}
	f, err := parser.Parse("bad.vel", toks)
	fmt.Println("parsed statements:", len(f.Stmts))
	fmt.Println(err)
	// Output:
	// parsed statements: 1
	// bad.vel:1:9: expected an expression, but got ';'
	// bad.vel:3:9: expected an expression, but got ';'
}
