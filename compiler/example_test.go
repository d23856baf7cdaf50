package compiler_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/velocity-lang/velocity/compiler"
)

// Compiling a one-file program writes a ready-to-build Go file next to it.
// The generated header names the absolute source path, so the example
// prints everything after it.
func ExampleCompile() {
	dir, err := os.MkdirTemp("", "velocity-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	src := filepath.Join(dir, "hello.vel")
	program := "fn main() {\n\tprintln(\"{} + {} = {}\", 2, 3, 2 + 3);\n}\n"
	if err := os.WriteFile(src, []byte(program), 0o644); err != nil {
		fmt.Println(err)
		return
	}

	res, err := compiler.Compile(context.Background(), src)
	if err != nil {
		fmt.Println(err)
		return
	}
	out, err := os.ReadFile(res.Outputs[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	lines := strings.Split(string(out), "\n")
	fmt.Print(strings.Join(lines[2:], "\n"))
	// Output:
	// package main
	//
	// import (
	// 	"github.com/velocity-lang/velocity/format"
	// )
	//
	// func main() {
	// 	format.Println("{} + {} = {}", 2, 3, 2 + 3)
	// }
}
