// Package velocity is the home of the Velocity language toolchain — a small
// statically-typed language that compiles to plain, readable Go.
//
// 🚀 What ships in this module?
//
//	Two halves that meet in generated code:
//		• Runtime prelude: the packages every compiled program imports —
//		  growable sequences, tagged unions, template formatting, math
//		• Compiler front-end: lexer, parser, diagnostics and a Go code
//		  generator, plus the `velocity` command that drives them
//
// ✨ Why Velocity?
//
//   - Readable output – emitted Go is gofmt-clean and diffable
//   - Fail-fast runtime – checked indexing, checked union access
//   - Small surface – a handful of keywords, one container, one print
//   - Pure Go toolchain – no cgo, no external compilers
//
// Under the hood, everything is organized as flat topical packages:
//
//	seq/      — generic growable sequence with checked access & slicing
//	format/   — formatting protocol + `{}` template interpreter
//	union/    — closed tagged unions (2–4 alternatives)
//	vmath/    — elementary math surface for compiled programs
//	token/    — lexical tokens and source spans
//	lexer/    — scanner
//	ast/      — syntax tree
//	parser/   — recursive-descent parser with error recovery
//	diag/     — positioned, colorized diagnostics
//	codegen/  — Go source emission
//	compiler/ — pipeline driver (scan → parse → resolve → emit)
//	watch/    — debounced recompile-on-change
//	cmd/      — the velocity CLI
//
// Quick taste of the language:
//
//	fn main() {
//	    var xs: Array[int] = [1, 2, 3];
//	    xs.push(4);
//	    println("{} items, last = {}", xs.len(), xs.last());
//	}
//
// Dive into examples/ for complete programs and per-package example tests
// for focused snippets.
//
//	go get github.com/velocity-lang/velocity
package velocity
