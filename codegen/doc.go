// Package codegen lowers a velocity syntax tree to Go source.
//
// What
//
//   - Collect builds the symbol table for a file and its import closure:
//     structs, enums, unions and functions, with duplicate definitions and
//     unknown type references reported as positioned diagnostics.
//   - Generate emits one gofmt-formatted Go file per input file. Problems in
//     the source come back as a diag.List with spans; a formatting failure
//     of the emitted text wraps ErrFormat instead.
//
// Lowering
//
//	struct S { f: T }        type S struct { f T }
//	enum E { A, B = 4 }      type E int + const block (EA, EB, ...)
//	union U = A | B          type U = union.U2[A, B]
//	fn f(x: int) -> int      func f(x int) int
//	fn main()                func main()
//	int float bool char      int float64 bool rune
//	&T / &mut T              T / *T
//	Array[T]                 *seq.Seq[T]
//	[1, 2] / xs[i]           seq.Of(1, 2) / xs.At(i)
//	println / formatted      format.Println / format.Formatted
//	math.sqrt(x)             vmath.Sqrt(x)
//	for (x in xs) body       for _, x := range xs.Values() body
//
// A value assigned where one of a union's alternatives is expected is
// wrapped in the matching constructor, so var n: Number = 3 lowers to
// union.U2A[int, float64](3).
//
// Guarantees
//
// Formatting capability is checked while emitting: println and formatted
// reject an argument whose type provably cannot be formatted, at the
// argument's span, instead of deferring the failure to run time. Generated
// locals that are never read are kept alive with a `_ = x` statement so the
// output always compiles.
package codegen
