// Package parser builds the velocity syntax tree from a token stream.
//
// What
//
//   - Parse(path, toks) returns an *ast.File plus every diagnostic found,
//     not just the first: after an error the parser synchronizes at the next
//     statement boundary and keeps going.
//   - Declarations (import, struct, fn, enum, union) and statements share one
//     grammar, so declarations nest inside function bodies.
//
// Expression grammar
//
// Recursive descent with the usual precedence ladder, lowest first:
//
//	assignment   = += -= *= /= %=   (right associative)
//	or           or
//	and          and
//	equality     == !=
//	comparison   < <= > >=
//	term         + -
//	factor       * / %
//	unary        + - ! & &mut      (prefix)
//	postfix      call() index[] member. struct-literal{}
//	primary      literals, identifiers, [array], (grouping)
//
// Binary operators at one level associate left, so a - b + c is
// (a - b) + c. Assignment associates right and may target any postfix
// chain; validity of the target is codegen's concern.
//
// Error reporting follows the token display texts, e.g.
//
//	expected ';', but got <identifier>
//	expected an expression, but got '}'
package parser
