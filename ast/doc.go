// Package ast declares the syntax tree of the velocity language.
//
// Node is the common interface; Expr, Stmt, Decl, and Type partition it the
// way go/ast does. Declarations double as statements, so a File is just a
// statement list and declarations may appear inside function bodies.
//
// Every node answers Span() with the source location it is reported at in
// diagnostics: the operator for Binary and Unary, the keyword for statement
// forms, the callee for Call, the receiving expression for Index and Member.
// Trees are built by package parser and consumed by package codegen; this
// package holds no behavior beyond location plumbing.
package ast
