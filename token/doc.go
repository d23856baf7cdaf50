// Package token defines the lexical vocabulary of the velocity language:
// token kinds, keyword lookup, operator predicates, and source spans.
//
// A Token pairs a Kind with the raw text it was scanned from and the Span
// locating it. Spans use 1-based lines and 1-based inclusive columns so they
// can be rendered directly under a source line by package diag.
//
// The package is a leaf: lexer, parser, and codegen all build on it, and it
// imports nothing beyond strconv.
package token
