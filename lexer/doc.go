// Package lexer turns velocity source text into a token stream.
//
// What
//
//   - Scan(file, src) produces the full []token.Token for one source file,
//     always terminated by an EOF token, or a *diag.Error at the first
//     offending character.
//   - Every token carries an exact Span (1-based line, inclusive columns),
//     which diag renders as a caret underline.
//
// Accepted lexicon
//
//   - Identifiers and keywords: [A-Za-z_][A-Za-z0-9_]*, classified via
//     token.Lookup ("true"/"false" scan as Boolean literals).
//   - Integer and floating point literals: digits, and digits '.' digits.
//     The dot is taken only when a digit follows, so 3.sqrt() scans as an
//     integer, a dot, and an identifier.
//   - String and character literals in double and single quotes, with the
//     escapes \n \t \r \0 \\ \' \". Character literals hold exactly one
//     character; neither form may contain a raw newline.
//   - Operators and punctuation, longest match first: += -= *= /= %= ==
//     != <= >= -> before their one-character prefixes.
//   - Comments: // to end of line, and /* ... */ nesting to arbitrary depth.
//
// The scanner is a single forward pass with one character of lookahead and
// no backtracking.
package lexer
