package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velocity-lang/velocity/token"
)

// TestKind_String verifies the display text used in diagnostics: literal
// classes render as angle-bracket placeholders, everything else verbatim.
func TestKind_String(t *testing.T) {
	cases := []struct {
		kind token.Kind
		want string
	}{
		{token.EOF, "<eof>"},
		{token.Identifier, "<identifier>"},
		{token.String, "<string>"},
		{token.Character, "<character>"},
		{token.Integer, "<integer>"},
		{token.FloatingPoint, "<floating point>"},
		{token.Boolean, "<boolean>"},
		{token.Fn, "fn"},
		{token.Return, "return"},
		{token.And, "and"},
		{token.Char, "char"},
		{token.PlusEquals, "+="},
		{token.Arrow, "->"},
		{token.BangEquals, "!="},
		{token.Semicolon, ";"},
		{token.Pipe, "|"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.kind.String())
	}
}

// TestKind_String_OutOfRange keeps bogus kinds printable.
func TestKind_String_OutOfRange(t *testing.T) {
	assert.Equal(t, "Kind(999)", token.Kind(999).String())
	assert.Equal(t, "Kind(-1)", token.Kind(-1).String())
}

// TestLookup classifies identifier-shaped words.
func TestLookup(t *testing.T) {
	cases := []struct {
		word string
		want token.Kind
	}{
		{"import", token.Import},
		{"struct", token.Struct},
		{"fn", token.Fn},
		{"mut", token.Mut},
		{"var", token.Var},
		{"const", token.Const},
		{"for", token.For},
		{"in", token.In},
		{"return", token.Return},
		{"enum", token.Enum},
		{"union", token.Union},
		{"and", token.And},
		{"or", token.Or},
		{"true", token.Boolean},
		{"false", token.Boolean},
		{"int", token.Int},
		{"float", token.Float},
		{"bool", token.Bool},
		{"char", token.Char},
		{"main", token.Identifier},
		{"Import", token.Identifier}, // keywords are case-sensitive
		{"_", token.Identifier},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, token.Lookup(c.word), "Lookup(%q)", c.word)
	}
}

// TestKind_Predicates pins the operator classes the parser dispatches on.
func TestKind_Predicates(t *testing.T) {
	unary := []token.Kind{token.Plus, token.Minus, token.Bang, token.Ampersand}
	for _, k := range unary {
		assert.True(t, k.IsUnaryOp(), "IsUnaryOp(%s)", k)
	}
	assert.False(t, token.Asterisk.IsUnaryOp())
	assert.False(t, token.Pipe.IsUnaryOp())

	binary := []token.Kind{
		token.Plus, token.Minus, token.Asterisk, token.Slash, token.Percent,
		token.EqualsEquals, token.BangEquals,
		token.LessThan, token.LessThanEquals, token.GreaterThan, token.GreaterThanEquals,
		token.And, token.Or,
	}
	for _, k := range binary {
		assert.True(t, k.IsBinaryOp(), "IsBinaryOp(%s)", k)
	}
	assert.False(t, token.Equals.IsBinaryOp())
	assert.False(t, token.Bang.IsBinaryOp())
	assert.False(t, token.Ampersand.IsBinaryOp())

	assigns := []token.Kind{
		token.Equals, token.PlusEquals, token.MinusEquals,
		token.AsteriskEquals, token.SlashEquals, token.PercentEquals,
	}
	for _, k := range assigns {
		assert.True(t, k.IsAssignOp(), "IsAssignOp(%s)", k)
	}
	assert.False(t, token.EqualsEquals.IsAssignOp())

	assert.True(t, token.Mut.IsKeyword())
	assert.False(t, token.Boolean.IsKeyword())
	assert.False(t, token.Int.IsKeyword())
	assert.True(t, token.FloatingPoint.IsLiteral())
	assert.False(t, token.EOF.IsLiteral())
	assert.True(t, token.Char.IsTypeName())
	assert.False(t, token.Struct.IsTypeName())
}

// TestKind_BinaryOf maps compound assignment operators to their base form.
func TestKind_BinaryOf(t *testing.T) {
	cases := map[token.Kind]token.Kind{
		token.PlusEquals:     token.Plus,
		token.MinusEquals:    token.Minus,
		token.AsteriskEquals: token.Asterisk,
		token.SlashEquals:    token.Slash,
		token.PercentEquals:  token.Percent,
		token.Equals:         token.Equals,
	}
	for in, want := range cases {
		assert.Equal(t, want, in.BinaryOf())
	}
}

// TestSpan_String renders file:line:col with the starting column.
func TestSpan_String(t *testing.T) {
	s := token.Span{File: "main.vel", Line: 3, Start: 7, End: 12}
	assert.Equal(t, "main.vel:3:7", s.String())
}

// TestSpan_To widens a span to the end of a later one on the same line and
// leaves it unchanged when the end lies on another line.
func TestSpan_To(t *testing.T) {
	a := token.Span{File: "main.vel", Line: 2, Start: 3, End: 5}
	b := token.Span{File: "main.vel", Line: 2, Start: 9, End: 14}
	assert.Equal(t, token.Span{File: "main.vel", Line: 2, Start: 3, End: 14}, a.To(b))

	c := token.Span{File: "main.vel", Line: 4, Start: 1, End: 2}
	assert.Equal(t, a, a.To(c))
}
