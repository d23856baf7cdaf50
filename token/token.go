package token

import "strconv"

// Kind identifies the lexical class of a token.
type Kind int

// Enum values (stable ordering; EOF first so the zero Token is an EOF).
const (
	EOF Kind = iota

	// Literals.
	Identifier
	String
	Character
	Integer
	FloatingPoint
	Boolean

	// Keywords.
	Import
	Struct
	Fn
	Mut
	Var
	Const
	For
	In
	Return
	Enum
	Union
	And
	Or

	// Builtin type names.
	Int
	Float
	Bool
	Char

	// Operators.
	Plus
	PlusEquals
	Minus
	MinusEquals
	Asterisk
	AsteriskEquals
	Slash
	SlashEquals
	Percent
	PercentEquals
	Equals
	EqualsEquals
	Bang
	BangEquals
	LessThan
	LessThanEquals
	GreaterThan
	GreaterThanEquals

	// Punctuation.
	OpenParen
	CloseParen
	OpenBrace
	CloseBrace
	OpenBracket
	CloseBracket
	Comma
	Dot
	Colon
	Semicolon
	Ampersand
	Pipe
	Arrow

	kindCount
)

// kindText maps each Kind to its display text. Literal classes render as a
// placeholder in angle brackets (they have no single spelling), everything
// else renders verbatim, so parser diagnostics read naturally:
//
//	expected ';', but got <identifier>
var kindText = [kindCount]string{
	EOF:           "<eof>",
	Identifier:    "<identifier>",
	String:        "<string>",
	Character:     "<character>",
	Integer:       "<integer>",
	FloatingPoint: "<floating point>",
	Boolean:       "<boolean>",

	Import: "import",
	Struct: "struct",
	Fn:     "fn",
	Mut:    "mut",
	Var:    "var",
	Const:  "const",
	For:    "for",
	In:     "in",
	Return: "return",
	Enum:   "enum",
	Union:  "union",
	And:    "and",
	Or:     "or",

	Int:   "int",
	Float: "float",
	Bool:  "bool",
	Char:  "char",

	Plus:              "+",
	PlusEquals:        "+=",
	Minus:             "-",
	MinusEquals:       "-=",
	Asterisk:          "*",
	AsteriskEquals:    "*=",
	Slash:             "/",
	SlashEquals:       "/=",
	Percent:           "%",
	PercentEquals:     "%=",
	Equals:            "=",
	EqualsEquals:      "==",
	Bang:              "!",
	BangEquals:        "!=",
	LessThan:          "<",
	LessThanEquals:    "<=",
	GreaterThan:       ">",
	GreaterThanEquals: ">=",

	OpenParen:    "(",
	CloseParen:   ")",
	OpenBrace:    "{",
	CloseBrace:   "}",
	OpenBracket:  "[",
	CloseBracket: "]",
	Comma:        ",",
	Dot:          ".",
	Colon:        ":",
	Semicolon:    ";",
	Ampersand:    "&",
	Pipe:         "|",
	Arrow:        "->",
}

// String returns the display text of k.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindText[k]
}

// keywords maps reserved words (and the boolean literals, which scan like
// identifiers) to their kinds.
var keywords = map[string]Kind{
	"import": Import,
	"struct": Struct,
	"fn":     Fn,
	"mut":    Mut,
	"var":    Var,
	"const":  Const,
	"for":    For,
	"in":     In,
	"return": Return,
	"enum":   Enum,
	"union":  Union,
	"and":    And,
	"or":     Or,
	"true":   Boolean,
	"false":  Boolean,
	"int":    Int,
	"float":  Float,
	"bool":   Bool,
	"char":   Char,
}

// Lookup classifies an identifier-shaped word: a keyword kind, Boolean for
// "true"/"false", a builtin type kind, or Identifier for anything else.
func Lookup(word string) Kind {
	if k, ok := keywords[word]; ok {
		return k
	}
	return Identifier
}

// IsKeyword reports whether k is a reserved word (boolean literals excluded).
func (k Kind) IsKeyword() bool { return Import <= k && k <= Or }

// IsLiteral reports whether k is a literal class.
func (k Kind) IsLiteral() bool { return Identifier <= k && k <= Boolean }

// IsTypeName reports whether k names a builtin scalar type.
func (k Kind) IsTypeName() bool { return Int <= k && k <= Char }

// IsUnaryOp reports whether k may begin a unary expression.
func (k Kind) IsUnaryOp() bool {
	switch k {
	case Plus, Minus, Bang, Ampersand:
		return true
	}
	return false
}

// IsBinaryOp reports whether k is an infix operator of the expression grammar.
func (k Kind) IsBinaryOp() bool {
	switch k {
	case Plus, Minus, Asterisk, Slash, Percent,
		EqualsEquals, BangEquals,
		LessThan, LessThanEquals, GreaterThan, GreaterThanEquals,
		And, Or:
		return true
	}
	return false
}

// IsAssignOp reports whether k assigns: plain = or one of the compound forms.
func (k Kind) IsAssignOp() bool {
	switch k {
	case Equals, PlusEquals, MinusEquals, AsteriskEquals, SlashEquals, PercentEquals:
		return true
	}
	return false
}

// BinaryOf maps a compound assignment operator to the underlying binary
// operator (PlusEquals to Plus, and so on). Plain Equals maps to itself.
func (k Kind) BinaryOf() Kind {
	switch k {
	case PlusEquals:
		return Plus
	case MinusEquals:
		return Minus
	case AsteriskEquals:
		return Asterisk
	case SlashEquals:
		return Slash
	case PercentEquals:
		return Percent
	}
	return k
}

// Token is a single lexical unit. Text holds the raw scanned spelling; for
// String and Character it is the decoded payload without quotes.
type Token struct {
	Kind Kind
	Text string
	Span Span
}

// Span locates a token (or a diagnostic) on a single source line.
// Line is 1-based; Start and End are 1-based inclusive columns, so a
// one-column token has Start == End.
type Span struct {
	File  string
	Line  int
	Start int
	End   int
}

// String renders the conventional file:line:col form used in diagnostics.
func (s Span) String() string {
	return s.File + ":" + strconv.Itoa(s.Line) + ":" + strconv.Itoa(s.Start)
}

// To returns a span covering s through end (same file and line conventions;
// used to span multi-token constructs for diagnostics).
func (s Span) To(end Span) Span {
	out := s
	if end.Line == s.Line {
		out.End = end.End
	}
	return out
}
