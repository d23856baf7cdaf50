package ast

import "github.com/velocity-lang/velocity/token"

// Node is implemented by every syntax tree node.
type Node interface {
	Span() token.Span
}

// Expr nodes produce a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt nodes execute. Declarations implement Stmt too, so they may appear
// wherever a statement is accepted.
type Stmt interface {
	Node
	stmtNode()
}

// Decl nodes introduce a named top-level form.
type Decl interface {
	Stmt
	declNode()
}

// Type nodes name a type in source.
type Type interface {
	Node
	typeNode()
}

// File is one parsed source file.
type File struct {
	Path  string
	Stmts []Stmt
}

// Span reports the top of the file.
func (f *File) Span() token.Span {
	return token.Span{File: f.Path, Line: 1, Start: 1, End: 1}
}

// ---------------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------------

// Ident is a name reference.
type Ident struct {
	Name string
	Loc  token.Span
}

// StringLit is a double-quoted literal; Value holds the decoded text.
type StringLit struct {
	Value string
	Loc   token.Span
}

// CharLit is a single-quoted literal.
type CharLit struct {
	Value rune
	Loc   token.Span
}

// IntLit keeps both the parsed value and the source spelling.
type IntLit struct {
	Value int64
	Text  string
	Loc   token.Span
}

// FloatLit keeps both the parsed value and the source spelling.
type FloatLit struct {
	Value float64
	Text  string
	Loc   token.Span
}

// BoolLit is true or false.
type BoolLit struct {
	Value bool
	Loc   token.Span
}

// ArrayLit is [e1, e2, ...].
type ArrayLit struct {
	Elems []Expr
	Loc   token.Span // opening bracket
}

// StructLit is T { a = e, ... }; a field without a name is positional.
type StructLit struct {
	Type   Expr
	Fields []StructField
}

// StructField is one member initializer inside a StructLit.
type StructField struct {
	Name  *Ident // nil for positional fields
	Value Expr
}

// Unary is op x. Mutable marks the &mut form of Ampersand.
type Unary struct {
	Op      token.Kind
	Mutable bool
	X       Expr
	Loc     token.Span // operator
}

// Binary is x op y with op from the arithmetic, comparison, equality, or
// logical classes.
type Binary struct {
	X   Expr
	Op  token.Kind
	Y   Expr
	Loc token.Span // operator
}

// Assign is target op value, where op is = or a compound form.
type Assign struct {
	Target Expr
	Op     token.Kind
	Value  Expr
	Loc    token.Span // operator
}

// Call is fun(args...).
type Call struct {
	Fun  Expr
	Args []Expr
}

// Index is x[idx].
type Index struct {
	X   Expr
	Idx Expr
}

// Member is x.sel.
type Member struct {
	X   Expr
	Sel *Ident
}

func (x *Ident) Span() token.Span     { return x.Loc }
func (x *StringLit) Span() token.Span { return x.Loc }
func (x *CharLit) Span() token.Span   { return x.Loc }
func (x *IntLit) Span() token.Span    { return x.Loc }
func (x *FloatLit) Span() token.Span  { return x.Loc }
func (x *BoolLit) Span() token.Span   { return x.Loc }
func (x *ArrayLit) Span() token.Span  { return x.Loc }
func (x *StructLit) Span() token.Span { return x.Type.Span() }
func (x *Unary) Span() token.Span     { return x.Loc }
func (x *Binary) Span() token.Span    { return x.Loc }
func (x *Assign) Span() token.Span    { return x.Loc }
func (x *Call) Span() token.Span      { return x.Fun.Span() }
func (x *Index) Span() token.Span     { return x.X.Span() }
func (x *Member) Span() token.Span    { return x.X.Span() }

func (*Ident) exprNode()     {}
func (*StringLit) exprNode() {}
func (*CharLit) exprNode()   {}
func (*IntLit) exprNode()    {}
func (*FloatLit) exprNode()  {}
func (*BoolLit) exprNode()   {}
func (*ArrayLit) exprNode()  {}
func (*StructLit) exprNode() {}
func (*Unary) exprNode()     {}
func (*Binary) exprNode()    {}
func (*Assign) exprNode()    {}
func (*Call) exprNode()      {}
func (*Index) exprNode()     {}
func (*Member) exprNode()    {}

// ---------------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------------

// Block is { stmts... }.
type Block struct {
	Stmts []Stmt
	Loc   token.Span // opening brace
}

// VarStmt is a var or const binding; Type is nil when inferred.
type VarStmt struct {
	Const bool
	Name  *Ident
	Type  Type
	Value Expr
	Loc   token.Span // keyword
}

// ForStmt is for (name in range) body.
type ForStmt struct {
	Name  *Ident
	Range Expr
	Body  Stmt
	Loc   token.Span // keyword
}

// ReturnStmt is return [expr].
type ReturnStmt struct {
	Value Expr // nil for a bare return
	Loc   token.Span
}

// ExprStmt is an expression evaluated for effect.
type ExprStmt struct {
	X Expr
}

func (s *Block) Span() token.Span      { return s.Loc }
func (s *VarStmt) Span() token.Span    { return s.Loc }
func (s *ForStmt) Span() token.Span    { return s.Loc }
func (s *ReturnStmt) Span() token.Span { return s.Loc }
func (s *ExprStmt) Span() token.Span   { return s.X.Span() }

func (*Block) stmtNode()      {}
func (*VarStmt) stmtNode()    {}
func (*ForStmt) stmtNode()    {}
func (*ReturnStmt) stmtNode() {}
func (*ExprStmt) stmtNode()   {}

// ---------------------------------------------------------------------------
// Declarations
// ---------------------------------------------------------------------------

// ImportDecl is import name.
type ImportDecl struct {
	Path *Ident
	Loc  token.Span // keyword
}

// StructDecl is struct Name { field: Type, ... }.
type StructDecl struct {
	Name   *Ident
	Fields []Param
	Loc    token.Span
}

// FnDecl is fn Name(params) [-> Result] body.
type FnDecl struct {
	Name   *Ident
	Params []Param
	Result Type // nil when the function returns nothing
	Body   Stmt
	Loc    token.Span
}

// EnumDecl is enum Name [: Base] { Case [= value], ... }.
type EnumDecl struct {
	Name  *Ident
	Base  Type // nil unless an explicit base type is given
	Cases []EnumCase
	Loc   token.Span
}

// EnumCase is one enumerator, optionally pinned to a value.
type EnumCase struct {
	Name  *Ident
	Value Expr // nil for implicit ordering
}

// UnionDecl is union Name = A | B [| C [| D]];.
type UnionDecl struct {
	Name *Ident
	Alts []Type
	Loc  token.Span
}

// Param is a name: Type pair used by struct fields and fn parameters.
type Param struct {
	Name *Ident
	Type Type
}

func (d *ImportDecl) Span() token.Span { return d.Loc }
func (d *StructDecl) Span() token.Span { return d.Loc }
func (d *FnDecl) Span() token.Span     { return d.Loc }
func (d *EnumDecl) Span() token.Span   { return d.Loc }
func (d *UnionDecl) Span() token.Span  { return d.Loc }

func (*ImportDecl) stmtNode() {}
func (*StructDecl) stmtNode() {}
func (*FnDecl) stmtNode()     {}
func (*EnumDecl) stmtNode()   {}
func (*UnionDecl) stmtNode()  {}

func (*ImportDecl) declNode() {}
func (*StructDecl) declNode() {}
func (*FnDecl) declNode()     {}
func (*EnumDecl) declNode()   {}
func (*UnionDecl) declNode()  {}
