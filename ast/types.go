package ast

import "github.com/velocity-lang/velocity/token"

// BuiltinType is one of the scalar type names int, float, bool, char;
// Kind holds the corresponding token kind.
type BuiltinType struct {
	Kind token.Kind
	Loc  token.Span
}

// NamedType refers to a user-defined type by name.
type NamedType struct {
	Name *Ident
}

// RefType is &T or, with Mutable set, &mut T.
type RefType struct {
	Mutable bool
	Elem    Type
	Loc     token.Span // ampersand
}

// GenericType is Name[Args...].
type GenericType struct {
	Name *Ident
	Args []Type
}

// QualifiedType is Base.Sel, a type reached through an imported module.
type QualifiedType struct {
	Base Type
	Sel  *Ident
}

// FnType is fn(Params...) -> Result.
type FnType struct {
	Params []Type
	Result Type
	Loc    token.Span // fn keyword
}

func (t *BuiltinType) Span() token.Span   { return t.Loc }
func (t *NamedType) Span() token.Span     { return t.Name.Loc }
func (t *RefType) Span() token.Span       { return t.Loc }
func (t *GenericType) Span() token.Span   { return t.Name.Loc }
func (t *QualifiedType) Span() token.Span { return t.Base.Span() }
func (t *FnType) Span() token.Span        { return t.Loc }

func (*BuiltinType) typeNode()   {}
func (*NamedType) typeNode()     {}
func (*RefType) typeNode()       {}
func (*GenericType) typeNode()   {}
func (*QualifiedType) typeNode() {}
func (*FnType) typeNode()        {}
