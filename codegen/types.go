package codegen

import (
	"strings"

	"github.com/velocity-lang/velocity/ast"
	"github.com/velocity-lang/velocity/token"
)

// goKeywords are the Go reserved words with no velocity counterpart; a
// velocity identifier spelling one of them gets a trailing underscore so
// the emitted file still compiles. Velocity's own keywords can never reach
// here, the lexer classifies them before an identifier exists.
var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true,
	"func": true, "go": true, "goto": true, "if": true, "interface": true,
	"map": true, "package": true, "range": true, "select": true,
	"switch": true, "type": true,
}

// goName renders a velocity identifier as a Go identifier.
func goName(name string) string {
	if goKeywords[name] {
		return name + "_"
	}
	return name
}

// enumConst names the Go constant for one enum case. The enum name prefixes
// the case, preserving the scoped Enum.Case lookup without colliding across
// enums.
func enumConst(enum, name string) string {
	return goName(enum + name)
}

// goType renders a velocity type as Go source. It is pure; emission paths
// that need the runtime imports charged go through generator.typ.
func goType(t ast.Type) string {
	switch t := t.(type) {
	case *ast.BuiltinType:
		return scalarType(t.Kind)
	case *ast.NamedType:
		if t.Name.Name == stringTypeName {
			return "string"
		}
		return goName(t.Name.Name)
	case *ast.GenericType:
		if t.Name.Name == seqTypeName && len(t.Args) == 1 {
			return "*seq.Seq[" + goType(t.Args[0]) + "]"
		}
		args := make([]string, len(t.Args))
		for i, a := range t.Args {
			args[i] = goType(a)
		}
		return goName(t.Name.Name) + "[" + strings.Join(args, ", ") + "]"
	case *ast.RefType:
		if _, ok := isSeq(t.Elem); ok {
			// A sequence is already a pointer; borrowing one shares the
			// same backing either way.
			return goType(t.Elem)
		}
		if t.Mutable {
			return "*" + goType(t.Elem)
		}
		return goType(t.Elem)
	case *ast.QualifiedType:
		// Imported modules share the emitted package, so the qualifier drops.
		return goName(t.Sel.Name)
	case *ast.FnType:
		params := make([]string, len(t.Params))
		for i, p := range t.Params {
			params[i] = goType(p)
		}
		out := "func(" + strings.Join(params, ", ") + ")"
		if t.Result != nil {
			out += " " + goType(t.Result)
		}
		return out
	}
	return "any"
}

// scalarType maps the builtin scalar names onto Go.
func scalarType(k token.Kind) string {
	switch k {
	case token.Int:
		return "int"
	case token.Float:
		return "float64"
	case token.Bool:
		return "bool"
	case token.Char:
		return "rune"
	}
	return "any"
}

// velName renders a type the way velocity source spells it, for diagnostics.
func velName(t ast.Type) string {
	switch t := t.(type) {
	case *ast.BuiltinType:
		return t.Kind.String()
	case *ast.NamedType:
		return t.Name.Name
	case *ast.GenericType:
		args := make([]string, len(t.Args))
		for i, a := range t.Args {
			args[i] = velName(a)
		}
		return t.Name.Name + "[" + strings.Join(args, ", ") + "]"
	case *ast.RefType:
		if t.Mutable {
			return "&mut " + velName(t.Elem)
		}
		return "&" + velName(t.Elem)
	case *ast.QualifiedType:
		return velName(t.Base) + "." + t.Sel.Name
	case *ast.FnType:
		params := make([]string, len(t.Params))
		for i, p := range t.Params {
			params[i] = velName(p)
		}
		out := "fn(" + strings.Join(params, ", ") + ")"
		if t.Result != nil {
			out += " -> " + velName(t.Result)
		}
		return out
	}
	return "?"
}

// formattable reports whether values of type t carry a formatting
// capability: the scalars and string directly, sequences and immutable
// borrows when their element does, unions when every alternative does.
// Structs and enums lower to types with no capability, so they do not.
func (s *Symbols) formattable(t ast.Type) bool {
	return s.formattableIn(t, map[string]bool{})
}

func (s *Symbols) formattableIn(t ast.Type, seen map[string]bool) bool {
	switch t := t.(type) {
	case *ast.BuiltinType:
		return true
	case *ast.NamedType, *ast.QualifiedType:
		name := typeName(t)
		if name == stringTypeName {
			return true
		}
		u, ok := s.Unions[name]
		if !ok || seen[name] {
			return false
		}
		seen[name] = true
		for _, alt := range u.Alts {
			if !s.formattableIn(alt, seen) {
				return false
			}
		}
		return true
	case *ast.GenericType:
		return t.Name.Name == seqTypeName && len(t.Args) == 1 &&
			s.formattableIn(t.Args[0], seen)
	case *ast.RefType:
		return !t.Mutable && s.formattableIn(t.Elem, seen)
	}
	return false
}

// Singleton types the inference hands out for literals.
var (
	intType    = &ast.BuiltinType{Kind: token.Int}
	floatType  = &ast.BuiltinType{Kind: token.Float}
	boolType   = &ast.BuiltinType{Kind: token.Bool}
	charType   = &ast.BuiltinType{Kind: token.Char}
	stringType = &ast.NamedType{Name: &ast.Ident{Name: stringTypeName}}
)

// isSeq reports whether t is the builtin sequence type, returning its
// element type.
func isSeq(t ast.Type) (ast.Type, bool) {
	g, ok := t.(*ast.GenericType)
	if !ok || g.Name.Name != seqTypeName || len(g.Args) != 1 {
		return nil, false
	}
	return g.Args[0], true
}

// isString reports whether t is the builtin string type.
func isString(t ast.Type) bool {
	return typeName(t) == stringTypeName
}

// deref peels immutable and mutable borrows off t; methods and fields reach
// through references either way.
func deref(t ast.Type) ast.Type {
	for {
		r, ok := t.(*ast.RefType)
		if !ok {
			return t
		}
		t = r.Elem
	}
}
