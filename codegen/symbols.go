package codegen

import (
	"github.com/velocity-lang/velocity/ast"
	"github.com/velocity-lang/velocity/diag"
	"github.com/velocity-lang/velocity/token"
)

// Names with builtin meaning during lowering.
const (
	seqTypeName    = "Array"
	stringTypeName = "string"
	mathModule     = "math"
)

// Symbols is the declaration table for one compilation: every struct, enum,
// union and function across the file and its import closure, keyed by name.
type Symbols struct {
	Structs map[string]*ast.StructDecl
	Enums   map[string]*ast.EnumDecl
	Unions  map[string]*ast.UnionDecl
	Funcs   map[string]*ast.FnDecl
	Imports map[string]bool
}

// Collect builds the symbol table for files, which must already form the
// full import closure. It reports duplicate definitions, unions with an
// unsupported number of alternatives or an alternative cycle, non-int enum
// bases, and references to unknown types, each at its span.
func Collect(files ...*ast.File) (*Symbols, error) {
	s := &Symbols{
		Structs: map[string]*ast.StructDecl{},
		Enums:   map[string]*ast.EnumDecl{},
		Unions:  map[string]*ast.UnionDecl{},
		Funcs:   map[string]*ast.FnDecl{},
		Imports: map[string]bool{},
	}
	var errs diag.List

	declared := map[string]token.Span{}
	declare := func(name *ast.Ident) bool {
		if prev, ok := declared[name.Name]; ok {
			errs = append(errs, diag.Errorf(name.Loc,
				"duplicate definition of '%s' (first defined at %s)", name.Name, prev))
			return false
		}
		declared[name.Name] = name.Loc
		return true
	}

	for _, f := range files {
		for _, stmt := range f.Stmts {
			switch d := stmt.(type) {
			case *ast.ImportDecl:
				s.Imports[d.Path.Name] = true
			case *ast.StructDecl:
				if declare(d.Name) {
					s.Structs[d.Name.Name] = d
				}
			case *ast.EnumDecl:
				if declare(d.Name) {
					s.Enums[d.Name.Name] = d
				}
			case *ast.UnionDecl:
				if declare(d.Name) {
					s.Unions[d.Name.Name] = d
				}
				if n := len(d.Alts); n < 2 || n > 4 {
					errs = append(errs, diag.Errorf(d.Name.Loc,
						"union '%s' needs 2 to 4 alternatives, has %d", d.Name.Name, n))
				}
			case *ast.FnDecl:
				if declare(d.Name) {
					s.Funcs[d.Name.Name] = d
				}
			}
		}
	}

	// Declarations may reference each other in any order, so type references
	// check only after the whole table is known.
	for _, d := range s.Structs {
		for _, f := range d.Fields {
			s.checkType(f.Type, &errs)
		}
	}
	for _, d := range s.Enums {
		if d.Base != nil {
			if bt, ok := d.Base.(*ast.BuiltinType); !ok || bt.Kind != token.Int {
				errs = append(errs, diag.Errorf(d.Base.Span(), "enum base type must be int"))
			}
		}
	}
	for name, d := range s.Unions {
		for _, alt := range d.Alts {
			s.checkType(alt, &errs)
		}
		if s.unionCycle(name, map[string]bool{}) {
			errs = append(errs, diag.Errorf(d.Name.Loc,
				"union '%s' refers to itself through its alternatives", name))
		}
	}
	for _, d := range s.Funcs {
		for _, p := range d.Params {
			s.checkType(p.Type, &errs)
		}
		if d.Result != nil {
			s.checkType(d.Result, &errs)
		}
	}

	errs.SortBySpan()
	return s, errs.Err()
}

// checkType validates one type reference against the table.
func (s *Symbols) checkType(t ast.Type, errs *diag.List) {
	switch t := t.(type) {
	case *ast.NamedType:
		if !s.typeKnown(t.Name.Name) {
			*errs = append(*errs, diag.Errorf(t.Name.Loc, "unknown type '%s'", t.Name.Name))
		}
	case *ast.GenericType:
		if t.Name.Name != seqTypeName {
			*errs = append(*errs, diag.Errorf(t.Name.Loc,
				"unknown generic type '%s'", t.Name.Name))
		} else if len(t.Args) != 1 {
			*errs = append(*errs, diag.Errorf(t.Name.Loc,
				"%s takes exactly one type argument", seqTypeName))
		}
		for _, a := range t.Args {
			s.checkType(a, errs)
		}
	case *ast.RefType:
		s.checkType(t.Elem, errs)
	case *ast.QualifiedType:
		base, ok := t.Base.(*ast.NamedType)
		if !ok || !s.Imports[base.Name.Name] {
			*errs = append(*errs, diag.Errorf(t.Span(),
				"unknown module in type '%s'", velName(t)))
			return
		}
		if !s.typeKnown(t.Sel.Name) {
			*errs = append(*errs, diag.Errorf(t.Sel.Loc, "unknown type '%s'", t.Sel.Name))
		}
	case *ast.FnType:
		for _, p := range t.Params {
			s.checkType(p, errs)
		}
		if t.Result != nil {
			s.checkType(t.Result, errs)
		}
	}
}

// typeKnown reports whether name resolves to a declared type or the builtin
// string type.
func (s *Symbols) typeKnown(name string) bool {
	if name == stringTypeName {
		return true
	}
	if _, ok := s.Structs[name]; ok {
		return true
	}
	if _, ok := s.Enums[name]; ok {
		return true
	}
	_, ok := s.Unions[name]
	return ok
}

// unionCycle reports whether following union alternatives from name leads
// back to a union already on the path. Union lowering produces Go type
// aliases, which cannot be cyclic.
func (s *Symbols) unionCycle(name string, path map[string]bool) bool {
	if path[name] {
		return true
	}
	path[name] = true
	for _, alt := range s.Unions[name].Alts {
		altName := typeName(alt)
		if _, ok := s.Unions[altName]; ok && s.unionCycle(altName, path) {
			return true
		}
	}
	delete(path, name)
	return false
}

// unionDef resolves t to a union declaration, or nil.
func (s *Symbols) unionDef(t ast.Type) *ast.UnionDecl {
	return s.Unions[typeName(t)]
}

// typeName extracts the bare name a named or qualified type refers to.
func typeName(t ast.Type) string {
	switch t := t.(type) {
	case *ast.NamedType:
		return t.Name.Name
	case *ast.QualifiedType:
		return t.Sel.Name
	}
	return ""
}
