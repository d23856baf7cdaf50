package parser

import (
	"github.com/velocity-lang/velocity/ast"
	"github.com/velocity-lang/velocity/diag"
	"github.com/velocity-lang/velocity/token"
)

// typeExpr parses a type: a head form followed by .member qualifiers, so
// math.Angle reaches a type through an imported module.
func (p *parser) typeExpr() (ast.Type, error) {
	t, err := p.headType()
	if err != nil {
		return nil, err
	}
	for p.match(token.Dot) {
		sel, err := p.ident()
		if err != nil {
			return nil, err
		}
		t = &ast.QualifiedType{Base: t, Sel: sel}
	}
	return t, nil
}

// headType parses the head forms: &T and &mut T references, the builtin
// scalar names, named and generic types, and fn(T, ...) -> T. A reference
// element is a full typeExpr, so &math.Angle references the qualified type.
func (p *parser) headType() (ast.Type, error) {
	t := p.current()
	switch t.Kind {
	case token.Ampersand:
		p.advance()
		mutable := p.match(token.Mut)
		elem, err := p.typeExpr()
		if err != nil {
			return nil, err
		}
		return &ast.RefType{Mutable: mutable, Elem: elem, Loc: t.Span}, nil

	case token.Int, token.Float, token.Bool, token.Char:
		p.advance()
		return &ast.BuiltinType{Kind: t.Kind, Loc: t.Span}, nil

	case token.Identifier:
		p.advance()
		name := &ast.Ident{Name: t.Text, Loc: t.Span}
		if p.match(token.OpenBracket) {
			g := &ast.GenericType{Name: name}
			if err := p.list(token.CloseBracket, func() error {
				arg, err := p.typeExpr()
				if err != nil {
					return err
				}
				g.Args = append(g.Args, arg)
				return nil
			}); err != nil {
				return nil, err
			}
			return g, nil
		}
		return &ast.NamedType{Name: name}, nil

	case token.Fn:
		p.advance()
		ft := &ast.FnType{Loc: t.Span}
		if _, err := p.expect(token.OpenParen); err != nil {
			return nil, err
		}
		if err := p.list(token.CloseParen, func() error {
			param, err := p.typeExpr()
			if err != nil {
				return err
			}
			ft.Params = append(ft.Params, param)
			return nil
		}); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Arrow); err != nil {
			return nil, err
		}
		result, err := p.typeExpr()
		if err != nil {
			return nil, err
		}
		ft.Result = result
		return ft, nil
	}
	return nil, diag.Errorf(t.Span, "expected a type, but got %s", quote(t.Kind))
}
