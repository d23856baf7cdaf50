package parser

import (
	"slices"
	"strconv"
	"unicode/utf8"

	"github.com/velocity-lang/velocity/ast"
	"github.com/velocity-lang/velocity/diag"
	"github.com/velocity-lang/velocity/token"
)

// expression parses at the lowest precedence level.
func (p *parser) expression() (ast.Expr, error) {
	return p.assignment()
}

// assignment parses target op value for = and the compound forms. It
// associates right, so a = b = c assigns c to b first. Whether the target is
// assignable at all is codegen's concern; the grammar accepts any postfix
// chain.
func (p *parser) assignment() (ast.Expr, error) {
	x, err := p.logicalOr()
	if err != nil {
		return nil, err
	}
	if op := p.current(); op.Kind.IsAssignOp() {
		p.advance()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		return &ast.Assign{Target: x, Op: op.Kind, Value: value, Loc: op.Span}, nil
	}
	return x, nil
}

// binary parses a left-associative run of the given operators with operands
// one precedence level higher, so a - b + c is (a - b) + c.
func (p *parser) binary(operand func() (ast.Expr, error), ops ...token.Kind) (ast.Expr, error) {
	x, err := operand()
	if err != nil {
		return nil, err
	}
	for slices.Contains(ops, p.current().Kind) {
		op := p.advance()
		y, err := operand()
		if err != nil {
			return nil, err
		}
		x = &ast.Binary{X: x, Op: op.Kind, Y: y, Loc: op.Span}
	}
	return x, nil
}

func (p *parser) logicalOr() (ast.Expr, error) {
	return p.binary(p.logicalAnd, token.Or)
}

func (p *parser) logicalAnd() (ast.Expr, error) {
	return p.binary(p.equality, token.And)
}

func (p *parser) equality() (ast.Expr, error) {
	return p.binary(p.comparison, token.EqualsEquals, token.BangEquals)
}

func (p *parser) comparison() (ast.Expr, error) {
	return p.binary(p.term,
		token.LessThan, token.LessThanEquals,
		token.GreaterThan, token.GreaterThanEquals)
}

func (p *parser) term() (ast.Expr, error) {
	return p.binary(p.factor, token.Plus, token.Minus)
}

func (p *parser) factor() (ast.Expr, error) {
	return p.binary(p.unary, token.Asterisk, token.Slash, token.Percent)
}

// unary parses prefix operators, which nest: - -x negates twice. &mut is the
// one two-token operator; the mut rides along as a flag on the ampersand.
func (p *parser) unary() (ast.Expr, error) {
	if !p.current().Kind.IsUnaryOp() {
		return p.postfix()
	}
	op := p.advance()
	mutable := op.Kind == token.Ampersand && p.match(token.Mut)
	x, err := p.unary()
	if err != nil {
		return nil, err
	}
	return &ast.Unary{Op: op.Kind, Mutable: mutable, X: x, Loc: op.Span}, nil
}

// postfix parses call, index, member and struct-literal suffixes, which
// chain in any order: a.b[0](1).c parses as one spine.
func (p *parser) postfix() (ast.Expr, error) {
	x, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.match(token.OpenParen):
			call := &ast.Call{Fun: x}
			if err := p.list(token.CloseParen, func() error {
				arg, err := p.expression()
				if err != nil {
					return err
				}
				call.Args = append(call.Args, arg)
				return nil
			}); err != nil {
				return nil, err
			}
			x = call
		case p.match(token.OpenBracket):
			idx, err := p.expression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.CloseBracket); err != nil {
				return nil, err
			}
			x = &ast.Index{X: x, Idx: idx}
		case p.match(token.Dot):
			sel, err := p.ident()
			if err != nil {
				return nil, err
			}
			x = &ast.Member{X: x, Sel: sel}
		case p.at(token.OpenBrace):
			if x, err = p.structLit(x); err != nil {
				return nil, err
			}
		default:
			return x, nil
		}
	}
}

// structLit parses T { ... } after the type expression. A field beginning
// name = is named; any other field is a positional value, so both
// Point { x = 1, y = 2 } and Point { 1, 2 } parse. Telling a named field
// from a positional identifier takes the second lookahead token.
func (p *parser) structLit(typ ast.Expr) (ast.Expr, error) {
	p.advance() // opening brace
	lit := &ast.StructLit{Type: typ}
	if err := p.list(token.CloseBrace, func() error {
		var f ast.StructField
		if p.at(token.Identifier) && p.next().Kind == token.Equals {
			name, err := p.ident()
			if err != nil {
				return err
			}
			p.advance() // =
			f.Name = name
		}
		value, err := p.expression()
		if err != nil {
			return err
		}
		f.Value = value
		lit.Fields = append(lit.Fields, f)
		return nil
	}); err != nil {
		return nil, err
	}
	return lit, nil
}

// primary parses the leaves: literals, identifiers, array literals, and
// parenthesized groupings.
func (p *parser) primary() (ast.Expr, error) {
	t := p.current()
	switch t.Kind {
	case token.Identifier:
		p.advance()
		return &ast.Ident{Name: t.Text, Loc: t.Span}, nil
	case token.String:
		p.advance()
		return &ast.StringLit{Value: t.Text, Loc: t.Span}, nil
	case token.Character:
		p.advance()
		r, _ := utf8.DecodeRuneInString(t.Text)
		return &ast.CharLit{Value: r, Loc: t.Span}, nil
	case token.Integer:
		p.advance()
		v, err := strconv.ParseInt(t.Text, 10, 64)
		if err != nil {
			return nil, diag.Errorf(t.Span, "integer literal out of range: %s", t.Text)
		}
		return &ast.IntLit{Value: v, Text: t.Text, Loc: t.Span}, nil
	case token.FloatingPoint:
		p.advance()
		v, err := strconv.ParseFloat(t.Text, 64)
		if err != nil {
			return nil, diag.Errorf(t.Span, "floating point literal out of range: %s", t.Text)
		}
		return &ast.FloatLit{Value: v, Text: t.Text, Loc: t.Span}, nil
	case token.Boolean:
		p.advance()
		return &ast.BoolLit{Value: t.Text == "true", Loc: t.Span}, nil
	case token.OpenBracket:
		p.advance()
		lit := &ast.ArrayLit{Loc: t.Span}
		if err := p.list(token.CloseBracket, func() error {
			elem, err := p.expression()
			if err != nil {
				return err
			}
			lit.Elems = append(lit.Elems, elem)
			return nil
		}); err != nil {
			return nil, err
		}
		return lit, nil
	case token.OpenParen:
		p.advance()
		x, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.CloseParen); err != nil {
			return nil, err
		}
		return x, nil
	}
	return nil, diag.Errorf(t.Span, "expected an expression, but got %s", quote(t.Kind))
}
