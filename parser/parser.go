package parser

import (
	"errors"
	"slices"
	"strings"

	"github.com/velocity-lang/velocity/ast"
	"github.com/velocity-lang/velocity/diag"
	"github.com/velocity-lang/velocity/token"
)

// Parse builds the syntax tree for one source file from its token stream.
// The returned *ast.File holds every statement that parsed cleanly; the
// returned error is nil or a diag.List with one entry per problem found.
// Both are meaningful at once: a file with errors still carries the
// statements around them.
func Parse(file string, toks []token.Token) (*ast.File, error) {
	if n := len(toks); n == 0 || toks[n-1].Kind != token.EOF {
		// lexer.Scan always terminates the stream; guard hand-built ones.
		eof := token.Token{Kind: token.EOF, Text: "<eof>",
			Span: token.Span{File: file, Line: 1, Start: 1, End: 1}}
		if n > 0 {
			eof.Span = toks[n-1].Span
		}
		toks = append(slices.Clone(toks), eof)
	}

	p := &parser{file: file, toks: toks}
	f := &ast.File{Path: file}
	for !p.at(token.EOF) {
		if p.match(token.Semicolon) {
			continue // stray semicolon, an empty statement
		}
		before := p.pos
		s, err := p.statement()
		if err != nil {
			p.report(err)
			p.synchronize()
			if p.pos == before {
				// a token synchronize refuses to cross, e.g. a stray }
				p.advance()
			}
			continue
		}
		f.Stmts = append(f.Stmts, s)
	}
	return f, p.errs.Err()
}

// parser is a cursor over the token stream. The stream always ends with an
// EOF token, so current never runs off the end.
type parser struct {
	file string
	toks []token.Token
	pos  int
	errs diag.List
}

// current returns the token under the cursor.
func (p *parser) current() token.Token {
	return p.toks[p.pos]
}

// next returns the token after the current one without advancing; it is the
// second half of the two-token lookahead used for named struct fields.
func (p *parser) next() token.Token {
	if p.pos+1 >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+1]
}

// at reports whether the current token is of the given kind.
func (p *parser) at(kind token.Kind) bool {
	return p.toks[p.pos].Kind == kind
}

// advance consumes and returns the current token. The final EOF is never
// consumed, so advancing past the end is harmless.
func (p *parser) advance() token.Token {
	t := p.toks[p.pos]
	if t.Kind != token.EOF {
		p.pos++
	}
	return t
}

// match consumes the current token only when it is of the given kind.
func (p *parser) match(kind token.Kind) bool {
	if p.at(kind) {
		p.advance()
		return true
	}
	return false
}

// expect consumes a token of the given kind or reports what was found
// instead, e.g. "expected ';', but got <identifier>".
func (p *parser) expect(kind token.Kind) (token.Token, error) {
	if p.at(kind) {
		return p.advance(), nil
	}
	return token.Token{}, diag.Errorf(p.current().Span,
		"expected %s, but got %s", quote(kind), quote(p.current().Kind))
}

// quote renders a kind for an error message: literal-class placeholders keep
// their angle brackets, every spelled form is single-quoted.
func quote(k token.Kind) string {
	text := k.String()
	if strings.HasPrefix(text, "<") {
		return text
	}
	return "'" + text + "'"
}

// report files err as a diagnostic.
func (p *parser) report(err error) {
	var d *diag.Error
	if errors.As(err, &d) {
		p.errs = append(p.errs, d)
		return
	}
	p.errs = append(p.errs, diag.Errorf(p.current().Span, "%s", err))
}

// synchronize skips ahead to the next statement boundary — just past a
// semicolon, or in front of a keyword that begins a statement or a closing
// brace — so one mistake produces one diagnostic instead of a cascade.
func (p *parser) synchronize() {
	for !p.at(token.EOF) {
		if p.match(token.Semicolon) {
			return
		}
		switch p.current().Kind {
		case token.Import, token.Struct, token.Fn, token.Enum, token.Union,
			token.Var, token.Const, token.For, token.Return, token.CloseBrace:
			return
		}
		p.advance()
	}
}

// list parses elements separated by commas up to the closing kind, which it
// consumes. A trailing comma before the terminator is accepted everywhere
// the grammar uses comma lists.
func (p *parser) list(end token.Kind, parse func() error) error {
	for !p.at(end) {
		if err := parse(); err != nil {
			return err
		}
		if p.at(end) {
			break
		}
		if _, err := p.expect(token.Comma); err != nil {
			return err
		}
	}
	_, err := p.expect(end)
	return err
}

// ident consumes an identifier token.
func (p *parser) ident() (*ast.Ident, error) {
	t, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	return &ast.Ident{Name: t.Text, Loc: t.Span}, nil
}

// statement dispatches on the current token. Declarations are statements,
// so they may appear at the top level and inside bodies alike.
func (p *parser) statement() (ast.Stmt, error) {
	switch p.current().Kind {
	case token.OpenBrace:
		return p.block()
	case token.Import:
		return p.importDecl()
	case token.Struct:
		return p.structDecl()
	case token.Fn:
		return p.fnDecl()
	case token.Enum:
		return p.enumDecl()
	case token.Union:
		return p.unionDecl()
	case token.Var:
		return p.varStmt(false)
	case token.Const:
		return p.varStmt(true)
	case token.For:
		return p.forStmt()
	case token.Return:
		return p.returnStmt()
	default:
		x, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Semicolon); err != nil {
			return nil, err
		}
		return &ast.ExprStmt{X: x}, nil
	}
}

// block parses { stmts... }. Errors inside the block are reported and
// recovered locally, so one bad statement does not discard its siblings.
func (p *parser) block() (ast.Stmt, error) {
	open, err := p.expect(token.OpenBrace)
	if err != nil {
		return nil, err
	}
	b := &ast.Block{Loc: open.Span}
	for !p.at(token.CloseBrace) && !p.at(token.EOF) {
		if p.match(token.Semicolon) {
			continue
		}
		s, err := p.statement()
		if err != nil {
			p.report(err)
			p.synchronize()
			continue
		}
		b.Stmts = append(b.Stmts, s)
	}
	if _, err := p.expect(token.CloseBrace); err != nil {
		return nil, err
	}
	return b, nil
}

// importDecl parses import name;.
func (p *parser) importDecl() (ast.Stmt, error) {
	kw := p.advance()
	path, err := p.ident()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return &ast.ImportDecl{Path: path, Loc: kw.Span}, nil
}

// structDecl parses struct Name { field: Type, ... }.
func (p *parser) structDecl() (ast.Stmt, error) {
	kw := p.advance()
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.OpenBrace); err != nil {
		return nil, err
	}
	d := &ast.StructDecl{Name: name, Loc: kw.Span}
	if err := p.list(token.CloseBrace, func() error {
		f, err := p.param()
		if err != nil {
			return err
		}
		d.Fields = append(d.Fields, f)
		return nil
	}); err != nil {
		return nil, err
	}
	return d, nil
}

// fnDecl parses fn Name(params) [-> Result] body. The body is any statement;
// in practice it is a block.
func (p *parser) fnDecl() (ast.Stmt, error) {
	kw := p.advance()
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.OpenParen); err != nil {
		return nil, err
	}
	d := &ast.FnDecl{Name: name, Loc: kw.Span}
	if err := p.list(token.CloseParen, func() error {
		param, err := p.param()
		if err != nil {
			return err
		}
		d.Params = append(d.Params, param)
		return nil
	}); err != nil {
		return nil, err
	}
	if p.match(token.Arrow) {
		if d.Result, err = p.typeExpr(); err != nil {
			return nil, err
		}
	}
	if d.Body, err = p.statement(); err != nil {
		return nil, err
	}
	return d, nil
}

// enumDecl parses enum Name [: Base] { Case [= value], ... }.
func (p *parser) enumDecl() (ast.Stmt, error) {
	kw := p.advance()
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	d := &ast.EnumDecl{Name: name, Loc: kw.Span}
	if p.match(token.Colon) {
		if d.Base, err = p.typeExpr(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.OpenBrace); err != nil {
		return nil, err
	}
	if err := p.list(token.CloseBrace, func() error {
		caseName, err := p.ident()
		if err != nil {
			return err
		}
		c := ast.EnumCase{Name: caseName}
		if p.match(token.Equals) {
			if c.Value, err = p.expression(); err != nil {
				return err
			}
		}
		d.Cases = append(d.Cases, c)
		return nil
	}); err != nil {
		return nil, err
	}
	return d, nil
}

// unionDecl parses union Name = A | B [| C [| D]];. The alternative count is
// validated later, during symbol collection, where the error can point at
// the declaration with full context.
func (p *parser) unionDecl() (ast.Stmt, error) {
	kw := p.advance()
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Equals); err != nil {
		return nil, err
	}
	d := &ast.UnionDecl{Name: name, Loc: kw.Span}
	for {
		alt, err := p.typeExpr()
		if err != nil {
			return nil, err
		}
		d.Alts = append(d.Alts, alt)
		if !p.match(token.Pipe) {
			break
		}
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return d, nil
}

// varStmt parses var|const Name [: Type] = value;.
func (p *parser) varStmt(isConst bool) (ast.Stmt, error) {
	kw := p.advance()
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	s := &ast.VarStmt{Const: isConst, Name: name, Loc: kw.Span}
	if p.match(token.Colon) {
		if s.Type, err = p.typeExpr(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.Equals); err != nil {
		return nil, err
	}
	if s.Value, err = p.expression(); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return s, nil
}

// forStmt parses for (name in range) body.
func (p *parser) forStmt() (ast.Stmt, error) {
	kw := p.advance()
	if _, err := p.expect(token.OpenParen); err != nil {
		return nil, err
	}
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.In); err != nil {
		return nil, err
	}
	s := &ast.ForStmt{Name: name, Loc: kw.Span}
	if s.Range, err = p.expression(); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.CloseParen); err != nil {
		return nil, err
	}
	if s.Body, err = p.statement(); err != nil {
		return nil, err
	}
	return s, nil
}

// returnStmt parses return [expr];.
func (p *parser) returnStmt() (ast.Stmt, error) {
	kw := p.advance()
	s := &ast.ReturnStmt{Loc: kw.Span}
	if !p.at(token.Semicolon) {
		var err error
		if s.Value, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return s, nil
}

// param parses one name: Type pair, shared by struct fields and fn
// parameters.
func (p *parser) param() (ast.Param, error) {
	name, err := p.ident()
	if err != nil {
		return ast.Param{}, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return ast.Param{}, err
	}
	t, err := p.typeExpr()
	if err != nil {
		return ast.Param{}, err
	}
	return ast.Param{Name: name, Type: t}, nil
}
