package codegen

import (
	"bytes"
	"fmt"
	gofmt "go/format"
	"maps"
	"slices"
	"strings"

	"github.com/velocity-lang/velocity/ast"
	"github.com/velocity-lang/velocity/diag"
	"github.com/velocity-lang/velocity/token"
)

// runtimeModule is the import root of the packages generated programs call.
const runtimeModule = "github.com/velocity-lang/velocity"

// Generate emits one Go source file for f against the collected symbols.
// pkg names the emitted package; "main" makes a runnable program with
// velocity's main mapped onto Go's. Problems in the source come back as a
// diag.List; an emitted text that go/format rejects wraps ErrFormat.
func Generate(f *ast.File, syms *Symbols, pkg string) ([]byte, error) {
	raw, err := Emit(f, syms, pkg)
	if err != nil {
		return nil, err
	}
	src, err := gofmt.Source(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return src, nil
}

// Emit is Generate without the final go/format pass, preserving the
// emitter's raw layout for debugging the emitter itself.
func Emit(f *ast.File, syms *Symbols, pkg string) ([]byte, error) {
	g := &generator{syms: syms, imports: map[string]bool{}}
	g.pushScope()
	g.predeclare(f)

	var body bytes.Buffer
	for _, stmt := range f.Stmts {
		g.topLevel(&body, stmt)
	}
	if len(g.errs) > 0 {
		g.errs.SortBySpan()
		return nil, g.errs.Err()
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, "// Code generated by velocity from %s; DO NOT EDIT.\n\n", f.Path)
	fmt.Fprintf(&out, "package %s\n\n", pkg)
	if len(g.imports) > 0 {
		out.WriteString("import (\n")
		for _, p := range slices.Sorted(maps.Keys(g.imports)) {
			fmt.Fprintf(&out, "\t%q\n", runtimeModule+"/"+p)
		}
		out.WriteString(")\n\n")
	}
	out.Write(body.Bytes())
	return out.Bytes(), nil
}

// generator carries the emission state for one file.
type generator struct {
	syms    *Symbols
	imports map[string]bool
	errs    diag.List
	scopes  []map[string]ast.Type
	result  ast.Type // result type of the function being emitted
}

func (g *generator) use(pkg string) { g.imports[pkg] = true }

func (g *generator) fail(span token.Span, format string, args ...any) {
	g.errs = append(g.errs, diag.Errorf(span, format, args...))
}

// typ renders t for emission, charging the runtime packages it mentions to
// the file's import set.
func (g *generator) typ(t ast.Type) string {
	g.markType(t)
	return goType(t)
}

func (g *generator) markType(t ast.Type) {
	switch t := t.(type) {
	case *ast.GenericType:
		if t.Name.Name == seqTypeName {
			g.use("seq")
		}
		for _, a := range t.Args {
			g.markType(a)
		}
	case *ast.RefType:
		g.markType(t.Elem)
	case *ast.FnType:
		for _, p := range t.Params {
			g.markType(p)
		}
		if t.Result != nil {
			g.markType(t.Result)
		}
	}
}

// Scopes map a name in the current lexical environment to its velocity type
// (nil when declared but not inferrable).

func (g *generator) pushScope() { g.scopes = append(g.scopes, map[string]ast.Type{}) }
func (g *generator) popScope()  { g.scopes = g.scopes[:len(g.scopes)-1] }

func (g *generator) declare(name string, t ast.Type) {
	g.scopes[len(g.scopes)-1][name] = t
}

func (g *generator) lookup(name string) (ast.Type, bool) {
	for i := len(g.scopes) - 1; i >= 0; i-- {
		if t, ok := g.scopes[i][name]; ok {
			return t, true
		}
	}
	return nil, false
}

// predeclare enters annotated file-scope bindings before emission so
// functions above them in the file resolve their types, the way Go treats
// package scope as order-independent.
func (g *generator) predeclare(f *ast.File) {
	for _, stmt := range f.Stmts {
		if v, ok := stmt.(*ast.VarStmt); ok && v.Type != nil {
			g.declare(v.Name.Name, v.Type)
		}
	}
}

func (g *generator) topLevel(w *bytes.Buffer, stmt ast.Stmt) {
	switch d := stmt.(type) {
	case *ast.ImportDecl:
		// The compiler folds imported files into the same package; the math
		// module lives in the runtime. Neither needs source here.
	case *ast.StructDecl:
		g.structDecl(w, d)
	case *ast.EnumDecl:
		g.enumDecl(w, d)
	case *ast.UnionDecl:
		g.unionDecl(w, d)
	case *ast.FnDecl:
		g.fnDecl(w, d)
	case *ast.VarStmt:
		g.topVar(w, d)
	default:
		g.fail(stmt.Span(), "only declarations may appear at the top level")
	}
}

func (g *generator) structDecl(w *bytes.Buffer, d *ast.StructDecl) {
	fmt.Fprintf(w, "type %s struct {\n", goName(d.Name.Name))
	for _, f := range d.Fields {
		fmt.Fprintf(w, "\t%s %s\n", goName(f.Name.Name), g.typ(f.Type))
	}
	w.WriteString("}\n\n")
}

// enumDecl lowers an enum to a named int type plus one constant per case.
// Without explicit values the block leans on iota; with any explicit value
// every constant is pinned, continuing from the last explicit value the way
// the source language counts.
func (g *generator) enumDecl(w *bytes.Buffer, d *ast.EnumDecl) {
	name := goName(d.Name.Name)
	fmt.Fprintf(w, "type %s int\n\n", name)
	if len(d.Cases) == 0 {
		return
	}
	explicit := false
	for _, c := range d.Cases {
		if c.Value != nil {
			explicit = true
		}
	}
	w.WriteString("const (\n")
	if !explicit {
		for i, c := range d.Cases {
			if i == 0 {
				fmt.Fprintf(w, "\t%s %s = iota\n", enumConst(d.Name.Name, c.Name.Name), name)
			} else {
				fmt.Fprintf(w, "\t%s\n", enumConst(d.Name.Name, c.Name.Name))
			}
		}
	} else {
		next := int64(0)
		for _, c := range d.Cases {
			if c.Value != nil {
				v, ok := constInt(c.Value)
				if !ok {
					g.fail(c.Value.Span(), "enum case value must be an integer literal")
					continue
				}
				next = v
			}
			fmt.Fprintf(w, "\t%s %s = %d\n", enumConst(d.Name.Name, c.Name.Name), name, next)
			next++
		}
	}
	w.WriteString(")\n\n")
}

// constInt evaluates an enum case value: an integer literal, possibly
// negated.
func constInt(e ast.Expr) (int64, bool) {
	switch e := e.(type) {
	case *ast.IntLit:
		return e.Value, true
	case *ast.Unary:
		if e.Op == token.Minus {
			if v, ok := constInt(e.X); ok {
				return -v, true
			}
		}
	}
	return 0, false
}

func (g *generator) unionDecl(w *bytes.Buffer, d *ast.UnionDecl) {
	if n := len(d.Alts); n < 2 || n > 4 {
		return // Collect already reported the arity
	}
	g.use("union")
	args := make([]string, len(d.Alts))
	for i, alt := range d.Alts {
		args[i] = g.typ(alt)
	}
	fmt.Fprintf(w, "type %s = union.U%d[%s]\n\n",
		goName(d.Name.Name), len(d.Alts), strings.Join(args, ", "))
}

func (g *generator) fnDecl(w *bytes.Buffer, d *ast.FnDecl) {
	g.pushScope()
	defer g.popScope()
	g.result = d.Result
	defer func() { g.result = nil }()

	params := make([]string, len(d.Params))
	for i, p := range d.Params {
		g.declare(p.Name.Name, p.Type)
		params[i] = goName(p.Name.Name) + " " + g.typ(p.Type)
	}

	if d.Name.Name == "main" {
		if len(d.Params) > 0 || d.Result != nil {
			g.fail(d.Name.Loc, "fn main must not take parameters or return a value")
		}
		w.WriteString("func main() ")
	} else {
		fmt.Fprintf(w, "func %s(%s) ", goName(d.Name.Name), strings.Join(params, ", "))
		if d.Result != nil {
			w.WriteString(g.typ(d.Result) + " ")
		}
	}
	g.body(w, d.Body)
	w.WriteString("\n")
}

// body emits a statement as a braced function or loop body.
func (g *generator) body(w *bytes.Buffer, s ast.Stmt) {
	if b, ok := s.(*ast.Block); ok {
		g.block(w, b)
		return
	}
	g.pushScope()
	defer g.popScope()
	w.WriteString("{\n")
	g.stmt(w, s, nil)
	w.WriteString("}\n")
}

// topVar lowers a file-scope binding. A const with a literal value stays a
// Go constant; everything else becomes a package variable, which Go permits
// to go unread.
func (g *generator) topVar(w *bytes.Buffer, s *ast.VarStmt) {
	value := g.expr(s.Value, s.Type)
	switch {
	case g.constEmittable(s):
		if s.Type != nil {
			fmt.Fprintf(w, "const %s %s = %s\n\n", goName(s.Name.Name), g.typ(s.Type), value)
		} else {
			fmt.Fprintf(w, "const %s = %s\n\n", goName(s.Name.Name), value)
		}
	case s.Type != nil:
		fmt.Fprintf(w, "var %s %s = %s\n\n", goName(s.Name.Name), g.typ(s.Type), value)
	default:
		fmt.Fprintf(w, "var %s = %s\n\n", goName(s.Name.Name), value)
	}
	t := s.Type
	if t == nil {
		t = g.typeOf(s.Value)
	}
	g.scopes[0][s.Name.Name] = t
}

// constEmittable reports whether a const binding can stay a Go constant:
// the value must be a literal and the annotation must not force a composite
// (a union wraps the literal in a constructor call).
func (g *generator) constEmittable(s *ast.VarStmt) bool {
	return s.Const && constLiteral(s.Value) && g.syms.unionDef(s.Type) == nil
}

// constLiteral reports whether e is a literal Go constants accept.
func constLiteral(e ast.Expr) bool {
	switch e := e.(type) {
	case *ast.IntLit, *ast.FloatLit, *ast.BoolLit, *ast.CharLit, *ast.StringLit:
		return true
	case *ast.Unary:
		return e.Op == token.Minus && constLiteral(e.X)
	}
	return false
}

func (g *generator) block(w *bytes.Buffer, b *ast.Block) {
	g.pushScope()
	defer g.popScope()
	w.WriteString("{\n")
	g.stmtList(w, b.Stmts)
	w.WriteString("}\n")
}

// stmtList emits statements in order, handing each the statements after it
// so bindings can tell whether they are ever read again.
func (g *generator) stmtList(w *bytes.Buffer, stmts []ast.Stmt) {
	for i, s := range stmts {
		g.stmt(w, s, stmts[i+1:])
	}
}

func (g *generator) stmt(w *bytes.Buffer, s ast.Stmt, rest []ast.Stmt) {
	switch s := s.(type) {
	case *ast.Block:
		g.block(w, s)
	case *ast.VarStmt:
		g.varStmt(w, s, rest)
	case *ast.ForStmt:
		g.forStmt(w, s)
	case *ast.ReturnStmt:
		if s.Value == nil {
			w.WriteString("return\n")
		} else {
			fmt.Fprintf(w, "return %s\n", g.expr(s.Value, g.result))
		}
	case *ast.ExprStmt:
		g.exprStmt(w, s)
	case *ast.ImportDecl:
		g.fail(s.Span(), "import declarations must appear at the top level")
	default:
		g.fail(s.Span(), "type and fn declarations must appear at the top level")
	}
}

// varStmt lowers a local binding. A const with a literal value stays a Go
// constant; anything else is a short variable declaration, annotated forms
// keeping their explicit type. A binding the rest of the scope never reads
// gets a `_ = x` keep-alive so the output compiles.
func (g *generator) varStmt(w *bytes.Buffer, s *ast.VarStmt, rest []ast.Stmt) {
	name := goName(s.Name.Name)
	value := g.expr(s.Value, s.Type)

	t := s.Type
	if t == nil {
		t = g.typeOf(s.Value)
	}
	g.declare(s.Name.Name, t)

	if g.constEmittable(s) {
		if s.Type != nil {
			fmt.Fprintf(w, "const %s %s = %s\n", name, g.typ(s.Type), value)
		} else {
			fmt.Fprintf(w, "const %s = %s\n", name, value)
		}
		return // constants may go unread without penalty
	}

	if s.Type != nil {
		fmt.Fprintf(w, "var %s %s = %s\n", name, g.typ(s.Type), value)
	} else {
		fmt.Fprintf(w, "%s := %s\n", name, value)
	}
	if countUses(s.Name.Name, rest) == 0 {
		fmt.Fprintf(w, "_ = %s\n", name)
	}
}

// forStmt lowers for-in over a sequence to a range over its backing slice.
func (g *generator) forStmt(w *bytes.Buffer, s *ast.ForStmt) {
	rt := deref(g.typeOf(s.Range))
	elem, seqOK := isSeq(rt)
	if rt != nil && !seqOK {
		g.fail(s.Range.Span(), "cannot iterate over a value of type '%s'", velName(rt))
		return
	}

	g.pushScope()
	defer g.popScope()
	g.declare(s.Name.Name, elem)

	if countUses(s.Name.Name, []ast.Stmt{s.Body}) == 0 {
		fmt.Fprintf(w, "for range %s.Values() ", g.expr(s.Range, nil))
	} else {
		fmt.Fprintf(w, "for _, %s := range %s.Values() ",
			goName(s.Name.Name), g.expr(s.Range, nil))
	}
	g.body(w, s.Body)
}

func (g *generator) exprStmt(w *bytes.Buffer, s *ast.ExprStmt) {
	if a, ok := s.X.(*ast.Assign); ok {
		g.assign(w, a)
		return
	}
	fmt.Fprintf(w, "%s\n", g.expr(s.X, nil))
}

// assign lowers one assignment statement. Plain chains unroll innermost
// first (a = b = c writes c into b, then b into a); writes through an index
// become Set calls; a union target wraps the incoming alternative through
// the usual adaptation.
func (g *generator) assign(w *bytes.Buffer, a *ast.Assign) {
	if inner, ok := a.Value.(*ast.Assign); ok {
		if a.Op != token.Equals || inner.Op != token.Equals {
			g.fail(inner.Span(), "assignment cannot be used as a value")
			return
		}
		g.assign(w, inner)
		g.assignTo(w, a, inner.Target)
		return
	}
	g.assignTo(w, a, nil)
}

// assignTo emits a single store. When fromTarget is set the value is that
// just-assigned target instead of a.Value.
func (g *generator) assignTo(w *bytes.Buffer, a *ast.Assign, fromTarget ast.Expr) {
	value := a.Value
	if fromTarget != nil {
		value = fromTarget
	}
	want := g.typeOf(a.Target)

	if idx, ok := a.Target.(*ast.Index); ok {
		if _, seqOK := isSeq(deref(g.typeOf(idx.X))); seqOK {
			recv := g.expr(idx.X, nil)
			i := g.expr(idx.Idx, nil)
			if a.Op == token.Equals {
				fmt.Fprintf(w, "%s.Set(%s, %s)\n", recv, i, g.expr(value, want))
			} else {
				fmt.Fprintf(w, "%s.Set(%s, %s.At(%s) %s (%s))\n",
					recv, i, recv, i, a.Op.BinaryOf().String(), g.expr(value, want))
			}
			return
		}
	}
	fmt.Fprintf(w, "%s %s %s\n", g.expr(a.Target, nil), a.Op.String(), g.expr(value, want))
}

// countUses counts reads of name under stmts; a plain write to the bare
// name does not count, matching how the Go compiler decides "declared and
// not used".
func countUses(name string, stmts []ast.Stmt) int {
	n := 0
	var walkExpr func(ast.Expr)
	walkExpr = func(e ast.Expr) {
		switch e := e.(type) {
		case *ast.Ident:
			if e.Name == name {
				n++
			}
		case *ast.ArrayLit:
			for _, el := range e.Elems {
				walkExpr(el)
			}
		case *ast.StructLit:
			for _, f := range e.Fields {
				walkExpr(f.Value)
			}
		case *ast.Unary:
			walkExpr(e.X)
		case *ast.Binary:
			walkExpr(e.X)
			walkExpr(e.Y)
		case *ast.Assign:
			if id, ok := e.Target.(*ast.Ident); !ok || id.Name != name || e.Op != token.Equals {
				walkExpr(e.Target)
			}
			walkExpr(e.Value)
		case *ast.Call:
			walkExpr(e.Fun)
			for _, arg := range e.Args {
				walkExpr(arg)
			}
		case *ast.Index:
			walkExpr(e.X)
			walkExpr(e.Idx)
		case *ast.Member:
			walkExpr(e.X)
		}
	}
	var walkStmt func(ast.Stmt)
	walkStmt = func(s ast.Stmt) {
		switch s := s.(type) {
		case *ast.Block:
			for _, inner := range s.Stmts {
				walkStmt(inner)
			}
		case *ast.VarStmt:
			walkExpr(s.Value)
		case *ast.ForStmt:
			walkExpr(s.Range)
			walkStmt(s.Body)
		case *ast.ReturnStmt:
			if s.Value != nil {
				walkExpr(s.Value)
			}
		case *ast.ExprStmt:
			walkExpr(s.X)
		}
	}
	for _, s := range stmts {
		walkStmt(s)
	}
	return n
}
