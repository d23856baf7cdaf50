package compiler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/velocity-lang/velocity/ast"
	"github.com/velocity-lang/velocity/codegen"
	"github.com/velocity-lang/velocity/diag"
	"github.com/velocity-lang/velocity/lexer"
	"github.com/velocity-lang/velocity/parser"
)

// Result describes one finished compilation.
type Result struct {
	// Sources lists every velocity file in the import closure,
	// dependencies before their importers; the root file is last.
	Sources []string

	// Outputs lists the written Go files, parallel to Sources.
	Outputs []string

	// Package is the package clause the outputs carry.
	Package string
}

// Compile runs the full pipeline on the file at path: scan, parse, resolve
// the import closure, collect symbols, generate Go source, write one .go
// file per velocity file. Source problems come back as a diag.List.
func Compile(ctx context.Context, path string, opts ...Option) (*Result, error) {
	res, _, _, err := compile(ctx, path, opts)
	return res, err
}

// Check runs the pipeline through symbol resolution and stops: scanning,
// parsing, import resolution and declaration checks all report, nothing is
// written.
func Check(ctx context.Context, path string) error {
	units, err := loadClosure(ctx, path)
	if err != nil {
		return err
	}
	_, err = codegen.Collect(astFiles(units)...)
	return err
}

// Run compiles path and executes the result through the Go toolchain. The
// emitted package is forced to main. The child process inherits the
// configured stdio and dies with the context. Import resolution of the
// emitted files follows the working directory's module, which must require
// the velocity runtime.
func Run(ctx context.Context, path string, opts ...Option) error {
	opts = append(opts, WithPackageName("main"))
	res, syms, cfg, err := compile(ctx, path, opts)
	if err != nil {
		return err
	}
	if _, ok := syms.Funcs["main"]; !ok {
		return fmt.Errorf("%w in %s", ErrNoMain, path)
	}

	args := append([]string{"run"}, res.Outputs...)
	args = append(args, cfg.runArgs...)
	cmd := exec.CommandContext(ctx, "go", args...)
	cmd.Stdout = cfg.stdout
	cmd.Stderr = cfg.stderr
	cmd.Stdin = os.Stdin
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go run: %w", err)
	}
	return nil
}

func compile(ctx context.Context, path string, opts []Option) (*Result, *codegen.Symbols, *config, error) {
	cfg, err := newConfig(path, opts)
	if err != nil {
		return nil, nil, nil, err
	}

	units, err := loadClosure(ctx, path)
	if err != nil {
		return nil, nil, nil, err
	}
	syms, err := codegen.Collect(astFiles(units)...)
	if err != nil {
		return nil, nil, nil, err
	}

	res := &Result{Package: cfg.pkg}
	for _, u := range units {
		if err := ctx.Err(); err != nil {
			return nil, nil, nil, err
		}
		emit := codegen.Generate
		if !cfg.format {
			emit = codegen.Emit
		}
		out, err := emit(u.file, syms, cfg.pkg)
		if err != nil {
			return nil, nil, nil, err
		}
		dst := cfg.outputPath(u.path)
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return nil, nil, nil, err
		}
		if err := os.WriteFile(dst, out, 0o644); err != nil {
			return nil, nil, nil, err
		}
		res.Sources = append(res.Sources, u.path)
		res.Outputs = append(res.Outputs, dst)
	}
	return res, syms, cfg, nil
}

// outputPath places the generated file for src: in the output dir when one
// is set, next to the source otherwise.
func (c *config) outputPath(src string) string {
	base := strings.TrimSuffix(filepath.Base(src), ".vel") + ".go"
	if c.outputDir != "" {
		return filepath.Join(c.outputDir, base)
	}
	return filepath.Join(filepath.Dir(src), base)
}

// unit pairs a parsed file with the path it was read from.
type unit struct {
	path string
	file *ast.File
}

func astFiles(units []unit) []*ast.File {
	files := make([]*ast.File, len(units))
	for i, u := range units {
		files[i] = u.file
	}
	return files
}

// loadClosure reads, scans and parses root and every sibling module it
// imports, transitively and cycle-checked. Units come back dependencies
// first, the root last, so declaration order in later passes follows the
// dependency order.
func loadClosure(ctx context.Context, root string) ([]unit, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	l := &loader{ctx: ctx, state: map[string]loadState{}}
	if err := l.load(abs); err != nil {
		return nil, err
	}
	l.errs.SortBySpan()
	if err := l.errs.Err(); err != nil {
		return nil, err
	}
	return l.units, nil
}

type loadState int

const (
	loadVisiting loadState = iota + 1
	loadDone
)

type loader struct {
	ctx   context.Context
	state map[string]loadState
	units []unit
	errs  diag.List
}

// load brings one file into the closure. A read failure surfaces directly;
// the caller wraps it with the importing span when there is one.
func (l *loader) load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	l.state[path] = loadVisiting

	file := l.parse(path, string(data))
	if file != nil {
		l.imports(file, filepath.Dir(path))
		l.units = append(l.units, unit{path: path, file: file})
	}
	l.state[path] = loadDone
	return nil
}

// parse scans and parses one file, folding diagnostics into the loader. A
// file with parse errors still returns its partial tree so its imports
// resolve and report too.
func (l *loader) parse(path, src string) *ast.File {
	toks, err := lexer.Scan(path, src)
	if err != nil {
		l.addErrs(err)
		return nil
	}
	file, err := parser.Parse(path, toks)
	if err != nil {
		l.addErrs(err)
	}
	return file
}

// imports resolves a file's import declarations against its directory.
func (l *loader) imports(f *ast.File, dir string) {
	for _, stmt := range f.Stmts {
		imp, ok := stmt.(*ast.ImportDecl)
		if !ok {
			continue
		}
		name := imp.Path.Name
		if name == "math" {
			continue // built in, lives in the runtime
		}
		dep := filepath.Join(dir, name+".vel")
		switch l.state[dep] {
		case loadVisiting:
			l.errs = append(l.errs, diag.Errorf(imp.Path.Loc,
				"import cycle through module '%s'", name))
			continue
		case loadDone:
			continue
		}
		if l.ctx.Err() != nil {
			return
		}
		if _, err := os.Stat(dep); err != nil {
			l.errs = append(l.errs, diag.Errorf(imp.Path.Loc,
				"cannot find module '%s' (no %s.vel in %s)", name, name, dir))
			l.state[dep] = loadDone
			continue
		}
		if err := l.load(dep); err != nil {
			l.errs = append(l.errs, diag.Errorf(imp.Path.Loc, "%s", err))
		}
	}
}

// addErrs folds a scan or parse error into the loader's list.
func (l *loader) addErrs(err error) {
	var list diag.List
	if errors.As(err, &list) {
		l.errs = append(l.errs, list...)
		return
	}
	var one *diag.Error
	if errors.As(err, &one) {
		l.errs = append(l.errs, one)
		return
	}
	l.errs = append(l.errs, &diag.Error{Msg: err.Error()})
}
