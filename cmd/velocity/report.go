package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/velocity-lang/velocity/diag"
)

// colorEnabled mirrors --no-color and the ui.color preference. The styles
// in styles.go and the diagnostic renderer both follow it.
var colorEnabled = true

// report prints err to out and condenses it into a short failure for the
// command to return. Positioned diagnostics render as annotated source
// snippets; any other error passes through untouched.
func report(out io.Writer, err error) error {
	var (
		list diag.List
		one  *diag.Error
	)
	switch {
	case errors.As(err, &list):
	case errors.As(err, &one):
		list = diag.List{one}
	default:
		return err
	}
	renderList(out, list)
	if len(list) == 1 {
		return errors.New("1 error")
	}
	return fmt.Errorf("%d errors", len(list))
}

// renderList renders every diagnostic with its source line, reading each
// offending file at most once. A source that cannot be read renders as a
// header line only.
func renderList(out io.Writer, list diag.List) {
	r := diag.NewRenderer(diag.WithColor(colorEnabled))
	sources := make(map[string]string, 1)
	for i, e := range list {
		src, ok := sources[e.Span.File]
		if !ok {
			if data, err := os.ReadFile(e.Span.File); err == nil {
				src = string(data)
			}
			sources[e.Span.File] = src
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		r.Render(out, src, e)
	}
}
