package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderer writes diagnostics in the three-line form: a colored header, the
// offending source line, and a caret underline sized to the span.
type Renderer struct {
	color bool

	head  lipgloss.Style
	label lipgloss.Style
	caret lipgloss.Style
}

// RenderOption adjusts a Renderer.
type RenderOption func(*Renderer)

// WithColor switches ANSI styling on or off (on by default).
func WithColor(on bool) RenderOption {
	return func(r *Renderer) { r.color = on }
}

// NewRenderer builds a Renderer with the default palette: bold header,
// bold red "error:" label, green caret line.
func NewRenderer(opts ...RenderOption) *Renderer {
	r := &Renderer{color: true}
	for _, opt := range opts {
		opt(r)
	}
	if r.color {
		r.head = lipgloss.NewStyle().Bold(true)
		r.label = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
		r.caret = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	} else {
		plain := lipgloss.NewStyle()
		r.head, r.label, r.caret = plain, plain, plain
	}
	return r
}

// Render writes one diagnostic. src is the full source text of e.Span.File;
// pass "" when the source is unavailable and only the header line is printed.
func (r *Renderer) Render(w io.Writer, src string, e *Error) {
	fmt.Fprintf(w, "%s %s%s\n",
		r.head.Render(e.Span.String()+":"),
		r.label.Render("error: "),
		r.head.Render(e.Msg))

	line, ok := sourceLine(src, e.Span.Line)
	if !ok {
		return
	}
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, r.caret.Render(underline(line, e.Span.Start, e.Span.End)))
}

// RenderAll renders every diagnostic in order, blank-line separated.
func (r *Renderer) RenderAll(w io.Writer, src string, errs List) {
	for i, e := range errs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		r.Render(w, src, e)
	}
}

// sourceLine extracts 1-based line n from src.
func sourceLine(src string, n int) (string, bool) {
	if src == "" || n < 1 {
		return "", false
	}
	lines := strings.Split(src, "\n")
	if n > len(lines) {
		return "", false
	}
	return strings.TrimSuffix(lines[n-1], "\r"), true
}

// underline builds the caret line: spaces up to the start column, ^ at the
// start, ~ through the end. Columns are 1-based inclusive; tabs in the
// source line are preserved so the caret stays aligned.
func underline(line string, start, end int) string {
	if start < 1 {
		start = 1
	}
	if end < start {
		end = start
	}
	var b strings.Builder
	for i := 0; i < start-1 && i < len(line); i++ {
		if line[i] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteByte('^')
	b.WriteString(strings.Repeat("~", end-start))
	return b.String()
}
