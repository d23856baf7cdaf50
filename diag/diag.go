package diag

import (
	"fmt"
	"sort"
	"strings"

	"github.com/velocity-lang/velocity/token"
)

// Error is a single positioned diagnostic.
type Error struct {
	Span token.Span
	Msg  string
}

// Errorf builds an Error at span with a formatted message.
func Errorf(span token.Span, format string, args ...any) *Error {
	return &Error{Span: span, Msg: fmt.Sprintf(format, args...)}
}

// Error renders the plain single-line form: file:line:col: msg.
func (e *Error) Error() string {
	return e.Span.String() + ": " + e.Msg
}

// List aggregates diagnostics; it implements error so a parse can be
// returned as a single value.
type List []*Error

// Error joins the plain form of every diagnostic, one per line.
func (l List) Error() string {
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

// Err returns l as an error, or nil when the list is empty. Callers return
// this instead of the bare list so an empty result compares == nil.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// SortBySpan orders diagnostics by file, then line, then starting column,
// so multi-file output reads top to bottom.
func (l List) SortBySpan() {
	sort.SliceStable(l, func(i, j int) bool {
		a, b := l[i].Span, l[j].Span
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Start < b.Start
	})
}
