package format

import (
	"io"
	"os"
	"strings"
)

// Sprintf substitutes args into template and returns the result. The k-th
// `{}` placeholder binds the k-th argument; `{{` and `}}` produce literal
// braces; any other character copies verbatim. Surplus arguments are ignored.
// A lone brace or a placeholder with no argument left returns an error
// wrapping ErrBadTemplate or ErrMissingArgument, and no partial text.
func Sprintf(template string, args ...any) (string, error) {
	var b strings.Builder
	if err := interpolate(&b, template, args); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Fprintln substitutes args into template and writes the result plus a
// trailing newline to w in a single write. Template errors are returned
// before anything is written.
func Fprintln(w io.Writer, template string, args ...any) error {
	var b strings.Builder
	if err := interpolate(&b, template, args); err != nil {
		return err
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

// Println substitutes args into template and prints the result plus a
// trailing newline to standard output. A template error is fatal at format
// time: generated programs have no recovery path for templates they emitted
// themselves, so Println panics with the underlying error. Write errors are
// ignored, as with fmt.Println.
func Println(template string, args ...any) {
	var b strings.Builder
	if err := interpolate(&b, template, args); err != nil {
		panic(err)
	}
	b.WriteByte('\n')
	_, _ = io.WriteString(os.Stdout, b.String())
}

// interpolate runs the template scan: one pass, left to right, two-character
// lookahead, no backtracking. Errors abort the scan; the caller discards the
// builder, which is what guarantees the no-partial-output rule.
func interpolate(b *strings.Builder, template string, args []any) error {
	arg := 0
	for i := 0; i < len(template); {
		switch c := template[i]; {
		case c == '{' && i+1 < len(template) && template[i+1] == '}':
			if arg >= len(args) {
				return errMissingArgument(arg)
			}
			b.WriteString(Formatted(args[arg]))
			arg++
			i += 2
		case c == '{' && i+1 < len(template) && template[i+1] == '{':
			b.WriteByte('{')
			i += 2
		case c == '}' && i+1 < len(template) && template[i+1] == '}':
			b.WriteByte('}')
			i += 2
		case c == '{' || c == '}':
			return errBadTemplate(i)
		default:
			b.WriteByte(c)
			i++
		}
	}
	return nil
}
