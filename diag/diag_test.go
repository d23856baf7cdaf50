package diag_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velocity-lang/velocity/diag"
	"github.com/velocity-lang/velocity/token"
)

func span(line, start, end int) token.Span {
	return token.Span{File: "main.vel", Line: line, Start: start, End: end}
}

// TestError_Error pins the plain single-line form.
func TestError_Error(t *testing.T) {
	e := diag.Errorf(span(3, 9, 12), "expected '%s', but got %s", token.Semicolon, token.Identifier)
	assert.Equal(t, "main.vel:3:9: expected ';', but got <identifier>", e.Error())
}

// TestList_Err returns nil for an empty list and the list itself otherwise.
func TestList_Err(t *testing.T) {
	var l diag.List
	assert.NoError(t, l.Err())

	l = append(l, diag.Errorf(span(1, 1, 1), "boom"))
	err := l.Err()
	require.Error(t, err)
	assert.Equal(t, "main.vel:1:1: boom", err.Error())
}

// TestList_Error joins diagnostics one per line.
func TestList_Error(t *testing.T) {
	l := diag.List{
		diag.Errorf(span(1, 1, 1), "first"),
		diag.Errorf(span(2, 5, 6), "second"),
	}
	assert.Equal(t, "main.vel:1:1: first\nmain.vel:2:5: second", l.Error())
}

// TestList_SortBySpan orders by file, line, then column.
func TestList_SortBySpan(t *testing.T) {
	l := diag.List{
		diag.Errorf(token.Span{File: "b.vel", Line: 1, Start: 1, End: 1}, "d"),
		diag.Errorf(token.Span{File: "a.vel", Line: 2, Start: 9, End: 9}, "c"),
		diag.Errorf(token.Span{File: "a.vel", Line: 2, Start: 4, End: 5}, "b"),
		diag.Errorf(token.Span{File: "a.vel", Line: 1, Start: 7, End: 7}, "a"),
	}
	l.SortBySpan()

	got := make([]string, len(l))
	for i, e := range l {
		got[i] = e.Msg
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
}

// TestRenderer_Render checks the three-line plain form: header, source line,
// caret underline covering the span.
func TestRenderer_Render(t *testing.T) {
	src := "var x = 1;\nvar y = oops 2;\n"
	e := diag.Errorf(span(2, 9, 12), "unknown name")

	var buf bytes.Buffer
	diag.NewRenderer(diag.WithColor(false)).Render(&buf, src, e)

	want := "main.vel:2:9: error: unknown name\n" +
		"var y = oops 2;\n" +
		"        ^~~~\n"
	assert.Equal(t, want, buf.String())
}

// TestRenderer_Render_SingleColumn draws a bare caret when the span covers
// one column.
func TestRenderer_Render_SingleColumn(t *testing.T) {
	var buf bytes.Buffer
	diag.NewRenderer(diag.WithColor(false)).Render(&buf, "x~y\n", diag.Errorf(span(1, 2, 2), "unexpected character: '~'"))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, " ^", lines[2])
}

// TestRenderer_Render_NoSource prints only the header when no source text is
// available.
func TestRenderer_Render_NoSource(t *testing.T) {
	var buf bytes.Buffer
	diag.NewRenderer(diag.WithColor(false)).Render(&buf, "", diag.Errorf(span(9, 1, 4), "gone"))
	assert.Equal(t, "main.vel:9:1: error: gone\n", buf.String())
}

// TestRenderer_Render_TabAlignment keeps tabs in the pad so the caret lands
// under the spanned text in terminals.
func TestRenderer_Render_TabAlignment(t *testing.T) {
	src := "\tbad;\n"
	var buf bytes.Buffer
	diag.NewRenderer(diag.WithColor(false)).Render(&buf, src, diag.Errorf(span(1, 2, 4), "no"))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "\t^~~", lines[2])
}

// TestRenderer_RenderAll blank-line separates diagnostics.
func TestRenderer_RenderAll(t *testing.T) {
	src := "a\nb\n"
	l := diag.List{
		diag.Errorf(span(1, 1, 1), "one"),
		diag.Errorf(span(2, 1, 1), "two"),
	}

	var buf bytes.Buffer
	diag.NewRenderer(diag.WithColor(false)).RenderAll(&buf, src, l)

	assert.Equal(t,
		"main.vel:1:1: error: one\na\n^\n\nmain.vel:2:1: error: two\nb\n^\n",
		buf.String())
}
