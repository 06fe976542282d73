package kaka

import (
	"bytes"
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "lexical", LexicalError.String())
	assert.Equal(t, "indentation", IndentationError.String())
	assert.Equal(t, "syntax", SyntaxError.String())
	assert.Equal(t, "unknown", ErrorKind(99).String())
}

func TestErrorWithoutSource(t *testing.T) {
	_, err := Scan("x $")
	require.Error(t, err)
	assert.Equal(t, "lexical error at 1:3: invalid character '$'", err.Error())
}

func TestErrorCodeFrame(t *testing.T) {
	engine := MustNewEngine(Config{})

	_, err := engine.Compile("x = 1\n1 2")
	require.Error(t, err)
	assert.Equal(t,
		"syntax error at 2:3: expected end of statement, got integer\n"+
			"  --> line 2, column 3\n"+
			" 2 | 1 2\n"+
			"   |   ^",
		err.Error())

	_, err = engine.CompileSource(Source{Name: "main.kaka", Text: "y = \"open"})
	require.Error(t, err)
	assert.Equal(t,
		"lexical error at 1:5: unterminated string\n"+
			"  --> main.kaka:1:5\n"+
			" 1 | y = \"open\n"+
			"   |     ^",
		err.Error())
}

func TestCodeFrameKeepsTabsAndWideRunes(t *testing.T) {
	frame := formatCodeFrame("", "\t世界 $", Position{Line: 1, Column: 5})
	assert.Equal(t, "  --> line 1, column 5\n 1 | \t世界 $\n   | \t     ^", frame)
}

func TestCodeFrameOutsideSource(t *testing.T) {
	assert.Empty(t, formatCodeFrame("", "", Position{Line: 1, Column: 1}))
	assert.Empty(t, formatCodeFrame("", "x", Position{Line: 3, Column: 1}))
	assert.Empty(t, formatCodeFrame("", "x", Position{}))
}

func TestWithSourceCopies(t *testing.T) {
	orig := newError(SyntaxError, Position{Line: 1, Column: 1}, "boom")
	withSource := orig.WithSource("a.kaka", "x")

	assert.Empty(t, orig.File)
	assert.Empty(t, orig.Source())
	assert.Equal(t, "a.kaka", withSource.File)
	assert.Equal(t, "x", withSource.Source())
}

func TestRendererPlain(t *testing.T) {
	engine := MustNewEngine(Config{})
	_, err := engine.CompileSource(Source{Name: "main.kaka", Text: "1 2"})
	require.Error(t, err)

	var buf bytes.Buffer
	r := NewRenderer(&buf, false)
	assert.Equal(t,
		"syntax error: expected end of statement, got integer\n"+
			"  --> main.kaka:1:3\n"+
			" 1 | 1 2\n"+
			"   |   ^",
		r.Render(err))

	var out bytes.Buffer
	require.NoError(t, r.Fprint(&out, err))
	assert.Equal(t, r.Render(err)+"\n", out.String())
}

func TestRendererWithoutSource(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, false)

	_, err := Scan("$")
	require.Error(t, err)
	assert.Equal(t, "lexical error: invalid character '$'\n  --> line 1, column 1", r.Render(err))

	assert.Equal(t, "error: plain failure", r.Render(errors.New("plain failure")))
	assert.Empty(t, r.Render(nil))
}

func TestRendererAggregates(t *testing.T) {
	engine := MustNewEngine(Config{})
	_, errA := engine.CompileSource(Source{Name: "a", Text: "$"})
	_, errB := engine.CompileSource(Source{Name: "b", Text: "\n  x\n y"})
	merr := multierror.Append(nil, errA, errB)

	r := NewRenderer(&bytes.Buffer{}, false)
	out := r.Render(merr)
	assert.Equal(t, r.Render(errA)+"\n\n"+r.Render(errB), out)
	assert.Contains(t, out, "  --> a:1:1")
	assert.Contains(t, out, "indentation error")
}

func TestRendererColorKeepsText(t *testing.T) {
	_, err := Scan("$")
	require.Error(t, err)

	out := NewRenderer(&bytes.Buffer{}, true).Render(err)
	assert.Contains(t, out, "invalid character '$'")
	assert.Contains(t, out, "line 1, column 1")
}

func TestDiagnostics(t *testing.T) {
	engine := MustNewEngine(Config{})
	_, err := engine.CompileSource(Source{Name: "main.kaka", Text: "x = 1\n1 2"})
	require.Error(t, err)

	diags := Diagnostics(err)
	require.Len(t, diags, 1)
	diag := diags[0]
	assert.Equal(t, hcl.DiagError, diag.Severity)
	assert.Equal(t, "syntax error", diag.Summary)
	assert.Equal(t, "expected end of statement, got integer", diag.Detail)
	require.NotNil(t, diag.Subject)
	assert.Equal(t, "main.kaka", diag.Subject.Filename)
	assert.Equal(t, hcl.Pos{Line: 2, Column: 3, Byte: 8}, diag.Subject.Start)
	assert.Equal(t, hcl.Pos{Line: 2, Column: 4, Byte: 9}, diag.Subject.End)
	assert.True(t, diags.HasErrors())
}

func TestDiagnosticsFlattensAggregates(t *testing.T) {
	merr := multierror.Append(nil,
		newError(LexicalError, Position{Line: 1, Column: 1}, "first"),
		errors.New("not from the front end"),
	)

	diags := Diagnostics(merr)
	require.Len(t, diags, 2)
	assert.Equal(t, "first", diags[0].Detail)
	assert.Equal(t, "not from the front end", diags[1].Summary)
	assert.Nil(t, diags[1].Subject)

	assert.Nil(t, Diagnostics(nil))
}
