package kaka

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// sourceLine returns the text of the 1-based line and the column clamped to
// it, or ok=false when the position falls outside the source.
func sourceLine(source string, pos Position) (text string, column int, ok bool) {
	if source == "" || pos.Line <= 0 {
		return "", 0, false
	}

	lines := strings.Split(source, "\n")
	if pos.Line > len(lines) {
		return "", 0, false
	}

	text = strings.TrimSuffix(lines[pos.Line-1], "\r")
	runes := []rune(text)

	column = pos.Column
	if column <= 0 {
		column = 1
	}
	if column > len(runes)+1 {
		column = len(runes) + 1
	}
	return text, column, true
}

// caretPadding lines a caret up under the given column. Tabs are copied so
// the terminal expands them the same way on both lines.
func caretPadding(text string, column int) string {
	var b strings.Builder
	for i, r := range []rune(text) {
		if i >= column-1 {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return b.String()
}

func formatLocation(file string, line, column int) string {
	if file == "" {
		return fmt.Sprintf("line %d, column %d", line, column)
	}
	return fmt.Sprintf("%s:%d:%d", file, line, column)
}

func formatCodeFrame(file, source string, pos Position) string {
	lineText, column, ok := sourceLine(source, pos)
	if !ok {
		return ""
	}

	lineLabel := strconv.Itoa(pos.Line)
	gutterPad := strings.Repeat(" ", len(lineLabel))

	return fmt.Sprintf(
		"  --> %s\n %s | %s\n %s | %s^",
		formatLocation(file, pos.Line, column),
		lineLabel,
		lineText,
		gutterPad,
		caretPadding(lineText, column),
	)
}

var (
	errorColor  = lipgloss.Color("#EF4444")
	accentColor = lipgloss.Color("#3B82F6")
	mutedColor  = lipgloss.Color("#6B7280")
)

// Renderer formats front-end errors for a terminal. With color disabled the
// output is plain text and matches what Error returns apart from layout.
type Renderer struct {
	headerStyle   lipgloss.Style
	locationStyle lipgloss.Style
	gutterStyle   lipgloss.Style
	caretStyle    lipgloss.Style
}

// NewRenderer builds a Renderer whose styles are resolved against w.
func NewRenderer(w io.Writer, color bool) *Renderer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		headerStyle:   r.NewStyle().Foreground(errorColor).Bold(true),
		locationStyle: r.NewStyle().Foreground(accentColor),
		gutterStyle:   r.NewStyle().Foreground(mutedColor),
		caretStyle:    r.NewStyle().Foreground(errorColor).Bold(true),
	}
}

// Render formats err. Aggregates from CompileAll are rendered one error per
// paragraph; errors that did not come from the front end fall back to their
// Error text.
func (r *Renderer) Render(err error) string {
	if err == nil {
		return ""
	}

	var merr *multierror.Error
	if errors.As(err, &merr) {
		parts := make([]string, 0, len(merr.Errors))
		for _, each := range merr.Errors {
			parts = append(parts, r.Render(each))
		}
		return strings.Join(parts, "\n\n")
	}

	var ferr *Error
	if !errors.As(err, &ferr) {
		return r.headerStyle.Render("error: ") + err.Error()
	}
	return r.renderError(ferr)
}

// Fprint writes the rendered error to w followed by a newline.
func (r *Renderer) Fprint(w io.Writer, err error) error {
	_, werr := fmt.Fprintln(w, r.Render(err))
	return werr
}

func (r *Renderer) renderError(e *Error) string {
	var b strings.Builder
	b.WriteString(r.headerStyle.Render(e.Kind.String() + " error"))
	b.WriteString(": ")
	b.WriteString(e.Message)

	lineText, column, ok := sourceLine(e.source, e.Pos)
	if !ok {
		column = e.Pos.Column
	}
	b.WriteString("\n")
	b.WriteString(r.gutterStyle.Render("  --> "))
	b.WriteString(r.locationStyle.Render(formatLocation(e.File, e.Pos.Line, column)))
	if !ok {
		return b.String()
	}

	lineLabel := strconv.Itoa(e.Pos.Line)
	gutterPad := strings.Repeat(" ", len(lineLabel))
	b.WriteString("\n")
	b.WriteString(r.gutterStyle.Render(" " + lineLabel + " | "))
	b.WriteString(lineText)
	b.WriteString("\n")
	b.WriteString(r.gutterStyle.Render(" " + gutterPad + " | "))
	b.WriteString(caretPadding(lineText, column))
	b.WriteString(r.caretStyle.Render("^"))
	return b.String()
}
