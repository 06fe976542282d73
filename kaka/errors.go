package kaka

import (
	"fmt"
	"strings"
)

// ErrorKind classifies which pipeline stage rejected the source.
type ErrorKind int

const (
	LexicalError ErrorKind = iota
	IndentationError
	SyntaxError
)

func (k ErrorKind) String() string {
	switch k {
	case LexicalError:
		return "lexical"
	case IndentationError:
		return "indentation"
	case SyntaxError:
		return "syntax"
	default:
		return "unknown"
	}
}

// Error is the only failure value produced by Scan, Normalize and Parse.
// Every stage stops at its first error, so a failed run yields exactly one.
type Error struct {
	Kind    ErrorKind
	Message string
	Pos     Position
	File    string

	source string
}

func newError(kind ErrorKind, pos Position, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: pos}
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s error at %d:%d: %s", e.Kind, e.Pos.Line, e.Pos.Column, e.Message)
	if frame := formatCodeFrame(e.File, e.source, e.Pos); frame != "" {
		b.WriteString("\n")
		b.WriteString(frame)
	}
	return b.String()
}

// Line reports the 1-based source line the error points at.
func (e *Error) Line() int {
	return e.Pos.Line
}

// Source returns the source text attached to the error, if any.
func (e *Error) Source() string {
	return e.source
}

// WithSource returns a copy of the error that renders against source.
func (e *Error) WithSource(file, source string) *Error {
	clone := *e
	clone.File = file
	clone.source = source
	return &clone
}
