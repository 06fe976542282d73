package kaka

import (
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngineDefaults(t *testing.T) {
	engine, err := NewEngine(Config{})
	require.NoError(t, err)

	cfg := engine.Config()
	assert.Equal(t, DefaultMaxNesting, cfg.MaxNesting)
	assert.Equal(t, 1<<20, cfg.MaxSourceBytes)
	assert.Equal(t, runtime.GOMAXPROCS(0), cfg.MaxParallel)
}

func TestNewEngineKeepsExplicitLimits(t *testing.T) {
	engine, err := NewEngine(Config{MaxNesting: 8, MaxSourceBytes: 64, MaxParallel: 2})
	require.NoError(t, err)
	assert.Equal(t, Config{MaxNesting: 8, MaxSourceBytes: 64, MaxParallel: 2}, engine.Config())
}

func TestNewEngineRejectsNegativeLimits(t *testing.T) {
	cases := []struct {
		cfg  Config
		want string
	}{
		{Config{MaxNesting: -1}, "max_nesting"},
		{Config{MaxSourceBytes: -1}, "max_source_bytes"},
		{Config{MaxParallel: -1}, "max_parallel"},
	}
	for _, tc := range cases {
		_, err := NewEngine(tc.cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), tc.want)
	}

	assert.Panics(t, func() { MustNewEngine(Config{MaxNesting: -5}) })
}

func TestCompile(t *testing.T) {
	engine := MustNewEngine(Config{})

	unit, err := engine.Compile("x = 3 + 4\nx print")
	require.NoError(t, err)
	assert.Empty(t, unit.Name)
	assert.Equal(t, "(assign x (3 + 4))\n(x print)", SprintAll(unit.Statements))

	unit, err = engine.CompileSource(Source{Name: "point.kaka", Text: pointClass})
	require.NoError(t, err)
	assert.Equal(t, "point.kaka", unit.Name)
	require.Len(t, unit.Statements, 2)
}

func TestCompileToleratesTrailingWhitespaceLines(t *testing.T) {
	engine := MustNewEngine(Config{})

	unit, err := engine.Compile("x = 1\n    \n")
	require.NoError(t, err)
	assert.Equal(t, "(assign x 1)", SprintAll(unit.Statements))

	unit, err = engine.Compile("class A\n    foo\n        1\n  \n")
	require.NoError(t, err)
	assert.Equal(t, "(class A (method (unary foo 1)))", SprintAll(unit.Statements))
}

func TestCompileAttachesSource(t *testing.T) {
	engine := MustNewEngine(Config{})
	text := "x = (1"

	unit, err := engine.CompileSource(Source{Name: "broken.kaka", Text: text})
	assert.Nil(t, unit)
	ferr := requireFrontEndError(t, err, SyntaxError)
	assert.Equal(t, "broken.kaka", ferr.File)
	assert.Equal(t, text, ferr.Source())
}

func TestCompileReportsEachStage(t *testing.T) {
	engine := MustNewEngine(Config{})

	_, err := engine.Compile(".3.")
	requireFrontEndError(t, err, LexicalError)

	_, err = engine.Compile("\n\t .\n \t.")
	requireFrontEndError(t, err, IndentationError)

	_, err = engine.Compile("1 2")
	requireFrontEndError(t, err, SyntaxError)
}

func TestCompileSourceTooLarge(t *testing.T) {
	engine := MustNewEngine(Config{MaxSourceBytes: 8})

	_, err := engine.CompileSource(Source{Name: "big.kaka", Text: "x = 123456789"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSourceTooLarge))
	assert.Contains(t, err.Error(), "big.kaka")

	_, err = engine.Compile("x = 1")
	require.NoError(t, err)
}

func TestCompileNestingLimit(t *testing.T) {
	engine := MustNewEngine(Config{MaxNesting: 3})

	_, err := engine.Compile("[[[1]]]")
	require.NoError(t, err)

	_, err = engine.Compile("[[[@{1}]]]")
	ferr := requireFrontEndError(t, err, SyntaxError)
	assert.Contains(t, ferr.Message, "maximum depth of 3")
}

func TestCompileDeepNestingWithDefaults(t *testing.T) {
	engine := MustNewEngine(Config{})
	depth := DefaultMaxNesting + 1
	source := strings.Repeat("(", depth) + "1" + strings.Repeat(")", depth)

	_, err := engine.Compile(source)
	ferr := requireFrontEndError(t, err, SyntaxError)
	assert.Contains(t, ferr.Message, "maximum depth")
}
