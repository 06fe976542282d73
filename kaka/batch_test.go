package kaka

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileAll(t *testing.T) {
	engine := MustNewEngine(Config{MaxParallel: 2})
	sources := []Source{
		{Name: "a.kaka", Text: "x = 1"},
		{Name: "b.kaka", Text: pointClass},
		{Name: "c.kaka", Text: "xs do: @{|e| e print}"},
	}

	units, err := engine.CompileAll(context.Background(), sources)
	require.NoError(t, err)
	require.Len(t, units, len(sources))
	for i, unit := range units {
		require.NotNil(t, unit)
		assert.Equal(t, sources[i].Name, unit.Name)
	}
	assert.Equal(t, "(assign x 1)", SprintAll(units[0].Statements))
}

func TestCompileAllAggregatesFailuresInOrder(t *testing.T) {
	engine := MustNewEngine(Config{MaxParallel: 4})
	sources := []Source{
		{Name: "ok1", Text: "x = 1"},
		{Name: "lex", Text: "x = $"},
		{Name: "ok2", Text: "y = 2"},
		{Name: "indent", Text: "a\n    b\n  c"},
		{Name: "syntax", Text: "1 2"},
	}

	units, err := engine.CompileAll(context.Background(), sources)
	require.Error(t, err)
	require.Len(t, units, len(sources))
	assert.NotNil(t, units[0])
	assert.Nil(t, units[1])
	assert.NotNil(t, units[2])
	assert.Nil(t, units[3])
	assert.Nil(t, units[4])

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 3)

	wants := []struct {
		file string
		kind ErrorKind
	}{
		{"lex", LexicalError},
		{"indent", IndentationError},
		{"syntax", SyntaxError},
	}
	for i, want := range wants {
		var ferr *Error
		require.ErrorAs(t, merr.Errors[i], &ferr)
		assert.Equal(t, want.file, ferr.File)
		assert.Equal(t, want.kind, ferr.Kind)
	}
	assert.Len(t, Diagnostics(err), 3)
}

func TestCompileAllManyUnits(t *testing.T) {
	engine := MustNewEngine(Config{MaxParallel: 3})
	sources := make([]Source, 50)
	for i := range sources {
		sources[i] = Source{Name: fmt.Sprintf("u%d", i), Text: fmt.Sprintf("x = %d\nx print", i)}
	}

	units, err := engine.CompileAll(context.Background(), sources)
	require.NoError(t, err)
	for i, unit := range units {
		assert.Equal(t, fmt.Sprintf("(assign x %d)\n(x print)", i), SprintAll(unit.Statements))
	}
}

func TestCompileAllCancelled(t *testing.T) {
	engine := MustNewEngine(Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	units, err := engine.CompileAll(ctx, []Source{{Name: "a", Text: "x = 1"}})
	assert.Nil(t, units)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestCompileAllEmpty(t *testing.T) {
	units, err := MustNewEngine(Config{}).CompileAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, units)
}
