package kaka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte("max_nesting: 32\nmax_source_bytes: 4096\nmax_parallel: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, Config{MaxNesting: 32, MaxSourceBytes: 4096, MaxParallel: 2}, cfg)

	engine, err := NewEngine(cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg, engine.Config())
}

func TestParseConfigPartial(t *testing.T) {
	cfg, err := ParseConfig([]byte("max_parallel: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, Config{MaxParallel: 1}, cfg)

	engine := MustNewEngine(cfg)
	assert.Equal(t, DefaultMaxNesting, engine.Config().MaxNesting)
}

func TestParseConfigEmpty(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestParseConfigErrors(t *testing.T) {
	cases := map[string]string{
		"unknown key":   "max_depth: 3\n",
		"wrong type":    "max_nesting: deep\n",
		"not a mapping": "- 1\n- 2\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig([]byte(data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "decoding kaka config")
		})
	}
}
