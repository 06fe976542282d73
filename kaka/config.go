package kaka

import (
	"bytes"
	"io"
	"runtime"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	defaultMaxSourceBytes = 1 << 20
)

// Config bounds the work a single Engine will do.
type Config struct {
	// MaxNesting limits how deeply parentheses, collections and blocks nest.
	MaxNesting int `yaml:"max_nesting"`
	// MaxSourceBytes rejects larger units before scanning.
	MaxSourceBytes int `yaml:"max_source_bytes"`
	// MaxParallel caps how many units CompileAll works on at once.
	MaxParallel int `yaml:"max_parallel"`
}

// ParseConfig decodes a YAML document into a Config. Unknown keys are an
// error so typos do not silently fall back to defaults.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "decoding kaka config")
	}
	return cfg, nil
}

func (c Config) withDefaults() Config {
	if c.MaxNesting == 0 {
		c.MaxNesting = DefaultMaxNesting
	}
	if c.MaxSourceBytes == 0 {
		c.MaxSourceBytes = defaultMaxSourceBytes
	}
	if c.MaxParallel == 0 {
		c.MaxParallel = runtime.GOMAXPROCS(0)
	}
	return c
}

func (c Config) validate() error {
	if c.MaxNesting < 0 {
		return errors.Errorf("max_nesting must not be negative, got %d", c.MaxNesting)
	}
	if c.MaxSourceBytes < 0 {
		return errors.Errorf("max_source_bytes must not be negative, got %d", c.MaxSourceBytes)
	}
	if c.MaxParallel < 0 {
		return errors.Errorf("max_parallel must not be negative, got %d", c.MaxParallel)
	}
	return nil
}
