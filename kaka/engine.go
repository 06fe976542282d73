package kaka

import (
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// ErrSourceTooLarge is returned when a unit exceeds Config.MaxSourceBytes.
var ErrSourceTooLarge = errors.New("source exceeds the configured size limit")

// Engine runs the front end under a fixed Config. It holds no per-unit
// state and is safe for concurrent use.
type Engine struct {
	config Config
}

// Source is one named compilation unit.
type Source struct {
	Name string
	Text string
}

// Unit is the result of compiling one Source.
type Unit struct {
	Name       string
	Statements []Statement
}

// NewEngine fills in defaults for zero fields and rejects negative limits.
func NewEngine(cfg Config) (*Engine, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Engine{config: cfg}, nil
}

// MustNewEngine is like NewEngine but panics on an invalid Config.
func MustNewEngine(cfg Config) *Engine {
	engine, err := NewEngine(cfg)
	if err != nil {
		panic(err)
	}
	return engine
}

// Config returns the effective configuration, defaults included.
func (e *Engine) Config() Config {
	return e.config
}

// Compile runs an unnamed source through the whole front end.
func (e *Engine) Compile(source string) (*Unit, error) {
	return e.CompileSource(Source{Text: source})
}

// CompileSource scans, normalizes and parses src. A returned *Error carries
// the unit's name and text so it can render a code frame.
func (e *Engine) CompileSource(src Source) (*Unit, error) {
	if len(src.Text) > e.config.MaxSourceBytes {
		return nil, errors.Wrapf(ErrSourceTooLarge, "%s: %d bytes, limit %d", unitLabel(src.Name), len(src.Text), e.config.MaxSourceBytes)
	}

	start := time.Now()
	glog.V(5).Infof("kaka: compiling %s (%d bytes)", unitLabel(src.Name), len(src.Text))

	stmts, err := e.run(src)
	if err != nil {
		glog.V(5).Infof("kaka: %s failed after %v: %v", unitLabel(src.Name), time.Since(start), err)
		return nil, err
	}

	glog.V(5).Infof("kaka: compiled %s into %d statements in %v", unitLabel(src.Name), len(stmts), time.Since(start))
	return &Unit{Name: src.Name, Statements: stmts}, nil
}

func (e *Engine) run(src Source) ([]Statement, error) {
	tokens, err := Scan(src.Text)
	if err != nil {
		return nil, e.attach(err, src)
	}
	glog.V(7).Infof("kaka: %s scanned %d tokens", unitLabel(src.Name), len(tokens))
	if glog.V(9) {
		for _, tok := range tokens {
			glog.Infof("kaka: %s %s %s", unitLabel(src.Name), tok.Pos, tok)
		}
	}

	tokens, err = Normalize(tokens)
	if err != nil {
		return nil, e.attach(err, src)
	}
	glog.V(7).Infof("kaka: %s normalized to %d tokens", unitLabel(src.Name), len(tokens))

	p := newParser(tokens, e.config.MaxNesting)
	stmts := p.parseProgram()
	if p.err != nil {
		return nil, e.attach(p.err, src)
	}
	glog.V(7).Infof("kaka: %s parsed %d top-level statements", unitLabel(src.Name), len(stmts))
	return stmts, nil
}

func (e *Engine) attach(err error, src Source) error {
	var ferr *Error
	if errors.As(err, &ferr) {
		return ferr.WithSource(src.Name, src.Text)
	}
	return err
}

func unitLabel(name string) string {
	if name == "" {
		return "<source>"
	}
	return name
}
