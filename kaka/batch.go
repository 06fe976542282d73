package kaka

import (
	"context"

	"github.com/golang/glog"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// CompileAll compiles independent units concurrently, at most
// Config.MaxParallel at a time. Every unit keeps its own first-error
// semantics: units[i] is nil exactly when sources[i] failed, and the
// failures are returned together, in input order, as a *multierror.Error.
//
// Cancelling ctx stops new units from starting and makes CompileAll return
// ctx.Err() with no units.
func (e *Engine) CompileAll(ctx context.Context, sources []Source) ([]*Unit, error) {
	units := make([]*Unit, len(sources))
	errs := make([]error, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.config.MaxParallel)
	for i, src := range sources {
		i, src := i, src
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			units[i], errs[i] = e.CompileSource(src)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var result *multierror.Error
	for _, err := range errs {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	if result != nil {
		glog.V(5).Infof("kaka: %d of %d units failed", len(result.Errors), len(sources))
	}
	return units, result.ErrorOrNil()
}
