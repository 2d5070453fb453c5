package batch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kbukum/faultkit/apperr"
	"github.com/kbukum/faultkit/code"
)

// Map invokes transform on every input in order and collects each item's
// outcome. It never short-circuits and never drops a slot: the result has
// exactly one outcome per input, index-aligned. Errors (and panics inside
// transform) become classified failures under code.General unless transform
// already returned an *apperr.Error.
func Map[I, O any](inputs []I, transform func(I) (O, error)) Result[O] {
	out := make(Result[O], len(inputs))
	for i, in := range inputs {
		out[i] = runOne(in, transform)
	}
	return out
}

// MapParallel is Map with bounded fan-out. limit <= 0 means one goroutine
// per input. Each worker writes only its own slot, so the result order
// matches input order regardless of completion order.
func MapParallel[I, O any](ctx context.Context, inputs []I, limit int, transform func(context.Context, I) (O, error)) Result[O] {
	out := make(Result[O], len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			out[i] = runOne(in, func(v I) (O, error) { return transform(ctx, v) })
			return nil
		})
	}
	// Workers never return errors; failures live in their slots.
	_ = g.Wait()
	return out
}

// runOne executes transform for a single input, converting errors and
// panics into a classified failure.
func runOne[I, O any](in I, transform func(I) (O, error)) (outcome Outcome[O]) {
	defer func() {
		if r := recover(); r != nil {
			outcome = Failure[O](apperr.Wrap(fmt.Errorf("panic: %v", r), code.General))
		}
	}()
	v, err := transform(in)
	if err != nil {
		return Failure[O](apperr.From(err, code.General))
	}
	return Success(v)
}
