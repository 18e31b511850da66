package sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Map evaluates fn on every input concurrently and returns the results in
// input order.
//
// Algorithm Outline:
//  1. Apply opts over DefaultOptions.
//  2. Start an errgroup bound to ctx with at most Workers goroutines in flight.
//  3. Submit one task per input. Each task writes only its own slot of the
//     result slice, so no locking is needed.
//  4. Stop submitting once the group context is cancelled. Tasks that start
//     after cancellation return immediately.
//  5. Wait, then log the outcome at Debug level on the configured logger.
//
// Complexity:
//
//	Time   = O(len(inputs)/Workers) calls of fn on the critical path
//	Memory = O(len(inputs)) for the results
//
// Errors:
//   - the first error from fn, wrapped with the index of its input. It
//     cancels the context passed to the calls that are still running.
//   - ctx.Err() if ctx is cancelled before every input was evaluated.
func Map[In, Out any](ctx context.Context, inputs []In, fn func(context.Context, In) (Out, error), opts ...Option) ([]Out, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	log := o.Logger.WithFields(logrus.Fields{"inputs": len(inputs), "workers": o.Workers})
	log.Debug("sweep: start")
	start := time.Now()

	out := make([]Out, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := fn(gctx, inputs[i])
			if err != nil {
				return fmt.Errorf("sweep: input %d: %w", i, err)
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.WithError(err).Debug("sweep: failed")
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		log.WithError(err).Debug("sweep: cancelled")
		return nil, err
	}
	log.WithField("elapsed", time.Since(start)).Debug("sweep: done")

	return out, nil
}
