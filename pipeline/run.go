package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RunOptions configures Run.
type RunOptions struct {
	// Workers bounds the number of events processed at once;
	// 0 means runtime.GOMAXPROCS(0).
	Workers int

	// SkipFailed drops events failing with a per-event fatal error instead of
	// aborting the batch. Configuration errors always abort.
	SkipFailed bool
}

// RunSummary is the result of Run.
type RunSummary struct {
	// Outcomes is aligned with the input; dropped or failed units are nil.
	Outcomes []*Outcome

	Processed int
	Dropped   int // type mismatches
	Failed    int // per-event errors skipped with SkipFailed
}

// Run processes units concurrently with at most opts.Workers in flight.
// Outcomes keep the input order regardless of completion order.
//
// The first non-skipped error cancels the remaining work and is returned
// wrapped with the unit index; the summary then covers what finished.
func (m *Matcher) Run(ctx context.Context, units []any, opts RunOptions) (RunSummary, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	outcomes := make([]*Outcome, len(units))
	var processed, dropped, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, u := range units {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := m.Process(u)
			switch {
			case err == nil:
				outcomes[i] = out
				processed.Add(1)
			case Recoverable(err):
				dropped.Add(1)
			case opts.SkipFailed && !FatalForJob(err):
				failed.Add(1)
				m.log.Warn("event skipped", zap.Int("index", i), zap.Error(err))
			default:
				return fmt.Errorf("unit %d: %w", i, err)
			}

			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	return RunSummary{
		Outcomes:  outcomes,
		Processed: int(processed.Load()),
		Dropped:   int(dropped.Load()),
		Failed:    int(failed.Load()),
	}, err
}
