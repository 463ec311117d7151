// Package batch processes many independent documents in parallel.
package batch

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/okian/hardcard/pkg/logger"
	"github.com/okian/hardcard/pkg/metrics"
)

// Outcome labels for processed documents.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Func processes one item.
type Func[T any] func(ctx context.Context, item string) (T, error)

// Result is the outcome of one item, in input order.
type Result[T any] struct {
	Item     string
	Value    T
	Err      error
	Duration time.Duration
}

// Pool bounds how many items are processed at once.
type Pool struct {
	workers int
	name    string
	logger  logger.Logger
}

// NewPool creates a pool running at most workers items concurrently.
// A non-positive count defaults to the number of CPUs.
func NewPool(workers int, opts ...Option) *Pool {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	p := &Pool{
		workers: workers,
		name:    "batch",
		logger:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.Named(p.name)
	return p
}

// Workers returns the concurrency limit.
func (p *Pool) Workers() int { return p.workers }

// Run applies fn to every item. A failing item never cancels its siblings;
// its error is recorded in its Result. Items not started before ctx is done
// report ctx.Err().
func Run[T any](ctx context.Context, p *Pool, items []string, fn Func[T]) []Result[T] {
	results := make([]Result[T], len(items))

	var g errgroup.Group
	g.SetLimit(p.workers)
	for i, item := range items {
		results[i].Item = item
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i] = process(ctx, p, item, fn)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func process[T any](ctx context.Context, p *Pool, item string, fn Func[T]) Result[T] {
	metrics.AddBatchWorkersActive(1)
	defer metrics.AddBatchWorkersActive(-1)

	start := time.Now()
	v, err := fn(ctx, item)
	elapsed := time.Since(start)
	metrics.RecordBatchFileLatency(float64(elapsed.Microseconds()) / 1000)

	if err != nil {
		metrics.RecordDocumentProcessed(OutcomeError)
		metrics.RecordErrorByComponent(p.name, "process_error")
		p.logger.Warn(ctx, "item failed",
			logger.String("item", item),
			logger.Error(err),
		)
	} else {
		metrics.RecordDocumentProcessed(OutcomeOK)
	}
	return Result[T]{Item: item, Value: v, Err: err, Duration: elapsed}
}
