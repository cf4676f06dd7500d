package scheduler

import (
	"context"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/hamed0406/endpointprobe/internal/domain"
)

// Source supplies the endpoints for one pass.
type Source interface {
	Endpoints() []domain.EndpointConfig
}


type Prober interface {
	Run(ctx context.Context, cfg domain.EndpointConfig)
}

type Runner struct {
	Logger      *zap.Logger
	Source      Source
	Probe       Prober
	Interval    time.Duration
	Concurrency int
}

func NewRunner(
	logger *zap.Logger,
	src Source,
	probe Prober,
	interval time.Duration,
	concurrency int,
) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if concurrency < 1 {
		concurrency = 1
	}
	if interval < 0 {
		interval = 0
	}
	return &Runner{
		Logger:      logger,
		Source:      src,
		Probe:       probe,
		Interval:    interval,
		Concurrency: concurrency,
	}
}

// Run starts the loop. It does an immediate pass, then runs each tick.
// Stops when ctx is cancelled.
func (r *Runner) Run(ctx context.Context) {
	if r.Interval == 0 {
		// disabled
		r.Logger.Info("runner_disabled")
		return
	}
	t := time.NewTicker(r.Interval)
	defer t.Stop()

	// immediate pass
	r.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			r.Logger.Info("runner_stopped")
			return
		case <-t.C:
			r.RunOnce(ctx)
		}
	}
}

// RunOnce probes every endpoint of a fresh snapshot, at most Concurrency at
// a time, and waits for all of them.
func (r *Runner) RunOnce(ctx context.Context) {
	eps := r.Source.Endpoints()
	if len(eps) == 0 {
		return
	}

	start := time.Now()
	p := pool.New().WithMaxGoroutines(r.Concurrency)
	for _, ep := range eps {
		ep := ep
		p.Go(func() {
			r.Probe.Run(ctx, ep)
		})
	}
	p.Wait()

	r.Logger.Debug("runner_pass_done",
		zap.Int("endpoints", len(eps)),
		zap.Duration("took", time.Since(start)),
	)
}
