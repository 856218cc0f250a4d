package elfscan

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	consts "github.com/khanhnv2901/arch-health/internal/shared/constants"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// ProgressFunc receives "done of total" updates. It may be called from
// several goroutines at once and must not block for long.
type ProgressFunc func(done, total int)

// Dispatcher runs a FileProber over many files with bounded parallelism.
type Dispatcher struct {
	Prober        FileProber
	Workers       int // defaults to runtime.NumCPU()
	RateLimit     int // probes started per second, zero means unlimited
	ProgressEvery int // defaults to 25
	Progress      ProgressFunc
	Logger        *zap.Logger
}

// Run probes every file and returns once all probes have finished. Results
// land in the report in completion order. When ctx is cancelled, files whose
// probe has not started yet are recorded as probe failures carrying the
// context error; probes already running are left to finish.
func (d *Dispatcher) Run(ctx context.Context, files []string) *ScanReport {
	start := time.Now()
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	workers := d.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	every := d.ProgressEvery
	if every <= 0 {
		every = consts.DefaultProgressEvery
	}

	var limiter *rate.Limiter
	if d.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(d.RateLimit), d.RateLimit)
	}

	total := len(files)
	sink := &collector{}
	var done atomic.Int64

	var g errgroup.Group
	g.SetLimit(workers)
	for _, path := range files {
		g.Go(func() error {
			result := d.probe(ctx, limiter, path)
			if !result.Clean() {
				logger.Debug("probe reported issue",
					zap.String("path", result.Path),
					zap.String("status", string(result.Status)),
					zap.String("reason", result.Reason))
			}
			sink.add(result)

			n := int(done.Add(1))
			if d.Progress != nil && (n%every == 0 || n == total) {
				d.Progress(n, total)
			}
			return nil
		})
	}
	_ = g.Wait()

	report := sink.finalize(total, time.Since(start))
	logger.Debug("scan complete",
		zap.Int("total", report.Total),
		zap.Int("failed", report.Failed()),
		zap.Int("workers", workers),
		zap.Duration("elapsed", time.Since(start)))
	return report
}

func (d *Dispatcher) probe(ctx context.Context, limiter *rate.Limiter, path string) ProbeResult {
	if err := ctx.Err(); err != nil {
		return ProbeResult{Path: path, Status: StatusProbeFailed, Reason: err.Error()}
	}
	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return ProbeResult{Path: path, Status: StatusProbeFailed, Reason: err.Error()}
		}
	}
	return d.Prober.Probe(ctx, path)
}
