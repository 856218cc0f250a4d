package elfscan

import (
	"sync"
	"time"
)

// ScanReport aggregates the non-clean results of a scan.
type ScanReport struct {
	Total           int           `json:"total" yaml:"total"`
	Clean           int           `json:"clean" yaml:"clean"`
	Failures        []ProbeResult `json:"failures" yaml:"failures"`
	DurationSeconds float64       `json:"duration_seconds" yaml:"duration_seconds"`
}

// Failed returns the number of files that did not probe clean.
func (r *ScanReport) Failed() int {
	return len(r.Failures)
}

// OK reports whether every scanned file had its dependencies resolved.
func (r *ScanReport) OK() bool {
	return len(r.Failures) == 0
}

// Count returns how many failures carry the given status.
func (r *ScanReport) Count(status Status) int {
	n := 0
	for _, f := range r.Failures {
		if f.Status == status {
			n++
		}
	}
	return n
}

// collector is the shared, append-only sink the dispatcher's workers write to.
// Once finalized it rejects further results.
type collector struct {
	mu       sync.Mutex
	failures []ProbeResult
	clean    int
	closed   bool
}

func (c *collector) add(r ProbeResult) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	if r.Clean() {
		c.clean++
	} else {
		c.failures = append(c.failures, r)
	}
	return true
}

func (c *collector) finalize(total int, elapsed time.Duration) *ScanReport {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	failures := c.failures
	if failures == nil {
		failures = []ProbeResult{}
	}
	return &ScanReport{
		Total:           total,
		Clean:           c.clean,
		Failures:        failures,
		DurationSeconds: elapsed.Seconds(),
	}
}
