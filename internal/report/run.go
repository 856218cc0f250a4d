package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/khanhnv2901/arch-health/internal/checker"
	"github.com/khanhnv2901/arch-health/internal/elfscan"
)

// Run is everything one health check produced, ready to be formatted.
type Run struct {
	ID          string                `json:"run_id" yaml:"run_id"`
	StartedAt   time.Time             `json:"started_at" yaml:"started_at"`
	CompletedAt time.Time             `json:"completed_at" yaml:"completed_at"`
	Library     *elfscan.ScanReport   `json:"library,omitempty" yaml:"library,omitempty"`
	Checks      []checker.CheckResult `json:"checks,omitempty" yaml:"checks,omitempty"`
}

// NewRun starts a run stamped with a fresh ID and the current time.
func NewRun() *Run {
	return &Run{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}
}

// Finish records the completion time.
func (r *Run) Finish() {
	r.CompletedAt = time.Now().UTC()
}

// HasIssues reports whether any section found something to act on.
func (r *Run) HasIssues() bool {
	if r.Library != nil && !r.Library.OK() {
		return true
	}
	for _, c := range r.Checks {
		if c.HasIssues() {
			return true
		}
	}
	return false
}

// Duration returns the wall time of the run, or zero while it is unfinished.
func (r *Run) Duration() time.Duration {
	if r.CompletedAt.IsZero() {
		return 0
	}
	return r.CompletedAt.Sub(r.StartedAt)
}
