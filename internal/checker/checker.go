package checker

import (
	"context"
	"time"
)

// Status is the verdict of a single system check.
type Status string

const (
	StatusPass    Status = "pass"
	StatusIssues  Status = "issues"
	StatusSkipped Status = "skipped"
	StatusError   Status = "error"
)

// CheckResult represents the result of a single system check
type CheckResult struct {
	Name            string    `json:"name" yaml:"name"`
	Tool            string    `json:"tool" yaml:"tool"`
	Status          Status    `json:"status" yaml:"status"`
	Issues          []string  `json:"issues,omitempty" yaml:"issues,omitempty"`
	Error           string    `json:"error,omitempty" yaml:"error,omitempty"`
	CheckedAt       time.Time `json:"checked_at" yaml:"checked_at"`
	DurationSeconds float64   `json:"duration_seconds" yaml:"duration_seconds"`
}

// HasIssues reports whether the check found something the operator should act on.
func (r CheckResult) HasIssues() bool {
	return r.Status == StatusIssues || r.Status == StatusError
}

// Checker is the interface that all check implementations must satisfy
type Checker interface {
	// Check runs the underlying tool once and classifies its output
	Check(ctx context.Context) CheckResult

	// Name returns the short name of this check (e.g., "pacman", "audit")
	Name() string
}

// StartFunc is invoked before a check begins.
type StartFunc func(name string)

// DoneFunc is invoked after a check finishes, with its duration in seconds.
type DoneFunc func(result CheckResult, duration float64)

// Runner orchestrates the execution of checks
type Runner struct {
	Timeout time.Duration // Timeout for each check, zero means none
	OnStart StartFunc
	OnDone  DoneFunc
}

// RunChecks executes the checks one after another and returns their results
// in the order given. A cancelled context marks the remaining checks as errors.
func (r *Runner) RunChecks(ctx context.Context, checkers []Checker) []CheckResult {
	results := make([]CheckResult, 0, len(checkers))

	for _, chk := range checkers {
		if err := ctx.Err(); err != nil {
			results = append(results, CheckResult{
				Name:      chk.Name(),
				Status:    StatusError,
				Error:     err.Error(),
				CheckedAt: time.Now().UTC(),
			})
			continue
		}

		if r.OnStart != nil {
			r.OnStart(chk.Name())
		}

		start := time.Now()
		checkCtx, cancel := ctx, context.CancelFunc(func() {})
		if r.Timeout > 0 {
			checkCtx, cancel = context.WithTimeout(ctx, r.Timeout)
		}
		result := chk.Check(checkCtx)
		cancel()

		duration := time.Since(start).Seconds()
		result.DurationSeconds = duration

		if r.OnDone != nil {
			r.OnDone(result, duration)
		}
		results = append(results, result)
	}

	return results
}
