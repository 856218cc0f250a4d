package elfscan

import (
	"context"
	"strings"
	"time"

	"github.com/khanhnv2901/arch-health/internal/checker"
	consts "github.com/khanhnv2901/arch-health/internal/shared/constants"
)

// Status classifies the outcome of a single probe.
type Status string

const (
	StatusClean       Status = "clean"
	StatusMissing     Status = "missing_dependencies"
	StatusProbeFailed Status = "probe_failed"
)

// ProbeResult is the outcome of probing one candidate file.
type ProbeResult struct {
	Path    string   `json:"path" yaml:"path"`
	Status  Status   `json:"status" yaml:"status"`
	Missing []string `json:"missing,omitempty" yaml:"missing,omitempty"`
	Reason  string   `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Clean reports whether the file had all of its dependencies resolved.
func (r ProbeResult) Clean() bool {
	return r.Status == StatusClean
}

// FileProber probes a single candidate file.
type FileProber interface {
	Probe(ctx context.Context, path string) ProbeResult
}

// Prober runs a dependency-resolution utility against one file at a time.
type Prober struct {
	Runner  checker.CommandRunner
	Command string        // defaults to ldd
	Marker  string        // defaults to "not found"
	Timeout time.Duration // zero means no timeout
}

// NewProber returns a Prober that launches command through runner. A nil
// runner uses os/exec and an empty command means ldd.
func NewProber(runner checker.CommandRunner, command string, timeout time.Duration) *Prober {
	if runner == nil {
		runner = checker.ExecRunner{}
	}
	if command == "" {
		command = consts.DefaultLddPath
	}
	return &Prober{
		Runner:  runner,
		Command: command,
		Marker:  consts.MissingMarker,
		Timeout: timeout,
	}
}

// Probe runs the utility once with path as its only argument. It never
// retries. Once launched, the process is not stopped by cancellation of ctx;
// only Timeout bounds it.
func (p *Prober) Probe(ctx context.Context, path string) ProbeResult {
	command := p.Command
	if command == "" {
		command = consts.DefaultLddPath
	}
	runner := p.Runner
	if runner == nil {
		runner = checker.ExecRunner{}
	}

	procCtx := context.WithoutCancel(ctx)
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		procCtx, cancel = context.WithTimeout(procCtx, p.Timeout)
		defer cancel()
	}

	stdout, stderr, err := runner.Run(procCtx, command, path)
	if err != nil {
		return ProbeResult{
			Path:   path,
			Status: StatusProbeFailed,
			Reason: err.Error(),
		}
	}
	return Classify(path, string(stdout), string(stderr), p.Marker)
}

// Classify turns the captured output of one probe into a result. The file
// has missing dependencies when either stream contains marker; the offending
// lines are the trimmed stdout lines that contain it, in order.
func Classify(path, stdout, stderr, marker string) ProbeResult {
	if marker == "" {
		marker = consts.MissingMarker
	}
	if !strings.Contains(stdout, marker) && !strings.Contains(stderr, marker) {
		return ProbeResult{Path: path, Status: StatusClean}
	}

	var missing []string
	for _, line := range strings.Split(stdout, "\n") {
		if strings.Contains(line, marker) {
			missing = append(missing, strings.TrimSpace(line))
		}
	}
	return ProbeResult{
		Path:    path,
		Status:  StatusMissing,
		Missing: missing,
	}
}
