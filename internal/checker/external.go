package checker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	sharedErrors "github.com/khanhnv2901/arch-health/internal/shared/errors"
)

// CommandRunner launches a process and returns its captured output streams.
// A non-nil error means the process could not be launched or was stopped by
// ctx; a non-zero exit status alone is not an error.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run implements CommandRunner.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return stdout.Bytes(), stderr.Bytes(), ctxErr
		}
		err = nil
	}
	return stdout.Bytes(), stderr.Bytes(), err
}

// ParseFunc extracts issue lines from a tool's captured output. No issues
// means the check passed.
type ParseFunc func(stdout, stderr string) []string

type ExternalCheckerConfig struct {
	Name     string
	Command  string
	Args     []string
	Optional bool // a tool missing from PATH is reported as skipped
	Parse    ParseFunc
	Runner   CommandRunner
	LookPath func(string) (string, error)
}

// ExternalChecker runs one external tool and classifies its output.
type ExternalChecker struct {
	name     string
	command  string
	args     []string
	optional bool
	parse    ParseFunc
	runner   CommandRunner
	lookPath func(string) (string, error)
}

func NewExternalChecker(cfg ExternalCheckerConfig) *ExternalChecker {
	runner := cfg.Runner
	if runner == nil {
		runner = ExecRunner{}
	}
	lookPath := cfg.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	return &ExternalChecker{
		name:     cfg.Name,
		command:  cfg.Command,
		args:     cfg.Args,
		optional: cfg.Optional,
		parse:    cfg.Parse,
		runner:   runner,
		lookPath: lookPath,
	}
}

func (e *ExternalChecker) Name() string {
	return e.name
}

func (e *ExternalChecker) Check(ctx context.Context) CheckResult {
	result := CheckResult{
		Name:      e.name,
		Tool:      e.command,
		CheckedAt: time.Now().UTC(),
		Status:    StatusError,
	}

	if e.command == "" {
		result.Error = "external checker command is empty"
		return result
	}

	if _, err := e.lookPath(e.command); err != nil {
		if e.optional {
			result.Status = StatusSkipped
		}
		result.Error = fmt.Errorf("%s: %w", e.command, sharedErrors.ErrToolNotFound).Error()
		return result
	}

	stdout, stderr, err := e.runner.Run(ctx, e.command, e.args...)
	if err != nil {
		result.Error = fmt.Errorf("%w %s: %v", sharedErrors.ErrToolLaunch, e.command, err).Error()
		return result
	}

	var issues []string
	if e.parse != nil {
		issues = e.parse(string(stdout), string(stderr))
	}
	if len(issues) > 0 {
		result.Status = StatusIssues
		result.Issues = issues
	} else {
		result.Status = StatusPass
	}
	return result
}
