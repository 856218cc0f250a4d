package checker

import (
	"context"
	"errors"
	"strings"
	"testing"

	sharedErrors "github.com/khanhnv2901/arch-health/internal/shared/errors"
)

func TestExternalCheckerPass(t *testing.T) {
	runner := &fakeRunner{stdout: "everything fine\n"}
	chk := NewExternalChecker(ExternalCheckerConfig{
		Name:     "sample",
		Command:  "sample-tool",
		Args:     []string{"--flag"},
		Parse:    func(stdout, stderr string) []string { return nil },
		Runner:   runner,
		LookPath: foundPath,
	})

	result := chk.Check(context.Background())
	if result.Status != StatusPass {
		t.Fatalf("expected pass, got %s (%s)", result.Status, result.Error)
	}
	if result.Name != "sample" || result.Tool != "sample-tool" {
		t.Fatalf("unexpected identity: %+v", result)
	}
	if result.CheckedAt.IsZero() {
		t.Fatal("expected CheckedAt to be set")
	}
	if got := runner.lastCall(); got != "sample-tool --flag" {
		t.Fatalf("unexpected invocation %q", got)
	}
}

func TestExternalCheckerIssues(t *testing.T) {
	chk := NewExternalChecker(ExternalCheckerConfig{
		Name:     "sample",
		Command:  "sample-tool",
		Parse:    ParseAuditOutput,
		Runner:   &fakeRunner{stdout: "pkg-a is affected by CVE-1\n\npkg-b is affected by CVE-2\n"},
		LookPath: foundPath,
	})

	result := chk.Check(context.Background())
	if result.Status != StatusIssues {
		t.Fatalf("expected issues, got %s", result.Status)
	}
	if len(result.Issues) != 2 {
		t.Fatalf("expected 2 issues, got %q", result.Issues)
	}
	if !result.HasIssues() {
		t.Fatal("HasIssues should be true")
	}
}

func TestExternalCheckerToolMissing(t *testing.T) {
	tests := []struct {
		name     string
		optional bool
		want     Status
	}{
		{name: "optional tool is skipped", optional: true, want: StatusSkipped},
		{name: "required tool is an error", optional: false, want: StatusError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{}
			chk := NewExternalChecker(ExternalCheckerConfig{
				Name:     "sample",
				Command:  "sample-tool",
				Optional: tt.optional,
				Runner:   runner,
				LookPath: missingPath,
			})

			result := chk.Check(context.Background())
			if result.Status != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, result.Status)
			}
			if !strings.Contains(result.Error, sharedErrors.ErrToolNotFound.Error()) {
				t.Fatalf("expected not-found error, got %q", result.Error)
			}
			if len(runner.calls) != 0 {
				t.Fatalf("tool must not be launched, got %v", runner.calls)
			}
		})
	}
}

func TestExternalCheckerLaunchFailure(t *testing.T) {
	chk := NewExternalChecker(ExternalCheckerConfig{
		Name:     "sample",
		Command:  "sample-tool",
		Optional: true,
		Runner:   &fakeRunner{err: errors.New("permission denied")},
		LookPath: foundPath,
	})

	result := chk.Check(context.Background())
	if result.Status != StatusError {
		t.Fatalf("expected error, got %s", result.Status)
	}
	if !strings.Contains(result.Error, "permission denied") {
		t.Fatalf("expected launch reason in error, got %q", result.Error)
	}
}

func TestExternalCheckerEmptyCommand(t *testing.T) {
	result := NewExternalChecker(ExternalCheckerConfig{Name: "empty"}).Check(context.Background())
	if result.Status != StatusError || result.Error == "" {
		t.Fatalf("expected configuration error, got %+v", result)
	}
}

func TestExecRunnerNonZeroExitIsNotAnError(t *testing.T) {
	stdout, _, err := ExecRunner{}.Run(context.Background(), "sh", "-c", "echo out; exit 3")
	if err != nil {
		t.Skipf("sh unavailable: %v", err)
	}
	if strings.TrimSpace(string(stdout)) != "out" {
		t.Fatalf("expected captured stdout, got %q", stdout)
	}
}

func TestExecRunnerLaunchFailure(t *testing.T) {
	_, _, err := ExecRunner{}.Run(context.Background(), "/nonexistent/tool-for-tests")
	if err == nil {
		t.Fatal("expected launch error")
	}
}

func TestExecRunnerContextKill(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := ExecRunner{}.Run(ctx, "sh", "-c", "sleep 5")
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
