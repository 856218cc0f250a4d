package cmd

import (
	"runtime"
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	resetCLIState(t, nil)

	stdout, _, err := executeCommand(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	want := "arch-health " + Version + " (" + runtime.GOOS + "/" + runtime.GOARCH + ")"
	if strings.TrimSpace(stdout) != want {
		t.Fatalf("expected %q, got %q", want, stdout)
	}
}

func TestVersionVerboseListsTools(t *testing.T) {
	tools := newFakeTools()
	tools.installed["arch-audit"] = false
	resetCLIState(t, tools)

	stdout, _, err := executeCommand(t, "version", "--verbose")
	if err != nil {
		t.Fatalf("version --verbose: %v", err)
	}
	for _, want := range []string{
		"commit:",
		"go:      " + runtime.Version(),
		"ldd         /usr/bin/ldd",
		"pacman      /usr/bin/pacman",
		"arch-audit  not in PATH",
	} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("expected %q in verbose output:\n%s", want, stdout)
		}
	}
}
