package checker

import (
	"context"
	"errors"
	"strings"
)

type fakeRunner struct {
	stdout string
	stderr string
	err    error
	calls  [][]string
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.err != nil {
		return nil, nil, f.err
	}
	return []byte(f.stdout), []byte(f.stderr), nil
}

func (f *fakeRunner) lastCall() string {
	if len(f.calls) == 0 {
		return ""
	}
	return strings.Join(f.calls[len(f.calls)-1], " ")
}

func foundPath(name string) (string, error) {
	return "/usr/bin/" + name, nil
}

func missingPath(name string) (string, error) {
	return "", errors.New(`exec: "` + name + `": executable file not found in $PATH`)
}
