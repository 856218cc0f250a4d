package elfscan

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
)

var elfHeader = []byte{0x7f, 'E', 'L', 'F', 2, 1, 1, 0}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// fakeRunner answers every invocation from a per-path script.
type fakeRunner struct {
	mu       sync.Mutex
	stdout   map[string]string
	stderr   map[string]string
	err      error
	calls    []string
	inflight atomic.Int32
	peak     atomic.Int32
	block    chan struct{}
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	n := f.inflight.Add(1)
	defer f.inflight.Add(-1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}

	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	f.mu.Lock()
	f.calls = append(f.calls, path)
	f.mu.Unlock()

	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, nil, f.err
	}
	return []byte(f.stdout[path]), []byte(f.stderr[path]), nil
}

func (f *fakeRunner) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

var errNotInstalled = errors.New(`exec: "ldd": executable file not found in $PATH`)
