package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/khanhnv2901/arch-health/internal/checker"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var elfHeader = []byte{0x7f, 'E', 'L', 'F', 2, 1, 1, 0}

// fakeTools answers process launches by command name and, for ldd, by path.
type fakeTools struct {
	mu        sync.Mutex
	stdout    map[string]string // keyed by "name" or "name path"
	launchErr map[string]error  // keyed by command name
	installed map[string]bool
	onRun     func(name string) // called before each launch
}

func newFakeTools() *fakeTools {
	return &fakeTools{
		stdout:    map[string]string{},
		launchErr: map[string]error{},
		installed: map[string]bool{"ldd": true, "pacman": true, "arch-audit": true},
	}
}

func (f *fakeTools) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.onRun != nil {
		f.onRun(name)
	}
	if err := f.launchErr[name]; err != nil {
		return nil, nil, err
	}
	key := name
	if name == "ldd" && len(args) > 0 {
		key = name + " " + args[0]
	}
	return []byte(f.stdout[key]), nil, nil
}

func (f *fakeTools) LookPath(name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.installed[name] {
		return "/usr/bin/" + name, nil
	}
	return "", errors.New(`exec: "` + name + `": executable file not found in $PATH`)
}

// resetCLIState restores package-level state between command executions.
func resetCLIState(t *testing.T, tools *fakeTools) {
	t.Helper()

	reset := func() {
		viper.Reset()
		cfgFile = ""
		*cliConfig = *newCLIConfig()
		logger = zap.NewNop().Sugar()
		toolRunner = checker.ExecRunner{}
		toolLookPath = defaultLookPath
		resetFlags(rootCmd.PersistentFlags())
		resetFlags(historyCmd.Flags())
		resetFlags(versionCmd.Flags())
	}
	reset()
	t.Cleanup(reset)

	original := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = original })

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	if tools != nil {
		toolRunner = tools
		toolLookPath = tools.LookPath
	}
}

func resetFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

// executeCommand runs the root command with args and captures both streams.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeConfig writes a TOML config file and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(strings.TrimSpace(body)+"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// makeRoot creates a directory holding the given ELF file names.
func makeRoot(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), elfHeader, 0o755); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}
