package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/khanhnv2901/arch-health/internal/checker"
	"github.com/khanhnv2901/arch-health/internal/elfscan"
	"github.com/khanhnv2901/arch-health/internal/history"
	"github.com/khanhnv2901/arch-health/internal/report"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var defaultLookPath = exec.LookPath

// Process seams, replaced in tests.
var (
	toolRunner   checker.CommandRunner = checker.ExecRunner{}
	toolLookPath                       = defaultLookPath
)

var checkMessages = map[string]string{
	"pacman": "Checking pacman package consistency...",
	"audit":  "Running arch-audit...",
}

// checkSelection says which checks one invocation runs.
type checkSelection struct {
	Library bool
	Pacman  bool
	Audit   bool
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run a single health check regardless of the config selection",
}

var checkLibsCmd = &cobra.Command{
	Use:     "libs",
	Aliases: []string{"library", "ldd"},
	Short:   "Check ELF binaries and libraries for missing shared-library dependencies",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHealthCheck(cmd, checkSelection{Library: true})
	},
}

var checkPackagesCmd = &cobra.Command{
	Use:     "packages",
	Aliases: []string{"pacman"},
	Short:   "Check installed packages for missing files (pacman -Qk)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHealthCheck(cmd, checkSelection{Pacman: true})
	},
}

var checkAuditCmd = &cobra.Command{
	Use:   "audit",
	Short: "List installed packages with known vulnerabilities (arch-audit)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHealthCheck(cmd, checkSelection{Audit: true})
	},
}

func init() {
	checkCmd.AddCommand(checkLibsCmd)
	checkCmd.AddCommand(checkPackagesCmd)
	checkCmd.AddCommand(checkAuditCmd)
}

// runHealthCheck runs the selected checks and writes one report to stdout.
// Progress and spinners go to stderr, and only for text output on a terminal.
func runHealthCheck(cmd *cobra.Command, sel checkSelection) error {
	cfg := cliConfig

	formatter, err := report.NewFormatter(cfg.Output.Format)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	status := cmd.ErrOrStderr()
	interactive := report.Interactive(cfg.Output.Format) && cfg.Output.Progress && isTerminal(status)

	// The text header opens the report before any check starts.
	if text, ok := formatter.(*report.TextFormatter); ok {
		if err := report.WriteHeader(out); err != nil {
			return fmt.Errorf("render report: %w", err)
		}
		text.OmitHeader = true
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case sig := <-sigCh:
			fmt.Fprintf(status, "\n%s Received %s, finishing running probes...\n", colorWarn("!"), sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	run := report.NewRun()
	logger.Debugw("health check started", "run_id", run.ID, "library", sel.Library, "pacman", sel.Pacman, "audit", sel.Audit)

	if sel.Library {
		run.Library = runLibraryScan(ctx, cfg.Library, status, interactive)
	}

	var checkers []checker.Checker
	if sel.Pacman {
		checkers = append(checkers, checker.NewPacmanChecker(toolRunner, toolLookPath))
	}
	if sel.Audit {
		checkers = append(checkers, checker.NewAuditChecker(toolRunner, toolLookPath))
	}
	if len(checkers) > 0 {
		runner := &checker.Runner{}
		if interactive {
			sp := newSpinner(status)
			runner.OnStart = func(name string) {
				sp.Start(checkMessages[name])
			}
			runner.OnDone = func(result checker.CheckResult, duration float64) {
				sp.Stop(colorSuccess("✅ Done"))
			}
		}
		run.Checks = runner.RunChecks(ctx, checkers)
	}

	run.Finish()

	if err := formatter.Format(out, run); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	if cfg.Output.History {
		if err := recordHistory(run); err != nil {
			fmt.Fprintf(status, "Warning: failed to record history: %v\n", err)
		}
	}

	if ctx.Err() != nil {
		logger.Warnw("health check interrupted, report is partial", "run_id", run.ID)
	}

	if cfg.Output.Strict && run.HasIssues() {
		rec := history.Summarize(run)
		return &IssuesFoundError{
			FilesWithIssues:  rec.FilesWithIssues,
			ChecksWithIssues: rec.ChecksWithIssues,
		}
	}
	return nil
}

func runLibraryScan(ctx context.Context, cfg LibraryConfig, status io.Writer, interactive bool) *elfscan.ScanReport {
	zlog := logger.Desugar()

	var sp *spinner
	if interactive {
		sp = newSpinner(status)
		sp.Start("Collecting ELF files...")
	}
	walker := &elfscan.Walker{Logger: zlog}
	files := walker.Walk(cfg.Roots)
	if sp != nil {
		sp.Stop("")
	}

	dispatcher := &elfscan.Dispatcher{
		Prober:        elfscan.NewProber(toolRunner, cfg.LddPath, cfg.ProbeTimeout),
		Workers:       cfg.Workers,
		RateLimit:     cfg.RateLimit,
		ProgressEvery: cfg.ProgressEvery,
		Logger:        zlog,
	}

	var progress *progressPrinter
	if interactive {
		progress = newProgressPrinter(status, len(files), "ldd")
		progress.Start()
		dispatcher.Progress = progress.Update
	}

	rep := dispatcher.Run(ctx, files)

	if progress != nil {
		progress.Stop()
	}
	return rep
}

func recordHistory(run *report.Run) error {
	path, err := getHistoryFilePath()
	if err != nil {
		return err
	}
	return history.Append(path, history.Summarize(run))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
