package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/khanhnv2901/arch-health/internal/checker"
	"github.com/khanhnv2901/arch-health/internal/elfscan"
)

var (
	colorSuccess = color.New(color.FgGreen).SprintFunc()
	colorInfo    = color.New(color.FgCyan, color.Bold).SprintFunc()
	colorWarn    = color.New(color.FgYellow).SprintFunc()
	colorError   = color.New(color.FgRed).SprintFunc()
)

// TextFormatter outputs the run as human-readable text.
type TextFormatter struct {
	// OmitHeader is set when the caller already wrote the header with
	// WriteHeader before the checks ran.
	OmitHeader bool
}

// WriteHeader prints the line that opens a text report.
func WriteHeader(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\n", colorInfo("Running Arch system health check..."))
	return err
}

func (f *TextFormatter) Format(w io.Writer, run *Run) error {
	if !f.OmitHeader {
		if err := WriteHeader(w); err != nil {
			return err
		}
	}

	ew := &errWriter{w: w}
	if run.Library != nil {
		writeLibrary(ew, run.Library)
	}
	for _, c := range run.Checks {
		writeCheck(ew, c)
	}
	ew.printf("%s\n", colorInfo("Health check complete."))

	return ew.err
}

func writeLibrary(ew *errWriter, rep *elfscan.ScanReport) {
	if rep.OK() {
		ew.printf("%s [ldd] Checked %d shared libraries: no missing dependencies found\n",
			colorSuccess("✅"), rep.Total)
		return
	}

	ew.printf("%s [ldd] Missing libraries detected:\n", colorError("❌"))
	for _, res := range rep.Failures {
		switch res.Status {
		case elfscan.StatusMissing:
			ew.printf("%s: missing libraries\n", res.Path)
			for _, line := range res.Missing {
				ew.printf("    %s\n", line)
			}
		default:
			ew.printf("%s: failed to run ldd: %s\n", res.Path, res.Reason)
		}
	}
	ew.printf("%d/%d files have dependency issues\n", rep.Failed(), rep.Total)
}

func writeCheck(ew *errWriter, c checker.CheckResult) {
	tag := fmt.Sprintf("[%s]", c.Name)
	switch c.Status {
	case checker.StatusPass:
		ew.printf("%s %s %s reported no issues\n", colorSuccess("✅"), tag, c.Tool)
	case checker.StatusIssues:
		ew.printf("%s  %s %d issue(s) found:\n", colorWarn("⚠️"), tag, len(c.Issues))
		for _, line := range c.Issues {
			ew.printf("    %s\n", line)
		}
	case checker.StatusSkipped:
		ew.printf("%s  %s skipped: %s\n", colorWarn("⚠️"), tag, c.Error)
	default:
		ew.printf("%s %s failed: %s\n", colorError("❌"), tag, c.Error)
	}
}

// errWriter remembers the first write error so rendering code can stay linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
