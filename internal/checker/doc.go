// Package checker runs the distribution's own consistency tools.
//
// Architecture overview:
//
//   - Checkers implement the Checker interface (Check + Name). ExternalChecker
//     wraps one command line (pacman -Qk, arch-audit --vulnerable) with a
//     ParseFunc that turns its output into issue lines.
//   - CommandRunner is the process seam shared with the ELF scanner; ExecRunner
//     is the os/exec implementation and tests substitute fakes.
//   - Runner executes checks in order with optional per-check timeouts and
//     start/done hooks so the CLI can drive a spinner.
//
// A tool missing from PATH yields a skipped result for optional checks and an
// error result otherwise. Nothing here aborts the overall health check.
package checker
