// Package elfscan finds ELF binaries and shared libraries with unresolved
// dynamic dependencies.
//
// A scan has three stages:
//
//   - Walker lists the direct entries of each configured root and keeps the
//     regular files that IsELF accepts. Missing or unreadable roots are
//     skipped.
//   - Prober runs ldd against one file and classifies the captured output as
//     clean, missing dependencies, or a failed launch.
//   - Dispatcher fans the probes out over a bounded pool of goroutines and
//     collects every non-clean result into a ScanReport. Progress is
//     reported through a ProgressFunc rather than by writing to a terminal.
//
// Walking always completes before dispatch starts, so the total is known
// before the first probe runs.
package elfscan
