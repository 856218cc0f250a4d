// Package history keeps an append-only log of health-check summaries so
// operators can see when a system started to drift.
package history

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/khanhnv2901/arch-health/internal/checker"
	"github.com/khanhnv2901/arch-health/internal/elfscan"
	"github.com/khanhnv2901/arch-health/internal/report"
	consts "github.com/khanhnv2901/arch-health/internal/shared/constants"
	sharedErrors "github.com/khanhnv2901/arch-health/internal/shared/errors"
)

// Record summarizes one run. One record is one JSON line.
type Record struct {
	Timestamp        time.Time `json:"timestamp"`
	RunID            string    `json:"run_id"`
	Checks           []string  `json:"checks"`
	FilesScanned     int       `json:"files_scanned"`
	FilesWithIssues  int       `json:"files_with_issues"`
	FilesMissingDeps int       `json:"files_missing_deps"`
	ProbeFailures    int       `json:"probe_failures"`
	ChecksWithIssues int       `json:"checks_with_issues"`
	DurationSeconds  float64   `json:"duration_seconds"`
}

// Healthy reports whether the recorded run found nothing to act on.
func (r Record) Healthy() bool {
	return r.FilesWithIssues == 0 && r.ChecksWithIssues == 0
}

// Summarize builds the record for a finished run.
func Summarize(run *report.Run) Record {
	rec := Record{
		Timestamp:       run.CompletedAt,
		RunID:           run.ID,
		DurationSeconds: run.Duration().Seconds(),
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}
	if run.Library != nil {
		rec.Checks = append(rec.Checks, "library")
		rec.FilesScanned = run.Library.Total
		rec.FilesWithIssues = run.Library.Failed()
		rec.FilesMissingDeps = run.Library.Count(elfscan.StatusMissing)
		rec.ProbeFailures = run.Library.Count(elfscan.StatusProbeFailed)
	}
	for _, c := range run.Checks {
		rec.Checks = append(rec.Checks, c.Name)
		if c.Status == checker.StatusIssues || c.Status == checker.StatusError {
			rec.ChecksWithIssues++
		}
	}
	return rec
}

// Append writes rec as one line at the end of the history file, creating the
// file and its directory when needed.
func Append(path string, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal history record: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), consts.DefaultDirPerm); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, consts.DefaultFilePerm)
	if err != nil {
		return fmt.Errorf("open history file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

// Load returns the last limit records, oldest first. A limit of zero or less
// returns every record. A missing file is an empty history.
func Load(path string, limit int) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open history file: %w", err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", sharedErrors.ErrHistoryCorrupt, lineNo, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	if limit > 0 && len(records) > limit {
		records = records[len(records)-limit:]
	}
	return records, nil
}
