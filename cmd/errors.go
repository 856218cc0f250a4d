package cmd

import "fmt"

// exitCodeIssues is returned under --strict when a check found problems.
const exitCodeIssues = 2

// IssuesFoundError signals, in strict mode, that the health check found problems.
type IssuesFoundError struct {
	FilesWithIssues  int
	ChecksWithIssues int
}

func (e *IssuesFoundError) Error() string {
	switch {
	case e.FilesWithIssues > 0 && e.ChecksWithIssues > 0:
		return fmt.Sprintf("health check found %d file(s) with dependency issues and %d failing check(s)", e.FilesWithIssues, e.ChecksWithIssues)
	case e.FilesWithIssues > 0:
		return fmt.Sprintf("health check found %d file(s) with dependency issues", e.FilesWithIssues)
	}
	return fmt.Sprintf("health check found %d failing check(s)", e.ChecksWithIssues)
}

// ExitCode is the process exit status for this error.
func (e *IssuesFoundError) ExitCode() int {
	return exitCodeIssues
}
