package checker

import "strings"

// NewAuditChecker lists packages affected by known vulnerabilities
// (arch-audit --vulnerable). The tool is optional.
func NewAuditChecker(runner CommandRunner, lookPath func(string) (string, error)) *ExternalChecker {
	return NewExternalChecker(ExternalCheckerConfig{
		Name:     "audit",
		Command:  "arch-audit",
		Args:     []string{"--vulnerable"},
		Optional: true,
		Parse:    ParseAuditOutput,
		Runner:   runner,
		LookPath: lookPath,
	})
}

// ParseAuditOutput treats every non-empty stdout line as one vulnerable package.
func ParseAuditOutput(stdout, _ string) []string {
	var issues []string
	for _, line := range strings.Split(stdout, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			issues = append(issues, line)
		}
	}
	return issues
}
