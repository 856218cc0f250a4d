package checker

import (
	"regexp"
	"strconv"
	"strings"
)

var missingFilesRe = regexp.MustCompile(`(\d+) missing files?`)

// NewPacmanChecker verifies that every installed package still has all of
// its files on disk (pacman -Qk).
func NewPacmanChecker(runner CommandRunner, lookPath func(string) (string, error)) *ExternalChecker {
	return NewExternalChecker(ExternalCheckerConfig{
		Name:     "pacman",
		Command:  "pacman",
		Args:     []string{"-Qk"},
		Optional: true,
		Parse:    ParsePacmanOutput,
		Runner:   runner,
		LookPath: lookPath,
	})
}

// ParsePacmanOutput returns the warning lines of pacman -Qk together with any
// per-package summary reporting a non-zero missing file count.
func ParsePacmanOutput(stdout, stderr string) []string {
	var issues []string
	for _, stream := range []string{stderr, stdout} {
		for _, line := range strings.Split(stream, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if strings.HasPrefix(line, "warning:") {
				issues = append(issues, line)
				continue
			}
			if m := missingFilesRe.FindStringSubmatch(line); m != nil {
				if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
					issues = append(issues, line)
				}
			}
		}
	}
	return issues
}
