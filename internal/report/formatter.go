// Package report renders a health-check Run for the terminal (text with
// ANSI colors), JSON, or YAML.
package report

import (
	"fmt"
	"io"
	"strings"

	sharedErrors "github.com/khanhnv2901/arch-health/internal/shared/errors"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formatter is the interface for outputting a health-check run.
type Formatter interface {
	Format(w io.Writer, run *Run) error
}

// Interactive reports whether the format leaves room for progress output
// next to the report. Structured formats keep stdout machine-readable and
// suppress the status stream entirely.
func Interactive(format string) bool {
	return strings.EqualFold(format, FormatText)
}

// NewFormatter returns the formatter for the named format.
func NewFormatter(format string) (Formatter, error) {
	switch strings.ToLower(format) {
	case FormatText, "":
		return &TextFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{Indent: true}, nil
	case FormatYAML, "yml":
		return &YAMLFormatter{}, nil
	}
	return nil, fmt.Errorf("%w: %q", sharedErrors.ErrUnsupportedFormat, format)
}
