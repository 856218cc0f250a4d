package report

import (
	"encoding/json"
	"io"
)

// JSONFormatter outputs the run as JSON.
type JSONFormatter struct {
	Indent bool
}

func (f *JSONFormatter) Format(w io.Writer, run *Run) error {
	enc := json.NewEncoder(w)
	if f.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(run)
}
