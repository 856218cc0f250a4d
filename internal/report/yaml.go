package report

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter outputs the run as a YAML document.
type YAMLFormatter struct{}

func (f *YAMLFormatter) Format(w io.Writer, run *Run) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(run); err != nil {
		return err
	}
	return enc.Close()
}
