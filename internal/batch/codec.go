// Package batch evaluates case files against the warmup functions and
// encodes the resulting reports.
package batch

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Case is one call in a case file. Want and Error are optional
// expectations; Error is a kind ("type", "range", "unknown") or a
// substring of the error message.
type Case struct {
	Name  string `json:"name" yaml:"name"`
	Func  string `json:"func" yaml:"func"`
	Args  []any  `json:"args" yaml:"args"`
	Want  any    `json:"want,omitempty" yaml:"want,omitempty"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// File is a decoded case file.
type File struct {
	Cases []Case `json:"cases" yaml:"cases"`
}

// Result is the outcome of one case. Pass is nil when the case declared no
// expectation.
type Result struct {
	Name   string `json:"name" yaml:"name"`
	Func   string `json:"func" yaml:"func"`
	Result any    `json:"result,omitempty" yaml:"result,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
	Kind   string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Pass   *bool  `json:"pass,omitempty" yaml:"pass,omitempty"`
}

// Summary totals a run.
type Summary struct {
	RunID  string `json:"run_id" yaml:"run_id"`
	Total  int    `json:"total" yaml:"total"`
	Passed int    `json:"passed" yaml:"passed"`
	Failed int    `json:"failed" yaml:"failed"`
	Errors int    `json:"errors" yaml:"errors"`
}

// Report is what a run produces.
type Report struct {
	Summary Summary  `json:"summary" yaml:"summary"`
	Results []Result `json:"results" yaml:"results"`
}

// Format selects the report encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatYAML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q", s)
	}
}

// Decode reads a case file. JSON input is accepted since it is valid YAML.
func Decode(r io.Reader) (File, error) {
	var file File
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return File{}, errors.New("empty case file")
		}
		return File{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	for i, c := range file.Cases {
		if c.Func == "" {
			return File{}, fmt.Errorf("case %d (%q): func is required", i, c.Name)
		}
		if c.Name == "" {
			file.Cases[i].Name = fmt.Sprintf("%s#%d", c.Func, i)
		}
	}
	return file, nil
}

// Load reads and decodes the case file at path.
func Load(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("read %s: %w", path, err)
	}
	defer f.Close()

	file, err := Decode(f)
	if err != nil {
		return File{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return file, nil
}

// Encode writes report to w in the given format.
func Encode(w io.Writer, format Format, report Report) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("yaml marshal: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
