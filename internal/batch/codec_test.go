package batch

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

const sampleYAML = `
cases:
  - name: top row wins
    func: tictactoe
    args: [[[x, x, x], [o, o, x], [x, o, o]]]
    want: x
  - func: base
    args: [10, 1]
    error: range
  - name: white
    func: color
    args: ["#FFFFFF"]
`

func TestDecodeYAML(t *testing.T) {
	file, err := Decode(strings.NewReader(sampleYAML))
	if err != nil {
		t.Fatal(err)
	}
	if len(file.Cases) != 3 {
		t.Fatalf("got %d cases want 3", len(file.Cases))
	}

	board, ok := file.Cases[0].Args[0].([]any)
	if !ok || len(board) != 3 {
		t.Fatalf("board decoded as %#v", file.Cases[0].Args[0])
	}
	if file.Cases[0].Want != "x" {
		t.Errorf("got want=%v", file.Cases[0].Want)
	}
	if got := file.Cases[1].Name; got != "base#1" {
		t.Errorf("unnamed case got name %q want base#1", got)
	}
	if file.Cases[1].Args[0] != 10 {
		t.Errorf("got arg %#v want int 10", file.Cases[1].Args[0])
	}
	if file.Cases[2].Args[0] != "#FFFFFF" {
		t.Errorf("got arg %#v", file.Cases[2].Args[0])
	}
}

func TestDecodeJSON(t *testing.T) {
	in := `{"cases": [{"name": "s", "func": "sum", "args": [1, 2], "want": 3}]}`
	file, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(file.Cases) != 1 || file.Cases[0].Func != "sum" {
		t.Fatalf("got %+v", file)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		errContains string
	}{
		{name: "empty", in: "", errContains: "empty case file"},
		{name: "malformed", in: "cases: [", errContains: "yaml unmarshal"},
		{name: "missing func", in: "cases: [{name: a, args: [1]}]", errContains: "func is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.in))
			if err == nil || !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("got err=%v want containing %q", err, tt.errContains)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cases.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	file, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(file.Cases) != 3 {
		t.Errorf("got %d cases", len(file.Cases))
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func sampleReport() Report {
	pass := true
	return Report{
		Summary: Summary{RunID: "run-1", Total: 2, Passed: 1, Errors: 1},
		Results: []Result{
			{Name: "a", Func: "smiles", Result: 0, Pass: &pass},
			{Name: "b", Func: "base", Error: "base: range error: radix", Kind: "range"},
		},
	}
}

func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, FormatYAML, sampleReport()); err != nil {
		t.Fatal(err)
	}
	var back map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	results := back["results"].([]any)
	first := results[0].(map[string]any)
	if first["result"] != 0 {
		t.Errorf("zero result should be kept, got %v", first)
	}
	if _, ok := first["error"]; ok {
		t.Errorf("empty error should be omitted, got %v", first)
	}
	second := results[1].(map[string]any)
	if _, ok := second["pass"]; ok {
		t.Errorf("nil pass should be omitted, got %v", second)
	}
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, FormatJSON, sampleReport()); err != nil {
		t.Fatal(err)
	}
	var back Report
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if back.Summary.RunID != "run-1" || len(back.Results) != 2 {
		t.Errorf("got %+v", back)
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"yaml", "json"} {
		if _, err := ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q): %v", s, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for xml")
	}
	if err := Encode(&bytes.Buffer{}, Format("xml"), Report{}); err == nil {
		t.Error("expected Encode error for xml")
	}
}
