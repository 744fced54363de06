package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type sample struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

type tabularSample struct {
	rows [][]string
}

func (t tabularSample) TableHeader() []string { return []string{"CHANNEL", "VALUE"} }
func (t tabularSample) TableRows() [][]string { return t.rows }

func TestWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	if err := w.Serialize(context.Background(), sample{Name: "temp", Value: 21}); err != nil {
		t.Fatalf("Serialize() failed: %v", err)
	}

	var got sample
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.Name != "temp" || got.Value != 21 {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestWriter_YAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	if err := w.Serialize(context.Background(), sample{Name: "temp", Value: 21}); err != nil {
		t.Fatalf("Serialize() failed: %v", err)
	}

	var got sample
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if got.Name != "temp" || got.Value != 21 {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestWriter_Table(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	v := tabularSample{rows: [][]string{{"0", "21.81"}, {"1", "24.00"}}}
	if err := w.Serialize(context.Background(), v); err != nil {
		t.Fatalf("Serialize() failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"CHANNEL", "VALUE", "21.81", "24.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestWriter_TableFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	if err := w.Serialize(context.Background(), sample{Name: "temp"}); err != nil {
		t.Fatalf("Serialize() failed: %v", err)
	}
	if !json.Valid(buf.Bytes()) {
		t.Errorf("fallback output should be JSON, got:\n%s", buf.String())
	}
}

func TestWriter_UnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)

	if err := w.Serialize(context.Background(), sample{Name: "temp"}); err != nil {
		t.Fatalf("Serialize() failed: %v", err)
	}
	if !json.Valid(buf.Bytes()) {
		t.Errorf("expected JSON output, got:\n%s", buf.String())
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	w := NewFileWriterOrStdout(FormatJSON, path)
	if err := w.Serialize(context.Background(), sample{Name: "temp", Value: 1}); err != nil {
		t.Fatalf("Serialize() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	if !json.Valid(data) {
		t.Errorf("file content is not valid JSON:\n%s", data)
	}

	// empty path falls back to stdout and Close is a no-op
	w = NewFileWriterOrStdout(FormatJSON, "  ")
	if err := w.Close(); err != nil {
		t.Errorf("Close() on stdout writer failed: %v", err)
	}
}

func TestFormatIsUnknown(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML, FormatTable} {
		if f.IsUnknown() {
			t.Errorf("%s should be known", f)
		}
	}
	if !Format("xml").IsUnknown() {
		t.Error("xml should be unknown")
	}
	if len(SupportedFormats()) != 3 {
		t.Errorf("expected 3 supported formats, got %v", SupportedFormats())
	}
}
