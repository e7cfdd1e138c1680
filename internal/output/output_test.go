package output

import (
	"bytes"
	stdjson "encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type fileReport struct {
	File    string `json:"file" yaml:"file"`
	Removed int    `json:"removed" yaml:"removed"`
}

// --- Format Tests ---

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"JSONL", FormatJSONL, false},
		{" yaml ", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"toml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// --- NewWriter Factory Tests ---

func TestNewWriter(t *testing.T) {
	tests := []struct {
		format Format
		check  func(Writer) bool
	}{
		{FormatJSON, func(w Writer) bool { _, ok := w.(*JSONWriter); return ok }},
		{FormatJSONL, func(w Writer) bool { _, ok := w.(*JSONLWriter); return ok }},
		{FormatYAML, func(w Writer) bool { _, ok := w.(*YAMLWriter); return ok }},
	}

	for _, tt := range tests {
		w, err := NewWriter(&bytes.Buffer{}, tt.format)
		if err != nil {
			t.Fatalf("NewWriter(%q) error = %v", tt.format, err)
		}
		if !tt.check(w) {
			t.Errorf("NewWriter(%q) returned %T", tt.format, w)
		}
	}
}

func TestNewWriter_UnsupportedFormat(t *testing.T) {
	_, err := NewWriter(&bytes.Buffer{}, Format("csv"))
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("expected error containing 'unsupported', got %v", err)
	}
}

// --- JSONWriter Tests ---

func TestJSONWriter_Array(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewJSONWriter(buf, "  ")

	_ = w.Write(fileReport{File: "intro.md", Removed: 2})
	_ = w.Write(fileReport{File: "setup.md", Removed: 0})

	if buf.Len() != 0 {
		t.Error("JSON writer should buffer until Close")
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	var got []fileReport
	if err := stdjson.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("failed to unmarshal output: %v", err)
	}
	if len(got) != 2 || got[0].File != "intro.md" || got[0].Removed != 2 {
		t.Errorf("unexpected result: %+v", got)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Errorf("expected indented output, got %q", buf.String())
	}
}

func TestJSONWriter_SingleRecordIsStillArray(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewJSONWriter(buf, "")

	_ = w.Write(fileReport{File: "a.md"})
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if got := strings.TrimSpace(buf.String()); got != `[{"file":"a.md","removed":0}]` {
		t.Errorf("output = %q", got)
	}
}

func TestJSONWriter_Empty(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := NewJSONWriter(buf, "").Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("output = %q, want []", got)
	}
}

// --- JSONLWriter Tests ---

func TestJSONLWriter_Lines(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewJSONLWriter(buf)

	_ = w.Write(fileReport{File: "first.md", Removed: 1})
	_ = w.Write(fileReport{File: "second.md", Removed: 3})
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	for i, line := range lines {
		var r fileReport
		if err := stdjson.Unmarshal([]byte(line), &r); err != nil {
			t.Errorf("line %d is not valid JSON: %v", i, err)
		}
	}
}

// --- YAMLWriter Tests ---

func TestYAMLWriter_Sequence(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewYAMLWriter(buf)

	_ = w.Write(fileReport{File: "intro.md", Removed: 4})
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	var got []fileReport
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("failed to unmarshal output: %v", err)
	}
	if len(got) != 1 || got[0].File != "intro.md" || got[0].Removed != 4 {
		t.Errorf("unexpected result: %+v", got)
	}
}
