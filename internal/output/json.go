package output

import (
	"bufio"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONWriter writes all records as one JSON array.
type JSONWriter struct {
	w       *bufio.Writer
	indent  string
	records []any
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer, indent string) *JSONWriter {
	return &JSONWriter{
		w:       bufio.NewWriter(w),
		indent:  indent,
		records: make([]any, 0),
	}
}

// Write buffers a record.
func (w *JSONWriter) Write(record any) error {
	w.records = append(w.records, record)
	return nil
}

// Close writes the buffered records as a JSON array.
func (w *JSONWriter) Close() error {
	var data []byte
	var err error
	if w.indent != "" {
		data, err = json.MarshalIndent(w.records, "", w.indent)
	} else {
		data, err = json.Marshal(w.records)
	}
	if err != nil {
		return err
	}

	if _, err := w.w.Write(data); err != nil {
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return err
	}
	return w.w.Flush()
}

// JSONLWriter writes newline-delimited JSON (JSONL).
type JSONLWriter struct {
	enc *jsoniter.Encoder
}

// NewJSONLWriter creates a JSONL writer.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{enc: json.NewEncoder(w)}
}

// Write writes a single record as a JSON line.
func (w *JSONLWriter) Write(record any) error {
	return w.enc.Encode(record)
}

// Close is a no-op; records are written as they arrive.
func (w *JSONLWriter) Close() error {
	return nil
}
