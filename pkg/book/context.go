// Package book models the data mdbook hands to a preprocessor.
//
// A preprocessor receives the JSON array [context, book] on stdin and must
// write the (possibly modified) book back to stdout. The book is kept as raw
// JSON: only chapter content is rewritten, so fields this package does not
// know about survive unchanged across mdbook releases.
package book

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/gjson"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	// ErrInvalidInput is returned when stdin is not a [context, book] pair.
	ErrInvalidInput = errors.New("invalid preprocessor input")

	// ErrInvalidBook is returned when the book JSON has no item list.
	ErrInvalidBook = errors.New("invalid book")
)

// Context is the build information mdbook passes to preprocessors.
type Context struct {
	Root          string         `json:"root"`
	Config        map[string]any `json:"config"`
	Renderer      string         `json:"renderer"`
	MdbookVersion string         `json:"mdbook_version"`
}

// PreprocessorConfig returns the [preprocessor.<name>] table of book.toml,
// or nil if the book does not configure one.
func (c *Context) PreprocessorConfig(name string) map[string]any {
	if c == nil || c.Config == nil {
		return nil
	}
	preprocessors, ok := c.Config["preprocessor"].(map[string]any)
	if !ok {
		return nil
	}
	table, _ := preprocessors[name].(map[string]any)
	return table
}

// ParseInput reads the [context, book] pair mdbook writes to a
// preprocessor's stdin.
func ParseInput(r io.Reader) (*Context, *Book, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("reading input: %w", err)
	}

	data = bytes.TrimSpace(data)
	if !gjson.ValidBytes(data) {
		return nil, nil, fmt.Errorf("%w: malformed JSON", ErrInvalidInput)
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() || len(root.Array()) != 2 {
		return nil, nil, fmt.Errorf("%w: expected [context, book]", ErrInvalidInput)
	}

	var ctx Context
	if err := json.UnmarshalFromString(root.Get("0").Raw, &ctx); err != nil {
		return nil, nil, fmt.Errorf("%w: decoding context: %v", ErrInvalidInput, err)
	}

	b, err := New([]byte(root.Get("1").Raw))
	if err != nil {
		return nil, nil, err
	}
	return &ctx, b, nil
}
