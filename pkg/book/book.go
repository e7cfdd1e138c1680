package book

import (
	"fmt"
	"io"
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Item list keys, by mdbook release.
const (
	sectionsKey = "sections" // 0.4.x
	itemsKey    = "items"    // 0.5.x
)

// Book is the raw JSON of an mdbook book.
type Book struct {
	raw []byte
	key string
}

// Chapter is one chapter of a book, found in document order.
type Chapter struct {
	Name       string
	SourcePath string
	Content    string
	Depth      int // 0 for top-level chapters

	path string // JSON path of the content field
}

// New wraps raw book JSON. It fails if the JSON has no item list.
func New(raw []byte) (*Book, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidBook)
	}

	for _, key := range []string{sectionsKey, itemsKey} {
		if gjson.GetBytes(raw, key).IsArray() {
			return &Book{raw: raw, key: key}, nil
		}
	}
	return nil, fmt.Errorf("%w: no %q or %q list", ErrInvalidBook, sectionsKey, itemsKey)
}

// Chapters returns every chapter depth-first in document order, including
// chapters nested in sub_items. Separators and part titles are skipped.
func (b *Book) Chapters() []Chapter {
	var chapters []Chapter
	walk(gjson.GetBytes(b.raw, b.key), b.key, 0, &chapters)
	return chapters
}

func walk(items gjson.Result, prefix string, depth int, chapters *[]Chapter) {
	for i, item := range items.Array() {
		ch := item.Get("Chapter")
		if !ch.IsObject() {
			continue
		}

		path := prefix + "." + strconv.Itoa(i) + ".Chapter"
		*chapters = append(*chapters, Chapter{
			Name:       ch.Get("name").String(),
			SourcePath: ch.Get("source_path").String(),
			Content:    ch.Get("content").String(),
			Depth:      depth,
			path:       path + ".content",
		})

		if sub := ch.Get("sub_items"); sub.IsArray() {
			walk(sub, path+".sub_items", depth+1, chapters)
		}
	}
}

// SetContent replaces the content of a chapter returned by Chapters.
// All other fields are left byte-for-byte intact.
func (b *Book) SetContent(ch Chapter, content string) error {
	if ch.path == "" {
		return fmt.Errorf("chapter %q does not belong to a book", ch.Name)
	}

	raw, err := sjson.SetBytes(b.raw, ch.path, content)
	if err != nil {
		return fmt.Errorf("setting content of chapter %q: %w", ch.Name, err)
	}
	b.raw = raw
	return nil
}

// Bytes returns the book JSON.
func (b *Book) Bytes() []byte {
	return b.raw
}

// WriteTo writes the book JSON to w.
func (b *Book) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.raw)
	return int64(n), err
}
