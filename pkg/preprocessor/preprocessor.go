// Package preprocessor adapts comment stripping to mdbook's preprocessor
// protocol. The stripping itself lives in pkg/nocomment and knows nothing
// about books, renderers or versions.
package preprocessor

import (
	"fmt"
	"runtime"
	"time"

	"github.com/sourcegraph/conc/iter"

	"github.com/jmylchreest/mdbook-nocomment/internal/logger"
	"github.com/jmylchreest/mdbook-nocomment/pkg/book"
	"github.com/jmylchreest/mdbook-nocomment/pkg/cleaner"
)

const (
	// Name identifies the preprocessor in logs and version warnings.
	Name = "nocomment-preprocessor"

	// ConfigKey is the book.toml table holding the options: [preprocessor.nocomment].
	ConfigKey = "nocomment"

	// unsupportedRenderer is the one renderer name the preprocessor declines.
	unsupportedRenderer = "not-supported"
)

// Preprocessor is the contract mdbook expects from a preprocessor.
type Preprocessor interface {
	// Name returns the preprocessor name.
	Name() string

	// SupportsRenderer reports whether the preprocessor can run before the
	// named renderer.
	SupportsRenderer(renderer string) bool

	// Run transforms the book.
	Run(ctx *book.Context, b *book.Book) (*book.Book, error)
}

// NoComment strips HTML comments from every chapter of a book.
type NoComment struct {
	stats Stats
}

// New creates a comment-stripping preprocessor.
func New() *NoComment {
	return &NoComment{}
}

// Name returns the preprocessor name.
func (p *NoComment) Name() string {
	return Name
}

// SupportsRenderer reports true for every renderer except "not-supported".
func (p *NoComment) SupportsRenderer(renderer string) bool {
	return renderer != unsupportedRenderer
}

// Stats returns the statistics of the last Run.
func (p *NoComment) Stats() Stats {
	return p.stats
}

type chapterResult struct {
	content string
	removed int
	changed bool
	err     error
}

// Run strips comments from all chapters. Chapters are cleaned in parallel
// and written back in document order; unchanged chapters are not rewritten.
func (p *NoComment) Run(ctx *book.Context, b *book.Book) (*book.Book, error) {
	start := time.Now()
	p.stats = Stats{}

	opts, err := LoadOptions(ctx.PreprocessorConfig(ConfigKey))
	if err != nil {
		return nil, err
	}

	c, err := newCleaner(opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("running preprocessor", "name", Name, "cleaner", c.Name(), "renderer", ctx.Renderer)

	chapters := b.Chapters()

	workers := opts.Concurrency
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	mapper := iter.Mapper[book.Chapter, chapterResult]{MaxGoroutines: workers}
	results := mapper.Map(chapters, func(ch *book.Chapter) chapterResult {
		return clean(c, ch.Content)
	})

	for i, ch := range chapters {
		res := results[i]
		if res.err != nil {
			return nil, fmt.Errorf("cleaning chapter %q: %w", ch.Name, res.err)
		}

		p.stats.Chapters++
		p.stats.InputBytes += len(ch.Content)
		p.stats.OutputBytes += len(res.content)
		p.stats.CommentsRemoved += res.removed

		if !res.changed {
			continue
		}
		p.stats.ChaptersChanged++
		logger.Debug("chapter cleaned", "chapter", ch.Name, "source", ch.SourcePath, "removed", res.removed)

		if err := b.SetContent(ch, res.content); err != nil {
			return nil, err
		}
	}

	p.stats.Duration = time.Since(start)
	logger.Debug("preprocessor finished",
		"chapters", p.stats.Chapters,
		"changed", p.stats.ChaptersChanged,
		"comments", p.stats.CommentsRemoved,
		"bytes_removed", p.stats.BytesRemoved(),
		"duration", p.stats.Duration)

	return b, nil
}

func newCleaner(opts Options) (cleaner.Cleaner, error) {
	if !opts.Enable {
		return cleaner.NewNoop(), nil
	}
	policy, err := opts.Policy()
	if err != nil {
		return nil, err
	}
	return cleaner.NewComments(policy), nil
}

func clean(c cleaner.Cleaner, content string) chapterResult {
	if cc, ok := c.(*cleaner.CommentCleaner); ok {
		res := cc.CleanWithStats(content)
		return chapterResult{content: res.Content, removed: res.Removed, changed: res.Changed}
	}

	out, err := c.Clean(content)
	if err != nil {
		return chapterResult{err: err}
	}
	return chapterResult{content: out, changed: out != content}
}
