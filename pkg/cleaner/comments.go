package cleaner

import (
	"github.com/jmylchreest/mdbook-nocomment/internal/logger"
	"github.com/jmylchreest/mdbook-nocomment/pkg/nocomment"
)

// CommentCleaner removes HTML comments from content.
type CommentCleaner struct {
	stripper nocomment.Stripper
}

// Result holds cleaned content together with what was removed.
type Result struct {
	Content string
	Removed int  // well-formed comments removed
	Changed bool // content differs from the input
}

// NewComments creates a cleaner that strips comments using the given
// policy for unterminated openers.
func NewComments(policy nocomment.Policy) *CommentCleaner {
	return &CommentCleaner{
		stripper: nocomment.Stripper{Policy: policy},
	}
}

// Clean strips comments. It never returns an error.
func (c *CommentCleaner) Clean(content string) (string, error) {
	return c.CleanWithStats(content).Content, nil
}

// CleanWithStats strips comments and reports how many were removed.
func (c *CommentCleaner) CleanWithStats(content string) *Result {
	if logger.Enabled(logger.LevelDebug) {
		for _, span := range nocomment.Spans(content) {
			logger.Debug("comment", "text", content[span.Start:span.End])
		}
	}

	out, removed := c.stripper.StripCount(content)
	return &Result{
		Content: out,
		Removed: removed,
		Changed: removed > 0 || out != content,
	}
}

// Policy returns the unterminated comment policy in use.
func (c *CommentCleaner) Policy() nocomment.Policy {
	return c.stripper.Policy
}

// Name returns the cleaner type.
func (c *CommentCleaner) Name() string {
	return "comments(" + c.stripper.Policy.String() + ")"
}
