// Package cleaner provides interfaces and implementations for cleaning chapter content.
// Cleaners transform raw chapter text before the host renders it.
package cleaner

// Cleaner transforms a chapter's content.
type Cleaner interface {
	// Clean transforms the input content. Implementations must not retain it.
	Clean(content string) (string, error)

	// Name returns the cleaner type for logging/debugging.
	Name() string
}
