package preprocessor

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Stats captures what a run did to a book.
type Stats struct {
	Chapters        int           `json:"chapters" yaml:"chapters"`
	ChaptersChanged int           `json:"chapters_changed" yaml:"chapters_changed"`
	CommentsRemoved int           `json:"comments_removed" yaml:"comments_removed"`
	InputBytes      int           `json:"input_bytes" yaml:"input_bytes"`
	OutputBytes     int           `json:"output_bytes" yaml:"output_bytes"`
	Duration        time.Duration `json:"duration_ns" yaml:"duration_ns"`
}

// BytesRemoved returns how many content bytes the run removed.
func (s *Stats) BytesRemoved() int {
	return s.InputBytes - s.OutputBytes
}

// ReductionPercent returns the percentage reduction in content size.
func (s *Stats) ReductionPercent() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.BytesRemoved()) / float64(s.InputBytes) * 100
}

// String returns a human-readable summary of the stats.
func (s *Stats) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Chapters: %d (%d changed)\n", s.Chapters, s.ChaptersChanged)
	fmt.Fprintf(&sb, "Comments: %d removed\n", s.CommentsRemoved)
	fmt.Fprintf(&sb, "Size: %s -> %s (%.1f%% reduction)\n",
		humanize.Bytes(uint64(s.InputBytes)), humanize.Bytes(uint64(s.OutputBytes)), s.ReductionPercent())
	fmt.Fprintf(&sb, "Time: %v\n", s.Duration.Round(time.Microsecond))
	return sb.String()
}
