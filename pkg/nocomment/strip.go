// Package nocomment removes HTML comments (<!-- ... -->) from text.
//
// The scan is character level: it does not understand markdown, so a comment
// marker inside a code fence or inline code span is stripped like any other.
// Comments do not nest; the first closing marker after an opener ends it.
package nocomment

import "strings"

const (
	// Open is the comment opening marker.
	Open = "<!--"
	// Close is the comment closing marker.
	Close = "-->"
)

// Span is a well-formed comment in a text block, as byte offsets [Start, End).
// It covers both delimiters.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// Stripper removes comments using a fixed unterminated comment policy.
// The zero value uses PassThrough.
type Stripper struct {
	Policy Policy
}

// Strip removes every well-formed comment from input using DefaultPolicy.
// It never fails and returns input itself when there is nothing to remove.
func Strip(input string) string {
	return Stripper{Policy: DefaultPolicy}.Strip(input)
}

// Strip removes every well-formed comment from input.
func (s Stripper) Strip(input string) string {
	out, _ := s.StripCount(input)
	return out
}

// StripCount removes every well-formed comment from input and reports how
// many were removed.
//
// Removing a span can join the text on its two sides into a new comment
// ("<<!---->!--x-->" becomes "<!--x-->"), so the scan repeats until a pass
// removes nothing. The result therefore never contains a removable comment.
func (s Stripper) StripCount(input string) (string, int) {
	total := 0
	for {
		out, n := s.scan(input)
		total += n
		if n == 0 {
			return out, total
		}
		input = out
	}
}

// scan makes one left-to-right pass over input. It alternates between
// copying text up to the next opener and skipping to the first closer after
// it.
func (s Stripper) scan(input string) (string, int) {
	if !strings.Contains(input, Open) {
		return input, 0
	}

	var sb strings.Builder
	sb.Grow(len(input))

	removed := 0
	rest := input
	for {
		start := strings.Index(rest, Open)
		if start < 0 {
			sb.WriteString(rest)
			break
		}

		end := strings.Index(rest[start+len(Open):], Close)
		if end < 0 {
			if s.Policy == Discard {
				sb.WriteString(rest[:start])
			} else {
				sb.WriteString(rest)
			}
			break
		}

		sb.WriteString(rest[:start])
		rest = rest[start+len(Open)+end+len(Close):]
		removed++
	}

	if removed == 0 && s.Policy != Discard {
		return input, 0
	}
	return sb.String(), removed
}

// Spans returns the well-formed comments a single pass over input would
// remove, in order of appearance. Unterminated openers are not reported.
func Spans(input string) []Span {
	var spans []Span
	offset := 0
	for {
		start := strings.Index(input[offset:], Open)
		if start < 0 {
			return spans
		}
		start += offset

		end := strings.Index(input[start+len(Open):], Close)
		if end < 0 {
			return spans
		}
		end += start + len(Open) + len(Close)

		spans = append(spans, Span{Start: start, End: end})
		offset = end
	}
}
