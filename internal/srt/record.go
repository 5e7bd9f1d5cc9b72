package srt

import (
	"strconv"
	"strings"
	"time"
)

// Span is a half-open byte range [Begin, End) into a scanned buffer.
type Span struct {
	Begin int
	End   int
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool { return s.End <= s.Begin }

// Record is one timed subtitle cue together with the byte geometry that
// anchors it in the buffer it was scanned from. Records are computed on
// demand; the buffer stays the single source of truth and every span is only
// valid until the next edit.
type Record struct {
	ID    int
	Start time.Duration
	Stop  time.Duration
	Text  string

	// IDLine is the offset of the first byte of the ID line.
	IDLine int
	// IDSpan covers the ID digits within that line.
	IDSpan Span
	// StartSpan and StopSpan cover the two timestamps on the timing line.
	StartSpan Span
	StopSpan  Span
	// TextSpan covers the text field. Begin == End when the record has no
	// text, whether or not a trailing newline follows the timing line.
	TextSpan Span
	// EndPos is one past the last content byte: the end of the last text
	// line, or of the timing line when there is no text. The trailing
	// newline and the separator gap are not part of the record.
	EndPos int
}

// HasText reports whether the record carries a non-empty text field.
func (r Record) HasText() bool { return !r.TextSpan.Empty() }

// Render serializes r in canonical form: the ID line, the timing line, then
// the text lines. No trailing newline or blank line is added; separating
// records is the caller's concern.
func Render(r Record) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(r.ID))
	b.WriteByte('\n')
	b.WriteString(FormatTimestamp(r.Start))
	b.WriteString(TimeSeparator)
	b.WriteString(FormatTimestamp(r.Stop))
	if r.Text != "" {
		b.WriteByte('\n')
		b.WriteString(r.Text)
	}
	return b.String()
}
