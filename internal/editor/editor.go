// Package editor implements cursor-oriented navigation and structural edits
// over a SubRip document held in a single in-memory buffer.
//
// The buffer is the only source of truth: records are rescanned from the text
// on every operation and never cached across edits. All operations are
// synchronous and single-writer; a host embedding an Editor in a concurrent
// context must serialize access itself.
package editor

import (
	"errors"
	"time"

	"github.com/srtlab/srted/internal/srt"
)

// ErrNotFound reports that no subtitle record could be resolved for an
// operation's anchor or ID. The buffer is left unmodified.
var ErrNotFound = errors.New("no subtitle record found")

// AdjustHook observes timestamp adjustments. It is invoked synchronously,
// once per adjusted record, with the post-adjustment value. A hook must not
// re-enter the editor it is registered on.
type AdjustHook func(id int, newValue time.Duration)

// Editor owns one subtitle document buffer and a point (byte offset) within
// it.
type Editor struct {
	buf   []byte
	point int

	adjustHooks []AdjustHook

	// InsertSpacing is the gap kept between generated records when new
	// records are inserted. InsertDuration is the span given to a new
	// record when no neighboring record bounds it.
	InsertSpacing  time.Duration
	InsertDuration time.Duration
}

// DefaultInsertSpacing and DefaultInsertDuration are the stock interval
// parameters used for inserted records.
const (
	DefaultInsertSpacing  = 100 * time.Millisecond
	DefaultInsertDuration = time.Second
)

// New creates an Editor over text with the point at the buffer start.
func New(text string) *Editor {
	return &Editor{
		buf:            []byte(text),
		point:          0,
		InsertSpacing:  DefaultInsertSpacing,
		InsertDuration: DefaultInsertDuration,
	}
}

// String returns the current buffer contents.
func (e *Editor) String() string { return string(e.buf) }

// Len returns the buffer length in bytes.
func (e *Editor) Len() int { return len(e.buf) }

// Point returns the current point.
func (e *Editor) Point() int { return e.point }

// SetPoint moves the point, clamping it into the buffer.
func (e *Editor) SetPoint(off int) {
	if off < 0 {
		off = 0
	}
	if off > len(e.buf) {
		off = len(e.buf)
	}
	e.point = off
}

// OnAdjust registers a hook observing every timestamp adjustment made through
// AdjustStart and AdjustStop. Hooks are scoped to this editor instance.
func (e *Editor) OnAdjust(h AdjustHook) {
	if h != nil {
		e.adjustHooks = append(e.adjustHooks, h)
	}
}

// Records returns every record in buffer order, freshly scanned.
func (e *Editor) Records() []srt.Record {
	return srt.ScanAll(e.buf)
}

// Current returns the record enclosing the point. A point inside a separator
// gap resolves to the following record.
func (e *Editor) Current() (srt.Record, bool) {
	return e.resolve(gapFollowing)
}

// gapPolicy decides which record owns the point when it sits on the blank
// lines between two record blocks. Navigation treats the gap as belonging to
// the following record; deletion treats it as belonging to the preceding one.
type gapPolicy int

const (
	gapFollowing gapPolicy = iota
	gapPreceding
)

func (e *Editor) resolve(p gapPolicy) (srt.Record, bool) {
	off := e.point
	if p == gapFollowing {
		off = skipBlankLines(e.buf, off)
	}
	return srt.ScanAt(e.buf, off)
}

// skipBlankLines advances off to the start of the next non-blank line when it
// sits on blank or whitespace-only lines. If only blank lines remain, off is
// returned unchanged so a backward scan still applies.
func skipBlankLines(buf []byte, off int) int {
	p := off
	for p < len(buf) {
		begin := lineBegin(buf, p)
		end := lineEnd(buf, p)
		if !blankLine(buf[begin:end]) {
			return p
		}
		p = end + 1
	}
	return off
}

func lineBegin(buf []byte, off int) int {
	if off > len(buf) {
		off = len(buf)
	}
	for off > 0 && buf[off-1] != '\n' {
		off--
	}
	return off
}

func lineEnd(buf []byte, off int) int {
	if off < 0 {
		off = 0
	}
	for off < len(buf) && buf[off] != '\n' {
		off++
	}
	return off
}

func blankLine(line []byte) bool {
	for _, c := range line {
		if c != ' ' && c != '\t' && c != '\r' {
			return false
		}
	}
	return true
}

// replace splices repl over buf[begin:end] and keeps the point meaningful:
// a point past the edit shifts with it, a point inside the replaced range is
// clamped to the end of the replacement.
func (e *Editor) replace(begin, end int, repl []byte) {
	nb := make([]byte, 0, len(e.buf)-(end-begin)+len(repl))
	nb = append(nb, e.buf[:begin]...)
	nb = append(nb, repl...)
	nb = append(nb, e.buf[end:]...)
	e.buf = nb

	switch {
	case e.point >= end:
		e.point += len(repl) - (end - begin)
	case e.point > begin+len(repl):
		e.point = begin + len(repl)
	}
}
