package editor

import (
	"strings"
	"time"

	"github.com/srtlab/srted/internal/srt"
)

// TimeField selects one of the two timestamps of a record.
type TimeField int

const (
	TimeStart TimeField = iota
	TimeStop
)

// AdjustStart adds delta (possibly negative) to the start time of the record
// with the given ID, clamping the result at zero. Only the timestamp's bytes
// are rewritten. Registered adjust hooks fire exactly once with the
// post-adjustment value. Start <= Stop is not enforced.
func (e *Editor) AdjustStart(id int, delta time.Duration) (time.Duration, error) {
	return e.adjust(id, TimeStart, delta)
}

// AdjustStop is AdjustStart for the stop time.
func (e *Editor) AdjustStop(id int, delta time.Duration) (time.Duration, error) {
	return e.adjust(id, TimeStop, delta)
}

func (e *Editor) adjust(id int, f TimeField, delta time.Duration) (time.Duration, error) {
	r, ok := srt.ByID(e.buf, id)
	if !ok {
		return 0, ErrNotFound
	}
	cur, span := r.Start, r.StartSpan
	if f == TimeStop {
		cur, span = r.Stop, r.StopSpan
	}
	next := cur + delta
	if next < 0 {
		next = 0
	}
	e.replace(span.Begin, span.End, []byte(srt.FormatTimestamp(next)))
	for _, h := range e.adjustHooks {
		h(id, next)
	}
	return next, nil
}

// ShiftBy moves both timestamps of the selected records by delta, preserving
// each record's duration. With no IDs given, every record shifts. A negative
// delta is clamped so that no shifted time goes below zero; the same
// effective delta applies to all selected records. Returns ErrNotFound,
// leaving the buffer unmodified, when an ID does not exist or the document
// holds no records.
func (e *Editor) ShiftBy(delta time.Duration, ids ...int) error {
	recs := srt.ScanAll(e.buf)
	if len(recs) == 0 {
		return ErrNotFound
	}

	selected := recs
	if len(ids) > 0 {
		exists := make(map[int]bool, len(recs))
		for _, r := range recs {
			exists[r.ID] = true
		}
		picked := make(map[int]bool, len(ids))
		for _, id := range ids {
			if !exists[id] {
				return ErrNotFound
			}
			picked[id] = true
		}
		selected = selected[:0:0]
		for _, r := range recs {
			if picked[r.ID] {
				selected = append(selected, r)
			}
		}
	}

	eff := delta
	for _, r := range selected {
		if r.Start+eff < 0 {
			eff = -r.Start
		}
		if r.Stop+eff < 0 {
			eff = -r.Stop
		}
	}

	// Rewrite from the last span backward so earlier spans stay valid.
	for i := len(selected) - 1; i >= 0; i-- {
		r := selected[i]
		e.replace(r.StopSpan.Begin, r.StopSpan.End, []byte(srt.FormatTimestamp(r.Stop+eff)))
		e.replace(r.StartSpan.Begin, r.StartSpan.End, []byte(srt.FormatTimestamp(r.Start+eff)))
	}
	return nil
}

// Placement selects the side of the anchor record new records go to.
type Placement int

const (
	InsertAfter Placement = iota
	InsertBefore
)

type block struct {
	start time.Duration
	stop  time.Duration
}

// Insert adds count empty records next to the record enclosing the point (or
// into an empty document). The available time gap next to the anchor is
// divided evenly across the new records with InsertSpacing kept between
// generated intervals; when no neighboring record bounds the insertion each
// record gets InsertDuration. IDs are renumbered before returning. The point
// lands in the first new record's (empty) text field and its offset is
// returned.
func (e *Editor) Insert(count int, where Placement) (int, error) {
	if count < 1 {
		count = 1
	}
	recs := srt.ScanAll(e.buf)

	if len(recs) == 0 {
		rendered := renderBlocks(e.layoutBlocks(0, e.InsertDuration, count), 1)
		e.buf = []byte(rendered + "\n")
		return e.settleAfterInsert(0)
	}

	anchor, ok := e.resolve(gapFollowing)
	if !ok {
		// Point precedes every record only when the buffer holds nothing
		// but blanks before the first anchor; fall back to the first record.
		anchor = recs[0]
	}
	ai := 0
	for i := range recs {
		if recs[i].IDLine == anchor.IDLine {
			ai = i
			break
		}
	}

	var windowStart, per time.Duration
	var firstIndex int

	switch where {
	case InsertBefore:
		windowEnd := anchor.Start - e.InsertSpacing
		if ai > 0 {
			windowStart = recs[ai-1].Stop + e.InsertSpacing
		} else {
			windowStart = windowEnd - time.Duration(count)*e.InsertDuration - time.Duration(count-1)*e.InsertSpacing
			if windowStart < 0 {
				windowStart = 0
			}
		}
		per = e.subdivide(windowEnd-windowStart, count)
		firstIndex = ai
	default: // InsertAfter
		windowStart = anchor.Stop + e.InsertSpacing
		if ai+1 < len(recs) {
			per = e.subdivide(recs[ai+1].Start-e.InsertSpacing-windowStart, count)
		} else {
			per = e.InsertDuration
		}
		firstIndex = ai + 1
	}

	rendered := renderBlocks(e.layoutBlocks(windowStart, per, count), anchor.ID)
	if where == InsertBefore {
		e.replace(anchor.IDLine, anchor.IDLine, []byte(rendered+"\n\n"))
	} else {
		e.replace(anchor.EndPos, anchor.EndPos, []byte("\n\n"+rendered))
	}
	return e.settleAfterInsert(firstIndex)
}

// subdivide splits an available window across count records, returning the
// duration each one gets. A window too small to divide collapses to the
// spacing as the minimum viable duration.
func (e *Editor) subdivide(window time.Duration, count int) time.Duration {
	per := (window - time.Duration(count-1)*e.InsertSpacing) / time.Duration(count)
	per = per.Truncate(time.Millisecond) // timestamps carry no sub-millisecond precision
	if per < e.InsertSpacing {
		per = e.InsertSpacing
	}
	return per
}

// layoutBlocks lays count intervals of duration per starting at windowStart,
// InsertSpacing apart.
func (e *Editor) layoutBlocks(windowStart, per time.Duration, count int) []block {
	blocks := make([]block, count)
	for i := range blocks {
		start := windowStart + time.Duration(i)*(per+e.InsertSpacing)
		blocks[i] = block{start: start, stop: start + per}
	}
	return blocks
}

// renderBlocks serializes sequential empty records with provisional IDs;
// Renumber assigns the final ones.
func renderBlocks(blocks []block, firstID int) string {
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = srt.Render(srt.Record{ID: firstID + i, Start: b.start, Stop: b.stop})
	}
	return strings.Join(parts, "\n\n")
}

// settleAfterInsert renumbers, then parks the point in the text field of the
// record now at index idx.
func (e *Editor) settleAfterInsert(idx int) (int, error) {
	e.Renumber()
	recs := srt.ScanAll(e.buf)
	if idx < 0 || idx >= len(recs) {
		return 0, ErrNotFound
	}
	e.point = recs[idx].TextSpan.Begin
	return e.point, nil
}

// Delete removes the record enclosing the point together with exactly one
// adjoining blank-line separator. A point inside the gap before a record
// deletes the preceding record. Returns ErrNotFound, leaving the buffer
// unmodified, when no record encloses the point.
func (e *Editor) Delete() error {
	r, ok := e.resolve(gapPreceding)
	if !ok {
		return ErrNotFound
	}

	start := r.IDLine
	end := r.EndPos
	if end < len(e.buf) && e.buf[end] == '\n' {
		end++ // the record's own terminating newline
	}

	if width, ok := blankLineAt(e.buf, end); ok {
		end += width // the separator after the record
	} else if begin, ok := blankLineBefore(e.buf, start); ok {
		start = begin // last record: take the separator before it instead
	}

	e.replace(start, end, nil)
	e.SetPoint(start)
	return nil
}

// blankLineAt reports whether a blank/whitespace-only line starts at off, and
// how many bytes it occupies including its newline.
func blankLineAt(buf []byte, off int) (int, bool) {
	if off >= len(buf) {
		return 0, false
	}
	end := lineEnd(buf, off)
	if !blankLine(buf[off:end]) {
		return 0, false
	}
	if end < len(buf) {
		end++ // the blank line's newline
	}
	return end - off, true
}

// blankLineBefore reports the start of a blank line whose newline sits at
// start-1.
func blankLineBefore(buf []byte, start int) (int, bool) {
	if start < 1 || buf[start-1] != '\n' {
		return 0, false
	}
	begin := lineBegin(buf, start-1)
	if !blankLine(buf[begin : start-1]) {
		return 0, false
	}
	return begin, true
}
