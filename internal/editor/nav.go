package editor

import (
	"time"

	"github.com/srtlab/srted/internal/srt"
)

// Field names a position of interest within a record.
type Field int

const (
	// FieldID is the start of the ID line.
	FieldID Field = iota
	// FieldStart and FieldStop are the first byte of the respective
	// timestamp on the timing line.
	FieldStart
	FieldStop
	// FieldText is the start of the text field.
	FieldText
	// FieldTextEnd is the end of the text field. Moving there fails when
	// the record has no text.
	FieldTextEnd
)

func (e *Editor) moveToField(r srt.Record, f Field) bool {
	var target int
	switch f {
	case FieldID:
		target = r.IDLine
	case FieldStart:
		target = r.StartSpan.Begin
	case FieldStop:
		target = r.StopSpan.Begin
	case FieldText:
		target = r.TextSpan.Begin
	case FieldTextEnd:
		if !r.HasText() {
			return false
		}
		target = r.TextSpan.End
	default:
		return false
	}
	e.point = target
	return true
}

// JumpTo moves the point to the given field of the enclosing record. From a
// separator gap the following record is the enclosing one. Reports false,
// leaving the point unchanged, when no record encloses the point or the field
// is absent.
func (e *Editor) JumpTo(f Field) bool {
	r, ok := e.resolve(gapFollowing)
	if !ok {
		return false
	}
	return e.moveToField(r, f)
}

// JumpToID moves the point to the ID line of the record with the given ID.
// Reports false, leaving the point unchanged, when the ID does not exist.
func (e *Editor) JumpToID(id int) bool {
	r, ok := srt.ByID(e.buf, id)
	if !ok {
		return false
	}
	e.point = r.IDLine
	return true
}

// JumpToTime moves the point to the ID line of the record whose interval
// contains at. When at falls between two records the earlier record wins;
// before the first start the first record wins; past the last stop the last
// record wins. Reports success only when the point actually changes.
func (e *Editor) JumpToTime(at time.Duration) bool {
	r, ok := recordAtTime(srt.ScanAll(e.buf), at)
	if !ok {
		return false
	}
	if r.IDLine == e.point {
		return false
	}
	e.point = r.IDLine
	return true
}

// recordAtTime picks the record owning instant at. Containment is checked in
// buffer order; otherwise the nearest record ending before at wins, and with
// none of those the earliest-starting record does. Works on unsorted
// documents too.
func recordAtTime(recs []srt.Record, at time.Duration) (srt.Record, bool) {
	if len(recs) == 0 {
		return srt.Record{}, false
	}
	for _, r := range recs {
		if at >= r.Start && at <= r.Stop {
			return r, true
		}
	}
	var prev srt.Record
	havePrev := false
	for _, r := range recs {
		if r.Stop < at && (!havePrev || r.Stop > prev.Stop) {
			prev, havePrev = r, true
		}
	}
	if havePrev {
		return prev, true
	}
	first := recs[0]
	for _, r := range recs[1:] {
		if r.Start < first.Start {
			first = r
		}
	}
	return first, true
}

// Forward moves the point to the given field of the record after the
// enclosing one. Reports false, leaving the point unchanged, when there is no
// enclosing record, no next record, or the target field is absent.
func (e *Editor) Forward(f Field) bool {
	recs := srt.ScanAll(e.buf)
	i := e.currentIndex(recs)
	if i < 0 || i+1 >= len(recs) {
		return false
	}
	return e.moveToField(recs[i+1], f)
}

// Backward is the mirror of Forward for the preceding record.
func (e *Editor) Backward(f Field) bool {
	recs := srt.ScanAll(e.buf)
	i := e.currentIndex(recs)
	if i <= 0 {
		return false
	}
	return e.moveToField(recs[i-1], f)
}

// currentIndex resolves the enclosing record (gap belongs to the following
// record) and returns its index within recs, or -1.
func (e *Editor) currentIndex(recs []srt.Record) int {
	r, ok := e.resolve(gapFollowing)
	if !ok {
		return -1
	}
	for i := range recs {
		if recs[i].IDLine == r.IDLine {
			return i
		}
	}
	return -1
}

// PointInText returns the point's offset relative to the start of the
// enclosing record's text field. ok is false when no record encloses the
// point or the record has no text to be positioned in.
func (e *Editor) PointInText() (int, bool) {
	r, ok := e.resolve(gapPreceding)
	if !ok || !r.HasText() {
		return 0, false
	}
	return e.point - r.TextSpan.Begin, true
}
