package srt

import (
	"bytes"
	"strconv"
	"time"
)

// The scanner treats the raw buffer as the document: records are located by
// searching for an anchor (an ID line immediately followed by a valid timing
// line) and extracted on the spot. Nothing is cached between calls.

// lineSpan is one physical line; buf[begin:end] excludes the newline.
type lineSpan struct {
	begin int
	end   int
}

func splitLines(buf []byte) []lineSpan {
	var lines []lineSpan
	begin := 0
	for i, c := range buf {
		if c == '\n' {
			lines = append(lines, lineSpan{begin: begin, end: i})
			begin = i + 1
		}
	}
	if begin < len(buf) {
		lines = append(lines, lineSpan{begin: begin, end: len(buf)})
	}
	return lines
}

// lineIndexAt returns the index of the line containing offset off. An offset
// pointing at a newline belongs to the line the newline terminates; an offset
// at or past the buffer end belongs to the last line.
func lineIndexAt(lines []lineSpan, off int) int {
	for i, ln := range lines {
		if off <= ln.end {
			return i
		}
	}
	return len(lines) - 1
}

func isSpaceOrTab(c byte) bool { return c == ' ' || c == '\t' || c == '\r' }

func isBlank(buf []byte, ln lineSpan) bool {
	for i := ln.begin; i < ln.end; i++ {
		if !isSpaceOrTab(buf[i]) {
			return false
		}
	}
	return true
}

// trimSpan narrows [begin, end) past surrounding spaces, tabs and CRs.
func trimSpan(buf []byte, begin, end int) (int, int) {
	for begin < end && isSpaceOrTab(buf[begin]) {
		begin++
	}
	for end > begin && isSpaceOrTab(buf[end-1]) {
		end--
	}
	return begin, end
}

// parseIDLine reads a line holding nothing but a record ID (decimal digits,
// surrounding whitespace tolerated). It returns the value and the digit span.
func parseIDLine(buf []byte, ln lineSpan) (int, Span, bool) {
	begin, end := trimSpan(buf, ln.begin, ln.end)
	if begin >= end {
		return 0, Span{}, false
	}
	for i := begin; i < end; i++ {
		if buf[i] < '0' || buf[i] > '9' {
			return 0, Span{}, false
		}
	}
	id, err := strconv.Atoi(string(buf[begin:end]))
	if err != nil {
		return 0, Span{}, false
	}
	return id, Span{Begin: begin, End: end}, true
}

// parseTimingLine reads a `start --> stop` line, tolerating surrounding
// whitespace and flexible spacing around the arrow. Both timestamps must
// satisfy the strict codec.
func parseTimingLine(buf []byte, ln lineSpan) (start, stop time.Duration, startSpan, stopSpan Span, ok bool) {
	begin, end := trimSpan(buf, ln.begin, ln.end)
	arrow := bytes.Index(buf[begin:end], []byte("-->"))
	if arrow < 0 {
		return 0, 0, Span{}, Span{}, false
	}
	lb, le := trimSpan(buf, begin, begin+arrow)
	rb, re := trimSpan(buf, begin+arrow+3, end)
	start, err := ParseTimestamp(string(buf[lb:le]))
	if err != nil {
		return 0, 0, Span{}, Span{}, false
	}
	stop, err = ParseTimestamp(string(buf[rb:re]))
	if err != nil {
		return 0, 0, Span{}, Span{}, false
	}
	return start, stop, Span{Begin: lb, End: le}, Span{Begin: rb, End: re}, true
}

// IsIDLine reports whether the line (without its newline) holds only a record
// ID, surrounding whitespace tolerated.
func IsIDLine(line []byte) bool {
	_, _, ok := parseIDLine(line, lineSpan{begin: 0, end: len(line)})
	return ok
}

// IsTimingLine reports whether the line (without its newline) is a valid
// `start --> stop` timing line.
func IsTimingLine(line []byte) bool {
	_, _, _, _, ok := parseTimingLine(line, lineSpan{begin: 0, end: len(line)})
	return ok
}

// anchorAt reports whether line i starts a record: an ID line immediately
// followed by a valid timing line.
func anchorAt(buf []byte, lines []lineSpan, i int) bool {
	if i < 0 || i+1 >= len(lines) {
		return false
	}
	if _, _, ok := parseIDLine(buf, lines[i]); !ok {
		return false
	}
	_, _, _, _, ok := parseTimingLine(buf, lines[i+1])
	return ok
}

// extractAt builds the Record anchored at line i and returns the index of the
// first line past its content. The text field runs from the line after the
// timing line up to a blank line, a new anchor, or the buffer end.
func extractAt(buf []byte, lines []lineSpan, i int) (Record, int) {
	id, idSpan, _ := parseIDLine(buf, lines[i])
	start, stop, startSpan, stopSpan, _ := parseTimingLine(buf, lines[i+1])
	r := Record{
		ID:        id,
		Start:     start,
		Stop:      stop,
		IDLine:    lines[i].begin,
		IDSpan:    idSpan,
		StartSpan: startSpan,
		StopSpan:  stopSpan,
	}
	next := i + 2
	if next >= len(lines) {
		// Timing line ends the buffer; the text field does not exist and
		// its span collapses at the buffer end.
		r.TextSpan = Span{Begin: len(buf), End: len(buf)}
		r.EndPos = lines[i+1].end
		return r, next
	}
	textBegin := lines[next].begin
	last := -1
	for next < len(lines) && !isBlank(buf, lines[next]) && !anchorAt(buf, lines, next) {
		last = next
		next++
	}
	if last < 0 {
		r.TextSpan = Span{Begin: textBegin, End: textBegin}
		r.EndPos = lines[i+1].end
		return r, next
	}
	r.TextSpan = Span{Begin: textBegin, End: lines[last].end}
	r.Text = string(buf[textBegin:lines[last].end])
	r.EndPos = lines[last].end
	return r, next
}

// ScanAt locates the record enclosing offset off by searching backward for
// the nearest anchor. Blank and whitespace-only lines along the way do not
// break the search; from a separator gap the search lands on the preceding
// record. ok is false when no anchor exists at or before off.
func ScanAt(buf []byte, off int) (Record, bool) {
	lines := splitLines(buf)
	if len(lines) == 0 {
		return Record{}, false
	}
	for i := lineIndexAt(lines, off); i >= 0; i-- {
		if anchorAt(buf, lines, i) {
			r, _ := extractAt(buf, lines, i)
			return r, true
		}
	}
	return Record{}, false
}

// ByID locates the record whose ID line is exactly the decimal rendering of
// id, scanning forward from the buffer start. ok is false when absent.
func ByID(buf []byte, id int) (Record, bool) {
	lines := splitLines(buf)
	for i := range lines {
		if v, _, ok := parseIDLine(buf, lines[i]); ok && v == id && anchorAt(buf, lines, i) {
			r, _ := extractAt(buf, lines, i)
			return r, true
		}
	}
	return Record{}, false
}

// ScanAll returns every record in buffer order.
func ScanAll(buf []byte) []Record {
	lines := splitLines(buf)
	var recs []Record
	i := 0
	for i < len(lines) {
		if anchorAt(buf, lines, i) {
			r, next := extractAt(buf, lines, i)
			recs = append(recs, r)
			i = next
			continue
		}
		i++
	}
	return recs
}
