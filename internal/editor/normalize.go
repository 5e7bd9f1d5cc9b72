package editor

import (
	"bytes"
	"sort"
	"strconv"
	"strings"

	"github.com/srtlab/srted/internal/srt"
)

// Renumber rewrites every record ID to its 1-based rank in buffer order.
// Ordering and every other field are untouched.
func (e *Editor) Renumber() {
	recs := srt.ScanAll(e.buf)
	// Walk backward so earlier spans survive width changes.
	for i := len(recs) - 1; i >= 0; i-- {
		want := strconv.Itoa(i + 1)
		sp := recs[i].IDSpan
		if string(e.buf[sp.Begin:sp.End]) != want {
			e.replace(sp.Begin, sp.End, []byte(want))
		}
	}
}

// Sort reorders all records by ascending start time (stable: records with
// equal starts keep their relative order), rewrites the buffer to the new
// canonical layout and renumbers. The point follows its record: if it was
// inside record R's text before sorting it ends up inside R's relocated text
// field, tracked by identity rather than by offset.
func (e *Editor) Sort() {
	recs := srt.ScanAll(e.buf)
	if len(recs) == 0 {
		return
	}

	curIdx, rel := -1, -1
	if r, ok := e.resolve(gapPreceding); ok {
		for i := range recs {
			if recs[i].IDLine == r.IDLine {
				curIdx = i
				break
			}
		}
		if r.HasText() && e.point >= r.TextSpan.Begin && e.point <= r.TextSpan.End {
			rel = e.point - r.TextSpan.Begin
		}
	}

	order := make([]int, len(recs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return recs[order[a]].Start < recs[order[b]].Start
	})

	rank := make([]int, len(recs)) // original index -> new rank
	var b strings.Builder
	for pos, oi := range order {
		if pos > 0 {
			b.WriteString("\n\n")
		}
		r := recs[oi]
		r.ID = pos + 1
		b.WriteString(srt.Render(r))
		rank[oi] = pos
	}
	b.WriteByte('\n')
	e.buf = []byte(b.String())

	if curIdx < 0 {
		e.SetPoint(e.point)
		return
	}
	moved := srt.ScanAll(e.buf)[rank[curIdx]]
	if rel >= 0 {
		p := moved.TextSpan.Begin + rel
		if p > moved.TextSpan.End {
			p = moved.TextSpan.End
		}
		e.point = p
	} else {
		e.point = moved.IDLine
	}
}

// Sanitize normalizes whitespace into the canonical layout:
//
//   - trailing whitespace stripped from every line
//   - leading whitespace stripped from ID and timing lines (text indentation
//     is user content and stays)
//   - blank-line runs between records collapse to exactly one blank line,
//     and a missing separator before a record is restored
//   - blank lines at the document start and end removed
//   - exactly one trailing newline after the last content line
//
// Sanitize is idempotent and only touches whitespace; it never drops or
// reorders content lines.
func (e *Editor) Sanitize() {
	if len(e.buf) == 0 {
		return
	}
	raw := bytes.Split(e.buf, []byte("\n"))
	if n := len(raw); n > 0 && len(raw[n-1]) == 0 {
		raw = raw[:n-1] // the final newline does not open a new line
	}

	lines := make([][]byte, len(raw))
	for i, ln := range raw {
		lines[i] = bytes.TrimRight(ln, " \t\r")
	}

	anchor := make([]bool, len(lines))
	for i := 0; i+1 < len(lines); i++ {
		if srt.IsIDLine(lines[i]) && srt.IsTimingLine(lines[i+1]) {
			anchor[i] = true
			lines[i] = bytes.TrimLeft(lines[i], " \t")
			lines[i+1] = bytes.TrimLeft(lines[i+1], " \t")
		}
	}

	var out [][]byte
	for i, ln := range lines {
		if len(ln) == 0 {
			if len(out) == 0 || len(out[len(out)-1]) == 0 {
				continue // leading blanks and runs collapse
			}
			out = append(out, ln)
			continue
		}
		if anchor[i] && len(out) > 0 && len(out[len(out)-1]) != 0 {
			out = append(out, []byte{}) // restore a missing separator
		}
		out = append(out, ln)
	}
	for len(out) > 0 && len(out[len(out)-1]) == 0 {
		out = out[:len(out)-1]
	}

	if len(out) == 0 {
		e.buf = nil
		e.point = 0
		return
	}
	e.buf = append(bytes.Join(out, []byte("\n")), '\n')
	e.SetPoint(e.point)
}
