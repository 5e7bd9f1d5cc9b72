package srt

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// timestampPattern is the strict SubRip timestamp layout HH:MM:SS,mmm.
// Hours may be wider than two digits; minutes and seconds are bounded at 59
// and milliseconds are exactly three digits.
var timestampPattern = regexp.MustCompile(`^(\d{2,}):([0-5]\d):([0-5]\d),(\d{3})$`)

// TimeSeparator joins the start and stop timestamps on a timing line.
const TimeSeparator = " --> "

// FormatError reports timestamp text that does not match HH:MM:SS,mmm.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid timestamp %q (want HH:MM:SS,mmm)", e.Input)
}

// ParseTimestamp converts strict HH:MM:SS,mmm text to a duration with
// millisecond resolution. Any deviation from the pattern yields a *FormatError.
func ParseTimestamp(s string) (time.Duration, error) {
	m := timestampPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, &FormatError{Input: s}
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil {
		// Hours are unbounded in width, so overflow is possible in theory.
		return 0, &FormatError{Input: s}
	}
	minute, _ := strconv.Atoi(m[2])
	second, _ := strconv.Atoi(m[3])
	millisecond, _ := strconv.Atoi(m[4])
	return time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second +
		time.Duration(millisecond)*time.Millisecond, nil
}

// FormatTimestamp renders d as HH:MM:SS,mmm, zero-padding hours to at least
// two digits. Sub-millisecond precision is truncated.
//
// d must be non-negative. A negative value is a caller bug (callers clamp
// before formatting) and panics.
func FormatTimestamp(d time.Duration) string {
	if d < 0 {
		panic("srt: FormatTimestamp called with negative duration")
	}
	hour := d / time.Hour
	d -= hour * time.Hour
	minute := d / time.Minute
	d -= minute * time.Minute
	second := d / time.Second
	d -= second * time.Second
	millisecond := d / time.Millisecond
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hour, minute, second, millisecond)
}
