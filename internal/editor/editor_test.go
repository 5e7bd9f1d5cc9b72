package editor

import (
	"strings"
)

// fixture builds a document from lines, newline-terminated.
func fixture(lines ...string) string {
	return strings.Join(lines, "\n")
}

// threeRecords matches the reference document used throughout: record 1 at
// 00:01:01,000–00:01:05,123, record 2 at 00:02:02,234–00:02:10,345 and
// record 3 at 00:03:03,456–00:03:15,567.
func threeRecords() *Editor {
	return New(fixture(
		"1",
		"00:01:01,000 --> 00:01:05,123",
		"Hello",
		"",
		"2",
		"00:02:02,234 --> 00:02:10,345",
		"World",
		"",
		"3",
		"00:03:03,456 --> 00:03:15,567",
		"Goodbye",
		"",
	))
}
