package planner

import (
	"regexp"
	"strconv"
)

// Schedule times are free text, so sort ordering is derived from the
// first thing in the string that looks like a clock time. Both ':' and
// '.' separators appear in user input ("07:50-09:30", "7.05").
var startTimeRe = regexp.MustCompile(`([01]?\d|2[0-3])[:.]([0-5]\d)`)

// Sentinel hour/minute returned for strings with no recognizable time.
// Sorts after every valid (0..23, 0..59) pair so unparsable labels land
// at the bottom of the table.
const (
	NoTimeHour   = 99
	NoTimeMinute = 99
)

// ParseStartTime extracts the leading (hour, minute) from a free-text
// time range. It never fails: any input without an HH:MM or HH.MM
// token degrades to (99, 99). The original string is not normalized;
// callers display it verbatim.
func ParseStartTime(s string) (hour, minute int) {
	if s == "" {
		return NoTimeHour, NoTimeMinute
	}
	m := startTimeRe.FindStringSubmatch(s)
	if m == nil {
		return NoTimeHour, NoTimeMinute
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	return hour, minute
}

// StartTimeKey collapses ParseStartTime into a single sortable int.
func StartTimeKey(s string) int {
	h, m := ParseStartTime(s)
	return h*60 + m
}
