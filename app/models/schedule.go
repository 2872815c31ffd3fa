package models

import "strings"

// Weekdays is the fixed Monday-first set of weekday names used as
// schedule keys. Names are case-sensitive English, matching
// time.Weekday.String().
var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// IsWeekday reports whether day is one of the seven schedule keys.
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// CanonicalWeekday resolves a case-insensitive weekday name ("monday",
// "MONDAY") to its canonical form. ok is false for anything that is
// not one of the seven names.
func CanonicalWeekday(day string) (canonical string, ok bool) {
	for _, d := range Weekdays {
		if strings.EqualFold(d, day) {
			return d, true
		}
	}
	return "", false
}

// ScheduleEntry represents one weekly class on a single weekday.
// Time is free text (e.g. "07:50-09:30", "10:00") and is stored and
// displayed verbatim; it is only best-effort parsed for sort ordering.
type ScheduleEntry struct {
	ID     string `json:"id"`
	Course string `json:"course"`
	Room   string `json:"room"`
	Time   string `json:"time"`
}

// WeeklySchedule maps a weekday name to its ordered class entries.
// Entries keep insertion order until deleted.
type WeeklySchedule map[string][]ScheduleEntry

// NewWeeklySchedule returns a schedule with all seven weekday buckets
// present and empty.
func NewWeeklySchedule() WeeklySchedule {
	s := make(WeeklySchedule, len(Weekdays))
	for _, d := range Weekdays {
		s[d] = []ScheduleEntry{}
	}
	return s
}

// Day returns the bucket for the given weekday name. Unknown names
// yield an empty bucket, never an error.
func (s WeeklySchedule) Day(name string) []ScheduleEntry {
	return s[name]
}
