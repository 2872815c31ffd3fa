package models

import "time"

// DateLayout is the wire and display format for task deadlines.
const DateLayout = "2006-01-02"

// Task is a deadline-bearing todo item.
//
// Notified transitions false->true the first time the notifier
// evaluates the task inside the urgency horizon and never resets,
// so at most one email is ever attempted per task. Done exempts the
// task from urgency evaluation entirely.
type Task struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Deadline time.Time `json:"deadline"`
	Done     bool      `json:"done"`
	Notified bool      `json:"notified"`
}

// DeadlineString renders the deadline in the fixed date format.
func (t *Task) DeadlineString() string {
	return t.Deadline.Format(DateLayout)
}

// DateOf truncates a timestamp to its calendar date (midnight UTC).
// Deadlines and "today" are compared at date granularity only.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the whole-day difference from today to deadline.
// Negative values mean the deadline has passed.
func DaysUntil(today, deadline time.Time) int {
	return int(DateOf(deadline).Sub(DateOf(today)).Hours() / 24)
}
