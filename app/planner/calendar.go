package planner

import (
	"errors"
	"fmt"
	"time"

	"study-organizer/app/models"
)

// ErrInvalidMonth is returned by ProjectMonth for months outside 1..12.
var ErrInvalidMonth = errors.New("month must be between 1 and 12")

// EventKind distinguishes the two event sources in a calendar cell.
type EventKind string

const (
	EventClass EventKind = "class"
	EventTask  EventKind = "task"
)

// Event is one rendered line inside a calendar cell.
type Event struct {
	Kind EventKind `json:"kind"`
	Text string    `json:"text"`
}

// Cell is a single day slot in the month grid. Day == 0 marks a
// padding cell (a day outside the month); padding cells carry no date
// and no events.
type Cell struct {
	Day    int       `json:"day"`
	Date   time.Time `json:"date,omitempty"`
	Events []Event   `json:"events,omitempty"`
}

// IsPadding reports whether the cell is outside the projected month.
func (c Cell) IsPadding() bool {
	return c.Day == 0
}

// Visible returns at most limit events for display. Capping is a
// presentation decision; the projection itself never truncates.
func (c Cell) Visible(limit int) []Event {
	if limit < 0 || len(c.Events) <= limit {
		return c.Events
	}
	return c.Events[:limit]
}

// Overflow returns how many events Visible(limit) hides.
func (c Cell) Overflow(limit int) int {
	if limit < 0 || len(c.Events) <= limit {
		return 0
	}
	return len(c.Events) - limit
}

// MonthGrid is a month laid out as Monday-first weeks of 7 cells.
type MonthGrid struct {
	Year  int      `json:"year"`
	Month int      `json:"month"`
	Weeks [][]Cell `json:"weeks"`
}

// MonthName returns the English month name for page headings.
func (g MonthGrid) MonthName() string {
	return time.Month(g.Month).String()
}

// ProjectMonth lays out year/month as Monday-first weeks and attaches
// events to every concrete date: one class event per entry in the
// date's weekday bucket (in stored order, text "{time} {course}
// ({room})" with "-" for blank fields), then one task event per task
// whose deadline falls on that date (in task-list order, text
// "Deadline: {title}", regardless of done/notified state). Class
// events always precede task events within a cell.
func ProjectMonth(year, month int, schedule models.WeeklySchedule, tasks []models.Task) (MonthGrid, error) {
	if month < 1 || month > 12 {
		return MonthGrid{}, ErrInvalidMonth
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	// time.Weekday is Sunday-first; shift so Monday is column 0.
	lead := (int(first.Weekday()) + 6) % 7

	cells := make([]Cell, 0, lead+daysInMonth+6)
	for i := 0; i < lead; i++ {
		cells = append(cells, Cell{})
	}
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		cells = append(cells, Cell{
			Day:    day,
			Date:   date,
			Events: eventsFor(date, schedule, tasks),
		})
	}
	for len(cells)%7 != 0 {
		cells = append(cells, Cell{})
	}

	grid := MonthGrid{Year: year, Month: month}
	for i := 0; i < len(cells); i += 7 {
		grid.Weeks = append(grid.Weeks, cells[i:i+7])
	}
	return grid, nil
}

func eventsFor(date time.Time, schedule models.WeeklySchedule, tasks []models.Task) []Event {
	var events []Event
	for _, entry := range schedule.Day(date.Weekday().String()) {
		events = append(events, Event{Kind: EventClass, Text: classText(entry)})
	}
	for _, task := range tasks {
		if models.DateOf(task.Deadline).Equal(date) {
			events = append(events, Event{Kind: EventTask, Text: "Deadline: " + task.Title})
		}
	}
	return events
}

func classText(e models.ScheduleEntry) string {
	return fmt.Sprintf("%s %s (%s)", orDash(e.Time), orDash(e.Course), orDash(e.Room))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
