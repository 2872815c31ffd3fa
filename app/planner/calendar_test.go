package planner

import (
	"errors"
	"testing"
	"time"

	"study-organizer/app/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestProjectMonthGridShape(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    int
		days     int
		firstCol int // Monday-first column of day 1
	}{
		{name: "January 2024 starts Monday", year: 2024, month: 1, days: 31, firstCol: 0},
		{name: "February 2024 is a leap month", year: 2024, month: 2, days: 29, firstCol: 3},
		{name: "February 2023 is not", year: 2023, month: 2, days: 28, firstCol: 2},
		{name: "February 2100 skips the leap rule", year: 2100, month: 2, days: 28, firstCol: 0},
		{name: "April has 30 days", year: 2024, month: 4, days: 30, firstCol: 0},
		{name: "September 2024 starts Sunday", year: 2024, month: 9, days: 30, firstCol: 6},
		{name: "December wraps the year", year: 2024, month: 12, days: 31, firstCol: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := ProjectMonth(tt.year, tt.month, models.NewWeeklySchedule(), nil)
			if err != nil {
				t.Fatalf("ProjectMonth() error = %v", err)
			}

			concrete := 0
			for _, week := range grid.Weeks {
				if len(week) != 7 {
					t.Fatalf("week has %d cells, want 7", len(week))
				}
				for _, cell := range week {
					if !cell.IsPadding() {
						concrete++
					}
				}
			}
			if concrete != tt.days {
				t.Errorf("month has %d concrete cells, want %d", concrete, tt.days)
			}

			for col, cell := range grid.Weeks[0] {
				if cell.Day == 1 && col != tt.firstCol {
					t.Errorf("day 1 in column %d, want %d", col, tt.firstCol)
				}
			}
		})
	}
}

func TestProjectMonthInvalidMonth(t *testing.T) {
	for _, month := range []int{0, 13, -1} {
		if _, err := ProjectMonth(2024, month, models.NewWeeklySchedule(), nil); !errors.Is(err, ErrInvalidMonth) {
			t.Errorf("ProjectMonth(2024, %d) error = %v, want ErrInvalidMonth", month, err)
		}
	}
}

func TestProjectMonthClassEvents(t *testing.T) {
	schedule := models.NewWeeklySchedule()
	schedule["Monday"] = []models.ScheduleEntry{
		{Course: "Algorithms", Room: "C212", Time: "07:50-09:30"},
		{Course: "Databases", Room: "", Time: ""},
	}

	grid, err := ProjectMonth(2024, 1, schedule, nil)
	if err != nil {
		t.Fatalf("ProjectMonth() error = %v", err)
	}

	// January 2024: Mondays are the 1st, 8th, 15th, 22nd, 29th.
	mondays := 0
	for _, week := range grid.Weeks {
		for _, cell := range week {
			if cell.IsPadding() {
				if len(cell.Events) != 0 {
					t.Fatal("padding cell carries events")
				}
				continue
			}
			if cell.Date.Weekday() != time.Monday {
				if len(cell.Events) != 0 {
					t.Errorf("day %d has %d events, want 0", cell.Day, len(cell.Events))
				}
				continue
			}
			mondays++
			if len(cell.Events) != 2 {
				t.Fatalf("Monday %d has %d events, want 2", cell.Day, len(cell.Events))
			}
			if got := cell.Events[0].Text; got != "07:50-09:30 Algorithms (C212)" {
				t.Errorf("first event text = %q", got)
			}
			if got := cell.Events[1].Text; got != "- Databases (-)" {
				t.Errorf("blank fields not dashed: %q", got)
			}
		}
	}
	if mondays != 5 {
		t.Errorf("found %d Mondays, want 5", mondays)
	}
}

func TestProjectMonthTaskEvents(t *testing.T) {
	schedule := models.NewWeeklySchedule()
	schedule["Wednesday"] = []models.ScheduleEntry{
		{Course: "Calculus", Room: "B101", Time: "10:00"},
	}
	tasks := []models.Task{
		{Title: "Essay draft", Deadline: date(2024, time.January, 10), Done: true},
		{Title: "Problem set", Deadline: date(2024, time.January, 10)},
		{Title: "Outside month", Deadline: date(2024, time.February, 10)},
	}

	grid, err := ProjectMonth(2024, 1, schedule, tasks)
	if err != nil {
		t.Fatalf("ProjectMonth() error = %v", err)
	}

	// January 10th 2024 is a Wednesday: class event first, then both
	// task deadlines in list order, done or not.
	var cell Cell
	for _, week := range grid.Weeks {
		for _, c := range week {
			if c.Day == 10 {
				cell = c
			}
		}
	}

	want := []Event{
		{Kind: EventClass, Text: "10:00 Calculus (B101)"},
		{Kind: EventTask, Text: "Deadline: Essay draft"},
		{Kind: EventTask, Text: "Deadline: Problem set"},
	}
	if len(cell.Events) != len(want) {
		t.Fatalf("day 10 has %d events, want %d: %v", len(cell.Events), len(want), cell.Events)
	}
	for i, ev := range want {
		if cell.Events[i] != ev {
			t.Errorf("event %d = %+v, want %+v", i, cell.Events[i], ev)
		}
	}
}

func TestCellVisibleAndOverflow(t *testing.T) {
	cell := Cell{Day: 1, Events: make([]Event, 9)}

	if got := len(cell.Visible(6)); got != 6 {
		t.Errorf("Visible(6) returned %d events, want 6", got)
	}
	if got := cell.Overflow(6); got != 3 {
		t.Errorf("Overflow(6) = %d, want 3", got)
	}
	if got := cell.Overflow(9); got != 0 {
		t.Errorf("Overflow(9) = %d, want 0", got)
	}
	if got := len(Cell{}.Visible(6)); got != 0 {
		t.Errorf("empty cell Visible(6) returned %d events", got)
	}
}
