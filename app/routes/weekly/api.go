package weekly

import (
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"

	"study-organizer/app/models"
	"study-organizer/app/planner"
	"study-organizer/app/store"
)

// Row is one line of the weekly table: a time label plus the classes
// carrying that exact label on each weekday, Monday first.
type Row struct {
	Time string   `json:"time"`
	Days []string `json:"days"`
}

// BuildTable collects the distinct trimmed time labels across all
// weekday buckets and sorts them by parsed start time, unparsable
// labels last. Each cell joins the matching "{course} ({room})" lines
// for that weekday.
func BuildTable(schedule models.WeeklySchedule) []Row {
	seen := make(map[string]bool)
	var labels []string
	for _, day := range models.Weekdays {
		for _, entry := range schedule.Day(day) {
			label := strings.TrimSpace(entry.Time)
			if !seen[label] {
				seen[label] = true
				labels = append(labels, label)
			}
		}
	}

	sort.SliceStable(labels, func(i, j int) bool {
		ki, kj := planner.StartTimeKey(labels[i]), planner.StartTimeKey(labels[j])
		if ki != kj {
			return ki < kj
		}
		return labels[i] < labels[j]
	})

	rows := make([]Row, 0, len(labels))
	for _, label := range labels {
		row := Row{Time: label, Days: make([]string, len(models.Weekdays))}
		for i, day := range models.Weekdays {
			var matches []string
			for _, entry := range schedule.Day(day) {
				if strings.TrimSpace(entry.Time) != label {
					continue
				}
				if entry.Room != "" {
					matches = append(matches, entry.Course+" ("+entry.Room+")")
				} else {
					matches = append(matches, entry.Course)
				}
			}
			row.Days[i] = strings.Join(matches, "\n")
		}
		rows = append(rows, row)
	}
	return rows
}

// GetWeeklyTableAPI returns the weekly table as JSON.
func GetWeeklyTableAPI(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success":  true,
			"weekdays": weekdayHeaders(),
			"rows":     BuildTable(st.Schedule()),
		})
	}
}

func weekdayHeaders() []string {
	return models.Weekdays
}
