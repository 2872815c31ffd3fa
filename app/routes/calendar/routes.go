package calendar

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"study-organizer/app/models"
	"study-organizer/app/planner"
	"study-organizer/app/store"
)

func SetupCalendarRoutes(app *fiber.App, st *store.Store, cellCap int) {
	app.Get("/calendar", CalendarPage(st, cellCap))

	api := app.Group("/api/calendar")
	api.Get("/:year/:month", GetMonthAPI(st))
}

// cellView is one grid cell prepared for the template: events already
// capped, with the hidden remainder count.
type cellView struct {
	Day     int
	IsToday bool
	Events  []planner.Event
	More    int
}

// CalendarPage renders the month grid with classes and task deadlines.
// Defaults to the current month; ?year= and ?month= select another.
func CalendarPage(st *store.Store, cellCap int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		now := time.Now()
		year := c.QueryInt("year", now.Year())
		month := c.QueryInt("month", int(now.Month()))

		grid, err := planner.ProjectMonth(year, month, st.Schedule(), st.Tasks())
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid month")
		}

		today := models.DateOf(now)
		weeks := make([][]cellView, 0, len(grid.Weeks))
		for _, week := range grid.Weeks {
			row := make([]cellView, 0, 7)
			for _, cell := range week {
				row = append(row, cellView{
					Day:     cell.Day,
					IsToday: !cell.IsPadding() && cell.Date.Equal(today),
					Events:  cell.Visible(cellCap),
					More:    cell.Overflow(cellCap),
				})
			}
			weeks = append(weeks, row)
		}

		prevYear, prevMonth := year, month-1
		if prevMonth < 1 {
			prevYear, prevMonth = year-1, 12
		}
		nextYear, nextMonth := year, month+1
		if nextMonth > 12 {
			nextYear, nextMonth = year+1, 1
		}

		return c.Render("calendar/index", fiber.Map{
			"Title":       "Calendar - Study Organizer",
			"CurrentPage": "calendar",
			"Year":        year,
			"Month":       month,
			"MonthName":   grid.MonthName(),
			"Weekdays":    models.Weekdays,
			"Weeks":       weeks,
			"PrevYear":    prevYear,
			"PrevMonth":   prevMonth,
			"NextYear":    nextYear,
			"NextMonth":   nextMonth,
		})
	}
}
