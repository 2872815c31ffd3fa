package weekly

import (
	"github.com/gofiber/fiber/v2"

	"study-organizer/app/store"
)

func SetupWeeklyRoutes(app *fiber.App, st *store.Store) {
	app.Get("/weekly", WeeklyTablePage(st))

	api := app.Group("/api/weekly")
	api.Get("/", GetWeeklyTableAPI(st))
}

// WeeklyTablePage renders the all-week timetable: one row per distinct
// time label, one column per weekday.
func WeeklyTablePage(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows := BuildTable(st.Schedule())
		return c.Render("weekly/index", fiber.Map{
			"Title":       "Weekly Table - Study Organizer",
			"CurrentPage": "weekly",
			"Rows":        rows,
			"Weekdays":    weekdayHeaders(),
		})
	}
}
