package schedule

import (
	"github.com/gofiber/fiber/v2"

	"study-organizer/app/models"
	"study-organizer/app/store"
)

func SetupScheduleRoutes(app *fiber.App, st *store.Store) {
	app.Get("/schedule", ManageClassesPage(st))

	api := app.Group("/api/schedule")
	api.Get("/", GetScheduleAPI(st))
	api.Get("/:day", GetDayAPI(st))
	api.Post("/:day", CreateClassAPI(st))
	api.Delete("/:day/:id", DeleteClassAPI(st))
}

// ManageClassesPage renders the add/view/delete classes page.
func ManageClassesPage(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("schedule/index", fiber.Map{
			"Title":       "Manage Classes - Study Organizer",
			"CurrentPage": "schedule",
			"Weekdays":    models.Weekdays,
			"Schedule":    st.Schedule(),
		})
	}
}
