package tasks

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"study-organizer/app/models"
	"study-organizer/app/store"
)

func SetupTasksRoutes(app *fiber.App, st *store.Store) {
	app.Get("/tasks", TasksPage(st))

	api := app.Group("/api/tasks")
	api.Get("/", GetTasksAPI(st))
	api.Post("/", CreateTaskAPI(st))
	api.Patch("/:id/done", SetTaskDoneAPI(st))
	api.Delete("/:id", DeleteTaskAPI(st))
}

// TasksPage renders the task checklist sorted by ascending deadline.
func TasksPage(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("tasks/index", fiber.Map{
			"Title":       "Tasks & Deadlines - Study Organizer",
			"CurrentPage": "tasks",
			"Tasks":       taskViews(st.Tasks(), time.Now()),
			"Today":       models.DateOf(time.Now()).Format(models.DateLayout),
		})
	}
}
