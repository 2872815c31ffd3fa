package notifications

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"study-organizer/app/planner"
	"study-organizer/app/store"
)

func SetupNotificationsRoutes(app *fiber.App, st *store.Store, notifier *planner.Notifier) {
	api := app.Group("/api/notifications")
	api.Get("/", GetNotificationsAPI(st, notifier))
}

// GetNotificationsAPI runs one synchronous deadline scan against the
// live task list and returns the notification lines. The layout's
// notification strip calls this on every page load, so the scan runs
// once per render, never on a timer.
func GetNotificationsAPI(st *store.Store, notifier *planner.Notifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notifs := notifier.Scan(st.TaskPointers(), time.Now(), st.EmailConfig())
		resp := fiber.Map{
			"success":       true,
			"notifications": notifs,
		}
		if len(notifs) == 0 {
			resp["message"] = notifier.NoUrgentMessage()
		}
		return c.JSON(resp)
	}
}
