package settings

import (
	"github.com/gofiber/fiber/v2"

	"study-organizer/app/mail"
	"study-organizer/app/store"
)

func SetupSettingsRoutes(app *fiber.App, st *store.Store, mailer mail.Mailer) {
	app.Get("/settings", SettingsPage(st))

	api := app.Group("/api/settings")
	api.Post("/email", SaveEmailConfigAPI(st))
	api.Post("/email/test", TestEmailAPI(st, mailer))
}

// SettingsPage renders the email reminder settings form. The saved
// password is never echoed back.
func SettingsPage(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg := st.EmailConfig()
		return c.Render("settings/index", fiber.Map{
			"Title":       "Email Settings - Study Organizer",
			"CurrentPage": "settings",
			"Sender":      cfg.Sender,
			"Recipient":   cfg.Recipient,
			"Configured":  cfg.IsConfigured(),
		})
	}
}
