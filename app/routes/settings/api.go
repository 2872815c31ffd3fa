package settings

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"study-organizer/app/mail"
	"study-organizer/app/models"
	"study-organizer/app/store"
)

// SaveEmailConfigAPI stores the reminder mail settings. An empty
// password in the request keeps the previously saved one so the form
// can be resubmitted without retyping it.
func SaveEmailConfigAPI(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type EmailConfigRequest struct {
			Sender    string `json:"sender"`
			Password  string `json:"password"`
			Recipient string `json:"recipient"`
		}

		var req EmailConfigRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
		}

		cfg := models.EmailConfig{
			Sender:    strings.TrimSpace(req.Sender),
			Password:  req.Password,
			Recipient: strings.TrimSpace(req.Recipient),
		}
		if cfg.Password == "" {
			cfg.Password = st.EmailConfig().Password
		}
		st.SetEmailConfig(cfg)

		return c.JSON(fiber.Map{
			"success":    true,
			"message":    "Email settings saved",
			"configured": cfg.IsConfigured(),
		})
	}
}

// TestEmailAPI performs one bounded send with the saved settings and
// reports the outcome. Failures come back as 200 with ok=false; a
// failed attempt is a result, not a server error.
func TestEmailAPI(st *store.Store, mailer mail.Mailer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ok, detail := mailer.Send(
			"Study Organizer: test email",
			"This is a test email from Study Organizer. Your reminder settings work.",
			st.EmailConfig(),
		)
		return c.JSON(fiber.Map{
			"success": true,
			"ok":      ok,
			"detail":  detail,
		})
	}
}
