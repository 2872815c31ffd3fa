package calendar

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"study-organizer/app/planner"
	"study-organizer/app/store"
)

// GetMonthAPI returns the projected month grid as JSON.
func GetMonthAPI(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, err := strconv.Atoi(c.Params("year"))
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid year"})
		}
		month, err := strconv.Atoi(c.Params("month"))
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid month"})
		}

		grid, err := planner.ProjectMonth(year, month, st.Schedule(), st.Tasks())
		if err != nil {
			if errors.Is(err, planner.ErrInvalidMonth) {
				return c.Status(400).JSON(fiber.Map{"success": false, "error": "Month must be between 1 and 12"})
			}
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to project month"})
		}

		return c.JSON(fiber.Map{
			"success": true,
			"grid":    grid,
		})
	}
}
