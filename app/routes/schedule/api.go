package schedule

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"study-organizer/app/models"
	"study-organizer/app/store"
)

// GetScheduleAPI returns the full weekly schedule keyed by weekday.
func GetScheduleAPI(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success":  true,
			"schedule": st.Schedule(),
		})
	}
}

// GetDayAPI returns one weekday bucket.
func GetDayAPI(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		day, ok := models.CanonicalWeekday(c.Params("day"))
		if !ok {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Unknown weekday"})
		}
		return c.JSON(fiber.Map{
			"success": true,
			"day":     day,
			"classes": st.Day(day),
		})
	}
}

// CreateClassAPI adds a class entry to a weekday bucket.
func CreateClassAPI(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type CreateClassRequest struct {
			Course string `json:"course"`
			Room   string `json:"room"`
			Time   string `json:"time"`
		}

		day, ok := models.CanonicalWeekday(c.Params("day"))
		if !ok {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Unknown weekday"})
		}

		var req CreateClassRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
		}

		entry, err := st.AddClass(day, req.Course, req.Room, req.Time)
		if err != nil {
			if errors.Is(err, store.ErrEmptyCourse) {
				return c.Status(400).JSON(fiber.Map{"success": false, "error": "Course name cannot be empty"})
			}
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to add class"})
		}

		return c.Status(201).JSON(fiber.Map{
			"success": true,
			"day":     day,
			"class":   entry,
		})
	}
}

// DeleteClassAPI removes a class entry from a weekday bucket.
func DeleteClassAPI(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		day, ok := models.CanonicalWeekday(c.Params("day"))
		if !ok {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Unknown weekday"})
		}

		if err := st.DeleteClass(day, c.Params("id")); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.Status(404).JSON(fiber.Map{"success": false, "error": "Class not found"})
			}
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete class"})
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Class deleted successfully",
		})
	}
}
