package tasks

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"study-organizer/app/models"
	"study-organizer/app/store"
)

// taskView is a task plus its display-only fields.
type taskView struct {
	models.Task
	DeadlineText string `json:"deadline_text"`
	DaysLeft     string `json:"days_left"`
}

func taskViews(list []models.Task, now time.Time) []taskView {
	views := make([]taskView, 0, len(list))
	for _, t := range list {
		days := models.DaysUntil(now, t.Deadline)
		left := fmt.Sprintf("%dd", days)
		if days < 0 {
			left = "Late"
		}
		views = append(views, taskView{
			Task:         t,
			DeadlineText: t.DeadlineString(),
			DaysLeft:     left,
		})
	}
	return views
}

// GetTasksAPI returns all tasks sorted by ascending deadline.
func GetTasksAPI(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"tasks":   taskViews(st.Tasks(), time.Now()),
		})
	}
}

// CreateTaskAPI adds a task with a title and a deadline date.
func CreateTaskAPI(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type CreateTaskRequest struct {
			Title    string `json:"title"`
			Deadline string `json:"deadline"`
		}

		var req CreateTaskRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
		}

		deadline, err := time.Parse(models.DateLayout, req.Deadline)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Deadline must be formatted as YYYY-MM-DD"})
		}

		task, err := st.AddTask(req.Title, deadline)
		if err != nil {
			if errors.Is(err, store.ErrEmptyTitle) {
				return c.Status(400).JSON(fiber.Map{"success": false, "error": "Task title cannot be empty"})
			}
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to add task"})
		}

		return c.Status(201).JSON(fiber.Map{
			"success": true,
			"task":    task,
		})
	}
}

// SetTaskDoneAPI toggles the done flag of a task.
func SetTaskDoneAPI(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type DoneRequest struct {
			Done bool `json:"done"`
		}

		var req DoneRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
		}

		if err := st.SetTaskDone(c.Params("id"), req.Done); err != nil {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Task not found"})
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Task updated successfully",
		})
	}
}

// DeleteTaskAPI removes a task.
func DeleteTaskAPI(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := st.DeleteTask(c.Params("id")); err != nil {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Task not found"})
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Task deleted successfully",
		})
	}
}
