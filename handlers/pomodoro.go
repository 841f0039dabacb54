package handlers

import (
	"time"

	"focusdesk/app"
	"focusdesk/models"

	"github.com/gofiber/fiber/v2"
)

func GetAllSessions(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessions, err := a.Repo.GetAllSessions()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch sessions", err)
		}

		return success(c, fiber.Map{"sessions": sessions})
	}
}

func GetSessionsByTask(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		taskID := c.Params("id")

		sessions, err := a.Repo.GetSessionsByTask(taskID)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch sessions", err)
		}

		return success(c, fiber.Map{"sessions": sessions})
	}
}

func StartSession(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.StartPomodoroRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		session, err := a.Repo.StartSession(&req)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to start session", err)
		}

		return created(c, fiber.Map{"session": session})
	}
}

// CompleteSession marks a session completed; repeating the call keeps the
// original completion time
func CompleteSession(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := a.Repo.CompleteSession(id); err != nil {
			return repoError(c, "Failed to complete session", err)
		}

		return success(c, fiber.Map{"message": "Session completed successfully"})
	}
}

func CancelSession(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := a.Repo.CancelSession(id); err != nil {
			return repoError(c, "Failed to cancel session", err)
		}

		return success(c, fiber.Map{"message": "Session cancelled successfully"})
	}
}

// GetPomodoroStats aggregates sessions over an optional start_date/end_date
// range supplied as RFC 3339 query parameters
func GetPomodoroStats(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var startDate, endDate *time.Time

		if s := c.Query("start_date"); s != "" {
			t, err := time.Parse(time.RFC3339, s)
			if err != nil {
				return badRequest(c, "start_date must be an RFC 3339 timestamp")
			}
			startDate = &t
		}
		if s := c.Query("end_date"); s != "" {
			t, err := time.Parse(time.RFC3339, s)
			if err != nil {
				return badRequest(c, "end_date must be an RFC 3339 timestamp")
			}
			endDate = &t
		}

		stats, err := a.Repo.GetStats(startDate, endDate)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch pomodoro stats", err)
		}

		return success(c, fiber.Map{"stats": stats})
	}
}
