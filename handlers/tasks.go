package handlers

import (
	"focusdesk/app"
	"focusdesk/models"

	"github.com/gofiber/fiber/v2"
)

// GetAllTasks lists every task ordered by (position ASC, created_at DESC)
func GetAllTasks(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tasks, err := a.Repo.GetAllTasks()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch tasks", err)
		}

		return success(c, fiber.Map{"tasks": tasks})
	}
}

func GetTasksByProject(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		projectID := c.Params("id")

		tasks, err := a.Repo.GetTasksByProject(projectID)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch tasks", err)
		}

		return success(c, fiber.Map{"tasks": tasks})
	}
}

func GetSubtasks(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		parentID := c.Params("id")

		tasks, err := a.Repo.GetSubtasks(parentID)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch subtasks", err)
		}

		return success(c, fiber.Map{"tasks": tasks})
	}
}

func CreateTask(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateTaskRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		task, err := a.Repo.CreateTask(&req)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to create task", err)
		}

		return created(c, fiber.Map{"task": task})
	}
}

func UpdateTask(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var req models.UpdateTaskRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		if err := a.Repo.UpdateTask(id, &req); err != nil {
			return repoError(c, "Failed to update task", err)
		}

		return success(c, fiber.Map{"message": "Task updated successfully"})
	}
}

// UpdateTaskPosition sets the sort key directly; siblings keep their
// positions
func UpdateTaskPosition(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var req models.UpdateTaskPositionRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Repo.UpdateTaskPosition(id, req.Position); err != nil {
			return repoError(c, "Failed to update task position", err)
		}

		return success(c, fiber.Map{"message": "Task position updated successfully"})
	}
}

// MoveTask reparents a task, assigning it the next position in its new scope
func MoveTask(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var req models.MoveTaskRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Repo.MoveTask(id, req.ParentID); err != nil {
			return repoError(c, "Failed to move task", err)
		}

		return success(c, fiber.Map{"message": "Task moved successfully"})
	}
}

func DeleteTask(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := a.Repo.DeleteTask(id); err != nil {
			return repoError(c, "Failed to delete task", err)
		}

		return success(c, fiber.Map{"message": "Task deleted successfully"})
	}
}
