package handlers

import (
	"focusdesk/app"
	"focusdesk/models"

	"github.com/gofiber/fiber/v2"
)

func GetColumnsByProject(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		projectID := c.Params("id")

		columns, err := a.Repo.GetColumnsByProject(projectID)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch columns", err)
		}

		return success(c, fiber.Map{"columns": columns})
	}
}

func CreateColumn(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		projectID := c.Params("id")

		var req models.CreateColumnRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		column, err := a.Repo.CreateColumn(projectID, &req)
		if err != nil {
			return repoError(c, "Failed to create column", err)
		}

		return created(c, fiber.Map{"column": column})
	}
}

func UpdateColumn(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var req models.UpdateColumnRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		if err := a.Repo.UpdateColumn(id, &req); err != nil {
			return repoError(c, "Failed to update column", err)
		}

		return success(c, fiber.Map{"message": "Column updated successfully"})
	}
}

func DeleteColumn(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := a.Repo.DeleteColumn(id); err != nil {
			return repoError(c, "Failed to delete column", err)
		}

		return success(c, fiber.Map{"message": "Column deleted successfully"})
	}
}

// AssignTaskToColumn upserts the placement, so re-assigning moves the task
func AssignTaskToColumn(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		columnID := c.Params("id")
		taskID := c.Params("taskID")

		var req models.AssignTaskToColumnRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return badRequest(c, "Invalid request body")
			}
		}

		if err := a.Repo.AssignTaskToColumn(columnID, taskID, req.Position); err != nil {
			return repoError(c, "Failed to assign task to column", err)
		}

		return success(c, fiber.Map{"message": "Task assigned to column"})
	}
}

func RemoveTaskFromColumn(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		columnID := c.Params("id")
		taskID := c.Params("taskID")

		if err := a.Repo.RemoveTaskFromColumn(columnID, taskID); err != nil {
			return serverErrorWithDetails(c, "Failed to remove task from column", err)
		}

		return success(c, fiber.Map{"message": "Task removed from column"})
	}
}

func GetTasksForColumn(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		columnID := c.Params("id")

		tasks, err := a.Repo.GetTasksForColumn(columnID)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch tasks for column", err)
		}

		return success(c, fiber.Map{"tasks": tasks})
	}
}
