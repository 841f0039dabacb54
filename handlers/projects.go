package handlers

import (
	"focusdesk/app"
	"focusdesk/models"

	"github.com/gofiber/fiber/v2"
)

func GetAllProjects(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		projects, err := a.Repo.GetAllProjects()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch projects", err)
		}

		return success(c, fiber.Map{"projects": projects})
	}
}

func GetProjectByID(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		project, err := a.Repo.GetProjectByID(id)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch project", err)
		}
		if project == nil {
			return notFound(c, "Project not found")
		}

		return success(c, fiber.Map{"project": project})
	}
}

func CreateProject(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateProjectRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		project, err := a.Repo.CreateProject(&req)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to create project", err)
		}

		return created(c, fiber.Map{"project": project})
	}
}

func UpdateProject(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var req models.UpdateProjectRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		if err := a.Repo.UpdateProject(id, &req); err != nil {
			return repoError(c, "Failed to update project", err)
		}

		return success(c, fiber.Map{"message": "Project updated successfully"})
	}
}

// DeleteProject removes the project and all of its tasks
func DeleteProject(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := a.Repo.DeleteProject(id); err != nil {
			return repoError(c, "Failed to delete project", err)
		}

		return success(c, fiber.Map{"message": "Project deleted successfully"})
	}
}

func GetProjectStats(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		stats, err := a.Repo.GetProjectStats(id)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch project stats", err)
		}

		return success(c, fiber.Map{"stats": stats})
	}
}

func ArchiveProject(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := a.Repo.ArchiveProject(id); err != nil {
			return repoError(c, "Failed to archive project", err)
		}

		return success(c, fiber.Map{"message": "Project archived successfully"})
	}
}

func UnarchiveProject(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := a.Repo.UnarchiveProject(id); err != nil {
			return repoError(c, "Failed to unarchive project", err)
		}

		return success(c, fiber.Map{"message": "Project unarchived successfully"})
	}
}
