package handlers

import (
	"focusdesk/app"
	"focusdesk/models"

	"github.com/gofiber/fiber/v2"
)

// GetAllNotes lists every note, most recently updated first
func GetAllNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes, err := a.Repo.GetAllNotes()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch notes", err)
		}

		return success(c, fiber.Map{"notes": notes})
	}
}

func GetNoteByID(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		note, err := a.Repo.GetNoteByID(id)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch note", err)
		}
		if note == nil {
			return notFound(c, "Note not found")
		}

		return success(c, fiber.Map{"note": note})
	}
}

func CreateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		note, err := a.Repo.CreateNote(&req)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to create note", err)
		}

		return created(c, fiber.Map{"note": note})
	}
}

func UpdateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var req models.UpdateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		if err := a.Repo.UpdateNote(id, &req); err != nil {
			return repoError(c, "Failed to update note", err)
		}

		return success(c, fiber.Map{"message": "Note updated successfully"})
	}
}

func DeleteNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := a.Repo.DeleteNote(id); err != nil {
			return repoError(c, "Failed to delete note", err)
		}

		return success(c, fiber.Map{"message": "Note deleted successfully"})
	}
}

// SearchNotes performs a substring search over title and content
func SearchNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("q")
		if query == "" {
			return badRequest(c, "q is required")
		}

		notes, err := a.Repo.SearchNotes(query)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to search notes", err)
		}

		return success(c, fiber.Map{"notes": notes})
	}
}
