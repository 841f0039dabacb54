package handlers

import (
	"focusdesk/app"
	"focusdesk/models"

	"github.com/gofiber/fiber/v2"
)

func GetAllTags(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tags, err := a.Repo.GetAllTags()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch tags", err)
		}

		return success(c, fiber.Map{"tags": tags})
	}
}

func CreateTag(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateTagRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		tag, err := a.Repo.CreateTag(&req)
		if err != nil {
			return repoError(c, "Failed to create tag", err)
		}

		return created(c, fiber.Map{"tag": tag})
	}
}

func UpdateTag(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var req models.UpdateTagRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		if err := a.Repo.UpdateTag(id, &req); err != nil {
			return repoError(c, "Failed to update tag", err)
		}

		return success(c, fiber.Map{"message": "Tag updated successfully"})
	}
}

// DeleteTag removes the tag and every note association referencing it
func DeleteTag(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := a.Repo.DeleteTag(id); err != nil {
			return repoError(c, "Failed to delete tag", err)
		}

		return success(c, fiber.Map{"message": "Tag deleted successfully"})
	}
}

// AddTagToNote is idempotent; attaching twice succeeds quietly
func AddTagToNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		noteID := c.Params("id")
		tagID := c.Params("tagID")

		if err := a.Repo.AddTagToNote(noteID, tagID); err != nil {
			return serverErrorWithDetails(c, "Failed to add tag to note", err)
		}

		return success(c, fiber.Map{"message": "Tag added to note"})
	}
}

func RemoveTagFromNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		noteID := c.Params("id")
		tagID := c.Params("tagID")

		if err := a.Repo.RemoveTagFromNote(noteID, tagID); err != nil {
			return serverErrorWithDetails(c, "Failed to remove tag from note", err)
		}

		return success(c, fiber.Map{"message": "Tag removed from note"})
	}
}

func GetTagsForNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		noteID := c.Params("id")

		tags, err := a.Repo.GetTagsForNote(noteID)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch tags for note", err)
		}

		return success(c, fiber.Map{"tags": tags})
	}
}

func GetNotesByTag(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tagID := c.Params("id")

		noteIDs, err := a.Repo.GetNoteIDsByTag(tagID)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch notes for tag", err)
		}

		return success(c, fiber.Map{"note_ids": noteIDs})
	}
}
