package setup

import (
	"focusdesk/app"
	"focusdesk/handlers"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	api := fiberApp.Group("/api")

	// Notes
	api.Get("/notes", handlers.GetAllNotes(application))
	api.Get("/notes/search", handlers.SearchNotes(application))
	api.Post("/notes", handlers.CreateNote(application))
	api.Get("/notes/:id", handlers.GetNoteByID(application))
	api.Put("/notes/:id", handlers.UpdateNote(application))
	api.Delete("/notes/:id", handlers.DeleteNote(application))
	api.Get("/notes/:id/tags", handlers.GetTagsForNote(application))
	api.Post("/notes/:id/tags/:tagID", handlers.AddTagToNote(application))
	api.Delete("/notes/:id/tags/:tagID", handlers.RemoveTagFromNote(application))

	// Tasks
	api.Get("/tasks", handlers.GetAllTasks(application))
	api.Post("/tasks", handlers.CreateTask(application))
	api.Put("/tasks/:id", handlers.UpdateTask(application))
	api.Delete("/tasks/:id", handlers.DeleteTask(application))
	api.Put("/tasks/:id/position", handlers.UpdateTaskPosition(application))
	api.Put("/tasks/:id/parent", handlers.MoveTask(application))
	api.Get("/tasks/:id/subtasks", handlers.GetSubtasks(application))
	api.Get("/tasks/:id/sessions", handlers.GetSessionsByTask(application))

	// Pomodoro sessions
	api.Get("/pomodoro/sessions", handlers.GetAllSessions(application))
	api.Post("/pomodoro/sessions", handlers.StartSession(application))
	api.Post("/pomodoro/sessions/:id/complete", handlers.CompleteSession(application))
	api.Delete("/pomodoro/sessions/:id", handlers.CancelSession(application))
	api.Get("/pomodoro/stats", handlers.GetPomodoroStats(application))

	// Projects
	api.Get("/projects", handlers.GetAllProjects(application))
	api.Post("/projects", handlers.CreateProject(application))
	api.Get("/projects/:id", handlers.GetProjectByID(application))
	api.Put("/projects/:id", handlers.UpdateProject(application))
	api.Delete("/projects/:id", handlers.DeleteProject(application))
	api.Get("/projects/:id/stats", handlers.GetProjectStats(application))
	api.Post("/projects/:id/archive", handlers.ArchiveProject(application))
	api.Post("/projects/:id/unarchive", handlers.UnarchiveProject(application))
	api.Get("/projects/:id/tasks", handlers.GetTasksByProject(application))
	api.Get("/projects/:id/columns", handlers.GetColumnsByProject(application))
	api.Post("/projects/:id/columns", handlers.CreateColumn(application))

	// Tags
	api.Get("/tags", handlers.GetAllTags(application))
	api.Post("/tags", handlers.CreateTag(application))
	api.Put("/tags/:id", handlers.UpdateTag(application))
	api.Delete("/tags/:id", handlers.DeleteTag(application))
	api.Get("/tags/:id/notes", handlers.GetNotesByTag(application))

	// Kanban columns
	api.Put("/columns/:id", handlers.UpdateColumn(application))
	api.Delete("/columns/:id", handlers.DeleteColumn(application))
	api.Get("/columns/:id/tasks", handlers.GetTasksForColumn(application))
	api.Put("/columns/:id/tasks/:taskID", handlers.AssignTaskToColumn(application))
	api.Delete("/columns/:id/tasks/:taskID", handlers.RemoveTaskFromColumn(application))
}
