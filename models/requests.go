package models

// Request DTOs for the HTTP API. Pointer fields on update requests mean
// "absent" when nil; only supplied fields reach the partial-update builder.
// Timestamp strings carry RFC 3339 values; on updates an empty string clears
// the column.

type CreateNoteRequest struct {
	Title     string  `json:"title" validate:"required,max=500"`
	Content   string  `json:"content"`
	ProjectID *string `json:"project_id"`
}

type UpdateNoteRequest struct {
	Title     *string `json:"title" validate:"omitempty,max=500"`
	Content   *string `json:"content"`
	ProjectID *string `json:"project_id"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required,max=500"`
	Description *string `json:"description"`
	Priority    *int    `json:"priority" validate:"omitempty,min=1,max=5"`
	DueDate     *string `json:"due_date" validate:"omitempty,rfc3339"`
	RemindAt    *string `json:"remind_at" validate:"omitempty,rfc3339"`
	ProjectID   *string `json:"project_id"`
	ParentID    *string `json:"parent_id"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=500"`
	Description *string `json:"description"`
	IsCompleted *bool   `json:"is_completed"`
	Priority    *int    `json:"priority" validate:"omitempty,min=1,max=5"`
	DueDate     *string `json:"due_date" validate:"omitempty,rfc3339"`
	RemindAt    *string `json:"remind_at" validate:"omitempty,rfc3339"`
	ProjectID   *string `json:"project_id"`
}

type UpdateTaskPositionRequest struct {
	Position int `json:"position"`
}

type MoveTaskRequest struct {
	ParentID *string `json:"parent_id"`
}

type CreateProjectRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description *string `json:"description"`
	Color       *string `json:"color" validate:"omitempty,hexcolor"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	Color       *string `json:"color" validate:"omitempty,hexcolor"`
	IsArchived  *bool   `json:"is_archived"`
}

type CreateTagRequest struct {
	Name  string  `json:"name" validate:"required,max=100"`
	Color *string `json:"color" validate:"omitempty,hexcolor"`
}

type UpdateTagRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=100"`
	Color *string `json:"color" validate:"omitempty,hexcolor"`
}

type StartPomodoroRequest struct {
	TaskID          *string `json:"task_id"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,min=1,max=480"`
}

type CreateColumnRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Position *int   `json:"position"`
}

type UpdateColumnRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Position *int    `json:"position"`
}

type AssignTaskToColumnRequest struct {
	Position *int `json:"position"`
}
