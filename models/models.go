package models

import "time"

// Default colors assigned when a create request omits one.
const (
	DefaultProjectColor = "#3B82F6"
	DefaultTagColor     = "#6B7280"
	DefaultTaskPriority = 3
)

type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ProjectID *string   `json:"project_id"`
}

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	IsCompleted bool       `json:"is_completed"`
	Priority    int        `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	RemindAt    *time.Time `json:"remind_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ProjectID   *string    `json:"project_id"`
	ParentID    *string    `json:"parent_id"`
	Position    int        `json:"position"`
}

type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Color       string    `json:"color"`
	IsArchived  bool      `json:"is_archived"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

type PomodoroSession struct {
	ID              string     `json:"id"`
	TaskID          *string    `json:"task_id"`
	DurationMinutes int        `json:"duration_minutes"`
	IsCompleted     bool       `json:"is_completed"`
	StartedAt       time.Time  `json:"started_at"`
	CompletedAt     *time.Time `json:"completed_at"`
	CreatedAt       time.Time  `json:"created_at"`
}

type KanbanColumn struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
	Position  int    `json:"position"`
}

// ProjectStats aggregates task counts for a single project.
type ProjectStats struct {
	TotalTasks     int `json:"total_tasks"`
	CompletedTasks int `json:"completed_tasks"`
	PendingTasks   int `json:"pending_tasks"`
}

// PomodoroStats aggregates session counts over an optional date range.
// AvgDuration is nil when no session in the range was completed.
type PomodoroStats struct {
	TotalSessions     int      `json:"total_sessions"`
	CompletedSessions int      `json:"completed_sessions"`
	TotalMinutes      int      `json:"total_minutes"`
	AvgDuration       *float64 `json:"avg_duration"`
}
