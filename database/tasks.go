package database

import (
	"database/sql"
	"fmt"
	"time"

	"focusdesk/models"

	"github.com/google/uuid"
)

func scanTask(s scanner) (*models.Task, error) {
	var task models.Task
	var isCompleted int
	var dueDate, remindAt, projectID, parentID sql.NullString
	var createdAt, updatedAt string

	if err := s.Scan(
		&task.ID, &task.Title, &task.Description, &isCompleted, &task.Priority,
		&dueDate, &remindAt, &createdAt, &updatedAt,
		&projectID, &parentID, &task.Position,
	); err != nil {
		return nil, err
	}

	task.IsCompleted = isCompleted != 0

	var err error
	if task.DueDate, err = parseNullTime(dueDate); err != nil {
		return nil, err
	}
	if task.RemindAt, err = parseNullTime(remindAt); err != nil {
		return nil, err
	}
	if task.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if task.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	task.ProjectID = nullToPtr(projectID)
	task.ParentID = nullToPtr(parentID)

	return &task, nil
}

const taskColumns = `id, title, description, is_completed, priority, due_date, remind_at,
		created_at, updated_at, project_id, parent_id, position`

func (r *Repository) queryTasks(query string, args ...any) ([]models.Task, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}

	return tasks, rows.Err()
}

func (r *Repository) GetAllTasks() ([]models.Task, error) {
	return r.queryTasks(`
		SELECT ` + taskColumns + `
		FROM tasks
		ORDER BY position ASC, created_at DESC
	`)
}

func (r *Repository) GetTasksByProject(projectID string) ([]models.Task, error) {
	return r.queryTasks(`
		SELECT `+taskColumns+`
		FROM tasks
		WHERE project_id = ?
		ORDER BY position ASC, created_at DESC
	`, projectID)
}

// GetSubtasks lists the direct children of a task.
func (r *Repository) GetSubtasks(parentID string) ([]models.Task, error) {
	return r.queryTasks(`
		SELECT `+taskColumns+`
		FROM tasks
		WHERE parent_id = ?
		ORDER BY position ASC, created_at DESC
	`, parentID)
}

// nextTaskPosition derives max(position)+1 among siblings sharing parentID,
// where a NULL parent is its own scope. The read-then-write is serialized by
// the pool's single active writer; no extra locking.
func nextTaskPosition(q querier, parentID *string) (int, error) {
	var position int
	err := q.QueryRow(`
		SELECT COALESCE(MAX(position), 0) + 1 FROM tasks WHERE parent_id IS ?
	`, parentID).Scan(&position)
	if err != nil {
		return 0, err
	}
	return position, nil
}

func parseOptionalTimestamp(p *string) (*time.Time, error) {
	if p == nil || *p == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *p)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp %q: %w", *p, err)
	}
	u := t.UTC()
	return &u, nil
}

func timeArg(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

func (r *Repository) CreateTask(req *models.CreateTaskRequest) (*models.Task, error) {
	dueDate, err := parseOptionalTimestamp(req.DueDate)
	if err != nil {
		return nil, err
	}
	remindAt, err := parseOptionalTimestamp(req.RemindAt)
	if err != nil {
		return nil, err
	}

	position, err := nextTaskPosition(r.db, req.ParentID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	task := &models.Task{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: false,
		Priority:    models.DefaultTaskPriority,
		DueDate:     dueDate,
		RemindAt:    remindAt,
		CreatedAt:   now,
		UpdatedAt:   now,
		ProjectID:   req.ProjectID,
		ParentID:    req.ParentID,
		Position:    position,
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}

	_, err = r.db.Exec(`
		INSERT INTO tasks (id, title, description, is_completed, priority, due_date, remind_at,
			created_at, updated_at, project_id, parent_id, position)
		VALUES (?, ?, ?, 0, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		task.ID, task.Title, task.Description, task.Priority,
		timeArg(task.DueDate), timeArg(task.RemindAt),
		formatTime(now), formatTime(now),
		task.ProjectID, task.ParentID, task.Position,
	)
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (r *Repository) UpdateTask(id string, req *models.UpdateTaskRequest) error {
	fields := []updateField{
		{"title", bindString(req.Title)},
		{"description", bindString(req.Description)},
		{"is_completed", bindBool(req.IsCompleted)},
		{"priority", bindInt(req.Priority)},
		{"due_date", bindTimestamp(req.DueDate)},
		{"remind_at", bindTimestamp(req.RemindAt)},
		{"project_id", bindString(req.ProjectID)},
	}
	return r.execUpdate("tasks", id, fields, true)
}

// UpdateTaskPosition writes the caller-supplied position directly. Siblings
// are not shifted or renumbered; the ordering is a plain sort key, so
// collisions and gaps are allowed.
func (r *Repository) UpdateTaskPosition(id string, position int) error {
	result, err := r.db.Exec(`
		UPDATE tasks SET position = ?, updated_at = ? WHERE id = ?
	`, position, formatTime(time.Now()), id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// MoveTask reparents a task and re-derives its position in the new scope
// using the same max+1 rule as creation. Moving a task under itself or one
// of its descendants is rejected.
func (r *Repository) MoveTask(id string, parentID *string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if parentID != nil {
		// Walk the ancestor chain of the new parent to catch cycles. The
		// walk also verifies the parent exists.
		current := *parentID
		for {
			if current == id {
				return ErrInvalidParent
			}
			var next sql.NullString
			err := tx.QueryRow("SELECT parent_id FROM tasks WHERE id = ?", current).Scan(&next)
			if err == sql.ErrNoRows {
				return ErrNotFound
			}
			if err != nil {
				return err
			}
			if !next.Valid {
				break
			}
			current = next.String
		}
	}

	position, err := nextTaskPosition(tx, parentID)
	if err != nil {
		return err
	}

	result, err := tx.Exec(`
		UPDATE tasks SET parent_id = ?, position = ?, updated_at = ? WHERE id = ?
	`, parentID, position, formatTime(time.Now()), id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

// DeleteTask removes a task; children go with it via the parent_id cascade.
func (r *Repository) DeleteTask(id string) error {
	result, err := r.db.Exec("DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
