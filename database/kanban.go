package database

import (
	"errors"

	"focusdesk/models"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
)

func isForeignKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
}

func (r *Repository) GetColumnsByProject(projectID string) ([]models.KanbanColumn, error) {
	rows, err := r.db.Query(`
		SELECT id, project_id, name, position
		FROM kanban_columns
		WHERE project_id = ?
		ORDER BY position ASC
	`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns := make([]models.KanbanColumn, 0)
	for rows.Next() {
		var column models.KanbanColumn
		if err := rows.Scan(&column.ID, &column.ProjectID, &column.Name, &column.Position); err != nil {
			return nil, err
		}
		columns = append(columns, column)
	}

	return columns, rows.Err()
}

// CreateColumn appends the column at the end of the board unless an explicit
// position is supplied.
func (r *Repository) CreateColumn(projectID string, req *models.CreateColumnRequest) (*models.KanbanColumn, error) {
	column := &models.KanbanColumn{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Name:      req.Name,
	}

	if req.Position != nil {
		column.Position = *req.Position
	} else {
		err := r.db.QueryRow(`
			SELECT COALESCE(MAX(position), 0) + 1 FROM kanban_columns WHERE project_id = ?
		`, projectID).Scan(&column.Position)
		if err != nil {
			return nil, err
		}
	}

	_, err := r.db.Exec(`
		INSERT INTO kanban_columns (id, project_id, name, position) VALUES (?, ?, ?, ?)
	`, column.ID, column.ProjectID, column.Name, column.Position)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return column, nil
}

func (r *Repository) UpdateColumn(id string, req *models.UpdateColumnRequest) error {
	fields := []updateField{
		{"name", bindString(req.Name)},
		{"position", bindInt(req.Position)},
	}
	return r.execUpdate("kanban_columns", id, fields, false)
}

func (r *Repository) DeleteColumn(id string) error {
	result, err := r.db.Exec("DELETE FROM kanban_columns WHERE id = ?", id)
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

// AssignTaskToColumn places a task on a column, moving it if it is already
// there. Position defaults to the end of the column.
func (r *Repository) AssignTaskToColumn(columnID, taskID string, position *int) error {
	var pos int
	if position != nil {
		pos = *position
	} else {
		err := r.db.QueryRow(`
			SELECT COALESCE(MAX(position), 0) + 1 FROM column_tasks WHERE column_id = ?
		`, columnID).Scan(&pos)
		if err != nil {
			return err
		}
	}

	_, err := r.db.Exec(`
		INSERT INTO column_tasks (task_id, column_id, position) VALUES (?, ?, ?)
		ON CONFLICT(task_id, column_id) DO UPDATE SET position = excluded.position
	`, taskID, columnID, pos)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (r *Repository) RemoveTaskFromColumn(columnID, taskID string) error {
	_, err := r.db.Exec(`
		DELETE FROM column_tasks WHERE column_id = ? AND task_id = ?
	`, columnID, taskID)
	return err
}

func (r *Repository) GetTasksForColumn(columnID string) ([]models.Task, error) {
	return r.queryTasks(`
		SELECT t.id, t.title, t.description, t.is_completed, t.priority, t.due_date, t.remind_at,
			t.created_at, t.updated_at, t.project_id, t.parent_id, t.position
		FROM tasks t
		INNER JOIN column_tasks ct ON t.id = ct.task_id
		WHERE ct.column_id = ?
		ORDER BY ct.position ASC, t.created_at DESC
	`, columnID)
}
