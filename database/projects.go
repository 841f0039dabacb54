package database

import (
	"database/sql"
	"errors"
	"time"

	"focusdesk/models"

	"github.com/google/uuid"
)

func scanProject(s scanner) (*models.Project, error) {
	var project models.Project
	var isArchived int
	var description sql.NullString
	var createdAt, updatedAt string

	if err := s.Scan(
		&project.ID, &project.Name, &description, &project.Color,
		&isArchived, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	project.IsArchived = isArchived != 0
	project.Description = nullToPtr(description)

	var err error
	if project.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if project.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}

	return &project, nil
}

func (r *Repository) GetAllProjects() ([]models.Project, error) {
	rows, err := r.db.Query(`
		SELECT id, name, description, color, is_archived, created_at, updated_at
		FROM projects
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]models.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}

	return projects, rows.Err()
}

func (r *Repository) GetProjectByID(id string) (*models.Project, error) {
	project, err := scanProject(r.db.QueryRow(`
		SELECT id, name, description, color, is_archived, created_at, updated_at
		FROM projects
		WHERE id = ?
	`, id))

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return project, nil
}

func (r *Repository) CreateProject(req *models.CreateProjectRequest) (*models.Project, error) {
	now := time.Now().UTC()
	project := &models.Project{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		Color:       models.DefaultProjectColor,
		IsArchived:  false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.Color != nil {
		project.Color = *req.Color
	}

	_, err := r.db.Exec(`
		INSERT INTO projects (id, name, description, color, is_archived, created_at, updated_at)
		VALUES (?, ?, ?, ?, 0, ?, ?)
	`, project.ID, project.Name, project.Description, project.Color, formatTime(now), formatTime(now))
	if err != nil {
		return nil, err
	}

	return project, nil
}

func (r *Repository) UpdateProject(id string, req *models.UpdateProjectRequest) error {
	fields := []updateField{
		{"name", bindString(req.Name)},
		{"description", bindString(req.Description)},
		{"color", bindString(req.Color)},
		{"is_archived", bindBool(req.IsArchived)},
	}
	return r.execUpdate("projects", id, fields, true)
}

// DeleteProject removes a project and every task attached to it. Both
// statements run in one transaction so a crash cannot leave tasks pointing
// at a missing project.
func (r *Repository) DeleteProject(id string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM tasks WHERE project_id = ?", id); err != nil {
		return err
	}

	result, err := tx.Exec("DELETE FROM projects WHERE id = ?", id)
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

func (r *Repository) GetProjectStats(id string) (*models.ProjectStats, error) {
	var stats models.ProjectStats
	err := r.db.QueryRow(`
		SELECT
			COUNT(*) AS total_tasks,
			COUNT(CASE WHEN is_completed = 1 THEN 1 END) AS completed_tasks,
			COUNT(CASE WHEN is_completed = 0 THEN 1 END) AS pending_tasks
		FROM tasks WHERE project_id = ?
	`, id).Scan(&stats.TotalTasks, &stats.CompletedTasks, &stats.PendingTasks)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *Repository) ArchiveProject(id string) error {
	return r.setProjectArchived(id, 1)
}

func (r *Repository) UnarchiveProject(id string) error {
	return r.setProjectArchived(id, 0)
}

func (r *Repository) setProjectArchived(id string, archived int) error {
	result, err := r.db.Exec(`
		UPDATE projects SET is_archived = ?, updated_at = ? WHERE id = ?
	`, archived, formatTime(time.Now()), id)
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
