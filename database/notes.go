package database

import (
	"database/sql"
	"errors"
	"time"

	"focusdesk/models"

	"github.com/google/uuid"
)

func scanNote(s scanner) (*models.Note, error) {
	var note models.Note
	var createdAt, updatedAt string
	var projectID sql.NullString

	if err := s.Scan(&note.ID, &note.Title, &note.Content, &createdAt, &updatedAt, &projectID); err != nil {
		return nil, err
	}

	var err error
	if note.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if note.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	note.ProjectID = nullToPtr(projectID)

	return &note, nil
}

func (r *Repository) GetAllNotes() ([]models.Note, error) {
	rows, err := r.db.Query(`
		SELECT id, title, content, created_at, updated_at, project_id
		FROM notes
		ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	notes := make([]models.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *note)
	}

	return notes, rows.Err()
}

func (r *Repository) GetNoteByID(id string) (*models.Note, error) {
	note, err := scanNote(r.db.QueryRow(`
		SELECT id, title, content, created_at, updated_at, project_id
		FROM notes
		WHERE id = ?
	`, id))

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return note, nil
}

func (r *Repository) CreateNote(req *models.CreateNoteRequest) (*models.Note, error) {
	now := time.Now().UTC()
	note := &models.Note{
		ID:        uuid.New().String(),
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
		ProjectID: req.ProjectID,
	}

	_, err := r.db.Exec(`
		INSERT INTO notes (id, title, content, created_at, updated_at, project_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`, note.ID, note.Title, note.Content, formatTime(now), formatTime(now), note.ProjectID)
	if err != nil {
		return nil, err
	}

	return note, nil
}

func (r *Repository) UpdateNote(id string, req *models.UpdateNoteRequest) error {
	fields := []updateField{
		{"title", bindString(req.Title)},
		{"content", bindString(req.Content)},
		{"project_id", bindString(req.ProjectID)},
	}
	return r.execUpdate("notes", id, fields, true)
}

func (r *Repository) DeleteNote(id string) error {
	result, err := r.db.Exec("DELETE FROM notes WHERE id = ?", id)
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

// SearchNotes matches the query as a substring of the title or content,
// most recently updated first.
func (r *Repository) SearchNotes(query string) ([]models.Note, error) {
	pattern := "%" + query + "%"

	rows, err := r.db.Query(`
		SELECT id, title, content, created_at, updated_at, project_id
		FROM notes
		WHERE title LIKE ? OR content LIKE ?
		ORDER BY updated_at DESC
	`, pattern, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *note)
	}

	return notes, rows.Err()
}
