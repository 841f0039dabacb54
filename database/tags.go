package database

import (
	"errors"
	"time"

	"focusdesk/models"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
)

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

func scanTag(s scanner) (*models.Tag, error) {
	var tag models.Tag
	var createdAt string

	if err := s.Scan(&tag.ID, &tag.Name, &tag.Color, &createdAt); err != nil {
		return nil, err
	}

	var err error
	if tag.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}

	return &tag, nil
}

func (r *Repository) GetAllTags() ([]models.Tag, error) {
	rows, err := r.db.Query(`
		SELECT id, name, color, created_at
		FROM tags
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make([]models.Tag, 0)
	for rows.Next() {
		tag, err := scanTag(rows)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}

	return tags, rows.Err()
}

func (r *Repository) CreateTag(req *models.CreateTagRequest) (*models.Tag, error) {
	now := time.Now().UTC()
	tag := &models.Tag{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Color:     models.DefaultTagColor,
		CreatedAt: now,
	}
	if req.Color != nil {
		tag.Color = *req.Color
	}

	_, err := r.db.Exec(`
		INSERT INTO tags (id, name, color, created_at) VALUES (?, ?, ?, ?)
	`, tag.ID, tag.Name, tag.Color, formatTime(now))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	return tag, nil
}

// UpdateTag has no always-updated column, so an update with no supplied
// fields succeeds without touching storage.
func (r *Repository) UpdateTag(id string, req *models.UpdateTagRequest) error {
	fields := []updateField{
		{"name", bindString(req.Name)},
		{"color", bindString(req.Color)},
	}
	err := r.execUpdate("tags", id, fields, false)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// DeleteTag removes the tag and its note associations in one transaction.
func (r *Repository) DeleteTag(id string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM note_tags WHERE tag_id = ?", id); err != nil {
		return err
	}

	result, err := tx.Exec("DELETE FROM tags WHERE id = ?", id)
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

// AddTagToNote is idempotent: attaching an already-attached tag is a no-op.
func (r *Repository) AddTagToNote(noteID, tagID string) error {
	_, err := r.db.Exec(`
		INSERT OR IGNORE INTO note_tags (note_id, tag_id) VALUES (?, ?)
	`, noteID, tagID)
	return err
}

func (r *Repository) RemoveTagFromNote(noteID, tagID string) error {
	_, err := r.db.Exec(`
		DELETE FROM note_tags WHERE note_id = ? AND tag_id = ?
	`, noteID, tagID)
	return err
}

func (r *Repository) GetTagsForNote(noteID string) ([]models.Tag, error) {
	rows, err := r.db.Query(`
		SELECT t.id, t.name, t.color, t.created_at
		FROM tags t
		INNER JOIN note_tags nt ON t.id = nt.tag_id
		WHERE nt.note_id = ?
		ORDER BY t.name ASC
	`, noteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make([]models.Tag, 0)
	for rows.Next() {
		tag, err := scanTag(rows)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}

	return tags, rows.Err()
}

func (r *Repository) GetNoteIDsByTag(tagID string) ([]string, error) {
	rows, err := r.db.Query(`
		SELECT note_id FROM note_tags WHERE tag_id = ?
	`, tagID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	noteIDs := make([]string, 0)
	for rows.Next() {
		var noteID string
		if err := rows.Scan(&noteID); err != nil {
			return nil, err
		}
		noteIDs = append(noteIDs, noteID)
	}

	return noteIDs, rows.Err()
}
