package database

import (
	"database/sql"
	"time"

	"focusdesk/models"

	"github.com/google/uuid"
)

func scanSession(s scanner) (*models.PomodoroSession, error) {
	var session models.PomodoroSession
	var isCompleted int
	var taskID, completedAt sql.NullString
	var startedAt, createdAt string

	if err := s.Scan(
		&session.ID, &taskID, &session.DurationMinutes, &isCompleted,
		&startedAt, &completedAt, &createdAt,
	); err != nil {
		return nil, err
	}

	session.IsCompleted = isCompleted != 0
	session.TaskID = nullToPtr(taskID)

	var err error
	if session.StartedAt, err = parseTime(startedAt); err != nil {
		return nil, err
	}
	if session.CompletedAt, err = parseNullTime(completedAt); err != nil {
		return nil, err
	}
	if session.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}

	return &session, nil
}

func (r *Repository) querySessions(query string, args ...any) ([]models.PomodoroSession, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]models.PomodoroSession, 0)
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *session)
	}

	return sessions, rows.Err()
}

func (r *Repository) GetAllSessions() ([]models.PomodoroSession, error) {
	return r.querySessions(`
		SELECT id, task_id, duration_minutes, is_completed, started_at, completed_at, created_at
		FROM pomodoro_sessions
		ORDER BY created_at DESC
	`)
}

func (r *Repository) GetSessionsByTask(taskID string) ([]models.PomodoroSession, error) {
	return r.querySessions(`
		SELECT id, task_id, duration_minutes, is_completed, started_at, completed_at, created_at
		FROM pomodoro_sessions
		WHERE task_id = ?
		ORDER BY created_at DESC
	`, taskID)
}

func (r *Repository) StartSession(req *models.StartPomodoroRequest) (*models.PomodoroSession, error) {
	now := time.Now().UTC()
	session := &models.PomodoroSession{
		ID:              uuid.New().String(),
		TaskID:          req.TaskID,
		DurationMinutes: req.DurationMinutes,
		IsCompleted:     false,
		StartedAt:       now,
		CompletedAt:     nil,
		CreatedAt:       now,
	}

	_, err := r.db.Exec(`
		INSERT INTO pomodoro_sessions (id, task_id, duration_minutes, is_completed, started_at, completed_at, created_at)
		VALUES (?, ?, ?, 0, ?, NULL, ?)
	`, session.ID, session.TaskID, session.DurationMinutes, formatTime(now), formatTime(now))
	if err != nil {
		return nil, err
	}

	return session, nil
}

// CompleteSession stamps completed_at exactly once. Completing an already
// completed session is a no-op: the first stamp wins.
func (r *Repository) CompleteSession(id string) error {
	result, err := r.db.Exec(`
		UPDATE pomodoro_sessions SET is_completed = 1, completed_at = ?
		WHERE id = ? AND is_completed = 0
	`, formatTime(time.Now()), id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	// Nothing updated: either the session is already completed or it does
	// not exist.
	var exists int
	err = r.db.QueryRow("SELECT 1 FROM pomodoro_sessions WHERE id = ?", id).Scan(&exists)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	return err
}

func (r *Repository) CancelSession(id string) error {
	result, err := r.db.Exec("DELETE FROM pomodoro_sessions WHERE id = ?", id)
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

// GetStats aggregates sessions whose created_at falls inside the optional
// date range. AvgDuration stays nil when no completed session matches, so a
// zero-session range never divides by zero.
func (r *Repository) GetStats(startDate, endDate *time.Time) (*models.PomodoroStats, error) {
	query := `
		SELECT
			COUNT(*) AS total_sessions,
			COUNT(CASE WHEN is_completed = 1 THEN 1 END) AS completed_sessions,
			SUM(CASE WHEN is_completed = 1 THEN duration_minutes ELSE 0 END) AS total_minutes,
			AVG(CASE WHEN is_completed = 1 THEN duration_minutes ELSE NULL END) AS avg_duration
		FROM pomodoro_sessions WHERE 1=1`
	args := []any{}

	if startDate != nil {
		query += " AND created_at >= ?"
		args = append(args, formatTime(*startDate))
	}
	if endDate != nil {
		query += " AND created_at <= ?"
		args = append(args, formatTime(*endDate))
	}

	var stats models.PomodoroStats
	var totalMinutes sql.NullInt64
	var avgDuration sql.NullFloat64

	err := r.db.QueryRow(query, args...).Scan(
		&stats.TotalSessions, &stats.CompletedSessions, &totalMinutes, &avgDuration,
	)
	if err != nil {
		return nil, err
	}

	stats.TotalMinutes = int(totalMinutes.Int64)
	if avgDuration.Valid {
		stats.AvgDuration = &avgDuration.Float64
	}

	return &stats, nil
}
