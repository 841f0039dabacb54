package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupTestRepo(t *testing.T) *Repository {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "focusdesk-test-*")
	require.NoError(t, err)

	dbPath := filepath.Join(tmpDir, "test.db")
	db, err := New(dbPath)
	require.NoError(t, err)

	err = db.Migrate()
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
		os.RemoveAll(tmpDir)
	})

	return NewRepository(db)
}

func TestMigrateIsIdempotent(t *testing.T) {
	repo := setupTestRepo(t)

	// Running the migration again must not fail or clobber data
	_, err := repo.db.Exec(
		"INSERT INTO tags (id, name, color, created_at) VALUES ('t1', 'urgent', '#FF0000', '2025-01-01T00:00:00Z')")
	require.NoError(t, err)

	require.NoError(t, repo.db.Migrate())

	tags, err := repo.GetAllTags()
	require.NoError(t, err)
	require.Len(t, tags, 1)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }
