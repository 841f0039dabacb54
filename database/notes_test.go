package database

import (
	"testing"

	"focusdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteCRUD(t *testing.T) {
	repo := setupTestRepo(t)

	note, err := repo.CreateNote(&models.CreateNoteRequest{
		Title:   "meeting notes",
		Content: "discuss roadmap",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, note.ID)
	assert.True(t, note.CreatedAt.Equal(note.UpdatedAt))

	got, err := repo.GetNoteByID(note.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, note.Title, got.Title)
	assert.Equal(t, note.Content, got.Content)
	assert.Nil(t, got.ProjectID)

	missing, err := repo.GetNoteByID("missing")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.DeleteNote(note.ID))
	assert.ErrorIs(t, repo.DeleteNote(note.ID), ErrNotFound)
}

func TestGetAllNotesOrdering(t *testing.T) {
	repo := setupTestRepo(t)

	first, err := repo.CreateNote(&models.CreateNoteRequest{Title: "first", Content: "a"})
	require.NoError(t, err)
	second, err := repo.CreateNote(&models.CreateNoteRequest{Title: "second", Content: "b"})
	require.NoError(t, err)

	_, err = repo.db.Exec("UPDATE notes SET updated_at = ? WHERE id = ?", "2025-03-01T00:00:00Z", first.ID)
	require.NoError(t, err)
	_, err = repo.db.Exec("UPDATE notes SET updated_at = ? WHERE id = ?", "2025-03-02T00:00:00Z", second.ID)
	require.NoError(t, err)

	notes, err := repo.GetAllNotes()
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, second.ID, notes[0].ID)
	assert.Equal(t, first.ID, notes[1].ID)
}

func TestSearchNotes(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.CreateNote(&models.CreateNoteRequest{Title: "grocery list", Content: "milk"})
	require.NoError(t, err)
	_, err = repo.CreateNote(&models.CreateNoteRequest{Title: "ideas", Content: "buy groceries on friday"})
	require.NoError(t, err)
	_, err = repo.CreateNote(&models.CreateNoteRequest{Title: "unrelated", Content: "nothing here"})
	require.NoError(t, err)

	matches, err := repo.SearchNotes("grocer")
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	none, err := repo.SearchNotes("zzz")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestNoteProjectLink(t *testing.T) {
	repo := setupTestRepo(t)

	project, err := repo.CreateProject(&models.CreateProjectRequest{Name: "Q3 Planning"})
	require.NoError(t, err)

	note, err := repo.CreateNote(&models.CreateNoteRequest{
		Title:     "kickoff",
		Content:   "agenda",
		ProjectID: &project.ID,
	})
	require.NoError(t, err)

	got, err := repo.GetNoteByID(note.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ProjectID)
	assert.Equal(t, project.ID, *got.ProjectID)

	// Deleting the project orphans the note instead of removing it
	require.NoError(t, repo.DeleteProject(project.ID))

	got, err = repo.GetNoteByID(note.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.ProjectID)
}
