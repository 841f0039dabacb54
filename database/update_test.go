package database

import (
	"testing"

	"focusdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinders(t *testing.T) {
	t.Run("absent pointers bind nothing", func(t *testing.T) {
		for _, b := range []binder{
			bindString(nil), bindInt(nil), bindBool(nil), bindTimestamp(nil),
		} {
			_, present, err := b()
			require.NoError(t, err)
			assert.False(t, present)
		}
	})

	t.Run("booleans coerce to 0/1", func(t *testing.T) {
		v, present, err := bindBool(boolPtr(true))()
		require.NoError(t, err)
		assert.True(t, present)
		assert.Equal(t, 1, v)

		v, _, err = bindBool(boolPtr(false))()
		require.NoError(t, err)
		assert.Equal(t, 0, v)
	})

	t.Run("empty timestamp clears to NULL", func(t *testing.T) {
		v, present, err := bindTimestamp(strPtr(""))()
		require.NoError(t, err)
		assert.True(t, present)
		assert.Nil(t, v)
	})

	t.Run("garbage timestamp fails before binding", func(t *testing.T) {
		_, present, err := bindTimestamp(strPtr("next tuesday"))()
		assert.True(t, present)
		assert.Error(t, err)
	})
}

func TestExecUpdatePartialSemantics(t *testing.T) {
	repo := setupTestRepo(t)

	note, err := repo.CreateNote(&models.CreateNoteRequest{
		Title:   "groceries",
		Content: "milk, eggs",
	})
	require.NoError(t, err)

	t.Run("only supplied fields change", func(t *testing.T) {
		before, err := repo.GetNoteByID(note.ID)
		require.NoError(t, err)

		err = repo.UpdateNote(note.ID, &models.UpdateNoteRequest{Title: strPtr("shopping")})
		require.NoError(t, err)

		after, err := repo.GetNoteByID(note.ID)
		require.NoError(t, err)

		assert.Equal(t, "shopping", after.Title)
		assert.Equal(t, before.Content, after.Content)
		assert.Equal(t, before.ProjectID, after.ProjectID)
		assert.True(t, after.CreatedAt.Equal(before.CreatedAt))
		assert.False(t, after.UpdatedAt.Before(before.UpdatedAt))
	})

	t.Run("no fields still refreshes updated_at", func(t *testing.T) {
		before, err := repo.GetNoteByID(note.ID)
		require.NoError(t, err)

		err = repo.UpdateNote(note.ID, &models.UpdateNoteRequest{})
		require.NoError(t, err)

		after, err := repo.GetNoteByID(note.ID)
		require.NoError(t, err)

		assert.Equal(t, before.Title, after.Title)
		assert.Equal(t, before.Content, after.Content)
		assert.False(t, after.UpdatedAt.Before(before.UpdatedAt))
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		err := repo.UpdateNote("nope", &models.UpdateNoteRequest{Title: strPtr("x")})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("invalid timestamp aborts before any write", func(t *testing.T) {
		task, err := repo.CreateTask(&models.CreateTaskRequest{Title: "call bank"})
		require.NoError(t, err)

		err = repo.UpdateTask(task.ID, &models.UpdateTaskRequest{
			Title:   strPtr("changed"),
			DueDate: strPtr("not-a-date"),
		})
		require.Error(t, err)

		got, err := repo.queryTasks("SELECT "+taskColumns+" FROM tasks WHERE id = ?", task.ID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "call bank", got[0].Title, "failed validation must not write anything")
	})
}

func TestTagUpdateNoOp(t *testing.T) {
	repo := setupTestRepo(t)

	tag, err := repo.CreateTag(&models.CreateTagRequest{Name: "deep-work"})
	require.NoError(t, err)

	// Tags have no updated_at, so an empty update succeeds without a write,
	// even for an id that does not exist.
	require.NoError(t, repo.UpdateTag(tag.ID, &models.UpdateTagRequest{}))
	require.NoError(t, repo.UpdateTag("missing", &models.UpdateTagRequest{}))

	err = repo.UpdateTag("missing", &models.UpdateTagRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
}
