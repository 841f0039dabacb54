package database

import (
	"testing"
	"time"

	"focusdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTaskAssignsPositions(t *testing.T) {
	repo := setupTestRepo(t)

	t.Run("root scope positions form 1..N", func(t *testing.T) {
		for want := 1; want <= 3; want++ {
			task, err := repo.CreateTask(&models.CreateTaskRequest{Title: "root task"})
			require.NoError(t, err)
			assert.Equal(t, want, task.Position)
		}
	})

	t.Run("child scope starts over at 1", func(t *testing.T) {
		parent, err := repo.CreateTask(&models.CreateTaskRequest{Title: "parent"})
		require.NoError(t, err)

		child1, err := repo.CreateTask(&models.CreateTaskRequest{Title: "child", ParentID: &parent.ID})
		require.NoError(t, err)
		assert.Equal(t, 1, child1.Position)

		child2, err := repo.CreateTask(&models.CreateTaskRequest{Title: "child", ParentID: &parent.ID})
		require.NoError(t, err)
		assert.Equal(t, 2, child2.Position)
	})

	t.Run("populated scope yields max+1", func(t *testing.T) {
		task, err := repo.CreateTask(&models.CreateTaskRequest{Title: "another"})
		require.NoError(t, err)

		require.NoError(t, repo.UpdateTaskPosition(task.ID, 42))

		next, err := repo.CreateTask(&models.CreateTaskRequest{Title: "after gap"})
		require.NoError(t, err)
		assert.Equal(t, 43, next.Position)
	})
}

func TestCreateTaskDefaults(t *testing.T) {
	repo := setupTestRepo(t)

	task, err := repo.CreateTask(&models.CreateTaskRequest{Title: "plain"})
	require.NoError(t, err)

	assert.Equal(t, models.DefaultTaskPriority, task.Priority)
	assert.False(t, task.IsCompleted)
	assert.Nil(t, task.DueDate)
	assert.True(t, task.CreatedAt.Equal(task.UpdatedAt))

	withPriority, err := repo.CreateTask(&models.CreateTaskRequest{Title: "urgent", Priority: intPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, 1, withPriority.Priority)

	_, err = repo.CreateTask(&models.CreateTaskRequest{Title: "bad", DueDate: strPtr("soon")})
	assert.Error(t, err)
}

func TestUpdateTaskPositionDoesNotRenumber(t *testing.T) {
	repo := setupTestRepo(t)

	project, err := repo.CreateProject(&models.CreateProjectRequest{Name: "Launch"})
	require.NoError(t, err)

	t1, err := repo.CreateTask(&models.CreateTaskRequest{Title: "T1", ProjectID: &project.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, t1.Position)

	t2, err := repo.CreateTask(&models.CreateTaskRequest{Title: "T2", ProjectID: &project.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, t2.Position)

	require.NoError(t, repo.UpdateTaskPosition(t1.ID, 5))

	tasks, err := repo.GetTasksByProject(project.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	// T2 keeps position 2 untouched; listing orders 2 < 5
	assert.Equal(t, t2.ID, tasks[0].ID)
	assert.Equal(t, 2, tasks[0].Position)
	assert.Equal(t, t1.ID, tasks[1].ID)
	assert.Equal(t, 5, tasks[1].Position)
}

func TestTaskListingTieBreak(t *testing.T) {
	repo := setupTestRepo(t)

	project, err := repo.CreateProject(&models.CreateProjectRequest{Name: "Ties"})
	require.NoError(t, err)

	older, err := repo.CreateTask(&models.CreateTaskRequest{Title: "older", ProjectID: &project.ID})
	require.NoError(t, err)
	newer, err := repo.CreateTask(&models.CreateTaskRequest{Title: "newer", ProjectID: &project.ID})
	require.NoError(t, err)

	// Force a position collision and controlled creation times
	_, err = repo.db.Exec("UPDATE tasks SET position = 1, created_at = ? WHERE id = ?",
		"2025-06-01T10:00:00Z", older.ID)
	require.NoError(t, err)
	_, err = repo.db.Exec("UPDATE tasks SET position = 1, created_at = ? WHERE id = ?",
		"2025-06-02T10:00:00Z", newer.ID)
	require.NoError(t, err)

	tasks, err := repo.GetTasksByProject(project.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	// Same position: newest created first
	assert.Equal(t, newer.ID, tasks[0].ID)
	assert.Equal(t, older.ID, tasks[1].ID)
}

func TestTaskPartialUpdate(t *testing.T) {
	repo := setupTestRepo(t)

	task, err := repo.CreateTask(&models.CreateTaskRequest{Title: "write report"})
	require.NoError(t, err)

	due := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	err = repo.UpdateTask(task.ID, &models.UpdateTaskRequest{
		IsCompleted: boolPtr(true),
		DueDate:     strPtr(due.Format(time.RFC3339)),
	})
	require.NoError(t, err)

	got, err := repo.queryTasks("SELECT "+taskColumns+" FROM tasks WHERE id = ?", task.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.True(t, got[0].IsCompleted)
	require.NotNil(t, got[0].DueDate)
	assert.True(t, got[0].DueDate.Equal(due))
	assert.Equal(t, "write report", got[0].Title)

	// Clearing the due date with an empty string
	err = repo.UpdateTask(task.ID, &models.UpdateTaskRequest{DueDate: strPtr("")})
	require.NoError(t, err)

	got, err = repo.queryTasks("SELECT "+taskColumns+" FROM tasks WHERE id = ?", task.ID)
	require.NoError(t, err)
	assert.Nil(t, got[0].DueDate)
}

func TestMoveTask(t *testing.T) {
	repo := setupTestRepo(t)

	a, err := repo.CreateTask(&models.CreateTaskRequest{Title: "A"})
	require.NoError(t, err)
	b, err := repo.CreateTask(&models.CreateTaskRequest{Title: "B", ParentID: &a.ID})
	require.NoError(t, err)
	c, err := repo.CreateTask(&models.CreateTaskRequest{Title: "C", ParentID: &b.ID})
	require.NoError(t, err)

	t.Run("reparenting re-derives position in the new scope", func(t *testing.T) {
		sibling, err := repo.CreateTask(&models.CreateTaskRequest{Title: "sibling", ParentID: &a.ID})
		require.NoError(t, err)
		assert.Equal(t, 2, sibling.Position)

		require.NoError(t, repo.MoveTask(c.ID, &a.ID))

		children, err := repo.GetSubtasks(a.ID)
		require.NoError(t, err)
		require.Len(t, children, 3)
		assert.Equal(t, c.ID, children[2].ID)
		assert.Equal(t, 3, children[2].Position)
	})

	t.Run("moving to root uses the root scope", func(t *testing.T) {
		require.NoError(t, repo.MoveTask(b.ID, nil))

		tasks, err := repo.GetAllTasks()
		require.NoError(t, err)
		for _, task := range tasks {
			if task.ID == b.ID {
				assert.Nil(t, task.ParentID)
				assert.Equal(t, 2, task.Position, "root scope already held A at position 1")
			}
		}
	})

	t.Run("cycles are rejected", func(t *testing.T) {
		x, err := repo.CreateTask(&models.CreateTaskRequest{Title: "X"})
		require.NoError(t, err)
		y, err := repo.CreateTask(&models.CreateTaskRequest{Title: "Y", ParentID: &x.ID})
		require.NoError(t, err)

		assert.ErrorIs(t, repo.MoveTask(x.ID, &x.ID), ErrInvalidParent)
		assert.ErrorIs(t, repo.MoveTask(x.ID, &y.ID), ErrInvalidParent)
	})

	t.Run("missing parent reports not found", func(t *testing.T) {
		assert.ErrorIs(t, repo.MoveTask(a.ID, strPtr("ghost")), ErrNotFound)
	})
}

func TestDeleteTaskCascadesToChildren(t *testing.T) {
	repo := setupTestRepo(t)

	parent, err := repo.CreateTask(&models.CreateTaskRequest{Title: "parent"})
	require.NoError(t, err)
	child, err := repo.CreateTask(&models.CreateTaskRequest{Title: "child", ParentID: &parent.ID})
	require.NoError(t, err)
	_, err = repo.CreateTask(&models.CreateTaskRequest{Title: "grandchild", ParentID: &child.ID})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteTask(parent.ID))

	tasks, err := repo.GetAllTasks()
	require.NoError(t, err)
	assert.Empty(t, tasks)

	assert.ErrorIs(t, repo.DeleteTask(parent.ID), ErrNotFound)
}
