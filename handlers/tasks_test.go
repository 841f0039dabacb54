package handlers_test

import (
	"net/http"
	"testing"

	"focusdesk/handlers"
	"focusdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTask(t *testing.T) {
	application := setupTestDB(t)

	fiberApp := setupTestApp()
	fiberApp.Post("/api/tasks", handlers.CreateTask(application))

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Valid task",
			requestBody:    map[string]interface{}{"title": "write docs"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Missing title",
			requestBody:    map[string]interface{}{"description": "no title"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "title is required",
		},
		{
			name: "Priority out of range",
			requestBody: map[string]interface{}{
				"title":    "task",
				"priority": 9,
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "priority must be at most 5",
		},
		{
			name: "Malformed due date",
			requestBody: map[string]interface{}{
				"title":    "task",
				"due_date": "tomorrow",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "due_date must be an RFC 3339 timestamp",
		},
		{
			name: "Due date accepted",
			requestBody: map[string]interface{}{
				"title":    "task",
				"due_date": "2025-12-01T09:00:00Z",
			},
			expectedStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doJSON(t, fiberApp, http.MethodPost, "/api/tasks", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedError != "" {
				assert.Contains(t, body["error"], tt.expectedError)
			} else {
				task := body["task"].(map[string]interface{})
				assert.NotEmpty(t, task["id"])
				assert.EqualValues(t, 1, task["position"])
			}
		})
	}
}

func TestUpdateTaskPositionHandler(t *testing.T) {
	application := setupTestDB(t)

	fiberApp := setupTestApp()
	fiberApp.Put("/api/tasks/:id/position", handlers.UpdateTaskPosition(application))

	task, err := application.Repo.CreateTask(&models.CreateTaskRequest{Title: "reorder me"})
	require.NoError(t, err)

	resp, _ := doJSON(t, fiberApp, http.MethodPut, "/api/tasks/"+task.ID+"/position",
		map[string]interface{}{"position": 7})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	tasks, err := application.Repo.GetAllTasks()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, 7, tasks[0].Position)

	resp, _ = doJSON(t, fiberApp, http.MethodPut, "/api/tasks/missing/position",
		map[string]interface{}{"position": 1})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMoveTaskHandler(t *testing.T) {
	application := setupTestDB(t)

	fiberApp := setupTestApp()
	fiberApp.Put("/api/tasks/:id/move", handlers.MoveTask(application))

	parent, err := application.Repo.CreateTask(&models.CreateTaskRequest{Title: "parent"})
	require.NoError(t, err)
	child, err := application.Repo.CreateTask(&models.CreateTaskRequest{Title: "child", ParentID: &parent.ID})
	require.NoError(t, err)

	t.Run("Valid move to root", func(t *testing.T) {
		resp, _ := doJSON(t, fiberApp, http.MethodPut, "/api/tasks/"+child.ID+"/move",
			map[string]interface{}{"parent_id": nil})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Cycle rejected with 400", func(t *testing.T) {
		resp, _ := doJSON(t, fiberApp, http.MethodPut, "/api/tasks/"+parent.ID+"/move",
			map[string]interface{}{"parent_id": parent.ID})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Unknown parent gets 404", func(t *testing.T) {
		resp, _ := doJSON(t, fiberApp, http.MethodPut, "/api/tasks/"+child.ID+"/move",
			map[string]interface{}{"parent_id": "ghost"})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestDeleteTaskHandler(t *testing.T) {
	application := setupTestDB(t)

	fiberApp := setupTestApp()
	fiberApp.Delete("/api/tasks/:id", handlers.DeleteTask(application))

	task, err := application.Repo.CreateTask(&models.CreateTaskRequest{Title: "short-lived"})
	require.NoError(t, err)

	resp, _ := doJSON(t, fiberApp, http.MethodDelete, "/api/tasks/"+task.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, fiberApp, http.MethodDelete, "/api/tasks/"+task.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
