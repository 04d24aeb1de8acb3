package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskboard/internal/config"
	"taskboard/internal/models"
	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupLifecycleApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Task{}); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	s := &Server{
		config:   &config.Config{Port: "8000"},
		db:       db,
		userRepo: userRepo,
		taskRepo: taskRepo,
	}
	s.userService = service.NewUserService(userRepo)
	s.taskService = service.NewTaskService(taskRepo, userRepo)
	s.statsService = service.NewStatsService(userRepo, taskRepo)

	app := fiber.New()
	s.SetupRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, out interface{}) int {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestTaskLifecycle(t *testing.T) {
	app := setupLifecycleApp(t)

	// Create a user
	var alice models.User
	status := doJSON(t, app, http.MethodPost, "/users/", map[string]interface{}{
		"username":  "alice",
		"email":     "alice@example.com",
		"full_name": "Alice Smith",
	}, &alice)
	require.Equal(t, http.StatusCreated, status)
	assert.True(t, alice.IsActive)
	assert.NotZero(t, alice.ID)

	// Duplicate username is rejected
	var errResp models.ErrorResponse
	status = doJSON(t, app, http.MethodPost, "/users/", map[string]interface{}{
		"username":  "alice",
		"email":     "second@example.com",
		"full_name": "Second Alice",
	}, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Username or email already registered", errResp.Error)

	// Create a task owned by alice; status and priority default
	var task models.Task
	status = doJSON(t, app, http.MethodPost, "/tasks/", map[string]interface{}{
		"title":    "Write report",
		"owner_id": alice.ID,
	}, &task)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, models.TaskStatusPending, task.Status)
	assert.Equal(t, models.TaskPriorityMedium, task.Priority)
	assert.Equal(t, "alice", task.Owner.Username, "owner is embedded in task responses")

	// Task creation for a missing owner fails
	status = doJSON(t, app, http.MethodPost, "/tasks/", map[string]interface{}{
		"title":    "Orphan",
		"owner_id": 999,
	}, nil)
	assert.Equal(t, http.StatusNotFound, status)

	// Stats reflect one pending task
	var stats service.Stats
	status = doJSON(t, app, http.MethodGet, "/stats", nil, &stats)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(1), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.TotalTasks)
	assert.Equal(t, int64(1), stats.PendingTasks)
	assert.Equal(t, int64(0), stats.CompletedTasks)

	// Complete the task via partial update
	var updated models.Task
	status = doJSON(t, app, http.MethodPut, "/tasks/1", map[string]interface{}{
		"status": "completed",
	}, &updated)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.TaskStatusCompleted, updated.Status)
	assert.Equal(t, "Write report", updated.Title, "title untouched by partial update")
	assert.False(t, updated.UpdatedAt.IsZero())

	status = doJSON(t, app, http.MethodGet, "/stats", nil, &stats)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(0), stats.PendingTasks)
	assert.Equal(t, int64(1), stats.CompletedTasks)

	// Filtered listing only returns matches
	var completed []models.Task
	status = doJSON(t, app, http.MethodGet, "/tasks/?status=completed", nil, &completed)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, completed, 1)

	var pending []models.Task
	status = doJSON(t, app, http.MethodGet, "/tasks/?status=pending", nil, &pending)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, pending)

	// Deleting the user removes their tasks with them
	status = doJSON(t, app, http.MethodDelete, "/users/1", nil, nil)
	require.Equal(t, http.StatusOK, status)

	status = doJSON(t, app, http.MethodGet, "/tasks/1", nil, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status = doJSON(t, app, http.MethodGet, "/stats", nil, &stats)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(0), stats.TotalUsers)
	assert.Equal(t, int64(0), stats.TotalTasks)
}

func TestUserUpdateLifecycle(t *testing.T) {
	app := setupLifecycleApp(t)

	var alice, bob models.User
	require.Equal(t, http.StatusCreated, doJSON(t, app, http.MethodPost, "/users/", map[string]interface{}{
		"username": "alice", "email": "alice@example.com", "full_name": "Alice Smith",
	}, &alice))
	require.Equal(t, http.StatusCreated, doJSON(t, app, http.MethodPost, "/users/", map[string]interface{}{
		"username": "bob", "email": "bob@example.com", "full_name": "Bob Brown",
	}, &bob))

	// Renaming bob to alice's username is rejected
	status := doJSON(t, app, http.MethodPut, "/users/2", map[string]interface{}{
		"username": "alice",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	// A no-op rename to his own name is fine
	var updated models.User
	status = doJSON(t, app, http.MethodPut, "/users/2", map[string]interface{}{
		"username": "bob", "is_active": false,
	}, &updated)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "bob", updated.Username)
	assert.False(t, updated.IsActive)

	// Listing is ordered by id ascending
	var users []models.User
	status = doJSON(t, app, http.MethodGet, "/users/", nil, &users)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
}
