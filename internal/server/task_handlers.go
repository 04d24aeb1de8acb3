package server

import (
	"time"

	"taskboard/internal/models"
	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	OwnerID     uint       `json:"owner_id"`
}

type updateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}

// CreateTask handles POST /tasks/
func (s *Server) CreateTask(c *fiber.Ctx) error {
	var req createTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	task, err := s.taskService.CreateTask(c.Context(), service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		OwnerID:     req.OwnerID,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(task)
}

// GetTasks handles GET /tasks/ with optional status, priority and
// owner_id filters combined with AND semantics.
func (s *Server) GetTasks(c *fiber.Ctx) error {
	skip, limit := parsePagination(c)

	filter := repository.TaskFilter{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
	}
	if ownerID := c.QueryInt("owner_id", 0); ownerID > 0 {
		filter.OwnerID = uint(ownerID)
	}

	tasks, err := s.taskService.ListTasks(c.Context(), filter, limit, skip)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(tasks)
}

// GetTask handles GET /tasks/:id
func (s *Server) GetTask(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	task, err := s.taskService.GetTaskByID(c.Context(), id)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(task)
}

// UpdateTask handles PUT /tasks/:id
func (s *Server) UpdateTask(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var req updateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	task, err := s.taskService.UpdateTask(c.Context(), id, service.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(task)
}

// DeleteTask handles DELETE /tasks/:id
func (s *Server) DeleteTask(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.taskService.DeleteTask(c.Context(), id); err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Task deleted successfully"})
}
