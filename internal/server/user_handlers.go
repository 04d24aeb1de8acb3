package server

import (
	"taskboard/internal/models"
	"taskboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type updateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
	IsActive *bool   `json:"is_active"`
}

// CreateUser handles POST /users/
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.CreateUser(c.Context(), service.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// GetUsers handles GET /users/
func (s *Server) GetUsers(c *fiber.Ctx) error {
	skip, limit := parsePagination(c)

	users, err := s.userService.ListUsers(c.Context(), limit, skip)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(users)
}

// GetUser handles GET /users/:id
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUserByID(c.Context(), id)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(user)
}

// UpdateUser handles PUT /users/:id
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var req updateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateUser(c.Context(), id, service.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		IsActive: req.IsActive,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(user)
}

// DeleteUser handles DELETE /users/:id and removes the user's tasks with it.
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.userService.DeleteUser(c.Context(), id); err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

// GetUserTasks handles GET /users/:id/tasks
func (s *Server) GetUserTasks(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	tasks, err := s.taskService.ListTasksForUser(c.Context(), id)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(tasks)
}
