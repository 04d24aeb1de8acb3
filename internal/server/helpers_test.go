package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskboard/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"Not Found", models.NewNotFoundError("User", 1), http.StatusNotFound},
		{"Conflict", models.NewConflictError("Username or email already registered"), http.StatusBadRequest},
		{"Validation", models.NewValidationError("title is required"), http.StatusBadRequest},
		{"Constraint Violation", models.NewConstraintViolationError(errors.New("23505")), http.StatusBadRequest},
		{"Internal", models.NewInternalError(errors.New("boom")), http.StatusInternalServerError},
		{"Plain Error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return mapServiceError(c, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		expectedSkip  int
		expectedLimit int
	}{
		{"Defaults", "", 0, 100},
		{"Explicit", "?skip=20&limit=50", 20, 50},
		{"Negative Clamped", "?skip=-1&limit=-10", 0, 100},
		{"Large Limit Allowed", "?limit=5000", 0, 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			var skip, limit int
			app.Get("/", func(c *fiber.Ctx) error {
				skip, limit = parsePagination(c)
				return c.SendStatus(http.StatusOK)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/"+tt.query, nil))
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedSkip, skip)
			assert.Equal(t, tt.expectedLimit, limit)
		})
	}
}
