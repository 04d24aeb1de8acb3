package server

import (
	"errors"
	"strconv"

	"taskboard/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten signals that the handler already wrote an error
// response and its caller should just return nil.
var errResponseWritten = errors.New("response written")

// parseID reads an integer path parameter. On failure it writes a 400
// response and returns errResponseWritten. Zero is well-formed and flows
// through to the store's not-found path.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+humanizeParam(name)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

func humanizeParam(name string) string {
	switch name {
	case "id":
		return "ID"
	default:
		return name
	}
}

// parsePagination reads the skip/limit query parameters. Negative values
// are clamped to the defaults; limit has no upper bound.
func parsePagination(c *fiber.Ctx) (skip, limit int) {
	skip = c.QueryInt("skip", 0)
	if skip < 0 {
		skip = 0
	}
	limit = c.QueryInt("limit", 100)
	if limit < 0 {
		limit = 100
	}
	return skip, limit
}

// mapServiceError converts a service-layer error into the HTTP response
// the API contract promises.
func mapServiceError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case models.CodeNotFound:
			return models.RespondWithError(c, fiber.StatusNotFound, appErr)
		case models.CodeConflict, models.CodeValidationError, models.CodeConstraintViolation:
			return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
		}
	}
	return models.RespondWithError(c, fiber.StatusInternalServerError,
		models.NewInternalError(err))
}
