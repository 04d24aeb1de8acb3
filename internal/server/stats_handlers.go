package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetStats handles GET /stats and returns aggregate entity counts.
func (s *Server) GetStats(c *fiber.Ctx) error {
	stats, err := s.statsService.GetStats(c.Context())
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(stats)
}
