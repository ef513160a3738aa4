package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeshelf/homeshelf/internal/config"
)

// handleProviderHealth returns the latest provider health snapshot.
// GET /api/v1/health/providers
func (s *Server) handleProviderHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, s.healthService.Statuses())
}

// handleSystemStatus returns version and catalog counts.
// GET /api/v1/system/status
func (s *Server) handleSystemStatus(c echo.Context) error {
	counts, err := s.catalogService.Count(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"version": config.Version,
		"items":   counts,
	})
}
