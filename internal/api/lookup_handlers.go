package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeshelf/homeshelf/internal/catalog"
	"github.com/homeshelf/homeshelf/internal/lookup"
	"github.com/homeshelf/homeshelf/internal/lookup/provider"
)

// lookupResponse pairs the normalized result with a pre-filled catalog
// create payload.
type lookupResponse struct {
	Result *lookup.Result           `json:"result"`
	Item   *catalog.CreateItemInput `json:"item"`
}

// handleLookup resolves an identifier to normalized metadata.
// GET /api/v1/lookup/:media?kind=isbn&value=9780134190440
func (s *Server) handleLookup(c echo.Context) error {
	media, err := lookup.ParseMediaType(c.Param("media"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	kind, err := lookup.ParseIdentifierKind(c.QueryParam("kind"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	value := c.QueryParam("value")
	if value == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "value is required")
	}

	result, err := s.lookupService.Lookup(c.Request().Context(), media, kind, value)
	if err != nil {
		var unsupported *lookup.UnsupportedError
		var rateLimited *provider.RateLimitError
		switch {
		case errors.Is(err, lookup.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "no matching record")
		case errors.As(err, &unsupported):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.As(err, &rateLimited):
			return echo.NewHTTPError(http.StatusTooManyRequests, err.Error())
		default:
			return echo.NewHTTPError(http.StatusBadGateway, err.Error())
		}
	}

	return c.JSON(http.StatusOK, lookupResponse{
		Result: result,
		Item:   catalog.InputFromLookup(result, kind, value),
	})
}
