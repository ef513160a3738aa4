package api

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/homeshelf/homeshelf/internal/catalog"
	"github.com/homeshelf/homeshelf/internal/config"
	"github.com/homeshelf/homeshelf/internal/health"
	"github.com/homeshelf/homeshelf/internal/lookup"
)

// providerCheckInterval is how often provider health is refreshed.
const providerCheckInterval = 15 * time.Minute

// Server handles HTTP requests for the HomeShelf API.
type Server struct {
	echo   *echo.Echo
	db     *sql.DB
	cfg    *config.Config
	logger zerolog.Logger

	lookupService   *lookup.Service
	catalogService  *catalog.Service
	catalogHandlers *catalog.Handlers
	healthService   *health.Service
}

// NewServer creates a new API server instance.
func NewServer(db *sql.DB, cfg *config.Config, logger zerolog.Logger) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:   e,
		db:     db,
		cfg:    cfg,
		logger: logger,
	}

	s.lookupService = lookup.NewService(&cfg.Lookup, logger)
	s.catalogService = catalog.NewService(db, logger)
	s.catalogHandlers = catalog.NewHandlers(s.catalogService)

	healthService, err := health.NewService(s.lookupService.Clients(), providerCheckInterval, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create health service: %w", err)
	}
	s.healthService = healthService

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

// Start begins background services and listens for HTTP requests. It
// blocks until the server stops.
func (s *Server) Start(ctx context.Context) error {
	if err := s.healthService.Start(ctx); err != nil {
		return err
	}

	addr := s.cfg.Server.Address()
	s.logger.Info().Str("addr", addr).Msg("starting HTTP server")

	if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown stops background services and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.healthService.Stop(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to stop health service")
	}
	return s.echo.Shutdown(ctx)
}
