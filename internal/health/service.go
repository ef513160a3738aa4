package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"

	"github.com/homeshelf/homeshelf/internal/lookup"
)

// ProviderStatus is the reported health of one metadata provider.
// All state is in-memory and resets on application restart.
type ProviderStatus struct {
	Name        string    `json:"name"`
	Configured  bool      `json:"configured"`
	Healthy     bool      `json:"healthy"`
	Message     string    `json:"message,omitempty"`
	LastChecked time.Time `json:"lastChecked"`
}

// Service tracks provider health and refreshes it on a fixed schedule.
type Service struct {
	clients   []lookup.ProviderClient
	statuses  map[string]ProviderStatus
	mu        sync.RWMutex
	scheduler gocron.Scheduler
	interval  time.Duration
	logger    zerolog.Logger
}

// NewService creates a health service over the given provider clients.
func NewService(clients []lookup.ProviderClient, interval time.Duration, logger zerolog.Logger) (*Service, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Service{
		clients:   clients,
		statuses:  make(map[string]ProviderStatus, len(clients)),
		scheduler: scheduler,
		interval:  interval,
		logger:    logger.With().Str("component", "health").Logger(),
	}, nil
}

// Start runs an initial check and schedules periodic refreshes.
func (s *Service) Start(ctx context.Context) error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func() { s.CheckAll(ctx) }),
		gocron.WithName("provider-health"),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule health checks: %w", err)
	}

	s.scheduler.Start()
	go s.CheckAll(ctx)
	return nil
}

// Stop shuts the scheduler down.
func (s *Service) Stop() error {
	return s.scheduler.Shutdown()
}

// CheckAll probes every provider and records the outcome. Unconfigured
// providers are recorded as such without probing.
func (s *Service) CheckAll(ctx context.Context) {
	for _, client := range s.clients {
		status := ProviderStatus{
			Name:        client.Name(),
			Configured:  client.IsConfigured(),
			LastChecked: time.Now().UTC(),
		}

		if !status.Configured {
			status.Message = "not configured"
		} else {
			checkCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			err := client.Test(checkCtx)
			cancel()
			if err != nil {
				status.Message = err.Error()
				s.logger.Warn().
					Str("provider", status.Name).
					Err(err).
					Msg("Provider health check failed")
			} else {
				status.Healthy = true
			}
		}

		s.mu.Lock()
		s.statuses[status.Name] = status
		s.mu.Unlock()
	}
}

// Statuses returns the latest status for every provider, in client order.
func (s *Service) Statuses() []ProviderStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ProviderStatus, 0, len(s.clients))
	for _, client := range s.clients {
		if status, ok := s.statuses[client.Name()]; ok {
			out = append(out, status)
			continue
		}
		out = append(out, ProviderStatus{
			Name:       client.Name(),
			Configured: client.IsConfigured(),
			Message:    "not checked yet",
		})
	}
	return out
}
