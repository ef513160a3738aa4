// Package ratelimit provides a named request pacer for external API clients.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// Pacer serializes requests to an upstream API at a fixed minimum interval.
// A single Pacer is shared by every client instance talking to the same
// provider, so concurrent callers are queued rather than bursting.
type Pacer struct {
	limiter *rate.Limiter
	name    string
}

// NewPacer creates a pacer that allows one request per interval with no
// burst headroom. Callers blocked in Wait are released one at a time.
func NewPacer(name string, interval time.Duration) *Pacer {
	return &Pacer{
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		name:    name,
	}
}

// Wait blocks until the pacer allows the next request. It returns early
// with the context's error if ctx is cancelled while waiting, in which
// case the caller must not issue the request.
func (p *Pacer) Wait(ctx context.Context) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait for %s: %w", p.name, err)
	}
	return nil
}
