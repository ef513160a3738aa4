// Package provider holds types shared by the external metadata clients.
package provider

import (
	"errors"
	"fmt"
)

// RateLimitError signals that a provider refused the request because the
// caller is over its quota (429 on UPCItemDB, 503 on MusicBrainz). It is
// propagated to the caller instead of being folded into "not found" so the
// caller can back off rather than assume no data exists.
type RateLimitError struct {
	Provider   string
	StatusCode int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s rate limited (status %d)", e.Provider, e.StatusCode)
}

// IsRateLimit reports whether err is a provider rate-limit signal.
func IsRateLimit(err error) bool {
	var rle *RateLimitError
	return errors.As(err, &rle)
}
