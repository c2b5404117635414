package oneinch

import (
	"errors"
	"fmt"
)

// Sentinel errors for upstream statuses that handlers special-case
var (
	// ErrUnauthorized indicates the portal rejected the configured API key
	ErrUnauthorized = errors.New("upstream authorization failed")

	// ErrRateLimited indicates the upstream kept responding 429 after all
	// retry attempts
	ErrRateLimited = errors.New("upstream rate limited")
)

// UpstreamError carries a non-success upstream status and body excerpt
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream request failed with status %d: %s", e.StatusCode, e.Body)
}
