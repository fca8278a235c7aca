package client

import (
	"fmt"
	"time"
)

// APIError is the structured failure for a non-2xx response from the
// bookmark service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned HTTP %d: %s", e.StatusCode, e.Message)
}

// RateLimitError is returned for a 429 response. It is never retried
// automatically; it carries the advisory headers so the caller can
// decide whether to wait.
type RateLimitError struct {
	Info RateLimitInfo
}

func (e *RateLimitError) Error() string {
	msg := "rate limited by server"
	if e.Info.Limit != nil {
		msg += fmt.Sprintf(" (limit %d)", *e.Info.Limit)
	}
	if reset, ok := e.Info.ResetTime(); ok {
		msg += fmt.Sprintf(", resets at %s", reset.Format(time.RFC3339))
	}
	return msg
}
