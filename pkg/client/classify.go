package client

import (
	"errors"
	"net/http"
)

// Outcome tags a failed call for the retry loop. Modeled as a returned
// value so the invoker branches on data, not on error identity.
type Outcome int

const (
	// OutcomeRetryable covers transport failures with no response at
	// all, plus 408 and 5xx statuses.
	OutcomeRetryable Outcome = iota

	// OutcomeFatal covers 4xx statuses (other than 408/429) that no
	// amount of retrying will fix.
	OutcomeFatal

	// OutcomeRateLimited is a 429. Never retried automatically; the
	// caller decides whether to wait.
	OutcomeRateLimited
)

// Classify maps a failed call's error to its retry outcome.
func Classify(err error) Outcome {
	var rle *RateLimitError
	if errors.As(err, &rle) {
		return OutcomeRateLimited
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		// No response at all: network failure or a timed-out attempt.
		return OutcomeRetryable
	}

	switch {
	case apiErr.StatusCode == http.StatusTooManyRequests:
		return OutcomeRateLimited
	case apiErr.StatusCode == http.StatusRequestTimeout:
		return OutcomeRetryable
	case apiErr.StatusCode >= 500:
		return OutcomeRetryable
	default:
		return OutcomeFatal
	}
}
