package client

import (
	"context"
	"time"
)

// MaxRetries is the number of retries after the initial attempt, so a
// call that keeps failing runs 1+MaxRetries times.
const MaxRetries = 3

// backoffDelay is swapped out in tests to avoid real sleeps.
var backoffDelay = Delay

// Invoke executes one remote call with retries. Fatal and rate-limited
// failures propagate immediately; retryable ones sleep for the backoff
// delay and run again until the attempt cap, after which the last error
// is returned. The backoff sleep races ctx so cancellation is prompt.
//
// Invoke never logs; it returns structured errors for the caller to
// present.
func Invoke(ctx context.Context, call func() error) error {
	var lastErr error
	for attempt := 0; ; attempt++ {
		err := call()
		if err == nil {
			return nil
		}

		switch Classify(err) {
		case OutcomeFatal, OutcomeRateLimited:
			return err
		}

		lastErr = err
		if attempt >= MaxRetries {
			return lastErr
		}

		timer := time.NewTimer(backoffDelay(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
