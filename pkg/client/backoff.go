package client

import (
	"math/rand/v2"
	"time"
)

const (
	// backoffBase is the delay before the first retry.
	backoffBase = 1 * time.Second

	// backoffCap bounds the delay regardless of attempt index.
	backoffCap = 30 * time.Second
)

// Delay returns the backoff delay for the given 0-based retry attempt:
// backoffBase doubled per attempt up to backoffCap, plus up to 25%
// uniformly-random jitter, clamped back to the cap. Doubling stops at
// the cap, so arbitrarily large attempt indices cannot overflow.
func Delay(attempt int) time.Duration {
	d := backoffBase
	for i := 0; i < attempt && d < backoffCap; i++ {
		d *= 2
	}
	if d > backoffCap {
		d = backoffCap
	}

	d += time.Duration(rand.Int64N(int64(d)/4 + 1))
	if d > backoffCap {
		d = backoffCap
	}
	return d
}
