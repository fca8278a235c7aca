package client

import (
	"net/http"
	"strconv"
	"time"
)

// Header names advertised by the service. Lookup through http.Header is
// case-insensitive, matching however the server spells them.
const (
	headerRateLimitLimit     = "X-RateLimit-Limit"
	headerRateLimitRemaining = "RateLimit-Remaining"
	headerRateLimitReset     = "X-RateLimit-Reset"
)

// RateLimitInfo holds the advisory throttling headers of one response.
// A nil field means the header was not present; absence is not zero.
type RateLimitInfo struct {
	Limit     *int64 // total requests allowed in the window
	Remaining *int64 // requests left in the window
	Reset     *int64 // window end, epoch seconds
}

// ExtractRateLimit parses the three advisory headers from a response.
// Each field is independent: a missing or unparsable header leaves its
// field nil without affecting the others.
func ExtractRateLimit(h http.Header) RateLimitInfo {
	return RateLimitInfo{
		Limit:     headerInt(h, headerRateLimitLimit),
		Remaining: headerInt(h, headerRateLimitRemaining),
		Reset:     headerInt(h, headerRateLimitReset),
	}
}

// ResetTime converts the reset header into a wall-clock time.
func (i RateLimitInfo) ResetTime() (time.Time, bool) {
	if i.Reset == nil {
		return time.Time{}, false
	}
	return time.Unix(*i.Reset, 0), true
}

func headerInt(h http.Header, name string) *int64 {
	raw := h.Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}
