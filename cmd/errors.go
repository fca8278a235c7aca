package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/kazuma-desu/drop/pkg/client"
	"github.com/kazuma-desu/drop/pkg/exit"
)

// usageError marks bad invocations (invalid flag values, malformed
// arguments) so Execute can exit with the usage code.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// wrapNotConnectedError rewrites transport failures into a hint to
// run `drop login` first.
func wrapNotConnectedError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("not authenticated: %w (run 'drop login')", err)
	}

	return err
}

func exitCodeFor(err error) int {
	if err == nil {
		return exit.Success
	}

	var usageErr *usageError
	if errors.As(err, &usageErr) {
		return exit.UsageError
	}

	var rlErr *client.RateLimitError
	if errors.As(err, &rlErr) {
		return exit.RateLimited
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusNotFound:
			return exit.NotFound
		case http.StatusUnauthorized, http.StatusForbidden:
			return exit.GeneralError
		}
		return exit.GeneralError
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return exit.ConnectionError
	}

	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) {
		return exit.ConnectionError
	}

	return exit.GeneralError
}
