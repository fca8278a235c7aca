// Package testutil provides utilities for testing.
package testutil

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// CaptureStdout captures everything f writes to stdout and returns it
// together with f's error. A panic inside f is recovered and converted
// to an error so stdout is always restored.
func CaptureStdout(f func() error) (string, error) {
	old := os.Stdout
	r, w, pipeErr := os.Pipe()
	if pipeErr != nil {
		return "", fmt.Errorf("captureStdout: failed to create pipe: %w", pipeErr)
	}

	// Drain the pipe concurrently so large outputs don't block the writer.
	outCh := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		outCh <- buf.String()
	}()

	os.Stdout = w

	var fErr error
	func() {
		defer func() {
			if rec := recover(); rec != nil {
				fErr = fmt.Errorf("captureStdout: f() panicked: %v", rec)
			}
		}()
		fErr = f()
	}()

	_ = w.Close()
	os.Stdout = old

	return <-outCh, fErr
}
