package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestSetLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"default level", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetLevel(tt.level)
			if Log == nil {
				t.Error("Expected logger to be initialized")
			}
		})
	}
}

func TestLoggerInitialization(t *testing.T) {
	if Log == nil {
		t.Error("Expected global logger to be initialized")
	}
}

func TestLoggerLevel(t *testing.T) {
	SetLevel("debug")
	if !Log.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("Debug level should be enabled")
	}

	SetLevel("error")
	if Log.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("Debug level should be disabled when level is error")
	}
}
