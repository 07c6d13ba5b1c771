package main

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"questboard/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLogLevel(tt.input))
		})
	}
}

func TestGetEnvironment(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Log.Level = "debug"
	assert.Equal(t, "development", getEnvironment(cfg))

	cfg = config.DefaultConfig()
	cfg.Auth.JWTSecret = "deployment-secret"
	assert.Equal(t, "production", getEnvironment(cfg))

	cfg = config.DefaultConfig()
	assert.Equal(t, "unknown", getEnvironment(cfg))
}

func TestSetupLogger_Formats(t *testing.T) {
	for _, format := range []string{"json", "text", "other"} {
		t.Run(format, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Log.Format = format
			logger := setupLogger(cfg)
			assert.NotNil(t, logger)
		})
	}
}

func TestContainerOption_WithLogger(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	c := &Container{}
	WithLogger(logger)(c)
	assert.Same(t, logger, c.Logger)
}

func TestContainer_Close_NoResources(t *testing.T) {
	c := &Container{}
	assert.NoError(t, c.Close())
}

func TestContainer_Ready_NoResources(t *testing.T) {
	c := &Container{Logger: slog.New(slog.DiscardHandler)}
	assert.False(t, c.Ready(t.Context()))
}

func TestGracefulShutdownSleepConstant(t *testing.T) {
	assert.Equal(t, 100*time.Millisecond, gracefulShutdownSleep)
}
