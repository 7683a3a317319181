package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"neuralink-backend/internal/config"
)

func TestNewLoggerByEnvironment(t *testing.T) {
	logger := newLogger(&config.Config{Env: config.EnvProduction, LogLevel: slog.LevelWarn})
	_, isJSON := logger.Handler().(*slog.JSONHandler)
	require.True(t, isJSON)
	require.False(t, logger.Enabled(context.Background(), slog.LevelInfo))

	logger = newLogger(&config.Config{Env: config.EnvDevelopment, LogLevel: slog.LevelDebug})
	_, isText := logger.Handler().(*slog.TextHandler)
	require.True(t, isText)
	require.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}
