package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_WritesKeyValueFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(LevelDebug)
	logger := FromZap(zap.New(core))

	logger.WarnContext(context.Background(), "upstream failed", "path", "leagues/501", "error", errors.New("boom"), "dangling")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "upstream failed", entries[0].Message)
	assert.Equal(t, "leagues/501", fields["path"])
	assert.Equal(t, "boom", fields["error"])
	assert.Contains(t, fields, "dangling")
}

func TestLogger_WithAndNamed(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(LevelInfo)
	logger := FromZap(zap.New(core)).Named("sportmonks").With("component", "client")

	logger.Debug("hidden")
	logger.Info("visible")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "sportmonks", entries[0].LoggerName)
	assert.Equal(t, "client", entries[0].ContextMap()["component"])
}

func TestLogger_NilSafe(t *testing.T) {
	t.Parallel()

	var logger *Logger
	assert.NotPanics(t, func() {
		logger.Info("nothing happens")
		_ = logger.With("k", "v")
		_ = logger.Sync()
	})
}
