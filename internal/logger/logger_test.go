// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRedaction(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.Info("credential loaded", "api_secret", "sk-live", "path", ".env", "max_tokens", 500)
	l.With("Authorization", "Bearer x").Debug("request")

	entries := logs.All()
	require.Len(t, entries, 2)

	fields := entries[0].ContextMap()
	assert.Equal(t, "[REDACTED]", fields["api_secret"])
	assert.Equal(t, ".env", fields["path"])
	assert.EqualValues(t, 500, fields["max_tokens"])

	assert.Equal(t, "[REDACTED]", entries[1].ContextMap()["Authorization"])
}

func TestRedactOddKeyValues(t *testing.T) {
	got := redact([]any{"model", "m", "dangling"})
	assert.Equal(t, []any{"model", "m", "dangling"}, got)
}

func TestIsSecretKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"secret", true},
		{"API_KEY", true},
		{"token", true},
		{"max_tokens", false},
		{"title", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, isSecretKey(tt.key))
		})
	}
}

func TestNewLevels(t *testing.T) {
	quiet, err := New("development", false)
	require.NoError(t, err)
	assert.False(t, quiet.sugar.Desugar().Core().Enabled(zapcore.InfoLevel))

	loud, err := New("production", true)
	require.NoError(t, err)
	assert.True(t, loud.sugar.Desugar().Core().Enabled(zapcore.DebugLevel))
}
