package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/amirhossein-jamali/keylog/internal/domain/entity"
)

func TestZapLogger_LevelFiltering(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLoggerFrom(zap.New(obsCore), entity.LevelWarn)

	l.Debug("debug", nil)
	l.Info("info", nil)
	l.Warn("warn", map[string]any{"key": "net"})
	l.Error("error", nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "warn", entries[0].Message)
	assert.Equal(t, "net", entries[0].ContextMap()["key"])
	assert.Equal(t, "error", entries[1].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestZapLogger_SetLevel(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLoggerFrom(zap.New(obsCore), entity.LevelInfo)
	assert.Equal(t, entity.LevelInfo, l.GetLevel())

	l.SetLevel(entity.LevelDebug)
	l.Debug("now visible", nil)
	assert.Equal(t, 1, logs.Len())

	l.SetLevel(entity.LevelOff)
	l.Error("silenced", nil)
	assert.Equal(t, 1, logs.Len())
	assert.NoError(t, l.Flush())
	assert.NotNil(t, l.Zap())
}

func TestBuildZap(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		t.Run(format, func(t *testing.T) {
			z, err := BuildZap(Options{Level: entity.LevelInfo, Format: format, Output: "stderr"})
			require.NoError(t, err)
			assert.True(t, z.Core().Enabled(zapcore.DebugLevel))
		})
	}

	t.Run("bad output path", func(t *testing.T) {
		_, err := NewZapLogger(Options{Output: "/nonexistent-dir/sub/keylog.log"})
		assert.Error(t, err)
	})
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	assert.Equal(t, entity.LevelOff, l.GetLevel())

	l.SetLevel(entity.LevelDebug)
	assert.Equal(t, entity.LevelDebug, l.GetLevel())

	assert.NotPanics(t, func() {
		l.Debug("x", nil)
		l.Info("x", nil)
		l.Warn("x", nil)
		l.Error("x", map[string]any{"a": 1})
	})
	assert.NoError(t, l.Flush())
}

func TestNewDefaultLogger(t *testing.T) {
	l := NewDefaultLogger()

	require.IsType(t, &ZapLogger{}, l)
	assert.Equal(t, entity.LevelInfo, l.GetLevel())
	assert.NotPanics(t, func() { l.Debug("filtered", nil) })
}
