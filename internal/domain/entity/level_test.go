package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/keylog/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelDisplay(t *testing.T) {
	testCases := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "Debug"},
		{LevelInfo, "Info"},
		{LevelWarn, "Warn"},
		{LevelError, "Error"},
		{LevelOff, "Off"},
	}

	seen := make(map[string]Level)
	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.level.Display())
			assert.Equal(t, tc.expected, tc.level.String())
			// stable across calls
			assert.Equal(t, tc.level.Display(), tc.level.Display())
		})
		seen[tc.level.Display()] = tc.level
	}
	assert.Len(t, seen, 5, "display names must be one-to-one")
}

func TestLevelOrdering(t *testing.T) {
	levels := AllLevels()
	require.Len(t, levels, 5)

	for i := 1; i < len(levels); i++ {
		assert.Less(t, levels[i-1], levels[i])
	}
	assert.Equal(t, Level(0), LevelDebug)
	assert.Equal(t, Level(4), LevelOff)
}

func TestLevelValidity(t *testing.T) {
	assert.True(t, LevelOff.Valid())
	assert.False(t, LevelOff.Loggable())
	assert.True(t, LevelError.Loggable())
	assert.False(t, Level(-1).Valid())
	assert.False(t, Level(5).Valid())
	assert.Equal(t, "", Level(7).Display())
	assert.Equal(t, "Level(7)", Level(7).String())
}

func TestParseLevel(t *testing.T) {
	t.Run("Known names", func(t *testing.T) {
		testCases := map[string]Level{
			"debug":    LevelDebug,
			"INFO":     LevelInfo,
			"Warn":     LevelWarn,
			"warning":  LevelWarn,
			"error":    LevelError,
			"err":      LevelError,
			" off ":    LevelOff,
			"none":     LevelOff,
			"disabled": LevelOff,
		}

		for input, expected := range testCases {
			level, err := ParseLevel(input)
			require.NoError(t, err, input)
			assert.Equal(t, expected, level, input)
		}
	})

	t.Run("Unknown name", func(t *testing.T) {
		_, err := ParseLevel("loud")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrUnknownLevel)
		assert.Contains(t, err.Error(), `"loud"`)
	})
}

func TestMinLevel(t *testing.T) {
	assert.Equal(t, LevelInfo, MinLevel(LevelInfo, LevelError))
	assert.Equal(t, LevelInfo, MinLevel(LevelError, LevelInfo))
	assert.Equal(t, LevelWarn, MinLevel(LevelWarn, LevelWarn))
}
