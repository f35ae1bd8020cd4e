package logger

import (
	"github.com/amirhossein-jamali/keylog/internal/domain/entity"
	"github.com/amirhossein-jamali/keylog/internal/domain/port/core"
)

// NoopLogger implements the Logger interface but doesn't do anything.
// Used when logger.output is "none".
type NoopLogger struct {
	level entity.Level
}

// NewNoopLogger creates a new no-op logger
func NewNoopLogger() core.Logger {
	return &NoopLogger{
		level: entity.LevelOff,
	}
}

// SetLevel records the level; nothing is ever written
func (l *NoopLogger) SetLevel(level entity.Level) {
	l.level = level
}

// GetLevel gets the current log level
func (l *NoopLogger) GetLevel() entity.Level {
	return l.level
}

// Debug logs debug messages
func (l *NoopLogger) Debug(message string, fields map[string]any) {}

// Info logs informational messages
func (l *NoopLogger) Info(message string, fields map[string]any) {}

// Warn logs warning messages
func (l *NoopLogger) Warn(message string, fields map[string]any) {}

// Error logs errors messages
func (l *NoopLogger) Error(message string, fields map[string]any) {}

// Flush is a no-op
func (l *NoopLogger) Flush() error {
	return nil
}
