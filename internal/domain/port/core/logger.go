package core

import "github.com/amirhossein-jamali/keylog/internal/domain/entity"

// Logger defines the application's own diagnostic logging operations.
// It is separate from the keyed facade, which writes through a Sink.
type Logger interface {
	// SetLevel sets the minimum log level to output; LevelOff silences the logger
	SetLevel(level entity.Level)
	// GetLevel gets the current log level
	GetLevel() entity.Level
	// Debug logs debug messages
	Debug(message string, fields map[string]any)
	// Info logs informational messages
	Info(message string, fields map[string]any)
	// Warn logs warning messages
	Warn(message string, fields map[string]any)
	// Error logs errors messages
	Error(message string, fields map[string]any)
	// Flush ensures all buffered logs are written to their destination
	Flush() error
}
