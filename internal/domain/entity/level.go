package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/keylog/internal/domain/error"
)

// Level is a log severity threshold. Lower values are more verbose.
type Level int

const (
	// LevelDebug for detailed debug information
	LevelDebug Level = iota
	// LevelInfo for general operational information
	LevelInfo
	// LevelWarn for warnings
	LevelWarn
	// LevelError for errors
	LevelError
	// LevelOff never emits; it is only meaningful as a threshold
	LevelOff
)

var levelDisplay = [...]string{
	LevelDebug: "Debug",
	LevelInfo:  "Info",
	LevelWarn:  "Warn",
	LevelError: "Error",
	LevelOff:   "Off",
}

// AllLevels returns every level in ascending order
func AllLevels() []Level {
	return []Level{LevelDebug, LevelInfo, LevelWarn, LevelError, LevelOff}
}

// Valid reports whether l is one of the five defined levels
func (l Level) Valid() bool {
	return l >= LevelDebug && l <= LevelOff
}

// Loggable reports whether a message may be logged at l.
// Off is a threshold only.
func (l Level) Loggable() bool {
	return l >= LevelDebug && l < LevelOff
}

// Display returns the capitalized display name of the level
func (l Level) Display() string {
	if !l.Valid() {
		return ""
	}
	return levelDisplay[l]
}

// String implements fmt.Stringer
func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelDisplay[l]
}

// ParseLevel parses a level name (case-insensitive)
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "off", "none", "disabled":
		return LevelOff, nil
	default:
		return LevelOff, fmt.Errorf("%w: %q", errs.ErrUnknownLevel, s)
	}
}

// MinLevel returns the more verbose of a and b
func MinLevel(a, b Level) Level {
	if b < a {
		return b
	}
	return a
}
