package error

import (
	"errors"
	"fmt"
)

// Error codes reported by configuration tooling
const (
	// 4xxx - Configuration errors
	CodeUnknownLevel  = 4001
	CodeUnknownPolicy = 4002
	CodeInvalidKey    = 4003
	CodeUnknownSink   = 4004
	CodeInvalidConfig = 4005

	// 5xxx - Internal errors
	CodeInternal = 5000
)

// Base error types
var (
	// ErrUnknownLevel is returned when a level name cannot be parsed
	ErrUnknownLevel = errors.New("unknown log level")

	// ErrUnknownPolicy is returned when a key entry names an unsupported merge policy
	ErrUnknownPolicy = errors.New("unknown merge policy")

	// ErrInvalidKey is returned when a key entry has neither a name nor a description
	ErrInvalidKey = errors.New("key must have a name or a description")

	// ErrUnknownSink is returned when the configured sink is not supported
	ErrUnknownSink = errors.New("unknown sink")

	// ErrInvalidConfig is returned when the configuration fails validation
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrUnknownLevel):
		return CodeUnknownLevel
	case errors.Is(err, ErrUnknownPolicy):
		return CodeUnknownPolicy
	case errors.Is(err, ErrInvalidKey):
		return CodeInvalidKey
	case errors.Is(err, ErrUnknownSink):
		return CodeUnknownSink
	case errors.Is(err, ErrInvalidConfig):
		return CodeInvalidConfig
	default:
		return CodeInternal
	}
}

// KeyConfigError describes a rejected key configuration entry
type KeyConfigError struct {
	Index int
	Name  string
	Value string
	Err   error
}

// Error implements the error interface for KeyConfigError
func (e *KeyConfigError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("key entry %d (%q): %v: %q", e.Index, e.Name, e.Err, e.Value)
	}
	return fmt.Sprintf("key entry %d (%q): %v", e.Index, e.Name, e.Err)
}

// Unwrap returns the underlying error
func (e *KeyConfigError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *KeyConfigError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "key_config_error",
		"index":      e.Index,
		"key":        e.Name,
		"value":      e.Value,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewKeyConfigError creates a detailed key configuration error
func NewKeyConfigError(index int, name, value string, err error) error {
	return &KeyConfigError{
		Index: index,
		Name:  name,
		Value: value,
		Err:   err,
	}
}

// IsUnknownLevelError checks if the error is caused by an unparseable level
func IsUnknownLevelError(err error) bool {
	return errors.Is(err, ErrUnknownLevel)
}

// IsKeyConfigError checks if the error originates from a key configuration entry
func IsKeyConfigError(err error) bool {
	var kcErr *KeyConfigError
	return errors.As(err, &kcErr)
}
