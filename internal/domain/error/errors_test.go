package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrUnknownLevel.Error() != "unknown log level" {
		t.Errorf("ErrUnknownLevel has unexpected message: %s", ErrUnknownLevel.Error())
	}
	if ErrUnknownPolicy.Error() != "unknown merge policy" {
		t.Errorf("ErrUnknownPolicy has unexpected message: %s", ErrUnknownPolicy.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"UnknownLevel", ErrUnknownLevel, 4001},
		{"UnknownPolicy", ErrUnknownPolicy, 4002},
		{"InvalidKey", ErrInvalidKey, 4003},
		{"UnknownSink", ErrUnknownSink, 4004},
		{"InvalidConfig", ErrInvalidConfig, 4005},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrUnknownSink), 4004},
		{"KeyConfigError", NewKeyConfigError(0, "net", "loud", ErrUnknownLevel), 4001},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestKeyConfigError(t *testing.T) {
	kcErr := &KeyConfigError{
		Index: 2,
		Name:  "net",
		Value: "loud",
		Err:   ErrUnknownLevel,
	}

	expectedErrMsg := `key entry 2 ("net"): unknown log level: "loud"`
	if kcErr.Error() != expectedErrMsg {
		t.Errorf("KeyConfigError.Error() = %s, want %s", kcErr.Error(), expectedErrMsg)
	}

	if !errors.Is(kcErr, ErrUnknownLevel) {
		t.Errorf("errors.Is(kcErr, ErrUnknownLevel) = false, want true")
	}

	noValue := &KeyConfigError{Index: 0, Err: ErrInvalidKey}
	if got, want := noValue.Error(), `key entry 0 (""): key must have a name or a description`; got != want {
		t.Errorf("KeyConfigError.Error() = %s, want %s", got, want)
	}

	fields := kcErr.LogFields()
	if fields["error_code"] != CodeUnknownLevel {
		t.Errorf("LogFields()[error_code] = %v, want %d", fields["error_code"], CodeUnknownLevel)
	}
	if fields["key"] != "net" {
		t.Errorf("LogFields()[key] = %v, want net", fields["key"])
	}
}

func TestErrorHelpers(t *testing.T) {
	wrapped := fmt.Errorf("loading: %w", NewKeyConfigError(1, "db", "x", ErrUnknownLevel))

	if !IsUnknownLevelError(wrapped) {
		t.Errorf("IsUnknownLevelError(wrapped) = false, want true")
	}
	if !IsKeyConfigError(wrapped) {
		t.Errorf("IsKeyConfigError(wrapped) = false, want true")
	}
	if IsKeyConfigError(ErrUnknownLevel) {
		t.Errorf("IsKeyConfigError(ErrUnknownLevel) = true, want false")
	}
}
