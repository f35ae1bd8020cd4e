package keylog

import (
	"github.com/amirhossein-jamali/keylog/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/keylog/internal/domain/port/core"
)

// OverrideMarker prefixes lines emitted because of the override threshold
const OverrideMarker = "(Override):"

// Decision is the outcome of filtering a log call
type Decision int

const (
	// DecisionDrop means nothing is written
	DecisionDrop Decision = iota
	// DecisionEmit means the key's own threshold permits the message
	DecisionEmit
	// DecisionEmitOverride means only the override threshold permits the message
	DecisionEmitOverride
)

// String implements fmt.Stringer
func (d Decision) String() string {
	switch d {
	case DecisionEmit:
		return "emit"
	case DecisionEmitOverride:
		return "emit-override"
	default:
		return "drop"
	}
}

// decide checks the key's registered threshold first and falls back to
// the override threshold when the key is unregistered or too strict.
func decide(registry *entity.Registry, override entity.Level, key *entity.Key, level entity.Level) Decision {
	if !level.Loggable() {
		return DecisionDrop
	}
	if registered, ok := registry.Get(key); ok && registered <= level {
		return DecisionEmit
	}
	if override <= level {
		return DecisionEmitOverride
	}
	return DecisionDrop
}

// Decide reports what Log would do for key at level, without writing
func (s *Service) Decide(key *entity.Key, level entity.Level) Decision {
	s.mu.RLock()
	registry, override := s.registry, s.override
	s.mu.RUnlock()
	return decide(registry, override, key, level)
}

// Enabled reports whether Log would write for key at level
func (s *Service) Enabled(key *entity.Key, level entity.Level) bool {
	return s.Decide(key, level) != DecisionDrop
}

// Log writes data for key at level when permitted. The sink receives the
// level and key labels followed by data as separate arguments. Logging at
// LevelOff, or at an undefined level, never writes.
func (s *Service) Log(key *entity.Key, level entity.Level, data ...any) {
	s.mu.RLock()
	registry, override, sink := s.registry, s.override, s.sink
	s.mu.RUnlock()

	switch decide(registry, override, key, level) {
	case DecisionEmit:
		write(sink, false, key, level, data)
	case DecisionEmitOverride:
		write(sink, true, key, level, data)
	}
}

func write(sink coreport.Sink, overridden bool, key *entity.Key, level entity.Level, data []any) {
	args := make([]any, 0, len(data)+3)
	if overridden {
		args = append(args, OverrideMarker)
	}
	args = append(args, level.Display()+":", key.Display()+":")
	args = append(args, data...)
	sink.Write(args...)
}

// Debug logs data for key at LevelDebug
func (s *Service) Debug(key *entity.Key, data ...any) {
	s.Log(key, entity.LevelDebug, data...)
}

// Info logs data for key at LevelInfo
func (s *Service) Info(key *entity.Key, data ...any) {
	s.Log(key, entity.LevelInfo, data...)
}

// Warn logs data for key at LevelWarn
func (s *Service) Warn(key *entity.Key, data ...any) {
	s.Log(key, entity.LevelWarn, data...)
}

// Error logs data for key at LevelError
func (s *Service) Error(key *entity.Key, data ...any) {
	s.Log(key, entity.LevelError, data...)
}

type discardSink struct{}

func (discardSink) Write(...any) {}

func sinkOrDiscard(sink coreport.Sink) coreport.Sink {
	if sink == nil {
		return discardSink{}
	}
	return sink
}
