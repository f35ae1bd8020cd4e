package keylog

import (
	"io"
	"sync/atomic"

	"github.com/amirhossein-jamali/keylog/internal/domain/entity"
	"github.com/amirhossein-jamali/keylog/internal/domain/port/core"
	facade "github.com/amirhossein-jamali/keylog/internal/domain/usecase/keylog"
	"github.com/amirhossein-jamali/keylog/internal/infrastructure/adapter/sink"
)

type (
	// Level is a log severity threshold
	Level = entity.Level
	// Key identifies a logging source by identity
	Key = entity.Key
	// KeyLevel pairs a key with a level for batch operations
	KeyLevel = entity.KeyLevel
	// Registry maps keys to thresholds
	Registry = entity.Registry
	// Sink receives accepted lines
	Sink = core.Sink
	// Facade is an isolated keyed logging instance
	Facade = facade.Service
	// Decision is the outcome of filtering a log call
	Decision = facade.Decision
)

// Levels in increasing priority
const (
	Debug = entity.LevelDebug
	Info  = entity.LevelInfo
	Warn  = entity.LevelWarn
	Error = entity.LevelError
	Off   = entity.LevelOff
)

// Filtering outcomes
const (
	DecisionDrop         = facade.DecisionDrop
	DecisionEmit         = facade.DecisionEmit
	DecisionEmitOverride = facade.DecisionEmitOverride
)

var std atomic.Pointer[facade.Service]

func init() {
	std.Store(facade.NewService(sink.NewStdoutSink()))
}

// Default returns the facade used by the package-level functions
func Default() *Facade {
	return std.Load()
}

// SetDefault replaces the facade used by the package-level functions
func SetDefault(f *Facade) {
	if f != nil {
		std.Store(f)
	}
}

// NewFacade creates an isolated facade writing to s
func NewFacade(s Sink) *Facade {
	return facade.NewService(s)
}

// NewWriterSink returns a sink writing console-style lines to w
func NewWriterSink(w io.Writer) Sink {
	return sink.NewConsoleSink(w)
}

// NewKey creates a key labelled by name
func NewKey(name string) *Key { return entity.NewKey(name) }

// NewDescribedKey creates a key labelled by description
func NewDescribedKey(description string) *Key { return entity.NewDescribedKey(description) }

// NewKeyWithDescription creates a key with both labels; the description is displayed
func NewKeyWithDescription(name, description string) *Key {
	return entity.NewKeyWithDescription(name, description)
}

// ParseLevel parses a level name
func ParseLevel(s string) (Level, error) { return entity.ParseLevel(s) }

// GetLevelDisplay returns the display name of level
func GetLevelDisplay(level Level) string { return level.Display() }

// GetRegistry returns the current registry of the default facade
func GetRegistry() *Registry { return Default().GetRegistry() }

// SetRegistry replaces the current registry of the default facade
func SetRegistry(registry *Registry) { Default().SetRegistry(registry) }

// NewRegistry installs and returns a fresh registry in the default facade
func NewRegistry() *Registry { return Default().NewRegistry() }

// AddKey registers key if absent and reports whether it was inserted
func AddKey(key *Key, level Level) bool { return Default().AddKey(key, level) }

// AddKeys applies AddKey to each pair in order
func AddKeys(list []KeyLevel) (accepted, discarded []*Key) { return Default().AddKeys(list) }

// SetKey overwrites the threshold of key
func SetKey(key *Key, level Level) { Default().SetKey(key, level) }

// SetKeys applies SetKey to each pair in order
func SetKeys(list []KeyLevel) { Default().SetKeys(list) }

// UpdateKey lowers the threshold of key and reports whether it changed
func UpdateKey(key *Key, level Level) bool { return Default().UpdateKey(key, level) }

// UpdateKeys applies UpdateKey to each pair in order
func UpdateKeys(list []KeyLevel) (updated, notUpdated []*Key) { return Default().UpdateKeys(list) }

// RemoveKey unregisters key
func RemoveKey(key *Key) bool { return Default().RemoveKey(key) }

// Log writes data for key at level when permitted
func Log(key *Key, level Level, data ...any) { Default().Log(key, level, data...) }

// LogDebug logs at Debug
func LogDebug(key *Key, data ...any) { Default().Debug(key, data...) }

// LogInfo logs at Info
func LogInfo(key *Key, data ...any) { Default().Info(key, data...) }

// LogWarn logs at Warn
func LogWarn(key *Key, data ...any) { Default().Warn(key, data...) }

// LogError logs at Error
func LogError(key *Key, data ...any) { Default().Error(key, data...) }

// Enabled reports whether Log would write for key at level
func Enabled(key *Key, level Level) bool { return Default().Enabled(key, level) }

// GetOverrideLevel returns the override threshold of the default facade
func GetOverrideLevel() Level { return Default().GetOverrideLevel() }

// SetOverrideLevel sets the override threshold of the default facade
func SetOverrideLevel(level Level) { Default().SetOverrideLevel(level) }

// WrapOverride runs fn with the override threshold temporarily set to level
func WrapOverride(level Level, fn func()) { Default().WrapOverride(level, fn) }
