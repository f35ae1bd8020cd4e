package usecase

import (
	"github.com/amirhossein-jamali/keylog/internal/domain/entity"
)

// KeyRegistry defines the registry operations of the keyed logging facade
type KeyRegistry interface {
	// GetRegistry returns the current registry; mutations through it are visible to the facade
	GetRegistry() *entity.Registry
	// SetRegistry replaces the current registry
	SetRegistry(registry *entity.Registry)
	// NewRegistry installs and returns a fresh empty registry
	NewRegistry() *entity.Registry

	// AddKey inserts key if absent and reports whether it was inserted
	AddKey(key *entity.Key, level entity.Level) bool
	// AddKeys applies AddKey to each pair, partitioning keys into accepted and discarded
	AddKeys(list []entity.KeyLevel) (accepted, discarded []*entity.Key)
	// SetKey overwrites the threshold of key
	SetKey(key *entity.Key, level entity.Level)
	// SetKeys applies SetKey to each pair in order
	SetKeys(list []entity.KeyLevel)
	// UpdateKey lowers the threshold of key and reports whether it changed
	UpdateKey(key *entity.Key, level entity.Level) bool
	// UpdateKeys applies UpdateKey to each pair, partitioning keys into updated and not updated
	UpdateKeys(list []entity.KeyLevel) (updated, notUpdated []*entity.Key)
	// RemoveKey unregisters key and reports whether it was registered
	RemoveKey(key *entity.Key) bool
}

// OverrideControl defines access to the global fallback threshold
type OverrideControl interface {
	// GetOverrideLevel returns the override threshold
	GetOverrideLevel() entity.Level
	// SetOverrideLevel sets the override threshold
	SetOverrideLevel(level entity.Level)
	// WrapOverride runs fn with the override threshold temporarily set to level
	WrapOverride(level entity.Level, fn func())
}

// KeyLogger is the complete keyed logging facade
type KeyLogger interface {
	KeyRegistry
	OverrideControl

	// Log writes data for key at level if the key's threshold or the override permits it
	Log(key *entity.Key, level entity.Level, data ...any)
	// Debug logs at LevelDebug
	Debug(key *entity.Key, data ...any)
	// Info logs at LevelInfo
	Info(key *entity.Key, data ...any)
	// Warn logs at LevelWarn
	Warn(key *entity.Key, data ...any)
	// Error logs at LevelError
	Error(key *entity.Key, data ...any)
}
