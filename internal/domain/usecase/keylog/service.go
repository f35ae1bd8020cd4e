package keylog

import (
	"sync"

	"github.com/amirhossein-jamali/keylog/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/keylog/internal/domain/port/core"
	"github.com/amirhossein-jamali/keylog/internal/domain/port/usecase"
)

// Service is the keyed logging facade. It owns the current registry, the
// override threshold and the sink accepted lines are written to.
type Service struct {
	mu       sync.RWMutex
	registry *entity.Registry
	override entity.Level
	sink     coreport.Sink
}

var _ usecase.KeyLogger = (*Service)(nil)

// NewService creates a facade with an empty registry, the override set to
// LevelOff, and the given sink. A nil sink discards every line.
func NewService(sink coreport.Sink) *Service {
	return &Service{
		registry: entity.NewRegistry(),
		override: entity.LevelOff,
		sink:     sinkOrDiscard(sink),
	}
}

// GetSink returns the sink lines are written to
func (s *Service) GetSink() coreport.Sink {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sink
}

// SetSink replaces the sink; nil installs a discarding sink
func (s *Service) SetSink(sink coreport.Sink) {
	s.mu.Lock()
	s.sink = sinkOrDiscard(sink)
	s.mu.Unlock()
}

// GetRegistry returns the current registry
func (s *Service) GetRegistry() *entity.Registry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry
}

// SetRegistry replaces the current registry without validation.
// A nil registry is replaced by an empty one.
func (s *Service) SetRegistry(registry *entity.Registry) {
	if registry == nil {
		registry = entity.NewRegistry()
	}
	s.mu.Lock()
	s.registry = registry
	s.mu.Unlock()
}

// NewRegistry installs a fresh empty registry and returns it
func (s *Service) NewRegistry() *entity.Registry {
	registry := entity.NewRegistry()
	s.SetRegistry(registry)
	return registry
}

// AddKey registers key at level if it is not registered yet and reports
// whether it was inserted. A registered key keeps the more verbose level.
func (s *Service) AddKey(key *entity.Key, level entity.Level) bool {
	return s.GetRegistry().Add(key, level)
}

// AddKeys applies AddKey to each pair in order. Pairs with a nil key are
// skipped and appear in neither result.
func (s *Service) AddKeys(list []entity.KeyLevel) (accepted, discarded []*entity.Key) {
	registry := s.GetRegistry()
	accepted = make([]*entity.Key, 0, len(list))
	discarded = make([]*entity.Key, 0)
	for _, kl := range list {
		if kl.Key == nil {
			continue
		}
		if registry.Add(kl.Key, kl.Level) {
			accepted = append(accepted, kl.Key)
		} else {
			discarded = append(discarded, kl.Key)
		}
	}
	return accepted, discarded
}

// SetKey overwrites the threshold of key
func (s *Service) SetKey(key *entity.Key, level entity.Level) {
	s.GetRegistry().Set(key, level)
}

// SetKeys applies SetKey to each pair in order
func (s *Service) SetKeys(list []entity.KeyLevel) {
	registry := s.GetRegistry()
	for _, kl := range list {
		registry.Set(kl.Key, kl.Level)
	}
}

// UpdateKey lowers the threshold of key, inserting it when absent.
// It reports whether the stored level changed.
func (s *Service) UpdateKey(key *entity.Key, level entity.Level) bool {
	return s.GetRegistry().Update(key, level)
}

// UpdateKeys applies UpdateKey to each pair in order. Pairs with a nil key
// are skipped and appear in neither result.
func (s *Service) UpdateKeys(list []entity.KeyLevel) (updated, notUpdated []*entity.Key) {
	registry := s.GetRegistry()
	updated = make([]*entity.Key, 0, len(list))
	notUpdated = make([]*entity.Key, 0)
	for _, kl := range list {
		if kl.Key == nil {
			continue
		}
		if registry.Update(kl.Key, kl.Level) {
			updated = append(updated, kl.Key)
		} else {
			notUpdated = append(notUpdated, kl.Key)
		}
	}
	return updated, notUpdated
}

// RemoveKey unregisters key
func (s *Service) RemoveKey(key *entity.Key) bool {
	return s.GetRegistry().Remove(key)
}
