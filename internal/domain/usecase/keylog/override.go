package keylog

import "github.com/amirhossein-jamali/keylog/internal/domain/entity"

// GetOverrideLevel returns the override threshold
func (s *Service) GetOverrideLevel() entity.Level {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.override
}

// SetOverrideLevel sets the override threshold
func (s *Service) SetOverrideLevel(level entity.Level) {
	s.mu.Lock()
	s.override = level
	s.mu.Unlock()
}

func (s *Service) swapOverride(level entity.Level) entity.Level {
	s.mu.Lock()
	defer s.mu.Unlock()
	previous := s.override
	s.override = level
	return previous
}

// WrapOverride runs fn with the override threshold set to level and then
// restores the previous threshold, also when fn panics. Nested calls on
// the same goroutine restore in order; calls racing from other goroutines
// are not isolated from each other.
func (s *Service) WrapOverride(level entity.Level, fn func()) {
	previous := s.swapOverride(level)
	defer s.SetOverrideLevel(previous)
	fn()
}
