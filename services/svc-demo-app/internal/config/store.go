package config

import "sync/atomic"

// Store publishes the current configuration. Reloads swap in a fresh copy so
// readers never observe a half-applied update.
type Store struct {
	current atomic.Pointer[ServiceConfig]
}

func NewStore(cfg *ServiceConfig) *Store {
	s := &Store{}
	s.current.Store(cfg)

	return s
}

func (s *Store) Load() *ServiceConfig {
	return s.current.Load()
}

// Update applies fn to a copy of the current configuration and publishes it.
func (s *Store) Update(fn func(cfg *ServiceConfig) error) error {
	next := *s.current.Load()

	if err := fn(&next); err != nil {
		return err
	}

	s.current.Store(&next)

	return nil
}
