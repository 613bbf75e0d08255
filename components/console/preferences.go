package console

import (
	"context"
	"fmt"
	"sync"
)

// ViewPrefs captures per-operator adjustments to a list screen.
type ViewPrefs struct {
	PerPage        int
	DefaultFilters map[string]string
	Locale         string
}

// PreferenceStore persists view preferences per operator and screen.
type PreferenceStore interface {
	ViewPrefs(ctx context.Context, operatorID, screen string) (ViewPrefs, error)
	SaveViewPrefs(ctx context.Context, operatorID, screen string, prefs ViewPrefs) error
}

// InMemoryPreferenceStore provides a concurrency-safe default store.
type InMemoryPreferenceStore struct {
	mu   sync.RWMutex
	data map[string]ViewPrefs
}

// NewInMemoryPreferenceStore creates an empty preference store.
func NewInMemoryPreferenceStore() *InMemoryPreferenceStore {
	return &InMemoryPreferenceStore{data: make(map[string]ViewPrefs)}
}

// ViewPrefs returns stored preferences or defaults.
func (s *InMemoryPreferenceStore) ViewPrefs(_ context.Context, operatorID, screen string) (ViewPrefs, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if prefs, ok := s.data[s.key(operatorID, screen)]; ok {
		return prefs, nil
	}
	return ViewPrefs{PerPage: 10, DefaultFilters: map[string]string{}}, nil
}

// SaveViewPrefs persists preferences for an operator/screen pair.
func (s *InMemoryPreferenceStore) SaveViewPrefs(_ context.Context, operatorID, screen string, prefs ViewPrefs) error {
	if operatorID == "" {
		return fmt.Errorf("console: preference store requires an operator id")
	}
	if prefs.PerPage <= 0 {
		prefs.PerPage = 10
	}
	if prefs.DefaultFilters == nil {
		prefs.DefaultFilters = map[string]string{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[s.key(operatorID, screen)] = prefs
	return nil
}

func (s *InMemoryPreferenceStore) key(operatorID, screen string) string {
	return operatorID + "::" + screen
}
