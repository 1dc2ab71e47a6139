package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/defaltsimon/pac-adventure/pkg/state"
)

// MockStore is an in-memory SaveStore for testing.
type MockStore struct {
	mu        sync.RWMutex
	saves     map[string]*state.SavedGame
	saveCount int
	pingError error
}

// Ensure MockStore implements SaveStore interface
var _ SaveStore = (*MockStore)(nil)

// NewMockStore creates a new mock store.
func NewMockStore() *MockStore {
	return &MockStore{
		saves: make(map[string]*state.SavedGame),
	}
}

// SetPingError configures the mock to fail on ping with the given error.
func (m *MockStore) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

// SaveCount returns how many times SaveGame has been called. Used to assert
// autosave cadence.
func (m *MockStore) SaveCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saveCount
}

// Ping mocks a health check.
func (m *MockStore) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

// Close mocks store shutdown.
func (m *MockStore) Close() error {
	return nil
}

// SaveGame stores a snapshot under the slug.
func (m *MockStore) SaveGame(ctx context.Context, slug string, sg *state.SavedGame) error {
	if sg == nil {
		return errors.New("saved game cannot be nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves[slug] = sg
	m.saveCount++
	return nil
}

// LoadGame returns the snapshot for the slug, or nil when absent.
func (m *MockStore) LoadGame(ctx context.Context, slug string) (*state.SavedGame, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sg, ok := m.saves[slug]
	if !ok {
		return nil, nil // Return nil for not found
	}
	return sg, nil
}

// DeleteGame removes the snapshot for the slug.
func (m *MockStore) DeleteGame(ctx context.Context, slug string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.saves, slug)
	return nil
}
