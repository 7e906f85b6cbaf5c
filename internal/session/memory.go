package session

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// memoryBackend keeps sessions in a map owned by one registry instance.
type memoryBackend struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

// NewMemoryBackend returns an empty in-process [Backend]. Its contents are
// lost on restart.
func NewMemoryBackend() Backend {
	return &memoryBackend{sessions: make(map[string]models.Session)}
}

func (m *memoryBackend) Save(_ context.Context, s models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[s.ID]; ok {
		return ErrSessionExists
	}
	m.sessions[s.ID] = s
	return nil
}

func (m *memoryBackend) Load(_ context.Context, id string) (models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	return s, nil
}

func (m *memoryBackend) Delete(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return false, nil
	}
	delete(m.sessions, id)
	return true, nil
}
