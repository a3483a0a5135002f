package tokenstore

import (
	"context"
	"sync"
)

// Memory is an in-process Store. Tokens do not survive a restart; it is
// the default backend and the one tests should use.
type Memory struct {
	mu     sync.RWMutex
	tokens map[string]string
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{tokens: make(map[string]string)}
}

func (m *Memory) Load(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	token, ok := m.tokens[key]
	if !ok {
		return "", ErrNotFound
	}
	return token, nil
}

func (m *Memory) Save(_ context.Context, key, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[key] = token
	return nil
}

func (m *Memory) Clear(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.tokens, key)
	}
	return nil
}
