package session

import (
	"context"
	"sync"
)

// Memory is an in-memory Store for tests and throwaway sessions.
type Memory struct {
	mu     sync.Mutex
	values map[string]string

	// SetErr, when non-nil, is returned by SetToken/SetLastUsername to
	// simulate storage failures.
	SetErr error
	// FailReads simulates a broken storage backend on reads: Token and
	// LastUsername behave as if the underlying call threw.
	FailReads bool
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) get(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailReads {
		return ""
	}
	return m.values[key]
}

func (m *Memory) set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	m.values[key] = value
	return nil
}

func (m *Memory) Token(ctx context.Context) string { return m.get(tokenKey) }

func (m *Memory) SetToken(ctx context.Context, token string) error { return m.set(tokenKey, token) }

func (m *Memory) Clear(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, tokenKey)
}

func (m *Memory) LastUsername(ctx context.Context) string { return m.get(usernameKey) }

func (m *Memory) SetLastUsername(ctx context.Context, username string) error {
	return m.set(usernameKey, username)
}
