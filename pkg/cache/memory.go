package cache

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrMiss is returned by Get for missing or expired keys.
var ErrMiss = errors.New("cache miss")

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// Memory is an in-process Service implementation. Expired entries are
// dropped lazily on access.
type Memory struct {
	mu     sync.RWMutex
	data   map[string]entry
	hits   int64
	misses int64

	now func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (m *Memory) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = m.now().Add(ttl)
	}

	m.mu.Lock()
	m.data[key] = entry{value: value, expiresAt: expiresAt}
	m.mu.Unlock()

	return nil
}

func (m *Memory) Get(_ context.Context, key string) (interface{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.data[key]
	if ok && !e.expiresAt.IsZero() && m.now().After(e.expiresAt) {
		delete(m.data, key)
		ok = false
	}

	if !ok {
		m.misses++
		return nil, ErrMiss
	}

	m.hits++
	return e.value, nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()

	return nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	m.data = make(map[string]entry)
	m.mu.Unlock()

	return nil
}

func (m *Memory) Stats(_ context.Context) (*Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return &Stats{
		Hits:   m.hits,
		Misses: m.misses,
		Keys:   int64(len(m.data)),
	}, nil
}
