// Package cache provides the in-process TTL store backing the content
// gateway's advisory revalidation policy.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/goliatone/go-storefront/pkg/interfaces"
)

// Memory is a process-lifetime TTL cache. Reads never block refreshes:
// expired entries simply miss, and concurrent writers race benignly (last
// write wins, at most one stale read per TTL window).
type Memory struct {
	mu         sync.RWMutex
	entries    map[string]entry
	defaultTTL time.Duration
	now        func() time.Time
}

type entry struct {
	value     any
	expiresAt time.Time
}

// Option configures a Memory cache.
type Option func(*Memory)

// WithClock overrides the internal time source.
func WithClock(clock func() time.Time) Option {
	return func(m *Memory) {
		if clock != nil {
			m.now = clock
		}
	}
}

// NewMemory constructs a memory cache with the given default TTL.
func NewMemory(defaultTTL time.Duration, opts ...Option) *Memory {
	m := &Memory{
		entries:    make(map[string]entry),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var _ interfaces.CacheProvider = (*Memory)(nil)

// Get returns the cached value or (nil, nil) on a miss or expired entry.
// Expired entries are dropped lazily on the next write to the same key.
func (m *Memory) Get(_ context.Context, key string) (any, error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok || m.now().After(e.expiresAt) {
		return nil, nil
	}
	return e.value, nil
}

// Set stores a value under key. A zero TTL falls back to the default; a
// negative TTL stores nothing.
func (m *Memory) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	if ttl == 0 {
		ttl = m.defaultTTL
	}
	if ttl < 0 {
		return nil
	}

	m.mu.Lock()
	m.entries[key] = entry{value: value, expiresAt: m.now().Add(ttl)}
	m.mu.Unlock()
	return nil
}

// Delete removes one entry.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

// Clear drops every entry.
func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	m.entries = make(map[string]entry)
	m.mu.Unlock()
	return nil
}

// Noop returns an interfaces.CacheProvider that does nothing. It stands in
// when caching is disabled so gateway code keeps a single read path.
func Noop() interfaces.CacheProvider {
	return noopCache{}
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) (any, error) {
	return nil, nil
}

func (noopCache) Set(context.Context, string, any, time.Duration) error {
	return nil
}

func (noopCache) Delete(context.Context, string) error {
	return nil
}

func (noopCache) Clear(context.Context) error {
	return nil
}
