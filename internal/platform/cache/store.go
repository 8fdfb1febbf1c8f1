package cache

import (
	"context"
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Store is an in-process TTL map. Every GetOrCreate hit refreshes the expiry
// so idle entries are the ones that age out.
type Store[V any] struct {
	mu      sync.Mutex
	entries map[string]entry[V]
	ttl     time.Duration
	now     func() time.Time
}

func NewStore[V any](ttl time.Duration) *Store[V] {
	return &Store[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		now:     time.Now,
	}
}

// GetOrCreate returns the live entry for key or stores the result of create.
func (s *Store[V]) GetOrCreate(_ context.Context, key string, create func() V) V {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if e, ok := s.entries[key]; ok && !s.expired(e, now) {
		s.entries[key] = entry[V]{value: e.value, expiresAt: s.expiry(now)}
		return e.value
	}
	value := create()
	if key != "" {
		s.entries[key] = entry[V]{value: value, expiresAt: s.expiry(now)}
	}
	return value
}

// Purge drops expired entries and returns how many were removed.
func (s *Store[V]) Purge(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for key, e := range s.entries {
		if s.expired(e, now) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

func (s *Store[V]) expired(e entry[V], now time.Time) bool {
	return s.ttl > 0 && !e.expiresAt.After(now)
}

func (s *Store[V]) expiry(now time.Time) time.Time {
	if s.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(s.ttl)
}
