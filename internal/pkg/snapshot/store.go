// Package snapshot holds the most recently fetched copy of each collaborator
// resource, per session subject, until it expires or is invalidated.
package snapshot

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-web-go/internal/pkg/sse"
)

type entry struct {
	value     any
	fetchedAt time.Time
}

// Store is safe for concurrent use. A zero TTL disables caching.
type Store struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[sse.Resource]map[string]entry
	// generations counts invalidations per resource. A fetch that started
	// under an older generation is not stored.
	generations map[sse.Resource]uint64
	now         func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:         ttl,
		entries:     make(map[sse.Resource]map[string]entry),
		generations: make(map[sse.Resource]uint64),
		now:         time.Now,
	}
}

// Attach subscribes the store to invalidations published on hub
func (s *Store) Attach(hub *sse.Hub) {
	hub.Listen(func(inv sse.Invalidation) {
		n := s.Invalidate(inv.Resource)
		slog.Debug("Snapshot invalidated", "resource", inv.Resource, "dropped", n)
	})
}

// Get returns the live snapshot for resource and scope
func (s *Store) Get(resource sse.Resource, scope string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[resource][scope]
	if !ok || s.expired(e) {
		return nil, false
	}
	return e.value, true
}

// Generation returns the invalidation count of resource
func (s *Store) Generation(resource sse.Resource) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generations[resource]
}

// Put stores a snapshot
func (s *Store) Put(resource sse.Resource, scope string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(resource, scope, value)
}

// PutIfCurrent stores a snapshot fetched under generation gen. It reports
// false, storing nothing, when resource was invalidated since.
func (s *Store) PutIfCurrent(resource sse.Resource, scope string, value any, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generations[resource] != gen {
		return false
	}
	s.put(resource, scope, value)
	return true
}

func (s *Store) put(resource sse.Resource, scope string, value any) {
	if s.ttl <= 0 {
		return
	}
	if s.entries[resource] == nil {
		s.entries[resource] = make(map[string]entry)
	}
	s.entries[resource][scope] = entry{value: value, fetchedAt: s.now()}
}

// Invalidate drops the snapshot of resource for every scope and returns how
// many were dropped.
func (s *Store) Invalidate(resource sse.Resource) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.entries[resource])
	delete(s.entries, resource)
	s.generations[resource]++
	return n
}

// Sweep evicts expired snapshots and returns how many were evicted
func (s *Store) Sweep(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for resource, scopes := range s.entries {
		if err := ctx.Err(); err != nil {
			return evicted, err
		}
		for scope, e := range scopes {
			if s.expired(e) {
				delete(scopes, scope)
				evicted++
			}
		}
		if len(scopes) == 0 {
			delete(s.entries, resource)
		}
	}
	return evicted, nil
}

// Len returns the number of stored snapshots, expired ones included
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, scopes := range s.entries {
		n += len(scopes)
	}
	return n
}

func (s *Store) expired(e entry) bool {
	return s.now().Sub(e.fetchedAt) >= s.ttl
}

// Load returns the cached snapshot of resource for scope, or calls fetch and
// caches its result. Fetch errors are never cached, and neither is a result
// whose resource was invalidated while fetch ran.
func Load[T any](ctx context.Context, s *Store, resource sse.Resource, scope string, fetch func(context.Context) (T, error)) (T, error) {
	if v, ok := s.Get(resource, scope); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	gen := s.Generation(resource)
	value, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if !s.PutIfCurrent(resource, scope, value, gen) {
		slog.DebugContext(ctx, "Snapshot invalidated during fetch, not cached", "resource", resource)
	}
	return value, nil
}
