package sse

import (
	"sync"
	"time"
)

// Resource names a collaborator collection whose snapshot can be invalidated
type Resource string

const (
	ResourceStats       Resource = "dashboard-stats"
	ResourceEmployees   Resource = "employees"
	ResourceRoles       Resource = "roles"
	ResourceDepartments Resource = "departments"
	ResourceHolidays    Resource = "holidays"
	ResourceMe          Resource = "me"
)

// Invalidation tells readers that their snapshot of Resource is stale
type Invalidation struct {
	Resource Resource  `json:"resource"`
	At       time.Time `json:"at"`
}

// Listener is called synchronously from Publish
type Listener func(Invalidation)

// Hub fans invalidations out to in-process listeners and to streaming
// subscribers (open browser tabs).
type Hub struct {
	mu          sync.RWMutex
	listeners   []Listener
	subscribers map[chan Invalidation]struct{}
	now         func() time.Time
}

// NewHub creates a new SSE Hub instance
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[chan Invalidation]struct{}),
		now:         time.Now,
	}
}

// Listen registers a listener that runs before Publish returns
func (h *Hub) Listen(l Listener) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners = append(h.listeners, l)
}

// Subscribe registers a streaming subscriber and returns the event channel and cleanup function
func (h *Hub) Subscribe() (<-chan Invalidation, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Invalidation, 10)
	h.subscribers[ch] = struct{}{}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subscribers, ch)
			close(ch)
		})
	}

	return ch, cleanup
}

// Publish announces that resource changed. Listeners have run by the time it
// returns; streaming subscribers that are full miss the event.
func (h *Hub) Publish(resource Resource) Invalidation {
	event := Invalidation{Resource: resource, At: h.now()}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, l := range h.listeners {
		l(event)
	}

	for ch := range h.subscribers {
		select {
		case ch <- event:
		default:
			// Skip if channel is full (non-blocking to prevent deadlock)
		}
	}

	return event
}

// SubscriberCount returns the number of active streaming subscribers
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
