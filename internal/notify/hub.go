package notify

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/rickgao/skyblock-ah/internal/cache"
)

const (
	defaultQueueCapacity = 4
	defaultQueueLimit    = 64
)

// Subscription receives cache events published after it was created.
type Subscription struct {
	id    uuid.UUID
	queue *Queue[cache.Event]
	hub   *Hub
}

// ID returns the subscription identifier.
func (s *Subscription) ID() uuid.UUID {
	return s.id
}

// Next blocks until an event is available. It returns false once the
// subscription is closed and drained.
func (s *Subscription) Next() (cache.Event, bool) {
	return s.queue.Receive()
}

// Dropped returns the number of events discarded because the subscriber
// fell behind.
func (s *Subscription) Dropped() int64 {
	return s.queue.Stats().Dropped
}

// Close removes the subscription from its hub and unblocks Next.
func (s *Subscription) Close() {
	s.hub.unsubscribe(s.id)
}

// Hub broadcasts cache events to all current subscriptions.
type Hub struct {
	mu     sync.RWMutex
	subs   map[uuid.UUID]*Subscription
	limit  int
	closed bool
	logger *slog.Logger
}

// NewHub creates a hub whose subscriber queues hold at most queueLimit
// pending events. A non-positive queueLimit selects the default.
func NewHub(queueLimit int, logger *slog.Logger) *Hub {
	if queueLimit <= 0 {
		queueLimit = defaultQueueLimit
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		subs:   make(map[uuid.UUID]*Subscription),
		limit:  queueLimit,
		logger: logger,
	}
}

// Subscribe registers a new subscription. On a closed hub the returned
// subscription is already closed.
func (h *Hub) Subscribe() *Subscription {
	sub := &Subscription{
		id:    uuid.New(),
		queue: NewQueue[cache.Event](min(defaultQueueCapacity, h.limit), h.limit),
		hub:   h,
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		sub.queue.Close()
		return sub
	}
	h.subs[sub.id] = sub

	h.logger.Debug("subscriber added", "subscriber", sub.id, "subscribers", len(h.subs))
	return sub
}

// Publish delivers ev to every subscription without blocking. It has the
// signature of a cache listener.
func (h *Hub) Publish(ev cache.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subs {
		sub.queue.Send(ev)
	}
}

// Len returns the number of active subscriptions.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close closes every subscription. Later subscriptions are closed on creation.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for id, sub := range h.subs {
		sub.queue.Close()
		delete(h.subs, id)
	}
}

func (h *Hub) unsubscribe(id uuid.UUID) {
	h.mu.Lock()
	sub, ok := h.subs[id]
	delete(h.subs, id)
	remaining := len(h.subs)
	h.mu.Unlock()

	if !ok {
		return
	}
	sub.queue.Close()

	h.logger.Debug("subscriber removed",
		"subscriber", id,
		"subscribers", remaining,
		"pending", sub.queue.Len(),
		"dropped", sub.queue.Stats().Dropped,
	)
}
