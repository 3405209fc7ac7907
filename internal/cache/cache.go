package cache

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rickgao/skyblock-ah/internal/index"
	"github.com/rickgao/skyblock-ah/internal/model"
	"golang.org/x/sync/singleflight"
)

// Source provides the complete, ordered set of pages for one refresh.
type Source interface {
	CollectAll(ctx context.Context) ([]model.Page, error)
}

// SourceFunc is a function adapter for Source.
type SourceFunc func(ctx context.Context) ([]model.Page, error)

func (f SourceFunc) CollectAll(ctx context.Context) ([]model.Page, error) {
	return f(ctx)
}

// EventKind identifies the outcome of a refresh attempt.
type EventKind string

const (
	EventRefreshed     EventKind = "refreshed"
	EventRefreshFailed EventKind = "refresh_failed"
)

// Event describes one refresh attempt.
type Event struct {
	Kind       EventKind     `json:"kind"`
	Generation uuid.UUID     `json:"generation"`
	At         time.Time     `json:"at"`
	Duration   time.Duration `json:"duration"`
	Names      int           `json:"names"`
	Auctions   int           `json:"auctions"`
	Error      string        `json:"error,omitempty"`
}

// Status reports the state of the cache.
type Status struct {
	Generation          uuid.UUID `json:"generation"`
	RefreshedAt         time.Time `json:"refreshed_at"`
	LastAttempt         time.Time `json:"last_attempt"`
	LastError           string    `json:"last_error,omitempty"`
	ConsecutiveFailures int       `json:"consecutive_failures"`
	Refreshes           uint64    `json:"refreshes"`
	Failures            uint64    `json:"failures"`
	Names               int       `json:"names"`
	Auctions            int       `json:"auctions"`
	Pages               int       `json:"pages"`
	LastUpdated         int64     `json:"last_updated"`
}

// generation is an immutable index plus its identity. A new generation is
// stored on every successful refresh.
type generation struct {
	idx *index.Index
	id  uuid.UUID
	at  time.Time
}

// Cache holds the current auction index and refreshes it periodically.
type Cache struct {
	src       Source
	interval  time.Duration
	logger    *slog.Logger
	listeners []func(Event)

	current atomic.Pointer[generation]
	group   singleflight.Group

	mu                  sync.Mutex
	lastAttempt         time.Time
	lastErr             string
	consecutiveFailures int
	refreshes           uint64
	failures            uint64

	lifecycle sync.Mutex
	started   bool
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// New builds the first index synchronously and returns the cache. If the
// first collection fails, its error is returned unchanged.
func New(ctx context.Context, src Source, opts ...Option) (*Cache, error) {
	cfg := getOpts(opts)

	c := &Cache{
		src:       src,
		interval:  cfg.interval,
		logger:    cfg.logger,
		listeners: cfg.listeners,
	}

	start := time.Now()
	idx, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	gen := c.store(idx, start)

	c.logger.Info("auction index loaded",
		"generation", gen.id,
		"names", idx.Len(),
		"auctions", idx.Count(),
		"pages", idx.Pages(),
		"duration", time.Since(start),
	)

	return c, nil
}

// Snapshot returns the current index. It never blocks on a refresh in
// progress. The returned index is immutable.
func (c *Cache) Snapshot() *index.Index {
	return c.current.Load().idx
}

// Status returns the current cache status.
func (c *Cache) Status() Status {
	gen := c.current.Load()

	c.mu.Lock()
	defer c.mu.Unlock()

	return Status{
		Generation:          gen.id,
		RefreshedAt:         gen.at,
		LastAttempt:         c.lastAttempt,
		LastError:           c.lastErr,
		ConsecutiveFailures: c.consecutiveFailures,
		Refreshes:           c.refreshes,
		Failures:            c.failures,
		Names:               gen.idx.Len(),
		Auctions:            gen.idx.Count(),
		Pages:               gen.idx.Pages(),
		LastUpdated:         gen.idx.LastUpdated(),
	}
}

// RefreshOnce collects all pages, rebuilds the index and swaps it in. On
// failure the current index is left untouched and a *RefreshError is
// returned.
//
// Concurrent calls share a single refresh. The shared refresh ignores the
// callers' cancellation and is bounded by the collector's page timeouts; a
// caller whose ctx ends first gets ctx.Err() while the refresh carries on
// for the others.
func (c *Cache) RefreshOnce(ctx context.Context) error {
	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan("refresh", func() (any, error) {
		return nil, c.refresh(shared)
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Start begins the periodic refresh loop. The first index was built by New,
// so the first periodic refresh happens one interval after Start. A cache
// is started at most once; later calls return ErrAlreadyStarted.
func (c *Cache) Start(ctx context.Context) error {
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()

	if c.started {
		return ErrAlreadyStarted
	}
	c.started = true
	c.ctx, c.cancel = context.WithCancel(ctx)

	c.wg.Add(1)
	go c.run()

	c.logger.Info("auction cache refresher started",
		"interval", c.interval,
	)

	return nil
}

// Stop ends the refresh loop. A refresh already in progress runs to
// completion; ctx bounds how long Stop waits for it.
func (c *Cache) Stop(ctx context.Context) error {
	c.lifecycle.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.lifecycle.Unlock()

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		c.logger.Info("auction cache refresher stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run is the refresh loop. Each attempt is scheduled one interval after the
// start of the previous one; an attempt that overruns the interval is
// followed immediately by the next.
func (c *Cache) run() {
	defer c.wg.Done()

	timer := time.NewTimer(c.interval)
	defer timer.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-timer.C:
		}

		start := time.Now()
		// Errors are logged and published by refresh.
		_ = c.RefreshOnce(context.WithoutCancel(c.ctx))

		timer.Reset(time.Until(start.Add(c.interval)))
	}
}

// refresh performs one full collect, build and replace cycle.
func (c *Cache) refresh(ctx context.Context) error {
	start := time.Now()

	idx, err := c.load(ctx)

	c.mu.Lock()
	c.lastAttempt = start
	if err != nil {
		c.failures++
		c.consecutiveFailures++
		c.lastErr = err.Error()
		failures := c.consecutiveFailures
		c.mu.Unlock()

		prev := c.current.Load()
		c.logger.Error("auction index refresh failed",
			"err", err,
			"consecutive_failures", failures,
			"serving_generation", prev.id,
			"duration", time.Since(start),
		)
		c.emit(Event{
			Kind:       EventRefreshFailed,
			Generation: prev.id,
			At:         start,
			Duration:   time.Since(start),
			Names:      prev.idx.Len(),
			Auctions:   prev.idx.Count(),
			Error:      err.Error(),
		})
		return &RefreshError{Err: err}
	}

	gen := c.store(idx, start)
	c.refreshes++
	c.consecutiveFailures = 0
	c.lastErr = ""
	c.mu.Unlock()

	c.logger.Info("auction index refreshed",
		"generation", gen.id,
		"names", idx.Len(),
		"auctions", idx.Count(),
		"pages", idx.Pages(),
		"duration", time.Since(start),
	)
	c.emit(Event{
		Kind:       EventRefreshed,
		Generation: gen.id,
		At:         start,
		Duration:   time.Since(start),
		Names:      idx.Len(),
		Auctions:   idx.Count(),
	})
	return nil
}

// load fetches all pages and builds a fresh index.
func (c *Cache) load(ctx context.Context) (*index.Index, error) {
	pages, err := c.src.CollectAll(ctx)
	if err != nil {
		return nil, err
	}
	return index.Build(pages), nil
}

// store publishes idx as the current generation.
func (c *Cache) store(idx *index.Index, at time.Time) *generation {
	gen := &generation{
		idx: idx,
		id:  uuid.New(),
		at:  at,
	}
	c.current.Store(gen)
	return gen
}

func (c *Cache) emit(ev Event) {
	for _, fn := range c.listeners {
		fn(ev)
	}
}
