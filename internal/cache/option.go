package cache

import (
	"log/slog"
	"time"
)

const defaultRefreshInterval = 5 * time.Minute

type config struct {
	interval  time.Duration
	logger    *slog.Logger
	listeners []func(Event)
}

// Option configures a Cache.
type Option func(*config)

func getOpts(opts []Option) config {
	cfg := config{
		interval: defaultRefreshInterval,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRefreshInterval sets the cadence of the periodic refresh loop,
// measured from the start of one attempt to the start of the next.
//
// Default is 5 minutes.
func WithRefreshInterval(d time.Duration) Option {
	return func(cfg *config) {
		if d > 0 {
			cfg.interval = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithListener registers a function called after every refresh attempt.
// Listeners run on the refreshing goroutine and must not block.
func WithListener(fn func(Event)) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.listeners = append(cfg.listeners, fn)
		}
	}
}
