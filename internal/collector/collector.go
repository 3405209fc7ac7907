package collector

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/rickgao/skyblock-ah/internal/model"
)

// PageFetcher retrieves a single page of the auction dataset.
type PageFetcher interface {
	FetchPage(ctx context.Context, page int) (model.Page, error)
}

// PageFetcherFunc is a function adapter for PageFetcher.
type PageFetcherFunc func(ctx context.Context, page int) (model.Page, error)

func (f PageFetcherFunc) FetchPage(ctx context.Context, page int) (model.Page, error) {
	return f(ctx, page)
}

// Config holds collector configuration.
type Config struct {
	Concurrency int           // Max in-flight page fetches (default: 16)
	PageTimeout time.Duration // Per-page timeout, 0 disables (default: 20s)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Concurrency: 16,
		PageTimeout: 20 * time.Second,
	}
}

// Collector fetches every page of the dataset.
type Collector struct {
	cfg     Config
	fetcher PageFetcher
	logger  *slog.Logger
}

// New creates a new Collector.
func New(cfg Config, fetcher PageFetcher, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return &Collector{
		cfg:     cfg,
		fetcher: fetcher,
		logger:  logger,
	}
}

// CollectAll returns all pages of the dataset ordered by page index. Page 0
// is fetched first to learn the page count. If any page fails, no pages are
// returned and the error aggregates every failing page as a *FetchError.
func (c *Collector) CollectAll(ctx context.Context) ([]model.Page, error) {
	start := time.Now()

	first, err := c.fetchPage(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDiscoveryFailed, &FetchError{Page: 0, Err: err})
	}

	total := max(first.TotalPages, 1)
	pages := make([]model.Page, total)
	pages[0] = first

	// Semaphore for bounded concurrency.
	sem := make(chan struct{}, c.cfg.Concurrency)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var failed []*FetchError

	for i := 1; i < total; i++ {
		wg.Add(1)
		go func(page int) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				mu.Lock()
				failed = append(failed, &FetchError{Page: page, Err: ctx.Err()})
				mu.Unlock()
				return
			}

			p, err := c.fetchPage(ctx, page)
			if err != nil {
				mu.Lock()
				failed = append(failed, &FetchError{Page: page, Err: err})
				mu.Unlock()
				return
			}

			// Each goroutine owns exactly one slot.
			pages[page] = p
		}(i)
	}

	wg.Wait()

	if len(failed) > 0 {
		slices.SortFunc(failed, func(a, b *FetchError) int { return a.Page - b.Page })

		merr := &multierror.Error{ErrorFormat: listFormat}
		for _, fe := range failed {
			merr = multierror.Append(merr, fe)
		}

		c.logger.Warn("page collection failed",
			"pages", total,
			"failed", len(failed),
			"duration", time.Since(start),
		)
		return nil, merr
	}

	var records int
	for i := range pages {
		records += len(pages[i].Auctions)
	}

	c.logger.Debug("page collection complete",
		"pages", total,
		"records", records,
		"duration", time.Since(start),
	)

	return pages, nil
}

// fetchPage fetches a single page under the per-page timeout.
func (c *Collector) fetchPage(ctx context.Context, page int) (model.Page, error) {
	if c.cfg.PageTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.PageTimeout)
		defer cancel()
	}

	p, err := c.fetcher.FetchPage(ctx, page)
	if err != nil {
		return model.Page{}, err
	}
	if p.Auctions == nil {
		p.Auctions = []model.Auction{}
	}
	return p, nil
}
