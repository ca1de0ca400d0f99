package news

import (
	"context"
	"log"
	"time"

	"career-navigator/internal/domain/catalog"
)

type Source interface {
	Scrape(ctx context.Context, feeds []string) ([]catalog.NewsItem, error)
}

// Refresher periodically scrapes the feeds into the store and calls OnUpdate after
// every successful replacement.
type Refresher struct {
	source   Source
	store    *Store
	feeds    []string
	interval time.Duration
	logger   *log.Logger

	OnUpdate func(count int)
}

func NewRefresher(source Source, store *Store, feeds []string, interval time.Duration, logger *log.Logger) *Refresher {
	if interval <= 0 {
		interval = 30 * time.Minute
	}
	return &Refresher{
		source:   source,
		store:    store,
		feeds:    append([]string(nil), feeds...),
		interval: interval,
		logger:   logger,
	}
}

// RefreshOnce scrapes all feeds and replaces the store contents. The store is left
// unchanged when the scrape fails or yields nothing.
func (r *Refresher) RefreshOnce(ctx context.Context) (int, error) {
	if r == nil || r.source == nil || r.store == nil || len(r.feeds) == 0 {
		return 0, nil
	}

	start := time.Now()
	items, err := r.source.Scrape(ctx, r.feeds)
	if err != nil {
		if r.logger != nil {
			r.logger.Printf("[News] refresh failed feeds=%d err=%v", len(r.feeds), err)
		}
		return 0, err
	}
	if !r.store.Replace(items) {
		return 0, nil
	}

	if r.logger != nil {
		r.logger.Printf("[News] refreshed items=%d duration=%s", len(items), time.Since(start).Truncate(time.Millisecond))
	}
	if r.OnUpdate != nil {
		r.OnUpdate(len(items))
	}
	return len(items), nil
}

// Run refreshes immediately and then on every interval until ctx is cancelled.
func (r *Refresher) Run(ctx context.Context) {
	if r == nil || len(r.feeds) == 0 {
		return
	}

	_, _ = r.RefreshOnce(ctx)

	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			_, _ = r.RefreshOnce(ctx)
		}
	}
}
