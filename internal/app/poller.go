package app

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/five82/showcase/internal/content"
	"github.com/five82/showcase/internal/state"
)

const (
	defaultPollInterval = 30 * time.Second
	maxBackoff          = 5 * time.Minute
)

// ContentFetcher loads the records shown by the UI.
type ContentFetcher interface {
	FetchHomepage(ctx context.Context) (*content.HomepageConfig, error)
	FetchProduct(ctx context.Context) (*content.ProductConfig, error)
}

var _ ContentFetcher = (*content.Service)(nil)

// Poller refreshes the store in the background until its context ends.
type Poller struct {
	store    *state.Store
	fetcher  ContentFetcher
	interval time.Duration
	logger   *zap.Logger
	kick     chan struct{}
	done     chan struct{}
}

// StartPoller launches the refresh loop and returns immediately. The first
// refresh runs right away.
func StartPoller(ctx context.Context, store *state.Store, fetcher ContentFetcher, interval time.Duration, logger *zap.Logger) *Poller {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Poller{
		store:    store,
		fetcher:  fetcher,
		interval: interval,
		logger:   logger.Named("poller"),
		kick:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	go p.loop(ctx)
	return p
}

// Refresh asks for an immediate refresh. Requests made while one is already
// pending are merged.
func (p *Poller) Refresh() {
	select {
	case p.kick <- struct{}{}:
	default:
	}
}

// Wait blocks until the loop has exited.
func (p *Poller) Wait() {
	<-p.done
}

func (p *Poller) loop(ctx context.Context) {
	defer close(p.done)

	failures := 0
	for {
		if err := refresh(ctx, p.store, p.fetcher); err != nil {
			if ctx.Err() != nil {
				return
			}
			failures++
			p.logger.Warn("content refresh failed",
				zap.Error(err),
				zap.Int("consecutive_failures", failures),
			)
		} else {
			if failures > 0 {
				p.logger.Info("content refresh recovered", zap.Int("after_failures", failures))
			}
			failures = 0
		}

		timer := time.NewTimer(calculateBackoff(failures, p.interval))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-p.kick:
			timer.Stop()
		case <-timer.C:
		}
	}
}

// refresh fetches both records concurrently. A failure in one does not
// cancel the other; whatever arrived is stored along with the first error.
func refresh(ctx context.Context, store *state.Store, fetcher ContentFetcher) error {
	var (
		g       errgroup.Group
		home    *content.HomepageConfig
		product *content.ProductConfig
	)
	g.Go(func() error {
		h, err := fetcher.FetchHomepage(ctx)
		if err != nil {
			return err
		}
		home = h
		return nil
	})
	g.Go(func() error {
		p, err := fetcher.FetchProduct(ctx)
		if err != nil {
			return err
		}
		product = p
		return nil
	})
	err := g.Wait()
	store.Update(home, product, err)
	return err
}

// calculateBackoff doubles the wait for each consecutive failure, capped at
// maxBackoff. A base at or above the cap is returned unchanged.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 || base >= maxBackoff {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}
