package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const DefaultFlushSchedule = "@every 30s"

type PageViewStore interface {
	AddPageViews(ctx context.Context, views map[uint]int) error
}

// PageViewCounter buffers page views in memory and writes them in batches.
type PageViewCounter struct {
	store PageViewStore

	mu      sync.Mutex
	pending map[uint]int

	cron *cron.Cron
}

func NewPageViewCounter(store PageViewStore) *PageViewCounter {
	return &PageViewCounter{
		store:   store,
		pending: make(map[uint]int),
	}
}

func (c *PageViewCounter) Increment(eventID uint) {
	c.mu.Lock()
	c.pending[eventID]++
	c.mu.Unlock()
}

// Pending returns the buffered count for an event.
func (c *PageViewCounter) Pending(eventID uint) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.pending[eventID]
}

// Flush writes the buffered counts. A failed batch is logged and dropped.
func (c *PageViewCounter) Flush(ctx context.Context) error {
	c.mu.Lock()
	batch := c.pending
	c.pending = make(map[uint]int)
	c.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}

	if err := c.store.AddPageViews(ctx, batch); err != nil {
		zap.L().Warn("dropping page views", zap.Int("events", len(batch)), zap.Error(err))
		return fmt.Errorf("c.store.AddPageViews -> %w", err)
	}

	return nil
}

// Start schedules Flush with a cron spec such as "@every 30s".
func (c *PageViewCounter) Start(schedule string) error {
	if schedule == "" {
		schedule = DefaultFlushSchedule
	}

	c.cron = cron.New()
	if _, err := c.cron.AddFunc(schedule, func() {
		_ = c.Flush(context.Background())
	}); err != nil {
		return fmt.Errorf("c.cron.AddFunc -> %w", err)
	}
	c.cron.Start()

	return nil
}

// Stop waits for a running flush, then flushes what is left.
func (c *PageViewCounter) Stop() {
	if c.cron != nil {
		<-c.cron.Stop().Done()
	}

	_ = c.Flush(context.Background())
}
