package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

const (
	DefaultDepth = 3

	MaxDepth    = 16
	MaxMovetime = 24 * time.Hour
)

type ClockMode uint8

const (
	ClockModeDepth ClockMode = iota
	ClockModeMovetime
)

type ClockConfig struct {
	Movetime time.Duration
	Depth    int
}

// Clock decides when iterative deepening stops. A search iteration is never interrupted:
// the movetime is checked between iterations only.
type Clock struct {
	mode           ClockMode
	targetMovetime time.Duration
	targetDepth    int

	done   atomic.Bool
	stopCh chan struct{}
	wg     sync.WaitGroup
}

func NewClock() *Clock {
	c := &Clock{}
	c.done.Store(true)
	return c
}

func (c *Clock) Start(ctx context.Context, cfg *ClockConfig) {
	c.Stop()
	c.targetMovetime = MaxMovetime
	c.targetDepth = DefaultDepth
	c.done.Store(false)

	switch {
	case cfg.Movetime != 0:
		c.mode = ClockModeMovetime
		c.targetMovetime = cfg.Movetime
		c.targetDepth = MaxDepth
		if cfg.Depth != 0 {
			c.targetDepth = cfg.Depth
		}
	default:
		c.mode = ClockModeDepth
		if cfg.Depth != 0 {
			c.targetDepth = cfg.Depth
		}
	}
	if c.targetDepth > MaxDepth {
		c.targetDepth = MaxDepth
	}

	stopCh, movetime := make(chan struct{}), c.targetMovetime
	c.stopCh = stopCh
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ctx, cancel := context.WithTimeout(ctx, movetime)
		defer cancel()
		select {
		case <-ctx.Done():
		case <-stopCh:
		}
		c.done.Store(true)
	}()
}

func (c *Clock) Stop() {
	if c.stopCh != nil {
		close(c.stopCh)
		c.stopCh = nil
	}
	c.wg.Wait()
}

func (c *Clock) Mode() ClockMode {
	return c.mode
}

func (c *Clock) DoneByMovetime() bool {
	return c.done.Load()
}

func (c *Clock) DoneByDepth(depth int) bool {
	return depth > c.targetDepth
}
