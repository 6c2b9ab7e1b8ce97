// Package pacer spaces out the starts of calls to a rate-limited upstream.
package pacer

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Pacer guarantees at least Interval between the starts of two consecutive calls to Wait
// that return nil, across all goroutines sharing the Pacer.
//
// The lock is held while waiting, so callers are admitted one at a time in lock order.
type Pacer struct {
	mu       sync.Mutex
	clock    clock.Clock
	interval time.Duration
	last     time.Time
}

// New creates a Pacer using the wall clock.
func New(interval time.Duration) *Pacer {
	return NewWithClock(interval, clock.New())
}

// NewWithClock creates a Pacer driven by clk.
func NewWithClock(interval time.Duration, clk clock.Clock) *Pacer {
	return &Pacer{clock: clk, interval: interval}
}

// Wait blocks until the caller may start its call, or until ctx is done.
// A caller that gives up does not consume a slot. A caller queued behind the lock
// notices cancellation only once it gets the lock, so it may be held up to one Interval.
func (p *Pacer) Wait(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.last.IsZero() {
		if wait := p.interval - p.clock.Since(p.last); wait > 0 {
			timer := p.clock.Timer(wait)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			}
		}
	}

	p.last = p.clock.Now()
	return nil
}

// Interval returns the minimum spacing enforced by the pacer.
func (p *Pacer) Interval() time.Duration {
	return p.interval
}
