package rpc

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"
)

// DefaultWSMaxConcurrent is the default ceiling of simultaneously open WebSocket sessions.
const DefaultWSMaxConcurrent = 25

// Gate bounds how many persistent sessions are open at once. Every WSTransport in the
// process shares one Gate, so validation and archive probing draw from the same pool.
type Gate struct {
	sem *semaphore.Weighted
}

// NewGate creates a gate admitting at most maxOpen sessions.
func NewGate(maxOpen int64) *Gate {
	if maxOpen <= 0 {
		maxOpen = DefaultWSMaxConcurrent
	}
	return &Gate{sem: semaphore.NewWeighted(maxOpen)}
}

// Acquire blocks until a slot is free or ctx is done. The returned release is safe to
// call more than once.
func (g *Gate) Acquire(ctx context.Context) (func(), error) {
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("waiting for admission: %w", err)
	}
	var once sync.Once
	return func() { once.Do(func() { g.sem.Release(1) }) }, nil
}
