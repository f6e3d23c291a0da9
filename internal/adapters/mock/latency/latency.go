// Package latency simulates network delay for the mock data providers.
// Every provider call waits its configured duration before returning, so
// upstream loading/error transitions behave as they would against a real
// backend. A scale of zero makes providers synchronous for tests.
package latency

import (
	"context"
	"time"
)

// Simulator scales and applies per-call delays.
type Simulator struct {
	scale float64
}

// NewSimulator returns a Simulator multiplying every delay by scale.
// Negative scales are treated as zero.
func NewSimulator(scale float64) Simulator {
	if scale < 0 {
		scale = 0
	}
	return Simulator{scale: scale}
}

// Wait blocks for d scaled by the simulator's factor, or until ctx is done.
// It returns ctx.Err() when the wait was interrupted.
func (s Simulator) Wait(ctx context.Context, d time.Duration) error {
	d = time.Duration(float64(d) * s.scale)
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
