package contact

import (
	"context"
	"time"
)

// DefaultSimulatedDelay is how long the Simulated transport takes.
const DefaultSimulatedDelay = 2 * time.Second

// Transport delivers a validated submission somewhere.
type Transport interface {
	Send(ctx context.Context, msg Fields) error
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(ctx context.Context, msg Fields) error

// Send calls f.
func (f TransportFunc) Send(ctx context.Context, msg Fields) error {
	return f(ctx, msg)
}

// Simulated stands in for a real delivery: it waits Delay and succeeds.
type Simulated struct {
	Delay time.Duration
}

// Send waits for the configured delay or until ctx is done.
func (s Simulated) Send(ctx context.Context, msg Fields) error {
	if s.Delay <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(s.Delay)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
