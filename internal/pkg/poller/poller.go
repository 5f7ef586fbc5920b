// Package poller runs a function on a fixed interval until its context is
// cancelled. It backs the "refresh every N seconds, stop on teardown"
// contract used for availability and pricing refreshes.
package poller

import (
	"context"
	"time"
)

type Poller struct {
	interval time.Duration
	fn       func(context.Context)
}

func New(interval time.Duration, fn func(context.Context)) *Poller {
	if interval <= 0 {
		interval = time.Second
	}
	return &Poller{interval: interval, fn: fn}
}

// Run fires fn immediately, then on every tick, and returns when ctx is
// cancelled. The per-call context is the run context, so a slow fn is also
// interrupted by teardown.
func (p *Poller) Run(ctx context.Context) {
	p.fn(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fn(ctx)
		}
	}
}

// Start runs the poller in a goroutine and returns a cancel func for teardown.
func (p *Poller) Start(ctx context.Context) context.CancelFunc {
	ctx, cancel := context.WithCancel(ctx)
	go p.Run(ctx)
	return cancel
}
