package client

import (
	"context"
	"log"
	"sync/atomic"
	"time"
)

// Poller re-runs Fetch at a fixed interval, the way the admin dashboard
// refreshes its data. A tick that arrives while the previous fetch is still
// in flight is skipped, so a slow response never stacks requests.
type Poller struct {
	Interval time.Duration
	Fetch    func(ctx context.Context) error

	inFlight atomic.Bool
}

// Run fetches once immediately, then on every interval tick until the
// context is cancelled.
func (p *Poller) Run(ctx context.Context) {
	p.tick(ctx)

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *Poller) tick(ctx context.Context) {
	if !p.inFlight.CompareAndSwap(false, true) {
		log.Printf("[client] poll skipped: previous fetch still in flight")
		return
	}
	go func() {
		defer p.inFlight.Store(false)
		if err := p.Fetch(ctx); err != nil {
			log.Printf("[client] poll error: %v", err)
		}
	}()
}
