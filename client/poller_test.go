package client

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPollerFetchesImmediately(t *testing.T) {
	var calls atomic.Int32
	p := &Poller{
		Interval: time.Hour,
		Fetch: func(ctx context.Context) error {
			calls.Add(1)
			return nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 10*time.Millisecond)
	cancel()
	<-done
}

func TestPollerSkipsOverlappingTicks(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	p := &Poller{
		Interval: 10 * time.Millisecond,
		Fetch: func(ctx context.Context) error {
			calls.Add(1)
			<-release
			return nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	// Several ticks pass while the first fetch is blocked; none of them
	// may start a second fetch.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	close(release)
	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}
