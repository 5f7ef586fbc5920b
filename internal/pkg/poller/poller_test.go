package poller

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunFiresImmediatelyAndStopsOnCancel(t *testing.T) {
	var calls int64
	p := New(5*time.Millisecond, func(context.Context) {
		atomic.AddInt64(&calls, 1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return atomic.LoadInt64(&calls) >= 3
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after cancel")
	}
}

func TestStartReturnsWorkingCancel(t *testing.T) {
	var calls int64
	p := New(5*time.Millisecond, func(context.Context) {
		atomic.AddInt64(&calls, 1)
	})

	cancel := p.Start(context.Background())
	assert.Eventually(t, func() bool {
		return atomic.LoadInt64(&calls) >= 1
	}, time.Second, time.Millisecond)
	cancel()

	settled := atomic.LoadInt64(&calls)
	time.Sleep(30 * time.Millisecond)
	// One tick may have been in flight when cancel landed.
	assert.LessOrEqual(t, atomic.LoadInt64(&calls), settled+1)
}
