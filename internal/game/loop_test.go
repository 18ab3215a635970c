package game

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/YangRuhao/Snake-Game/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTicker struct {
	c       chan time.Time
	mu      sync.Mutex
	stopped bool
}

func (f *fakeTicker) C() <-chan time.Time { return f.c }

func (f *fakeTicker) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

func (f *fakeTicker) isStopped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped
}

// fire delivers one tick and reports whether the loop took it.
func (f *fakeTicker) fire(wait time.Duration) bool {
	select {
	case f.c <- time.Now():
		return true
	case <-time.After(wait):
		return false
	}
}

type loopHarness struct {
	loop    *Loop
	tickers chan *fakeTicker
	cancel  context.CancelFunc
	done    chan error
}

func startLoop(t *testing.T) *loopHarness {
	t.Helper()
	h := &loopHarness{tickers: make(chan *fakeTicker, 8), done: make(chan error, 1)}
	h.loop = NewLoop(newTestSession(t), time.Millisecond, quietLogger())
	h.loop.newTicker = func(time.Duration) ticker {
		ft := &fakeTicker{c: make(chan time.Time)}
		h.tickers <- ft
		return ft
	}
	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	go func() { h.done <- h.loop.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-h.done
	})
	return h
}

func (h *loopHarness) nextTicker(t *testing.T) *fakeTicker {
	t.Helper()
	select {
	case ft := <-h.tickers:
		return ft
	case <-time.After(time.Second):
		t.Fatal("expected the loop to start a ticker")
		return nil
	}
}

func (h *loopHarness) waitFor(t *testing.T, cond func(Snapshot) bool) {
	t.Helper()
	require.Eventually(t, func() bool { return cond(h.loop.Snapshot()) }, time.Second, time.Millisecond)
}

func TestLoopPublishesInitialSnapshot(t *testing.T) {
	l := NewLoop(newTestSession(t), 0, quietLogger())
	assert.Equal(t, DefaultTickInterval, l.interval)
	assert.Equal(t, StatusNotStarted, l.Snapshot().Status)
}

func TestLoopStartTickPause(t *testing.T) {
	h := startLoop(t)

	require.True(t, h.loop.Send(KeyOther))
	ft := h.nextTicker(t)
	h.waitFor(t, func(s Snapshot) bool { return s.Status == StatusRunning })

	require.True(t, ft.fire(time.Second))
	h.waitFor(t, func(s Snapshot) bool { return s.Ticks == 1 })
	assert.Equal(t, entities.Point{X: 390, Y: 260}, h.loop.Snapshot().Head)

	require.True(t, h.loop.Send(KeyPause))
	h.waitFor(t, func(s Snapshot) bool { return s.Status == StatusPaused })
	assert.True(t, ft.isStopped())
	assert.False(t, ft.fire(50*time.Millisecond), "no tick is taken after the timer stops")
	assert.Equal(t, 1, h.loop.Snapshot().Ticks)

	require.True(t, h.loop.Send(KeyPause))
	resumed := h.nextTicker(t)
	h.waitFor(t, func(s Snapshot) bool { return s.Status == StatusRunning })
	require.True(t, resumed.fire(time.Second))
	h.waitFor(t, func(s Snapshot) bool { return s.Ticks == 2 })
}

func TestLoopStopsTimerOnGameOver(t *testing.T) {
	h := startLoop(t)
	require.True(t, h.loop.Send(KeyOther))
	ft := h.nextTicker(t)

	// 380 -> 770 is 39 steps to the right border.
	for i := 0; i < 39; i++ {
		require.True(t, ft.fire(time.Second), "tick %d", i)
	}
	h.waitFor(t, func(s Snapshot) bool { return s.Status == StatusGameOver })
	assert.True(t, ft.isStopped())
	assert.False(t, ft.fire(50*time.Millisecond))

	require.True(t, h.loop.Send(KeyConfirm))
	h.nextTicker(t)
	h.waitFor(t, func(s Snapshot) bool { return s.Status == StatusRunning && s.Ticks == 0 })
}

func TestLoopRunTwice(t *testing.T) {
	h := startLoop(t)
	require.Eventually(t, func() bool { return h.loop.running.Load() }, time.Second, time.Millisecond)
	err := h.loop.Run(context.Background())
	assert.True(t, errors.Is(err, ErrLoopRunning))
}

func TestLoopReturnsOnCancel(t *testing.T) {
	l := NewLoop(newTestSession(t), time.Millisecond, quietLogger())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()
	l.Send(KeyOther)
	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestSendDropsWhenFull(t *testing.T) {
	l := NewLoop(newTestSession(t), time.Millisecond, quietLogger())
	for i := 0; i < keyBufferSize; i++ {
		require.True(t, l.Send(KeyUp))
	}
	assert.False(t, l.Send(KeyUp))
}

func TestLoopWithRealTicker(t *testing.T) {
	l := NewLoop(newTestSession(t), 2*time.Millisecond, quietLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = l.Run(ctx) }()

	l.Send(KeyOther)
	require.Eventually(t, func() bool { return l.Snapshot().Ticks >= 3 }, 2*time.Second, time.Millisecond)
}
