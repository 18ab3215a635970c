package game

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

const (
	// DefaultTickInterval is the time between two game steps.
	DefaultTickInterval = 50 * time.Millisecond
	keyBufferSize       = 16
)

var ErrLoopRunning = errors.New("game loop already running")

type ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct {
	t *time.Ticker
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

func newTimeTicker(d time.Duration) ticker {
	return timeTicker{t: time.NewTicker(d)}
}

// Loop owns a Session and is the only goroutine that touches it. Ticks and
// key presses are merged into one ordered stream by a single select, and
// renderers read the latest published Snapshot.
type Loop struct {
	session   *Session
	interval  time.Duration
	logger    *log.Logger
	keys      chan Key
	snapshot  atomic.Pointer[Snapshot]
	running   atomic.Bool
	newTicker func(time.Duration) ticker

	// Only touched from Run.
	ticker ticker
	tickC  <-chan time.Time
}

func NewLoop(session *Session, interval time.Duration, logger *log.Logger) *Loop {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	if logger == nil {
		logger = log.Default()
	}
	l := &Loop{
		session:   session,
		interval:  interval,
		logger:    logger,
		keys:      make(chan Key, keyBufferSize),
		newTicker: newTimeTicker,
	}
	l.publish()
	return l
}

// Send queues a key press without blocking. It reports false when the queue
// is full and the key was dropped.
func (l *Loop) Send(k Key) bool {
	select {
	case l.keys <- k:
		return true
	default:
		l.logger.Debug("key dropped, input queue full", "key", k)
		return false
	}
}

// Snapshot returns the state as of the last handled event. Safe from any
// goroutine.
func (l *Loop) Snapshot() Snapshot {
	return *l.snapshot.Load()
}

// Run handles events until ctx is done. The ticker only exists while the
// session is running; once stopped its channel is dropped from the select,
// so no tick is handled until the next start.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	defer l.running.Store(false)
	defer l.stopTimer()

	l.logger.Debug("game loop started", "interval", l.interval)
	for {
		select {
		case <-ctx.Done():
			l.logger.Debug("game loop stopped")
			return ctx.Err()
		case k := <-l.keys:
			l.apply(l.session.HandleKey(k))
		case <-l.tickC:
			l.apply(l.session.Tick())
		}
		l.publish()
	}
}

func (l *Loop) apply(effects []Effect) {
	for _, e := range effects {
		switch e {
		case EffectStartTimer:
			l.startTimer()
		case EffectStopTimer:
			l.stopTimer()
		}
	}
}

func (l *Loop) startTimer() {
	l.stopTimer()
	l.ticker = l.newTicker(l.interval)
	l.tickC = l.ticker.C()
}

func (l *Loop) stopTimer() {
	if l.ticker == nil {
		return
	}
	l.ticker.Stop()
	l.ticker = nil
	l.tickC = nil
}

func (l *Loop) publish() {
	snap := l.session.Snapshot()
	l.snapshot.Store(&snap)
}
