package clock

import (
	"sync"
	"time"
)

// Clock supplies wall-clock time.
type Clock interface {
	Now() time.Time
}

// Scheduler runs fn every interval until the returned stop func is called.
// Stop never blocks on a callback in flight; callers that need a hard
// cut-off must guard their callback themselves.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (stop func())
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Real returns the system clock.
func Real() Clock { return realClock{} }

type tickerScheduler struct{}

// Ticker returns a Scheduler backed by time.Ticker.
func Ticker() Scheduler { return tickerScheduler{} }

func (tickerScheduler) Every(interval time.Duration, fn func()) func() {
	t := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-t.C:
				fn()
			case <-done:
				return
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() {
			t.Stop()
			close(done)
		})
	}
}

// Fake is a settable clock for tests.
type Fake struct {
	mu  sync.Mutex
	now time.Time
}

func NewFake(now time.Time) *Fake {
	return &Fake{now: now}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *Fake) Set(t time.Time) {
	f.mu.Lock()
	f.now = t
	f.mu.Unlock()
}

func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

// Manual is a Scheduler whose ticks are fired by hand.
type Manual struct {
	mu      sync.Mutex
	fn      func()
	handles int
	active  int
}

func NewManual() *Manual { return &Manual{} }

func (m *Manual) Every(_ time.Duration, fn func()) func() {
	m.mu.Lock()
	m.handles++
	m.active++
	id := m.handles
	m.fn = fn
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.active--
			if m.handles == id {
				m.fn = nil
			}
		})
	}
}

// Fire runs the current callback n times. It returns how many ticks were
// delivered, which is less than n once the callback stops itself.
func (m *Manual) Fire(n int) int {
	delivered := 0
	for i := 0; i < n; i++ {
		m.mu.Lock()
		fn := m.fn
		m.mu.Unlock()
		if fn == nil {
			break
		}
		fn()
		delivered++
	}
	return delivered
}

// Active reports how many handles have been installed and not stopped.
func (m *Manual) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// Installed reports how many handles were ever installed.
func (m *Manual) Installed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.handles
}
