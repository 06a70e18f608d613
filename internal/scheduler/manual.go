package scheduler

import (
	"sync"
	"time"
)

// Manual is a virtual Clock for tests. Time only moves when Advance is
// called, and callbacks run synchronously on the caller's goroutine.
type Manual struct {
	mu     sync.Mutex
	now    time.Duration
	seq    uint64
	timers []*manualTimer
}

func NewManual() *Manual {
	return &Manual{}
}

type manualTimer struct {
	clock     *Manual
	at        time.Duration
	period    time.Duration
	seq       uint64
	fn        func()
	cancelled bool
}

func (t *manualTimer) Cancel() {
	t.clock.mu.Lock()
	t.cancelled = true
	t.clock.mu.Unlock()
}

func (t *manualTimer) Active() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	return !t.cancelled
}

func (m *Manual) Every(d time.Duration, fn func()) Handle {
	return m.add(d, d, fn)
}

func (m *Manual) After(d time.Duration, fn func()) Handle {
	return m.add(d, 0, fn)
}

func (m *Manual) add(d, period time.Duration, fn func()) Handle {
	if d <= 0 {
		d = time.Millisecond
	}
	if period < 0 {
		period = 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTimer{clock: m, at: m.now + d, period: period, seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	return t
}

// Now returns the virtual time elapsed since the clock was created.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) ActiveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Advance moves virtual time forward by d, firing every due callback in
// time order. Callbacks may create or cancel handles.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.nextDueLocked(target)
		if next == nil {
			m.now = target
			m.compactLocked()
			m.mu.Unlock()
			return
		}
		m.now = next.at
		if next.period > 0 {
			next.at += next.period
		} else {
			next.cancelled = true
		}
		fn := next.fn
		m.mu.Unlock()

		if fn != nil {
			fn()
		}
	}
}

func (m *Manual) nextDueLocked(target time.Duration) *manualTimer {
	var best *manualTimer
	for _, t := range m.timers {
		if t.cancelled || t.at > target {
			continue
		}
		if best == nil || t.at < best.at || (t.at == best.at && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (m *Manual) compactLocked() {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	m.timers = live
}
