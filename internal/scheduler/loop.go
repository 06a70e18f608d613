package scheduler

import (
	"sync"
	"sync/atomic"
	"time"
)

// Fire is one delivery of a tick source. The consumer calls Run on the
// goroutine that owns the state the callback touches.
type Fire struct {
	handle *loopHandle
	fn     func()
}

// Run invokes the callback unless its handle was cancelled after the fire
// was queued. It reports whether the callback ran.
func (f Fire) Run() bool {
	if f.handle == nil || f.fn == nil || !f.handle.Active() {
		return false
	}
	if f.handle.oneShot {
		f.handle.Cancel()
	}
	f.fn()
	return true
}

// Loop is the real-time Clock. Each handle runs its own goroutine; fires are
// delivered in order on C().
type Loop struct {
	mu      sync.Mutex
	handles map[uint64]*loopHandle
	nextID  uint64
	out     chan Fire
	stopCh  chan struct{}
	wg      sync.WaitGroup
	stopped bool
	fired   uint64
}

func NewLoop(bufferSize int) *Loop {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Loop{
		handles: make(map[uint64]*loopHandle),
		out:     make(chan Fire, bufferSize),
		stopCh:  make(chan struct{}),
	}
}

func (l *Loop) C() <-chan Fire {
	return l.out
}

func (l *Loop) Every(d time.Duration, fn func()) Handle {
	return l.start(d, fn, false)
}

func (l *Loop) After(d time.Duration, fn func()) Handle {
	return l.start(d, fn, true)
}

func (l *Loop) Active() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.handles)
}

// Fired returns how many fires have been queued since the loop was created.
func (l *Loop) Fired() uint64 {
	return atomic.LoadUint64(&l.fired)
}

// Stop cancels every handle, waits for their goroutines and closes C().
func (l *Loop) Stop() {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.stopped = true
	close(l.stopCh)
	live := make([]*loopHandle, 0, len(l.handles))
	for _, h := range l.handles {
		live = append(live, h)
	}
	l.mu.Unlock()

	for _, h := range live {
		h.Cancel()
	}
	l.wg.Wait()
	close(l.out)
}

func (l *Loop) start(d time.Duration, fn func(), oneShot bool) Handle {
	if d <= 0 {
		d = time.Millisecond
	}
	h := &loopHandle{done: make(chan struct{}), oneShot: oneShot}

	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		h.Cancel()
		return h
	}
	l.nextID++
	id := l.nextID
	l.handles[id] = h
	h.onCancel = func() { l.forget(id) }
	l.wg.Add(1)
	l.mu.Unlock()

	go l.run(h, d, fn)
	return h
}

func (l *Loop) forget(id uint64) {
	l.mu.Lock()
	delete(l.handles, id)
	l.mu.Unlock()
}

func (l *Loop) run(h *loopHandle, d time.Duration, fn func()) {
	defer l.wg.Done()

	if h.oneShot {
		timer := time.NewTimer(d)
		defer stopTimer(timer)
		select {
		case <-timer.C:
			l.deliver(h, fn)
		case <-h.done:
		case <-l.stopCh:
		}
		return
	}

	ticker := time.NewTicker(d)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if !l.deliver(h, fn) {
				return
			}
		case <-h.done:
			return
		case <-l.stopCh:
			return
		}
	}
}

func (l *Loop) deliver(h *loopHandle, fn func()) bool {
	select {
	case l.out <- Fire{handle: h, fn: fn}:
		atomic.AddUint64(&l.fired, 1)
		return true
	case <-h.done:
		return false
	case <-l.stopCh:
		return false
	}
}

type loopHandle struct {
	done      chan struct{}
	once      sync.Once
	cancelled atomic.Bool
	oneShot   bool
	onCancel  func()
}

func (h *loopHandle) Cancel() {
	h.once.Do(func() {
		h.cancelled.Store(true)
		close(h.done)
		if h.onCancel != nil {
			h.onCancel()
		}
	})
}

func (h *loopHandle) Active() bool {
	return !h.cancelled.Load()
}

func stopTimer(timer *time.Timer) {
	if timer == nil {
		return
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
