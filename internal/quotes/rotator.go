package quotes

import (
	"math/rand/v2"
	"time"

	"github.com/sandeepkv93/pomodesk/internal/debug"
	"github.com/sandeepkv93/pomodesk/internal/scheduler"
)

// Anchor is a screen position for the quote. The centre belongs to the
// clock and is never an anchor.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorTopRight
	AnchorBottomLeft
	AnchorBottomRight
	AnchorTopCenter
	AnchorBottomCenter
)

// Anchors lists every position a quote may move to.
var Anchors = []Anchor{
	AnchorTopLeft,
	AnchorTopRight,
	AnchorBottomLeft,
	AnchorBottomRight,
	AnchorTopCenter,
	AnchorBottomCenter,
}

func (a Anchor) String() string {
	switch a {
	case AnchorTopLeft:
		return "top-left"
	case AnchorTopRight:
		return "top-right"
	case AnchorBottomLeft:
		return "bottom-left"
	case AnchorBottomRight:
		return "bottom-right"
	case AnchorTopCenter:
		return "top-center"
	case AnchorBottomCenter:
		return "bottom-center"
	default:
		return "unknown"
	}
}

func (a Anchor) Top() bool {
	return a == AnchorTopLeft || a == AnchorTopRight || a == AnchorTopCenter
}

func (a Anchor) Left() bool {
	return a == AnchorTopLeft || a == AnchorBottomLeft
}

func (a Anchor) Right() bool {
	return a == AnchorTopRight || a == AnchorBottomRight
}

// State is what the fullscreen surface draws.
type State struct {
	Text   string
	Index  int
	Anchor Anchor
	// Fading is set between fade-out and the swap.
	Fading bool
}

const (
	DefaultInterval = 5 * time.Minute
	DefaultFade     = 600 * time.Millisecond
)

// Rotator owns the quote tick source and the pending swap. Like the timer
// engine it is driven from the UI goroutine only.
type Rotator struct {
	clock    scheduler.Clock
	interval time.Duration
	fade     time.Duration
	rng      *rand.Rand
	quotes   []string
	instant  bool
	onChange func(State)

	index   int
	anchor  Anchor
	fading  bool
	running bool

	tick scheduler.Handle
	swap scheduler.Handle
}

type Option func(*Rotator)

func WithInterval(d time.Duration) Option {
	return func(r *Rotator) {
		if d > 0 {
			r.interval = d
		}
	}
}

func WithFade(d time.Duration) Option {
	return func(r *Rotator) {
		if d >= 0 {
			r.fade = d
		}
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(r *Rotator) {
		if rng != nil {
			r.rng = rng
		}
	}
}

func WithQuotes(q []string) Option {
	return func(r *Rotator) {
		if len(q) > 0 {
			r.quotes = q
		}
	}
}

func WithOnChange(fn func(State)) Option {
	return func(r *Rotator) { r.onChange = fn }
}

func New(clock scheduler.Clock, opts ...Option) *Rotator {
	r := &Rotator{
		clock:    clock,
		interval: DefaultInterval,
		fade:     DefaultFade,
		rng:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15)),
		quotes:   Default,
		index:    -1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetInstant turns the fade off; the swap then happens in the same firing.
func (r *Rotator) SetInstant(instant bool) {
	r.instant = instant
}

// SetInterval changes the rotation period, restarting the tick source if it
// is running.
func (r *Rotator) SetInterval(d time.Duration) {
	if d <= 0 || d == r.interval {
		return
	}
	r.interval = d
	if r.running {
		r.tick = scheduler.Replace(r.tick, r.newTick)
	}
}

func (r *Rotator) Interval() time.Duration { return r.interval }

func (r *Rotator) Running() bool { return r.running }

// Start shows a first quote immediately and begins rotating.
func (r *Rotator) Start() {
	r.swap = cancelled(r.swap)
	r.apply(r.pickIndex())
	r.tick = scheduler.Replace(r.tick, r.newTick)
	r.running = true
	debug.Log("quotes: rotating every %s", r.interval)
}

func (r *Rotator) Stop() {
	r.tick = cancelled(r.tick)
	r.swap = cancelled(r.swap)
	r.fading = false
	r.running = false
}

func (r *Rotator) State() State {
	st := State{Index: r.index, Anchor: r.anchor, Fading: r.fading}
	if r.index >= 0 && r.index < len(r.quotes) {
		st.Text = Clean(r.quotes[r.index])
	}
	return st
}

// Rotate performs one firing: fade out, then swap and move after the fade
// delay.
func (r *Rotator) Rotate() {
	next := r.pickIndex()
	if r.instant || r.fade == 0 {
		r.swap = cancelled(r.swap)
		r.apply(next)
		return
	}
	r.fading = true
	r.changed()
	r.swap = scheduler.Replace(r.swap, func() scheduler.Handle {
		return r.clock.After(r.fade, func() { r.apply(next) })
	})
}

func (r *Rotator) newTick() scheduler.Handle {
	return r.clock.Every(r.interval, r.Rotate)
}

func (r *Rotator) apply(index int) {
	r.index = index
	r.anchor = Anchors[r.rng.IntN(len(Anchors))]
	r.fading = false
	r.changed()
}

func (r *Rotator) pickIndex() int {
	n := len(r.quotes)
	if n <= 1 {
		return 0
	}
	if r.index < 0 || r.index >= n {
		return r.rng.IntN(n)
	}
	i := r.rng.IntN(n - 1)
	if i >= r.index {
		i++
	}
	return i
}

func (r *Rotator) changed() {
	if r.onChange != nil {
		r.onChange(r.State())
	}
}

func cancelled(h scheduler.Handle) scheduler.Handle {
	scheduler.Cancel(h)
	return nil
}
