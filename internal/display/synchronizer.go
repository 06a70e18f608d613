package display

import (
	"github.com/sandeepkv93/pomodesk/internal/debug"
	"github.com/sandeepkv93/pomodesk/internal/quotes"
	"github.com/sandeepkv93/pomodesk/internal/storage"
	"github.com/sandeepkv93/pomodesk/internal/timer"
)

type Surface func(Frame)

// Synchronizer mirrors engine state into the primary surface, always, and
// into the fullscreen surface while it is open. It reads engine state and
// never mutates it.
type Synchronizer struct {
	engine  *timer.Engine
	store   *storage.Store
	rotator *quotes.Rotator
	visual  VisualSettings

	primary       Surface
	fullscreen    Surface
	primaryFrame  Frame
	fullFrame     Frame
	open          bool
	unsubPrimary  func()
	unsubFullview func()
}

type Option func(*Synchronizer)

func WithPrimary(s Surface) Option {
	return func(sy *Synchronizer) { sy.primary = s }
}

func WithFullscreen(s Surface) Option {
	return func(sy *Synchronizer) { sy.fullscreen = s }
}

// NewSynchronizer loads the visual settings, subscribes the primary surface
// and renders it once. rotator may be nil.
func NewSynchronizer(engine *timer.Engine, store *storage.Store, rotator *quotes.Rotator, opts ...Option) *Synchronizer {
	if store == nil {
		store = storage.NewStore(nil)
	}
	s := &Synchronizer{
		engine:  engine,
		store:   store,
		rotator: rotator,
		visual:  LoadVisualSettings(store),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.unsubPrimary = engine.Subscribe(s.renderPrimary)
	s.renderPrimary(engine.Snapshot())
	return s
}

func (s *Synchronizer) Visual() VisualSettings { return s.visual }

func (s *Synchronizer) Primary() Frame { return s.primaryFrame }

func (s *Synchronizer) Fullscreen() (Frame, bool) {
	return s.fullFrame, s.open
}

func (s *Synchronizer) IsOpen() bool { return s.open }

// Quote returns the rotator state, or the zero State when there is no
// rotator or the surface is closed.
func (s *Synchronizer) Quote() quotes.State {
	if s.rotator == nil || !s.open {
		return quotes.State{}
	}
	return s.rotator.State()
}

// OpenFullscreen derives the fullscreen frame from the current snapshot,
// subscribes it and starts the quote rotator. Opening twice is a no-op.
func (s *Synchronizer) OpenFullscreen() {
	if s.open {
		return
	}
	s.open = true
	s.unsubFullview = s.engine.Subscribe(s.renderFullscreen)
	s.renderFullscreen(s.engine.Snapshot())
	if s.rotator != nil {
		s.rotator.SetInstant(s.visual.Intensity == IntensityOff)
		s.rotator.Start()
	}
	debug.Log("display: fullscreen opened (%s, %s)", s.visual.Style, s.visual.Intensity)
}

// CloseFullscreen unsubscribes the fullscreen surface and stops the
// rotator. Closing a closed surface is a no-op.
func (s *Synchronizer) CloseFullscreen() {
	if !s.open {
		return
	}
	if s.unsubFullview != nil {
		s.unsubFullview()
		s.unsubFullview = nil
	}
	if s.rotator != nil {
		s.rotator.Stop()
	}
	s.open = false
	s.fullFrame = Frame{}
	debug.Log("display: fullscreen closed")
}

func (s *Synchronizer) ToggleFullscreen() {
	if s.open {
		s.CloseFullscreen()
		return
	}
	s.OpenFullscreen()
}

func (s *Synchronizer) SetStyle(st Style) {
	s.visual.Style = st
	SaveVisualSettings(s.store, s.visual)
	s.refresh()
}

func (s *Synchronizer) SetIntensity(in Intensity) {
	s.visual.Intensity = in
	SaveVisualSettings(s.store, s.visual)
	if s.rotator != nil {
		s.rotator.SetInstant(in == IntensityOff)
	}
	s.refresh()
}

// Close detaches from the engine and tears down the fullscreen surface.
func (s *Synchronizer) Close() {
	s.CloseFullscreen()
	if s.unsubPrimary != nil {
		s.unsubPrimary()
		s.unsubPrimary = nil
	}
}

func (s *Synchronizer) refresh() {
	snap := s.engine.Snapshot()
	s.renderPrimary(snap)
	if s.open {
		s.renderFullscreen(snap)
	}
}

func (s *Synchronizer) renderPrimary(snap timer.Snapshot) {
	s.primaryFrame = BuildFrame(snap, s.visual, FillElapsed)
	if s.primary != nil {
		s.primary(s.primaryFrame)
	}
}

func (s *Synchronizer) renderFullscreen(snap timer.Snapshot) {
	s.fullFrame = BuildFrame(snap, s.visual, FillRemaining)
	if s.fullscreen != nil {
		s.fullscreen(s.fullFrame)
	}
}
