package curtain

import (
	"time"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/curtain/pkg/curtain/animator"
	"github.com/BrandonKowalski/curtain/pkg/curtain/internal"
	"github.com/BrandonKowalski/curtain/pkg/curtain/transition"
)

// Observer is told when transitions start and finish.
type Observer interface {
	TransitionStarted(variant transition.Variant, route transition.Route)
	TransitionCompleted(variant transition.Variant, elapsed time.Duration)
}

// AbandonObserver is implemented by observers that also want to hear about
// transitions dropped by Stage.Abandon before they completed.
type AbandonObserver interface {
	TransitionAbandoned(variant transition.Variant, elapsed time.Duration)
}

// Scene is what a frame should draw: the page content, then the overlay
// samples at StackOrder.
type Scene struct {
	Children   any
	Samples    []animator.Sample
	StackOrder int
}

// Stage drives a Host with an Animator, one frame at a time.
//
// Frame must be called from the render loop. Transitioning and Started may
// be called from any goroutine.
type Stage struct {
	host     *Host
	animator *animator.Animator
	observer Observer

	active  atomic.Bool
	started atomic.Int64
	elapsed time.Duration
}

// StageOption configures a Stage
type StageOption func(*Stage)

// WithObserver reports transition starts and completions to o
func WithObserver(o Observer) StageOption {
	return func(s *Stage) {
		s.observer = o
	}
}

// NewStage creates a Stage for cfg.
func NewStage(cfg transition.Config, opts ...StageOption) *Stage {
	s := &Stage{
		host:     NewHost(cfg),
		animator: animator.New(animator.WithLogger(internal.GetInternalLogger())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Host returns the stage's host.
func (s *Stage) Host() *Host {
	return s.host
}

// Frame renders route and children and advances the overlay by dt.
// A transition that starts on this frame is sampled at its first instant.
func (s *Stage) Frame(route transition.Route, children any, dt time.Duration) Scene {
	wasActive := s.host.Transitioning()
	out := s.host.Render(route, children)

	step := dt
	if !wasActive && s.host.Transitioning() {
		s.started.Inc()
		s.elapsed = 0
		step = 0
		if s.observer != nil {
			s.observer.TransitionStarted(s.host.Config().Variant, route)
		}
	}

	if s.host.Transitioning() {
		s.animator.Play(out.Key, out.Panels, s.complete)
		s.elapsed += step
	}

	samples := s.animator.Advance(step)
	s.active.Store(s.host.Transitioning())

	return Scene{
		Children:   out.Children,
		Samples:    samples,
		StackOrder: s.host.Config().StackOrder,
	}
}

func (s *Stage) complete() {
	s.host.Complete()
	if s.observer != nil {
		s.observer.TransitionCompleted(s.host.Config().Variant, s.elapsed)
	}
}

// Abandon ends a running transition without playing it out, returning the
// stage to idle. The observer is told through TransitionAbandoned when it
// implements AbandonObserver. It does nothing while idle.
func (s *Stage) Abandon() {
	if !s.host.Transitioning() {
		return
	}
	s.animator.Stop()
	s.host.Complete()
	s.active.Store(false)
	if o, ok := s.observer.(AbandonObserver); ok {
		o.TransitionAbandoned(s.host.Config().Variant, s.elapsed)
	}
}

// Transitioning reports whether an overlay was on screen after the last
// frame.
func (s *Stage) Transitioning() bool {
	return s.active.Load()
}

// Started returns how many transitions this stage has started.
func (s *Stage) Started() int64 {
	return s.started.Load()
}
