// Package animator plays overlay panel sets frame by frame.
//
// The Animator is the animation driver behind a transition: it interpolates
// every panel from its initial to its exit state, honoring per-panel delay
// and easing, and fires one completion callback when the last panel of the
// set has finished. Time only moves when the caller advances it, so the
// Animator owns no timers and runs on the caller's render loop.
package animator

import (
	"log/slog"
	"time"

	"github.com/BrandonKowalski/curtain/pkg/curtain/easing"
	"github.com/BrandonKowalski/curtain/pkg/curtain/transition"
)

// Sample is the interpolated state of one panel at one instant.
type Sample struct {
	Panel    transition.Panel
	Values   transition.VisualState
	Progress float64 // Eased progress, 0 before the delay has passed
}

// Animator drives one keyed panel set at a time.
type Animator struct {
	key        string
	panels     []transition.Panel
	curves     []easing.Curve
	elapsed    time.Duration
	end        time.Duration
	onComplete func()
	playing    bool
	logger     *slog.Logger
}

// Option configures an Animator
type Option func(*Animator)

// WithLogger sets the logger for the animator
func WithLogger(logger *slog.Logger) Option {
	return func(a *Animator) {
		a.logger = logger
	}
}

// New creates an idle Animator.
func New(opts ...Option) *Animator {
	a := &Animator{logger: transition.Logger}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Play starts animating panels under key. If the same key is already
// playing the call is ignored and Play returns false. A different key
// replaces the running set without firing its completion callback.
// An empty set completes on the next Advance.
func (a *Animator) Play(key string, panels []transition.Panel, onComplete func()) bool {
	if a.playing && a.key == key {
		return false
	}
	if a.playing {
		a.logger.Debug("replacing running panel set", "old", a.key, "new", key)
	}

	a.key = key
	a.panels = panels
	a.curves = make([]easing.Curve, len(panels))
	a.elapsed = 0
	a.end = 0
	a.onComplete = onComplete
	a.playing = true

	for i, p := range panels {
		curve, ok := easing.Resolve(p.Easing)
		if !ok {
			a.logger.Debug("unknown easing, using default", "easing", p.Easing.String(), "panel", p.Key)
		}
		a.curves[i] = curve
		if p.End() > a.end {
			a.end = p.End()
		}
	}

	return true
}

// Playing reports whether a panel set is running.
func (a *Animator) Playing() bool {
	return a.playing
}

// Key returns the key of the running set, or "" when idle.
func (a *Animator) Key() string {
	if !a.playing {
		return ""
	}
	return a.key
}

// Elapsed returns the time played so far in the running set.
func (a *Animator) Elapsed() time.Duration {
	return a.elapsed
}

// Stop drops the running set without firing its completion callback.
func (a *Animator) Stop() {
	a.reset()
}

// Advance moves the clock by dt and returns the samples to draw. When the
// set finishes, the completion callback runs once and no samples are
// returned.
func (a *Animator) Advance(dt time.Duration) []Sample {
	if !a.playing {
		return nil
	}
	if dt > 0 {
		a.elapsed += dt
	}

	if a.elapsed >= a.end {
		done := a.onComplete
		a.reset()
		if done != nil {
			done()
		}
		return nil
	}

	samples := make([]Sample, len(a.panels))
	for i, p := range a.panels {
		samples[i] = sample(p, a.curves[i], a.elapsed)
	}
	return samples
}

func (a *Animator) reset() {
	a.key = ""
	a.panels = nil
	a.curves = nil
	a.elapsed = 0
	a.end = 0
	a.onComplete = nil
	a.playing = false
}

// SampleAt returns the state of every panel at offset t from the start of
// the set. Offsets past a panel's end hold its exit state.
func SampleAt(panels []transition.Panel, t time.Duration) []Sample {
	samples := make([]Sample, len(panels))
	for i, p := range panels {
		curve, _ := easing.Resolve(p.Easing)
		samples[i] = sample(p, curve, t)
	}
	return samples
}

// End returns when the last panel of the set reaches its exit state.
func End(panels []transition.Panel) time.Duration {
	var end time.Duration
	for _, p := range panels {
		if p.End() > end {
			end = p.End()
		}
	}
	return end
}

func sample(p transition.Panel, curve easing.Curve, t time.Duration) Sample {
	local := t - p.Delay
	var linear float64
	switch {
	case local <= 0:
		linear = 0
	case p.Duration <= 0 || local >= p.Duration:
		linear = 1
	default:
		linear = float64(local) / float64(p.Duration)
	}

	eased := curve(linear)
	return Sample{
		Panel:    p,
		Values:   Interpolate(p.Initial, p.Exit, eased),
		Progress: eased,
	}
}

// Interpolate blends from and to at progress. Properties present on only
// one side keep that side's value.
func Interpolate(from, to transition.VisualState, progress float64) transition.VisualState {
	out := make(transition.VisualState, len(from))
	for prop, a := range from {
		b, ok := to[prop]
		if !ok {
			out[prop] = a
			continue
		}
		out[prop] = lerp(a, b, progress)
	}
	for prop, b := range to {
		if _, ok := from[prop]; !ok {
			out[prop] = b
		}
	}
	return out
}

func lerp(a, b transition.Value, t float64) transition.Value {
	return transition.Value{
		Amount:  a.Amount + (b.Amount-a.Amount)*t,
		Percent: a.Percent || b.Percent,
	}
}
