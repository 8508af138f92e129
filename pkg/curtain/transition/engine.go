// Package transition decides when a route-change overlay plays and which
// panels it is made of.
//
// An Engine is fed the current route on every render. The first route it
// sees is only remembered. Any later route that differs from the remembered
// one starts a transition; the transition ends only when the animation
// driver calls Complete. A route change that arrives while a transition is
// already running refreshes the remembered route and nothing else: the
// running panel set keeps its key and is not restarted.
package transition

import (
	"log/slog"
)

// Route identifies the view currently on screen. Only equality matters.
type Route string

// State of the overlay state machine.
type State int

const (
	StateIdle State = iota
	StateTransitioning
)

func (s State) String() string {
	if s == StateTransitioning {
		return "transitioning"
	}
	return "idle"
}

// Logger is the default logger used when none is provided
var Logger = slog.Default()

// Session is the mutable state owned by one Engine.
type Session struct {
	Active        bool
	LastSeenRoute Route
	Seen          bool  // A route has been observed at least once
	Trigger       Route // Route whose change started the running transition
}

// Output is what a render pass produces.
type Output struct {
	Children any     // Passed through untouched
	Panels   []Panel // Empty unless a transition is running
	Key      string  // Identity of the panel set, empty when idle
}

// Engine runs the overlay state machine for one mounted view.
// It is not safe for concurrent use; drive it from the render loop.
type Engine struct {
	cfg      Config
	session  Session
	logger   *slog.Logger
	onChange func(from, to State)
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger for the engine
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStateChangeCallback sets a callback invoked after each state change
func WithStateChangeCallback(fn func(from, to State)) Option {
	return func(e *Engine) {
		e.onChange = fn
	}
}

// NewEngine creates an idle engine. Zero Config fields take their defaults.
func NewEngine(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:    cfg.WithDefaults(),
		logger: Logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Session returns a copy of the current session.
func (e *Engine) Session() Session {
	return e.session
}

// State returns the current state machine state.
func (e *Engine) State() State {
	if e.session.Active {
		return StateTransitioning
	}
	return StateIdle
}

// Render observes route and returns children plus the overlay panels that
// should be on screen.
func (e *Engine) Render(route Route, children any) Output {
	e.observe(route)

	out := Output{Children: children}
	if !e.session.Active {
		return out
	}

	if !e.cfg.Variant.Known() {
		e.logger.Debug("unknown transition variant, rendering no overlay", "variant", e.cfg.Variant)
		return out
	}

	out.Panels = composePanels(e.cfg.Variant, e.cfg, e.session.Trigger)
	out.Key = string(e.cfg.Variant) + ":" + string(e.session.Trigger)
	return out
}

func (e *Engine) observe(route Route) {
	if !e.session.Seen {
		e.session.Seen = true
		e.session.LastSeenRoute = route
		return
	}

	if route == e.session.LastSeenRoute {
		return
	}

	from := e.session.LastSeenRoute
	e.session.LastSeenRoute = route

	if e.session.Active {
		e.logger.Debug("route changed during transition", "from", from, "to", route, "trigger", e.session.Trigger)
		return
	}

	e.session.Active = true
	e.session.Trigger = route
	e.logger.Debug("transition started", "from", from, "to", route, "variant", e.cfg.Variant)
	e.notify(StateIdle, StateTransitioning)
}

// Complete is the animation driver's completion signal. It returns the
// engine to idle; calling it while idle does nothing.
func (e *Engine) Complete() {
	if !e.session.Active {
		return
	}
	e.session.Active = false
	e.logger.Debug("transition completed", "route", e.session.LastSeenRoute, "variant", e.cfg.Variant)
	e.notify(StateTransitioning, StateIdle)
}

func (e *Engine) notify(from, to State) {
	if e.onChange != nil {
		e.onChange(from, to)
	}
}
