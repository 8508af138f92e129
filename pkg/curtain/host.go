package curtain

import (
	"github.com/BrandonKowalski/curtain/pkg/curtain/internal"
	"github.com/BrandonKowalski/curtain/pkg/curtain/transition"
)

// Host is the public entry point for route-change overlays. It accepts the
// engine's configuration and forwards every call to it unchanged, so
// callers are insulated from changes to the engine's own signature.
type Host struct {
	engine *transition.Engine
}

// NewHost creates a Host around a new engine. Unless overridden by opts,
// the engine logs through curtain's internal logger.
func NewHost(cfg transition.Config, opts ...transition.Option) *Host {
	opts = append([]transition.Option{transition.WithLogger(internal.GetInternalLogger())}, opts...)
	return &Host{engine: transition.NewEngine(cfg, opts...)}
}

// Render passes the current route and the wrapped content to the engine.
func (h *Host) Render(route transition.Route, children any) transition.Output {
	return h.engine.Render(route, children)
}

// Complete delivers the animation driver's completion signal.
func (h *Host) Complete() {
	h.engine.Complete()
}

// Transitioning reports whether an overlay currently owns the display.
func (h *Host) Transitioning() bool {
	return h.engine.State() == transition.StateTransitioning
}

// State returns the engine's state.
func (h *Host) State() transition.State {
	return h.engine.State()
}

// Config returns the effective configuration.
func (h *Host) Config() transition.Config {
	return h.engine.Config()
}
