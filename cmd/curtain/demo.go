package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/curtain/pkg/curtain"
	"github.com/BrandonKowalski/curtain/pkg/curtain/config"
	"github.com/BrandonKowalski/curtain/pkg/curtain/display"
	"github.com/BrandonKowalski/curtain/pkg/curtain/metrics"
	"github.com/BrandonKowalski/curtain/pkg/curtain/overlay"
	"github.com/BrandonKowalski/curtain/pkg/curtain/router"
	"github.com/BrandonKowalski/curtain/pkg/curtain/transition"
)

var (
	metricsAddr string
	fullscreen  bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Open a window and navigate between demo pages",
	Long: `Opens an SDL window with three pages. Right, Enter or Space moves to the next
page, Left or Backspace goes back, Home returns to the first page and Escape
quits. The config file is reloaded whenever it changes on disk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo()
	},
}

func init() {
	demoCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090")
	demoCmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "Cover the desktop instead of opening a window")
	rootCmd.AddCommand(demoCmd)
}

type page struct {
	route router.Route
	color sdl.Color
}

var demoPages = []page{
	{route: "/home", color: sdl.Color{R: 236, G: 239, B: 244, A: 255}},
	{route: "/library", color: sdl.Color{R: 163, G: 190, B: 140, A: 255}},
	{route: "/settings", color: sdl.Color{R: 129, G: 161, B: 193, A: 255}},
}

// navigation is what a page returns when it is left.
type navigation int

const (
	navNext navigation = iota
	navBack
	navHome
	navQuit
)

const historyLimit = 32

type demo struct {
	window    *display.Window
	stage     *curtain.Stage
	collector *metrics.Collector
	watcher   *config.Watcher
	lastFrame time.Time
}

func runDemo() error {
	file, err := loadConfig()
	if err != nil {
		return err
	}
	logger := curtain.GetLogger()

	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg)
	if err != nil {
		return err
	}
	if metricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			if err := http.ListenAndServe(metricsAddr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Metrics server stopped", "addr", metricsAddr, "error", err)
			}
		}()
	}

	opts := display.Options{Title: "curtain demo"}
	if fullscreen {
		opts.Window = display.WindowOptions{FullscreenDesktop: true}
	}
	window, err := display.Open(opts)
	if err != nil {
		return err
	}
	defer window.Close()

	d := &demo{
		window:    window,
		stage:     curtain.NewStage(file.Transition, curtain.WithObserver(collector)),
		collector: collector,
		lastFrame: time.Now(),
	}

	if path := resolveConfigPath(); path != "" {
		d.watcher, err = config.Watch(path)
		if err != nil {
			logger.Warn("Config hot reload disabled", "path", path, "error", err)
		} else {
			defer d.watcher.Close()
		}
	}

	r := router.New()
	r.Stack().SetLimit(historyLimit)
	for i := range demoPages {
		p := demoPages[i]
		r.Register(p.route, func(input any) (any, error) {
			return d.show(p)
		})
	}
	r.OnNavigate(func(from, to router.Route) {
		logger.Debug("Navigating", "from", from, "to", to)
	})
	r.OnTransition(navigate)

	err = r.Run(demoPages[0].route, nil)
	if curtain.IsQuit(err) {
		return nil
	}
	return err
}

// navigate maps a page's result to the next page, keeping back history on
// stack.
func navigate(from router.Route, result any, stack *router.Stack) (router.Route, any) {
	switch result.(navigation) {
	case navNext:
		stack.Push(from, nil, nil)
		return nextPage(from), nil
	case navBack:
		if entry := stack.Pop(); entry != nil {
			return entry.Route, nil
		}
	case navHome:
		home := demoPages[0].route
		if from == home {
			return home, nil
		}
		if stack.PopTo(home) == nil {
			stack.Clear()
		}
		return home, nil
	}
	return router.RouteExit, nil
}

func nextPage(from router.Route) router.Route {
	for i, p := range demoPages {
		if p.route == from {
			return demoPages[(i+1)%len(demoPages)].route
		}
	}
	return demoPages[0].route
}

// show runs the frame loop for p until the user navigates away.
func (d *demo) show(p page) (navigation, error) {
	for {
		nav, done, err := d.handleEvents()
		if err != nil || done {
			return nav, err
		}
		d.pollConfig(transition.Route(p.route))

		now := time.Now()
		dt := now.Sub(d.lastFrame)
		d.lastFrame = now

		scene := d.stage.Frame(transition.Route(p.route), p, dt)
		if err := d.render(scene); err != nil {
			return navQuit, err
		}
	}
}

func (d *demo) handleEvents() (navigation, bool, error) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return navQuit, true, curtain.ErrQuit

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			switch e.Keysym.Sym {
			case sdl.K_RIGHT, sdl.K_RETURN, sdl.K_SPACE:
				return navNext, true, nil
			case sdl.K_LEFT, sdl.K_BACKSPACE:
				return navBack, true, nil
			case sdl.K_HOME, sdl.K_h:
				return navHome, true, nil
			case sdl.K_ESCAPE, sdl.K_q:
				return navQuit, true, curtain.ErrQuit
			}
		}
	}
	return navNext, false, nil
}

func (d *demo) render(scene curtain.Scene) error {
	p := scene.Children.(page)
	d.window.Clear(p.color)

	width, height := d.window.GetWidth(), d.window.GetHeight()
	for i, candidate := range demoPages {
		if candidate.route == p.route {
			bar := sdl.Rect{X: 0, Y: height - height/12, W: width * int32(i+1) / int32(len(demoPages)), H: height / 12}
			d.window.Renderer.SetDrawColor(46, 52, 64, 255)
			d.window.Renderer.FillRect(&bar)
		}
	}

	if err := d.window.DrawQuads(overlay.Quads(scene.Samples, width, height)); err != nil {
		return err
	}
	d.window.Present()
	return nil
}

// pollConfig swaps in a new stage when the watched config file changed.
// The new stage starts settled on route.
func (d *demo) pollConfig(route transition.Route) {
	if d.watcher == nil {
		return
	}
	logger := curtain.GetLogger()

	select {
	case path, ok := <-d.watcher.Events:
		if !ok {
			d.watcher = nil
			return
		}
		file, err := config.Load(path)
		if err != nil {
			logger.Warn("Keeping previous config", "path", path, "error", err)
			return
		}
		d.reload(file, route)
		logger.Info("Config reloaded", "path", path, "variant", d.stage.Host().Config().Variant)
	case err, ok := <-d.watcher.Errors:
		if ok {
			logger.Warn("Config watcher error", "error", err)
		}
	default:
	}
}

// reload replaces the stage with one built from file, settled on route.
// A transition still running on the old stage is reported as abandoned.
func (d *demo) reload(file *config.File, route transition.Route) {
	if file.LogLevel != "" {
		curtain.SetRawLogLevel(file.LogLevel)
	}
	d.stage.Abandon()
	d.stage = curtain.NewStage(file.Transition, curtain.WithObserver(d.collector))
	d.stage.Frame(route, nil, 0)
}
