// Package display draws transition overlays into an SDL2 window.
package display

import (
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/curtain/pkg/curtain"
	"github.com/BrandonKowalski/curtain/pkg/curtain/constants"
	"github.com/BrandonKowalski/curtain/pkg/curtain/internal"
	"github.com/BrandonKowalski/curtain/pkg/curtain/overlay"
)

// Window wraps the SDL window and renderer.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	hasVSync        bool
	lastPresentTime uint64
}

// Open initializes SDL video and creates a window with an accelerated,
// alpha-blending renderer.
func Open(opts Options) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, curtain.NewInfrastructureError("init_sdl", err)
	}

	winOpts := opts.Window
	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = WindowOptions{Resizable: true}
		} else {
			winOpts = WindowOptions{Borderless: true}
		}
	}

	width, height := opts.Width, opts.Height
	if width == 0 || height == 0 {
		mode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to get display mode", "error", err)
			width, height = constants.DefaultWindowWidth, constants.DefaultWindowHeight
		} else {
			width, height = mode.W, mode.H
		}
	}

	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)
	if constants.IsDevMode() {
		winOpts.Borderless = false
		x, y = 50, 50
		width = envSize(constants.WindowWidthEnvVar, constants.DefaultWindowWidth)
		height = envSize(constants.WindowHeightEnvVar, constants.DefaultWindowHeight)
	}

	internal.GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(opts.Title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		sdl.Quit()
		return nil, curtain.NewInfrastructureError("create_window", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, curtain.NewInfrastructureError("create_renderer", err)
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   window,
		Renderer: renderer,
		Title:    opts.Title,
		hasVSync: vsync,
	}, nil
}

func envSize(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		internal.GetInternalLogger().Warn("Invalid window size; using default", "variable", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

// Close destroys the renderer and window and shuts SDL down.
func (w *Window) Close() {
	w.Renderer.Destroy()
	w.Window.Destroy()
	sdl.Quit()
}

func (w *Window) GetWidth() int32 {
	width, _ := w.Window.GetSize()
	return width
}

func (w *Window) GetHeight() int32 {
	_, height := w.Window.GetSize()
	return height
}

// Clear fills the whole window with c.
func (w *Window) Clear(c sdl.Color) {
	w.Renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	w.Renderer.Clear()
}

// DrawQuads fills every non-empty quad, in order.
func (w *Window) DrawQuads(quads []overlay.Quad) error {
	indices := []int32{0, 1, 2, 0, 2, 3}
	for _, q := range quads {
		if q.Empty() {
			continue
		}
		c := sdl.Color{R: q.Fill.R, G: q.Fill.G, B: q.Fill.B, A: q.Fill.A}
		vertices := make([]sdl.Vertex, len(q.Points))
		for i, p := range q.Points {
			vertices[i] = sdl.Vertex{
				Position: sdl.FPoint{X: float32(p.X), Y: float32(p.Y)},
				Color:    c,
			}
		}
		if err := w.Renderer.RenderGeometry(nil, vertices, indices); err != nil {
			return curtain.NewInfrastructureError("draw_overlay", err)
		}
	}
	return nil
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		interval := uint64(constants.FrameInterval.Milliseconds())
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < interval {
			sdl.Delay(uint32(interval - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}
