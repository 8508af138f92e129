// Package snapshot renders transition frames offscreen.
//
// Frames are described as an SVG document and rasterized with oksvg and
// rasterx, so they can be produced on machines without a display or SDL.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"
	"time"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/BrandonKowalski/curtain/pkg/curtain/animator"
	"github.com/BrandonKowalski/curtain/pkg/curtain/overlay"
	"github.com/BrandonKowalski/curtain/pkg/curtain/transition"
)

// SVG describes quads as a width x height SVG document. Empty quads are
// left out.
func SVG(quads []overlay.Quad, width, height int) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, width, height, width, height)
	for _, q := range quads {
		if q.Empty() {
			continue
		}
		points := make([]string, len(q.Points))
		for i, p := range q.Points {
			points[i] = fmt.Sprintf("%.3f,%.3f", p.X, p.Y)
		}
		fmt.Fprintf(&b, `<polygon points="%s" fill="#%02x%02x%02x" fill-opacity="%.4f"/>`,
			strings.Join(points, " "), q.Fill.R, q.Fill.G, q.Fill.B, float64(q.Fill.A)/255)
	}
	b.WriteString(`</svg>`)
	return b.String()
}

// Render draws quads over a backdrop color.
func Render(quads []overlay.Quad, width, height int, backdrop color.Color) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(backdrop), image.Point{}, draw.Src)

	icon, err := oksvg.ReadIconStream(strings.NewReader(SVG(quads, width, height)), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("snapshot: parse frame: %w", err)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

// Frame renders panels as they look at offset t.
func Frame(panels []transition.Panel, t time.Duration, width, height int, backdrop color.Color) (*image.RGBA, error) {
	quads := overlay.Quads(animator.SampleAt(panels, t), int32(width), int32(height))
	return Render(quads, width, height, backdrop)
}

// Sequence renders count evenly spaced frames from the start of the set to
// its end, both included.
func Sequence(panels []transition.Panel, count, width, height int, backdrop color.Color) ([]*image.RGBA, error) {
	if count < 1 {
		return nil, nil
	}

	end := animator.End(panels)
	frames := make([]*image.RGBA, 0, count)
	for i := 0; i < count; i++ {
		var t time.Duration
		if count > 1 {
			t = end * time.Duration(i) / time.Duration(count-1)
		}
		img, err := Frame(panels, t, width, height, backdrop)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		frames = append(frames, img)
	}
	return frames, nil
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("snapshot: encode png: %w", err)
	}
	return nil
}
