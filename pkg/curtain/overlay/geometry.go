// Package overlay turns animated panel samples into screen-space quads.
//
// Both the SDL display and the offscreen snapshot renderer draw from the
// quads produced here, so a frame looks the same on either target.
package overlay

import (
	"image/color"
	"math"
	"sort"

	"github.com/BrandonKowalski/curtain/pkg/curtain/animator"
	"github.com/BrandonKowalski/curtain/pkg/curtain/transition"
)

// Point is a position in viewport pixels.
type Point struct {
	X, Y float64
}

// Quad is one filled, possibly rotated, panel outline. Points run clockwise
// from the top-left corner of the untransformed box.
type Quad struct {
	Key    string
	Points [4]Point
	Fill   color.RGBA
	Z      int
}

// Empty reports whether the quad covers no area or is fully transparent.
func (q Quad) Empty() bool {
	if q.Fill.A == 0 {
		return true
	}
	p := q.Points
	area := 0.0
	for i := range p {
		j := (i + 1) % len(p)
		area += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return math.Abs(area) < 1e-9
}

// Bounds returns the axis-aligned bounding box of the quad.
func (q Quad) Bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range q.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return
}

// Quads lays out samples in a width x height viewport, lowest stack order
// first. Panels sharing a stack order keep their sample order.
func Quads(samples []animator.Sample, width, height int32) []Quad {
	quads := make([]Quad, 0, len(samples))
	for _, s := range samples {
		quads = append(quads, quadFor(s, float64(width), float64(height)))
	}
	sort.SliceStable(quads, func(i, j int) bool {
		return quads[i].Z < quads[j].Z
	})
	return quads
}

func quadFor(s animator.Sample, w, h float64) Quad {
	layout := s.Panel.Layout
	values := s.Values

	x0 := layout.Left / 100 * w
	bw := layout.Width / 100 * w
	bh := layout.Height / 100 * h
	if v, ok := values[transition.PropHeight]; ok {
		// Height resizes the box; the anchored edge stays put.
		bh = math.Max(0, length(v, bh))
	}
	y0 := 0.0
	if layout.Anchor == transition.AnchorBottom {
		y0 = h - bh
	}

	sx, sy := 1.0, 1.0
	if v, ok := values[transition.PropScaleY]; ok {
		sy *= v.Amount
	}
	if v, ok := values[transition.PropScale]; ok {
		sx *= v.Amount
		sy *= v.Amount
	}

	ox := x0 + bw/2
	var oy float64
	switch layout.Origin {
	case transition.OriginTop:
		oy = y0
	case transition.OriginBottom:
		oy = y0 + bh
	default:
		oy = y0 + bh/2
	}

	var rad float64
	if v, ok := values[transition.PropRotate]; ok {
		rad = v.Amount * math.Pi / 180
	}
	sin, cos := math.Sincos(rad)

	var ty float64
	if v, ok := values[transition.PropY]; ok {
		ty = length(v, bh)
	}

	corners := [4]Point{{x0, y0}, {x0 + bw, y0}, {x0 + bw, y0 + bh}, {x0, y0 + bh}}
	var out [4]Point
	for i, c := range corners {
		dx := (c.X - ox) * sx
		dy := (c.Y - oy) * sy
		out[i] = Point{
			X: ox + dx*cos - dy*sin,
			Y: oy + dx*sin + dy*cos + ty,
		}
	}

	fill := ParseColor(s.Panel.Background)
	if v, ok := values[transition.PropOpacity]; ok {
		fill.A = uint8(math.Round(float64(fill.A) * clamp01(v.Amount)))
	}

	return Quad{
		Key:    s.Panel.Key,
		Points: out,
		Fill:   fill,
		Z:      s.Panel.StackOrder,
	}
}

// length resolves v against a reference length in pixels.
func length(v transition.Value, ref float64) float64 {
	if v.Percent {
		return ref * v.Amount / 100
	}
	return v.Amount
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
