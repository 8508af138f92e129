package overlay

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/curtain/pkg/curtain/animator"
	"github.com/BrandonKowalski/curtain/pkg/curtain/easing"
	"github.com/BrandonKowalski/curtain/pkg/curtain/transition"
)

func panels(t *testing.T, v transition.Variant) []transition.Panel {
	t.Helper()
	e := transition.NewEngine(transition.Config{
		Profile: transition.ProfileExtended,
		Variant: v,
		Easing:  easing.Named(easing.Linear),
	})
	e.Render("/a", nil)
	out := e.Render("/b", nil)
	require.NotEmpty(t, out.Panels)
	return out.Panels
}

func assertPoints(t *testing.T, want [4]Point, got Quad) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i].X, got.Points[i].X, 1e-6, "point %d x", i)
		assert.InDelta(t, want[i].Y, got.Points[i].Y, 1e-6, "point %d y", i)
	}
}

func TestBlockHalvesCollapseTowardTheirEdges(t *testing.T) {
	ps := panels(t, transition.VariantBlock)

	start := Quads(animator.SampleAt(ps, 0), 100, 200)
	require.Len(t, start, 2)
	assertPoints(t, [4]Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}}, start[0])
	assertPoints(t, [4]Point{{0, 100}, {100, 100}, {100, 200}, {0, 200}}, start[1])

	half := Quads(animator.SampleAt(ps, 375*time.Millisecond), 100, 200)
	assertPoints(t, [4]Point{{0, 0}, {100, 0}, {100, 50}, {0, 50}}, half[0])
	assertPoints(t, [4]Point{{0, 150}, {100, 150}, {100, 200}, {0, 200}}, half[1])

	end := Quads(animator.SampleAt(ps, time.Second), 100, 200)
	for _, q := range end {
		assert.True(t, q.Empty())
	}
}

func TestMultiBlockStripsSlideUp(t *testing.T) {
	ps := panels(t, transition.VariantMultiBlock)

	start := Quads(animator.SampleAt(ps, 0), 200, 100)
	require.Len(t, start, 4)
	for i, q := range start {
		minX, minY, maxX, maxY := q.Bounds()
		assert.InDelta(t, float64(i)*50, minX, 1e-6)
		assert.InDelta(t, float64(i+1)*50, maxX, 1e-6)
		assert.InDelta(t, 0, minY, 1e-6)
		assert.InDelta(t, 100, maxY, 1e-6)
	}

	end := Quads(animator.SampleAt(ps, 2*time.Second), 200, 100)
	for _, q := range end {
		_, minY, _, maxY := q.Bounds()
		assert.InDelta(t, -100, minY, 1e-6)
		assert.InDelta(t, 0, maxY, 1e-6)
	}
}

func TestBlindsFoldToTopEdge(t *testing.T) {
	ps := panels(t, transition.VariantBlinds)
	q := Quads(animator.SampleAt(ps, 375*time.Millisecond), 100, 100)[0]
	_, minY, _, maxY := q.Bounds()
	assert.InDelta(t, 0, minY, 1e-6)
	assert.InDelta(t, 50, maxY, 1e-6)
}

func TestFadeOpacityScalesAlpha(t *testing.T) {
	ps := panels(t, transition.VariantFade)
	q := Quads(animator.SampleAt(ps, 375*time.Millisecond), 10, 10)[0]
	assert.Equal(t, color.RGBA{A: 128}, q.Fill)

	end := Quads(animator.SampleAt(ps, time.Second), 10, 10)[0]
	assert.True(t, end.Empty())
}

func TestSpiralRotatesAboutCenter(t *testing.T) {
	ps := panels(t, transition.VariantSpiral)
	sample := animator.SampleAt(ps, 0)
	sample[0].Values[transition.PropRotate] = transition.Num(90)
	sample[0].Values[transition.PropOpacity] = transition.Num(1)

	q := Quads(sample, 100, 200)[0]
	minX, minY, maxX, maxY := q.Bounds()
	assert.InDelta(t, -50, minX, 1e-6)
	assert.InDelta(t, 150, maxX, 1e-6)
	assert.InDelta(t, 50, minY, 1e-6)
	assert.InDelta(t, 150, maxY, 1e-6)
}

func TestQuadsSortByStackOrder(t *testing.T) {
	ps := panels(t, transition.VariantBlock)
	ps[0].StackOrder = 90
	ps[1].StackOrder = 10

	quads := Quads(animator.SampleAt(ps, 0), 10, 10)
	assert.Equal(t, ps[1].Key, quads[0].Key)
	assert.Equal(t, ps[0].Key, quads[1].Key)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"black", color.RGBA{A: 255}, true},
		{" White ", color.RGBA{R: 255, G: 255, B: 255, A: 255}, true},
		{"#0f8", color.RGBA{G: 255, B: 136, A: 255}, true},
		{"#102030", color.RGBA{R: 16, G: 32, B: 48, A: 255}, true},
		{"#10203080", color.RGBA{R: 16, G: 32, B: 48, A: 128}, true},
		{"transparent", color.RGBA{}, true},
		{"#zzzzzz", color.RGBA{A: 255}, false},
		{"chartreuse-ish", color.RGBA{A: 255}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, ok := LookupColor(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, ParseColor(tt.in))
		})
	}
}
