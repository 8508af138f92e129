// Package easing maps animation progress onto eased progress.
//
// Curves are selected either by name (the same vocabulary web animation
// libraries use: "easeInOut", "circOut", "anticipate", ...) or by an explicit
// list of four cubic-bezier control points.
package easing

import (
	"fmt"
	"math"
	"strings"
)

// Curve maps linear progress in [0, 1] onto eased progress.
// Overshooting curves may leave [0, 1] between the endpoints, but every
// Curve returned by this package maps 0 to 0 and 1 to 1.
type Curve func(t float64) float64

// Curve names understood by Resolve.
const (
	Linear     = "linear"
	EaseIn     = "easeIn"
	EaseOut    = "easeOut"
	EaseInOut  = "easeInOut"
	CircIn     = "circIn"
	CircOut    = "circOut"
	CircInOut  = "circInOut"
	BackIn     = "backIn"
	BackOut    = "backOut"
	BackInOut  = "backInOut"
	Anticipate = "anticipate"
)

// Default is the curve used when none is configured.
const Default = EaseInOut

// Spec selects a curve. Points, when present, win over Name and must hold
// exactly four values (x1, y1, x2, y2) with both x values inside [0, 1].
type Spec struct {
	Name   string
	Points []float64
}

// Named returns a Spec for a named curve.
func Named(name string) Spec {
	return Spec{Name: name}
}

// Bezier returns a Spec for an explicit cubic-bezier curve.
func Bezier(x1, y1, x2, y2 float64) Spec {
	return Spec{Points: []float64{x1, y1, x2, y2}}
}

// IsZero reports whether the spec selects nothing.
func (s Spec) IsZero() bool {
	return s.Name == "" && len(s.Points) == 0
}

func (s Spec) String() string {
	if len(s.Points) > 0 {
		parts := make([]string, len(s.Points))
		for i, p := range s.Points {
			parts[i] = fmt.Sprintf("%g", p)
		}
		return "cubicBezier(" + strings.Join(parts, ", ") + ")"
	}
	if s.Name == "" {
		return Default
	}
	return s.Name
}

var (
	easeIn    = cubicBezier(0.42, 0, 1, 1)
	easeOut   = cubicBezier(0, 0, 0.58, 1)
	easeInOut = cubicBezier(0.42, 0, 0.58, 1)
	backOut   = cubicBezier(0.33, 1.53, 0.69, 0.99)
	backIn    = reverse(backOut)
)

func circIn(t float64) float64 {
	return 1 - math.Sin(math.Acos(t))
}

func anticipate(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * backIn(t)
	}
	return 0.5 * (2 - math.Pow(2, -10*(t-1)))
}

var named = map[string]Curve{
	Linear:     func(t float64) float64 { return t },
	EaseIn:     easeIn,
	EaseOut:    easeOut,
	EaseInOut:  easeInOut,
	CircIn:     circIn,
	CircOut:    reverse(circIn),
	CircInOut:  mirror(circIn),
	BackIn:     backIn,
	BackOut:    backOut,
	BackInOut:  mirror(backIn),
	Anticipate: anticipate,
}

// Names returns every curve name Resolve accepts.
func Names() []string {
	return []string{Linear, EaseIn, EaseOut, EaseInOut, CircIn, CircOut, CircInOut, BackIn, BackOut, BackInOut, Anticipate}
}

// Resolve returns the curve selected by spec. An empty spec resolves to the
// default curve. Unknown names and malformed point lists also resolve to the
// default curve, with ok set to false.
func Resolve(spec Spec) (curve Curve, ok bool) {
	if len(spec.Points) > 0 {
		if !validPoints(spec.Points) {
			return clamped(easeInOut), false
		}
		p := spec.Points
		return clamped(cubicBezier(p[0], p[1], p[2], p[3])), true
	}

	if spec.Name == "" {
		return clamped(easeInOut), true
	}

	c, found := named[spec.Name]
	if !found {
		return clamped(easeInOut), false
	}
	return clamped(c), true
}

func validPoints(p []float64) bool {
	if len(p) != 4 {
		return false
	}
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return p[0] >= 0 && p[0] <= 1 && p[2] >= 0 && p[2] <= 1
}

func clamped(c Curve) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return c(t)
	}
}

// reverse turns an ease-in into an ease-out and vice versa.
func reverse(c Curve) Curve {
	return func(t float64) float64 { return 1 - c(1-t) }
}

// mirror builds an in-out curve from an ease-in.
func mirror(c Curve) Curve {
	return func(t float64) float64 {
		if t <= 0.5 {
			return c(2*t) / 2
		}
		return (2 - c(2*(1-t))) / 2
	}
}

const (
	subdivisionPrecision  = 1e-7
	subdivisionIterations = 24
)

func calcBezier(t, a1, a2 float64) float64 {
	return (((1-3*a2+3*a1)*t+(3*a2-6*a1))*t + 3*a1) * t
}

// cubicBezier solves x(t) = x by bisection and evaluates y(t).
func cubicBezier(x1, y1, x2, y2 float64) Curve {
	if x1 == y1 && x2 == y2 {
		return func(t float64) float64 { return t }
	}

	tForX := func(x float64) float64 {
		lower, upper := 0.0, 1.0
		t := x
		for i := 0; i < subdivisionIterations; i++ {
			t = lower + (upper-lower)/2
			d := calcBezier(t, x1, x2) - x
			if math.Abs(d) < subdivisionPrecision {
				break
			}
			if d > 0 {
				upper = t
			} else {
				lower = t
			}
		}
		return t
	}

	return func(x float64) float64 {
		if x == 0 || x == 1 {
			return x
		}
		return calcBezier(tForX(x), y1, y2)
	}
}
