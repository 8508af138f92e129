package transition

import (
	"fmt"
	"strconv"
	"strings"
)

// Variant names a visual treatment for the overlay.
type Variant string

const (
	VariantFade       Variant = "fade"       // Overlay fades from opaque to transparent
	VariantSlide      Variant = "slide"      // Overlay slides off the top of the screen
	VariantBlock      Variant = "block"      // Two half-height panels collapse
	VariantMultiBlock Variant = "multiBlock" // Four staggered strips slide off the top
	VariantSpiral     Variant = "spiral"     // Overlay spins, shrinks and fades
	VariantBlinds     Variant = "blinds"     // Five staggered strips fold up
	VariantBounce     Variant = "bounce"     // Same transform set as slide
)

// Variants returns every known variant in table order.
func Variants() []Variant {
	return []Variant{
		VariantFade,
		VariantSlide,
		VariantBlock,
		VariantMultiBlock,
		VariantSpiral,
		VariantBlinds,
		VariantBounce,
	}
}

// Known reports whether v has a definition.
func (v Variant) Known() bool {
	_, ok := definitions[v]
	return ok
}

// Profile names a deployment's variant set. It picks the variant used when
// none is configured; an explicitly configured known variant always renders.
type Profile string

const (
	// ProfileMinimal ships the panel-based variants and defaults to block.
	ProfileMinimal Profile = "minimal"
	// ProfileExtended ships every variant and defaults to fade.
	ProfileExtended Profile = "extended"
)

// DefaultVariant returns the variant used when none is configured.
func (p Profile) DefaultVariant() Variant {
	if p == ProfileExtended {
		return VariantFade
	}
	return VariantBlock
}

// Includes reports whether v is part of the profile's variant set.
func (p Profile) Includes(v Variant) bool {
	if !v.Known() {
		return false
	}
	if p == ProfileExtended {
		return true
	}
	switch v {
	case VariantBlock, VariantMultiBlock, VariantBlinds:
		return true
	}
	return false
}

// Property is an animatable visual property of a panel.
type Property string

const (
	PropOpacity Property = "opacity" // Fill alpha multiplier, 0..1
	PropY       Property = "y"       // Vertical translation
	PropScale   Property = "scale"   // Uniform scale about the center
	PropRotate  Property = "rotate"  // Rotation in degrees about the center
	PropScaleY  Property = "scaleY"  // Vertical scale about the transform origin
	PropHeight  Property = "height"  // Height relative to the panel box
)

// Value is a numeric property value, optionally a percentage.
type Value struct {
	Amount  float64
	Percent bool
}

// Num returns a plain numeric value.
func Num(v float64) Value { return Value{Amount: v} }

// Pct returns a percentage value.
func Pct(v float64) Value { return Value{Amount: v, Percent: true} }

func (v Value) String() string {
	s := strconv.FormatFloat(v.Amount, 'g', -1, 64)
	if v.Percent {
		return s + "%"
	}
	return s
}

// ParseValue reads "12", "-100%" or "0.5" style values.
func ParseValue(s string) (Value, error) {
	s = strings.TrimSpace(s)
	pct := strings.HasSuffix(s, "%")
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return Value{}, fmt.Errorf("parse value %q: %w", s, err)
	}
	return Value{Amount: f, Percent: pct}, nil
}

// VisualState maps properties to their values at one end of an animation.
type VisualState map[Property]Value

// Clone returns an independent copy of the state.
func (s VisualState) Clone() VisualState {
	out := make(VisualState, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Definition holds the two visual states a variant animates between.
type Definition struct {
	Initial VisualState
	Exit    VisualState
}

var definitions = map[Variant]Definition{
	VariantFade: {
		Initial: VisualState{PropOpacity: Num(1)},
		Exit:    VisualState{PropOpacity: Num(0)},
	},
	VariantSlide: {
		Initial: VisualState{PropY: Num(0)},
		Exit:    VisualState{PropY: Pct(-100)},
	},
	VariantBlock: {
		Initial: VisualState{PropHeight: Pct(100)},
		Exit:    VisualState{PropHeight: Num(0)},
	},
	VariantMultiBlock: {
		Initial: VisualState{PropY: Num(0)},
		Exit:    VisualState{PropY: Pct(-100)},
	},
	VariantSpiral: {
		Initial: VisualState{PropScale: Num(1), PropRotate: Num(0), PropOpacity: Num(1)},
		Exit:    VisualState{PropScale: Num(0), PropRotate: Num(180), PropOpacity: Num(0)},
	},
	VariantBlinds: {
		Initial: VisualState{PropScaleY: Num(1)},
		Exit:    VisualState{PropScaleY: Num(0)},
	},
	VariantBounce: {
		Initial: VisualState{PropY: Num(0)},
		Exit:    VisualState{PropY: Pct(-100)},
	},
}

// Lookup returns the definition for v. The returned states are copies.
func Lookup(v Variant) (Definition, bool) {
	d, ok := definitions[v]
	if !ok {
		return Definition{}, false
	}
	return Definition{Initial: d.Initial.Clone(), Exit: d.Exit.Clone()}, true
}
