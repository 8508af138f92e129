package transition

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/curtain/pkg/curtain/easing"
)

// StaggerStep is the start offset between consecutive strips of a
// multi-panel variant.
const StaggerStep = 100 * time.Millisecond

// Anchor pins a panel box to one vertical edge of the viewport.
type Anchor int

const (
	AnchorTop Anchor = iota
	AnchorBottom
)

// Origin is the vertical transform origin of a panel box.
type Origin int

const (
	OriginCenter Origin = iota
	OriginTop
	OriginBottom
)

func (o Origin) String() string {
	switch o {
	case OriginTop:
		return "top"
	case OriginBottom:
		return "bottom"
	default:
		return "center"
	}
}

// Layout places a panel box in the viewport. Left, Width and Height are
// percentages of the viewport size.
type Layout struct {
	Left   float64
	Width  float64
	Height float64
	Anchor Anchor
	Origin Origin
}

var fullScreen = Layout{Width: 100, Height: 100}

// Panel is one overlay rectangle and the animation it should run.
type Panel struct {
	Key        string
	Index      int
	Variant    Variant
	Layout     Layout
	Initial    VisualState
	Exit       VisualState
	Duration   time.Duration
	Delay      time.Duration
	Easing     easing.Spec
	Background string
	StackOrder int
}

// End returns the offset at which the panel reaches its exit state.
func (p Panel) End() time.Duration {
	return p.Delay + p.Duration
}

// composePanels builds the panel set for v. Unknown variants yield nil.
// trigger is the route that started the transition and keys the set.
func composePanels(v Variant, cfg Config, trigger Route) []Panel {
	def, ok := Lookup(v)
	if !ok {
		return nil
	}

	base := Panel{
		Variant:    v,
		Initial:    def.Initial,
		Exit:       def.Exit,
		Duration:   cfg.Duration(),
		Easing:     cfg.Easing,
		Background: cfg.BackgroundColor,
		StackOrder: cfg.StackOrder,
	}

	switch v {
	case VariantFade, VariantSlide, VariantSpiral, VariantBounce:
		p := base
		p.Key = fmt.Sprintf("%s-%s", v, trigger)
		p.Layout = fullScreen
		return []Panel{p}

	case VariantBlock:
		top := base
		top.Key = fmt.Sprintf("block-top-%s", trigger)
		top.Layout = Layout{Width: 100, Height: 50, Anchor: AnchorTop, Origin: OriginBottom}

		bottom := base
		bottom.Index = 1
		bottom.Key = fmt.Sprintf("block-bottom-%s", trigger)
		bottom.Layout = Layout{Width: 100, Height: 50, Anchor: AnchorBottom, Origin: OriginTop}
		bottom.Initial = def.Initial.Clone()
		bottom.Exit = def.Exit.Clone()

		return []Panel{top, bottom}

	case VariantMultiBlock:
		return strips(base, 4, OriginCenter, trigger)

	case VariantBlinds:
		return strips(base, 5, OriginTop, trigger)
	}

	return nil
}

// strips splits the viewport into count equal columns with staggered starts.
func strips(base Panel, count int, origin Origin, trigger Route) []Panel {
	width := 100 / float64(count)
	panels := make([]Panel, count)
	for i := range panels {
		p := base
		p.Index = i
		p.Key = fmt.Sprintf("%s-%d-%s", base.Variant, i, trigger)
		p.Layout = Layout{
			Left:   float64(i) * width,
			Width:  width,
			Height: 100,
			Origin: origin,
		}
		p.Delay = time.Duration(i) * StaggerStep
		p.Initial = base.Initial.Clone()
		p.Exit = base.Exit.Clone()
		panels[i] = p
	}
	return panels
}
