package curtain_test

import (
	"fmt"

	"github.com/BrandonKowalski/curtain/pkg/curtain"
	"github.com/BrandonKowalski/curtain/pkg/curtain/transition"
)

// Example shows the Host reacting to a route change and settling once the
// animation driver reports completion.
func Example() {
	host := curtain.NewHost(transition.Config{
		Profile: transition.ProfileExtended,
		Variant: transition.VariantFade,
	})

	for _, route := range []transition.Route{"/", "/", "/settings"} {
		out := host.Render(route, "page")
		fmt.Printf("%s: %d panel(s), %s\n", route, len(out.Panels), host.State())
	}

	host.Complete()
	out := host.Render("/settings", "page")
	fmt.Printf("after completion: %d panel(s), %s\n", len(out.Panels), host.State())

	// Output:
	// /: 0 panel(s), idle
	// /: 0 panel(s), idle
	// /settings: 1 panel(s), transitioning
	// after completion: 0 panel(s), idle
}

// Example_stage drives the overlay clock frame by frame.
func Example_stage() {
	stage := curtain.NewStage(transition.Config{Variant: transition.VariantMultiBlock})

	stage.Frame("/", nil, 0)
	scene := stage.Frame("/library", nil, 0)
	for _, s := range scene.Samples {
		fmt.Printf("%s starts after %v\n", s.Panel.Key, s.Panel.Delay)
	}

	// Output:
	// multiBlock-0-/library starts after 0s
	// multiBlock-1-/library starts after 100ms
	// multiBlock-2-/library starts after 200ms
	// multiBlock-3-/library starts after 300ms
}
