package router

import "fmt"

// Route identifies a screen by path-like name, e.g. "/library".
// Applications should define their own Route constants.
//
// Example:
//
//	const (
//	    RouteHome     Route = "/"
//	    RouteSettings Route = "/settings"
//	)
type Route string

// ScreenFunc is a function that runs a screen.
// It takes an input and returns a result.
// The input and result types are screen-specific.
type ScreenFunc func(input any) (result any, err error)

// TransitionFunc is called after each screen completes to determine the next screen.
// It receives the route that just completed, its result, and the navigation stack.
// It returns the next route to navigate to and its input.
//
// Return (route, input) to navigate to a new screen.
// Return stack.Pop() values to go back.
// Return (RouteExit, nil) to exit the router.
type TransitionFunc func(from Route, result any, stack *Stack) (next Route, input any)

// NavigateFunc observes every screen change, including the first one
// (from is RouteExit then).
type NavigateFunc func(from, to Route)

// RouteExit is a special Route value that signals the router to exit.
const RouteExit Route = ""

// Router manages screen navigation with explicit data flow.
// Screens are registered with their functions, and a single transition
// function handles all routing logic in one place.
type Router struct {
	screens    map[Route]ScreenFunc
	transition TransitionFunc
	navigate   []NavigateFunc
	stack      *Stack
	current    Route
}

// New creates a new Router.
func New() *Router {
	return &Router{
		screens: make(map[Route]ScreenFunc),
		stack:   NewStack(),
	}
}

// Register adds a screen to the router.
// The screen function will be called when navigating to this route.
func (r *Router) Register(route Route, fn ScreenFunc) *Router {
	r.screens[route] = fn
	return r
}

// OnTransition sets the transition function that determines navigation flow.
// This function is called after each screen completes.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// OnNavigate adds an observer called before each screen runs.
// Observers run in registration order.
func (r *Router) OnNavigate(fn NavigateFunc) *Router {
	r.navigate = append(r.navigate, fn)
	return r
}

// Current returns the route of the running screen, or RouteExit when the
// router is not running.
func (r *Router) Current() Route {
	return r.current
}

// Run starts the router at the given route with the given input.
// It continues running until the transition function returns RouteExit
// or an error occurs.
func (r *Router) Run(start Route, input any) error {
	if r.transition == nil {
		return fmt.Errorf("router: no transition function set")
	}

	current := start
	currentInput := input
	defer func() { r.current = RouteExit }()

	for {
		fn, ok := r.screens[current]
		if !ok {
			return fmt.Errorf("router: route %q not registered", current)
		}

		previous := r.current
		r.current = current
		for _, observe := range r.navigate {
			observe(previous, current)
		}

		result, err := fn(currentInput)
		if err != nil {
			return fmt.Errorf("router: route %q error: %w", current, err)
		}

		next, nextInput := r.transition(current, result, r.stack)

		if next == RouteExit {
			return nil
		}

		current = next
		currentInput = nextInput
	}
}

// Stack returns the navigation stack for use in transition functions.
// This allows the transition function to push/pop for back navigation.
func (r *Router) Stack() *Stack {
	return r.stack
}
