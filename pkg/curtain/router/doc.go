// Package router provides screen navigation keyed by route names.
//
// Each screen takes an explicit input and returns an explicit result; a
// single transition function decides where to go next. The route of the
// running screen is what a transition overlay watches, so the router
// exposes it through Current and reports every change to OnNavigate
// observers.
//
// # Basic Usage
//
//	const (
//	    RouteList   router.Route = "/list"
//	    RouteDetail router.Route = "/detail"
//	)
//
//	r := router.New()
//
//	r.Register(RouteList, func(input any) (any, error) {
//	    return listScreen(input.(ListInput)), nil
//	})
//
//	r.Register(RouteDetail, func(input any) (any, error) {
//	    return detailScreen(input.(DetailInput)), nil
//	})
//
//	r.OnNavigate(func(from, to router.Route) {
//	    log.Printf("%s -> %s", from, to)
//	})
//
//	r.OnTransition(func(from router.Route, result any, stack *router.Stack) (router.Route, any) {
//	    switch from {
//	    case RouteList:
//	        res := result.(ListResult)
//	        if res.Selected != nil {
//	            stack.Push(from, ListInput{}, res.Resume)
//	            return RouteDetail, DetailInput{Item: res.Selected}
//	        }
//	    case RouteDetail:
//	        if entry := stack.Pop(); entry != nil {
//	            return entry.Route, entry.Input
//	        }
//	    }
//	    return router.RouteExit, nil
//	})
//
//	r.Run(RouteList, ListInput{Items: items})
//
// # Resume State
//
// Screens can return resume state (like scroll position) that gets stored
// on the stack when navigating forward. When navigating back, this state
// is passed back to the screen via its input, allowing it to restore position.
package router
