package router

// StackEntry is one step of navigation history: the route that was left,
// the input its screen ran with, and whatever state it wants back on return.
type StackEntry struct {
	Route  Route
	Input  any
	Resume any
}

// Stack is the back-navigation history of a Router. With a limit set, the
// oldest entries are dropped once the history grows past it.
type Stack struct {
	entries []StackEntry
	limit   int
}

// NewStack returns an empty, unbounded stack.
func NewStack() *Stack {
	return &Stack{}
}

// SetLimit bounds the history to n entries, dropping the oldest ones if it
// is already longer. Zero or less removes the bound.
func (s *Stack) SetLimit(n int) {
	s.limit = n
	s.trim()
}

// Push records route as the screen being left.
func (s *Stack) Push(route Route, input any, resume any) {
	s.entries = append(s.entries, StackEntry{Route: route, Input: input, Resume: resume})
	s.trim()
}

func (s *Stack) trim() {
	if s.limit > 0 && len(s.entries) > s.limit {
		s.entries = append(s.entries[:0], s.entries[len(s.entries)-s.limit:]...)
	}
}

// Pop removes and returns the newest entry, or nil when empty.
func (s *Stack) Pop() *StackEntry {
	top := s.Peek()
	if top == nil {
		return nil
	}
	entry := *top
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// PopTo unwinds the history to the newest entry for route and returns it.
// If route is not in the history the stack is left untouched and nil is
// returned.
func (s *Stack) PopTo(route Route) *StackEntry {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Route == route {
			entry := s.entries[i]
			s.entries = s.entries[:i]
			return &entry
		}
	}
	return nil
}

// Peek returns the newest entry without removing it, or nil when empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// IsEmpty reports whether there is no history.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear drops all history.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}

// Routes returns the stacked routes, oldest first.
func (s *Stack) Routes() []Route {
	routes := make([]Route, len(s.entries))
	for i, e := range s.entries {
		routes[i] = e.Route
	}
	return routes
}
