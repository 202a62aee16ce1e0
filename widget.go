package scrim

// Widget is the contract every visual component implements. The compositor
// drives widgets polymorphically through these three operations and never
// needs to know concrete widget identities.
//
// The *Compositor passed to Draw is valid only for the duration of the
// call; widgets must not retain it.
type Widget interface {
	// Draw renders the widget into the given area.
	Draw(c *Compositor, area Rect)

	// HandleInput reacts to an input event. Returning false means the
	// event was ignored, letting an enclosing container try its own
	// interpretation.
	HandleInput(ev Event) bool

	// MinSize returns the smallest area the widget can render into.
	MinSize() (width, height int)
}

// Stack draws a set of widgets in order over the same area, later children
// on top. Input goes to the topmost child first and falls through to the
// ones beneath when ignored.
type Stack struct {
	children []Widget
}

// NewStack creates a stack of the given widgets, bottom first.
func NewStack(children ...Widget) *Stack {
	return &Stack{children: children}
}

// Add appends widgets on top of the stack.
func (s *Stack) Add(children ...Widget) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Remove removes a child from the stack.
func (s *Stack) Remove(child Widget) {
	for i, ch := range s.children {
		if ch == child {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return
		}
	}
}

// Children returns the stacked widgets, bottom first.
func (s *Stack) Children() []Widget {
	return s.children
}

// Draw renders every child over the full area, each inside its own clip
// scope so a child cannot disturb its siblings' regions.
func (s *Stack) Draw(c *Compositor, area Rect) {
	for _, ch := range s.children {
		c.WithClip(area, func() {
			ch.Draw(c, area)
		})
	}
}

// HandleInput offers the event to children topmost-first, stopping at the
// first one that consumes it.
func (s *Stack) HandleInput(ev Event) bool {
	for i := len(s.children) - 1; i >= 0; i-- {
		if s.children[i].HandleInput(ev) {
			return true
		}
	}
	return false
}

// MinSize returns the largest minimum over all children.
func (s *Stack) MinSize() (int, int) {
	var w, h int
	for _, ch := range s.children {
		cw, chh := ch.MinSize()
		w = max(w, cw)
		h = max(h, chh)
	}
	return w, h
}
