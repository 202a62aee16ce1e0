package scrim

// clipStack bounds every compositor write to a nested stack of rects.
// The bottom entry is always the full buffer extent; each pushed rect is
// intersected with the entry beneath it, so the active region only
// shrinks as the stack grows.
type clipStack struct {
	stack []Rect
}

func newClipStack(bounds Rect) *clipStack {
	return &clipStack{stack: []Rect{bounds}}
}

// current returns the active clip region.
func (s *clipStack) current() Rect {
	return s.stack[len(s.stack)-1]
}

// push makes the intersection of r and the current region active.
func (s *clipStack) push(r Rect) {
	s.stack = append(s.stack, s.current().Intersect(r))
}

// pop restores the previous region. The root entry is never popped.
func (s *clipStack) pop() {
	if len(s.stack) > 1 {
		s.stack = s.stack[:len(s.stack)-1]
	}
}

// depth returns the number of entries, root included.
func (s *clipStack) depth() int {
	return len(s.stack)
}

// truncate pops entries until the stack is back at the given depth.
// The root entry always survives.
func (s *clipStack) truncate(depth int) {
	if depth < 1 {
		depth = 1
	}
	if depth < len(s.stack) {
		s.stack = s.stack[:depth]
	}
}

// reset drops every entry and installs a new root extent.
func (s *clipStack) reset(bounds Rect) {
	s.stack = s.stack[:0]
	s.stack = append(s.stack, bounds)
}
