package scrim

import "math"

// Rect is a rectangular region in cell coordinates.
// A Rect with zero width or height is empty; drawing into an empty
// rect is a no-op everywhere in this package.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rect, clamping negative dimensions to zero.
func NewRect(x, y, w, h int) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// Empty returns true if the rect has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Area returns the number of cells the rect covers.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.W * r.H
}

// Right returns the exclusive right edge, saturating on overflow.
func (r Rect) Right() int {
	if r.X > math.MaxInt-r.W {
		return math.MaxInt
	}
	return r.X + r.W
}

// Bottom returns the exclusive bottom edge, saturating on overflow.
func (r Rect) Bottom() int {
	if r.Y > math.MaxInt-r.H {
		return math.MaxInt
	}
	return r.Y + r.H
}

// Contains returns true if the point lies within the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Translate returns the rect moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Shrink insets all four sides by n, clamping dimensions at zero.
func (r Rect) Shrink(n int) Rect {
	return r.Inset(n, n, n, n)
}

// Inset shrinks each side independently, clamping dimensions at zero.
func (r Rect) Inset(top, right, bottom, left int) Rect {
	r.X += left
	r.Y += top
	r.W -= left + right
	r.H -= top + bottom
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	return r
}

// Intersect returns the overlapping region of two rects.
// Disjoint rects yield the zero rect.
func (r Rect) Intersect(o Rect) Rect {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.Right(), o.Right())
	y2 := min(r.Bottom(), o.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// SplitHorizontal cuts the rect along a horizontal line, returning the rows
// above and below the offset. The offset is clamped to [0, H] so the two
// parts always sum to the original.
func (r Rect) SplitHorizontal(at int) (top, bottom Rect) {
	at = clamp(at, 0, r.H)
	top = Rect{X: r.X, Y: r.Y, W: r.W, H: at}
	bottom = Rect{X: r.X, Y: r.Y + at, W: r.W, H: r.H - at}
	return top, bottom
}

// SplitVertical cuts the rect along a vertical line, returning the columns
// left and right of the offset. The offset is clamped to [0, W].
func (r Rect) SplitVertical(at int) (left, right Rect) {
	at = clamp(at, 0, r.W)
	left = Rect{X: r.X, Y: r.Y, W: at, H: r.H}
	right = Rect{X: r.X + at, Y: r.Y, W: r.W - at, H: r.H}
	return left, right
}

// Center returns a sub-rect of the requested size positioned centrally,
// clamped to fit. Leftover space splits evenly with the floor on the
// top/left side.
func (r Rect) Center(w, h int) Rect {
	w = clamp(w, 0, r.W)
	h = clamp(h, 0, r.H)
	return Rect{
		X: r.X + (r.W-w)/2,
		Y: r.Y + (r.H-h)/2,
		W: w,
		H: h,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
