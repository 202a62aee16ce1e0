package scrim

import (
	"math"
	"testing"
)

func TestRect(t *testing.T) {
	t.Run("NewRect clamps negative dimensions", func(t *testing.T) {
		r := NewRect(2, 3, -5, -1)
		if r.W != 0 || r.H != 0 {
			t.Errorf("expected zero dimensions, got %dx%d", r.W, r.H)
		}
		if !r.Empty() {
			t.Error("expected empty rect")
		}
	})

	t.Run("Contains", func(t *testing.T) {
		r := Rect{X: 2, Y: 3, W: 4, H: 2}

		tests := []struct {
			x, y   int
			expect bool
		}{
			{2, 3, true},
			{5, 4, true},
			{6, 3, false}, // right edge is exclusive
			{2, 5, false}, // bottom edge is exclusive
			{1, 3, false},
			{2, 2, false},
		}

		for _, tt := range tests {
			if got := r.Contains(tt.x, tt.y); got != tt.expect {
				t.Errorf("Contains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.expect)
			}
		}
	})

	t.Run("edges saturate instead of overflowing", func(t *testing.T) {
		r := Rect{X: math.MaxInt - 1, Y: math.MaxInt - 1, W: 10, H: 10}
		if r.Right() != math.MaxInt {
			t.Errorf("expected saturated right edge, got %d", r.Right())
		}
		if r.Bottom() != math.MaxInt {
			t.Errorf("expected saturated bottom edge, got %d", r.Bottom())
		}
	})

	t.Run("Shrink clamps at zero", func(t *testing.T) {
		r := Rect{X: 0, Y: 0, W: 10, H: 4}

		got := r.Shrink(1)
		want := Rect{X: 1, Y: 1, W: 8, H: 2}
		if got != want {
			t.Errorf("Shrink(1) = %+v, want %+v", got, want)
		}

		got = r.Shrink(5)
		if !got.Empty() {
			t.Errorf("Shrink(5) should be empty, got %+v", got)
		}
		if got.W < 0 || got.H < 0 {
			t.Errorf("dimensions must never go negative, got %+v", got)
		}
	})

	t.Run("Inset is asymmetric", func(t *testing.T) {
		r := Rect{X: 0, Y: 0, W: 10, H: 10}
		got := r.Inset(1, 2, 3, 4)
		want := Rect{X: 4, Y: 1, W: 4, H: 6}
		if got != want {
			t.Errorf("Inset = %+v, want %+v", got, want)
		}
	})

	t.Run("Intersect", func(t *testing.T) {
		a := Rect{X: 0, Y: 0, W: 10, H: 10}
		b := Rect{X: 5, Y: 5, W: 10, H: 10}
		want := Rect{X: 5, Y: 5, W: 5, H: 5}
		if got := a.Intersect(b); got != want {
			t.Errorf("Intersect = %+v, want %+v", got, want)
		}

		// Disjoint rects yield the canonical zero rect
		c := Rect{X: 20, Y: 20, W: 3, H: 3}
		if got := a.Intersect(c); got != (Rect{}) {
			t.Errorf("disjoint Intersect = %+v, want zero rect", got)
		}
	})

	t.Run("Intersect is commutative and bounded", func(t *testing.T) {
		rects := []Rect{
			{X: 0, Y: 0, W: 10, H: 10},
			{X: 3, Y: 4, W: 8, H: 2},
			{X: -5, Y: -5, W: 7, H: 7},
			{X: 9, Y: 9, W: 1, H: 1},
			{},
		}
		for _, a := range rects {
			for _, b := range rects {
				ab := a.Intersect(b)
				ba := b.Intersect(a)
				if ab != ba {
					t.Errorf("intersect not commutative: %+v vs %+v", ab, ba)
				}
				if ab.Area() > min(a.Area(), b.Area()) {
					t.Errorf("intersection area %d exceeds min(%d, %d)", ab.Area(), a.Area(), b.Area())
				}
			}
		}
	})

	t.Run("SplitHorizontal parts sum to whole", func(t *testing.T) {
		r := Rect{X: 1, Y: 2, W: 8, H: 6}
		for _, at := range []int{-3, 0, 2, 6, 99} {
			top, bottom := r.SplitHorizontal(at)
			if top.H+bottom.H != r.H {
				t.Errorf("SplitHorizontal(%d): heights %d+%d != %d", at, top.H, bottom.H, r.H)
			}
			if top.W != r.W || bottom.W != r.W {
				t.Errorf("SplitHorizontal(%d): widths changed", at)
			}
			if bottom.Y != top.Bottom() {
				t.Errorf("SplitHorizontal(%d): parts not adjacent", at)
			}
		}
	})

	t.Run("SplitVertical parts sum to whole", func(t *testing.T) {
		r := Rect{X: 1, Y: 2, W: 8, H: 6}
		for _, at := range []int{-1, 0, 3, 8, 50} {
			left, right := r.SplitVertical(at)
			if left.W+right.W != r.W {
				t.Errorf("SplitVertical(%d): widths %d+%d != %d", at, left.W, right.W, r.W)
			}
			if right.X != left.Right() {
				t.Errorf("SplitVertical(%d): parts not adjacent", at)
			}
		}
	})

	t.Run("Center", func(t *testing.T) {
		r := Rect{X: 0, Y: 0, W: 10, H: 10}

		got := r.Center(4, 2)
		want := Rect{X: 3, Y: 4, W: 4, H: 2}
		if got != want {
			t.Errorf("Center(4,2) = %+v, want %+v", got, want)
		}

		// Odd leftover splits floor-biased toward top-left
		got = r.Center(3, 3)
		if got.X != 3 || got.Y != 3 {
			t.Errorf("Center(3,3) = %+v, want origin (3,3)", got)
		}

		// Oversized request clamps to fit
		got = r.Center(20, 20)
		if got != r {
			t.Errorf("oversized Center = %+v, want %+v", got, r)
		}
	})

	t.Run("Translate", func(t *testing.T) {
		r := Rect{X: 1, Y: 2, W: 3, H: 4}
		got := r.Translate(10, -2)
		want := Rect{X: 11, Y: 0, W: 3, H: 4}
		if got != want {
			t.Errorf("Translate = %+v, want %+v", got, want)
		}
	})
}
