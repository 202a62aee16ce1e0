package scrim

import "testing"

func TestAttribute(t *testing.T) {
	t.Run("Has With Without", func(t *testing.T) {
		a := AttrNone.With(AttrBold).With(AttrUnderline)
		if !a.Has(AttrBold) || !a.Has(AttrUnderline) {
			t.Error("expected bold and underline set")
		}
		if a.Has(AttrItalic) {
			t.Error("italic should not be set")
		}
		a = a.Without(AttrBold)
		if a.Has(AttrBold) {
			t.Error("bold should be removed")
		}
		if !a.Has(AttrUnderline) {
			t.Error("underline should survive removal of bold")
		}
	})

	t.Run("union is associative and commutative", func(t *testing.T) {
		attrs := []Attribute{AttrBold, AttrDim | AttrItalic, AttrBlink, AttrNone}
		for _, a := range attrs {
			for _, b := range attrs {
				if a|b != b|a {
					t.Errorf("union not commutative for %b, %b", a, b)
				}
				for _, c := range attrs {
					if (a|b)|c != a|(b|c) {
						t.Errorf("union not associative for %b, %b, %b", a, b, c)
					}
				}
			}
		}
	})
}

func TestStyle(t *testing.T) {
	t.Run("builder returns copies", func(t *testing.T) {
		base := DefaultStyle()
		styled := base.Foreground(Red).Bold()

		if base.FG.Equal(Red) || base.Attr.Has(AttrBold) {
			t.Error("builder mutated the receiver")
		}
		if !styled.FG.Equal(Red) || !styled.Attr.Has(AttrBold) {
			t.Error("builder result missing applied fields")
		}
	})

	t.Run("zero color is unset, default color is not", func(t *testing.T) {
		var c Color
		if c.Set() {
			t.Error("zero color should be unset")
		}
		if !DefaultColor().Set() {
			t.Error("explicit default color should count as set")
		}
	})

	t.Run("merge overlay colors win when set", func(t *testing.T) {
		base := Style{FG: Red, BG: Blue}
		overlay := Style{FG: Green} // BG unset

		got := base.Merge(overlay)
		if !got.FG.Equal(Green) {
			t.Errorf("expected overlay FG to win, got %+v", got.FG)
		}
		if !got.BG.Equal(Blue) {
			t.Errorf("expected base BG to survive, got %+v", got.BG)
		}
	})

	t.Run("merge unions attributes", func(t *testing.T) {
		base := Style{Attr: AttrBold}
		overlay := Style{Attr: AttrUnderline}

		got := base.Merge(overlay)
		if !got.Attr.Has(AttrBold) || !got.Attr.Has(AttrUnderline) {
			t.Errorf("expected attribute union, got %b", got.Attr)
		}
	})

	t.Run("merge is idempotent on identical inputs", func(t *testing.T) {
		s := Style{FG: NewRGB(10, 20, 30), BG: Blue, Attr: AttrBold | AttrDim}
		if got := s.Merge(s); !got.Equal(s) {
			t.Errorf("Merge(s, s) = %+v, want %+v", got, s)
		}
	})

	t.Run("equality is structural", func(t *testing.T) {
		a := Style{FG: NewRGB(1, 2, 3), Attr: AttrBold}
		b := Style{FG: NewRGB(1, 2, 3), Attr: AttrBold}
		if !a.Equal(b) {
			t.Error("identical styles should be equal")
		}
		if a.Equal(b.Dim()) {
			t.Error("differing attributes should not be equal")
		}
		if a.Equal(b.Foreground(NewRGB(1, 2, 4))) {
			t.Error("differing colors should not be equal")
		}
	})
}

func TestColor(t *testing.T) {
	t.Run("Hex unpacks channels", func(t *testing.T) {
		c := Hex(0xFF5500)
		if c.R != 0xFF || c.G != 0x55 || c.B != 0x00 {
			t.Errorf("Hex unpacked to %d,%d,%d", c.R, c.G, c.B)
		}
		if c.Mode != ColorRGB {
			t.Error("Hex should produce an RGB color")
		}
	})

	t.Run("equality is component-wise", func(t *testing.T) {
		if !NewRGB(1, 2, 3).Equal(NewRGB(1, 2, 3)) {
			t.Error("identical RGB colors should be equal")
		}
		if NewRGB(1, 2, 3).Equal(NewRGB(3, 2, 1)) {
			t.Error("different RGB colors should not be equal")
		}
		if BasicColor(1).Equal(PaletteColor(1)) {
			t.Error("same index in different modes should not be equal")
		}
	})
}
