package scrim

import "testing"

func TestTheme(t *testing.T) {
	t.Run("Lighten moves toward white", func(t *testing.T) {
		c := NewRGB(100, 100, 100)
		lighter := Lighten(c, 0.5)
		if lighter.R <= c.R || lighter.G <= c.G || lighter.B <= c.B {
			t.Errorf("Lighten produced %+v from %+v", lighter, c)
		}
		if got := Lighten(c, 1); got.R != 255 || got.G != 255 || got.B != 255 {
			t.Errorf("full Lighten should reach white, got %+v", got)
		}
	})

	t.Run("Darken moves toward black", func(t *testing.T) {
		c := NewRGB(100, 150, 200)
		darker := Darken(c, 0.5)
		if darker.R >= c.R || darker.G >= c.G || darker.B >= c.B {
			t.Errorf("Darken produced %+v from %+v", darker, c)
		}
		if got := Darken(c, 1); got.R != 0 || got.G != 0 || got.B != 0 {
			t.Errorf("full Darken should reach black, got %+v", got)
		}
	})

	t.Run("non-RGB colors pass through", func(t *testing.T) {
		if got := Lighten(Red, 0.5); !got.Equal(Red) {
			t.Errorf("basic color modified: %+v", got)
		}
		if got := Darken(PaletteColor(100), 0.5); !got.Equal(PaletteColor(100)) {
			t.Errorf("palette color modified: %+v", got)
		}
	})

	t.Run("Blend endpoints", func(t *testing.T) {
		a := NewRGB(255, 0, 0)
		b := NewRGB(0, 0, 255)
		if got := Blend(a, b, 0); !got.Equal(a) {
			t.Errorf("Blend t=0 = %+v, want %+v", got, a)
		}
		if got := Blend(a, b, 1); !got.Equal(b) {
			t.Errorf("Blend t=1 = %+v, want %+v", got, b)
		}
	})

	t.Run("amount clamps outside 0..1", func(t *testing.T) {
		c := NewRGB(10, 20, 30)
		if got := Darken(c, -5); !got.Equal(c) {
			t.Errorf("negative amount should be a no-op, got %+v", got)
		}
		if got := Lighten(c, 7); got.R != 255 {
			t.Errorf("oversized amount should clamp to full, got %+v", got)
		}
	})
}
