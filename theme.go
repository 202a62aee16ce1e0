package scrim

import "github.com/lucasb-eyer/go-colorful"

// Theme provides a set of styles for consistent UI appearance.
type Theme struct {
	Base   Style // default text style
	Muted  Style // de-emphasized text
	Accent Style // highlighted/important text
	Error  Style // error messages
	Border Style // border/divider style
}

// Pre-defined themes

// ThemeDark is a dark theme with light text on dark background.
var ThemeDark = Theme{
	Base:   Style{FG: White},
	Muted:  Style{FG: BrightBlack},
	Accent: Style{FG: BrightCyan},
	Error:  Style{FG: BrightRed},
	Border: Style{FG: BrightBlack},
}

// ThemeLight is a light theme with dark text on light background.
var ThemeLight = Theme{
	Base:   Style{FG: Black},
	Muted:  Style{FG: BrightBlack},
	Accent: Style{FG: Blue},
	Error:  Style{FG: Red},
	Border: Style{FG: White},
}

// ThemeMonochrome is a minimal theme using only attributes.
var ThemeMonochrome = Theme{
	Base:   Style{},
	Muted:  Style{Attr: AttrDim},
	Accent: Style{Attr: AttrBold},
	Error:  Style{Attr: AttrBold | AttrUnderline},
	Border: Style{Attr: AttrDim},
}

// Lighten moves an RGB color toward white by amount (0..1).
// Non-RGB colors pass through unchanged.
func Lighten(c Color, amount float64) Color {
	return blendRGB(c, colorful.Color{R: 1, G: 1, B: 1}, amount)
}

// Darken moves an RGB color toward black by amount (0..1).
// Non-RGB colors pass through unchanged.
func Darken(c Color, amount float64) Color {
	return blendRGB(c, colorful.Color{}, amount)
}

// Blend mixes two RGB colors in perceptual space, t=0 giving a and t=1
// giving b. Falls back to a when either side is not RGB.
func Blend(a, b Color, t float64) Color {
	if a.Mode != ColorRGB || b.Mode != ColorRGB {
		return a
	}
	return fromColorful(toColorful(a).BlendLab(toColorful(b), clampF(t)))
}

func blendRGB(c Color, target colorful.Color, amount float64) Color {
	if c.Mode != ColorRGB {
		return c
	}
	return fromColorful(toColorful(c).BlendRgb(target, clampF(amount)))
}

func toColorful(c Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color) Color {
	c = c.Clamped()
	r, g, b := c.RGB255()
	return NewRGB(r, g, b)
}

func clampF(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
