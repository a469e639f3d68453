package easel

import "image/color"

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// The default drawing palette, in toolbar order.
var (
	Black   = RGB(0, 0, 0)
	White   = RGB(1, 1, 1)
	Red     = RGB(1, 0, 0)
	Green   = RGB(0, 1, 0)
	Blue    = RGB(0, 0, 1)
	Yellow  = RGB(1, 1, 0)
	Cyan    = RGB(0, 1, 1)
	Magenta = RGB(1, 0, 1)
	Orange  = RGB(1, 0.5, 0)
	Purple  = RGB(0.5, 0, 1)
	Pink    = RGB(1, 0.75, 0.8)
	Brown   = RGB(0.6, 0.3, 0)
	Gray    = RGB(0.5, 0.5, 0.5)
)

// Palette returns the default color palette offered to the host toolbar.
func Palette() []RGBA {
	return []RGBA{
		Black, Red, Green, Blue, Yellow, Cyan,
		Magenta, Orange, Purple, Pink, Brown, Gray,
	}
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
