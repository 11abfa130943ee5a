package pixelsort

import (
	"image/color"
	"math"
)

const gamma = 2.2

// Color is a pixel value. Channels are linear light, nominally in [0, 1].
type Color struct {
	R, G, B float64
}

// Model converts any color.Color into a linear Color.
var Model color.Model = color.ModelFunc(toColor)

func toColor(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	px := Color{R: float64(r) / 0xffff, G: float64(g) / 0xffff, B: float64(b) / 0xffff}
	px.ToLinear()
	return px
}

// RGBA implements color.Color. It returns the gamma-encoded value, fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	c.ToGamma()
	return uint32(clamp01(c.R) * 0xffff), uint32(clamp01(c.G) * 0xffff), uint32(clamp01(c.B) * 0xffff), 0xffff
}

// Luminance returns the BT.709 weighted brightness.
func (c Color) Luminance() float64 {
	return c.R*0.2126 + c.G*0.7152 + c.B*0.0722
}

// Hue returns the HSL hue scaled to [0, 1). Grays have hue 0.
func (c Color) Hue() float64 {
	maxVal := max(c.R, c.G, c.B)
	minVal := min(c.R, c.G, c.B)
	delta := maxVal - minVal
	if delta == 0 {
		return 0
	}

	var h float64
	switch maxVal {
	case c.R:
		h = (c.G - c.B) / delta
		if h < 0 {
			h += 6
		}
	case c.G:
		h = (c.B-c.R)/delta + 2
	default:
		h = (c.R-c.G)/delta + 4
	}
	return h / 6
}

// Saturation returns (max-min)/max, or 0 for grays.
func (c Color) Saturation() float64 {
	maxVal := max(c.R, c.G, c.B)
	minVal := min(c.R, c.G, c.B)
	if maxVal == minVal {
		return 0
	}
	return (maxVal - minVal) / maxVal
}

// ToGamma converts c from linear to gamma-encoded values in place.
func (c *Color) ToGamma() {
	c.R = math.Pow(c.R, 1/gamma)
	c.G = math.Pow(c.G, 1/gamma)
	c.B = math.Pow(c.B, 1/gamma)
}

// ToLinear converts c from gamma-encoded to linear values in place.
func (c *Color) ToLinear() {
	c.R = math.Pow(c.R, gamma)
	c.G = math.Pow(c.G, gamma)
	c.B = math.Pow(c.B, gamma)
}

// Quantize clamps each channel to [0, 1] and scales it to [0, maxVal],
// truncating toward zero.
func (c Color) Quantize(maxVal int) (r, g, b int) {
	m := float64(maxVal)
	return int(clamp01(c.R) * m), int(clamp01(c.G) * m), int(clamp01(c.B) * m)
}

// Compare orders colors by luminance. It returns -1, 0 or +1 and is suitable
// for slices.SortFunc. Colors with equal luminance compare equal even when
// their channels differ.
func Compare(a, b Color) int {
	return cmpFloat(a.Luminance(), b.Luminance())
}

// Less reports whether c is darker than o.
func (c Color) Less(o Color) bool { return c.Luminance() < o.Luminance() }

// Equal reports whether c and o have the same luminance.
func (c Color) Equal(o Color) bool { return c.Luminance() == o.Luminance() }

// CompareLuminance returns the sign of c.Luminance() - t. Compare a threshold
// against a color by negating the result.
func (c Color) CompareLuminance(t float64) int {
	return cmpFloat(c.Luminance(), t)
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
