package pixelsort_test

import (
	"image/color"
	"math"
	"testing"

	"github.com/Zyl9393/pixelsort"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLuminance(t *testing.T) {
	tests := []struct {
		name string
		c    pixelsort.Color
		want float64
	}{
		{"black", pixelsort.Color{}, 0},
		{"red", pixelsort.Color{R: 1}, 0.2126},
		{"green", pixelsort.Color{G: 1}, 0.7152},
		{"blue", pixelsort.Color{B: 1}, 0.0722},
		{"white", pixelsort.Color{R: 1, G: 1, B: 1}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Luminance(); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Luminance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHue(t *testing.T) {
	tests := []struct {
		name string
		c    pixelsort.Color
		want float64
	}{
		{"gray", pixelsort.Color{R: 0.4, G: 0.4, B: 0.4}, 0},
		{"red", pixelsort.Color{R: 1}, 0},
		{"yellow", pixelsort.Color{R: 1, G: 1}, 1.0 / 6},
		{"green", pixelsort.Color{G: 1}, 2.0 / 6},
		{"cyan", pixelsort.Color{G: 1, B: 1}, 3.0 / 6},
		{"blue", pixelsort.Color{B: 1}, 4.0 / 6},
		{"magenta", pixelsort.Color{R: 1, B: 1}, 5.0 / 6},
		{"orange", pixelsort.Color{R: 1, G: 0.9}, 0.15},
		{"rose", pixelsort.Color{R: 1, B: 0.5}, 11.0 / 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.Hue()
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Hue() = %v, want %v", got, tt.want)
			}
			if got < 0 || got >= 1 {
				t.Errorf("Hue() = %v, outside [0, 1)", got)
			}
		})
	}
}

func TestSaturation(t *testing.T) {
	tests := []struct {
		name string
		c    pixelsort.Color
		want float64
	}{
		{"black", pixelsort.Color{}, 0},
		{"gray", pixelsort.Color{R: 0.3, G: 0.3, B: 0.3}, 0},
		{"pure", pixelsort.Color{R: 1}, 1},
		{"pastel", pixelsort.Color{R: 1, G: 0.5, B: 0.5}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Saturation(); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Saturation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGammaRoundTrip(t *testing.T) {
	want := pixelsort.Color{R: 0.25, G: 0.5, B: 0.75}
	c := want
	c.ToGamma()
	if c.R <= want.R {
		t.Errorf("ToGamma did not brighten a mid-tone: %v -> %v", want.R, c.R)
	}
	c.ToLinear()
	if diff := cmp.Diff(want, c, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("gamma round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestGammaNegativeIsNaN(t *testing.T) {
	c := pixelsort.Color{R: -1, G: 0.5}
	c.ToGamma()
	if !math.IsNaN(c.R) {
		t.Errorf("ToGamma R = %v, want NaN", c.R)
	}
	if math.IsNaN(c.G) {
		t.Error("ToGamma turned a valid channel into NaN")
	}

	c = pixelsort.Color{B: -0.25}
	c.ToLinear()
	if !math.IsNaN(c.B) {
		t.Errorf("ToLinear B = %v, want NaN", c.B)
	}
}

func TestQuantizeTruncates(t *testing.T) {
	tests := []struct {
		name    string
		c       pixelsort.Color
		max     int
		r, g, b int
	}{
		{"extremes", pixelsort.Color{R: 0, G: 1, B: 0.5}, 255, 0, 255, 127},
		{"just below one", pixelsort.Color{R: 0.999, G: 0.999, B: 0.999}, 255, 254, 254, 254},
		{"clamped", pixelsort.Color{R: -0.5, G: 1.5, B: 2}, 100, 0, 100, 100},
		{"small max", pixelsort.Color{R: 0.99, G: 0.5, B: 0.49}, 1, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := tt.c.Quantize(tt.max)
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("Quantize(%d) = (%d, %d, %d), want (%d, %d, %d)", tt.max, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestOrderingByLuminance(t *testing.T) {
	dark := pixelsort.Color{R: 0.1, G: 0.1, B: 0.1}
	bright := pixelsort.Color{R: 0.9, G: 0.9, B: 0.9}

	if got := pixelsort.Compare(dark, bright); got != -1 {
		t.Errorf("Compare(dark, bright) = %d, want -1", got)
	}
	if got := pixelsort.Compare(bright, dark); got != 1 {
		t.Errorf("Compare(bright, dark) = %d, want 1", got)
	}
	if !dark.Less(bright) || bright.Less(dark) {
		t.Error("Less does not order dark before bright")
	}

	// Distinct colors with identical luminance compare equal.
	a := pixelsort.Color{R: 0.7152}
	b := pixelsort.Color{G: 0.2126}
	if pixelsort.Compare(a, b) != 0 || !a.Equal(b) {
		t.Errorf("colors with luminance %v and %v should compare equal", a.Luminance(), b.Luminance())
	}
}

func TestCompareLuminance(t *testing.T) {
	gray := pixelsort.Color{R: 0.5, G: 0.5, B: 0.5}
	if got := gray.CompareLuminance(0.25); got != 1 {
		t.Errorf("CompareLuminance(0.25) = %d, want 1", got)
	}
	if got := gray.CompareLuminance(0.75); got != -1 {
		t.Errorf("CompareLuminance(0.75) = %d, want -1", got)
	}
	if got := gray.CompareLuminance(gray.Luminance()); got != 0 {
		t.Errorf("CompareLuminance(own luminance) = %d, want 0", got)
	}
	// threshold < color
	if -gray.CompareLuminance(0.25) != -1 {
		t.Error("0.25 should compare below gray")
	}
}

func TestColorModel(t *testing.T) {
	got := pixelsort.Model.Convert(color.NRGBA{R: 255, G: 0, B: 255, A: 255})
	want := pixelsort.Color{R: 1, G: 0, B: 1}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Model.Convert mismatch (-want +got):\n%s", diff)
	}

	r, g, b, a := pixelsort.Color{R: 1, G: 0, B: 1}.RGBA()
	if r != 0xffff || g != 0 || b != 0xffff || a != 0xffff {
		t.Errorf("RGBA() = (%#x, %#x, %#x, %#x), want (0xffff, 0, 0xffff, 0xffff)", r, g, b, a)
	}
}
