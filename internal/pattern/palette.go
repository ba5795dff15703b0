// Package pattern generates synthetic images: rainbow stripes, a checkerboard
// and three national flags.
//
// Generators return a freshly allocated *raster.Buffer sized for the pattern.
// The caller swaps it in for whatever buffer it held before. Dimensions are
// validated before anything is allocated; width or height <= 0 yields
// raster.ErrInvalidDimension.
package pattern

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit color.
type RGB struct {
	R, G, B int
}

// Hex returns the color as "#RRGGBB" in upper case.
func (c RGB) Hex() string {
	return strings.ToUpper(colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex())
}

// ParseHex reads a "#RRGGBB" or "#RGB" color.
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: int(r), G: int(g), B: int(b)}, nil
}

// mustHex is ParseHex for the package's own color constants.
func mustHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Named colors used by the generators.
var (
	Violet = mustHex("#9400D3")
	Indigo = mustHex("#4B0082")
	Blue   = mustHex("#0000FF")
	Green  = mustHex("#00FF00")
	Yellow = mustHex("#FFFF00")
	Orange = mustHex("#FF7F00")
	Red    = mustHex("#FF0000")
	White  = mustHex("#FFFFFF")
	Black  = mustHex("#000000")

	FranceBlue = mustHex("#000099")
	GreeceBlue = mustHex("#0D5EAF")
)

// Rainbow lists the stripe colors in drawing order.
var Rainbow = []RGB{Violet, Indigo, Blue, Green, Yellow, Orange, Red}
