package imaging

import (
	"fmt"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/pixel-filter-mcp/internal/raster"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex formats the color as "#RRGGBB" in upper case.
func (c RGBColor) Hex() string {
	return strings.ToUpper(colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex())
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in several representations.
type ColorResult struct {
	Hex string   `json:"hex"` // "#RRGGBB"
	RGB RGBColor `json:"rgb"`
	HSL HSLColor `json:"hsl"`
}

func newColorResult(c RGBColor) ColorResult {
	return ColorResult{
		Hex: c.Hex(),
		RGB: c,
		HSL: toHSL(c),
	}
}

// pixel reads (row, col) as 8-bit channels, clamping values a transform left
// out of range.
func pixel(buf *raster.Buffer, row, col int) RGBColor {
	r, g, b := buf.At(row, col)
	return RGBColor{
		R: uint8(raster.ClampChannel(r)),
		G: uint8(raster.ClampChannel(g)),
		B: uint8(raster.ClampChannel(b)),
	}
}

// SampleColor returns the color of the pixel at column x, row y.
//
// Coordinates outside the buffer return raster.ErrOutOfBounds.
func SampleColor(buf *raster.Buffer, x, y int) (*ColorResult, error) {
	if !buf.InBounds(y, x) {
		return nil, fmt.Errorf("%w: (%d,%d) in %dx%d",
			raster.ErrOutOfBounds, x, y, buf.Width(), buf.Height())
	}
	c := newColorResult(pixel(buf, y, x))
	return &c, nil
}

// LabeledPoint is a pixel coordinate with an optional descriptive label.
type LabeledPoint struct {
	X     int
	Y     int
	Label string
}

// LabeledColorResult combines a color sample with its location and label.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"`
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color ColorResult `json:"color"`
}

// MultiColorResult contains color samples in the order they were requested.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"`
}

// SampleColorsMulti samples several points at once. If any point is out of
// bounds, no partial results are returned.
func SampleColorsMulti(buf *raster.Buffer, points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		color, err := SampleColor(buf, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *color,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}

// Region is a rectangle within a buffer. (X1, Y1) is inclusive and (X2, Y2)
// is exclusive.
type Region struct {
	X1 int
	Y1 int
	X2 int
	Y2 int
}

// ColorFrequency is a quantized color and the share of pixels it covers.
type ColorFrequency struct {
	Hex        string   `json:"hex"`
	Percentage float64  `json:"percentage"` // 0-100
	RGB        RGBColor `json:"rgb"`
}

// DominantColorsResult lists colors most frequent first.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors returns up to count of the most common colors in buf, or in
// region when it is non-nil.
//
// Each channel is quantized to a multiple of 16 before counting, so colors
// within the same 16-wide bucket are grouped. The region is clipped to the
// buffer; a region with no pixels left is an error. Ties are broken by hex
// value so the output is deterministic.
func DominantColors(buf *raster.Buffer, count int, region *Region) (*DominantColorsResult, error) {
	x1, y1, x2, y2 := 0, 0, buf.Width(), buf.Height()
	if region != nil {
		x1, y1 = max(region.X1, 0), max(region.Y1, 0)
		x2, y2 = min(region.X2, buf.Width()), min(region.Y2, buf.Height())
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("%w: empty region (%d,%d)-(%d,%d)", raster.ErrOutOfBounds, x1, y1, x2, y2)
	}

	counts := make(map[RGBColor]int)
	total := 0
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			c := pixel(buf, y, x)
			c.R, c.G, c.B = c.R/16*16, c.G/16*16, c.B/16*16
			counts[c]++
			total++
		}
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for c, n := range counts {
		colors = append(colors, ColorFrequency{
			Hex:        c.Hex(),
			Percentage: float64(n) / float64(total) * 100,
			RGB:        c,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if count >= 0 && len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors}, nil
}

// toHSL converts through go-colorful, truncating each component.
func toHSL(c RGBColor) HSLColor {
	h, s, l := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hsl()
	return HSLColor{
		H: int(h),
		S: int(s * 100),
		L: int(l * 100),
	}
}
