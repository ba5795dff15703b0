package transform

import (
	"fmt"
	"image/color"

	"github.com/makeworld-the-better-one/dither/v2"

	"github.com/ironsheep/pixel-filter-mcp/internal/raster"
)

// diffusion is one Floyd-Steinberg neighbor: row and column offset from the
// current pixel and the fraction of the quantization error it receives.
type diffusion struct {
	dy, dx int
	weight float64
}

var floydSteinberg = []diffusion{
	{0, 1, 7.0 / 16},
	{1, -1, 3.0 / 16},
	{1, 0, 5.0 / 16},
	{1, 1, 1.0 / 16},
}

// Dither converts buf to black and white using Floyd-Steinberg error diffusion.
//
// The buffer is first converted to grayscale. Pixels are then visited in
// row-major order; each is snapped to 0 or 255, whichever is strictly closer
// (a tie goes to 0), and the difference is pushed forward into the right,
// below-left, below and below-right neighbors. Neighbors outside the buffer
// are skipped. The order matters: error only ever flows to pixels that have
// not been quantized yet.
//
// Each neighbor receives trunc(value + weight*error). Values are allowed to
// leave [0,255] while a row is processed and are clamped after every row.
func Dither(buf *raster.Buffer) {
	Grayscale(buf)

	height, width := buf.Height(), buf.Width()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			old := buf.Channel(y, x, raster.Red)
			quantized := 0
			if abs(old-raster.MaxChannel) < abs(old) {
				quantized = raster.MaxChannel
			}
			errVal := float64(old - quantized)
			buf.Set(y, x, quantized, quantized, quantized)

			for _, d := range floydSteinberg {
				ny, nx := y+d.dy, x+d.dx
				// Bounds are checked per axis against that axis' own limit.
				if !buf.InBounds(ny, nx) {
					continue
				}
				for ch := 0; ch < raster.Channels; ch++ {
					v := buf.Channel(ny, nx, ch)
					buf.SetChannel(ny, nx, ch, int(float64(v)+d.weight*errVal))
				}
			}
		}
		// Only the current row and the one below have been touched.
		buf.ClampRows(y, y+2)
	}
}

// DitherLevels reduces buf to the given number of evenly spaced gray levels
// using Floyd-Steinberg error diffusion.
//
// Unlike Dither, the diffusion runs in linearized color space through the
// dither library, so DitherLevels(buf, 2) is not bit-identical to Dither.
// levels must be between 2 and 256.
func DitherLevels(buf *raster.Buffer, levels int) error {
	if levels < 2 || levels > 256 {
		return fmt.Errorf("levels must be between 2 and 256, got %d", levels)
	}
	if buf.Empty() {
		return nil
	}

	d := dither.NewDitherer(grayPalette(levels))
	d.Matrix = dither.FloydSteinberg

	out := raster.FromImage(d.Dither(buf.ToImage()))
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			r, g, b := out.At(y, x)
			buf.Set(y, x, r, g, b)
		}
	}
	buf.Clamp()
	return nil
}

// grayPalette returns levels grays spread evenly from black to white.
func grayPalette(levels int) []color.Color {
	palette := make([]color.Color, levels)
	for i := 0; i < levels; i++ {
		v := uint8(i * 255 / (levels - 1))
		palette[i] = color.Gray{Y: v}
	}
	return palette
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
