package transform

import "github.com/ironsheep/pixel-filter-mcp/internal/raster"

// BT.709 luma weights.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// Luma returns the truncated BT.709 luminance of an RGB triple.
//
// The weights sum to one only approximately in floating point, so gray
// inputs may lose one unit (Luma(255,255,255) is 254).
func Luma(r, g, b int) int {
	return int(lumaR*float64(r) + lumaG*float64(g) + lumaB*float64(b))
}

// Grayscale replaces every pixel with its BT.709 luminance in all three
// channels.
func Grayscale(buf *raster.Buffer) {
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			v := Luma(buf.At(y, x))
			buf.Set(y, x, v, v, v)
		}
	}
	buf.Clamp()
}

// Sepia applies the classic sepia tone matrix to every pixel.
//
//	R' = 0.393R + 0.769G + 0.189B
//	G' = 0.349R + 0.689G + 0.168B
//	B' = 0.272R + 0.534G + 0.131B
func Sepia(buf *raster.Buffer) {
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			r, g, b := buf.At(y, x)
			rf, gf, bf := float64(r), float64(g), float64(b)
			buf.Set(y, x,
				int(0.393*rf+0.769*gf+0.189*bf),
				int(0.349*rf+0.689*gf+0.168*bf),
				int(0.272*rf+0.534*gf+0.131*bf),
			)
		}
	}
	buf.Clamp()
}
