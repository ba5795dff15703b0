package transform

import "github.com/ironsheep/pixel-filter-mcp/internal/raster"

// Kernel is a real-valued convolution matrix.
//
// AnchorRow and AnchorCol give the kernel cell that lies over the output
// pixel. For an odd-sized kernel centered on the pixel they are len/2.
type Kernel struct {
	Weights   [][]float64
	AnchorRow int
	AnchorCol int
}

// NewCenteredKernel returns a kernel anchored at its middle cell.
func NewCenteredKernel(weights [][]float64) Kernel {
	k := Kernel{Weights: weights, AnchorRow: len(weights) / 2}
	if len(weights) > 0 {
		k.AnchorCol = len(weights[0]) / 2
	}
	return k
}

// BlurKernel is a 3x3 weighting approximating a normalized Gaussian blur.
//
//	0.0625 0.125 0.0625
//	0.125  0.25  0.125
//	0.0625 0.125 0.0625
var BlurKernel = NewCenteredKernel([][]float64{
	{0.0625, 0.125, 0.0625},
	{0.125, 0.25, 0.125},
	{0.0625, 0.125, 0.0625},
})

// LegacyBlurKernel is the 4x3 blur with a duplicated bottom row, anchored at
// (1,1) so taps span one row above to two rows below the pixel. Its weights
// sum to 1.25, so it brightens and shifts mass downward. It is kept for
// output compatibility; BlurKernel is the default.
var LegacyBlurKernel = Kernel{
	Weights: [][]float64{
		{0.0625, 0.125, 0.0625},
		{0.125, 0.25, 0.125},
		{0.0625, 0.125, 0.0625},
		{0.0625, 0.125, 0.0625},
	},
	AnchorRow: 1,
	AnchorCol: 1,
}

// SharpenKernel is a 5x5 unsharp-mask style kernel.
var SharpenKernel = NewCenteredKernel([][]float64{
	{-0.125, -0.125, -0.125, -0.125, -0.125},
	{-0.125, 0.25, 0.25, 0.25, -0.125},
	{-0.125, 0.25, 1, 0.25, -0.125},
	{-0.125, 0.25, 0.25, 0.25, -0.125},
	{-0.125, -0.125, -0.125, -0.125, -0.125},
})

// Convolve applies k to each channel of buf independently.
//
// Every tap reads the buffer as it was before the pass. Taps that fall
// outside the buffer are skipped rather than padded, so pixels near the
// border see a smaller total weight and come out darker for a normalized
// kernel. The weighted sum is truncated toward zero and the buffer is
// clamped once the pass completes.
func Convolve(buf *raster.Buffer, k Kernel) {
	if buf.Empty() {
		return
	}
	src := buf.Clone()
	height, width := buf.Height(), buf.Width()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum [raster.Channels]float64
			for ky, row := range k.Weights {
				sy := y - k.AnchorRow + ky
				if sy < 0 || sy >= height {
					continue
				}
				for kx, w := range row {
					sx := x - k.AnchorCol + kx
					if sx < 0 || sx >= width {
						continue
					}
					r, g, b := src.At(sy, sx)
					sum[raster.Red] += float64(r) * w
					sum[raster.Green] += float64(g) * w
					sum[raster.Blue] += float64(b) * w
				}
			}
			buf.Set(y, x, int(sum[raster.Red]), int(sum[raster.Green]), int(sum[raster.Blue]))
		}
	}

	buf.Clamp()
}

// Blur applies BlurKernel.
func Blur(buf *raster.Buffer) {
	Convolve(buf, BlurKernel)
}

// Sharpen applies SharpenKernel.
func Sharpen(buf *raster.Buffer) {
	Convolve(buf, SharpenKernel)
}
