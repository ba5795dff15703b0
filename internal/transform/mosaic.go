package transform

import (
	"fmt"
	"math"

	"github.com/ironsheep/pixel-filter-mcp/internal/raster"
)

// RandomSource supplies uniformly distributed integers in [0, n).
//
// *rand.Rand from math/rand/v2 satisfies it. Tests pass a seeded source to
// make mosaics reproducible.
type RandomSource interface {
	IntN(n int) int
}

// Seed is a mosaic cluster center.
type Seed struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MosaicResult describes the clusters a mosaic produced.
type MosaicResult struct {
	Seeds []Seed `json:"seeds"`

	// Sizes holds the number of pixels assigned to each seed, by seed index.
	Sizes []int `json:"sizes"`
}

// Mosaic partitions buf into k clusters around random seeds and paints each
// cluster with its average color.
//
// All k seed rows are drawn from rng first, then all k seed columns, and the
// two samples are paired by index. Every pixel joins the seed at the smallest
// Euclidean distance; ties go to the lower seed index. Each cluster is then
// repainted with the integer mean of its original R, G and B values.
//
// Mosaic returns ErrInvalidSeedCount when k <= 0, when k exceeds the pixel
// count, or when some seed ends up with no pixels (two seeds drawn at the
// same position), and ErrInvalidDimension for an empty buffer. On error buf
// is left unchanged.
func Mosaic(buf *raster.Buffer, k int, rng RandomSource) (*MosaicResult, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: %d", raster.ErrInvalidSeedCount, k)
	}
	if buf.Empty() {
		return nil, fmt.Errorf("%w: cannot place seeds in a %dx%d buffer",
			raster.ErrInvalidDimension, buf.Width(), buf.Height())
	}

	height, width := buf.Height(), buf.Width()
	if k > width*height {
		return nil, fmt.Errorf("%w: %d seeds for %d pixels", raster.ErrInvalidSeedCount, k, width*height)
	}
	seeds := make([]Seed, k)
	for i := range seeds {
		seeds[i].Row = rng.IntN(height)
	}
	for i := range seeds {
		seeds[i].Col = rng.IntN(width)
	}

	assign := make([]int, width*height)
	sums := make([][raster.Channels]int, k)
	sizes := make([]int, k)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			id := nearestSeed(seeds, y, x)
			assign[y*width+x] = id
			r, g, b := buf.At(y, x)
			sums[id][raster.Red] += r
			sums[id][raster.Green] += g
			sums[id][raster.Blue] += b
			sizes[id]++
		}
	}

	for i, n := range sizes {
		if n == 0 {
			return nil, fmt.Errorf("%w: cluster %d at (%d,%d) received no pixels",
				raster.ErrInvalidSeedCount, i, seeds[i].Row, seeds[i].Col)
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			id := assign[y*width+x]
			n := sizes[id]
			buf.Set(y, x, sums[id][raster.Red]/n, sums[id][raster.Green]/n, sums[id][raster.Blue]/n)
		}
	}
	buf.Clamp()

	return &MosaicResult{Seeds: seeds, Sizes: sizes}, nil
}

// nearestSeed returns the index of the first seed at minimum distance from
// (row, col).
func nearestSeed(seeds []Seed, row, col int) int {
	best := 0
	bestDist := math.Inf(1)
	for i, s := range seeds {
		dy, dx := float64(row-s.Row), float64(col-s.Col)
		if d := math.Sqrt(dy*dy + dx*dx); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
