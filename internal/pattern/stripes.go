package pattern

import (
	"fmt"

	"github.com/ironsheep/pixel-filter-mcp/internal/raster"
)

// Orientation selects the direction stripes run in.
type Orientation int

const (
	// Horizontal stripes are stacked top to bottom.
	Horizontal Orientation = iota
	// Vertical stripes are laid out left to right.
	Vertical
)

// ParseOrientation maps "horizontal" or "vertical" to an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	default:
		return 0, fmt.Errorf("unknown orientation: %s", s)
	}
}

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// newCanvas validates the size and allocates a black buffer.
func newCanvas(width, height int) (*raster.Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", raster.ErrInvalidDimension, width, height)
	}
	return raster.New(width, height)
}

func fill(buf *raster.Buffer, row, col, height, width int, c RGB) {
	buf.Fill(row, col, height, width, c.R, c.G, c.B)
}

// bands splits length into n equal bands, the last one taking the remainder.
// It returns the start offset and size of each band.
func bands(length, n int) (starts, sizes []int) {
	size := length / n
	starts = make([]int, n)
	sizes = make([]int, n)
	for i := 0; i < n; i++ {
		starts[i] = i * size
		sizes[i] = size
	}
	sizes[n-1] += length % n
	return starts, sizes
}

// stripes paints len(colors) equal bands along the orientation's long axis.
func stripes(buf *raster.Buffer, o Orientation, colors []RGB) {
	length := buf.Height()
	if o == Vertical {
		length = buf.Width()
	}

	starts, sizes := bands(length, len(colors))
	for i, c := range colors {
		if o == Vertical {
			fill(buf, 0, starts[i], buf.Height(), sizes[i], c)
		} else {
			fill(buf, starts[i], 0, sizes[i], buf.Width(), c)
		}
	}
}

// RainbowStripes returns a height x width image of seven rainbow bands,
// violet first and red last.
//
// Each band is length/7 pixels along the stripe axis; the red band also
// absorbs the length%7 leftover pixels. Images shorter than seven pixels
// along that axis are entirely red.
func RainbowStripes(height, width int, o Orientation) (*raster.Buffer, error) {
	buf, err := newCanvas(width, height)
	if err != nil {
		return nil, err
	}
	stripes(buf, o, Rainbow)
	return buf, nil
}

// Checkerboard returns an 8x8 board of squareSize pixel squares.
//
// The top-left square and every square of the same parity is light; the
// others are dark.
func Checkerboard(squareSize int, light, dark RGB) (*raster.Buffer, error) {
	if squareSize <= 0 || squareSize > raster.MaxPixels {
		return nil, fmt.Errorf("%w: square size %d", raster.ErrInvalidDimension, squareSize)
	}
	side := 8 * squareSize
	buf, err := newCanvas(side, side)
	if err != nil {
		return nil, err
	}

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			c := light
			if (row+col)%2 == 1 {
				c = dark
			}
			fill(buf, row*squareSize, col*squareSize, squareSize, squareSize, c)
		}
	}
	return buf, nil
}
