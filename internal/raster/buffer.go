package raster

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned when a width or height is out of range.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrInvalidSeedCount is returned when a mosaic cannot form its clusters.
	ErrInvalidSeedCount = errors.New("invalid seed count")

	// ErrOutOfBounds is returned when a coordinate lies outside the buffer.
	ErrOutOfBounds = errors.New("coordinates outside buffer bounds")
)

// Channel indexes within a pixel.
const (
	Red = iota
	Green
	Blue

	// Channels is the number of channels stored per pixel.
	Channels
)

// MaxChannel is the largest value a channel holds once clamped.
const MaxChannel = 255

// MaxPixels caps width*height for any buffer the package allocates.
const MaxPixels = 1 << 25

// CheckSize reports whether a width x height buffer may be allocated. Zero
// sizes are allowed; negative sizes and areas above MaxPixels return
// ErrInvalidDimension.
func CheckSize(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	if width > MaxPixels || height > MaxPixels || (width != 0 && height > MaxPixels/width) {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrInvalidDimension, width, height, MaxPixels)
	}
	return nil
}

// Buffer is a width x height grid of RGB pixels stored row-major.
//
// The zero value is an empty 0x0 buffer ready for use.
type Buffer struct {
	width  int
	height int
	pix    []int
}

// New allocates a black buffer of the given size.
//
// Zero-sized buffers are valid. Sizes rejected by CheckSize return
// ErrInvalidDimension.
func New(width, height int) (*Buffer, error) {
	if err := CheckSize(width, height); err != nil {
		return nil, err
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]int, width*height*Channels),
	}, nil
}

// Width returns the number of columns.
func (b *Buffer) Width() int { return b.width }

// Height returns the number of rows.
func (b *Buffer) Height() int { return b.height }

// Empty reports whether the buffer has no pixels.
func (b *Buffer) Empty() bool { return b.width == 0 || b.height == 0 }

// InBounds reports whether (row, col) addresses a pixel of the buffer.
func (b *Buffer) InBounds(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

func (b *Buffer) offset(row, col int) int {
	return (row*b.width + col) * Channels
}

// Channel returns one channel of the pixel at (row, col).
// The coordinates must be in bounds.
func (b *Buffer) Channel(row, col, ch int) int {
	return b.pix[b.offset(row, col)+ch]
}

// SetChannel stores one channel of the pixel at (row, col) without clamping.
func (b *Buffer) SetChannel(row, col, ch, v int) {
	b.pix[b.offset(row, col)+ch] = v
}

// At returns the three channels of the pixel at (row, col).
func (b *Buffer) At(row, col int) (r, g, bl int) {
	i := b.offset(row, col)
	return b.pix[i], b.pix[i+1], b.pix[i+2]
}

// Set stores all three channels of the pixel at (row, col) without clamping.
func (b *Buffer) Set(row, col, r, g, bl int) {
	i := b.offset(row, col)
	b.pix[i] = r
	b.pix[i+1] = g
	b.pix[i+2] = bl
}

// Fill paints the rectangle with top-left (row, col) and the given size.
// The rectangle is intersected with the buffer, so out-of-range parts are ignored.
func (b *Buffer) Fill(row, col, height, width, r, g, bl int) {
	r0, c0 := max(row, 0), max(col, 0)
	r1, c1 := min(row+height, b.height), min(col+width, b.width)
	for y := r0; y < r1; y++ {
		for x := c0; x < c1; x++ {
			b.Set(y, x, r, g, bl)
		}
	}
}

// Pix returns a copy of the raw channel data in row-major RGB order.
func (b *Buffer) Pix() []int {
	out := make([]int, len(b.pix))
	copy(out, b.pix)
	return out
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{width: b.width, height: b.height, pix: b.Pix()}
}

// Clamp restricts every channel of every pixel to [0, MaxChannel].
func (b *Buffer) Clamp() {
	clampSlice(b.pix)
}

// ClampRows clamps rows in the half-open range [from, to), ignoring rows
// outside the buffer.
func (b *Buffer) ClampRows(from, to int) {
	from, to = max(from, 0), min(to, b.height)
	if from >= to {
		return
	}
	clampSlice(b.pix[b.offset(from, 0):b.offset(to, 0)])
}

func clampSlice(pix []int) {
	for i, v := range pix {
		pix[i] = ClampChannel(v)
	}
}

// ClampChannel restricts a single channel value to [0, MaxChannel].
func ClampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxChannel {
		return MaxChannel
	}
	return v
}
