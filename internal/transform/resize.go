package transform

import (
	"fmt"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/pixel-filter-mcp/internal/raster"
)

// Resize resamples buf to width x height with a Lanczos filter and returns
// the new buffer. buf itself is not modified.
func Resize(buf *raster.Buffer, width, height int) (*raster.Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: resize to %dx%d", raster.ErrInvalidDimension, width, height)
	}
	if err := raster.CheckSize(width, height); err != nil {
		return nil, fmt.Errorf("resize: %w", err)
	}
	if buf.Empty() {
		return nil, fmt.Errorf("%w: cannot resize a %dx%d buffer",
			raster.ErrInvalidDimension, buf.Width(), buf.Height())
	}

	resized := imaging.Resize(buf.ToImage(), width, height, imaging.Lanczos)
	out := raster.FromImage(resized)
	out.Clamp()
	return out, nil
}
