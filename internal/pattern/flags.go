package pattern

import (
	"fmt"

	"github.com/ironsheep/pixel-filter-mcp/internal/raster"
)

// France returns the French tricolor: blue, white and red vertical bands of
// width/3 pixels, the red band taking the remainder.
func France(height, width int) (*raster.Buffer, error) {
	buf, err := newCanvas(width, height)
	if err != nil {
		return nil, err
	}
	stripes(buf, Vertical, []RGB{FranceBlue, White, Red})
	return buf, nil
}

// Switzerland returns a size x size red square with a white cross.
//
// With unit = size/5, the cross is a vertical bar unit wide and 3*unit tall
// starting at (unit, 2*unit), overlapped by a horizontal bar 3*unit wide and
// unit tall starting at (2*unit, unit). Sizes that are not a multiple of 5
// leave the cross offset toward the top-left.
func Switzerland(size int) (*raster.Buffer, error) {
	buf, err := newCanvas(size, size)
	if err != nil {
		return nil, err
	}
	unit := size / 5

	fill(buf, 0, 0, size, size, Red)
	fill(buf, unit, 2*unit, 3*unit, unit, White)
	fill(buf, 2*unit, unit, unit, 3*unit, White)
	return buf, nil
}

// Greece returns the Greek flag on a height x width canvas.
//
// The stripe unit is height/9. A 5x5 unit blue canton with a white cross sits
// top-left. To its right, rows 0, 2 and 4 (in units) are blue; below it, rows
// 6 and 8 are blue across the full width. Everything else, including any
// rows past 9 units, is white. The canvas must be at least 5 units wide.
func Greece(height, width int) (*raster.Buffer, error) {
	if height > 0 && width < 5*(height/9) {
		return nil, fmt.Errorf("%w: width %d narrower than canton (%d) for height %d",
			raster.ErrInvalidDimension, width, 5*(height/9), height)
	}
	buf, err := newCanvas(width, height)
	if err != nil {
		return nil, err
	}
	unit := height / 9
	canton := 5 * unit
	rest := width - canton

	fill(buf, 0, 0, height, width, White)

	fill(buf, 0, 0, canton, canton, GreeceBlue)
	for _, row := range []int{0, 2, 4} {
		fill(buf, row*unit, canton, unit, rest, GreeceBlue)
	}
	for _, row := range []int{6, 8} {
		fill(buf, row*unit, 0, unit, width, GreeceBlue)
	}

	fill(buf, 0, 2*unit, canton, unit, White)
	fill(buf, 2*unit, 0, unit, canton, White)
	return buf, nil
}
