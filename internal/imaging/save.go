package imaging

import (
	"errors"
	"fmt"
	"os"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/ironsheep/pixel-filter-mcp/internal/raster"
)

// ErrUnsupportedFormat is returned when a file extension has no encoder.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// DefaultJPEGQuality is used when Save is given a quality outside 1-100.
const DefaultJPEGQuality = 90

// SaveResult describes a file written by Save.
type SaveResult struct {
	Path          string `json:"path"`
	Format        string `json:"format"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	FileSizeBytes int64  `json:"file_size_bytes"`
}

// Save encodes buf to path, picking the encoder from the extension.
//
// PNG, JPEG and BMP are supported. quality only applies to JPEG; values
// outside 1-100 fall back to DefaultJPEGQuality. Empty buffers cannot be
// encoded and return raster.ErrInvalidDimension.
func Save(buf *raster.Buffer, path string, quality int) (*SaveResult, error) {
	if buf.Empty() {
		return nil, fmt.Errorf("%w: cannot save a %dx%d buffer",
			raster.ErrInvalidDimension, buf.Width(), buf.Height())
	}

	format := formatOf(path)
	var encoder imgio.Encoder
	switch format {
	case "png":
		encoder = imgio.PNGEncoder()
	case "jpeg":
		if quality < 1 || quality > 100 {
			quality = DefaultJPEGQuality
		}
		encoder = imgio.JPEGEncoder(quality)
	case "bmp":
		encoder = imgio.BMPEncoder()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	if err := imgio.Save(path, buf.ToImage(), encoder); err != nil {
		return nil, fmt.Errorf("failed to save image: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return &SaveResult{
		Path:          path,
		Format:        format,
		Width:         buf.Width(),
		Height:        buf.Height(),
		FileSizeBytes: stat.Size(),
	}, nil
}
