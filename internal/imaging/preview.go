package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
	dimaging "github.com/disintegration/imaging"

	"github.com/ironsheep/pixel-filter-mcp/internal/raster"
)

// PreviewResult carries a PNG rendering of a buffer for display.
type PreviewResult struct {
	// Width and Height are the dimensions of the encoded PNG, which are
	// smaller than the buffer's when a size limit was applied.
	Width  int `json:"width"`
	Height int `json:"height"`

	// SourceWidth and SourceHeight are the dimensions of the buffer itself.
	SourceWidth  int `json:"source_width"`
	SourceHeight int `json:"source_height"`

	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Preview encodes buf as a base64 PNG.
//
// When maxSize > 0 and either side exceeds it, the image is scaled down with
// Lanczos resampling to fit a maxSize x maxSize box, keeping its aspect
// ratio. buf is never modified.
func Preview(buf *raster.Buffer, maxSize int) (*PreviewResult, error) {
	if buf.Empty() {
		return nil, fmt.Errorf("%w: cannot preview a %dx%d buffer",
			raster.ErrInvalidDimension, buf.Width(), buf.Height())
	}

	var img image.Image = buf.ToImage()
	if maxSize > 0 && (buf.Width() > maxSize || buf.Height() > maxSize) {
		img = dimaging.Fit(img, maxSize, maxSize, dimaging.Lanczos)
	}

	var out bytes.Buffer
	if err := imgio.PNGEncoder()(&out, img); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}

	bounds := img.Bounds()
	return &PreviewResult{
		Width:        bounds.Dx(),
		Height:       bounds.Dy(),
		SourceWidth:  buf.Width(),
		SourceHeight: buf.Height(),
		ImageBase64:  base64.StdEncoding.EncodeToString(out.Bytes()),
		MimeType:     "image/png",
	}, nil
}
