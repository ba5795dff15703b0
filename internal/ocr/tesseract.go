package ocr

import (
	"bytes"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
	dimaging "github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/pixel-filter-mcp/internal/raster"
	"github.com/ironsheep/pixel-filter-mcp/internal/transform"
)

// DefaultLanguage is used when Options.Language is empty.
const DefaultLanguage = "eng"

// Bounds represents a rectangular bounding box in pixel coordinates.
type Bounds struct {
	X1 int `json:"x1"` // Left edge
	Y1 int `json:"y1"` // Top edge
	X2 int `json:"x2"` // Right edge
	Y2 int `json:"y2"` // Bottom edge
}

// TextRegion is a recognized word with its location and confidence.
type TextRegion struct {
	Text string `json:"text"`

	// Confidence is the OCR confidence score (0.0 to 1.0).
	Confidence float64 `json:"confidence"`

	Bounds Bounds `json:"bounds"`
}

// OCRResult contains the text recognized in a buffer.
type OCRResult struct {
	// FullText is all recognized text with Tesseract's spacing and newlines.
	FullText string `json:"full_text"`

	// Regions lists individual words. It is empty, not nil, when Tesseract
	// could not report word boxes; FullText is still filled in.
	Regions []TextRegion `json:"regions"`

	Language  string `json:"language"`
	Binarized bool   `json:"binarized"`
}

// Options control a recognition run.
type Options struct {
	// Language is a Tesseract language code such as "eng" or "deu".
	Language string

	// Binarize dithers a copy of the buffer to black and white first.
	Binarize bool

	// Region restricts recognition to a rectangle of the buffer. nil means
	// the whole buffer.
	Region *Bounds
}

// Recognize runs Tesseract over buf and returns the text it finds.
//
// Word bounds are in buf's coordinates even when a Region is given. buf is
// not modified.
func Recognize(buf *raster.Buffer, opts Options) (*OCRResult, error) {
	if opts.Language == "" {
		opts.Language = DefaultLanguage
	}

	data, offset, err := prepare(buf, opts)
	if err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(opts.Language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	result := &OCRResult{
		FullText:  text,
		Regions:   []TextRegion{},
		Language:  opts.Language,
		Binarized: opts.Binarize,
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return result, nil
	}

	for _, box := range boxes {
		if box.Word == "" {
			continue
		}
		result.Regions = append(result.Regions, TextRegion{
			Text:       box.Word,
			Confidence: float64(box.Confidence) / 100.0,
			Bounds:     shift(box.Box, offset),
		})
	}
	return result, nil
}

// DetectTextRegionsResult contains text block locations without their text.
type DetectTextRegionsResult struct {
	Regions []TextRegionBox `json:"regions"`
	Count   int             `json:"count"`
}

// TextRegionBox is the location of a text block and Tesseract's confidence
// that it holds text.
type TextRegionBox struct {
	Bounds     Bounds  `json:"bounds"`
	Confidence float64 `json:"confidence"`
}

// DetectTextRegions finds block-level text areas in buf, dropping those with
// confidence below minConfidence (0.0 to 1.0). Language and Region in opts are
// honored the same way as in Recognize.
func DetectTextRegions(buf *raster.Buffer, minConfidence float64, opts Options) (*DetectTextRegionsResult, error) {
	if opts.Language == "" {
		opts.Language = DefaultLanguage
	}

	data, offset, err := prepare(buf, opts)
	if err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(opts.Language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_BLOCK)
	if err != nil {
		return nil, fmt.Errorf("failed to get text regions: %w", err)
	}

	regions := make([]TextRegionBox, 0)
	for _, box := range boxes {
		confidence := float64(box.Confidence) / 100.0
		if confidence < minConfidence {
			continue
		}
		regions = append(regions, TextRegionBox{
			Bounds:     shift(box.Box, offset),
			Confidence: confidence,
		})
	}

	return &DetectTextRegionsResult{
		Regions: regions,
		Count:   len(regions),
	}, nil
}

// prepare validates the buffer and region, applies binarization and returns
// the PNG bytes to recognize plus the region's top-left corner.
func prepare(buf *raster.Buffer, opts Options) ([]byte, image.Point, error) {
	if buf.Empty() {
		return nil, image.Point{}, fmt.Errorf("%w: cannot read text from a %dx%d buffer",
			raster.ErrInvalidDimension, buf.Width(), buf.Height())
	}

	src := buf
	if opts.Binarize {
		src = buf.Clone()
		transform.Dither(src)
	}

	var img image.Image = src.ToImage()
	var offset image.Point
	if opts.Region != nil {
		rect, err := clip(opts.Region, buf)
		if err != nil {
			return nil, image.Point{}, err
		}
		img = dimaging.Crop(img, rect)
		offset = rect.Min
	}

	data, err := EncodePNG(img)
	if err != nil {
		return nil, image.Point{}, err
	}
	return data, offset, nil
}

// clip intersects the region with the buffer; an empty result is an error.
func clip(r *Bounds, buf *raster.Buffer) (image.Rectangle, error) {
	rect := image.Rect(r.X1, r.Y1, r.X2, r.Y2).Intersect(image.Rect(0, 0, buf.Width(), buf.Height()))
	if rect.Empty() {
		return image.Rectangle{}, fmt.Errorf("%w: region (%d,%d)-(%d,%d)",
			raster.ErrOutOfBounds, r.X1, r.Y1, r.X2, r.Y2)
	}
	return rect, nil
}

func shift(box image.Rectangle, offset image.Point) Bounds {
	box = box.Add(offset)
	return Bounds{
		X1: box.Min.X,
		Y1: box.Min.Y,
		X2: box.Max.X,
		Y2: box.Max.Y,
	}
}

// EncodePNG encodes img as PNG in memory.
func EncodePNG(img image.Image) ([]byte, error) {
	var out bytes.Buffer
	if err := imgio.PNGEncoder()(&out, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return out.Bytes(), nil
}
