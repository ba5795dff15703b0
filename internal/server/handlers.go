package server

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"

	"github.com/ironsheep/pixel-filter-mcp/internal/imaging"
	"github.com/ironsheep/pixel-filter-mcp/internal/ocr"
	"github.com/ironsheep/pixel-filter-mcp/internal/pattern"
	"github.com/ironsheep/pixel-filter-mcp/internal/raster"
	"github.com/ironsheep/pixel-filter-mcp/internal/transform"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "filter_blur").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	s.debugf("tools/call %s %s", params.Name, params.Arguments)

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.debugf("tool %s failed: %v", params.Name, err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Reads or replaces the active image
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Loading and Presentation
	case "image_load":
		return s.handleImageLoad(args)
	case "image_info":
		return s.info()
	case "image_save":
		return s.handleImageSave(args)
	case "image_preview":
		return s.handleImagePreview(args)

	// Color Inspection
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors_multi":
		return s.handleImageSampleColorsMulti(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)

	// Filters
	case "filter_blur":
		return s.handleFilterBlur(args)
	case "filter_sharpen":
		return s.apply("sharpen", inPlace(transform.Sharpen))
	case "color_grayscale":
		return s.apply("grayscale", inPlace(transform.Grayscale))
	case "color_sepia":
		return s.apply("sepia", inPlace(transform.Sepia))
	case "image_dither":
		return s.handleImageDither(args)
	case "image_mosaic":
		return s.handleImageMosaic(args)
	case "image_resize":
		return s.handleImageResize(args)

	// Patterns
	case "pattern_rainbow":
		return s.handlePatternRainbow(args)
	case "pattern_checkerboard":
		return s.handlePatternCheckerboard(args)
	case "flag_france":
		return s.handleFlagFrance(args)
	case "flag_switzerland":
		return s.handleFlagSwitzerland(args)
	case "flag_greece":
		return s.handleFlagGreece(args)

	// OCR
	case "image_ocr":
		return s.handleImageOCR(args)
	case "image_detect_text_regions":
		return s.handleImageDetectTextRegions(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// inPlace adapts a transform that cannot fail to the apply callback shape.
func inPlace(fn func(*raster.Buffer)) func(*raster.Buffer) (*raster.Buffer, interface{}, error) {
	return func(buf *raster.Buffer) (*raster.Buffer, interface{}, error) {
		fn(buf)
		return nil, nil, nil
	}
}

// regionArgs is the JSON shape shared by tools that accept a rectangle.
type regionArgs struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// === Loading and Presentation Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	info, err := imaging.LoadImageInfo(s.cache, a.Path)
	if err != nil {
		return nil, err
	}
	buf, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	s.replace(buf, a.Path, "load")
	s.debugf("decode cache holds %d images", s.cache.Len())
	return info, nil
}

type imageSaveArgs struct {
	Path    string `json:"path"`
	Quality int    `json:"quality"`
}

func (s *Server) handleImageSave(args json.RawMessage) (interface{}, error) {
	var a imageSaveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if a.Quality == 0 {
		a.Quality = imaging.DefaultJPEGQuality
	}

	buf, err := s.active()
	if err != nil {
		return nil, err
	}
	result, err := imaging.Save(buf, a.Path, a.Quality)
	if err != nil {
		return nil, err
	}
	// A cached decode of the old file contents is now stale.
	s.cache.Evict(a.Path)
	return result, nil
}

type imagePreviewArgs struct {
	MaxSize int `json:"max_size"`
}

func (s *Server) handleImagePreview(args json.RawMessage) (interface{}, error) {
	var a imagePreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.MaxSize == 0 {
		a.MaxSize = 1024
	}

	buf, err := s.active()
	if err != nil {
		return nil, err
	}
	return imaging.Preview(buf, a.MaxSize)
}

// === Color Inspection Handlers ===

type imageSampleColorArgs struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	buf, err := s.active()
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(buf, a.X, a.Y)
}

type imageSampleColorsMultiArgs struct {
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsMultiArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	buf, err := s.active()
	if err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	return imaging.SampleColorsMulti(buf, points)
}

type imageDominantColorsArgs struct {
	Count  int         `json:"count"`
	Region *regionArgs `json:"region,omitempty"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	buf, err := s.active()
	if err != nil {
		return nil, err
	}

	var region *imaging.Region
	if a.Region != nil {
		region = &imaging.Region{X1: a.Region.X1, Y1: a.Region.Y1, X2: a.Region.X2, Y2: a.Region.Y2}
	}
	return imaging.DominantColors(buf, a.Count, region)
}

// === Filter Handlers ===

type filterBlurArgs struct {
	LegacyKernel bool `json:"legacy_kernel"`
}

func (s *Server) handleFilterBlur(args json.RawMessage) (interface{}, error) {
	var a filterBlurArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.LegacyKernel {
		return s.apply("blur (legacy kernel)", inPlace(func(buf *raster.Buffer) {
			transform.Convolve(buf, transform.LegacyBlurKernel)
		}))
	}
	return s.apply("blur", inPlace(transform.Blur))
}

type imageDitherArgs struct {
	Levels int `json:"levels"`
}

func (s *Server) handleImageDither(args json.RawMessage) (interface{}, error) {
	var a imageDitherArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Levels == 0 || a.Levels == 2 {
		return s.apply("dither", inPlace(transform.Dither))
	}
	return s.apply(fmt.Sprintf("dither (%d levels)", a.Levels), func(buf *raster.Buffer) (*raster.Buffer, interface{}, error) {
		return nil, nil, transform.DitherLevels(buf, a.Levels)
	})
}

type imageMosaicArgs struct {
	Seeds      int     `json:"seeds"`
	RandomSeed *uint64 `json:"random_seed,omitempty"`
}

func (s *Server) handleImageMosaic(args json.RawMessage) (interface{}, error) {
	var a imageMosaicArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if a.RandomSeed != nil {
		rng = rand.New(rand.NewPCG(*a.RandomSeed, *a.RandomSeed))
	} else {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return s.apply(fmt.Sprintf("mosaic (%d seeds)", a.Seeds), func(buf *raster.Buffer) (*raster.Buffer, interface{}, error) {
		result, err := transform.Mosaic(buf, a.Seeds, rng)
		if err != nil {
			return nil, nil, err
		}
		return nil, result, nil
	})
}

type imageResizeArgs struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handleImageResize(args json.RawMessage) (interface{}, error) {
	var a imageResizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.apply(fmt.Sprintf("resize to %dx%d", a.Width, a.Height), func(buf *raster.Buffer) (*raster.Buffer, interface{}, error) {
		out, err := transform.Resize(buf, a.Width, a.Height)
		return out, nil, err
	})
}

// === Pattern Handlers ===

type sizeArgs struct {
	Height int `json:"height"`
	Width  int `json:"width"`
}

type patternRainbowArgs struct {
	Height      int    `json:"height"`
	Width       int    `json:"width"`
	Orientation string `json:"orientation"`
}

func (s *Server) handlePatternRainbow(args json.RawMessage) (interface{}, error) {
	var a patternRainbowArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Orientation == "" {
		a.Orientation = "horizontal"
	}
	o, err := pattern.ParseOrientation(a.Orientation)
	if err != nil {
		return nil, err
	}
	buf, err := pattern.RainbowStripes(a.Height, a.Width, o)
	if err != nil {
		return nil, err
	}
	return s.replace(buf, "", "rainbow "+o.String()), nil
}

type patternCheckerboardArgs struct {
	SquareSize int    `json:"square_size"`
	Light      string `json:"light"`
	Dark       string `json:"dark"`
}

func (s *Server) handlePatternCheckerboard(args json.RawMessage) (interface{}, error) {
	var a patternCheckerboardArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	light, dark := pattern.White, pattern.Black
	var err error
	if a.Light != "" {
		if light, err = pattern.ParseHex(a.Light); err != nil {
			return nil, err
		}
	}
	if a.Dark != "" {
		if dark, err = pattern.ParseHex(a.Dark); err != nil {
			return nil, err
		}
	}

	buf, err := pattern.Checkerboard(a.SquareSize, light, dark)
	if err != nil {
		return nil, err
	}
	return s.replace(buf, "", "checkerboard"), nil
}

func (s *Server) handleFlagFrance(args json.RawMessage) (interface{}, error) {
	var a sizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	buf, err := pattern.France(a.Height, a.Width)
	if err != nil {
		return nil, err
	}
	return s.replace(buf, "", "flag france"), nil
}

type flagSwitzerlandArgs struct {
	Size int `json:"size"`
}

func (s *Server) handleFlagSwitzerland(args json.RawMessage) (interface{}, error) {
	var a flagSwitzerlandArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	buf, err := pattern.Switzerland(a.Size)
	if err != nil {
		return nil, err
	}
	return s.replace(buf, "", "flag switzerland"), nil
}

func (s *Server) handleFlagGreece(args json.RawMessage) (interface{}, error) {
	var a sizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	buf, err := pattern.Greece(a.Height, a.Width)
	if err != nil {
		return nil, err
	}
	return s.replace(buf, "", "flag greece"), nil
}

// === OCR Handlers ===

type imageOCRArgs struct {
	Language string      `json:"language"`
	Binarize bool        `json:"binarize"`
	Region   *regionArgs `json:"region,omitempty"`
}

func (a imageOCRArgs) options() ocr.Options {
	opts := ocr.Options{Language: a.Language, Binarize: a.Binarize}
	if a.Region != nil {
		opts.Region = &ocr.Bounds{X1: a.Region.X1, Y1: a.Region.Y1, X2: a.Region.X2, Y2: a.Region.Y2}
	}
	return opts
}

func (s *Server) handleImageOCR(args json.RawMessage) (interface{}, error) {
	var a imageOCRArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	buf, err := s.active()
	if err != nil {
		return nil, err
	}
	return ocr.Recognize(buf, a.options())
}

type imageDetectTextRegionsArgs struct {
	imageOCRArgs
	MinConfidence float64 `json:"min_confidence"`
}

func (s *Server) handleImageDetectTextRegions(args json.RawMessage) (interface{}, error) {
	var a imageDetectTextRegionsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.MinConfidence == 0 {
		a.MinConfidence = 0.5
	}
	buf, err := s.active()
	if err != nil {
		return nil, err
	}
	return ocr.DetectTextRegions(buf, a.MinConfidence, a.options())
}
