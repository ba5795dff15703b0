package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// noArgs is the schema of a tool that takes no arguments.
func noArgs() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

// regionSchema describes an optional x1,y1 (inclusive) to x2,y2 (exclusive)
// rectangle.
func regionSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"x1": map[string]interface{}{"type": "integer"},
			"y1": map[string]interface{}{"type": "integer"},
			"x2": map[string]interface{}{"type": "integer"},
			"y2": map[string]interface{}{"type": "integer"},
		},
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Loading and Presentation
		{
			Name:        "image_load",
			Description: "Load an image file (PNG, JPEG, GIF, BMP, TIFF, WebP) and make it the active image. Returns its dimensions and format. EXIF orientation is applied.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_info",
			Description: "Get the dimensions, source and edit history of the active image.",
			InputSchema: noArgs(),
		},
		{
			Name:        "image_save",
			Description: "Write the active image to a file. The format follows the extension: .png, .jpg/.jpeg or .bmp.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path of the file to write",
					},
					"quality": map[string]interface{}{
						"type":        "integer",
						"description": "JPEG quality 1-100 (default 90). Ignored for other formats.",
						"default":     90,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_preview",
			Description: "Return the active image as a base64-encoded PNG so it can be viewed.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"max_size": map[string]interface{}{
						"type":        "integer",
						"description": "Scale down to fit a max_size x max_size box, keeping aspect ratio (default 1024)",
						"default":     1024,
					},
				},
			},
		},

		// Color Inspection
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a pixel of the active image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"x", "y"},
			},
		},
		{
			Name:        "image_sample_colors_multi",
			Description: "Get color values at multiple pixels of the active image in a single call.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string", "description": "Optional label for this point"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Array of points to sample",
					},
				},
				"required": []string{"points"},
			},
		},
		{
			Name:        "image_dominant_colors",
			Description: "Return the N most common colors of the active image, quantized to 16 levels per channel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of dominant colors to return (default 5)",
						"default":     5,
					},
					"region": regionSchema("Optional region to analyze. If omitted, analyzes entire image."),
				},
			},
		},

		// Filters
		{
			Name:        "filter_blur",
			Description: "Blur the active image with a 3x3 weighted kernel (center 1/4, edges 1/8, corners 1/16).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"legacy_kernel": map[string]interface{}{
						"type":        "boolean",
						"description": "Use the older irregular 4x3 kernel anchored at (1,1)",
						"default":     false,
					},
				},
			},
		},
		{
			Name:        "filter_sharpen",
			Description: "Sharpen the active image with a 5x5 kernel.",
			InputSchema: noArgs(),
		},
		{
			Name:        "color_grayscale",
			Description: "Convert the active image to grayscale using BT.709 luma weights.",
			InputSchema: noArgs(),
		},
		{
			Name:        "color_sepia",
			Description: "Apply a sepia tone to the active image.",
			InputSchema: noArgs(),
		},
		{
			Name:        "image_dither",
			Description: "Reduce the active image to black and white with Floyd-Steinberg error diffusion. With levels > 2, dither to that many gray levels instead.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"levels": map[string]interface{}{
						"type":        "integer",
						"description": "Number of gray levels, 2-256 (default 2)",
						"default":     2,
					},
				},
			},
		},
		{
			Name:        "image_mosaic",
			Description: "Partition the active image into Voronoi cells around randomly placed seeds and fill each cell with its average color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"seeds": map[string]interface{}{
						"type":        "integer",
						"description": "Number of seeds (cells), at least 1",
					},
					"random_seed": map[string]interface{}{
						"type":        "integer",
						"description": "Optional seed for reproducible seed placement",
					},
				},
				"required": []string{"seeds"},
			},
		},
		{
			Name:        "image_resize",
			Description: "Resample the active image to a new size with a Lanczos filter.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"width":  map[string]interface{}{"type": "integer", "description": "New width in pixels"},
					"height": map[string]interface{}{"type": "integer", "description": "New height in pixels"},
				},
				"required": []string{"width", "height"},
			},
		},

		// Patterns
		{
			Name:        "pattern_rainbow",
			Description: "Replace the active image with seven rainbow stripes, violet first.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"height": map[string]interface{}{"type": "integer", "description": "Image height in pixels"},
					"width":  map[string]interface{}{"type": "integer", "description": "Image width in pixels"},
					"orientation": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"horizontal", "vertical"},
						"description": "Stripe direction (default horizontal)",
						"default":     "horizontal",
					},
				},
				"required": []string{"height", "width"},
			},
		},
		{
			Name:        "pattern_checkerboard",
			Description: "Replace the active image with an 8x8 checkerboard.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"square_size": map[string]interface{}{
						"type":        "integer",
						"description": "Side of each square in pixels",
					},
					"light": map[string]interface{}{
						"type":        "string",
						"description": "Color of the top-left square as #RRGGBB (default #FFFFFF)",
						"default":     "#FFFFFF",
					},
					"dark": map[string]interface{}{
						"type":        "string",
						"description": "Color of the other squares as #RRGGBB (default #000000)",
						"default":     "#000000",
					},
				},
				"required": []string{"square_size"},
			},
		},
		{
			Name:        "flag_france",
			Description: "Replace the active image with the flag of France.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"height": map[string]interface{}{"type": "integer", "description": "Image height in pixels"},
					"width":  map[string]interface{}{"type": "integer", "description": "Image width in pixels"},
				},
				"required": []string{"height", "width"},
			},
		},
		{
			Name:        "flag_switzerland",
			Description: "Replace the active image with the square flag of Switzerland.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"size": map[string]interface{}{"type": "integer", "description": "Side length in pixels"},
				},
				"required": []string{"size"},
			},
		},
		{
			Name:        "flag_greece",
			Description: "Replace the active image with the flag of Greece. Width must be at least 5/9 of the height.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"height": map[string]interface{}{"type": "integer", "description": "Image height in pixels"},
					"width":  map[string]interface{}{"type": "integer", "description": "Image width in pixels"},
				},
				"required": []string{"height", "width"},
			},
		},

		// OCR
		{
			Name:        "image_ocr",
			Description: "Extract text from the active image using Tesseract. Returns the full text and word bounding boxes.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"language": map[string]interface{}{
						"type":        "string",
						"description": "Tesseract language code (default eng)",
						"default":     "eng",
					},
					"binarize": map[string]interface{}{
						"type":        "boolean",
						"description": "Dither a copy to black and white before recognition",
						"default":     false,
					},
					"region": regionSchema("Optional region to read. Word bounds are still reported in full image coordinates."),
				},
			},
		},
		{
			Name:        "image_detect_text_regions",
			Description: "Find blocks of text in the active image without returning their content.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"min_confidence": map[string]interface{}{
						"type":        "number",
						"description": "Minimum confidence 0.0-1.0 (default 0.5)",
						"default":     0.5,
					},
					"language": map[string]interface{}{
						"type":        "string",
						"description": "Tesseract language code (default eng)",
						"default":     "eng",
					},
					"binarize": map[string]interface{}{
						"type":        "boolean",
						"description": "Dither a copy to black and white before detection",
						"default":     false,
					},
					"region": regionSchema("Optional region to search. Bounds are reported in full image coordinates."),
				},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
