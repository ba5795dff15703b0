// Package server implements the MCP (Model Context Protocol) server for pixel
// filtering and pattern generation.
//
// The server keeps one active image. Tools either inspect it, replace it with a
// loaded file or a generated pattern, or run a transform over it. Transforms
// operate on a copy that is installed only when the transform succeeds, so a
// failed call never leaves a half-processed image behind.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Loading and Presentation:
//   - image_load: Load a file and make it the active image
//   - image_info: Dimensions, source and edit history
//   - image_save: Write the active image as PNG, JPEG or BMP
//   - image_preview: Base64 PNG, scaled to fit max_size
//
// Color Inspection:
//   - image_sample_color: Color at one pixel
//   - image_sample_colors_multi: Colors at several pixels
//   - image_dominant_colors: Most common quantized colors
//
// Filters:
//   - filter_blur, filter_sharpen: 3x3 and 5x5 convolutions
//   - color_grayscale, color_sepia: Per-pixel color mapping
//   - image_dither: Floyd-Steinberg error diffusion
//   - image_mosaic: Voronoi cells filled with their mean color
//   - image_resize: Lanczos resampling
//
// Patterns:
//   - pattern_rainbow, pattern_checkerboard
//   - flag_france, flag_switzerland, flag_greece
//
// OCR:
//   - image_ocr: Text and word boxes via Tesseract
//   - image_detect_text_regions: Text block boxes only
//
// # Image Caching
//
// Decoded files are cached by path. image_load hands the session a private
// copy, so transforms never touch the cached pixels. Saving over a path evicts
// its cache entry.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New()
//	srv.SetDebug(true)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
