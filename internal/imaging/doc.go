// Package imaging moves pixel buffers in and out of the server.
//
// The loader side decodes image files into *raster.Buffer values and keeps
// them in a path-keyed BufferCache. The presenter side encodes a buffer back
// into a file (Save) or into a base64 PNG for display (Preview), and answers
// color questions about it (SampleColor, DominantColors).
//
// # Coordinate System
//
// Tool-facing coordinates are 0-based with the origin at the top-left corner:
//   - X: column (0 = leftmost pixel)
//   - Y: row (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive
//
// raster.Buffer itself is addressed as (row, col), so Y maps to row and X to
// column.
//
// # Formats
//
// Decoding goes through github.com/disintegration/imaging with EXIF
// auto-orientation. PNG, JPEG, GIF, BMP, TIFF and WebP are registered.
// Encoding uses the github.com/anthonynsimon/bild imgio encoders and supports
// PNG, JPEG and BMP.
//
// # Thread Safety
//
// BufferCache is safe for concurrent use and hands out clones, so callers may
// transform what they receive without affecting the cached copy.
package imaging
