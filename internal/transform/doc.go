// Package transform implements the in-place pixel transforms of the engine.
//
// Every function takes the *raster.Buffer it mutates as its first argument and
// holds no state between calls. Each transform finishes by clamping the buffer
// to [0,255]. Transforms that can fail validate their inputs before writing
// any pixel, so an error always leaves the buffer unchanged.
//
// # Transforms
//
//   - Convolve, Blur, Sharpen: 2D convolution with clipped borders
//   - Grayscale, Sepia: per-pixel linear recoloring
//   - Dither: grayscale followed by Floyd-Steinberg error diffusion
//   - DitherLevels: multi-level grayscale error diffusion
//   - Mosaic: random nearest-seed clustering with per-cluster averaging
//   - Resize: Lanczos resampling to a new size
//
// # Concurrency
//
// Transforms are synchronous and single-threaded. Running two transforms on
// the same buffer at once is a caller error.
package transform
