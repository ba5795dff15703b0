// Package raster provides the in-memory pixel buffer shared by every transform.
//
// A Buffer is a rectangular grid of RGB pixels addressed by (row, col), with
// row 0 at the top and col 0 at the left. Each pixel carries three integer
// channels. Channels are stored as int rather than uint8 so that transforms
// can accumulate values outside [0,255] while a pass is running; every
// mutating operation finishes with Clamp, which restores the [0,255] range.
//
// # Ownership
//
// A Buffer has a single owner and a single writer. It performs no locking;
// callers must not run two operations on the same Buffer concurrently.
//
// # Errors
//
// The package defines the sentinel errors used across the engine:
//   - ErrInvalidDimension: width or height out of range for the operation
//   - ErrInvalidSeedCount: mosaic seed count <= 0 or an empty cluster
//   - ErrOutOfBounds: a coordinate outside the buffer
//
// They are wrapped with context by the returning function; test for them
// with errors.Is.
package raster
