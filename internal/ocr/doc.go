// Package ocr recognizes text in a pixel buffer using Tesseract.
//
// It wraps the Tesseract OCR engine via gosseract/v2. The buffer is encoded
// to PNG in memory and handed to Tesseract directly, so no temporary files are
// written. A rectangular region can be selected, in which case word bounds are
// reported in the coordinates of the full buffer.
//
// # Binarization
//
// Options.Binarize runs Floyd-Steinberg error diffusion over a copy of the
// buffer before recognition. Photographs and low-contrast scans often read
// better as pure black and white. The caller's buffer is never modified.
//
// # Prerequisites
//
// Tesseract and its language data must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// The default language is English ("eng").
package ocr
