// Package ocr reads the handwritten/printed header band of a rectified
// answer sheet (student name, class, sheet id) with Tesseract.
//
// Tesseract must be installed on the system, together with the language
// data for the requested language:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// The engine binding needs cgo. Builds without cgo keep the package API
// but ReadHeader returns ErrOCRUnavailable; answer decoding never
// depends on it.
package ocr
