package ocr

import (
	"errors"
	"image"
)

// ErrOCRUnavailable is returned by ReadHeader in builds without cgo,
// where the Tesseract binding cannot be linked.
var ErrOCRUnavailable = errors.New("ocr support not compiled in")

// HeaderWord is one recognized word of the header band.
type HeaderWord struct {
	// Text is the recognized word.
	Text string `json:"text"`

	// Confidence is the engine's confidence, 0.0 to 1.0.
	Confidence float64 `json:"confidence"`
}

// HeaderResult is the recognized content of a sheet's header band.
type HeaderResult struct {
	// Text is the full header text with original spacing.
	Text string `json:"text"`

	// Words lists recognized words with confidences. Empty when the
	// engine cannot produce word boxes; Text is still filled.
	Words []HeaderWord `json:"words"`
}

// DefaultHeaderRegion returns the band of a rectified canvas where the
// sheet layouts print the name and class fields: the top eighth of the
// page, full width.
func DefaultHeaderRegion(bounds image.Rectangle) image.Rectangle {
	return image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Min.Y+bounds.Dy()/8)
}
