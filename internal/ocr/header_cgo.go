//go:build cgo

package ocr

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// ReadHeader runs Tesseract over one region of a rectified canvas and
// returns the recognized text. language is a Tesseract language code
// such as "eng"; the matching language data must be installed.
//
// Tesseract only consumes files, so the region is cropped and written to
// a temporary PNG for the duration of the call.
func ReadHeader(canvas image.Image, region image.Rectangle, language string) (*HeaderResult, error) {
	region = region.Intersect(canvas.Bounds())
	if region.Empty() {
		return nil, fmt.Errorf("header region %v is outside the canvas", region)
	}
	band := imaging.Crop(canvas, region)

	tmp, err := os.CreateTemp("", "sheet-header-*.png")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := imaging.Save(band, tmpPath); err != nil {
		return nil, fmt.Errorf("failed to write header band: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImage(tmpPath); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	result := &HeaderResult{Text: text, Words: []HeaderWord{}}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		// Text alone is still useful.
		return result, nil
	}
	for _, box := range boxes {
		if box.Word == "" {
			continue
		}
		result.Words = append(result.Words, HeaderWord{
			Text:       box.Word,
			Confidence: float64(box.Confidence) / 100.0,
		})
	}
	return result, nil
}
