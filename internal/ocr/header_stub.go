//go:build !cgo

package ocr

import "image"

// ReadHeader is unavailable without cgo.
func ReadHeader(canvas image.Image, region image.Rectangle, language string) (*HeaderResult, error) {
	return nil, ErrOCRUnavailable
}
