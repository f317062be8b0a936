package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// Fixed working-canvas dimensions. Every stage of the pipeline, and every
// layout constant downstream of it, assumes this exact size.
const (
	CanvasWidth  = 1240
	CanvasHeight = 1754
)

// Preprocessing constants. The blur radius expands to a 5x5 Gaussian
// kernel; the dilation pass closes single-pixel gaps in the Canny output
// so boundary contours stay closed for the tracer.
const (
	blurRadius   = 2.0
	dilateRadius = 2.0
	cannyLow     = 10
	cannyHigh    = 70
)

// Preprocess normalizes a raw photograph for recognition.
//
// The source is resampled onto the fixed working canvas with a Lanczos
// filter, converted to grayscale, blurred to suppress sensor noise, and
// edge detected. The returned color canvas is the rectification source;
// the returned edge map feeds the contour extractor.
//
// Preprocess has no error paths: any non-empty decoded image produces a
// canvas and an edge map.
func Preprocess(src image.Image) (*image.NRGBA, *image.Gray) {
	resized := imaging.Resize(src, CanvasWidth, CanvasHeight, imaging.Lanczos)
	gray := imaging.Grayscale(resized)
	blurred := blur.Gaussian(gray, blurRadius)

	edges := CannyEdges(toGray(blurred), cannyLow, cannyHigh)
	dilated := effect.Dilate(edges, dilateRadius)
	return resized, toGray(dilated)
}

// toGray flattens any image into a single-channel intensity plane using
// ITU-R BT.601 luminance weights.
func toGray(img image.Image) *image.Gray {
	bounds := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			lum := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
			out.Pix[(y-bounds.Min.Y)*out.Stride+(x-bounds.Min.X)] = uint8(lum)
		}
	}
	return out
}
