package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/parallel"
)

// Adaptive threshold constants. The window is the square neighborhood the
// local mean is computed over; the bias pushes the threshold below the
// mean so paper texture does not register as foreground.
const (
	adaptiveWindow = 25
	adaptiveBias   = 10
)

// Binarize converts a rectified color canvas into a binary marked/unmarked
// map. A pixel is foreground (255) when its intensity falls below the mean
// of its local window minus the bias, which compensates for uneven
// lighting across a photographed page. Pure and deterministic, no error
// paths.
func Binarize(img image.Image) *image.Gray {
	gray := toGray(img)
	bounds := gray.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	// Summed-area table; one extra row/column of zeros keeps the
	// window arithmetic branch-free.
	integral := make([]uint64, (width+1)*(height+1))
	stride := width + 1
	for y := 1; y <= height; y++ {
		var rowSum uint64
		for x := 1; x <= width; x++ {
			rowSum += uint64(gray.Pix[(y-1)*gray.Stride+(x-1)])
			integral[y*stride+x] = integral[(y-1)*stride+x] + rowSum
		}
	}

	half := adaptiveWindow / 2
	out := image.NewGray(image.Rect(0, 0, width, height))

	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			y1 := clamp(y-half, 0, height-1)
			y2 := clamp(y+half, 0, height-1)
			for x := 0; x < width; x++ {
				x1 := clamp(x-half, 0, width-1)
				x2 := clamp(x+half, 0, width-1)

				count := uint64((x2 - x1 + 1) * (y2 - y1 + 1))
				sum := integral[(y2+1)*stride+(x2+1)] -
					integral[y1*stride+(x2+1)] -
					integral[(y2+1)*stride+x1] +
					integral[y1*stride+x1]

				mean := float64(sum) / float64(count)
				if float64(gray.Pix[y*gray.Stride+x]) < mean-adaptiveBias {
					out.Pix[y*out.Stride+x] = 255
				}
			}
		}
	})

	return out
}
