package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/bubblesheet-mcp/internal/geometry"
)

// Rectify warps the interior of a quadrilateral region of src onto an
// axis-aligned width x height canvas, correcting the photograph's
// perspective.
//
// The transform is solved from the four corner correspondences in
// canonical order (top-left maps to the canvas top-left and so on) and
// applied destination-to-source with bilinear resampling, so every output
// pixel is defined. Rectify is a pure function of its arguments; identical
// inputs always produce identical canvases.
//
// An error is returned only for a degenerate quadrilateral (three
// collinear corners), which the quadrilateral selector never emits.
func Rectify(src image.Image, quad geometry.Quad, width, height int) (*image.NRGBA, error) {
	canvas := geometry.Quad{
		{X: 0, Y: 0},
		{X: width - 1, Y: 0},
		{X: width - 1, Y: height - 1},
		{X: 0, Y: height - 1},
	}

	// dst->src so the output is sampled, never scattered into.
	h, err := geometry.SolveQuadTransform(canvas, quad)
	if err != nil {
		return nil, err
	}

	plane := imaging.Clone(src)
	srcW := plane.Bounds().Dx()
	srcH := plane.Bounds().Dy()
	out := image.NewNRGBA(image.Rect(0, 0, width, height))

	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < width; x++ {
				sx, sy := h.Apply(float64(x), float64(y))
				r, g, b, a := bilinearSample(plane, sx, sy, srcW, srcH)
				i := y*out.Stride + x*4
				out.Pix[i] = r
				out.Pix[i+1] = g
				out.Pix[i+2] = b
				out.Pix[i+3] = a
			}
		}
	})

	return out, nil
}

// bilinearSample reads src at a fractional coordinate, blending the four
// surrounding pixels. Coordinates outside the image clamp to the border.
func bilinearSample(src *image.NRGBA, x, y float64, width, height int) (uint8, uint8, uint8, uint8) {
	x0 := clamp(int(x), 0, width-1)
	y0 := clamp(int(y), 0, height-1)
	x1 := clamp(x0+1, 0, width-1)
	y1 := clamp(y0+1, 0, height-1)

	fx := x - float64(x0)
	fy := y - float64(y0)
	if fx < 0 {
		fx = 0
	}
	if fy < 0 {
		fy = 0
	}

	w00 := (1 - fx) * (1 - fy)
	w10 := fx * (1 - fy)
	w01 := (1 - fx) * fy
	w11 := fx * fy

	blend := func(c int) uint8 {
		v := w00*float64(src.Pix[y0*src.Stride+x0*4+c]) +
			w10*float64(src.Pix[y0*src.Stride+x1*4+c]) +
			w01*float64(src.Pix[y1*src.Stride+x0*4+c]) +
			w11*float64(src.Pix[y1*src.Stride+x1*4+c])
		return uint8(v + 0.5)
	}

	return blend(0), blend(1), blend(2), blend(3)
}
