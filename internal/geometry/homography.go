package geometry

import (
	"fmt"
	"math"
)

// Homography is a 3x3 projective transform in row-major order with the
// bottom-right element fixed to 1.
type Homography [9]float64

// SolveQuadTransform computes the homography mapping each corner of src
// onto the matching corner of dst. Corners correspond by position, so both
// quads must already be in canonical order.
//
// The eight unknown coefficients are solved from the standard 8x8 linear
// system via Gaussian elimination with partial pivoting. An error is
// returned when either quad has three collinear corners: a degenerate src
// makes the system singular, while a degenerate dst still solves but
// collapses the plane onto a line, so both are rejected up front.
func SolveQuadTransform(src, dst Quad) (Homography, error) {
	var h Homography

	if src.degenerate() {
		return h, fmt.Errorf("collinear corners in source quad %v", src)
	}
	if dst.degenerate() {
		return h, fmt.Errorf("collinear corners in destination quad %v", dst)
	}

	// Two equations per corner correspondence.
	var m [8][9]float64
	for i := 0; i < 4; i++ {
		sx := float64(src[i].X)
		sy := float64(src[i].Y)
		dx := float64(dst[i].X)
		dy := float64(dst[i].Y)

		m[2*i] = [9]float64{sx, sy, 1, 0, 0, 0, -sx * dx, -sy * dx, dx}
		m[2*i+1] = [9]float64{0, 0, 0, sx, sy, 1, -sx * dy, -sy * dy, dy}
	}

	for col := 0; col < 8; col++ {
		pivot := col
		for row := col + 1; row < 8; row++ {
			if math.Abs(m[row][col]) > math.Abs(m[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(m[pivot][col]) < 1e-10 {
			return h, fmt.Errorf("singular corner system for %v -> %v", src, dst)
		}
		m[col], m[pivot] = m[pivot], m[col]

		for row := 0; row < 8; row++ {
			if row == col {
				continue
			}
			factor := m[row][col] / m[col][col]
			for k := col; k < 9; k++ {
				m[row][k] -= factor * m[col][k]
			}
		}
	}

	for i := 0; i < 8; i++ {
		h[i] = m[i][8] / m[i][i]
	}
	h[8] = 1
	return h, nil
}

// Apply transforms a point through the homography, returning the projected
// coordinates. The projective divide means straight lines stay straight
// but parallelism is not preserved.
func (h Homography) Apply(x, y float64) (float64, float64) {
	w := h[6]*x + h[7]*y + h[8]
	if w == 0 {
		return 0, 0
	}
	px := (h[0]*x + h[1]*y + h[2]) / w
	py := (h[3]*x + h[4]*y + h[5]) / w
	return px, py
}
