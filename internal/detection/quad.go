package detection

import (
	"sort"

	"github.com/ironsheep/bubblesheet-mcp/internal/geometry"
)

const (
	// Quadrilateral candidates smaller than this are print artifacts,
	// not an answer region, on the 1240x1754 canvas.
	minQuadArea = 5000

	// Douglas-Peucker tolerance as a fraction of the boundary length.
	simplifyEpsilon = 0.02
)

// SelectQuadrilaterals picks the largest plausible quadrilateral contours.
//
// Contours are ranked by enclosed area, descending. Each candidate's
// boundary is simplified to the smallest polygon within a tolerance
// proportional to its perimeter; only candidates that reduce to exactly
// four corners survive, with corners normalized to canonical order. At
// most limit quadrilaterals are returned.
//
// An empty result means no page-like shape is present. Callers treat that
// as a recoverable per-page condition, not a failure of the batch.
func SelectQuadrilaterals(contours []Contour, limit int) []geometry.Quad {
	ranked := make([]Contour, 0, len(contours))
	for _, c := range contours {
		if c.Area >= minQuadArea {
			ranked = append(ranked, c)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].Area > ranked[j].Area
	})

	quads := make([]geometry.Quad, 0, limit)
	for _, c := range ranked {
		if len(quads) == limit {
			break
		}
		epsilon := simplifyEpsilon * geometry.Perimeter(c.Points)
		simplified := geometry.Simplify(c.Points, epsilon)
		if len(simplified) != 4 {
			continue
		}
		quad, err := geometry.OrderCorners(simplified)
		if err != nil {
			continue
		}
		quads = append(quads, quad)
	}
	return quads
}

// BiggestContour returns the largest-area contour, regardless of whether
// it simplifies to a quadrilateral. The classifier measures the detected
// region's raw bounding rectangle through this accessor.
func BiggestContour(contours []Contour) (Contour, bool) {
	if len(contours) == 0 {
		return Contour{}, false
	}
	biggest := contours[0]
	for _, c := range contours[1:] {
		if c.Area > biggest.Area {
			biggest = c
		}
	}
	return biggest, true
}
