package geometry

import (
	"fmt"
	"image"
	"math"
)

// Point represents a 2D coordinate in pixel space.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// Quad is a quadrilateral whose corners are ordered top-left, top-right,
// bottom-right, bottom-left.
type Quad [4]Point

// degenerate reports whether any three corners are collinear, which
// collapses the quadrilateral into a triangle or a line segment.
func (q Quad) degenerate() bool {
	for i := 0; i < 4; i++ {
		a, b, c := q[i], q[(i+1)%4], q[(i+2)%4]
		cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
		if cross == 0 {
			return true
		}
	}
	return false
}

// PolygonArea returns the area enclosed by a closed polygon using the
// shoelace formula. The polygon is implicitly closed; the last point is
// joined back to the first. Winding direction does not matter.
func PolygonArea(pts []Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	var sum float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += float64(p.X*q.Y - q.X*p.Y)
	}
	return math.Abs(sum) / 2
}

// Perimeter returns the length of a closed polygon's boundary.
func Perimeter(pts []Point) float64 {
	if len(pts) < 2 {
		return 0
	}
	var sum float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		dx := float64(q.X - p.X)
		dy := float64(q.Y - p.Y)
		sum += math.Sqrt(dx*dx + dy*dy)
	}
	return sum
}

// BoundingRect returns the axis-aligned bounding rectangle of a point set.
// The rectangle follows image.Rectangle conventions (Max is exclusive).
func BoundingRect(pts []Point) image.Rectangle {
	if len(pts) == 0 {
		return image.Rectangle{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// ContainsPoint reports whether p lies inside the closed polygon using
// ray casting. Points exactly on an edge may land on either side.
func ContainsPoint(polygon []Point, p Point) bool {
	if len(polygon) < 3 {
		return false
	}
	inside := false
	j := len(polygon) - 1
	for i := 0; i < len(polygon); i++ {
		pi, pj := polygon[i], polygon[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			crossX := float64(pj.X-pi.X)*float64(p.Y-pi.Y)/float64(pj.Y-pi.Y) + float64(pi.X)
			if float64(p.X) < crossX {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// Simplify reduces a closed polygon to the smallest polygon whose vertices
// deviate from the original boundary by at most epsilon, using the
// Douglas-Peucker algorithm. The ring is split at its two mutually
// farthest anchor points and each open chain is simplified independently.
func Simplify(pts []Point, epsilon float64) []Point {
	if len(pts) < 3 {
		return pts
	}

	// Anchor the split at the point farthest from pts[0].
	far := 0
	var farDist float64
	for i, p := range pts {
		dx := float64(p.X - pts[0].X)
		dy := float64(p.Y - pts[0].Y)
		if d := dx*dx + dy*dy; d > farDist {
			farDist = d
			far = i
		}
	}
	if far == 0 {
		return pts[:1]
	}

	closing := make([]Point, 0, len(pts)-far+1)
	closing = append(closing, pts[far:]...)
	closing = append(closing, pts[0])

	first := douglasPeucker(pts[:far+1], epsilon)
	second := douglasPeucker(closing, epsilon)

	// Chain endpoints are shared; drop them once when joining.
	out := make([]Point, 0, len(first)+len(second)-2)
	out = append(out, first...)
	out = append(out, second[1:len(second)-1]...)
	return out
}

// douglasPeucker simplifies an open polyline, keeping both endpoints.
func douglasPeucker(pts []Point, epsilon float64) []Point {
	if len(pts) <= 2 {
		return pts
	}

	var maxDist float64
	index := 0
	for i := 1; i < len(pts)-1; i++ {
		d := perpendicularDistance(pts[i], pts[0], pts[len(pts)-1])
		if d > maxDist {
			maxDist = d
			index = i
		}
	}

	if maxDist <= epsilon {
		return []Point{pts[0], pts[len(pts)-1]}
	}

	left := douglasPeucker(pts[:index+1], epsilon)
	right := douglasPeucker(pts[index:], epsilon)
	return append(left[:len(left)-1], right...)
}

// perpendicularDistance returns the distance from p to the line through a and b.
func perpendicularDistance(p, a, b Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	length := math.Sqrt(dx*dx + dy*dy)
	if length == 0 {
		ex := float64(p.X - a.X)
		ey := float64(p.Y - a.Y)
		return math.Sqrt(ex*ex + ey*ey)
	}
	return math.Abs(dy*float64(p.X)-dx*float64(p.Y)+float64(b.X*a.Y)-float64(b.Y*a.X)) / length
}

// OrderCorners maps an arbitrary 4-point polygon onto the canonical
// top-left, top-right, bottom-right, bottom-left corner order.
//
// The classification uses the coordinate sum/difference rule: the top-left
// corner minimizes x+y, the bottom-right maximizes it, the top-right
// maximizes x-y, and the bottom-left minimizes x-y. An error is returned
// when the input does not have exactly four points or when two corners
// resolve to the same slot (a degenerate, self-intersecting shape).
func OrderCorners(pts []Point) (Quad, error) {
	var q Quad
	if len(pts) != 4 {
		return q, fmt.Errorf("expected 4 corners, got %d", len(pts))
	}

	tl, br := 0, 0
	tr, bl := 0, 0
	for i, p := range pts {
		sum := p.X + p.Y
		diff := p.X - p.Y
		if sum < pts[tl].X+pts[tl].Y {
			tl = i
		}
		if sum > pts[br].X+pts[br].Y {
			br = i
		}
		if diff > pts[tr].X-pts[tr].Y {
			tr = i
		}
		if diff < pts[bl].X-pts[bl].Y {
			bl = i
		}
	}

	seen := map[int]bool{tl: true, tr: true, br: true, bl: true}
	if len(seen) != 4 {
		return q, fmt.Errorf("degenerate quadrilateral: corners %v", pts)
	}

	q[0] = pts[tl]
	q[1] = pts[tr]
	q[2] = pts[br]
	q[3] = pts[bl]
	return q, nil
}
