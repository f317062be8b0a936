package detection

import (
	"image"
	"sort"

	"github.com/ironsheep/bubblesheet-mcp/internal/geometry"
)

// Components below this pixel count are sensor noise, not sheet structure.
const minComponentSize = 10

// Contour is an ordered closed boundary traced from an edge map.
type Contour struct {
	// Points is the boundary polygon, one entry per boundary pixel,
	// ordered clockwise from the topmost-leftmost pixel.
	Points []geometry.Point `json:"points"`

	// Area is the polygon area enclosed by Points (shoelace), not the
	// bounding-box area.
	Area float64 `json:"area"`
}

// BoundingRect returns the axis-aligned bounding rectangle of the contour.
func (c Contour) BoundingRect() image.Rectangle {
	return geometry.BoundingRect(c.Points)
}

// FindContours extracts the outer-level closed boundaries from a binary
// edge map (non-zero pixels are edges).
//
// Edge pixels are grouped into 8-connected components; components smaller
// than the noise floor are dropped. Each surviving component's outer
// boundary is traced with Moore neighbor tracing, giving an ordered
// polygon whose shoelace area is the contour's enclosed area. Contours
// lying inside a larger contour's polygon are suppressed.
func FindContours(edges *image.Gray) []Contour {
	bounds := edges.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	mask := make([][]bool, height)
	for y := 0; y < height; y++ {
		mask[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			mask[y][x] = edges.Pix[y*edges.Stride+x] != 0
		}
	}

	visited := make([][]bool, height)
	for y := 0; y < height; y++ {
		visited[y] = make([]bool, width)
	}

	contours := make([]Contour, 0)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !mask[y][x] || visited[y][x] {
				continue
			}
			// Scan order guarantees this is the component's
			// topmost-leftmost pixel.
			size := floodFill(mask, visited, x, y, width, height)
			if size < minComponentSize {
				continue
			}
			boundary := traceBoundary(mask, geometry.Point{X: x, Y: y}, width, height, size)
			contours = append(contours, Contour{
				Points: boundary,
				Area:   geometry.PolygonArea(boundary),
			})
		}
	}

	return suppressNested(contours)
}

// floodFill marks one 8-connected component as visited and returns its
// pixel count. Iterative, stack-based.
func floodFill(mask, visited [][]bool, startX, startY, width, height int) int {
	stack := []geometry.Point{{X: startX, Y: startY}}
	size := 0

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			continue
		}
		if visited[p.Y][p.X] || !mask[p.Y][p.X] {
			continue
		}

		visited[p.Y][p.X] = true
		size++

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, geometry.Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
	return size
}

// Clockwise 8-neighborhood starting East.
var mooreDirs = [8]geometry.Point{
	{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: -1, Y: 1},
	{X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
}

// traceBoundary walks the outer boundary of a component clockwise using
// Moore neighbor tracing. start must be the component's topmost-leftmost
// pixel.
//
// Each step is a pure function of the walk state (current pixel plus the
// backtrack direction), so the boundary is closed exactly when the state
// produced by the first move out of start comes around again; tracing
// stops right before repeating it.
func traceBoundary(mask [][]bool, start geometry.Point, width, height, size int) []geometry.Point {
	isSet := func(p geometry.Point) bool {
		return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height && mask[p.Y][p.X]
	}

	// The pixel west of a topmost-leftmost start is always background,
	// so pretend the walk entered moving east.
	boundary := []geometry.Point{start}
	cur := start
	backtrack := 4
	var firstMove geometry.Point
	firstBacktrack := -1

	// Boundary length can approach the component size; the cap only
	// guards against a logic error looping forever.
	for step := 0; step < 4*size+8; step++ {
		found := -1
		for i := 1; i <= 8; i++ {
			d := (backtrack + i) % 8
			if isSet(geometry.Point{X: cur.X + mooreDirs[d].X, Y: cur.Y + mooreDirs[d].Y}) {
				found = d
				break
			}
		}
		if found < 0 {
			// Isolated pixel.
			return boundary
		}

		next := geometry.Point{X: cur.X + mooreDirs[found].X, Y: cur.Y + mooreDirs[found].Y}
		nextBacktrack := (found + 4) % 8
		if firstBacktrack < 0 {
			firstMove = next
			firstBacktrack = nextBacktrack
		} else if next == firstMove && nextBacktrack == firstBacktrack {
			return boundary
		}

		cur = next
		backtrack = nextBacktrack
		if next != start {
			boundary = append(boundary, next)
		}
	}
	return boundary
}

// suppressNested drops contours whose boundary lies inside a larger
// contour's polygon, leaving only outer-level boundaries.
func suppressNested(contours []Contour) []Contour {
	sort.Slice(contours, func(i, j int) bool {
		return contours[i].Area > contours[j].Area
	})

	outer := make([]Contour, 0, len(contours))
	for _, c := range contours {
		nested := false
		for _, o := range outer {
			if geometry.ContainsPoint(o.Points, c.Points[0]) {
				nested = true
				break
			}
		}
		if !nested {
			outer = append(outer, c)
		}
	}
	return outer
}
