package detection

import (
	"image"
	"math"
	"sort"

	"github.com/ironsheep/bubblesheet-mcp/internal/geometry"
)

// Bubble is one detected circular mark candidate.
type Bubble struct {
	Center     geometry.Point `json:"center"`
	Radius     int            `json:"radius"`
	Confidence float64        `json:"confidence"`
}

// BubbleCensus reports the circles found in the bubble radius band.
// The census is a diagnostic for page inspection; scoring is positional
// and never consults it.
type BubbleCensus struct {
	Bubbles []Bubble `json:"bubbles"`
	Count   int      `json:"count"`
}

// CensusBubbles detects circular outlines in an edge map using a Hough
// circle transform restricted to [minRadius, maxRadius].
//
// For each radius, every edge pixel votes for the centers it could belong
// to (sampled every 10 degrees). Accumulator cells collecting at least
// 60% of the expected circumference votes and dominating their 11x11
// neighborhood become detections; near-coincident centers are merged,
// keeping the higher-confidence circle.
func CensusBubbles(edges *image.Gray, minRadius, maxRadius int) *BubbleCensus {
	bounds := edges.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	bubbles := make([]Bubble, 0)

	for radius := minRadius; radius <= maxRadius; radius++ {
		accumulator := make([][]int, height)
		for y := 0; y < height; y++ {
			accumulator[y] = make([]int, width)
		}

		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if edges.Pix[y*edges.Stride+x] == 0 {
					continue
				}
				for angle := 0; angle < 360; angle += 10 {
					rad := float64(angle) * math.Pi / 180
					cx := x - int(float64(radius)*math.Cos(rad))
					cy := y - int(float64(radius)*math.Sin(rad))
					if cx >= 0 && cx < width && cy >= 0 && cy < height {
						accumulator[cy][cx]++
					}
				}
			}
		}

		threshold := int(float64(2*radius) * 0.6)
		for y := radius; y < height-radius; y++ {
			for x := radius; x < width-radius; x++ {
				if accumulator[y][x] < threshold {
					continue
				}
				isMax := true
				for dy := -5; dy <= 5 && isMax; dy++ {
					for dx := -5; dx <= 5 && isMax; dx++ {
						if dy == 0 && dx == 0 {
							continue
						}
						ny, nx := y+dy, x+dx
						if ny >= 0 && ny < height && nx >= 0 && nx < width {
							if accumulator[ny][nx] > accumulator[y][x] {
								isMax = false
							}
						}
					}
				}
				if isMax {
					confidence := float64(accumulator[y][x]) / float64(2*radius)
					bubbles = append(bubbles, Bubble{
						Center:     geometry.Point{X: x, Y: y},
						Radius:     radius,
						Confidence: math.Min(confidence, 1.0),
					})
				}
			}
		}
	}

	sort.Slice(bubbles, func(i, j int) bool {
		return bubbles[i].Confidence > bubbles[j].Confidence
	})
	merged := mergeOverlapping(bubbles)

	return &BubbleCensus{
		Bubbles: merged,
		Count:   len(merged),
	}
}

// mergeOverlapping drops circles whose center lies within the average
// radius of an already-kept circle. Input must be confidence-sorted so
// the stronger detection wins.
func mergeOverlapping(bubbles []Bubble) []Bubble {
	if len(bubbles) == 0 {
		return bubbles
	}

	kept := make([]Bubble, 0, len(bubbles))
	for _, b := range bubbles {
		duplicate := false
		for _, k := range kept {
			dx := float64(b.Center.X - k.Center.X)
			dy := float64(b.Center.Y - k.Center.Y)
			if math.Sqrt(dx*dx+dy*dy) < float64(b.Radius+k.Radius)/2 {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, b)
		}
	}
	return kept
}
