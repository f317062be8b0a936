package geometry

import "math"

// QuadMetrics describes the shape quality of a detected quadrilateral.
//
// Side lengths run top, right, bottom, left. AngleDeviation is the largest
// absolute difference between a corner angle and 90 degrees; a perfectly
// rectified region scores 0 and heavily skewed photographs score high.
type QuadMetrics struct {
	Sides          [4]float64 `json:"sides"`
	MeanSide       float64    `json:"mean_side"`
	AngleDeviation float64    `json:"angle_deviation_degrees"`
	AspectRatio    float64    `json:"aspect_ratio"`
}

// MeasureQuad computes side lengths and skew of a quadrilateral.
func MeasureQuad(q Quad) QuadMetrics {
	var m QuadMetrics
	var sum float64
	for i := 0; i < 4; i++ {
		a, b := q[i], q[(i+1)%4]
		dx := float64(b.X - a.X)
		dy := float64(b.Y - a.Y)
		m.Sides[i] = round2(math.Sqrt(dx*dx + dy*dy))
		sum += m.Sides[i]
	}
	m.MeanSide = round2(sum / 4)

	for i := 0; i < 4; i++ {
		prev := q[(i+3)%4]
		cur := q[i]
		next := q[(i+1)%4]
		dev := math.Abs(cornerAngle(prev, cur, next) - 90)
		if dev > m.AngleDeviation {
			m.AngleDeviation = dev
		}
	}
	m.AngleDeviation = round2(m.AngleDeviation)

	width := (m.Sides[0] + m.Sides[2]) / 2
	height := (m.Sides[1] + m.Sides[3]) / 2
	if height > 0 {
		m.AspectRatio = round2(width / height)
	}
	return m
}

// cornerAngle returns the interior angle at cur, in degrees.
func cornerAngle(prev, cur, next Point) float64 {
	ax := float64(prev.X - cur.X)
	ay := float64(prev.Y - cur.Y)
	bx := float64(next.X - cur.X)
	by := float64(next.Y - cur.Y)

	la := math.Sqrt(ax*ax + ay*ay)
	lb := math.Sqrt(bx*bx + by*by)
	if la == 0 || lb == 0 {
		return 0
	}
	cos := (ax*bx + ay*by) / (la * lb)
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
