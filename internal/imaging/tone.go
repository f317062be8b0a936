package imaging

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/histogram"
	"github.com/disintegration/imaging"
)

// ToneStats summarizes the brightness distribution of a canvas. Used by
// page inspection to flag under/over-exposed photographs before decoding
// quality is blamed on the sheet.
type ToneStats struct {
	// MeanIntensity is the average grayscale level (0-255).
	MeanIntensity float64 `json:"mean_intensity"`

	// OtsuLevel is the global threshold separating the ink and paper
	// intensity classes.
	OtsuLevel int `json:"otsu_level"`

	// DarkFraction is the share of pixels at or below the Otsu level.
	DarkFraction float64 `json:"dark_fraction"`
}

// MeasureTone computes brightness statistics over the whole canvas.
func MeasureTone(img image.Image) ToneStats {
	gray := imaging.Grayscale(img)
	bins := histogram.NewRGBAHistogram(gray).R.Bins

	var total, weighted int
	for level, n := range bins {
		total += n
		weighted += level * n
	}
	if total == 0 {
		return ToneStats{}
	}

	level := otsuLevel(bins, total)

	dark := 0
	for l := 0; l <= level; l++ {
		dark += bins[l]
	}

	return ToneStats{
		MeanIntensity: math.Round(float64(weighted)/float64(total)*100) / 100,
		OtsuLevel:     level,
		DarkFraction:  math.Round(float64(dark)/float64(total)*1000) / 1000,
	}
}

// otsuLevel picks the threshold maximizing between-class variance. A
// strongly bimodal histogram leaves the variance flat across the whole
// gap between the modes, so the midpoint of the maximal plateau is
// returned rather than its first level.
func otsuLevel(bins []int, total int) int {
	var sum float64
	for level, n := range bins {
		sum += float64(level * n)
	}

	var sumBg, weightBg float64
	var best float64
	lo, hi := 0, 0
	for t := 0; t < len(bins); t++ {
		weightBg += float64(bins[t])
		if weightBg == 0 {
			continue
		}
		weightFg := float64(total) - weightBg
		if weightFg == 0 {
			break
		}
		sumBg += float64(t * bins[t])

		meanBg := sumBg / weightBg
		meanFg := (sum - sumBg) / weightFg
		between := weightBg * weightFg * (meanBg - meanFg) * (meanBg - meanFg)
		switch {
		case between > best:
			best = between
			lo, hi = t, t
		case between == best:
			hi = t
		}
	}
	return (lo + hi) / 2
}
