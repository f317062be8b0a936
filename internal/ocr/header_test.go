package ocr

import (
	"image"
	"testing"
)

func TestDefaultHeaderRegion(t *testing.T) {
	bounds := image.Rect(0, 0, 1240, 1754)
	region := DefaultHeaderRegion(bounds)

	if region.Min != bounds.Min {
		t.Errorf("region starts at %v, want %v", region.Min, bounds.Min)
	}
	if region.Dx() != bounds.Dx() {
		t.Errorf("region width %d, want full width %d", region.Dx(), bounds.Dx())
	}
	if got, want := region.Dy(), bounds.Dy()/8; got != want {
		t.Errorf("region height %d, want %d", got, want)
	}
}

func TestDefaultHeaderRegionOffsetBounds(t *testing.T) {
	bounds := image.Rect(100, 200, 500, 1000)
	region := DefaultHeaderRegion(bounds)
	if !region.In(bounds) {
		t.Errorf("region %v escapes bounds %v", region, bounds)
	}
}
