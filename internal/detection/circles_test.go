package detection

import (
	"testing"

	"github.com/ironsheep/bubblesheet-mcp/internal/geometry"
)

func TestCensusBubbles_SingleCircle(t *testing.T) {
	edges := edgeMap(80, 80)
	drawCircleRing(edges, 40, 40, 12)

	census := CensusBubbles(edges, 10, 14)

	if census.Count == 0 {
		t.Fatal("expected at least one bubble")
	}
	b := census.Bubbles[0]
	if b.Center.X < 35 || b.Center.X > 45 || b.Center.Y < 35 || b.Center.Y > 45 {
		t.Errorf("center: got %v, want near (40,40)", b.Center)
	}
	if b.Radius < 10 || b.Radius > 14 {
		t.Errorf("radius: got %d, want in [10,14]", b.Radius)
	}
}

func TestCensusBubbles_OutsideBand(t *testing.T) {
	edges := edgeMap(120, 120)
	drawCircleRing(edges, 60, 60, 30)

	census := CensusBubbles(edges, 8, 16)
	if census.Count != 0 {
		t.Errorf("got %d bubbles, want 0 for radius outside band", census.Count)
	}
}

func TestCensusBubbles_Empty(t *testing.T) {
	census := CensusBubbles(edgeMap(60, 60), 8, 16)
	if census.Count != 0 {
		t.Errorf("got %d bubbles in empty edge map, want 0", census.Count)
	}
}

func TestMergeOverlapping(t *testing.T) {
	bubbles := []Bubble{
		{Center: geometry.Point{X: 50, Y: 50}, Radius: 12, Confidence: 0.9},
		{Center: geometry.Point{X: 52, Y: 51}, Radius: 12, Confidence: 0.8},
		{Center: geometry.Point{X: 100, Y: 100}, Radius: 10, Confidence: 0.7},
	}

	merged := mergeOverlapping(bubbles)

	if len(merged) != 2 {
		t.Fatalf("got %d bubbles after merging, want 2", len(merged))
	}
	if merged[0].Confidence != 0.9 {
		t.Errorf("stronger detection should survive, got confidence %v", merged[0].Confidence)
	}
}

func TestMergeOverlapping_Empty(t *testing.T) {
	if got := mergeOverlapping(nil); len(got) != 0 {
		t.Errorf("got %d bubbles, want 0", len(got))
	}
}
