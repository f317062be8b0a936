package imaging

import (
	"image/color"
	"testing"

	"github.com/ironsheep/bubblesheet-mcp/internal/geometry"
)

func TestRectify_OutputDimensions(t *testing.T) {
	src := fillImage(300, 200, color.White)
	quad := geometry.Quad{{X: 20, Y: 10}, {X: 280, Y: 30}, {X: 270, Y: 180}, {X: 30, Y: 170}}

	sizes := []struct{ w, h int }{
		{CanvasWidth, CanvasHeight},
		{100, 100},
		{640, 480},
	}
	for _, s := range sizes {
		out, err := Rectify(src, quad, s.w, s.h)
		if err != nil {
			t.Fatalf("Rectify failed: %v", err)
		}
		if out.Bounds().Dx() != s.w || out.Bounds().Dy() != s.h {
			t.Errorf("output: got %dx%d, want %dx%d", out.Bounds().Dx(), out.Bounds().Dy(), s.w, s.h)
		}
	}
}

func TestRectify_AxisAlignedRegion(t *testing.T) {
	// Left half red, right half blue; rectifying the full frame should
	// keep each color on its side.
	src := fillImage(100, 100, color.NRGBA{255, 0, 0, 255})
	for y := 0; y < 100; y++ {
		for x := 50; x < 100; x++ {
			src.Set(x, y, color.NRGBA{0, 0, 255, 255})
		}
	}

	quad := geometry.Quad{{X: 0, Y: 0}, {X: 99, Y: 0}, {X: 99, Y: 99}, {X: 0, Y: 99}}
	out, err := Rectify(src, quad, 100, 100)
	if err != nil {
		t.Fatalf("Rectify failed: %v", err)
	}

	if r := out.Pix[50*out.Stride+10*4]; r < 200 {
		t.Errorf("left side red channel: got %d, want >= 200", r)
	}
	if b := out.Pix[50*out.Stride+90*4+2]; b < 200 {
		t.Errorf("right side blue channel: got %d, want >= 200", b)
	}
}

func TestRectify_Deterministic(t *testing.T) {
	src := fillImage(120, 80, color.White)
	drawBox(src, 10, 10, 110, 70, 2, color.Black)
	quad := geometry.Quad{{X: 10, Y: 10}, {X: 110, Y: 10}, {X: 110, Y: 70}, {X: 10, Y: 70}}

	a, err := Rectify(src, quad, 64, 48)
	if err != nil {
		t.Fatalf("Rectify failed: %v", err)
	}
	b, err := Rectify(src, quad, 64, 48)
	if err != nil {
		t.Fatalf("Rectify failed: %v", err)
	}

	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("outputs differ at offset %d", i)
		}
	}
}

func TestRectify_DegenerateQuad(t *testing.T) {
	src := fillImage(100, 100, color.White)
	quad := geometry.Quad{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 99, Y: 0}, {X: 0, Y: 99}}

	if _, err := Rectify(src, quad, 100, 100); err == nil {
		t.Error("expected error for collinear corners")
	}
}
