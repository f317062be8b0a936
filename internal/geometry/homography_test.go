package geometry

import (
	"math"
	"testing"
)

func TestSolveQuadTransform_Identity(t *testing.T) {
	q := Quad{{0, 0}, {100, 0}, {100, 50}, {0, 50}}

	h, err := SolveQuadTransform(q, q)
	if err != nil {
		t.Fatalf("SolveQuadTransform failed: %v", err)
	}

	for _, p := range []Point{{0, 0}, {100, 0}, {50, 25}, {13, 42}} {
		x, y := h.Apply(float64(p.X), float64(p.Y))
		if math.Abs(x-float64(p.X)) > 1e-6 || math.Abs(y-float64(p.Y)) > 1e-6 {
			t.Errorf("identity transform moved (%d,%d) to (%v,%v)", p.X, p.Y, x, y)
		}
	}
}

func TestSolveQuadTransform_CornersMapExactly(t *testing.T) {
	src := Quad{{0, 0}, {1239, 0}, {1239, 1753}, {0, 1753}}
	dst := Quad{{220, 180}, {1050, 210}, {1010, 1600}, {190, 1560}}

	h, err := SolveQuadTransform(src, dst)
	if err != nil {
		t.Fatalf("SolveQuadTransform failed: %v", err)
	}

	for i := 0; i < 4; i++ {
		x, y := h.Apply(float64(src[i].X), float64(src[i].Y))
		if math.Abs(x-float64(dst[i].X)) > 1e-4 || math.Abs(y-float64(dst[i].Y)) > 1e-4 {
			t.Errorf("corner %d: got (%v,%v), want (%d,%d)", i, x, y, dst[i].X, dst[i].Y)
		}
	}
}

func TestSolveQuadTransform_Scaling(t *testing.T) {
	src := Quad{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	dst := Quad{{0, 0}, {20, 0}, {20, 20}, {0, 20}}

	h, err := SolveQuadTransform(src, dst)
	if err != nil {
		t.Fatalf("SolveQuadTransform failed: %v", err)
	}

	x, y := h.Apply(5, 5)
	if math.Abs(x-10) > 1e-6 || math.Abs(y-10) > 1e-6 {
		t.Errorf("midpoint: got (%v,%v), want (10,10)", x, y)
	}
}

func TestSolveQuadTransform_Degenerate(t *testing.T) {
	// Three collinear corners collapse the system.
	src := Quad{{0, 0}, {10, 0}, {20, 0}, {0, 10}}
	dst := Quad{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

	if _, err := SolveQuadTransform(src, dst); err == nil {
		t.Error("expected error for collinear corners")
	}
}

func TestSolveQuadTransform_DegenerateDestination(t *testing.T) {
	// A collapsed destination quad still yields a solvable system, so it
	// has to be rejected before elimination.
	src := Quad{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	dst := Quad{{0, 0}, {10, 0}, {20, 0}, {0, 10}}

	if _, err := SolveQuadTransform(src, dst); err == nil {
		t.Error("expected error for collinear destination corners")
	}
}

func TestMeasureQuad_Square(t *testing.T) {
	m := MeasureQuad(Quad{{0, 0}, {100, 0}, {100, 100}, {0, 100}})

	for i, s := range m.Sides {
		if s != 100 {
			t.Errorf("side %d: got %v, want 100", i, s)
		}
	}
	if m.AngleDeviation != 0 {
		t.Errorf("AngleDeviation: got %v, want 0", m.AngleDeviation)
	}
	if m.AspectRatio != 1 {
		t.Errorf("AspectRatio: got %v, want 1", m.AspectRatio)
	}
}

func TestMeasureQuad_Skewed(t *testing.T) {
	m := MeasureQuad(Quad{{0, 0}, {100, 20}, {110, 110}, {-10, 90}})

	if m.AngleDeviation <= 0 {
		t.Errorf("skewed quad should report angle deviation, got %v", m.AngleDeviation)
	}
}
