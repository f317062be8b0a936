package render

import (
	"image"
	"testing"

	"github.com/ironsheep/bubblesheet-mcp/internal/imaging"
	"github.com/ironsheep/bubblesheet-mcp/internal/sheet"
)

func scoredPage(t *testing.T) *sheet.PageResult {
	t.Helper()
	rectified := image.NewNRGBA(image.Rect(0, 0, imaging.CanvasWidth, imaging.CanvasHeight))
	for i := range rectified.Pix {
		rectified.Pix[i] = 255
	}
	answers := make([]sheet.Answer, 22)
	for i := range answers {
		answers[i] = sheet.NoAnswer
	}
	answers[0] = sheet.Answer(2)
	return &sheet.PageResult{
		Page:      1,
		Type:      sheet.AnswerBoxOnly,
		Answers:   answers,
		Rectified: rectified,
	}
}

func TestOverlayDimensions(t *testing.T) {
	result := scoredPage(t)
	overlay, err := Overlay(result, "")
	if err != nil {
		t.Fatalf("Overlay error: %v", err)
	}
	if overlay.Bounds() != result.Rectified.Bounds() {
		t.Errorf("overlay bounds %v, want %v", overlay.Bounds(), result.Rectified.Bounds())
	}
}

func TestOverlayMarksSelectedCell(t *testing.T) {
	result := scoredPage(t)
	overlay, err := Overlay(result, "")
	if err != nil {
		t.Fatalf("Overlay error: %v", err)
	}

	// The frame around question 1's pick (option C) must differ from
	// the white canvas.
	cell, err := sheet.CellRect(overlay.Bounds(), 22, 1, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	edge := overlay.RGBAAt(cell.Min.X+2, cell.Min.Y+cell.Dy()/2)
	if edge.R == 255 && edge.G == 255 && edge.B == 255 {
		t.Error("selected cell frame was not drawn")
	}
}

func TestOverlayRefusesFaultedPage(t *testing.T) {
	faulted := &sheet.PageResult{Page: 1, Err: sheet.ErrNoContours}
	if _, err := Overlay(faulted, ""); err == nil {
		t.Fatal("Overlay accepted a faulted page, want error")
	}
}

func TestOverlayGridColor(t *testing.T) {
	result := scoredPage(t)
	overlay, err := Overlay(result, "#0000ff")
	if err != nil {
		t.Fatalf("Overlay error: %v", err)
	}

	// Grid lines run along every cell boundary; the canvas top-left
	// corner sits on one.
	corner := overlay.RGBAAt(0, 0)
	if corner.B != 255 || corner.R != 0 {
		t.Errorf("grid corner = %+v, want blue", corner)
	}
}

func TestCaptureObserver(t *testing.T) {
	capture := NewCapture()
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	capture.Stage(2, sheet.StageBinary, img)

	got, ok := capture.Get(2, sheet.StageBinary)
	if !ok {
		t.Fatal("captured stage not found")
	}
	if got != img {
		t.Error("captured image is not the one handed to Stage")
	}
	if _, ok := capture.Get(1, sheet.StageBinary); ok {
		t.Error("Get returned a stage for the wrong page")
	}
}
