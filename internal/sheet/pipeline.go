package sheet

import (
	"image"

	"github.com/ironsheep/bubblesheet-mcp/internal/detection"
	"github.com/ironsheep/bubblesheet-mcp/internal/geometry"
	"github.com/ironsheep/bubblesheet-mcp/internal/imaging"
)

// Pipeline stage names, as reported to the Observer.
const (
	StageEdges          = "edges"
	StageRectified      = "rectified"
	StageRectifiedInner = "rectified-inner"
	StageBinary         = "binary"
)

// Observer receives intermediate pipeline artifacts for debugging or
// rendering. Implementations must not mutate the images they are handed
// and must tolerate concurrent calls when two pages run in parallel.
// A nil Observer disables observation.
type Observer interface {
	Stage(page int, name string, img image.Image)
}

// PageResult is the immutable outcome of one page pass. On success Err is
// nil and Answers holds one entry per question; on a page fault only Err
// (and whatever diagnostics were measured before the fault) is set.
type PageResult struct {
	// Page is the 1-based page number within the submission.
	Page int

	// Type is the classified layout variant.
	Type PageType

	// Answers holds the decoded answers, index 0 = the page's first
	// question. Nil when Err is non-nil.
	Answers []Answer

	// Rect is the bounding rectangle of the biggest detected contour,
	// the classifier's input.
	Rect image.Rectangle

	// Quad is the selected answer-region quadrilateral in canvas
	// coordinates.
	Quad geometry.Quad

	// Rectified is the perspective-corrected color canvas (after the
	// second pass, for NestedA4 pages).
	Rectified *image.NRGBA

	// Binary is the adaptively thresholded canvas the grid was scored
	// on.
	Binary *image.Gray

	// Err is the page fault, if any: ErrNoContours or
	// ErrRectangleTooSmall.
	Err error
}

// ProcessPage runs the full recognition pipeline on one photographed
// page: normalize and edge-detect, extract contours, select the answer
// region quadrilateral, classify the layout, rectify (twice for nested
// layouts), binarize, and score the answer grid.
//
// Page faults are reported in the result's Err field, never panicked or
// escalated; the caller decides whether other pages continue.
func ProcessPage(page int, src image.Image, obs Observer) *PageResult {
	result := &PageResult{Page: page}

	canvas, edges := imaging.Preprocess(src)
	observe(obs, page, StageEdges, edges)

	contours := detection.FindContours(edges)
	biggest, ok := detection.BiggestContour(contours)
	if !ok {
		result.Err = ErrNoContours
		return result
	}
	result.Rect = biggest.BoundingRect()

	quads := detection.SelectQuadrilaterals(contours, 2)
	if len(quads) == 0 {
		result.Err = ErrNoContours
		return result
	}
	result.Quad = quads[0]

	pageType, err := Classify(result.Rect.Dy(), result.Rect.Dx())
	if err != nil {
		result.Err = err
		return result
	}
	result.Type = pageType

	rectified, err := imaging.Rectify(canvas, result.Quad, imaging.CanvasWidth, imaging.CanvasHeight)
	if err != nil {
		result.Err = err
		return result
	}
	observe(obs, page, StageRectified, rectified)

	if pageType.NeedsSecondPass() {
		if inner, ok := rectifyNested(rectified); ok {
			rectified = inner
			observe(obs, page, StageRectifiedInner, rectified)
		}
	}
	result.Rectified = rectified

	result.Binary = imaging.Binarize(rectified)
	observe(obs, page, StageBinary, result.Binary)

	result.Answers = ScoreGrid(result.Binary, pageType.Questions(), pageType.Blocks())
	return result
}

// rectifyNested re-runs detection on an already-rectified canvas and
// rectifies the biggest nested quadrilateral out of it. When the nested
// box cannot be found the outer canvas is used unchanged; degradation,
// not failure.
func rectifyNested(canvas *image.NRGBA) (*image.NRGBA, bool) {
	_, edges := imaging.Preprocess(canvas)
	contours := detection.FindContours(edges)
	quads := detection.SelectQuadrilaterals(contours, 1)
	if len(quads) == 0 {
		return nil, false
	}
	inner, err := imaging.Rectify(canvas, quads[0], imaging.CanvasWidth, imaging.CanvasHeight)
	if err != nil {
		return nil, false
	}
	return inner, true
}

func observe(obs Observer, page int, name string, img image.Image) {
	if obs != nil {
		obs.Stage(page, name, img)
	}
}
