package sheet

import "errors"

// Sentinel faults, checked with errors.Is.
var (
	// ErrNoPages aborts a submission that carries no page images.
	ErrNoPages = errors.New("no pages supplied")

	// ErrNoContours is the per-page detection fault: nothing in the
	// photograph simplifies to a page-like quadrilateral.
	ErrNoContours = errors.New("no contours were detected")

	// ErrRectangleTooSmall is the per-page geometry fault: the biggest
	// detected rectangle is under the 200 px minimum height.
	ErrRectangleTooSmall = errors.New("detected rectangle is too small")
)
