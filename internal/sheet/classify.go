package sheet

import "fmt"

// PageType identifies which physical answer-sheet layout was photographed.
type PageType int

const (
	// NarrowTall is the 41-question strip layout: much taller than
	// wide, two question blocks side by side.
	NarrowTall PageType = iota

	// NestedA4 is the 22-question layout where the answer box sits
	// inside a full A4 page, so the box must be rectified out of the
	// already-rectified page in a second pass.
	NestedA4

	// AnswerBoxOnly is the 22-question layout photographed close
	// enough that the answer box is the page.
	AnswerBoxOnly
)

func (t PageType) String() string {
	switch t {
	case NarrowTall:
		return "narrow-tall"
	case NestedA4:
		return "nested-a4"
	case AnswerBoxOnly:
		return "answer-box-only"
	default:
		return fmt.Sprintf("PageType(%d)", int(t))
	}
}

// Questions returns the number of questions printed on the layout.
func (t PageType) Questions() int {
	if t == NarrowTall {
		return 41
	}
	return 22
}

// Blocks returns the number of side-by-side question-block columns.
func (t PageType) Blocks() int {
	if t == NarrowTall {
		return 2
	}
	return 1
}

// NeedsSecondPass reports whether the layout requires rectifying a
// nested answer box out of the first-pass canvas.
func (t PageType) NeedsSecondPass() bool {
	return t == NestedA4
}

// Classification thresholds, in pixels of the fixed working canvas.
// Domain constants, not tunables.
const (
	narrowTallMinHeight = 800
	nestedA4MinHeight   = 1000
	minRectHeight       = 200
)

// Classify decides the layout variant from the bounding rectangle of the
// biggest first-pass contour. Pure function of (height, width); exactly
// one branch fires.
//
// A rectangle under the minimum height is the per-page geometry fault
// ErrRectangleTooSmall: the photograph contains nothing decodable.
func Classify(height, width int) (PageType, error) {
	halfHeight := 0.5 * float64(height)
	switch {
	case height > narrowTallMinHeight && float64(width) < halfHeight:
		return NarrowTall, nil
	case height > nestedA4MinHeight && float64(width) >= halfHeight:
		return NestedA4, nil
	case height < minRectHeight:
		return 0, fmt.Errorf("%w: height %d is under the %d px minimum", ErrRectangleTooSmall, height, minRectHeight)
	default:
		return AnswerBoxOnly, nil
	}
}
