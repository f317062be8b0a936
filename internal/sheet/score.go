package sheet

import (
	"fmt"
	"image"
)

// OptionsPerQuestion is the number of printed option bubbles per question
// (A through D) on every layout variant.
const OptionsPerQuestion = 4

// Mark-voting policy constants, pinned from representative scanned
// sheets. A cell under the minimum density is unmarked; a runner-up
// within the margin of the winner makes the question ambiguous.
const (
	minMarkDensity  = 0.20
	ambiguityMargin = 0.08
)

// cellInsetFraction trims each side of a cell before density is
// measured, so the printed box outline and grid rules that land on cell
// boundaries after rectification never count as marks.
const cellInsetFraction = 0.2

// ScoreGrid partitions a binarized canvas into the answer grid and votes
// each question's selection by fill density.
//
// The canvas is divided into questions/blocks rows per block, blocks
// question-block columns, and OptionsPerQuestion option columns per
// block. Questions are numbered block-major: the left block carries
// questions 1..rows, the next block continues from there. The returned
// slice holds one Answer per question, index 0 being question 1.
//
// Scoring is idempotent: the same canvas always yields the same answers.
func ScoreGrid(binary *image.Gray, questions, blocks int) []Answer {
	answers := make([]Answer, questions)

	for q := 0; q < questions; q++ {
		var density [OptionsPerQuestion]float64
		for opt := 0; opt < OptionsPerQuestion; opt++ {
			cell, err := CellRect(binary.Bounds(), questions, blocks, q+1, opt)
			if err != nil {
				// Unreachable for in-range q/opt.
				continue
			}
			density[opt] = fillDensity(binary, sampleRegion(cell))
		}

		best := 0
		for opt := 1; opt < OptionsPerQuestion; opt++ {
			if density[opt] > density[best] {
				best = opt
			}
		}

		switch {
		case density[best] < minMarkDensity:
			answers[q] = NoAnswer
		case hasRunnerUp(density[:], best):
			answers[q] = Ambiguous
		default:
			answers[q] = Answer(best)
		}
	}

	return answers
}

// hasRunnerUp reports whether another option's density is within the
// ambiguity margin of the winner.
func hasRunnerUp(density []float64, best int) bool {
	for opt, d := range density {
		if opt == best {
			continue
		}
		if d >= density[best]-ambiguityMargin {
			return true
		}
	}
	return false
}

// CellRect returns the pixel region of one (question, option) grid cell
// on a canvas with the given bounds. question is 1-based, option 0-based.
func CellRect(bounds image.Rectangle, questions, blocks, question, option int) (image.Rectangle, error) {
	if question < 1 || question > questions {
		return image.Rectangle{}, fmt.Errorf("question %d out of range 1..%d", question, questions)
	}
	if option < 0 || option >= OptionsPerQuestion {
		return image.Rectangle{}, fmt.Errorf("option %d out of range 0..%d", option, OptionsPerQuestion-1)
	}

	rows := (questions + blocks - 1) / blocks
	block := (question - 1) / rows
	row := (question - 1) % rows

	width := bounds.Dx()
	height := bounds.Dy()
	cols := blocks * OptionsPerQuestion
	col := block*OptionsPerQuestion + option

	x1 := bounds.Min.X + col*width/cols
	x2 := bounds.Min.X + (col+1)*width/cols
	y1 := bounds.Min.Y + row*height/rows
	y2 := bounds.Min.Y + (row+1)*height/rows
	return image.Rect(x1, y1, x2, y2), nil
}

// sampleRegion returns the central part of a cell that density voting
// actually inspects.
func sampleRegion(cell image.Rectangle) image.Rectangle {
	return cell.Inset(int(float64(min(cell.Dx(), cell.Dy())) * cellInsetFraction))
}

// fillDensity returns the fraction of foreground pixels inside a cell.
func fillDensity(binary *image.Gray, cell image.Rectangle) float64 {
	cell = cell.Intersect(binary.Bounds())
	if cell.Empty() {
		return 0
	}

	count := 0
	for y := cell.Min.Y; y < cell.Max.Y; y++ {
		for x := cell.Min.X; x < cell.Max.X; x++ {
			if binary.Pix[(y-binary.Rect.Min.Y)*binary.Stride+(x-binary.Rect.Min.X)] != 0 {
				count++
			}
		}
	}
	return float64(count) / float64(cell.Dx()*cell.Dy())
}
