// Package sheet decodes photographed bubble-sheet answer forms.
//
// The package owns the domain layer of the pipeline: classifying which of
// the three physical layout variants was photographed, partitioning the
// binarized canvas into the per-question answer grid, voting each
// question's selected option by fill density, and combining one or two
// page passes into a single answer map.
//
// # Layout Variants
//
// Three printed layouts are recognized, told apart purely by the
// detected answer region's bounding rectangle on the working canvas:
//
//   - NarrowTall: 41 questions in two side-by-side question blocks
//   - NestedA4: 22 questions, the answer box nested inside a full A4
//     page, requiring a second rectification pass
//   - AnswerBoxOnly: 22 questions, the answer box fills the photograph
//
// # Error Taxonomy
//
// An absent page list is a request-level fault (ErrNoPages) and aborts
// the whole submission. Detection faults (ErrNoContours) and geometry
// faults (ErrRectangleTooSmall) are local to one page: that page
// contributes no answers and the other page still decodes. An unmarked or
// doubly-marked question is not an error at all; it is recorded in the
// answer map as NoAnswer or Ambiguous.
//
// # Concurrency
//
// Page passes share no mutable state, so the combiner runs them on
// separate goroutines and merges the immutable per-page results
// afterwards under a first-writer-wins rule.
package sheet
