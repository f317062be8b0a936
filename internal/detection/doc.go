// Package detection locates structure in binary edge maps: the closed
// boundary contours of the photographed sheet, the quadrilateral outline
// of its answer region, and the circular bubbles used for diagnostics.
//
// # Contour Extraction
//
// FindContours groups edge pixels into 8-connected components, traces the
// ordered outer boundary of each component, and reports the polygon area
// that boundary encloses. Only outer-level boundaries are returned;
// contours nested inside a larger contour are suppressed, since nested
// structure is recovered by re-running extraction on a rectified
// sub-image.
//
// # Quadrilateral Selection
//
// SelectQuadrilaterals ranks contours by enclosed area and simplifies
// each boundary with Douglas-Peucker at a tolerance proportional to its
// perimeter, keeping only shapes that reduce to exactly four corners. An
// empty result is the recoverable "no page detected" condition, not a
// programming error.
//
// # Bubble Census
//
// CensusBubbles runs a Hough circle transform tuned to the printed bubble
// radius band. It is diagnostic only; answer decoding never depends on
// circle detection.
package detection
