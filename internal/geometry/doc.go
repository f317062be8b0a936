// Package geometry provides the planar primitives the recognition pipeline
// is built on: integer pixel points, closed-polygon math, quadrilateral
// corner ordering, and projective (homography) transforms.
//
// # Coordinate System
//
// All coordinates follow the standard image convention:
//   - Origin (0, 0) at the top-left corner
//   - X increases rightward
//   - Y increases downward
//
// # Quadrilaterals
//
// A Quad always holds exactly four corners in the fixed order top-left,
// top-right, bottom-right, bottom-left. OrderCorners normalizes any
// 4-point polygon into that order, so downstream rectification is
// deterministic regardless of the winding the contour tracer produced.
//
// # Homographies
//
// SolveQuadTransform computes the 3x3 projective transform mapping the
// corners of one Quad onto another by Gaussian elimination on the usual
// 8x8 correspondence system. The transform is a pure value type; applying
// it never mutates shared state.
package geometry
