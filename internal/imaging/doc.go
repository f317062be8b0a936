// Package imaging implements the raster stages of the bubble-sheet
// recognition pipeline: canvas normalization, edge mapping, perspective
// rectification, adaptive binarization, and the supporting load/cache and
// crop plumbing used by the serving layer.
//
// # Working Canvas
//
// Every pipeline stage operates on a fixed 1240x1754 canvas. Preprocess
// resamples arbitrary source photographs onto that canvas so the
// downstream layout constants (classification thresholds, grid geometry)
// are meaningful regardless of the camera resolution.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left
// corner, X increasing rightward and Y increasing downward. Regions use
// inclusive top-left and exclusive bottom-right corners.
//
// # Purity
//
// The pipeline stages (Preprocess, Rectify, Binarize) are pure functions:
// each consumes its inputs without mutating them and allocates a fresh
// output buffer, so two pages can run through the pipeline on separate
// goroutines with no synchronization. Only PageCache carries state and it
// is safe for concurrent use.
package imaging
