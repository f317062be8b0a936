// Package render produces visual diagnostics for scored sheets: answer
// overlays drawn on the rectified canvas, and pipeline-stage artifact
// capture for inspection tools and on-disk debugging.
package render
