package render

import (
	"fmt"
	"image"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"
	"go.uber.org/multierr"
)

// ArtifactWriter is a pipeline observer that saves every intermediate
// stage image as a PNG under a directory, one file per page and stage.
// Safe for concurrent use; write failures are collected rather than
// interrupting the pipeline.
type ArtifactWriter struct {
	dir string

	mu   sync.Mutex
	errs error
}

// NewArtifactWriter creates a writer that saves into dir. The directory
// must already exist.
func NewArtifactWriter(dir string) *ArtifactWriter {
	return &ArtifactWriter{dir: dir}
}

// Stage saves one intermediate image as <dir>/page-<n>-<stage>.png.
func (w *ArtifactWriter) Stage(page int, name string, img image.Image) {
	path := filepath.Join(w.dir, fmt.Sprintf("page-%d-%s.png", page, name))
	err := imaging.Save(img, path)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.errs = multierr.Append(w.errs, fmt.Errorf("save %s: %w", path, err))
	}
}

// Err returns the accumulated write failures, nil when every stage
// saved cleanly.
func (w *ArtifactWriter) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.errs
}

// Capture is a pipeline observer that retains stage images in memory,
// keyed by page and stage name. Safe for concurrent use.
type Capture struct {
	mu     sync.Mutex
	stages map[string]image.Image
}

// NewCapture creates an empty capture observer.
func NewCapture() *Capture {
	return &Capture{stages: make(map[string]image.Image)}
}

// Stage retains one intermediate image.
func (c *Capture) Stage(page int, name string, img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stages[captureKey(page, name)] = img
}

// Get returns the retained image for a page and stage.
func (c *Capture) Get(page int, name string) (image.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	img, ok := c.stages[captureKey(page, name)]
	return img, ok
}

func captureKey(page int, name string) string {
	return fmt.Sprintf("%d/%s", page, name)
}
