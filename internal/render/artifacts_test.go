package render

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/bubblesheet-mcp/internal/sheet"
)

func TestArtifactWriterSavesStages(t *testing.T) {
	dir := t.TempDir()
	w := NewArtifactWriter(dir)

	img := image.NewGray(image.Rect(0, 0, 16, 16))
	w.Stage(1, sheet.StageEdges, img)
	w.Stage(2, sheet.StageBinary, img)

	if err := w.Err(); err != nil {
		t.Fatalf("writer accumulated errors: %v", err)
	}
	for _, name := range []string{"page-1-edges.png", "page-2-binary.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("artifact %s not written: %v", name, err)
		}
	}
}

func TestArtifactWriterCollectsFailures(t *testing.T) {
	w := NewArtifactWriter(filepath.Join(t.TempDir(), "missing"))
	w.Stage(1, sheet.StageEdges, image.NewGray(image.Rect(0, 0, 4, 4)))
	if w.Err() == nil {
		t.Fatal("expected an error saving into a missing directory")
	}
}
