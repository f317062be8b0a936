package server

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/bubblesheet-mcp/internal/imaging"
)

// writeBoxPage writes a white page with a thick black rectangle outline,
// the simplest photograph the pipeline decodes, and returns its path.
func writeBoxPage(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 1240, 1754))
	for y := 0; y < 1754; y++ {
		for x := 0; x < 1240; x++ {
			img.Set(x, y, color.White)
		}
	}
	black := color.RGBA{A: 255}
	for thick := 0; thick < 5; thick++ {
		for x := 300; x <= 900; x++ {
			img.Set(x, 500+thick, black)
			img.Set(x, 1100-thick, black)
		}
		for y := 500; y <= 1100; y++ {
			img.Set(300+thick, y, black)
			img.Set(900-thick, y, black)
		}
	}

	path := filepath.Join(t.TempDir(), "page.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create page file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode page: %v", err)
	}
	return path
}

func TestHandleToolsCall_PageLoad(t *testing.T) {
	s := New()
	path := writeBoxPage(t)

	params := map[string]interface{}{
		"name": "page_load",
		"arguments": map[string]interface{}{
			"path": path,
		},
	}
	paramsJSON, _ := json.Marshal(params)

	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/call", Params: paramsJSON})
	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}
}

func TestExecuteTool_SheetScore(t *testing.T) {
	s := New()
	path := writeBoxPage(t)

	args, _ := json.Marshal(map[string]interface{}{"paths": []string{path}})
	result, err := s.executeTool("sheet_score", args)
	if err != nil {
		t.Fatalf("sheet_score failed: %v", err)
	}

	score, ok := result.(*SheetScoreResult)
	if !ok {
		t.Fatalf("result is %T, want *SheetScoreResult", result)
	}
	if score.Answers.Len() != 22 {
		t.Errorf("scored %d questions, want 22", score.Answers.Len())
	}
	if len(score.Pages) != 1 || score.Pages[0].Layout != "answer-box-only" {
		t.Errorf("page summary = %+v, want answer-box-only", score.Pages)
	}
	if score.Faults != "" {
		t.Errorf("unexpected faults: %s", score.Faults)
	}
}

func TestExecuteTool_SheetScoreMissingFile(t *testing.T) {
	s := New()
	args, _ := json.Marshal(map[string]interface{}{"paths": []string{"/nonexistent/page.png"}})
	if _, err := s.executeTool("sheet_score", args); err == nil {
		t.Fatal("expected an error for a missing page file")
	}
}

func TestExecuteTool_PageInspect(t *testing.T) {
	s := New()
	path := writeBoxPage(t)

	args, _ := json.Marshal(map[string]interface{}{"path": path})
	result, err := s.executeTool("page_inspect", args)
	if err != nil {
		t.Fatalf("page_inspect failed: %v", err)
	}

	inspect, ok := result.(*PageInspectResult)
	if !ok {
		t.Fatalf("result is %T, want *PageInspectResult", result)
	}
	if inspect.Layout != "answer-box-only" {
		t.Errorf("layout = %s, want answer-box-only", inspect.Layout)
	}
	if inspect.Questions != 22 || inspect.Blocks != 1 {
		t.Errorf("questions/blocks = %d/%d, want 22/1", inspect.Questions, inspect.Blocks)
	}
	if inspect.Region.X2 <= inspect.Region.X1 || inspect.Region.Y2 <= inspect.Region.Y1 {
		t.Errorf("degenerate region: %+v", inspect.Region)
	}
	// An axis-aligned box should rectify with near-right corners.
	if inspect.QuadMetrics.AngleDeviation > 10 {
		t.Errorf("angle deviation %.1f degrees for an axis-aligned box", inspect.QuadMetrics.AngleDeviation)
	}
	if inspect.Bubbles == nil {
		t.Error("bubble census missing")
	}
}

func TestExecuteTool_PageRenderOverlay(t *testing.T) {
	s := New()
	path := writeBoxPage(t)

	args, _ := json.Marshal(map[string]interface{}{"path": path})
	result, err := s.executeTool("page_render", args)
	if err != nil {
		t.Fatalf("page_render failed: %v", err)
	}

	rendered, ok := result.(*RenderResult)
	if !ok {
		t.Fatalf("result is %T, want *RenderResult", result)
	}
	if rendered.Stage != "overlay" {
		t.Errorf("stage = %s, want overlay", rendered.Stage)
	}
	if rendered.MimeType != "image/png" {
		t.Errorf("mime type = %s, want image/png", rendered.MimeType)
	}
	if rendered.ImageBase64 == "" {
		t.Error("empty rendered image")
	}
}

func TestExecuteTool_PageRenderStage(t *testing.T) {
	s := New()
	path := writeBoxPage(t)

	args, _ := json.Marshal(map[string]interface{}{"path": path, "stage": "binary"})
	result, err := s.executeTool("page_render", args)
	if err != nil {
		t.Fatalf("page_render binary stage failed: %v", err)
	}
	if rendered := result.(*RenderResult); rendered.Stage != "binary" {
		t.Errorf("stage = %s, want binary", rendered.Stage)
	}

	args, _ = json.Marshal(map[string]interface{}{"path": path, "stage": "rectified-inner"})
	if _, err := s.executeTool("page_render", args); err == nil {
		t.Error("expected an error for a stage this layout never produces")
	}
}

func TestExecuteTool_CellCrop(t *testing.T) {
	s := New()
	path := writeBoxPage(t)

	args, _ := json.Marshal(map[string]interface{}{
		"path": path, "question": 1, "option": 0, "scale": 2.0,
	})
	result, err := s.executeTool("cell_crop", args)
	if err != nil {
		t.Fatalf("cell_crop failed: %v", err)
	}
	crop, ok := result.(*imaging.CropResult)
	if !ok {
		t.Fatalf("result is %T, want *imaging.CropResult", result)
	}
	if crop.Width == 0 || crop.Height == 0 || crop.ImageBase64 == "" {
		t.Errorf("degenerate crop: %dx%d", crop.Width, crop.Height)
	}

	args, _ = json.Marshal(map[string]interface{}{"path": path, "question": 99, "option": 0})
	if _, err := s.executeTool("cell_crop", args); err == nil {
		t.Error("expected an error for an out-of-range question")
	}
}

func TestExecuteTool_UnknownTool(t *testing.T) {
	s := New()
	if _, err := s.executeTool("bogus_tool", json.RawMessage(`{}`)); err == nil {
		t.Fatal("unknown tool did not error")
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := New()
	resp := s.handleToolsCall(&MCPRequest{
		JSONRPC: "2.0", ID: 1, Method: "tools/call",
		Params: json.RawMessage(`{not json`),
	})
	if resp.Error == nil {
		t.Fatal("invalid params did not produce an error")
	}
	if resp.Error.Code != -32602 {
		t.Errorf("error code = %d, want -32602", resp.Error.Code)
	}
}
