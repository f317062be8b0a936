package server

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/ironsheep/bubblesheet-mcp/internal/detection"
	"github.com/ironsheep/bubblesheet-mcp/internal/geometry"
	"github.com/ironsheep/bubblesheet-mcp/internal/imaging"
	"github.com/ironsheep/bubblesheet-mcp/internal/ocr"
	"github.com/ironsheep/bubblesheet-mcp/internal/render"
	"github.com/ironsheep/bubblesheet-mcp/internal/sheet"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "sheet_score", "page_inspect").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return s.resultResponse(req.ID, map[string]interface{}{
		"content": []map[string]interface{}{
			{
				"type": "text",
				"text": mustMarshalJSON(result),
			},
		},
	})
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Scoring
	case "sheet_score":
		return s.handleSheetScore(args)

	// Page Inspection
	case "page_load":
		return s.handlePageLoad(args)
	case "page_inspect":
		return s.handlePageInspect(args)
	case "page_render":
		return s.handlePageRender(args)
	case "cell_crop":
		return s.handleCellCrop(args)

	// Header Reading
	case "header_read":
		return s.handleHeaderRead(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
// A nil data keeps the error object's data field off the wire.
func (s *Server) errorResponse(id interface{}, code int, message string, data interface{}) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Scoring Handlers ===

type sheetScoreArgs struct {
	Paths       []string `json:"paths"`
	ArtifactDir string   `json:"artifact_dir"`
}

// PageSummary reports one page's outcome inside a sheet_score result.
type PageSummary struct {
	Page      int    `json:"page"`
	Layout    string `json:"layout,omitempty"`
	Questions int    `json:"questions,omitempty"`
	Error     string `json:"error,omitempty"`
}

// SheetScoreResult is the combined outcome of decoding a submission.
type SheetScoreResult struct {
	// Answers maps global question numbers to the decoded selection:
	// a 0-based option index, or "none"/"ambiguous".
	Answers *sheet.AnswerMap `json:"answers"`

	// Pages summarizes every input page, faulted pages included.
	Pages []PageSummary `json:"pages"`

	// Faults lists the per-page errors, empty when all pages decoded.
	Faults string `json:"faults,omitempty"`
}

func (s *Server) handleSheetScore(args json.RawMessage) (interface{}, error) {
	var a sheetScoreArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	pages := make([]image.Image, len(a.Paths))
	for i, path := range a.Paths {
		img, err := s.cache.Load(path)
		if err != nil {
			return nil, err
		}
		pages[i] = img
	}

	var obs sheet.Observer
	var artifacts *render.ArtifactWriter
	if a.ArtifactDir != "" {
		artifacts = render.NewArtifactWriter(a.ArtifactDir)
		obs = artifacts
	}

	combined, err := sheet.Score(pages, obs)
	if err != nil {
		return nil, err
	}
	if artifacts != nil && artifacts.Err() != nil {
		return nil, artifacts.Err()
	}

	result := &SheetScoreResult{
		Answers: combined.Answers,
		Pages:   make([]PageSummary, len(combined.Pages)),
	}
	for i, page := range combined.Pages {
		summary := PageSummary{Page: page.Page}
		if page.Err != nil {
			summary.Error = page.Err.Error()
		} else {
			summary.Layout = page.Type.String()
			summary.Questions = len(page.Answers)
		}
		result.Pages[i] = summary
	}
	if combined.Faults != nil {
		result.Faults = combined.Faults.Error()
	}
	return result, nil
}

// === Page Inspection Handlers ===

type pageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handlePageLoad(args json.RawMessage) (interface{}, error) {
	var a pageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadPageInfo(s.cache, a.Path)
}

// Bubble radius band on the working canvas, in pixels. Printed option
// circles on all three layouts fall inside it.
const (
	censusMinRadius = 8
	censusMaxRadius = 20
)

// PageInspectResult reports detection diagnostics for a single page.
type PageInspectResult struct {
	Layout    string `json:"layout"`
	Questions int    `json:"questions"`
	Blocks    int    `json:"blocks"`

	// Region is the bounding rectangle of the biggest contour on the
	// working canvas, the classifier's input.
	Region RegionBounds `json:"region"`

	// Quad is the answer-region quadrilateral, corners ordered
	// top-left, top-right, bottom-right, bottom-left.
	Quad geometry.Quad `json:"quad"`

	// QuadMetrics describes the quadrilateral's shape quality; a high
	// angle deviation means a skewed photograph.
	QuadMetrics geometry.QuadMetrics `json:"quad_metrics"`

	// Tone summarizes the rectified page's exposure.
	Tone imaging.ToneStats `json:"tone"`

	// Bubbles is the census of circular outlines found on the page.
	Bubbles *detection.BubbleCensus `json:"bubbles"`
}

// RegionBounds is a rectangle in working-canvas pixel coordinates.
type RegionBounds struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

func (s *Server) handlePageInspect(args json.RawMessage) (interface{}, error) {
	var a pageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	result, capture, err := s.processPage(a.Path)
	if err != nil {
		return nil, err
	}

	inspect := &PageInspectResult{
		Layout:    result.Type.String(),
		Questions: result.Type.Questions(),
		Blocks:    result.Type.Blocks(),
		Region: RegionBounds{
			X1: result.Rect.Min.X,
			Y1: result.Rect.Min.Y,
			X2: result.Rect.Max.X,
			Y2: result.Rect.Max.Y,
		},
		Quad:        result.Quad,
		QuadMetrics: geometry.MeasureQuad(result.Quad),
		Tone:        imaging.MeasureTone(result.Rectified),
	}

	if edges, ok := capture.Get(1, sheet.StageEdges); ok {
		if gray, ok := edges.(*image.Gray); ok {
			inspect.Bubbles = detection.CensusBubbles(gray, censusMinRadius, censusMaxRadius)
		}
	}
	return inspect, nil
}

type pageRenderArgs struct {
	Path      string `json:"path"`
	Stage     string `json:"stage"`
	GridColor string `json:"grid_color"`
}

// RenderResult contains a rendered page encoded for transport.
type RenderResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Stage       string `json:"stage"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

func (s *Server) handlePageRender(args json.RawMessage) (interface{}, error) {
	var a pageRenderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Stage == "" {
		a.Stage = "overlay"
	}

	result, capture, err := s.processPage(a.Path)
	if err != nil {
		return nil, err
	}

	var img image.Image
	if a.Stage == "overlay" {
		img, err = render.Overlay(result, a.GridColor)
		if err != nil {
			return nil, err
		}
	} else {
		staged, ok := capture.Get(1, a.Stage)
		if !ok {
			return nil, fmt.Errorf("stage %q was not produced for this page", a.Stage)
		}
		img = staged
	}

	encoded, err := imaging.EncodePNG(img)
	if err != nil {
		return nil, err
	}
	return &RenderResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		Stage:       a.Stage,
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}

type cellCropArgs struct {
	Path     string  `json:"path"`
	Question int     `json:"question"`
	Option   int     `json:"option"`
	Scale    float64 `json:"scale"`
}

func (s *Server) handleCellCrop(args json.RawMessage) (interface{}, error) {
	var a cellCropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}

	result, _, err := s.processPage(a.Path)
	if err != nil {
		return nil, err
	}

	cell, err := sheet.CellRect(result.Rectified.Bounds(),
		result.Type.Questions(), result.Type.Blocks(), a.Question, a.Option)
	if err != nil {
		return nil, err
	}
	return imaging.Crop(result.Rectified, cell, a.Scale)
}

// === Header Reading Handlers ===

type headerReadArgs struct {
	Path     string        `json:"path"`
	Language string        `json:"language"`
	Region   *RegionBounds `json:"region"`
}

func (s *Server) handleHeaderRead(args json.RawMessage) (interface{}, error) {
	var a headerReadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Language == "" {
		a.Language = "eng"
	}

	result, _, err := s.processPage(a.Path)
	if err != nil {
		return nil, err
	}

	region := ocr.DefaultHeaderRegion(result.Rectified.Bounds())
	if a.Region != nil {
		region = image.Rect(a.Region.X1, a.Region.Y1, a.Region.X2, a.Region.Y2)
	}
	return ocr.ReadHeader(result.Rectified, region, a.Language)
}

// processPage loads a page from the cache and runs the recognition
// pipeline on it, capturing the intermediate stages. Page faults surface
// as errors; single-page tools have nothing useful to report about a
// page that cannot be decoded.
func (s *Server) processPage(path string) (*sheet.PageResult, *render.Capture, error) {
	img, err := s.cache.Load(path)
	if err != nil {
		return nil, nil, err
	}

	capture := render.NewCapture()
	result := sheet.ProcessPage(1, img, capture)
	if result.Err != nil {
		return nil, nil, result.Err
	}
	return result, capture, nil
}
