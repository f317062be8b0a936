package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Scoring
		{
			Name:        "sheet_score",
			Description: "Decode all marked answers from one or more photographed answer-sheet pages. Pages are processed concurrently and question numbers run continuously across pages. A page that cannot be decoded is reported as a fault without failing the other pages.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"paths": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Absolute paths to the page image files, in page order",
					},
					"artifact_dir": map[string]interface{}{
						"type":        "string",
						"description": "Optional existing directory; when set, every intermediate pipeline image is saved there as PNG for debugging",
					},
				},
				"required": []string{"paths"},
			},
		},

		// Page Inspection
		{
			Name:        "page_load",
			Description: "Load a page photograph and return its dimensions, format and orientation. Caches the decoded image for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the page image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "page_inspect",
			Description: "Run detection on a page without committing to a score: reports the classified layout, the answer-region quadrilateral with shape metrics, exposure statistics, and a census of circular bubble outlines. Use this to diagnose why a page scores badly.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the page image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "page_render",
			Description: "Render a page as base64-encoded PNG. By default draws the decoded-answer overlay (grid lines plus a colored frame around each detected selection); alternatively returns one raw pipeline stage.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the page image file",
					},
					"stage": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"overlay", "edges", "rectified", "rectified-inner", "binary"},
						"description": "What to render. Default \"overlay\"",
					},
					"grid_color": map[string]interface{}{
						"type":        "string",
						"description": "Overlay grid line color as #RRGGBB. Default red",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "cell_crop",
			Description: "Extract one (question, option) grid cell from the rectified page as base64-encoded PNG, optionally upscaled. Use this to verify a single bubble by eye.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the page image file",
					},
					"question": map[string]interface{}{
						"type":        "integer",
						"description": "Question number on this page (1-based)",
					},
					"option": map[string]interface{}{
						"type":        "integer",
						"description": "Option column, 0=A through 3=D",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 4.0 to quadruple size). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path", "question", "option"},
			},
		},

		// Header Reading
		{
			Name:        "header_read",
			Description: "OCR the header band (name, class, sheet id) of a rectified page. Requires Tesseract to be installed; answer decoding never depends on this tool.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the page image file",
					},
					"language": map[string]interface{}{
						"type":        "string",
						"description": "Tesseract language code. Default \"eng\"",
						"default":     "eng",
					},
					"region": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"description": "Optional band of the rectified canvas to read. Defaults to the top eighth of the page.",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return s.resultResponse(req.ID, map[string]interface{}{
		"tools": GetToolDefinitions(),
	})
}
