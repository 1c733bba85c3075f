package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func noArgs() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func numberProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "number",
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image
		{
			Name:        "view_set_image",
			Description: "Load an image file into the view. The image is cover-fitted to the view bounds and pan/zoom are reset.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "view_clear_image",
			Description: "Remove the image from the view. Interaction is disabled until a new image is set.",
			InputSchema: noArgs(),
		},

		// Insets
		{
			Name:        "view_set_insets",
			Description: "Set the edge insets, in points, that mask the view. Rendered images are cropped to exclude them.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"top":    numberProp("Top inset in points (>= 0)"),
					"left":   numberProp("Left inset in points (>= 0)"),
					"bottom": numberProp("Bottom inset in points (>= 0)"),
					"right":  numberProp("Right inset in points (>= 0)"),
				},
				"required": []string{"top", "left", "bottom", "right"},
			},
		},
		{
			Name:        "view_clear_insets",
			Description: "Unset the edge insets. Rendered images are no longer cropped.",
			InputSchema: noArgs(),
		},
		{
			Name:        "view_get_insets",
			Description: "Get the current edge insets and whether any are set.",
			InputSchema: noArgs(),
		},

		// Layout and gestures
		{
			Name:        "view_layout",
			Description: "Run a layout pass with new view bounds in points. The image is refitted and pan/zoom are reset.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"width":  numberProp("View width in points"),
					"height": numberProp("View height in points"),
				},
				"required": []string{"width", "height"},
			},
		},
		{
			Name:        "view_scroll",
			Description: "Pan the image. Offsets are clamped to the content edges plus the insets.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": numberProp("Horizontal content offset (or delta when relative) in points"),
					"y": numberProp("Vertical content offset (or delta when relative) in points"),
					"relative": map[string]interface{}{
						"type":        "boolean",
						"description": "Treat x and y as a delta from the current offset. Default false",
						"default":     false,
					},
				},
				"required": []string{"x", "y"},
			},
		},
		{
			Name:        "view_zoom",
			Description: "Set the zoom factor, clamped to the configured range (default 1.0 to 2.0).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"scale": numberProp("Zoom factor"),
				},
				"required": []string{"scale"},
			},
		},
		{
			Name:        "view_state",
			Description: "Get the view bounds, displayed image geometry, axis lock, pan offset, zoom and interaction state.",
			InputSchema: noArgs(),
		},

		// Rendering
		{
			Name:        "view_render",
			Description: "Render the visible composition, cropped to exclude the insets, and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional file path to also save the rendered image to",
					},
				},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
