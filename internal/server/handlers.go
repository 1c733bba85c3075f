package server

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/ironsheep/draggable-image-view/internal/geometry"
	"github.com/ironsheep/draggable-image-view/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "view_set_image", "view_render").
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
		s.logger.Info("tool failed", zap.String("tool", params.Name), zap.Error(err))
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Image
	case "view_set_image":
		return s.handleSetImage(args)
	case "view_clear_image":
		s.view.SetImage(nil)
		return s.state(), nil

	// Insets
	case "view_set_insets":
		return s.handleSetInsets(args)
	case "view_clear_insets":
		if err := s.view.SetInsets(nil); err != nil {
			return nil, err
		}
		return s.insets(), nil
	case "view_get_insets":
		return s.insets(), nil

	// Layout and gestures
	case "view_layout":
		return s.handleLayout(args)
	case "view_scroll":
		return s.handleScroll(args)
	case "view_zoom":
		return s.handleZoom(args)
	case "view_state":
		return s.state(), nil

	// Rendering
	case "view_render":
		return s.handleRender(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
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

// unmarshalArgs decodes tool arguments; absent arguments decode as an empty object.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// === Results ===

// StateResult describes the view after a tool call.
type StateResult struct {
	Bounds             geometry.Size      `json:"bounds"`
	Geometry           geometry.FitResult `json:"geometry"`
	InteractionEnabled bool               `json:"interaction_enabled"`
	HasImage           bool               `json:"has_image"`
	FitError           string             `json:"fit_error,omitempty"`
}

// InsetsResult reports the insets; Set distinguishes unset from all-zero.
type InsetsResult struct {
	Set    bool                `json:"set"`
	Insets geometry.EdgeInsets `json:"insets"`
}

// SetImageResult combines the loaded image metadata with the refitted state.
type SetImageResult struct {
	Image *imaging.ImageInfo `json:"image"`
	State StateResult        `json:"state"`
}

// RenderResult is the rendered composition plus how it was produced.
type RenderResult struct {
	imaging.ImageResult

	RasterWidth  int                 `json:"raster_width"`
	RasterHeight int                 `json:"raster_height"`
	Cropped      bool                `json:"cropped"`
	Crop         *geometry.PixelRect `json:"crop,omitempty"`
	Fallback     string              `json:"fallback,omitempty"`
	SavedTo      string              `json:"saved_to,omitempty"`
}

func (s *Server) state() StateResult {
	st := StateResult{
		Bounds:             s.view.Bounds(),
		Geometry:           s.view.Geometry(),
		InteractionEnabled: s.view.InteractionEnabled(),
		HasImage:           s.view.Image() != nil,
	}
	if err := s.view.FitErr(); err != nil {
		st.FitError = err.Error()
	}
	return st
}

func (s *Server) insets() InsetsResult {
	in, ok := s.view.Insets()
	return InsetsResult{Set: ok, Insets: in}
}

// === Image Handlers ===

type setImageArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleSetImage(args json.RawMessage) (interface{}, error) {
	var a setImageArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	img, info, err := imaging.LoadImageInfo(a.Path)
	if err != nil {
		return nil, err
	}
	s.view.SetImage(img)

	return &SetImageResult{Image: info, State: s.state()}, nil
}

// === Inset Handlers ===

type setInsetsArgs struct {
	Top    *float64 `json:"top"`
	Left   *float64 `json:"left"`
	Bottom *float64 `json:"bottom"`
	Right  *float64 `json:"right"`
}

func (s *Server) handleSetInsets(args json.RawMessage) (interface{}, error) {
	var a setInsetsArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Top == nil || a.Left == nil || a.Bottom == nil || a.Right == nil {
		return nil, fmt.Errorf("top, left, bottom and right are required")
	}

	in := geometry.EdgeInsets{Top: *a.Top, Left: *a.Left, Bottom: *a.Bottom, Right: *a.Right}
	if err := s.view.SetInsets(&in); err != nil {
		return nil, err
	}
	return s.insets(), nil
}

// === Layout and Gesture Handlers ===

type layoutArgs struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (s *Server) handleLayout(args json.RawMessage) (interface{}, error) {
	var a layoutArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Width < 0 || a.Height < 0 {
		return nil, fmt.Errorf("bounds %gx%g must not be negative", a.Width, a.Height)
	}

	s.view.SetBounds(geometry.SizeOf(a.Width, a.Height))
	return s.state(), nil
}

type scrollArgs struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Relative bool    `json:"relative"`
}

func (s *Server) handleScroll(args json.RawMessage) (interface{}, error) {
	var a scrollArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if !s.view.InteractionEnabled() {
		return nil, fmt.Errorf("interaction is disabled: no image fits the view")
	}

	if a.Relative {
		s.view.ScrollBy(a.X, a.Y)
	} else {
		s.view.SetContentOffset(geometry.Point{X: a.X, Y: a.Y})
	}
	s.view.WillBeginDecelerating()
	return s.state(), nil
}

type zoomArgs struct {
	Scale float64 `json:"scale"`
}

func (s *Server) handleZoom(args json.RawMessage) (interface{}, error) {
	var a zoomArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if !s.view.InteractionEnabled() {
		return nil, fmt.Errorf("interaction is disabled: no image fits the view")
	}

	s.view.SetZoomScale(a.Scale)
	return s.state(), nil
}

// === Render Handler ===

type renderArgs struct {
	OutputPath string `json:"output_path"`
}

func (s *Server) handleRender(args json.RawMessage) (interface{}, error) {
	var a renderArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}

	rendered, err := s.view.Render()
	if err != nil {
		return nil, err
	}

	encoded, err := imaging.EncodePNG(rendered.Image)
	if err != nil {
		return nil, err
	}

	raster := rendered.Raster.Image.Bounds()
	result := &RenderResult{
		ImageResult:  *encoded,
		RasterWidth:  raster.Dx(),
		RasterHeight: raster.Dy(),
		Cropped:      rendered.Cropped,
	}
	if rendered.Cropped {
		crop := rendered.Crop
		result.Crop = &crop
	}
	if rendered.Fallback != nil {
		result.Fallback = rendered.Fallback.Error()
	}

	if a.OutputPath != "" {
		if err := imaging.Save(rendered.Image, a.OutputPath); err != nil {
			return nil, err
		}
		result.SavedTo = a.OutputPath
	}

	return result, nil
}
