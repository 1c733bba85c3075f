package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/draggable-image-view/internal/geometry"
)

// createTestImageFile writes a solid PNG into a temp dir and returns its path.
func createTestImageFile(t *testing.T, width, height int, c color.Color) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, img))
	return path
}

// callTool sends a tools/call request through the full request path.
func callTool(t *testing.T, s *Server, name string, args interface{}) *MCPResponse {
	t.Helper()

	params := map[string]interface{}{"name": name}
	if args != nil {
		params["arguments"] = args
	}
	paramsJSON, err := json.Marshal(params)
	require.NoError(t, err)

	resp := s.handleRequest(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  paramsJSON,
	})
	require.NotNil(t, resp)
	return resp
}

// callToolOK calls a tool that must succeed and decodes its text result into v.
func callToolOK(t *testing.T, s *Server, name string, args interface{}, v interface{}) {
	t.Helper()

	resp := callTool(t, s, name, args)
	require.Nil(t, resp.Error, "tool %s failed: %+v", name, resp.Error)

	result, ok := resp.Result.(map[string]interface{})
	require.True(t, ok, "result should be a map")
	content, ok := result["content"].([]map[string]interface{})
	require.True(t, ok, "content should be a slice")
	require.Len(t, content, 1)
	assert.Equal(t, "text", content[0]["type"])

	text, ok := content[0]["text"].(string)
	require.True(t, ok, "text should be a string")
	require.NoError(t, json.Unmarshal([]byte(text), v))
}

// callToolErr calls a tool that must fail and returns the error data.
func callToolErr(t *testing.T, s *Server, name string, args interface{}) string {
	t.Helper()

	resp := callTool(t, s, name, args)
	require.NotNil(t, resp.Error, "tool %s should fail", name)
	assert.Equal(t, -32000, resp.Error.Code)

	data, _ := resp.Error.Data.(string)
	return data
}

func loadWideImage(t *testing.T, s *Server) SetImageResult {
	t.Helper()

	path := createTestImageFile(t, 200, 100, color.NRGBA{255, 0, 0, 255})
	var result SetImageResult
	callToolOK(t, s, "view_set_image", map[string]interface{}{"path": path}, &result)
	return result
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s, _ := newTestServer(t)

	resp := s.handleRequest(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  json.RawMessage(`"not an object"`),
	})
	require.NotNil(t, resp.Error)
	assert.Equal(t, -32602, resp.Error.Code)
}

func TestHandleToolsCall_UnknownTool(t *testing.T) {
	s, logs := newTestServer(t)

	data := callToolErr(t, s, "image_load", nil)
	assert.Contains(t, data, "unknown tool")
	assert.Equal(t, 1, logs.FilterMessage("tool failed").Len())
}

func TestSetImage(t *testing.T) {
	s, _ := newTestServer(t)

	result := loadWideImage(t, s)

	require.NotNil(t, result.Image)
	assert.Equal(t, 200, result.Image.Width)
	assert.Equal(t, 100, result.Image.Height)
	assert.Equal(t, "png", result.Image.Format)
	assert.Positive(t, result.Image.FileSizeBytes)

	st := result.State
	assert.True(t, st.HasImage)
	assert.True(t, st.InteractionEnabled)
	assert.Empty(t, st.FitError)
	assert.Equal(t, geometry.SizeOf(100, 50), st.Bounds)
	assert.Equal(t, geometry.AxisWidthLocked, st.Geometry.Axis)
	assert.Equal(t, geometry.SizeOf(100, 50), st.Geometry.Displayed)
	assert.Equal(t, 1.0, st.Geometry.Zoom)
}

func TestSetImage_Errors(t *testing.T) {
	s, _ := newTestServer(t)

	assert.Contains(t, callToolErr(t, s, "view_set_image", map[string]interface{}{}), "path is required")
	assert.Contains(t, callToolErr(t, s, "view_set_image",
		map[string]interface{}{"path": filepath.Join(t.TempDir(), "missing.png")}), "failed to load image")
}

func TestClearImage(t *testing.T) {
	s, _ := newTestServer(t)
	loadWideImage(t, s)

	var st StateResult
	callToolOK(t, s, "view_clear_image", nil, &st)

	assert.False(t, st.HasImage)
	assert.False(t, st.InteractionEnabled)
	assert.Empty(t, st.FitError)
	assert.Equal(t, geometry.AxisNone, st.Geometry.Axis)
}

func TestInsets(t *testing.T) {
	s, _ := newTestServer(t)

	var got InsetsResult
	callToolOK(t, s, "view_get_insets", nil, &got)
	assert.False(t, got.Set)

	insets := map[string]interface{}{"top": 1, "left": 2, "bottom": 3, "right": 4}
	callToolOK(t, s, "view_set_insets", insets, &got)
	assert.True(t, got.Set)
	assert.Equal(t, geometry.EdgeInsets{Top: 1, Left: 2, Bottom: 3, Right: 4}, got.Insets)

	callToolOK(t, s, "view_get_insets", nil, &got)
	assert.True(t, got.Set)

	callToolOK(t, s, "view_clear_insets", nil, &got)
	assert.False(t, got.Set)
	assert.Equal(t, geometry.EdgeInsets{}, got.Insets)
}

func TestInsets_ZeroIsSet(t *testing.T) {
	s, _ := newTestServer(t)

	var got InsetsResult
	callToolOK(t, s, "view_set_insets", map[string]interface{}{"top": 0, "left": 0, "bottom": 0, "right": 0}, &got)
	assert.True(t, got.Set)
}

func TestSetInsets_Errors(t *testing.T) {
	s, _ := newTestServer(t)

	data := callToolErr(t, s, "view_set_insets", map[string]interface{}{"top": 1, "left": 1, "bottom": 1})
	assert.Contains(t, data, "required")

	data = callToolErr(t, s, "view_set_insets", map[string]interface{}{"top": -1, "left": 0, "bottom": 0, "right": 0})
	assert.Contains(t, data, "top inset")

	var got InsetsResult
	callToolOK(t, s, "view_get_insets", nil, &got)
	assert.False(t, got.Set, "rejected insets must not be stored")
}

func TestLayout(t *testing.T) {
	s, _ := newTestServer(t)
	loadWideImage(t, s)

	var st StateResult
	callToolOK(t, s, "view_layout", map[string]interface{}{"width": 50, "height": 100}, &st)

	assert.Equal(t, geometry.SizeOf(50, 100), st.Bounds)
	assert.Equal(t, geometry.AxisHeightLocked, st.Geometry.Axis)
	assert.Equal(t, geometry.SizeOf(200, 100), st.Geometry.Displayed)
	assert.True(t, st.InteractionEnabled)
}

func TestLayout_EmptyBoundsDisables(t *testing.T) {
	s, _ := newTestServer(t)
	loadWideImage(t, s)

	var st StateResult
	callToolOK(t, s, "view_layout", map[string]interface{}{"width": 0, "height": 0}, &st)

	assert.False(t, st.InteractionEnabled)
	assert.True(t, st.HasImage)
	assert.Contains(t, st.FitError, "no covering fit")
	assert.Equal(t, geometry.Size{}, st.Geometry.Displayed)
}

func TestLayout_Negative(t *testing.T) {
	s, _ := newTestServer(t)

	data := callToolErr(t, s, "view_layout", map[string]interface{}{"width": -1, "height": 10})
	assert.Contains(t, data, "must not be negative")
}

func TestScrollAndZoom(t *testing.T) {
	s, _ := newTestServer(t)
	loadWideImage(t, s)

	var got InsetsResult
	callToolOK(t, s, "view_set_insets", map[string]interface{}{"top": 10, "left": 10, "bottom": 10, "right": 10}, &got)

	var st StateResult
	callToolOK(t, s, "view_scroll", map[string]interface{}{"x": 50, "y": 0}, &st)
	assert.Equal(t, geometry.Point{X: 10, Y: 0}, st.Geometry.Offset, "clamped to content edge plus inset")

	callToolOK(t, s, "view_zoom", map[string]interface{}{"scale": 2}, &st)
	assert.Equal(t, 2.0, st.Geometry.Zoom)
	assert.Equal(t, geometry.SizeOf(200, 100), st.Geometry.ContentSize)
	assert.Equal(t, geometry.Point{X: 10, Y: 0}, st.Geometry.Offset)

	callToolOK(t, s, "view_scroll", map[string]interface{}{"x": 200, "y": -50, "relative": true}, &st)
	assert.Equal(t, geometry.Point{X: 110, Y: -10}, st.Geometry.Offset)

	callToolOK(t, s, "view_zoom", map[string]interface{}{"scale": 5}, &st)
	assert.Equal(t, 2.0, st.Geometry.Zoom, "clamped to max zoom")

	callToolOK(t, s, "view_zoom", map[string]interface{}{"scale": 0.5}, &st)
	assert.Equal(t, 1.0, st.Geometry.Zoom, "clamped to min zoom")
	assert.Equal(t, geometry.Point{X: 10, Y: -10}, st.Geometry.Offset, "offset re-clamped to smaller content")
}

func TestScrollAndZoom_Disabled(t *testing.T) {
	s, _ := newTestServer(t)

	assert.Contains(t, callToolErr(t, s, "view_scroll", map[string]interface{}{"x": 1, "y": 1}), "interaction is disabled")
	assert.Contains(t, callToolErr(t, s, "view_zoom", map[string]interface{}{"scale": 2}), "interaction is disabled")
}

func TestState(t *testing.T) {
	s, _ := newTestServer(t)

	var st StateResult
	callToolOK(t, s, "view_state", nil, &st)
	assert.False(t, st.HasImage)
	assert.False(t, st.InteractionEnabled)
	assert.Equal(t, geometry.SizeOf(100, 50), st.Bounds)

	loadWideImage(t, s)
	callToolOK(t, s, "view_state", nil, &st)
	assert.True(t, st.InteractionEnabled)
}

func TestRender_NoInsets(t *testing.T) {
	s, _ := newTestServer(t)
	loadWideImage(t, s)

	var r RenderResult
	callToolOK(t, s, "view_render", nil, &r)

	assert.False(t, r.Cropped)
	assert.Nil(t, r.Crop)
	assert.Empty(t, r.Fallback)
	assert.Equal(t, 200, r.RasterWidth)
	assert.Equal(t, 100, r.RasterHeight)
	assert.Equal(t, 200, r.Width)
	assert.Equal(t, 100, r.Height)
	assert.Equal(t, "image/png", r.MimeType)

	decoded := decodePNG(t, r.ImageBase64)
	assert.Equal(t, image.Rect(0, 0, 200, 100), decoded.Bounds())
}

func TestRender_Cropped(t *testing.T) {
	s, _ := newTestServer(t)
	loadWideImage(t, s)

	var got InsetsResult
	callToolOK(t, s, "view_set_insets", map[string]interface{}{"top": 10, "left": 10, "bottom": 10, "right": 10}, &got)

	out := filepath.Join(t.TempDir(), "render.png")

	var r RenderResult
	callToolOK(t, s, "view_render", map[string]interface{}{"output_path": out}, &r)

	assert.True(t, r.Cropped)
	require.NotNil(t, r.Crop)
	assert.Equal(t, geometry.PixelRect{X: 20, Y: 20, Width: 160, Height: 60}, *r.Crop)
	assert.Equal(t, 200, r.RasterWidth)
	assert.Equal(t, 160, r.Width)
	assert.Equal(t, 60, r.Height)
	assert.Equal(t, out, r.SavedTo)

	decoded := decodePNG(t, r.ImageBase64)
	assert.Equal(t, image.Rect(0, 0, 160, 60), decoded.Bounds())

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRender_DegenerateInsetsFallBack(t *testing.T) {
	s, logs := newTestServer(t)
	loadWideImage(t, s)

	var got InsetsResult
	callToolOK(t, s, "view_set_insets", map[string]interface{}{"top": 0, "left": 60, "bottom": 0, "right": 60}, &got)

	var r RenderResult
	callToolOK(t, s, "view_render", nil, &r)

	assert.False(t, r.Cropped)
	assert.Contains(t, r.Fallback, "crop rectangle has no area")
	assert.Equal(t, 200, r.Width)
	assert.Equal(t, 100, r.Height)
	assert.Equal(t, 1, logs.FilterMessage("insets leave nothing to crop, returning uncropped render").Len())
}

func TestRender_EmptyBounds(t *testing.T) {
	s, _ := newTestServer(t)

	var st StateResult
	callToolOK(t, s, "view_layout", map[string]interface{}{"width": 0, "height": 0}, &st)

	assert.Contains(t, callToolErr(t, s, "view_render", nil), "failed to rasterize view")
}

func decodePNG(t *testing.T, b64 string) image.Image {
	t.Helper()

	data, err := base64.StdEncoding.DecodeString(b64)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}
