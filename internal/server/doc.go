// Package server implements the MCP (Model Context Protocol) host for the
// draggable image view.
//
// The server plays the part of the screen that owns the view: it loads images
// into it, runs layout passes, forwards pan and zoom gestures and asks it to
// render. Clients drive it through MCP tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Image:
//   - view_set_image: Load an image file and cover-fit it
//   - view_clear_image: Remove the image and disable interaction
//
// Insets:
//   - view_set_insets: Set the crop mask insets
//   - view_clear_insets: Unset the insets
//   - view_get_insets: Read the insets and whether they are set
//
// Layout and gestures:
//   - view_layout: Layout pass with new bounds
//   - view_scroll: Pan to an offset or by a delta
//   - view_zoom: Set the zoom factor
//   - view_state: Read the displayed geometry
//
// Rendering:
//   - view_render: Render the composition cropped to the insets
//
// # Threading
//
// Requests are handled strictly in order on the goroutine that calls Serve.
// That goroutine is the single writer the view requires.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// A render whose insets leave nothing to crop is not an error: the uncropped
// image is returned and the reason is reported in the "fallback" field.
package server
