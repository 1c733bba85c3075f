// Package geometry computes the layout math behind the draggable image view.
//
// Everything here is a pure function of plain values. There is no image data,
// no host toolkit and no mutable state, so the functions can be called from
// any goroutine.
//
// # Coordinate Spaces
//
// Two spaces are in play:
//   - Point space: logical view units. Bounds, insets, offsets and displayed
//     sizes are all points.
//   - Pixel space: raster coordinates. A raster of a view that is 100 points
//     wide may be 200 or 300 pixels wide depending on the device scale.
//
// Both use (0,0) at the top-left, X increasing rightward and Y downward.
//
// # Cover-fit
//
// Fit scales an image so it covers the bounds, holding either the width or the
// height equal to the bounds and letting the other axis overflow. The width
// candidate is tried first; see Fit for the exact policy.
//
// # Inset Crop
//
// CropRect converts point-space edge insets into a pixel-space rectangle using
// independent per-axis scale factors. Left and right insets scale with the
// horizontal factor, top and bottom with the vertical one.
package geometry
