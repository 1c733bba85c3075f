package view

import (
	"math"

	"go.uber.org/zap"

	"github.com/ironsheep/draggable-image-view/internal/geometry"
)

// The methods below are what a host forwards from its scroll/zoom gesture
// callbacks. They do nothing while interaction is disabled.

// SetZoomScale sets the zoom factor, clamped to [MinZoom, MaxZoom], and
// re-clamps the offset to the new content size. NaN is ignored.
func (v *DraggableImageView) SetZoomScale(scale float64) {
	if !v.geom.Enabled || math.IsNaN(scale) {
		return
	}
	if scale < v.opts.MinZoom {
		scale = v.opts.MinZoom
	}
	if scale > v.opts.MaxZoom {
		scale = v.opts.MaxZoom
	}

	geom := v.geom.Zoomed(scale)
	geom.Offset = v.clampOffset(geom.Offset, geom.ContentSize)
	v.geom = geom
}

// ZoomScale returns the current zoom factor.
func (v *DraggableImageView) ZoomScale() float64 {
	return v.geom.Zoom
}

// SetContentOffset pans to p. The offset stops at the content edges, extended
// by the insets; there is no overscroll. A NaN coordinate is ignored.
func (v *DraggableImageView) SetContentOffset(p geometry.Point) {
	if !v.geom.Enabled || math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return
	}
	v.geom.Offset = v.clampOffset(p, v.geom.ContentSize)
}

// ContentOffset returns the current pan offset.
func (v *DraggableImageView) ContentOffset() geometry.Point {
	return v.geom.Offset
}

// ScrollBy pans by a delta from the current offset.
func (v *DraggableImageView) ScrollBy(dx, dy float64) {
	v.SetContentOffset(geometry.Point{X: v.geom.Offset.X + dx, Y: v.geom.Offset.Y + dy})
}

// WillBeginDecelerating stops any momentum by pinning the current offset.
func (v *DraggableImageView) WillBeginDecelerating() {
	v.SetContentOffset(v.geom.Offset)
	v.logger.Debug("deceleration stopped", zap.Float64("x", v.geom.Offset.X), zap.Float64("y", v.geom.Offset.Y))
}

func (v *DraggableImageView) clampOffset(p geometry.Point, content geometry.Size) geometry.Point {
	insets, _ := v.Insets()
	return geometry.ClampOffset(p, content, v.bounds, insets)
}
