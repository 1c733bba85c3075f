package view

import (
	"image"

	"github.com/ironsheep/draggable-image-view/internal/geometry"
)

// Composition is a snapshot of everything a rasterizer needs to draw the view.
type Composition struct {
	// Image is the source image, or nil when none is loaded.
	Image image.Image

	// ContentSize is the displayed image size at the current zoom, in points.
	ContentSize geometry.Size

	// Offset is the pan offset; content is drawn at -Offset.
	Offset geometry.Point
}

// Raster is a rasterized composition.
type Raster struct {
	// Image holds the pixels. Its bounds are the pixel size.
	Image image.Image

	// PointSize is the size in points the raster was rendered at.
	PointSize geometry.Size
}

// PixelSize returns the raster's pixel dimensions.
func (r *Raster) PixelSize() geometry.Size {
	return geometry.SizeFromRect(r.Image.Bounds())
}

// Rasterizer is the host capability that turns a composition into pixels.
//
// The pixel size of the returned raster may exceed bounds by a device scale
// factor. When opaque is set the raster must not contain transparent pixels.
type Rasterizer interface {
	Rasterize(c Composition, bounds geometry.Size, opaque bool) (*Raster, error)
}
