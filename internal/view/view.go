package view

import (
	"errors"
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/ironsheep/draggable-image-view/internal/geometry"
	"github.com/ironsheep/draggable-image-view/internal/imaging"
)

// Options configures a DraggableImageView.
type Options struct {
	// MinZoom and MaxZoom bound SetZoomScale.
	MinZoom float64
	MaxZoom float64

	// Opaque is passed to the rasterizer on every render.
	Opaque bool
}

// DefaultOptions returns a zoom range of 1 to 2 and a transparent background.
func DefaultOptions() Options {
	return Options{
		MinZoom: 1,
		MaxZoom: 2,
	}
}

// DraggableImageView displays an image cover-fitted to its bounds, lets the
// host pan and zoom it, and renders the visible area minus the insets.
//
// The zero value is not usable; create one with New. Methods must be called
// from a single goroutine.
type DraggableImageView struct {
	opts       Options
	rasterizer Rasterizer
	logger     *zap.Logger
	crop       func(image.Image, image.Rectangle) (*image.NRGBA, error)

	bounds geometry.Size
	img    image.Image
	insets *geometry.EdgeInsets

	geom   geometry.FitResult
	fitErr error
}

// New creates a view with no image, no insets and empty bounds.
// Interaction is disabled until an image is set and fits.
func New(opts Options, r Rasterizer, logger *zap.Logger) *DraggableImageView {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.MinZoom <= 0 {
		opts.MinZoom = 1
	}
	if opts.MaxZoom < opts.MinZoom {
		opts.MaxZoom = opts.MinZoom
	}

	v := &DraggableImageView{
		opts:       opts,
		rasterizer: r,
		logger:     logger,
		crop:       imaging.Crop,
	}
	v.layout()
	return v
}

// SetImage replaces the displayed image and refits it. A nil image clears the
// view and disables interaction.
func (v *DraggableImageView) SetImage(img image.Image) {
	v.img = img
	v.layout()
}

// Image returns the current image, or nil.
func (v *DraggableImageView) Image() image.Image {
	return v.img
}

// SetBounds records the bounds from a host layout pass and refits.
func (v *DraggableImageView) SetBounds(bounds geometry.Size) {
	v.bounds = bounds
	v.layout()
}

// Bounds returns the bounds from the last layout pass.
func (v *DraggableImageView) Bounds() geometry.Size {
	return v.bounds
}

// LayoutSubviews refits with the current bounds and image. Hosts call it on
// every layout pass even when nothing changed; the result is the same each time.
func (v *DraggableImageView) LayoutSubviews() {
	v.layout()
}

// SetInsets sets the crop insets. A nil value clears them, which is distinct
// from setting all-zero insets: only set insets route renders through the crop.
func (v *DraggableImageView) SetInsets(insets *geometry.EdgeInsets) error {
	if insets == nil {
		v.insets = nil
		return nil
	}
	if err := insets.Validate(); err != nil {
		return err
	}
	in := *insets
	v.insets = &in
	return nil
}

// Insets returns the current insets and whether any are set.
func (v *DraggableImageView) Insets() (geometry.EdgeInsets, bool) {
	if v.insets == nil {
		return geometry.EdgeInsets{}, false
	}
	return *v.insets, true
}

// Geometry returns the current displayed geometry.
func (v *DraggableImageView) Geometry() geometry.FitResult {
	return v.geom
}

// InteractionEnabled reports whether an image is loaded and fits the bounds.
func (v *DraggableImageView) InteractionEnabled() bool {
	return v.geom.Enabled
}

// FitErr returns the error from the last fit, or nil if it succeeded or no
// image is loaded.
func (v *DraggableImageView) FitErr() error {
	return v.fitErr
}

// layout refits the image and replaces the whole geometry at once.
func (v *DraggableImageView) layout() {
	var natural *geometry.Size
	if v.img != nil {
		s := geometry.SizeFromRect(v.img.Bounds())
		natural = &s
	}

	geom, err := geometry.Fit(v.bounds, natural)
	v.geom, v.fitErr = geom, err

	if err != nil {
		v.logger.Debug("image does not fit bounds",
			zap.Stringer("bounds", v.bounds),
			zap.Error(err))
		return
	}
	if geom.Enabled {
		v.logger.Debug("image fitted",
			zap.Stringer("bounds", v.bounds),
			zap.Stringer("displayed", geom.Displayed),
			zap.Stringer("axis", geom.Axis))
	}
}

// RenderResult is the outcome of a render.
type RenderResult struct {
	// Image is the final image: the cropped raster, or the raster itself.
	Image image.Image

	// Raster is the uncropped rasterized composition.
	Raster *Raster

	// Cropped reports whether Crop was applied.
	Cropped bool

	// Crop is the pixel rectangle that was applied, when Cropped is set.
	Crop geometry.PixelRect

	// Fallback holds the crop error when the insets left no pixels and the
	// uncropped raster was returned instead.
	Fallback error
}

// Render rasterizes the current composition and crops away the insets.
//
// Without insets the raster is returned unchanged. When the insets leave no
// area the raster is returned unchanged too, with the reason in
// RenderResult.Fallback. CropRect keeps the rectangle inside the raster, so a
// crop failure only comes from a raster whose pixels do not match its bounds;
// it is returned as an error.
func (v *DraggableImageView) Render() (*RenderResult, error) {
	if v.rasterizer == nil {
		return nil, errors.New("view has no rasterizer")
	}

	comp := Composition{
		Image:       v.img,
		ContentSize: v.geom.ContentSize,
		Offset:      v.geom.Offset,
	}
	raster, err := v.rasterizer.Rasterize(comp, v.bounds, v.opts.Opaque)
	if err != nil {
		return nil, fmt.Errorf("failed to rasterize view: %w", err)
	}

	result := &RenderResult{Image: raster.Image, Raster: raster}
	if v.insets == nil {
		return result, nil
	}

	rect, err := geometry.CropRect(raster.PixelSize(), raster.PointSize, *v.insets)
	if err != nil {
		v.logger.Warn("insets leave nothing to crop, returning uncropped render",
			zap.Stringer("pixels", raster.PixelSize()),
			zap.Stringer("points", raster.PointSize),
			zap.Error(err))
		result.Fallback = err
		return result, nil
	}

	cropped, err := v.crop(raster.Image, rect.Rectangle())
	if err != nil {
		return nil, fmt.Errorf("failed to crop render to %v: %w", rect, err)
	}

	result.Image = cropped
	result.Cropped = true
	result.Crop = rect
	return result, nil
}

// RenderComposite renders the view and returns only the final image.
func (v *DraggableImageView) RenderComposite() (image.Image, error) {
	result, err := v.Render()
	if err != nil {
		return nil, err
	}
	return result.Image, nil
}
