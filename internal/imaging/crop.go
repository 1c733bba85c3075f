package imaging

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ErrInvalidCropRect means a crop rectangle is empty or not inside the raster.
var ErrInvalidCropRect = errors.New("invalid crop rectangle")

// Crop extracts r from raster and returns it as a new image with its origin
// at (0,0).
//
// r is relative to the raster's top-left corner, so a raster whose bounds do
// not start at (0,0) is handled the same as one that does. The rectangle must
// be non-empty and lie fully inside the raster; it is never clamped.
//
// # Errors
//
//   - Returns an error wrapping ErrInvalidCropRect if r is empty
//   - Returns an error wrapping ErrInvalidCropRect if r extends past any edge
func Crop(raster image.Image, r image.Rectangle) (*image.NRGBA, error) {
	bounds := raster.Bounds()
	abs := r.Add(bounds.Min)

	if r.Empty() {
		return nil, fmt.Errorf("%w: empty region %v", ErrInvalidCropRect, r)
	}
	if !abs.In(bounds) {
		return nil, fmt.Errorf("%w: region %v outside raster %dx%d",
			ErrInvalidCropRect, r, bounds.Dx(), bounds.Dy())
	}

	return imaging.Crop(raster, abs), nil
}
