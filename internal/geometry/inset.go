package geometry

import "fmt"

// CropRect maps point-space insets onto a raster and returns the pixel
// rectangle that excludes them.
//
// pixel is the raster's pixel size and point is the size in points it was
// rendered at. The horizontal factor pixel.W/point.W scales Left and Right;
// the vertical factor pixel.H/point.H scales Top and Bottom.
//
// An error wrapping ErrDegenerateCrop is returned when the rectangle would have
// no width or height, or when point has no area and no scale factor exists.
func CropRect(pixel, point Size, insets EdgeInsets) (PixelRect, error) {
	if point.Empty() || !point.Finite() || !pixel.Finite() {
		return PixelRect{}, fmt.Errorf("%w: raster %v pixels at %v points", ErrDegenerateCrop, pixel, point)
	}

	scaleX := pixel.W / point.W
	scaleY := pixel.H / point.H

	left := insets.Left * scaleX
	right := insets.Right * scaleX
	top := insets.Top * scaleY
	bottom := insets.Bottom * scaleY

	r := PixelRect{
		X:      left,
		Y:      top,
		Width:  pixel.W - left - right,
		Height: pixel.H - top - bottom,
	}
	if r.Width <= 0 || r.Height <= 0 {
		return PixelRect{}, fmt.Errorf("%w: insets %+v leave %gx%g of %v", ErrDegenerateCrop, insets, r.Width, r.Height, pixel)
	}
	if r.Rectangle().Empty() {
		return PixelRect{}, fmt.Errorf("%w: %v rounds to no pixels", ErrDegenerateCrop, r)
	}
	return r, nil
}

// ClampOffset limits an offset to the scrollable range of content inside a
// viewport, widened on each side by the insets. Content smaller than the
// viewport pins to the inset origin.
func ClampOffset(offset Point, content, viewport Size, insets EdgeInsets) Point {
	return Point{
		X: clampAxis(offset.X, -insets.Left, content.W-viewport.W+insets.Right),
		Y: clampAxis(offset.Y, -insets.Top, content.H-viewport.H+insets.Bottom),
	}
}

func clampAxis(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
