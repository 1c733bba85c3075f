package geometry

import (
	"fmt"
	"image"
	"math"
)

// Size is a width and height, in points or pixels depending on context.
type Size struct {
	W float64 `json:"width"`
	H float64 `json:"height"`
}

// SizeOf returns a Size with the given dimensions.
func SizeOf(w, h float64) Size {
	return Size{W: w, H: h}
}

// SizeFromRect returns the pixel dimensions of r.
func SizeFromRect(r image.Rectangle) Size {
	return Size{W: float64(r.Dx()), H: float64(r.Dy())}
}

// Empty reports whether s has zero area.
func (s Size) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// Finite reports whether both dimensions are finite numbers.
func (s Size) Finite() bool {
	return isFinite(s.W) && isFinite(s.H)
}

// Scale returns s with both dimensions multiplied by k.
func (s Size) Scale(k float64) Size {
	return Size{W: s.W * k, H: s.H * k}
}

// Covers reports whether s is at least as large as other on both axes.
func (s Size) Covers(other Size) bool {
	return s.W >= other.W && s.H >= other.H
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.W, s.H)
}

// Point is a position in point space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// EdgeInsets are point-space distances from each edge of a view.
//
// The zero value is a valid set of insets that crops nothing. Whether insets
// are set at all is tracked by the owner, not by this type.
type EdgeInsets struct {
	Top    float64 `json:"top" toml:"top"`
	Left   float64 `json:"left" toml:"left"`
	Bottom float64 `json:"bottom" toml:"bottom"`
	Right  float64 `json:"right" toml:"right"`
}

// Validate checks that every inset is finite and non-negative.
func (e EdgeInsets) Validate() error {
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"top", e.Top},
		{"left", e.Left},
		{"bottom", e.Bottom},
		{"right", e.Right},
	} {
		if !isFinite(v.val) || v.val < 0 {
			return fmt.Errorf("%w: %s inset %g", ErrInvalidInsets, v.name, v.val)
		}
	}
	return nil
}

// Horizontal returns Left + Right.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns Top + Bottom.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

// PixelRect is a crop rectangle in pixel space, relative to the raster origin.
//
// Values stay fractional until Rectangle snaps them, so the scale math can be
// checked exactly.
type PixelRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rectangle snaps the left/top and right/bottom edges to the nearest pixel.
func (r PixelRect) Rectangle() image.Rectangle {
	x0 := int(math.Round(r.X))
	y0 := int(math.Round(r.Y))
	x1 := int(math.Round(r.X + r.Width))
	y1 := int(math.Round(r.Y + r.Height))
	return image.Rect(x0, y0, x1, y1)
}

func (r PixelRect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
