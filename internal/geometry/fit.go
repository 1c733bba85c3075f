package geometry

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateFit means no cover-fit exists for the bounds and image size.
	ErrDegenerateFit = errors.New("no covering fit for bounds")

	// ErrDegenerateCrop means the insets leave no pixels to keep.
	ErrDegenerateCrop = errors.New("crop rectangle has no area")

	// ErrInvalidInsets means an inset is negative or not a finite number.
	ErrInvalidInsets = errors.New("invalid edge insets")
)

// AxisLock names the dimension held equal to the bounds during cover-fit.
type AxisLock int

const (
	// AxisNone means nothing is displayed.
	AxisNone AxisLock = iota
	// AxisWidthLocked means displayed width equals bounds width.
	AxisWidthLocked
	// AxisHeightLocked means displayed height equals bounds height.
	AxisHeightLocked
)

func (a AxisLock) String() string {
	switch a {
	case AxisWidthLocked:
		return "width"
	case AxisHeightLocked:
		return "height"
	default:
		return "none"
	}
}

// MarshalText encodes the lock by name for JSON results.
func (a AxisLock) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText decodes a lock name written by MarshalText.
func (a *AxisLock) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none":
		*a = AxisNone
	case "width":
		*a = AxisWidthLocked
	case "height":
		*a = AxisHeightLocked
	default:
		return fmt.Errorf("unknown axis lock %q", text)
	}
	return nil
}

// FitResult is the full displayed geometry produced by one fit pass.
//
// Every field is derived together; callers replace the whole value rather
// than patching single fields.
type FitResult struct {
	// Displayed is the image size after cover-fit scaling, at zoom 1.
	Displayed Size `json:"displayed"`

	// Axis is the dimension that drove the scale factor.
	Axis AxisLock `json:"axis"`

	// Aspect is Displayed.W / Displayed.H, or 0 when nothing is displayed.
	Aspect float64 `json:"aspect"`

	// ContentSize is the scrollable content extent: Displayed times Zoom.
	ContentSize Size `json:"content_size"`

	// Offset is the content (pan) offset.
	Offset Point `json:"offset"`

	// Zoom is the zoom factor applied on top of Displayed.
	Zoom float64 `json:"zoom"`

	// Enabled reports whether the host should accept interaction.
	Enabled bool `json:"enabled"`
}

// disabledFit is the geometry used when nothing can be displayed.
func disabledFit() FitResult {
	return FitResult{Axis: AxisNone, Zoom: 1}
}

// Fit computes the cover-fit geometry of an image of size natural in bounds.
//
// A nil natural size means no image is loaded: the result is disabled and the
// error is nil.
//
// Two candidates preserve the aspect ratio:
//
//	widthLocked  = (bounds.W, natural.H * bounds.W / natural.W)
//	heightLocked = (natural.W * bounds.H / natural.H, bounds.H)
//
// The first candidate whose free axis reaches the bounds wins, width-locked
// first. When the width-locked height equals bounds.H exactly, width-locked is
// chosen.
//
// On success the offset is the origin and the zoom is 1. When no candidate
// covers the bounds, the inputs are empty or not finite, or the chosen size or
// its aspect ratio overflows, the disabled geometry is returned with an error
// wrapping ErrDegenerateFit.
func Fit(bounds Size, natural *Size) (FitResult, error) {
	if natural == nil {
		return disabledFit(), nil
	}
	if !bounds.Finite() || !natural.Finite() {
		return disabledFit(), fmt.Errorf("%w: non-finite bounds %v or image %v", ErrDegenerateFit, bounds, *natural)
	}
	if natural.Empty() {
		return disabledFit(), fmt.Errorf("%w: empty image %v", ErrDegenerateFit, *natural)
	}
	if bounds.Empty() {
		return disabledFit(), fmt.Errorf("%w: empty bounds %v", ErrDegenerateFit, bounds)
	}

	widthLocked := Size{W: bounds.W, H: natural.H * bounds.W / natural.W}
	heightLocked := Size{W: natural.W * bounds.H / natural.H, H: bounds.H}

	var displayed Size
	var axis AxisLock
	switch {
	case widthLocked.H >= bounds.H:
		displayed, axis = widthLocked, AxisWidthLocked
	case heightLocked.W >= bounds.W:
		displayed, axis = heightLocked, AxisHeightLocked
	default:
		return disabledFit(), fmt.Errorf("%w: image %v in bounds %v", ErrDegenerateFit, *natural, bounds)
	}
	aspect := displayed.W / displayed.H
	if !displayed.Finite() || displayed.Empty() || !isFinite(aspect) {
		return disabledFit(), fmt.Errorf("%w: scaled size %v overflows for image %v in bounds %v",
			ErrDegenerateFit, displayed, *natural, bounds)
	}

	return FitResult{
		Displayed:   displayed,
		Axis:        axis,
		Aspect:      aspect,
		ContentSize: displayed,
		Offset:      Point{},
		Zoom:        1,
		Enabled:     true,
	}, nil
}

// Zoomed returns r with the zoom set to z and the content size rescaled.
// The offset is left for the caller to clamp.
func (r FitResult) Zoomed(z float64) FitResult {
	r.Zoom = z
	r.ContentSize = r.Displayed.Scale(z)
	return r
}
