// Package raster provides a software implementation of the view's host
// rasterization capability.
//
// It draws the same layer stack a mobile scroll view would: the scroll view
// background, the image view background sized to the content, and the image
// scaled to the content size, all shifted by the pan offset. Output is produced
// at a device scale factor, so a 320x568 point view at scale 2 renders to a
// 640x1136 pixel raster.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/draggable-image-view/internal/geometry"
	"github.com/ironsheep/draggable-image-view/internal/view"
)

// Options configures a Software rasterizer.
type Options struct {
	// Scale is the device pixel ratio. Values <= 0 mean 1.
	Scale float64

	// Background tints the whole view behind the content.
	Background color.NRGBA

	// ImageBackground tints the content area behind the image.
	ImageBackground color.NRGBA
}

// Software rasterizes compositions in memory.
type Software struct {
	opts Options
}

var _ view.Rasterizer = (*Software)(nil)

// New creates a software rasterizer.
func New(opts Options) *Software {
	if opts.Scale <= 0 || math.IsNaN(opts.Scale) || math.IsInf(opts.Scale, 0) {
		opts.Scale = 1
	}
	return &Software{opts: opts}
}

// Scale returns the device pixel ratio in use.
func (s *Software) Scale() float64 {
	return s.opts.Scale
}

// Rasterize draws c into a raster of bounds points at the configured scale.
// Pixel dimensions are rounded up so the raster always covers the bounds.
func (s *Software) Rasterize(c view.Composition, bounds geometry.Size, opaque bool) (*view.Raster, error) {
	if bounds.Empty() || !bounds.Finite() {
		return nil, fmt.Errorf("cannot rasterize bounds %v", bounds)
	}

	scale := s.opts.Scale
	pw := int(math.Ceil(bounds.W * scale))
	ph := int(math.Ceil(bounds.H * scale))

	var fill color.Color = color.Transparent
	if opaque {
		fill = color.Black
	}
	canvas := imaging.New(pw, ph, fill)

	if s.opts.Background.A > 0 {
		canvas = imaging.Overlay(canvas, imaging.New(pw, ph, s.opts.Background), image.Point{}, 1)
	}

	if c.Image != nil && !c.ContentSize.Empty() {
		cw := int(math.Round(c.ContentSize.W * scale))
		ch := int(math.Round(c.ContentSize.H * scale))
		pos := image.Pt(int(math.Round(-c.Offset.X*scale)), int(math.Round(-c.Offset.Y*scale)))

		if cw > 0 && ch > 0 {
			if s.opts.ImageBackground.A > 0 {
				canvas = imaging.Overlay(canvas, imaging.New(cw, ch, s.opts.ImageBackground), pos, 1)
			}
			scaled := transform.Resize(c.Image, cw, ch, transform.Linear)
			canvas = imaging.Overlay(canvas, scaled, pos, 1)
		}
	}

	return &view.Raster{Image: canvas, PointSize: bounds}, nil
}
