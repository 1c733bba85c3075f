package imaging

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseTint parses a "#RRGGBB" (or "#RGB") color and applies alpha, which
// ranges from 0 (transparent) to 1 (opaque).
//
// An empty hex string yields the fully transparent color, meaning "no tint".
func ParseTint(hex string, alpha float64) (color.NRGBA, error) {
	if hex == "" {
		return color.NRGBA{}, nil
	}
	if alpha < 0 || alpha > 1 {
		return color.NRGBA{}, fmt.Errorf("tint alpha %g outside [0,1]", alpha)
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid tint color %q: %w", hex, err)
	}

	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}, nil
}
