// Package config loads the host settings for the draggable image view.
//
// Settings come from built-in defaults, optionally overlaid by a TOML file,
// then by environment variables:
//
//	log_level    = "info"
//	scale_factor = 2.0
//	opaque       = false
//	min_zoom     = 1.0
//	max_zoom     = 2.0
//
//	[viewport]
//	width  = 320.0
//	height = 568.0
//
//	[tint]
//	background       = "#FF0000"
//	background_alpha = 0.4
//	image            = "#800080"
//	image_alpha      = 0.4
//
//	[demo]
//	image  = "/path/to/test1.png"
//	insets = { top = 30.0, left = 20.0, bottom = 30.0, right = 20.0 }
package config

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/ironsheep/draggable-image-view/internal/geometry"
	"github.com/ironsheep/draggable-image-view/internal/imaging"
)

// EnvLogLevel overrides the configured log level.
const EnvLogLevel = "DRAGVIEW_LOG_LEVEL"

// Config holds every host setting.
type Config struct {
	LogLevel    string   `toml:"log_level"`
	ScaleFactor float64  `toml:"scale_factor"`
	Opaque      bool     `toml:"opaque"`
	MinZoom     float64  `toml:"min_zoom"`
	MaxZoom     float64  `toml:"max_zoom"`
	Viewport    Viewport `toml:"viewport"`
	Tint        Tint     `toml:"tint"`
	Demo        Demo     `toml:"demo"`
}

// Viewport is the initial view size in points.
type Viewport struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Tint holds the debug background colors: red behind the view and purple
// behind the image by default. An empty color disables a tint.
type Tint struct {
	Background      string  `toml:"background"`
	BackgroundAlpha float64 `toml:"background_alpha"`
	Image           string  `toml:"image"`
	ImageAlpha      float64 `toml:"image_alpha"`
}

// Demo is the content the host screen shows at startup.
type Demo struct {
	Image  string               `toml:"image"`
	Insets *geometry.EdgeInsets `toml:"insets"`
}

// Default returns the settings of a 4-inch phone screen at 2x.
func Default() Config {
	return Config{
		LogLevel:    "info",
		ScaleFactor: 2,
		MinZoom:     1,
		MaxZoom:     2,
		Viewport:    Viewport{Width: 320, Height: 568},
		Tint: Tint{
			Background:      "#FF0000",
			BackgroundAlpha: 0.4,
			Image:           "#800080",
			ImageAlpha:      0.4,
		},
	}
}

// Load reads the TOML file at path over the defaults and applies environment
// overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := decode(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return errors.New(strict.String())
		}
		return err
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if !(c.ScaleFactor > 0) || math.IsInf(c.ScaleFactor, 0) {
		return fmt.Errorf("scale_factor must be positive, got %g", c.ScaleFactor)
	}
	if !(c.MinZoom > 0) || c.MaxZoom < c.MinZoom {
		return fmt.Errorf("zoom range [%g, %g] is invalid", c.MinZoom, c.MaxZoom)
	}
	if c.Viewport.Width < 0 || c.Viewport.Height < 0 {
		return fmt.Errorf("viewport %gx%g must not be negative", c.Viewport.Width, c.Viewport.Height)
	}
	if _, err := imaging.ParseTint(c.Tint.Background, c.Tint.BackgroundAlpha); err != nil {
		return fmt.Errorf("tint.background: %w", err)
	}
	if _, err := imaging.ParseTint(c.Tint.Image, c.Tint.ImageAlpha); err != nil {
		return fmt.Errorf("tint.image: %w", err)
	}
	if c.Demo.Insets != nil {
		if err := c.Demo.Insets.Validate(); err != nil {
			return fmt.Errorf("demo.insets: %w", err)
		}
	}
	return nil
}

// ViewportSize returns the viewport as a geometry size.
func (c Config) ViewportSize() geometry.Size {
	return geometry.SizeOf(c.Viewport.Width, c.Viewport.Height)
}
