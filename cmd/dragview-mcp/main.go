package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ironsheep/draggable-image-view/internal/config"
	"github.com/ironsheep/draggable-image-view/internal/imaging"
	"github.com/ironsheep/draggable-image-view/internal/logging"
	"github.com/ironsheep/draggable-image-view/internal/raster"
	"github.com/ironsheep/draggable-image-view/internal/server"
	"github.com/ironsheep/draggable-image-view/internal/view"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	var configPath string

	// Handle --version, --help and --config
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("dragview-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage()
			return
		case "--config", "-c":
			if len(os.Args) < 3 {
				fmt.Fprintln(os.Stderr, "--config requires a file path")
				os.Exit(2)
			}
			configPath = os.Args[2]
		default:
			fmt.Fprintf(os.Stderr, "unknown argument %q (see --help)\n", os.Args[1])
			os.Exit(2)
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dragview-mcp: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr (stdout is for MCP protocol)
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dragview-mcp: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	logger.Debug("starting",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("commit", GitCommit))

	v, err := newView(cfg, logger)
	if err != nil {
		logger.Fatal("failed to set up view", zap.Error(err))
	}

	srv := server.New(v, logger)
	if err := srv.Run(); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

// newView builds the view the way the host screen does at startup: sized to
// the viewport, with the demo image and insets applied when configured.
func newView(cfg config.Config, logger *zap.Logger) (*view.DraggableImageView, error) {
	bg, err := imaging.ParseTint(cfg.Tint.Background, cfg.Tint.BackgroundAlpha)
	if err != nil {
		return nil, err
	}
	imgBg, err := imaging.ParseTint(cfg.Tint.Image, cfg.Tint.ImageAlpha)
	if err != nil {
		return nil, err
	}

	r := raster.New(raster.Options{
		Scale:           cfg.ScaleFactor,
		Background:      bg,
		ImageBackground: imgBg,
	})
	v := view.New(view.Options{
		MinZoom: cfg.MinZoom,
		MaxZoom: cfg.MaxZoom,
		Opaque:  cfg.Opaque,
	}, r, logger)
	v.SetBounds(cfg.ViewportSize())

	if cfg.Demo.Insets != nil {
		if err := v.SetInsets(cfg.Demo.Insets); err != nil {
			return nil, err
		}
	}

	if cfg.Demo.Image != "" {
		img, info, err := imaging.LoadImageInfo(cfg.Demo.Image)
		if err != nil {
			// The host keeps running without an image.
			logger.Warn("demo image not loaded", zap.String("path", cfg.Demo.Image), zap.Error(err))
		} else {
			v.SetImage(img)
			logger.Info("demo image loaded",
				zap.String("path", cfg.Demo.Image),
				zap.Int("width", info.Width),
				zap.Int("height", info.Height),
				zap.Bool("interaction_enabled", v.InteractionEnabled()))
		}
	}

	return v, nil
}

func printUsage() {
	fmt.Println("dragview-mcp - MCP host for a draggable, zoomable image view")
	fmt.Println()
	fmt.Println("Usage: dragview-mcp [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v        Print version information")
	fmt.Println("  --help, -h           Print this help message")
	fmt.Println("  --config, -c <path>  Load settings from a TOML file")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Printf("  %s=debug    Override the configured log level\n", config.EnvLogLevel)
	fmt.Println()
	fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}
