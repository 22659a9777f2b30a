package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagLayout     = flag.String("layout", "", "Path to scene layout file")
	flagAssets     = flag.String("assets", "", "Asset root directory")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagFOV        = flag.Float64("fov", 0, "Camera field of view in degrees")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagLayout != "" {
		cfg.Scene.Layout = *flagLayout
	}
	if *flagAssets != "" {
		cfg.Scene.Assets = *flagAssets
	}
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagFOV > 0 {
		cfg.Camera.FOV = float32(*flagFOV)
	}
}
