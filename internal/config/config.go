// Package config handles application configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Scene    SceneConfig    `yaml:"scene"`
	Controls ControlsConfig `yaml:"controls"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// CameraConfig holds the initial projection.
type CameraConfig struct {
	FOV  float32 `yaml:"fov"` // Vertical, degrees
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
}

// SceneConfig holds the tunable scene behavior and the layout file.
type SceneConfig struct {
	Assets         string  `yaml:"assets"` // Root directory asset paths resolve against
	Layout         string  `yaml:"layout"` // Empty uses the built-in layout
	FadeStart      float32 `yaml:"fade_start"`
	FadeEnd        float32 `yaml:"fade_end"`
	ZBoundary      float32 `yaml:"z_boundary"`
	ZoomDeltaFOV   float32 `yaml:"zoom_delta_fov"`
	RippleDuration float32 `yaml:"ripple_duration"`
	RippleMaxScale float32 `yaml:"ripple_max_scale"`
}

// ControlsConfig holds input bindings.
type ControlsConfig struct {
	ZoomButton uint8 `yaml:"zoom_button"` // SDL button index: 1 left, 2 middle, 3 right
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		Camera: CameraConfig{
			FOV:  75,
			Near: 0.1,
			Far:  1000,
		},
		Scene: SceneConfig{
			Assets:         ".",
			FadeStart:      22,
			FadeEnd:        26,
			ZBoundary:      -186,
			ZoomDeltaFOV:   20,
			RippleDuration: 1,
			RippleMaxScale: 10,
		},
		Controls: ControlsConfig{
			ZoomButton: 3,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
