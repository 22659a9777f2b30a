package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	for _, p := range []*string{&cfg.Scene.Layout, &cfg.Scene.Assets} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", *p, err)
		}
		*p = expanded
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := homedir.Dir()
		return filepath.Join(home, "Library", "Application Support", "Skybridge")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Skybridge")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "skybridge")
		}
		home, _ := homedir.Dir()
		return filepath.Join(home, ".config", "skybridge")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing yaml: %w", err)
	}
	return nil
}

// Validate rejects settings the scene cannot run with.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("invalid camera fov %v", c.Camera.FOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("invalid clip planes near=%v far=%v", c.Camera.Near, c.Camera.Far)
	}
	if c.Scene.ZoomDeltaFOV >= c.Camera.FOV {
		return fmt.Errorf("zoom_delta_fov %v must be below fov %v", c.Scene.ZoomDeltaFOV, c.Camera.FOV)
	}
	if c.Scene.RippleDuration < 0 {
		return fmt.Errorf("negative ripple_duration %v", c.Scene.RippleDuration)
	}
	return nil
}

// FilePath returns the config file Load reads, or "" when defaults are used.
func FilePath() string {
	if p := ConfigPath(); p != "" {
		return p
	}
	return findConfigFile()
}
