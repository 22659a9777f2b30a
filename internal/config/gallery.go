package config

import "github.com/Faultbox/skybridge/internal/gallery"

// Gallery returns the core tuning with the configured overrides applied.
func (c *Config) Gallery() gallery.Config {
	g := gallery.DefaultConfig()

	g.Fade = gallery.Fade{Start: c.Scene.FadeStart, End: c.Scene.FadeEnd}
	g.Rig.ZBoundary = c.Scene.ZBoundary
	g.Rig.ZoomDeltaFOV = c.Scene.ZoomDeltaFOV
	g.Ripple = gallery.RippleConfig{
		Duration: c.Scene.RippleDuration,
		MaxScale: c.Scene.RippleMaxScale,
	}
	if c.Controls.ZoomButton != 0 {
		g.ZoomButton = c.Controls.ZoomButton
	}
	g.Width = c.Graphics.Width
	g.Height = c.Graphics.Height

	return g
}
