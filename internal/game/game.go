// Package game runs the gallery: it opens the window, builds the scene and
// drives the input, update and render loop.
package game

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/skybridge/internal/assets"
	"github.com/Faultbox/skybridge/internal/config"
	"github.com/Faultbox/skybridge/internal/engine/camera"
	"github.com/Faultbox/skybridge/internal/engine/input"
	"github.com/Faultbox/skybridge/internal/engine/renderer"
	"github.com/Faultbox/skybridge/internal/engine/window"
	"github.com/Faultbox/skybridge/internal/gallery"
	"github.com/Faultbox/skybridge/internal/logger"
	"github.com/Faultbox/skybridge/internal/scenefile"
)

// Title is the window title.
const Title = "Skybridge"

// Parallel model loads.
const loadLimit = 4

// Game is the running application.
type Game struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	assets   *assets.Manager
	engine   *gallery.Engine
	ready    *scenefile.ReadyCounter

	loads   <-chan assets.Result
	reloads chan *config.Config
	cancel  context.CancelFunc

	log *zap.Logger
}

// New opens the window and builds the scene. Model loads start in the
// background; Run finishes them.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		config:  cfg,
		input:   input.New(),
		assets:  assets.NewManager(),
		reloads: make(chan *config.Config, 1),
		log:     logger.Named("game"),
	}

	g.log.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("assets", cfg.Scene.Assets),
	)

	layout := scenefile.DefaultLayout()
	if cfg.Scene.Layout != "" {
		l, err := scenefile.Load(cfg.Scene.Layout)
		if err != nil {
			return nil, fmt.Errorf("loading layout: %w", err)
		}
		layout = l
	}

	// Files next to a custom layout take priority over the shared asset root.
	roots := []string{cfg.Scene.Assets}
	if cfg.Scene.Layout != "" {
		roots = append(roots, filepath.Dir(cfg.Scene.Layout))
	}
	for _, root := range roots {
		if err := g.assets.AddRoot(root); err != nil {
			g.log.Warn("asset root skipped", zap.Error(err))
		}
	}

	built, err := scenefile.Build(layout)
	if err != nil {
		return nil, fmt.Errorf("building scene: %w", err)
	}

	// Window first, OpenGL context must exist before the renderer.
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		HighDPI:    true,
		Samples:    4,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	dw, dh := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{Width: dw, Height: dh})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	g.renderer.LoadTextures(layout.Textures(), g.assets.Load)

	w, h := g.window.GetSize()
	gcfg := cfg.Gallery()
	gcfg.Width, gcfg.Height = w, h
	cam := camera.New(cfg.Camera.FOV, float32(w)/float32(h), cfg.Camera.Near, cfg.Camera.Far)
	g.engine = gallery.New(gcfg, built.Scene, cam, built.Registry, built.Companion)

	g.engine.Rig().OverlayChanged.Subscribe(func(s gallery.OverlayState) {
		g.log.Debug("overlay", zap.Bool("visible", s.Visible))
	})

	awaited := layout.Awaited()
	g.ready = scenefile.NewReadyCounter(len(awaited))
	g.ready.Ready.Subscribe(func(n int) {
		g.log.Info("models loaded", zap.Int("count", n))
		g.engine.MarkReady()
	})
	if g.ready.IsReady() {
		g.engine.MarkReady()
	}

	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel
	g.loads = g.assets.LoadAsync(ctx, loadLimit, awaited...)
	g.watchConfig(ctx)

	g.log.Info("initialized", zap.Int("objects", built.Scene.Len()), zap.Int("awaiting", len(awaited)))
	return g, nil
}

// watchConfig reloads tuning from the config file while running.
func (g *Game) watchConfig(ctx context.Context) {
	path := config.FilePath()
	if path == "" {
		return
	}
	w, err := config.NewWatcher(path)
	if err != nil {
		g.log.Warn("config hot reload disabled", zap.Error(err))
		return
	}
	go func() {
		err := w.Run(ctx, func(c *config.Config) {
			// Keep only the newest pending reload.
			select {
			case <-g.reloads:
			default:
			}
			g.reloads <- c
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			g.log.Warn("config watcher stopped", zap.Error(err))
		}
	}()
}

// Run starts the main loop and returns when the window is closed.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	var frameBudget time.Duration
	if g.config.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(g.config.Graphics.FPSLimit)
	}

	g.log.Info("starting main loop")

	for g.running {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		if g.input.Update() {
			g.running = false
			break
		}
		for _, ev := range g.input.Events() {
			g.handle(ev)
		}

		g.drainLoads()
		g.drainReloads()

		g.engine.Frame(float32(dt))

		overlay := g.engine.Rig().Overlay()
		g.renderer.Draw(g.engine.Scene(), g.engine.Camera(), renderer.Overlay{
			Visible: overlay.Visible,
			Opacity: overlay.Opacity,
		})
		g.window.SwapBuffers()

		if frameBudget > 0 {
			if rest := frameBudget - time.Since(frameStart); rest > 0 {
				time.Sleep(rest)
			}
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps", zap.Int("count", frameCount), zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (g *Game) handle(ev input.Event) {
	switch ev.Type {
	case input.EventWindowResize:
		dw, dh := g.window.DrawableSize()
		g.renderer.Resize(dw, dh)
		g.engine.Resize(ev.Width, ev.Height)

	case input.EventKeyDown:
		switch ev.Key {
		case sdl.SCANCODE_ESCAPE:
			g.running = false
		case sdl.SCANCODE_RETURN, sdl.SCANCODE_SPACE, sdl.SCANCODE_KP_ENTER:
			g.engine.Begin()
		}

	case input.EventMouseDown:
		g.engine.HandleButton(ev.Button, true)

	case input.EventMouseUp:
		g.engine.HandleButton(ev.Button, false)
		if ev.Button == sdl.BUTTON_LEFT {
			res := g.engine.HandleClick(float32(ev.MouseX), float32(ev.MouseY))
			if res.Kind&gallery.ClickCycle != 0 {
				g.log.Debug("carousel cycled", zap.String("group", res.Group.Name()))
			}
		}

	case input.EventMouseWheel:
		g.engine.HandleWheel(ev.WheelY)
	}
}

// drainLoads consumes finished model loads without blocking. A failed load
// still counts, the model is then drawn as its bounding box.
func (g *Game) drainLoads() {
	for g.loads != nil {
		select {
		case res, ok := <-g.loads:
			if !ok {
				g.loads = nil
				return
			}
			if res.Err != nil {
				g.log.Warn("model load failed", zap.String("path", res.Path), zap.Error(res.Err))
			} else if !assets.IsModel(res.Data) {
				g.log.Warn("unexpected model format", zap.String("path", res.Path), zap.String("type", assets.Sniff(res.Data)))
			}
			g.ready.Done(res.Path)
		default:
			return
		}
	}
}

func (g *Game) drainReloads() {
	select {
	case c := <-g.reloads:
		g.engine.Retune(c.Gallery())
	default:
	}
}

// Close releases every resource.
func (g *Game) Close() {
	g.log.Info("closing")

	if g.cancel != nil {
		g.cancel()
	}
	if g.assets != nil {
		g.assets.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
