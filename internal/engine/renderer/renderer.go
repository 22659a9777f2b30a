// Package renderer draws the scene with OpenGL.
package renderer

import (
	_ "embed"
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/skybridge/internal/engine/camera"
	"github.com/Faultbox/skybridge/internal/engine/mesh"
	"github.com/Faultbox/skybridge/internal/engine/scene"
	"github.com/Faultbox/skybridge/internal/engine/shader"
	"github.com/Faultbox/skybridge/internal/engine/texture"
	"github.com/Faultbox/skybridge/internal/logger"
	"github.com/Faultbox/skybridge/pkg/math"
)

//go:embed shaders/surface.vert
var surfaceVert string

//go:embed shaders/surface.frag
var surfaceFrag string

//go:embed shaders/screen.vert
var screenVert string

//go:embed shaders/screen.frag
var screenFrag string

// Untextured models are drawn as boxes in this tint.
var modelTint = [3]float32{0.55, 0.6, 0.68}

// Config holds renderer configuration.
type Config struct {
	Width  int // Drawable size in pixels
	Height int
}

// Overlay is the full-screen tint drawn over the scene while zoomed.
type Overlay struct {
	Visible bool
	Opacity float32
}

// LoadFunc returns the bytes of an asset.
type LoadFunc func(path string) ([]byte, error)

type glMesh struct {
	vao   uint32
	vbo   uint32
	count int32
	mode  uint32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	surface *shader.Program
	screen  *shader.Program

	quad glMesh
	disc glMesh
	cube glMesh

	textures   map[string]uint32
	white      uint32
	maxTexSize int

	log *zap.Logger
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		textures: make(map[string]uint32),
		log:      logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	var maxTex int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &maxTex)
	r.maxTexSize = int(maxTex)

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.Int("maxTextureSize", r.maxTexSize),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.FrontFace(gl.CCW)
	gl.CullFace(gl.BACK)
	gl.ClearColor(0.05, 0.07, 0.12, 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	if r.surface, err = shader.New(surfaceVert, surfaceFrag); err != nil {
		return nil, fmt.Errorf("surface program: %w", err)
	}
	if r.screen, err = shader.New(screenVert, screenFrag); err != nil {
		r.surface.Delete()
		return nil, fmt.Errorf("screen program: %w", err)
	}

	r.quad = newMesh(mesh.Quad(), gl.TRIANGLES)
	r.disc = newMesh(mesh.Disc(scene.DiscSegments), gl.TRIANGLE_FAN)
	r.cube = newMesh(mesh.Cube(), gl.TRIANGLES)
	r.white = r.upload(texture.Solid(color.RGBA{255, 255, 255, 255}))

	return r, nil
}

// LoadTextures decodes and uploads every path not loaded yet. Textures that
// fail to load are replaced by plain white and logged.
func (r *Renderer) LoadTextures(paths []string, load LoadFunc) {
	for _, p := range paths {
		if _, ok := r.textures[p]; ok {
			continue
		}

		data, err := load(p)
		if err != nil {
			r.log.Warn("texture missing, using white", zap.String("path", p), zap.Error(err))
			r.textures[p] = r.white
			continue
		}
		img, format, err := texture.Decode(data, r.maxTexSize)
		if err != nil {
			r.log.Warn("texture unreadable, using white", zap.String("path", p), zap.Error(err))
			r.textures[p] = r.white
			continue
		}

		texture.FlipVertical(img)
		r.textures[p] = r.upload(img)
		r.log.Debug("texture loaded",
			zap.String("path", p),
			zap.String("format", format),
			zap.Int("width", img.Rect.Dx()),
			zap.Int("height", img.Rect.Dy()))
	}
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")

	for _, m := range []*glMesh{&r.quad, &r.disc, &r.cube} {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
	}

	deleted := map[uint32]bool{r.white: true}
	gl.DeleteTextures(1, &r.white)
	for _, id := range r.textures {
		if !deleted[id] {
			deleted[id] = true
			gl.DeleteTextures(1, &id)
		}
	}

	r.surface.Delete()
	r.screen.Delete()
}

// Resize handles window resize. width and height are drawable pixels.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Draw renders one frame: sky, opaque models, blended surfaces back to
// front, then the overlay.
func (r *Renderer) Draw(sc *scene.Scene, cam *camera.Camera, overlay Overlay) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if sc.Background != "" {
		gl.DepthMask(false)
		r.drawScreen(r.textureFor(sc.Background), true, [3]float32{1, 1, 1}, 1)
		gl.DepthMask(true)
	}

	viewProj := cam.ViewProjection()
	dl := scene.BuildDrawList(sc.Objects(), cam.Position)

	r.surface.Use()
	r.surface.SetInt("uTexture", 0)
	for _, o := range dl.Opaque {
		r.drawObject(o, viewProj)
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)
	for _, o := range dl.Blended {
		r.drawObject(o, viewProj)
	}
	gl.DepthMask(true)
	gl.Disable(gl.CULL_FACE)

	if overlay.Visible && overlay.Opacity > 0 {
		gl.Disable(gl.DEPTH_TEST)
		r.drawScreen(r.white, false, [3]float32{0, 0, 0}, overlay.Opacity)
		gl.Enable(gl.DEPTH_TEST)
	}
	gl.Disable(gl.BLEND)
}

func (r *Renderer) drawObject(o *scene.Object, viewProj math.Mat4) {
	model := o.WorldMatrix()
	tint := o.Material.Color
	m := r.quad

	// Panels and ripples are one-sided; model boxes are not.
	if o.Kind == scene.KindModel {
		gl.Disable(gl.CULL_FACE)
	} else {
		gl.Enable(gl.CULL_FACE)
	}

	switch o.Kind {
	case scene.KindDisc:
		m = r.disc
	case scene.KindModel:
		size := o.Bounds.Max.Sub(o.Bounds.Min)
		if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
			return
		}
		center := o.Bounds.Min.Add(size.Scale(0.5))
		model = model.Mul(math.Translate(center)).Mul(math.Scale(size))
		m = r.cube
		if o.Material.Texture == "" {
			tint = modelTint
		}
	}

	textured := o.Material.Texture != ""
	tex := r.white
	if textured {
		tex = r.textureFor(o.Material.Texture)
	}

	r.surface.SetMat4("uMVP", viewProj.Mul(model))
	r.surface.SetBool("uTextured", textured)
	r.surface.SetVec3("uColor", tint)
	r.surface.SetFloat("uOpacity", o.Material.Opacity)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(m.mode, 0, m.count)
	gl.BindVertexArray(0)
}

func (r *Renderer) drawScreen(tex uint32, textured bool, tint [3]float32, opacity float32) {
	r.screen.Use()
	r.screen.SetInt("uTexture", 0)
	r.screen.SetBool("uTextured", textured)
	r.screen.SetVec3("uColor", tint)
	r.screen.SetFloat("uOpacity", opacity)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.BindVertexArray(r.quad.vao)
	gl.DrawArrays(r.quad.mode, 0, r.quad.count)
	gl.BindVertexArray(0)
}

// textureFor returns the uploaded texture for path, white if it was never loaded.
func (r *Renderer) textureFor(path string) uint32 {
	if id, ok := r.textures[path]; ok {
		return id
	}
	return r.white
}

func (r *Renderer) upload(img *image.RGBA) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id
}

func newMesh(data []float32, mode uint32) glMesh {
	m := glMesh{count: mesh.Count(data), mode: mode}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	stride := int32(mesh.Stride * 4)
	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	// UV attribute (location = 1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m
}
