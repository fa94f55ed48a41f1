// Package renderer draws the ground plane with OpenGL.
package renderer

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/groundplane/internal/engine/lighting"
	"github.com/Faultbox/groundplane/internal/engine/renderer/shaders"
	"github.com/Faultbox/groundplane/internal/engine/shader"
	"github.com/Faultbox/groundplane/internal/engine/terrain"
	"github.com/Faultbox/groundplane/internal/logger"
	"github.com/Faultbox/groundplane/pkg/math"
)

const (
	nearPlane = 0.05
	farPlane  = 1000.0
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	FOV        float32 // vertical, degrees
	MSAA       int
	Wireframe  bool
	ClearColor [3]uint8
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	program uint32

	// Uniform locations
	locViewProj   int32
	locModel      int32
	locLightPos   int32
	locLightColor int32
	locAmbient    int32
	locBaseColor  int32
	locWireframe  int32

	// Ground mesh
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	light     lighting.PointLight
	wireframe bool
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:    cfg,
		log:       logger.Named("renderer"),
		light:     lighting.DefaultPointLight(),
		wireframe: cfg.Wireframe,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	if cfg.MSAA > 1 {
		gl.Enable(gl.MULTISAMPLE)
	}

	bg := lighting.ColorFromRGB8(cfg.ClearColor)
	gl.ClearColor(bg[0], bg[1], bg[2], 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	program, err := shader.CompileProgram(shaders.GroundVertexShader, shaders.GroundFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("ground shader: %w", err)
	}
	r.program = program

	r.locViewProj = shader.GetUniform(program, "uViewProj")
	r.locModel = shader.GetUniform(program, "uModel")
	r.locLightPos = shader.GetUniform(program, "uLightPos")
	r.locLightColor = shader.GetUniform(program, "uLightColor")
	r.locAmbient = shader.GetUniform(program, "uAmbient")
	r.locBaseColor = shader.GetUniform(program, "uBaseColor")
	r.locWireframe = shader.GetUniform(program, "uWireframe")

	return r, nil
}

// UploadMesh replaces the ground geometry. A mesh without triangles clears it.
func (r *Renderer) UploadMesh(mesh *terrain.MeshBuffers) error {
	if mesh.Topology != terrain.TriangleList {
		return fmt.Errorf("unsupported topology %s", mesh.Topology)
	}

	r.clearMesh()
	if mesh.Empty() {
		r.log.Warn("ground mesh has no triangles, nothing to draw",
			zap.Int("vertices", mesh.VertexCount()))
		return nil
	}

	vertices := mesh.Interleave()
	if len(mesh.Indices) > int(^uint32(0)>>1) {
		return errors.New("index buffer too large")
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	vertexSize := int(unsafe.Sizeof(terrain.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*vertexSize, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)

	// Tangent (location 2)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	// TexCoord (location 3)
	gl.VertexAttribPointerWithOffset(3, 2, gl.FLOAT, false, int32(vertexSize), 9*4)
	gl.EnableVertexAttribArray(3)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	r.indexCount = int32(len(mesh.Indices))

	r.log.Info("ground mesh uploaded",
		zap.Int("vertices", len(vertices)),
		zap.Int("triangles", mesh.TriangleCount()),
	)
	return nil
}

// Render draws one frame as seen through view.
func (r *Renderer) Render(view math.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if r.vao == 0 {
		return
	}

	viewProj := r.projection().Mul(view)
	model := math.Identity()
	lightPos := r.light.Position
	radiance := r.light.Radiance()

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locViewProj, 1, false, viewProj.Ptr())
	gl.UniformMatrix4fv(r.locModel, 1, false, model.Ptr())
	gl.Uniform3f(r.locLightPos, lightPos.X, lightPos.Y, lightPos.Z)
	gl.Uniform3f(r.locLightColor, radiance[0], radiance[1], radiance[2])
	gl.Uniform3f(r.locAmbient, lighting.DefaultAmbient[0], lighting.DefaultAmbient[1], lighting.DefaultAmbient[2])
	gl.Uniform3f(r.locBaseColor, 0.62, 0.58, 0.52)

	if r.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		gl.Uniform1i(r.locWireframe, 1)
	} else {
		gl.Uniform1i(r.locWireframe, 0)
	}

	gl.BindVertexArray(r.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)

	if r.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// SetWireframe switches between filled and line rendering.
func (r *Renderer) SetWireframe(on bool) {
	r.wireframe = on
	r.log.Debug("wireframe", zap.Bool("enabled", on))
}

// Wireframe reports whether line rendering is active.
func (r *Renderer) Wireframe() bool {
	return r.wireframe
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.clearMesh()
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}

func (r *Renderer) projection() math.Mat4 {
	aspect := float32(1)
	if r.config.Height > 0 {
		aspect = float32(r.config.Width) / float32(r.config.Height)
	}
	return math.Perspective(math.Radians(r.config.FOV), aspect, nearPlane, farPlane)
}

func (r *Renderer) clearMesh() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	r.indexCount = 0
}
