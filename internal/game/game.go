// Package game runs the frame loop that drives the flight camera over the ground plane.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/groundplane/internal/config"
	"github.com/Faultbox/groundplane/internal/engine/camera"
	"github.com/Faultbox/groundplane/internal/engine/debug"
	"github.com/Faultbox/groundplane/internal/engine/input"
	"github.com/Faultbox/groundplane/internal/engine/renderer"
	"github.com/Faultbox/groundplane/internal/engine/terrain"
	"github.com/Faultbox/groundplane/internal/engine/window"
	"github.com/Faultbox/groundplane/internal/logger"
	"github.com/Faultbox/groundplane/pkg/math"
)

// Game is the main application instance.
type Game struct {
	config  *config.Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	ground    *terrain.MeshBuffers
	cam       *camera.FlyCam
	transform camera.Transform
	stats     *frameStats
	shots     *debug.Capturer
}

// New creates the window, renderer and scene.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		config: cfg,
		log:    logger.Named("game"),
	}

	g.log.Info("initializing",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	// Create window (this also creates OpenGL context)
	var err error
	g.window, err = window.New(window.Config{
		Title:     cfg.Window.Title,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Resizable: cfg.Window.Resizable,
		VSync:     cfg.Window.VSync,
		MSAA:      cfg.Window.MSAA,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	g.renderer, err = renderer.New(renderer.Config{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		FOV:        cfg.Window.FOV,
		MSAA:       cfg.Window.MSAA,
		Wireframe:  cfg.Window.Wireframe,
		ClearColor: cfg.Window.ClearColor,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	start := time.Now()
	g.ground = terrain.BuildPlane(cfg.Terrain.Size, cfg.Terrain.Segments)
	g.log.Debug("ground plane built",
		zap.Float32("size", cfg.Terrain.Size),
		zap.Uint32("segments", cfg.Terrain.Segments),
		zap.Int("vertices", g.ground.VertexCount()),
		zap.Duration("took", time.Since(start)),
	)
	if err := g.renderer.UploadMesh(g.ground); err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to upload ground: %w", err)
	}

	g.input = input.New(nil)
	g.cam = newFlyCam(cfg.Camera)
	g.transform = camera.NewTransform(math.Vec3{
		X: cfg.Camera.StartPosition[0],
		Y: cfg.Camera.StartPosition[1],
		Z: cfg.Camera.StartPosition[2],
	})
	g.stats = newFrameStats(cfg.Logging.DiagnosticsInterval)
	g.shots = debug.NewCapturer(cfg.Window.ScreenshotDir, "groundplane")

	g.log.Info("initialized")
	return g, nil
}

// newFlyCam builds a controller from the configured tunables.
func newFlyCam(cfg config.CameraConfig) *camera.FlyCam {
	cam := camera.DefaultFlyCam()
	cam.Acceleration = cfg.Acceleration
	cam.Friction = cfg.Friction
	cam.TopSpeed = cfg.TopSpeed
	cam.Sensitivity = cfg.Sensitivity
	return cam
}

// Run starts the main loop. It returns when the window is closed.
func (g *Game) Run() error {
	g.running = true
	g.window.SetCursorCaptured(true)

	lastTime := time.Now()
	g.log.Info("starting main loop")

	for g.running {
		now := time.Now()
		elapsed := now.Sub(lastTime)
		lastTime = now

		frame := g.input.Poll()
		g.handle(frame)
		if !g.running {
			break
		}

		g.update(frame, float32(elapsed.Seconds()))

		g.renderer.Render(g.transform.ViewMatrix())
		if frame.Screenshot {
			g.screenshot()
		}
		g.window.SwapBuffers()

		if g.stats.add(elapsed) {
			g.logDiagnostics()
		}
	}

	return nil
}

// handle reacts to window and mode events in a frame.
func (g *Game) handle(frame input.Frame) {
	if frame.Quit {
		g.running = false
		return
	}
	if frame.Resized {
		g.renderer.Resize(frame.Width, frame.Height)
	}
	if frame.ToggleWireframe {
		g.renderer.SetWireframe(!g.renderer.Wireframe())
	}

	switch {
	case frame.Release && g.window.CursorCaptured():
		g.window.SetCursorCaptured(false)
	case frame.Release:
		// Escape with the cursor already free quits.
		g.running = false
	case frame.Capture && !g.window.CursorCaptured():
		g.window.SetCursorCaptured(true)
	}
}

// update advances the camera by one tick. Pointer motion only steers while the
// cursor is captured.
func (g *Game) update(frame input.Frame, dt float32) {
	var motion math.Vec2
	if g.window.CursorCaptured() {
		motion = frame.Motion
	}
	g.cam.Tick(motion, frame.Keys, dt, &g.transform)
}

// screenshot saves the frame just rendered. Failures are logged, not fatal.
func (g *Game) screenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	path, err := g.shots.SaveRGBA(pixels, w, h)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}

func (g *Game) logDiagnostics() {
	pos := g.transform.Position
	xyz := pos.Array()
	g.log.Debug("frame diagnostics",
		zap.Float64("fps", g.stats.fps()),
		zap.Float64("frame_ms", g.stats.avgFrameMS()),
		zap.Duration("worst", g.stats.worst),
		zap.Float32s("position", xyz[:]),
		zap.Float32("speed", g.cam.Speed()),
		zap.Float32("yaw", g.cam.Yaw),
		zap.Float32("pitch", g.cam.Pitch),
		zap.Float32("ground_height", g.ground.HeightAt(pos.X, pos.Z)),
	)
	g.stats.reset()
}

// Close cleans up resources.
func (g *Game) Close() {
	g.log.Info("closing")

	if g.renderer != nil {
		g.renderer.Close()
		g.renderer = nil
	}
	if g.window != nil {
		g.window.Close()
		g.window = nil
	}
}
