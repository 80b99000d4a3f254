// Package viewer implements the main loop: pointer input drives the camera
// frame, the cuboid edges are projected onto the screen plane, and the
// resulting 2D segments are stroked.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/wirebox/internal/engine/camera"
	"github.com/Faultbox/wirebox/internal/engine/input"
	"github.com/Faultbox/wirebox/internal/engine/projection"
	"github.com/Faultbox/wirebox/internal/engine/renderer"
	"github.com/Faultbox/wirebox/internal/engine/scene"
	"github.com/Faultbox/wirebox/internal/engine/window"
	"github.com/Faultbox/wirebox/internal/logger"
	"github.com/Faultbox/wirebox/pkg/geom"
)

// Config holds viewer configuration.
type Config struct {
	Title    string
	Width    int
	Height   int
	VSync    bool
	HalfA    float32
	HalfB    float32
	HalfC    float32
	ShowAxis bool
	Camera   camera.Config
}

// Viewer is the running application.
type Viewer struct {
	config   Config
	running  bool
	dragging bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.Camera
}

// New creates a viewer: window first (the GL context must exist before the
// renderer), then renderer, input and camera.
func New(cfg Config) (*Viewer, error) {
	logger.Info("initializing viewer",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
	)

	v := &Viewer{
		config: cfg,
	}

	var err error
	v.window, err = window.New(window.Config{
		Title:  cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
		VSync:  cfg.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	v.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Width,
		Height: cfg.Height,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.input = input.New()
	v.camera = camera.New(cfg.Camera)

	logger.Info("viewer initialized")
	return v, nil
}

// Run starts the main loop.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting viewer loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}
		v.handleEvents()

		v.render()
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleEvents dispatches the frame's input events to the camera.
func (v *Viewer) handleEvents() {
	for _, event := range v.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			v.renderer.Resize(event.Width, event.Height)

		case input.EventKeyDown:
			if event.Key == sdl.SCANCODE_ESCAPE {
				v.running = false
			}

		case input.EventMouseDown:
			if event.Button == sdl.BUTTON_LEFT {
				v.dragging = true
			}
			// Any click reports the 3D point under the pointer.
			picked := v.camera.PickWorld(geom.Vec2{
				X: float32(event.MouseX),
				Y: float32(event.MouseY),
			})
			logger.Debug("picked point on screen plane",
				zap.Int("x", event.MouseX),
				zap.Int("y", event.MouseY),
				zap.String("world", picked.String()),
			)

		case input.EventMouseUp:
			if event.Button == sdl.BUTTON_LEFT {
				v.dragging = false
			}

		case input.EventMouseMove:
			if v.dragging {
				v.camera.HandleDrag(float32(event.DeltaX), float32(event.DeltaY))
			}

		case input.EventMouseWheel:
			v.camera.HandleZoom(event.Scroll)
		}
	}
}

// render projects the cuboid through the current frame and strokes it.
func (v *Viewer) render() {
	plane := projection.PlaneOf(v.camera.Frame())

	var edges []geom.Segment3
	if v.config.ShowAxis {
		edges = scene.CuboidEdgesWithAxis(v.config.HalfA, v.config.HalfB, v.config.HalfC)
	} else {
		edges = scene.CuboidEdges(v.config.HalfA, v.config.HalfB, v.config.HalfC)
	}

	v.renderer.Begin()
	v.renderer.DrawSegments(plane.Segments(edges))
	v.renderer.End()
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
