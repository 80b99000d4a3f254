// Package renderer draws 2D line segments with OpenGL.
package renderer

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/wirebox/internal/logger"
	"github.com/Faultbox/wirebox/pkg/geom"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer batches projected segments into a streaming VBO and strokes them
// as GL_LINES in pixel space.
type Renderer struct {
	config Config

	program    uint32
	viewportU  int32
	colorU     int32
	vao        uint32
	vbo        uint32
	vboCap     int
	lineVerts  []float32
	frameLines int
}

// styleColor maps a segment style tag to an RGB stroke color.
func styleColor(style string) [3]float32 {
	switch style {
	case "axis":
		return [3]float32{0.9, 0.3, 0.25}
	default:
		return [3]float32{0.85, 0.85, 0.9}
	}
}

// New creates a renderer.
// Must be called after the OpenGL context exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	// Flat 2D lines: no depth, dark background.
	gl.Disable(gl.DEPTH_TEST)
	gl.ClearColor(0.08, 0.09, 0.12, 1.0)

	var err error
	r.program, err = compileProgram(lineVertexShader, lineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.viewportU = uniformLocation(r.program, "uViewport")
	r.colorU = uniformLocation(r.program, "uColor")

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	r.frameLines = 0
}

// End finishes the current frame.
func (r *Renderer) End() {
	if r.frameLines > 0 {
		logger.Debug("frame drawn", zap.Int("lines", r.frameLines))
	}
}

// DrawSegments strokes the segments, rounded to the nearest integer pixel.
// Segments are batched by style so each distinct stroke color is one draw
// call.
func (r *Renderer) DrawSegments(segments []geom.Segment2) {
	if len(segments) == 0 {
		return
	}

	gl.UseProgram(r.program)
	gl.Uniform2f(r.viewportU, float32(r.config.Width), float32(r.config.Height))
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	drawn := map[string]bool{}
	for _, s := range segments {
		if drawn[s.Style] {
			continue
		}
		drawn[s.Style] = true
		r.drawBatch(segments, s.Style)
	}

	gl.BindVertexArray(0)
	r.frameLines += len(segments)
}

// drawBatch uploads and strokes every segment carrying the given style.
func (r *Renderer) drawBatch(segments []geom.Segment2, style string) {
	r.lineVerts = r.lineVerts[:0]
	for _, s := range segments {
		if s.Style != style {
			continue
		}
		r.lineVerts = append(r.lineVerts,
			math32.Round(s.Start.X), math32.Round(s.Start.Y),
			math32.Round(s.End.X), math32.Round(s.End.Y),
		)
	}
	if len(r.lineVerts) == 0 {
		return
	}

	size := len(r.lineVerts) * 4
	if size > r.vboCap {
		gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(r.lineVerts), gl.STREAM_DRAW)
		r.vboCap = size
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(r.lineVerts))
	}

	c := styleColor(style)
	gl.Uniform3f(r.colorU, c[0], c[1], c[2])
	gl.DrawArrays(gl.LINES, 0, int32(len(r.lineVerts)/2))
}
