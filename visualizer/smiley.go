// This file is part of musicvis.
//
// musicvis is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// musicvis is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with musicvis.  If not, see <https://www.gnu.org/licenses/>.

package visualizer

import (
	_ "embed"
	"errors"
	"fmt"
	"math"

	"github.com/jetsetilly/musicvis/audio"
	"github.com/jetsetilly/musicvis/gfx"
	"github.com/jetsetilly/musicvis/gfx/framebuffer"
	"github.com/jetsetilly/musicvis/logger"
)

//go:embed shaders/smiley.vert
var smileyVertexShader string

//go:embed shaders/smiley.frag
var smileyFragmentShader string

// ErrAlreadySetup is returned by Setup() if it has already succeeded.
var ErrAlreadySetup = errors.New("smiley: already set up")

// ErrNotSetup is returned by RenderToTexture() if Setup() has not succeeded.
var ErrNotSetup = errors.New("smiley: not set up")

// the buckets of the audio frame summed to produce the amplitude. 400Hz to
// 2kHz inclusive
const (
	amplitudeFrom = 4
	amplitudeTo   = 19
)

// the eyes pulse by advancing the phase every frame. the phase wraps at
// phaseWrap, which is close to but not exactly 2π
const (
	phaseStep = 0.1
	phaseWrap = 3.14 * 2.0
)

// number of vertices in the quad covering the offscreen target
const numVertices = 6

// components per vertex (x and y)
const vertexSize = 2

// Smiley implements the gfx.Visualizer interface.
type Smiley struct {
	ready bool

	program gfx.Program
	fb      *framebuffer.Single
	vbo     gfx.Buffer
	vao     gfx.VertexArray

	// attribute and uniform locations
	position    int32
	amplitudeID int32
	phaseID     int32

	vertices  []float32
	amplitude float32
	phase     float32
}

// NewSmiley is the preferred method of initialisation for the Smiley type.
func NewSmiley() *Smiley {
	return &Smiley{}
}

// QuadVertices returns the two triangles that cover the whole of the
// offscreen target. A new slice is returned on every call.
func QuadVertices() []float32 {
	const size = 1.0
	return []float32{
		-size, -size,
		-size, size,
		size, size,
		-size, -size,
		size, -size,
		size, size,
	}
}

// Amplitude returns the amplitude calculated by the most recent Update().
func (sm *Smiley) Amplitude() float32 {
	return sm.amplitude
}

// Phase returns the phase of the eyes after the most recent Update().
func (sm *Smiley) Phase() float32 {
	return sm.phase
}

// Setup implements the gfx.Visualizer interface.
func (sm *Smiley) Setup(ctx gfx.Context, size int32) error {
	if sm.ready {
		return ErrAlreadySetup
	}

	prg, err := gfx.CompileProgram(ctx, smileyVertexShader, smileyFragmentShader)
	if err != nil {
		return fmt.Errorf("smiley: %w", err)
	}
	sm.program = prg

	sm.position = ctx.AttribLocation(sm.program, "position")
	sm.amplitudeID = ctx.UniformLocation(sm.program, "amplitude")
	sm.phaseID = ctx.UniformLocation(sm.program, "phase")

	sm.fb = framebuffer.NewSingle(ctx, true)
	sm.fb.Setup(ctx, size, size)

	sm.vbo = ctx.CreateBuffer()

	if err := ctx.Err(); err != nil {
		sm.Destroy(ctx)
		return fmt.Errorf("smiley: %w", err)
	}

	sm.ready = true
	logger.Logf(logger.Allow, "smiley", "ready (%dx%d)", size, size)

	return nil
}

// Update implements the gfx.Visualizer interface.
func (sm *Smiley) Update(frame audio.Frame) {
	sm.vertices = QuadVertices()

	sm.amplitude = float32(math.Min(1.0, math.Max(0.0, float64(frame.Sum(amplitudeFrom, amplitudeTo)))))

	sm.phase += phaseStep
	if sm.phase >= phaseWrap {
		sm.phase -= phaseWrap
	}
}

// RenderToTexture implements the gfx.Visualizer interface.
func (sm *Smiley) RenderToTexture(ctx gfx.Context) (gfx.Texture, error) {
	if !sm.ready {
		return 0, ErrNotSetup
	}

	ctx.UseProgram(sm.program)

	ctx.BindBuffer(sm.vbo)
	ctx.BufferData(sm.vertices)

	if ctx.SupportsVertexArrays() {
		if sm.vao == 0 {
			sm.vao = ctx.CreateVertexArray()
		}
		ctx.BindVertexArray(sm.vao)
	}

	ctx.VertexAttribPointer(sm.position, vertexSize, vertexSize*4)
	ctx.EnableVertexAttribArray(sm.position)

	ctx.Uniform1f(sm.amplitudeID, sm.amplitude)
	ctx.Uniform1f(sm.phaseID, sm.phase)

	tex := sm.fb.Process(ctx, func() {
		ctx.DrawBuffers()
		ctx.DrawTriangles(0, numVertices)
	})

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("smiley: %w", err)
	}

	return tex, nil
}

// Destroy implements the gfx.Visualizer interface.
func (sm *Smiley) Destroy(ctx gfx.Context) {
	if sm.vao != 0 {
		ctx.DeleteVertexArray(sm.vao)
		sm.vao = 0
	}
	if sm.vbo != 0 {
		ctx.DeleteBuffer(sm.vbo)
		sm.vbo = 0
	}
	if sm.fb != nil {
		sm.fb.Destroy(ctx)
		sm.fb = nil
	}
	if sm.program != 0 {
		ctx.DeleteProgram(sm.program)
		sm.program = 0
	}
	sm.ready = false
}
