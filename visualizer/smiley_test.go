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

package visualizer_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/musicvis/audio"
	"github.com/jetsetilly/musicvis/gfx"
	"github.com/jetsetilly/musicvis/gfx/gfxtest"
	"github.com/jetsetilly/musicvis/screen"
	"github.com/jetsetilly/musicvis/test"
	"github.com/jetsetilly/musicvis/visualizer"
)

func frameWithBuckets(from int, to int, v float32) audio.Frame {
	f := audio.NewFrame()
	for i := from; i <= to; i++ {
		f.HundredHzBuckets[i] = v
	}
	return f
}

func TestQuadVertices(t *testing.T) {
	expected := []float32{-1, -1, -1, 1, 1, 1, -1, -1, 1, -1, 1, 1}

	q := visualizer.QuadVertices()
	test.DemandEquality(t, len(q), len(expected))
	for i := range q {
		test.ExpectEquality(t, q[i], expected[i], i)
	}

	// a new slice every time
	q[0] = 100
	test.ExpectEquality(t, visualizer.QuadVertices()[0], float32(-1))
}

func TestAmplitude(t *testing.T) {
	sm := visualizer.NewSmiley()

	sm.Update(audio.NewFrame())
	test.ExpectEquality(t, sm.Amplitude(), float32(0.0))

	sm.Update(frameWithBuckets(4, 19, 0.01))
	test.ExpectApproximate(t, sm.Amplitude(), 0.16, 0.0001)

	// bands outside of 4 to 19 are ignored
	sm.Update(frameWithBuckets(0, 3, 1.0))
	test.ExpectEquality(t, sm.Amplitude(), float32(0.0))
	sm.Update(frameWithBuckets(20, 199, 1.0))
	test.ExpectEquality(t, sm.Amplitude(), float32(0.0))

	// sixteen bands summing to 5.0 are clamped
	sm.Update(frameWithBuckets(4, 19, 5.0/16.0))
	test.ExpectEquality(t, sm.Amplitude(), float32(1.0))

	// negative sums are clamped
	sm.Update(frameWithBuckets(4, 19, -1.0))
	test.ExpectEquality(t, sm.Amplitude(), float32(0.0))

	// a short frame counts the missing bands as zero
	sm.Update(audio.Frame{HundredHzBuckets: []float32{0, 0, 0, 0, 0.25, 0.25}})
	test.ExpectApproximate(t, sm.Amplitude(), 0.5, 0.0001)
	sm.Update(audio.Frame{})
	test.ExpectEquality(t, sm.Amplitude(), float32(0.0))
}

func TestPhase(t *testing.T) {
	sm := visualizer.NewSmiley()
	test.ExpectEquality(t, sm.Phase(), float32(0.0))

	sm.Update(audio.NewFrame())
	test.ExpectApproximate(t, sm.Phase(), 0.1, 0.00001)

	// phase advances by 0.1 and wraps at 6.28, always remaining in the range
	// [0, 6.28)
	prev := sm.Phase()
	var wraps int
	for i := 0; i < 1000; i++ {
		sm.Update(audio.NewFrame())
		p := sm.Phase()
		if !test.ExpectSuccess(t, p >= 0 && p < 6.28, i) {
			return
		}
		if p < prev {
			wraps++
			test.ExpectApproximate(t, p, prev+0.1-6.28, 0.0001, i)
		} else {
			test.ExpectApproximate(t, p, prev+0.1, 0.0001, i)
		}
		prev = p
	}
	test.ExpectEquality(t, wraps, 15)
}

func TestSetup(t *testing.T) {
	ctx := gfxtest.NewContext()
	sm := visualizer.NewSmiley()

	test.ExpectSuccess(t, sm.Setup(ctx, 256))
	test.ExpectEquality(t, ctx.Count("LinkProgram"), 1)
	test.ExpectEquality(t, ctx.Count("CreateTexture 256 256"), 1)
	test.ExpectEquality(t, ctx.Count("CreateBuffer"), 1)
	test.ExpectSuccess(t, strings.Contains(ctx.Source(gfx.StageVertex), "in vec2 position"))
	test.ExpectSuccess(t, strings.Contains(ctx.Source(gfx.StageFragment), "uniform float amplitude"))

	// second setup is refused and nothing is recompiled
	err := sm.Setup(ctx, 256)
	test.ExpectSuccess(t, errors.Is(err, visualizer.ErrAlreadySetup))
	test.ExpectEquality(t, ctx.Count("CompileShader"), 2)
	test.ExpectEquality(t, ctx.Count("LinkProgram"), 1)
}

func TestSetupShaderFailure(t *testing.T) {
	ctx := gfxtest.NewContext()
	ctx.CompileFailure[gfx.StageFragment] = "0:1(1): error: bad"
	sm := visualizer.NewSmiley()

	err := sm.Setup(ctx, 256)

	var shErr *gfx.ShaderError
	test.DemandSuccess(t, errors.As(err, &shErr))
	test.ExpectEquality(t, shErr.Log, "0:1(1): error: bad")

	// nothing was created
	test.ExpectEquality(t, ctx.Count("CreateTexture"), 0)
	test.ExpectEquality(t, ctx.Count("CreateBuffer"), 0)

	_, err = sm.RenderToTexture(ctx)
	test.ExpectSuccess(t, errors.Is(err, visualizer.ErrNotSetup))
}

func TestRenderToTexture(t *testing.T) {
	ctx := gfxtest.NewContext()
	sm := visualizer.NewSmiley()
	test.DemandSuccess(t, sm.Setup(ctx, 64))

	sm.Update(frameWithBuckets(4, 19, 0.5/16))
	ctx.Reset()

	tex, err := sm.RenderToTexture(ctx)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, tex, gfx.Texture(0))

	use := ctx.Index(0, "UseProgram")
	upload := ctx.Index(use, "BufferData 12")
	vao := ctx.Index(upload, "BindVertexArray")
	attr := ctx.Index(vao, "VertexAttribPointer")
	amp := ctx.Index(attr, "Uniform1f amplitude 0.5")
	phase := ctx.Index(amp, "Uniform1f phase 0.1")
	clear := ctx.Index(phase, "Clear")
	drawBuf := ctx.Index(clear, "DrawBuffers")
	draw := ctx.Index(drawBuf, "DrawTriangles")
	for i, idx := range []int{use, upload, vao, attr, amp, phase, clear, drawBuf, draw} {
		test.ExpectInequality(t, idx, -1, i)
	}

	// drawing is into the offscreen framebuffer and not the default
	// framebuffer
	test.ExpectEquality(t, ctx.Count("DrawTriangles 0 "), 0)
	test.ExpectSuccess(t, strings.HasSuffix(ctx.Calls()[draw], " 0 6"))
}

func TestResourcesReused(t *testing.T) {
	ctx := gfxtest.NewContext()
	sm := visualizer.NewSmiley()
	test.DemandSuccess(t, sm.Setup(ctx, 64))

	for i := 0; i < 100; i++ {
		sm.Update(audio.NewFrame())
		_, err := sm.RenderToTexture(ctx)
		test.DemandSuccess(t, err)
	}

	test.ExpectEquality(t, ctx.Count("LinkProgram"), 1)
	test.ExpectEquality(t, ctx.Count("CreateBuffer"), 1)
	test.ExpectEquality(t, ctx.Count("CreateVertexArray"), 1)
	test.ExpectEquality(t, ctx.Count("CreateFramebuffer"), 1)
	test.ExpectEquality(t, ctx.Count("BufferData 12"), 100)
	test.ExpectEquality(t, ctx.Count("SupportsVertexArrays"), 100)

	sm.Destroy(ctx)
	for _, kind := range []string{"program", "buffer", "vertexarray", "framebuffer", "texture"} {
		test.ExpectEquality(t, ctx.Live(kind), 0, kind)
	}
}

func TestNoVertexArrays(t *testing.T) {
	ctx := gfxtest.NewContext()
	ctx.VertexArrays = false
	sm := visualizer.NewSmiley()
	test.DemandSuccess(t, sm.Setup(ctx, 64))

	sm.Update(audio.NewFrame())
	_, err := sm.RenderToTexture(ctx)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, ctx.Count("CreateVertexArray"), 0)
	test.ExpectEquality(t, ctx.Count("BindVertexArray"), 0)
	test.ExpectEquality(t, ctx.Count("DrawTriangles"), 1)
}

// ten silent frames through the headless loop.
func TestHeadlessTenTicks(t *testing.T) {
	win := gfxtest.NewWindow()
	sm := visualizer.NewSmiley()
	scr := screen.NewCapture(nil)

	in, out := audio.Pipe(context.Background())
	for i := 0; i < 10; i++ {
		in <- audio.NewFrame()
	}
	close(in)

	err := gfx.Run(context.Background(), win.Creator(), sm, scr, out, 64, nil, nil)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, sm.Amplitude(), float32(0.0))
	test.ExpectApproximate(t, sm.Phase(), 1.0, 0.0001)
	test.ExpectEquality(t, win.Ctx.Count("Uniform1f amplitude 0"), 10)
	test.ExpectEquality(t, win.Ctx.Count("Uniform1f phase"), 10)
	test.ExpectEquality(t, win.Swaps, 0)
}

func TestHeadlessInvalidShader(t *testing.T) {
	win := gfxtest.NewWindow()
	win.Ctx.CompileFailure[gfx.StageVertex] = "0:3(1): error: syntax error, unexpected IDENTIFIER"
	sm := visualizer.NewSmiley()
	scr := screen.NewCapture(nil)

	pipeCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in, out := audio.Pipe(pipeCtx)
	in <- audio.NewFrame()
	close(in)

	err := gfx.Run(context.Background(), win.Creator(), sm, scr, out, 64, nil, nil)

	var shErr *gfx.ShaderError
	test.DemandSuccess(t, errors.As(err, &shErr))
	test.ExpectInequality(t, shErr.Log, "")

	// no update has happened
	test.ExpectEquality(t, sm.Phase(), float32(0.0))
	test.ExpectEquality(t, win.Ctx.Count("DrawTriangles"), 0)
}
