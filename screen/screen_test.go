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

package screen_test

import (
	"errors"
	"image"
	"testing"

	"github.com/jetsetilly/musicvis/gfx"
	"github.com/jetsetilly/musicvis/gfx/gfxtest"
	"github.com/jetsetilly/musicvis/screen"
	"github.com/jetsetilly/musicvis/test"
)

func TestWindow(t *testing.T) {
	ctx := gfxtest.NewContext()
	scr := screen.NewWindow()
	test.ExpectEquality(t, scr.UsesWindow(), true)

	test.DemandSuccess(t, scr.Setup(ctx))
	test.ExpectEquality(t, ctx.Count("LinkProgram"), 1)
	ctx.Reset()

	// draw into the default framebuffer, even if another framebuffer is
	// bound
	ctx.BindFramebuffer(10)
	test.ExpectSuccess(t, scr.RenderFromTexture(ctx, 7, 512))
	bind := ctx.Index(0, "BindFramebuffer 0")
	tex := ctx.Index(bind, "BindTexture 0 7")
	draw := ctx.Index(tex, "DrawTriangles 0 0 6")
	test.ExpectInequality(t, bind, -1)
	test.ExpectInequality(t, tex, -1)
	test.ExpectInequality(t, draw, -1)

	// the texture is not retained or deleted
	test.ExpectEquality(t, ctx.Count("DeleteTexture"), 0)

	scr.Destroy(ctx)
	test.ExpectEquality(t, ctx.Live("program"), 0)
	test.ExpectEquality(t, ctx.Live("buffer"), 0)
	test.ExpectEquality(t, ctx.Live("vertexarray"), 0)
}

func TestWindowShaderFailure(t *testing.T) {
	ctx := gfxtest.NewContext()
	ctx.LinkFailure = "link error"
	scr := screen.NewWindow()

	err := scr.Setup(ctx)
	var shErr *gfx.ShaderError
	test.ExpectSuccess(t, errors.As(err, &shErr))
}

func TestCapture(t *testing.T) {
	ctx := gfxtest.NewContext()

	var images []*image.RGBA
	scr := screen.NewCapture(screen.SinkFunc(func(img *image.RGBA) error {
		images = append(images, img)
		return nil
	}))
	test.ExpectEquality(t, scr.UsesWindow(), false)
	test.DemandSuccess(t, scr.Setup(ctx))

	// offscreen framebuffer is the size of the viewport
	ctx.Viewport(20, 20)
	test.ExpectSuccess(t, scr.RenderFromTexture(ctx, 7, 10))
	test.ExpectEquality(t, scr.Frames(), 1)
	test.DemandEquality(t, len(images), 1)
	test.ExpectEquality(t, images[0].Rect.Dx(), 20)
	test.ExpectEquality(t, images[0].Rect.Dy(), 20)

	// nothing is drawn to the window
	test.ExpectEquality(t, ctx.Count("DrawTriangles 0 "), 0)
	test.ExpectEquality(t, ctx.Count("ReadPixels"), 1)

	// the framebuffer follows the viewport
	ctx.Viewport(8, 4)
	test.ExpectSuccess(t, scr.RenderFromTexture(ctx, 7, 10))
	test.DemandEquality(t, len(images), 2)
	test.ExpectEquality(t, images[1].Rect.Dx(), 8)
	test.ExpectEquality(t, images[1].Rect.Dy(), 4)

	scr.Destroy(ctx)
	test.ExpectEquality(t, ctx.Live("framebuffer"), 0)
	test.ExpectEquality(t, ctx.Live("texture"), 0)
}

func TestCaptureNoSink(t *testing.T) {
	ctx := gfxtest.NewContext()
	scr := screen.NewCapture(nil)
	test.DemandSuccess(t, scr.Setup(ctx))

	ctx.Viewport(20, 20)
	test.ExpectSuccess(t, scr.RenderFromTexture(ctx, 7, 10))
	test.ExpectEquality(t, scr.Frames(), 1)
	test.ExpectEquality(t, ctx.Count("ReadPixels"), 0)
}

func TestCaptureSinkError(t *testing.T) {
	ctx := gfxtest.NewContext()
	sinkErr := errors.New("sink error")
	scr := screen.NewCapture(screen.SinkFunc(func(_ *image.RGBA) error {
		return sinkErr
	}))
	test.DemandSuccess(t, scr.Setup(ctx))

	ctx.Viewport(4, 4)
	err := scr.RenderFromTexture(ctx, 7, 2)
	test.ExpectSuccess(t, errors.Is(err, sinkErr))
}
