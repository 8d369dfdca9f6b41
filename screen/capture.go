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

package screen

import (
	"fmt"
	"image"

	"github.com/jetsetilly/musicvis/gfx"
	"github.com/jetsetilly/musicvis/gfx/framebuffer"
)

// Sink receives the images produced by Capture. The image is owned by the
// Sink once the function has been called.
type Sink interface {
	Frame(img *image.RGBA) error
}

// SinkFunc is an adapter allowing an ordinary function to be used as a Sink.
type SinkFunc func(img *image.RGBA) error

// Frame implements the Sink interface.
func (f SinkFunc) Frame(img *image.RGBA) error {
	return f(img)
}

// Capture implements the gfx.Screen interface. It composites the texture into
// an offscreen framebuffer the size of the current viewport and sends the
// pixels to a Sink. It does not use a window.
type Capture struct {
	sink Sink
	cmp  compositor
	fb   *framebuffer.Single

	frames int
}

// NewCapture is the preferred method of initialisation for the Capture type.
// The sink can be nil, in which case the pixels are never read back.
func NewCapture(sink Sink) *Capture {
	return &Capture{
		sink: sink,
	}
}

// UsesWindow implements the gfx.Screen interface.
func (scr *Capture) UsesWindow() bool {
	return false
}

// Setup implements the gfx.Screen interface.
func (scr *Capture) Setup(ctx gfx.Context) error {
	if err := scr.cmp.setup(ctx); err != nil {
		return err
	}
	scr.fb = framebuffer.NewSingle(ctx, true)
	return nil
}

// Frames returns the number of frames that have been rendered.
func (scr *Capture) Frames() int {
	return scr.frames
}

// RenderFromTexture implements the gfx.Screen interface.
func (scr *Capture) RenderFromTexture(ctx gfx.Context, tex gfx.Texture, _ int32) error {
	w, h := ctx.ViewportSize()
	scr.fb.Setup(ctx, w, h)
	scr.fb.Process(ctx, func() {
		scr.cmp.draw(ctx, tex)
	})
	if err := ctx.Err(); err != nil {
		return err
	}

	scr.frames++

	if scr.sink == nil {
		return nil
	}

	img := scr.fb.Pixels(ctx)
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := scr.sink.Frame(img); err != nil {
		return fmt.Errorf("screen: %w", err)
	}

	return nil
}

// Destroy implements the gfx.Screen interface.
func (scr *Capture) Destroy(ctx gfx.Context) {
	if scr.fb != nil {
		scr.fb.Destroy(ctx)
		scr.fb = nil
	}
	scr.cmp.destroy(ctx)
}
