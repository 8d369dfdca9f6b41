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

package framebuffer

import (
	"image"

	"github.com/jetsetilly/musicvis/gfx"
)

// Single is a framebuffer with a single texture.
type Single struct {
	clearOnRender bool

	fbo     gfx.Framebuffer
	texture gfx.Texture

	width  int32
	height int32
}

// NewSingle is the preferred method of initialisation of the Single type. If
// clearOnRender is true then the texture is cleared to opaque black before
// every call to the draw function given to Process().
func NewSingle(ctx gfx.Context, clearOnRender bool) *Single {
	return &Single{
		clearOnRender: clearOnRender,
		fbo:           ctx.CreateFramebuffer(),
	}
}

// Destroy should be called when the Single is no longer required.
func (fb *Single) Destroy(ctx gfx.Context) {
	if fb.texture != 0 {
		ctx.DeleteTexture(fb.texture)
		fb.texture = 0
	}
	ctx.DeleteFramebuffer(fb.fbo)
	fb.width = 0
	fb.height = 0
}

// Setup Single for specified dimensions.
//
// Returns true if any previous texture data has been lost. This can happen when
// the dimensions have changed. By definition, the first call to Setup() will
// always return false.
//
// If the supplied width or height are less than or equal to zero the function
// will return false with no explanation.
func (fb *Single) Setup(ctx gfx.Context, width int32, height int32) bool {
	if width <= 0 || height <= 0 {
		return false
	}

	// no change to framebuffer
	if fb.width == width && fb.height == height {
		return false
	}

	changed := fb.width != 0 || fb.height != 0

	fb.width = width
	fb.height = height

	if fb.texture != 0 {
		ctx.DeleteTexture(fb.texture)
	}
	fb.texture = ctx.CreateTexture(width, height)

	ctx.BindFramebuffer(fb.fbo)
	ctx.FramebufferTexture(fb.texture)

	return changed
}

// Dimensions returns the width and height of the framebuffer.
func (fb *Single) Dimensions() (width int32, height int32) {
	return fb.width, fb.height
}

// Texture returns the texture attached to the framebuffer.
func (fb *Single) Texture() gfx.Texture {
	return fb.texture
}

// Process binds the framebuffer and runs the supplied draw function. The
// texture of the framebuffer is returned. The framebuffer remains bound.
func (fb *Single) Process(ctx gfx.Context, draw func()) gfx.Texture {
	ctx.BindFramebuffer(fb.fbo)
	ctx.FramebufferTexture(fb.texture)

	if fb.clearOnRender {
		ctx.ClearColor(0.0, 0.0, 0.0, 1.0)
		ctx.Clear()
	}

	draw()

	return fb.texture
}

// Pixels reads the contents of the texture into a new image. The framebuffer
// is left bound.
func (fb *Single) Pixels(ctx gfx.Context) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(fb.width), int(fb.height)))
	if fb.width == 0 || fb.height == 0 {
		return img
	}

	ctx.BindFramebuffer(fb.fbo)
	ctx.ReadPixels(0, 0, fb.width, fb.height, gfx.RGBA, img.Pix)

	// the first row read from the framebuffer is the bottom row of the image
	flip(img)

	return img
}

func flip(img *image.RGBA) {
	h := img.Rect.Dy()
	row := make([]uint8, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bot := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bot)
		copy(bot, row)
	}
}
