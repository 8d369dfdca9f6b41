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

// Package framebuffer provides a convenient way of working with offscreen
// framebuffers through a gfx.Context. The Single type is a framebuffer with
// one texture attached.
//
// The Setup() function must be called at least once after NewSingle() and as
// often as necessary to ensure the dimensions (width and height) are correct.
//
//	hasChanged := fb.Setup(ctx, 512, 512)
//
// Setup() returns true if any previous texture data has been lost.
//
// The Process() function binds the framebuffer and for convenience runs the
// supplied draw() function. The texture is returned and can be used as the
// input for the next stage of rendering.
//
//	texture := fb.Process(ctx, func() {
//		// 1. set up shader
//		// 2. draw
//	})
package framebuffer
