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
	"github.com/jetsetilly/musicvis/gfx"
)

// Window implements the gfx.Screen interface. It presents the texture in the
// default framebuffer of a visible window.
type Window struct {
	cmp compositor
}

// NewWindow is the preferred method of initialisation for the Window type.
func NewWindow() *Window {
	return &Window{}
}

// UsesWindow implements the gfx.Screen interface.
func (scr *Window) UsesWindow() bool {
	return true
}

// Setup implements the gfx.Screen interface.
func (scr *Window) Setup(ctx gfx.Context) error {
	return scr.cmp.setup(ctx)
}

// RenderFromTexture implements the gfx.Screen interface.
func (scr *Window) RenderFromTexture(ctx gfx.Context, tex gfx.Texture, _ int32) error {
	ctx.BindFramebuffer(gfx.DefaultFramebuffer)
	scr.cmp.draw(ctx, tex)
	return ctx.Err()
}

// Destroy implements the gfx.Screen interface.
func (scr *Window) Destroy(ctx gfx.Context) {
	scr.cmp.destroy(ctx)
}
