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
	_ "embed"
	"fmt"

	"github.com/jetsetilly/musicvis/gfx"
)

//go:embed shaders/passthrough.vert
var passthroughVertexShader string

//go:embed shaders/passthrough.frag
var passthroughFragmentShader string

// compositor draws a texture as a quad covering the whole viewport.
type compositor struct {
	program gfx.Program
	vbo     gfx.Buffer
	vao     gfx.VertexArray

	position int32
	texture  int32
}

var quad = []float32{
	-1, -1,
	-1, 1,
	1, 1,
	-1, -1,
	1, -1,
	1, 1,
}

func (cmp *compositor) setup(ctx gfx.Context) error {
	prg, err := gfx.CompileProgram(ctx, passthroughVertexShader, passthroughFragmentShader)
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	cmp.program = prg

	cmp.position = ctx.AttribLocation(cmp.program, "Position")
	cmp.texture = ctx.UniformLocation(cmp.program, "Texture")

	cmp.vbo = ctx.CreateBuffer()
	ctx.BindBuffer(cmp.vbo)
	ctx.BufferData(quad)

	if err := ctx.Err(); err != nil {
		cmp.destroy(ctx)
		return fmt.Errorf("screen: %w", err)
	}

	return nil
}

// draw texture into the currently bound framebuffer.
func (cmp *compositor) draw(ctx gfx.Context, tex gfx.Texture) {
	ctx.UseProgram(cmp.program)

	if ctx.SupportsVertexArrays() {
		if cmp.vao == 0 {
			cmp.vao = ctx.CreateVertexArray()
		}
		ctx.BindVertexArray(cmp.vao)
	}

	ctx.BindBuffer(cmp.vbo)
	ctx.VertexAttribPointer(cmp.position, 2, 2*4)
	ctx.EnableVertexAttribArray(cmp.position)

	ctx.BindTexture(0, tex)
	ctx.Uniform1i(cmp.texture, 0)

	ctx.DrawTriangles(0, int32(len(quad)/2))
}

func (cmp *compositor) destroy(ctx gfx.Context) {
	if cmp.vao != 0 {
		ctx.DeleteVertexArray(cmp.vao)
		cmp.vao = 0
	}
	if cmp.vbo != 0 {
		ctx.DeleteBuffer(cmp.vbo)
		cmp.vbo = 0
	}
	if cmp.program != 0 {
		ctx.DeleteProgram(cmp.program)
		cmp.program = 0
	}
}
