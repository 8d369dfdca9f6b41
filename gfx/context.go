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

package gfx

// Context is the graphics API as used by the pipeline and its stages. The
// methods are thin wrappers around the equivalent OpenGL calls.
//
// Errors raised by the graphics API are not returned by individual calls. The
// first error is latched and returned by Err(). Implementations may choose to
// never check for errors, in which case Err() always returns nil.
type Context interface {
	// shader programs
	CreateShader(stage ShaderStage) Shader
	ShaderSource(sh Shader, source string)
	CompileShader(sh Shader)
	ShaderCompiled(sh Shader) bool
	ShaderInfoLog(sh Shader) string
	DeleteShader(sh Shader)
	CreateProgram() Program
	AttachShader(prg Program, sh Shader)
	LinkProgram(prg Program)
	ProgramLinked(prg Program) bool
	ProgramInfoLog(prg Program) string
	DeleteProgram(prg Program)
	UseProgram(prg Program)

	// attributes and uniforms. locations of -1 are ignored
	AttribLocation(prg Program, name string) int32
	UniformLocation(prg Program, name string) int32
	Uniform1f(loc int32, v float32)
	Uniform1i(loc int32, v int32)
	VertexAttribPointer(loc int32, size int32, stride int32)
	EnableVertexAttribArray(loc int32)

	// vertex buffers. BufferData uploads to the currently bound buffer
	CreateBuffer() Buffer
	BindBuffer(buf Buffer)
	BufferData(data []float32)
	DeleteBuffer(buf Buffer)

	// vertex array objects. SupportsVertexArrays() must be checked before
	// using any of the other vertex array functions
	SupportsVertexArrays() bool
	CreateVertexArray() VertexArray
	BindVertexArray(vao VertexArray)
	DeleteVertexArray(vao VertexArray)

	// framebuffers and textures. FramebufferTexture attaches the texture to
	// the first colour attachment of the currently bound framebuffer
	CreateFramebuffer() Framebuffer
	BindFramebuffer(fbo Framebuffer)
	FramebufferTexture(tex Texture)
	DrawBuffers()
	DeleteFramebuffer(fbo Framebuffer)
	CreateTexture(width int32, height int32) Texture
	BindTexture(unit int32, tex Texture)
	DeleteTexture(tex Texture)

	// drawing
	Viewport(width int32, height int32)
	ViewportSize() (int32, int32)
	ClearColor(r, g, b, a float32)
	Clear()
	DrawTriangles(first int32, count int32)

	// ReadPixels from the currently bound framebuffer into dst. The length
	// of dst must be at least width * height * format.BytesPerPixel()
	ReadPixels(x, y, width, height int32, format PixelFormat, dst []uint8)

	// the first error raised by the graphics API
	Err() error
}
