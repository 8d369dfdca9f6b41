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

// Package gl32 implements gfx.Context with OpenGL 3.2 core profile, using the
// bindings provided by "github.com/go-gl/gl".
//
// Calls to the graphics API are checked for errors only when built with the
// gldebug build tag. Without the tag, Err() always returns nil.
package gl32

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/musicvis/gfx"
	"github.com/jetsetilly/musicvis/logger"
)

// Context implements the gfx.Context interface.
type Context struct {
	vertexArrays bool

	viewportW int32
	viewportH int32

	// the first error raised by the graphics API
	err error
}

// New initialises the OpenGL bindings and returns a new Context. The
// getProcAddress function is supplied by the windowing system and the
// graphics context must be current on the calling thread.
//
// Blending is enabled with the alpha of the source and the depth test is
// disabled.
func New(getProcAddress func(name string) unsafe.Pointer) (*Context, error) {
	err := gl.InitWithProcAddrFunc(getProcAddress)
	if err != nil {
		return nil, fmt.Errorf("gl32: %w", err)
	}

	ctx := &Context{}

	var major int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &major)
	ctx.vertexArrays = major >= 3 || hasExtension("GL_ARB_vertex_array_object")

	logger.Logf(logger.Allow, "gl32", "%s", gl.GoStr(gl.GetString(gl.VERSION)))
	logger.Logf(logger.Allow, "gl32", "%s", gl.GoStr(gl.GetString(gl.RENDERER)))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	ctx.check("init")

	return ctx, nil
}

func hasExtension(name string) bool {
	var n int32
	gl.GetIntegerv(gl.NUM_EXTENSIONS, &n)
	for i := int32(0); i < n; i++ {
		if gl.GoStr(gl.GetStringi(gl.EXTENSIONS, uint32(i))) == name {
			return true
		}
	}
	return false
}

// Err implements the gfx.Context interface.
func (ctx *Context) Err() error {
	return ctx.err
}

func (ctx *Context) CreateShader(stage gfx.ShaderStage) gfx.Shader {
	var t uint32
	switch stage {
	case gfx.StageVertex:
		t = gl.VERTEX_SHADER
	case gfx.StageFragment:
		t = gl.FRAGMENT_SHADER
	}
	sh := gl.CreateShader(t)
	ctx.check("CreateShader")
	return gfx.Shader(sh)
}

func (ctx *Context) ShaderSource(sh gfx.Shader, source string) {
	csource, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(uint32(sh), 1, csource, nil)
	ctx.check("ShaderSource")
}

func (ctx *Context) CompileShader(sh gfx.Shader) {
	gl.CompileShader(uint32(sh))
	ctx.check("CompileShader")
}

func (ctx *Context) ShaderCompiled(sh gfx.Shader) bool {
	var status int32
	gl.GetShaderiv(uint32(sh), gl.COMPILE_STATUS, &status)
	ctx.check("GetShaderiv")
	return status != gl.FALSE
}

func (ctx *Context) ShaderInfoLog(sh gfx.Shader) string {
	var logLength int32
	gl.GetShaderiv(uint32(sh), gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}

	// the length includes the NULL character
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(uint32(sh), logLength, nil, gl.Str(log))
	ctx.check("GetShaderInfoLog")
	return log
}

func (ctx *Context) DeleteShader(sh gfx.Shader) {
	gl.DeleteShader(uint32(sh))
	ctx.check("DeleteShader")
}

func (ctx *Context) CreateProgram() gfx.Program {
	prg := gl.CreateProgram()
	ctx.check("CreateProgram")
	return gfx.Program(prg)
}

func (ctx *Context) AttachShader(prg gfx.Program, sh gfx.Shader) {
	gl.AttachShader(uint32(prg), uint32(sh))
	ctx.check("AttachShader")
}

func (ctx *Context) LinkProgram(prg gfx.Program) {
	gl.LinkProgram(uint32(prg))
	ctx.check("LinkProgram")
}

func (ctx *Context) ProgramLinked(prg gfx.Program) bool {
	var status int32
	gl.GetProgramiv(uint32(prg), gl.LINK_STATUS, &status)
	ctx.check("GetProgramiv")
	return status != gl.FALSE
}

func (ctx *Context) ProgramInfoLog(prg gfx.Program) string {
	var logLength int32
	gl.GetProgramiv(uint32(prg), gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(uint32(prg), logLength, nil, gl.Str(log))
	ctx.check("GetProgramInfoLog")
	return log
}

func (ctx *Context) DeleteProgram(prg gfx.Program) {
	gl.DeleteProgram(uint32(prg))
	ctx.check("DeleteProgram")
}

func (ctx *Context) UseProgram(prg gfx.Program) {
	gl.UseProgram(uint32(prg))
	ctx.check("UseProgram")
}

func (ctx *Context) AttribLocation(prg gfx.Program, name string) int32 {
	loc := gl.GetAttribLocation(uint32(prg), gl.Str(name+"\x00"))
	ctx.check("GetAttribLocation")
	return loc
}

func (ctx *Context) UniformLocation(prg gfx.Program, name string) int32 {
	loc := gl.GetUniformLocation(uint32(prg), gl.Str(name+"\x00"))
	ctx.check("GetUniformLocation")
	return loc
}

func (ctx *Context) Uniform1f(loc int32, v float32) {
	gl.Uniform1f(loc, v)
	ctx.check("Uniform1f")
}

func (ctx *Context) Uniform1i(loc int32, v int32) {
	gl.Uniform1i(loc, v)
	ctx.check("Uniform1i")
}

func (ctx *Context) VertexAttribPointer(loc int32, size int32, stride int32) {
	if loc < 0 {
		return
	}
	gl.VertexAttribPointerWithOffset(uint32(loc), size, gl.FLOAT, false, stride, 0)
	ctx.check("VertexAttribPointer")
}

func (ctx *Context) EnableVertexAttribArray(loc int32) {
	if loc < 0 {
		return
	}
	gl.EnableVertexAttribArray(uint32(loc))
	ctx.check("EnableVertexAttribArray")
}

func (ctx *Context) CreateBuffer() gfx.Buffer {
	var buf uint32
	gl.GenBuffers(1, &buf)
	ctx.check("GenBuffers")
	return gfx.Buffer(buf)
}

func (ctx *Context) BindBuffer(buf gfx.Buffer) {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(buf))
	ctx.check("BindBuffer")
}

func (ctx *Context) BufferData(data []float32) {
	if len(data) == 0 {
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STREAM_DRAW)
	ctx.check("BufferData")
}

func (ctx *Context) DeleteBuffer(buf gfx.Buffer) {
	b := uint32(buf)
	gl.DeleteBuffers(1, &b)
	ctx.check("DeleteBuffers")
}

func (ctx *Context) SupportsVertexArrays() bool {
	return ctx.vertexArrays
}

func (ctx *Context) CreateVertexArray() gfx.VertexArray {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	ctx.check("GenVertexArrays")
	return gfx.VertexArray(vao)
}

func (ctx *Context) BindVertexArray(vao gfx.VertexArray) {
	gl.BindVertexArray(uint32(vao))
	ctx.check("BindVertexArray")
}

func (ctx *Context) DeleteVertexArray(vao gfx.VertexArray) {
	v := uint32(vao)
	gl.DeleteVertexArrays(1, &v)
	ctx.check("DeleteVertexArrays")
}

func (ctx *Context) CreateFramebuffer() gfx.Framebuffer {
	var fbo uint32
	gl.GenFramebuffers(1, &fbo)
	ctx.check("GenFramebuffers")
	return gfx.Framebuffer(fbo)
}

func (ctx *Context) BindFramebuffer(fbo gfx.Framebuffer) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(fbo))
	ctx.check("BindFramebuffer")
}

func (ctx *Context) FramebufferTexture(tex gfx.Texture) {
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, uint32(tex), 0)
	ctx.check("FramebufferTexture2D")
}

func (ctx *Context) DrawBuffers() {
	bufs := uint32(gl.COLOR_ATTACHMENT0)
	gl.DrawBuffers(1, &bufs)
	ctx.check("DrawBuffers")
}

func (ctx *Context) DeleteFramebuffer(fbo gfx.Framebuffer) {
	f := uint32(fbo)
	gl.DeleteFramebuffers(1, &f)
	ctx.check("DeleteFramebuffers")
}

func (ctx *Context) CreateTexture(width int32, height int32) gfx.Texture {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0,
		gl.RGBA, width, height, 0,
		gl.RGBA, gl.UNSIGNED_BYTE,
		nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	ctx.check("TexImage2D")
	return gfx.Texture(tex)
}

func (ctx *Context) BindTexture(unit int32, tex gfx.Texture) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, uint32(tex))
	ctx.check("BindTexture")
}

func (ctx *Context) DeleteTexture(tex gfx.Texture) {
	t := uint32(tex)
	gl.DeleteTextures(1, &t)
	ctx.check("DeleteTextures")
}

func (ctx *Context) Viewport(width int32, height int32) {
	ctx.viewportW = width
	ctx.viewportH = height
	gl.Viewport(0, 0, width, height)
	ctx.check("Viewport")
}

func (ctx *Context) ViewportSize() (int32, int32) {
	return ctx.viewportW, ctx.viewportH
}

func (ctx *Context) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	ctx.check("ClearColor")
}

func (ctx *Context) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	ctx.check("Clear")
}

func (ctx *Context) DrawTriangles(first int32, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
	ctx.check("DrawArrays")
}

func (ctx *Context) ReadPixels(x, y, width, height int32, format gfx.PixelFormat, dst []uint8) {
	if len(dst) < int(width)*int(height)*format.BytesPerPixel() {
		return
	}

	f := uint32(gl.RGB)
	if format == gfx.RGBA {
		f = gl.RGBA
	}

	// rows of RGB pixels are not always a multiple of four bytes
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(x, y, width, height, f, gl.UNSIGNED_BYTE, gl.Ptr(dst))
	ctx.check("ReadPixels")
}
