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

// Package gfxtest provides implementations of gfx.Context and gfx.Window that
// record every call without a GPU. They are used to test the render pipeline
// and its stages.
package gfxtest

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/musicvis/gfx"
)

type shader struct {
	stage    gfx.ShaderStage
	compiled bool
	log      string
}

type program struct {
	shaders []gfx.Shader
	linked  bool
	log     string
}

// Context is a recording implementation of gfx.Context.
type Context struct {
	// every call is recorded in order. see the Calls() function
	calls []string

	// shader stages listed here fail to compile with the given log
	CompileFailure map[gfx.ShaderStage]string

	// if not empty, programs fail to link with the given log
	LinkFailure string

	// value returned by SupportsVertexArrays()
	VertexArrays bool

	// calls listed here latch a GLError with the given code
	ErrorOn map[string]uint32

	err error

	nextHandle uint32
	shaders    map[gfx.Shader]*shader
	sources    map[gfx.ShaderStage]string
	programs   map[gfx.Program]*program
	live       map[string]int

	uniforms map[int32]string
	nextLoc  int32

	framebuffer gfx.Framebuffer
	viewportW   int32
	viewportH   int32
}

// NewContext is the preferred method of initialisation for the Context type.
// Vertex arrays are supported by default.
func NewContext() *Context {
	return &Context{
		CompileFailure: make(map[gfx.ShaderStage]string),
		ErrorOn:        make(map[string]uint32),
		VertexArrays:   true,
		shaders:        make(map[gfx.Shader]*shader),
		sources:        make(map[gfx.ShaderStage]string),
		programs:       make(map[gfx.Program]*program),
		live:           make(map[string]int),
		uniforms:       make(map[int32]string),
	}
}

func (c *Context) record(call string, args ...any) {
	if len(args) > 0 {
		s := make([]string, len(args))
		for i := range args {
			s[i] = fmt.Sprint(args[i])
		}
		c.calls = append(c.calls, fmt.Sprintf("%s %s", call, strings.Join(s, " ")))
	} else {
		c.calls = append(c.calls, call)
	}

	if code, ok := c.ErrorOn[call]; ok && c.err == nil {
		c.err = &gfx.GLError{Call: call, Code: code}
	}
}

func (c *Context) handle(kind string) uint32 {
	c.nextHandle++
	c.live[kind]++
	return c.nextHandle
}

func (c *Context) release(kind string, h uint32) {
	if h != 0 {
		c.live[kind]--
	}
}

// Calls returns every call made to the context. Each call is the name of the
// function followed by the arguments separated by spaces.
func (c *Context) Calls() []string {
	return c.calls
}

// Reset forgets the calls made so far.
func (c *Context) Reset() {
	c.calls = c.calls[:0]
}

// Count returns the number of calls whose name and arguments begin with
// prefix.
func (c *Context) Count(prefix string) int {
	var n int
	for _, s := range c.calls {
		if strings.HasPrefix(s, prefix) {
			n++
		}
	}
	return n
}

// Index returns the index of the first call at or after index from that
// begins with prefix. Returns -1 if there is no such call.
func (c *Context) Index(from int, prefix string) int {
	for i := max(from, 0); i < len(c.calls); i++ {
		if strings.HasPrefix(c.calls[i], prefix) {
			return i
		}
	}
	return -1
}

// Live returns the number of resources of the given kind that have been
// created and not deleted. Kinds are "shader", "program", "buffer",
// "vertexarray", "framebuffer" and "texture".
func (c *Context) Live(kind string) int {
	return c.live[kind]
}

// SetErr latches an error as if raised by the graphics API.
func (c *Context) SetErr(err error) {
	c.err = err
}

// Source returns the most recent source given to a shader of the stage. The
// source is remembered after the shader has been deleted.
func (c *Context) Source(stage gfx.ShaderStage) string {
	return c.sources[stage]
}

// Framebuffer returns the currently bound framebuffer.
func (c *Context) Framebuffer() gfx.Framebuffer {
	return c.framebuffer
}

func (c *Context) CreateShader(stage gfx.ShaderStage) gfx.Shader {
	sh := gfx.Shader(c.handle("shader"))
	c.shaders[sh] = &shader{stage: stage}
	c.record("CreateShader", stage)
	return sh
}

func (c *Context) ShaderSource(sh gfx.Shader, source string) {
	if s, ok := c.shaders[sh]; ok {
		c.sources[s.stage] = source
	}
	c.record("ShaderSource", sh)
}

func (c *Context) CompileShader(sh gfx.Shader) {
	if s, ok := c.shaders[sh]; ok {
		if log, fail := c.CompileFailure[s.stage]; fail {
			s.log = log
		} else {
			s.compiled = true
		}
	}
	c.record("CompileShader", sh)
}

func (c *Context) ShaderCompiled(sh gfx.Shader) bool {
	c.record("ShaderCompiled", sh)
	if s, ok := c.shaders[sh]; ok {
		return s.compiled
	}
	return false
}

func (c *Context) ShaderInfoLog(sh gfx.Shader) string {
	c.record("ShaderInfoLog", sh)
	if s, ok := c.shaders[sh]; ok {
		return s.log + "\x00"
	}
	return ""
}

func (c *Context) DeleteShader(sh gfx.Shader) {
	if _, ok := c.shaders[sh]; ok {
		c.release("shader", uint32(sh))
		delete(c.shaders, sh)
	}
	c.record("DeleteShader", sh)
}

func (c *Context) CreateProgram() gfx.Program {
	prg := gfx.Program(c.handle("program"))
	c.programs[prg] = &program{}
	c.record("CreateProgram")
	return prg
}

func (c *Context) AttachShader(prg gfx.Program, sh gfx.Shader) {
	if p, ok := c.programs[prg]; ok {
		p.shaders = append(p.shaders, sh)
	}
	c.record("AttachShader", prg, sh)
}

func (c *Context) LinkProgram(prg gfx.Program) {
	if p, ok := c.programs[prg]; ok {
		if c.LinkFailure != "" {
			p.log = c.LinkFailure
		} else {
			p.linked = true
		}
	}
	c.record("LinkProgram", prg)
}

func (c *Context) ProgramLinked(prg gfx.Program) bool {
	c.record("ProgramLinked", prg)
	if p, ok := c.programs[prg]; ok {
		return p.linked
	}
	return false
}

func (c *Context) ProgramInfoLog(prg gfx.Program) string {
	c.record("ProgramInfoLog", prg)
	if p, ok := c.programs[prg]; ok {
		return p.log
	}
	return ""
}

func (c *Context) DeleteProgram(prg gfx.Program) {
	if _, ok := c.programs[prg]; ok {
		c.release("program", uint32(prg))
		delete(c.programs, prg)
	}
	c.record("DeleteProgram", prg)
}

func (c *Context) UseProgram(prg gfx.Program) {
	c.record("UseProgram", prg)
}

func (c *Context) AttribLocation(prg gfx.Program, name string) int32 {
	c.record("AttribLocation", prg, name)
	c.nextLoc++
	return c.nextLoc
}

func (c *Context) UniformLocation(prg gfx.Program, name string) int32 {
	c.record("UniformLocation", prg, name)
	c.nextLoc++
	c.uniforms[c.nextLoc] = name
	return c.nextLoc
}

func (c *Context) Uniform1f(loc int32, v float32) {
	c.record("Uniform1f", c.uniforms[loc], v)
}

func (c *Context) Uniform1i(loc int32, v int32) {
	c.record("Uniform1i", c.uniforms[loc], v)
}

func (c *Context) VertexAttribPointer(loc int32, size int32, stride int32) {
	c.record("VertexAttribPointer", loc, size, stride)
}

func (c *Context) EnableVertexAttribArray(loc int32) {
	c.record("EnableVertexAttribArray", loc)
}

func (c *Context) CreateBuffer() gfx.Buffer {
	c.record("CreateBuffer")
	return gfx.Buffer(c.handle("buffer"))
}

func (c *Context) BindBuffer(buf gfx.Buffer) {
	c.record("BindBuffer", buf)
}

func (c *Context) BufferData(data []float32) {
	c.record("BufferData", len(data))
}

func (c *Context) DeleteBuffer(buf gfx.Buffer) {
	c.release("buffer", uint32(buf))
	c.record("DeleteBuffer", buf)
}

func (c *Context) SupportsVertexArrays() bool {
	c.record("SupportsVertexArrays")
	return c.VertexArrays
}

func (c *Context) CreateVertexArray() gfx.VertexArray {
	c.record("CreateVertexArray")
	return gfx.VertexArray(c.handle("vertexarray"))
}

func (c *Context) BindVertexArray(vao gfx.VertexArray) {
	c.record("BindVertexArray", vao)
}

func (c *Context) DeleteVertexArray(vao gfx.VertexArray) {
	c.release("vertexarray", uint32(vao))
	c.record("DeleteVertexArray", vao)
}

func (c *Context) CreateFramebuffer() gfx.Framebuffer {
	c.record("CreateFramebuffer")
	return gfx.Framebuffer(c.handle("framebuffer"))
}

func (c *Context) BindFramebuffer(fbo gfx.Framebuffer) {
	c.framebuffer = fbo
	c.record("BindFramebuffer", fbo)
}

func (c *Context) FramebufferTexture(tex gfx.Texture) {
	c.record("FramebufferTexture", c.framebuffer, tex)
}

func (c *Context) DrawBuffers() {
	c.record("DrawBuffers")
}

func (c *Context) DeleteFramebuffer(fbo gfx.Framebuffer) {
	c.release("framebuffer", uint32(fbo))
	c.record("DeleteFramebuffer", fbo)
}

func (c *Context) CreateTexture(width int32, height int32) gfx.Texture {
	c.record("CreateTexture", width, height)
	return gfx.Texture(c.handle("texture"))
}

func (c *Context) BindTexture(unit int32, tex gfx.Texture) {
	c.record("BindTexture", unit, tex)
}

func (c *Context) DeleteTexture(tex gfx.Texture) {
	c.release("texture", uint32(tex))
	c.record("DeleteTexture", tex)
}

func (c *Context) Viewport(width int32, height int32) {
	c.viewportW = width
	c.viewportH = height
	c.record("Viewport", width, height)
}

func (c *Context) ViewportSize() (int32, int32) {
	return c.viewportW, c.viewportH
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.record("ClearColor", r, g, b, a)
}

func (c *Context) Clear() {
	c.record("Clear", c.framebuffer)
}

func (c *Context) DrawTriangles(first int32, count int32) {
	c.record("DrawTriangles", c.framebuffer, first, count)
}

// ReadPixels fills every byte of a row with the row number. Row zero is the
// bottom row as it is with OpenGL.
func (c *Context) ReadPixels(x, y, width, height int32, format gfx.PixelFormat, dst []uint8) {
	c.record("ReadPixels", c.framebuffer, width, height, format.BytesPerPixel())
	stride := int(width) * format.BytesPerPixel()
	for row := 0; row < int(height); row++ {
		for i := row * stride; i < (row+1)*stride && i < len(dst); i++ {
			dst[i] = uint8(row)
		}
	}
}

func (c *Context) Err() error {
	return c.err
}
