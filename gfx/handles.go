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

// Handles to resources owned by the graphics API. The zero value of each
// handle type is never a valid resource, except for DefaultFramebuffer.
type (
	Program     uint32
	Shader      uint32
	Buffer      uint32
	VertexArray uint32
	Framebuffer uint32
	Texture     uint32
)

// DefaultFramebuffer is the framebuffer of the window.
const DefaultFramebuffer Framebuffer = 0

// ShaderStage identifies the stage of a shader program.
type ShaderStage int

// List of valid ShaderStage values. StageLink is used to identify a failure
// to link the stages together.
const (
	StageVertex ShaderStage = iota
	StageFragment
	StageLink
)

func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageLink:
		return "link"
	}
	return "unknown"
}

// PixelFormat is the format of pixel data read with Context.ReadPixels().
type PixelFormat int

// List of valid PixelFormat values.
const (
	RGB PixelFormat = iota
	RGBA
)

// BytesPerPixel returns the number of bytes used by each pixel in the format.
func (f PixelFormat) BytesPerPixel() int {
	if f == RGBA {
		return 4
	}
	return 3
}
