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

import (
	"fmt"
	"strings"
)

// GLError is an error code raised by the graphics API.
type GLError struct {
	// the name of the call that raised the error. can be empty
	Call string
	Code uint32
}

func (e *GLError) Error() string {
	if e.Call == "" {
		return fmt.Sprintf("gl error: %d (0x%X)", e.Code, e.Code)
	}
	return fmt.Sprintf("gl error: %d (0x%X) in %s", e.Code, e.Code, e.Call)
}

// ShaderError is returned when a shader fails to compile or a program fails
// to link. The Log field is the diagnostic output of the shader compiler.
type ShaderError struct {
	Stage ShaderStage
	Log   string
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("shader: %s: %s", e.Stage, firstLine(e.Log))
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
