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

//go:build gldebug

package gl32

import (
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/musicvis/gfx"
	"github.com/jetsetilly/musicvis/logger"
)

// check for an error raised by the most recent call. only the first error is
// kept.
func (ctx *Context) check(call string) {
	code := gl.GetError()
	if code == gl.NO_ERROR || ctx.err != nil {
		return
	}
	ctx.err = &gfx.GLError{Call: call, Code: code}
	logger.Log(logger.Allow, "gl32", ctx.err)
}
