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

package gfx_test

import (
	"errors"

	"github.com/jetsetilly/musicvis/audio"
	"github.com/jetsetilly/musicvis/gfx"
)

// stubVisualizer records the order of calls from the pipeline. it uses the
// context so that calls are visible in the context's record.
type stubVisualizer struct {
	setupErr  error
	renderErr error

	setups    int
	updates   int
	renders   int
	destroyed bool

	size int32
	tex  gfx.Texture
}

func (v *stubVisualizer) Setup(ctx gfx.Context, size int32) error {
	v.setups++
	if v.setupErr != nil {
		return v.setupErr
	}
	v.size = size
	v.tex = ctx.CreateTexture(size, size)
	return nil
}

func (v *stubVisualizer) Update(_ audio.Frame) {
	v.updates++
}

func (v *stubVisualizer) RenderToTexture(ctx gfx.Context) (gfx.Texture, error) {
	v.renders++
	if v.renderErr != nil {
		return 0, v.renderErr
	}
	ctx.DrawTriangles(0, 6)
	return v.tex, nil
}

func (v *stubVisualizer) Destroy(ctx gfx.Context) {
	v.destroyed = true
	ctx.DeleteTexture(v.tex)
}

type stubScreen struct {
	window   bool
	setupErr error

	setups    int
	renders   int
	destroyed bool

	lastTex  gfx.Texture
	lastSize int32
}

func (s *stubScreen) UsesWindow() bool {
	return s.window
}

func (s *stubScreen) Setup(_ gfx.Context) error {
	s.setups++
	return s.setupErr
}

func (s *stubScreen) RenderFromTexture(ctx gfx.Context, tex gfx.Texture, size int32) error {
	s.renders++
	s.lastTex = tex
	s.lastSize = size
	ctx.BindTexture(0, tex)
	return nil
}

func (s *stubScreen) Destroy(_ gfx.Context) {
	s.destroyed = true
}

var errStub = errors.New("stub error")
