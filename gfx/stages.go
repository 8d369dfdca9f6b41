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
	"github.com/jetsetilly/musicvis/audio"
)

// Visualizer is the first stage of the pipeline. It turns audio frames into a
// scene drawn into an offscreen texture.
type Visualizer interface {
	// Setup compiles shaders and creates the offscreen target of size x size
	// pixels. Called once before any other function.
	Setup(ctx Context, size int32) error

	// Update advances the visualizer state with the next audio frame. Update
	// makes no graphics calls.
	Update(frame audio.Frame)

	// RenderToTexture draws the current state into the offscreen target and
	// returns the texture. The texture remains owned by the visualizer.
	RenderToTexture(ctx Context) (Texture, error)

	// Destroy releases all graphics resources.
	Destroy(ctx Context)
}

// Screen is the second stage of the pipeline. It composites the output of
// the visualizer onto the final display target.
type Screen interface {
	// UsesWindow returns true if the screen presents to a visible window.
	UsesWindow() bool

	// Setup is called once, after the Visualizer has been set up.
	Setup(ctx Context) error

	// RenderFromTexture composites the texture onto the display target. The
	// size argument is the size of the visualizer's texture. The texture must
	// not be kept beyond the call.
	RenderFromTexture(ctx Context, tex Texture, size int32) error

	// Destroy releases all graphics resources.
	Destroy(ctx Context)
}
