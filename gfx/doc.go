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

// Package gfx is the two stage render pipeline at the centre of musicvis.
//
// A Visualizer draws a scene into an offscreen texture and a Screen
// composites that texture onto the final output. The Pipeline type runs the
// two stages in order for every audio frame, and Run() drives the pipeline
// from a channel of frames in either a windowed or a headless loop.
//
// All graphics calls go through the Context interface. The gl32 package
// implements Context with OpenGL 3.2 and the gfxtest package implements a
// recording Context for testing without a GPU. A Context must only be used by
// the goroutine that created it, which is locked to its OS thread.
package gfx
