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
	"math"

	"github.com/jetsetilly/musicvis/audio"
)

// MaxCompositeScale is the largest composite scale accepted by NewPipeline().
const MaxCompositeScale = 8

// Pipeline runs a Visualizer and a Screen in order for every audio frame.
type Pipeline struct {
	ctx Context
	vis Visualizer
	scr Screen

	// size of the visualizer's offscreen target
	size int32

	// the viewport during the screen stage is compositeScale times the size of
	// the offscreen target
	compositeScale int32
}

// NewPipeline is the preferred method of initialisation for the Pipeline
// type. The Visualizer is set up before the Screen. If the Visualizer fails
// to set up then the Screen is never set up.
func NewPipeline(ctx Context, vis Visualizer, scr Screen, size int32, compositeScale int32) (*Pipeline, error) {
	if size <= 0 {
		return nil, fmt.Errorf("gfx: pipeline size must be positive (%d)", size)
	}
	if compositeScale <= 0 || compositeScale > MaxCompositeScale {
		return nil, fmt.Errorf("gfx: composite scale must be between 1 and %d (%d)", MaxCompositeScale, compositeScale)
	}
	if int64(size)*int64(compositeScale) > math.MaxInt32 {
		return nil, fmt.Errorf("gfx: composited size is too large (%d * %d)", size, compositeScale)
	}

	if err := vis.Setup(ctx, size); err != nil {
		return nil, wrap("visualizer setup", err)
	}

	if err := scr.Setup(ctx); err != nil {
		vis.Destroy(ctx)
		return nil, wrap("screen setup", err)
	}

	return &Pipeline{
		ctx:            ctx,
		vis:            vis,
		scr:            scr,
		size:           size,
		compositeScale: compositeScale,
	}, nil
}

// wrap error with the name of the pipeline stage.
func wrap(stage string, err error) error {
	return fmt.Errorf("gfx: %s: %w", stage, err)
}

// Size returns the size of the visualizer's offscreen target.
func (pl *Pipeline) Size() int32 {
	return pl.size
}

// Update the visualizer with the audio frame and render both stages. Graphics
// state is not restored afterwards.
func (pl *Pipeline) Update(frame audio.Frame) error {
	pl.vis.Update(frame)

	pl.ctx.BindFramebuffer(DefaultFramebuffer)
	pl.ctx.ClearColor(0.0, 0.0, 0.0, 1.0)
	pl.ctx.Clear()
	pl.ctx.Viewport(pl.size, pl.size)
	if err := pl.ctx.Err(); err != nil {
		return wrap("clear", err)
	}

	tex, err := pl.vis.RenderToTexture(pl.ctx)
	if err != nil {
		return wrap("visualizer", err)
	}
	if err := pl.ctx.Err(); err != nil {
		return wrap("visualizer", err)
	}

	scaled := pl.size * pl.compositeScale
	pl.ctx.Viewport(scaled, scaled)

	if err := pl.scr.RenderFromTexture(pl.ctx, tex, pl.size); err != nil {
		return wrap("screen", err)
	}
	if err := pl.ctx.Err(); err != nil {
		return wrap("screen", err)
	}

	return nil
}

// ReadPixels returns the RGB pixels of the currently bound framebuffer. Rows
// are ordered bottom to top.
func (pl *Pipeline) ReadPixels(width int32, height int32) []uint8 {
	pixels := make([]uint8, int(width)*int(height)*RGB.BytesPerPixel())
	pl.ctx.ReadPixels(0, 0, width, height, RGB, pixels)
	return pixels
}

// Destroy releases the resources of the screen and then the visualizer.
func (pl *Pipeline) Destroy() {
	pl.scr.Destroy(pl.ctx)
	pl.vis.Destroy(pl.ctx)
}
