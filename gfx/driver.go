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
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/jetsetilly/musicvis/audio"
	"github.com/jetsetilly/musicvis/logger"
	"github.com/jetsetilly/musicvis/metrics"
)

// how long to wait before polling a disconnected audio channel again
const disconnectBackoff = 10 * time.Millisecond

// Run the render loop. A windowed loop is used if the Screen uses a window,
// otherwise the loop is headless.
//
// The loop receives frames from the channel and runs the pipeline once for
// each frame. It ends when the window is closed, when the channel is closed
// and the ExitOnDisconnect preference is true, or when the context is
// cancelled. These are not errors and Run() returns nil.
//
// The calling goroutine is locked to its OS thread for the duration of the
// call. All graphics calls are made on that thread.
func Run(ctx context.Context, create WindowCreator, vis Visualizer, scr Screen,
	frames <-chan audio.Frame, size int32, p *Preferences, met *metrics.Metrics) error {

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if p == nil {
		var err error
		p, err = NewPreferences(nil)
		if err != nil {
			return err
		}
	}

	l := loop{
		windowed: scr.UsesWindow(),
		frames:   frames,
		prefs:    p,
		met:      met,
	}

	spec := WindowSpec{
		Title:  p.Title.String(),
		Size:   size,
		Hidden: !l.windowed,
		VSync:  l.windowed && p.VSync.Get().(bool),
	}

	win, err := create(spec)
	if err != nil {
		met.RecordSetupFailure(ctx, l.mode())
		return fmt.Errorf("gfx: %w", err)
	}
	defer func() {
		if err := win.Destroy(); err != nil {
			logger.Log(logger.Allow, "gfx", err)
		}
	}()
	l.win = win

	pl, err := NewPipeline(win.Context(), vis, scr, size, int32(p.CompositeScale.Get().(int)))
	if err != nil {
		met.RecordSetupFailure(ctx, l.mode())
		return err
	}
	defer pl.Destroy()
	l.pl = pl

	logger.Logf(logger.Allow, "gfx", "%s loop started (%dx%d)", l.mode(), size, size)
	defer logger.Logf(logger.Allow, "gfx", "%s loop ended", l.mode())

	return l.run(ctx)
}

// loop is the state of the render loop.
type loop struct {
	windowed bool
	win      Window
	pl       *Pipeline
	frames   <-chan audio.Frame
	prefs    *Preferences
	met      *metrics.Metrics
}

func (l *loop) mode() string {
	if l.windowed {
		return "windowed"
	}
	return "headless"
}

// pumpEvents handles pending window events. returns true if the window has
// been closed.
func (l *loop) pumpEvents() bool {
	for _, ev := range l.win.PollEvents() {
		switch ev.Kind {
		case EventClose:
			return true
		case EventResize:
			l.win.Resize(ev.Width, ev.Height)
		}
	}
	return false
}

func (l *loop) run(ctx context.Context) error {
	for {
		var frame audio.Frame
		var ok bool

		select {
		case <-ctx.Done():
			return nil
		case frame, ok = <-l.frames:
		}

		if l.windowed && l.pumpEvents() {
			return nil
		}

		if !ok {
			if l.prefs.ExitOnDisconnect.Get().(bool) {
				logger.Log(logger.Allow, "gfx", "audio disconnected")
				return nil
			}

			l.met.RecordSkip(ctx, l.mode())

			select {
			case <-ctx.Done():
				return nil
			case <-time.After(disconnectBackoff):
			}
			continue // for loop
		}

		start := time.Now()

		if err := l.pl.Update(frame); err != nil {
			return err
		}

		if l.windowed {
			if err := l.win.Swap(); err != nil {
				return fmt.Errorf("gfx: %w", err)
			}
		}

		l.met.RecordFrame(ctx, l.mode(), time.Since(start))
	}
}
