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

package gfxtest

import (
	"github.com/jetsetilly/musicvis/gfx"
)

// Window is an implementation of gfx.Window that uses a recording Context.
type Window struct {
	Ctx *Context

	// the spec passed to the WindowCreator
	Spec gfx.WindowSpec

	// events returned by the next call to PollEvents()
	Pending []gfx.Event

	// queue an EventClose after this number of swaps. zero means never
	CloseAfterSwaps int

	// error returned by Swap()
	SwapErr error

	Polls     int
	Swaps     int
	Resizes   [][2]int32
	Destroyed bool
}

// NewWindow is the preferred method of initialisation for the Window type.
func NewWindow() *Window {
	return &Window{
		Ctx: NewContext(),
	}
}

// Creator returns a gfx.WindowCreator that always returns the window.
func (w *Window) Creator() gfx.WindowCreator {
	return func(spec gfx.WindowSpec) (gfx.Window, error) {
		w.Spec = spec
		return w, nil
	}
}

func (w *Window) Context() gfx.Context {
	return w.Ctx
}

func (w *Window) PollEvents() []gfx.Event {
	w.Polls++
	ev := w.Pending
	w.Pending = nil
	return ev
}

func (w *Window) Resize(width int32, height int32) {
	w.Resizes = append(w.Resizes, [2]int32{width, height})
}

func (w *Window) Swap() error {
	if w.SwapErr != nil {
		return w.SwapErr
	}
	w.Swaps++
	if w.CloseAfterSwaps > 0 && w.Swaps == w.CloseAfterSwaps {
		w.Pending = append(w.Pending, gfx.Event{Kind: gfx.EventClose})
	}
	return nil
}

func (w *Window) Destroy() error {
	w.Destroyed = true
	return nil
}
