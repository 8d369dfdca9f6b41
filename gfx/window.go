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

// EventKind identifies the type of an Event.
type EventKind int

// List of valid EventKind values.
const (
	EventClose EventKind = iota
	EventResize
)

// Event is a window event of interest to the render loop.
type Event struct {
	Kind EventKind

	// new size of the window for EventResize
	Width  int32
	Height int32
}

// Window is the boundary with the windowing system. A Window owns the
// graphics context.
type Window interface {
	// Context returns the graphics context of the window.
	Context() Context

	// PollEvents returns pending events without blocking.
	PollEvents() []Event

	// Resize the window surface. The pipeline is not affected.
	Resize(width int32, height int32)

	// Swap presents the default framebuffer.
	Swap() error

	// Destroy the window and its graphics context.
	Destroy() error
}

// WindowSpec describes the window to create.
type WindowSpec struct {
	Title string

	// width and height of the window
	Size int32

	// a hidden window is used for headless rendering
	Hidden bool

	// synchronise Swap() with the display
	VSync bool
}

// WindowCreator creates a window and makes its graphics context current on
// the calling thread.
type WindowCreator func(spec WindowSpec) (Window, error)
