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

// Package sdlwindow implements the gfx.Window interface with SDL. The window
// has an OpenGL 3.2 core profile context, which is presented to the render
// pipeline through the gl32 package.
//
// The Create() function must be called from the goroutine that will use the
// window, and that goroutine must be locked to its OS thread. gfx.Run() takes
// care of this.
package sdlwindow

import (
	"fmt"
	"runtime"

	"github.com/jetsetilly/musicvis/gfx"
	"github.com/jetsetilly/musicvis/gfx/gl32"
	"github.com/jetsetilly/musicvis/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Window implements the gfx.Window interface.
type Window struct {
	window    *sdl.Window
	glContext sdl.GLContext
	ctx       *gl32.Context
}

// Create is a gfx.WindowCreator. The window is created with an OpenGL context
// that is made current on the calling thread.
func Create(spec gfx.WindowSpec) (gfx.Window, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and the caller should have done it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	err = glAttributes()
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_ALLOW_HIGHDPI | sdl.WINDOW_RESIZABLE)
	if spec.Hidden {
		flags |= sdl.WINDOW_HIDDEN
	}

	win := &Window{}

	win.window, err = sdl.CreateWindow(spec.Title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		spec.Size, spec.Size, flags)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	win.glContext, err = win.window.GLCreateContext()
	if err != nil {
		_ = win.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	err = win.window.GLMakeCurrent(win.glContext)
	if err != nil {
		_ = win.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	swapInterval := 0
	if spec.VSync {
		swapInterval = 1
	}
	err = sdl.GLSetSwapInterval(swapInterval)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "GLSetSwapInterval(%d): %s", swapInterval, err.Error())
	}

	win.ctx, err = gl32.New(sdl.GLGetProcAddress)
	if err != nil {
		_ = win.Destroy()
		return nil, err
	}

	var ver sdl.Version
	sdl.GetVersion(&ver)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", ver.Major, ver.Minor, ver.Patch)

	return win, nil
}

func glAttributes() error {
	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 3},
		{sdl.GL_CONTEXT_MINOR_VERSION, 2},
		{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_DOUBLEBUFFER, 1},
	}
	for _, a := range attrs {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			return err
		}
	}
	return nil
}

// Context implements the gfx.Window interface.
func (win *Window) Context() gfx.Context {
	return win.ctx
}

// PollEvents implements the gfx.Window interface.
func (win *Window) PollEvents() []gfx.Event {
	var events []gfx.Event
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if e, ok := translate(ev); ok {
			events = append(events, e)
		}
	}
	return events
}

func translate(ev sdl.Event) (gfx.Event, bool) {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return gfx.Event{Kind: gfx.EventClose}, true
	case *sdl.WindowEvent:
		switch ev.Event {
		case sdl.WINDOWEVENT_CLOSE:
			return gfx.Event{Kind: gfx.EventClose}, true
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			return gfx.Event{Kind: gfx.EventResize, Width: ev.Data1, Height: ev.Data2}, true
		}
	}
	return gfx.Event{}, false
}

// Resize implements the gfx.Window interface.
func (win *Window) Resize(width int32, height int32) {
	if win.window == nil {
		return
	}
	w, h := win.window.GetSize()
	if w != width || h != height {
		win.window.SetSize(width, height)
	}
}

// Swap implements the gfx.Window interface.
func (win *Window) Swap() error {
	if win.window == nil {
		return fmt.Errorf("sdl: swap: window has been destroyed")
	}
	win.window.GLSwap()
	return nil
}

// Destroy implements the gfx.Window interface.
func (win *Window) Destroy() error {
	var err error
	if win.glContext != nil {
		sdl.GLDeleteContext(win.glContext)
		win.glContext = nil
	}
	if win.window != nil {
		err = win.window.Destroy()
		win.window = nil
	}
	sdl.Quit()
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}
