// This file is part of glatlas.
//
// glatlas is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// glatlas is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with glatlas.  If not, see <https://www.gnu.org/licenses/>.

// Package window creates a hidden SDL window with an OpenGL context. The
// window is never shown. It exists only so that textures can be created on a
// real GPU.
//
// The OpenGL version requested matches the gpu package: 3.2 core by default
// and 2.1 when built with the gl21 tag.
package window

import (
	"fmt"
	"runtime"

	"github.com/jetsetilly/glatlas/logger"
	"github.com/jetsetilly/glatlas/version"
	"github.com/veandco/go-sdl2/sdl"
)

// Window is a hidden SDL window and its GL context.
type Window struct {
	window  *sdl.Window
	context sdl.GLContext
}

// New creates the window and makes the GL context current on the calling
// thread. The calling OS thread is locked and is never unlocked.
func New() (*Window, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}

	err = setAttributes()
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("window: %w", err)
	}

	major, err := sdl.GLGetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("window: %w", err)
	}
	minor, err := sdl.GLGetAttribute(sdl.GL_CONTEXT_MINOR_VERSION)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("window: %w", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "window", "sdl version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)
	logger.Logf(logger.Allow, "window", "requesting GL version %d.%d", major, minor)

	win := &Window{}

	win.window, err = sdl.CreateWindow(version.ApplicationName,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, 64, 64,
		sdl.WINDOW_OPENGL|sdl.WINDOW_HIDDEN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("window: %w", err)
	}

	win.context, err = win.window.GLCreateContext()
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("window: %w", err)
	}

	err = win.window.GLMakeCurrent(win.context)
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("window: %w", err)
	}

	return win, nil
}

// Destroy the GL context and window and shut down SDL.
func (win *Window) Destroy() {
	if win.context != nil {
		sdl.GLDeleteContext(win.context)
		win.context = nil
	}
	if win.window != nil {
		if err := win.window.Destroy(); err != nil {
			logger.Log(logger.Allow, "window", err)
		}
		win.window = nil
	}
	sdl.Quit()
}
