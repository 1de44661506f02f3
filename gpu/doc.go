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

// Package gpu is the capability through which textures are created, bound and
// configured. The Device interface exposes only the texture primitives needed
// by the texture package.
//
// The "currently bound texture" is process-wide state in OpenGL. Passing a
// Device explicitly makes that state visible: code that binds a texture must
// have been given the Device to do so. A Device is not safe for concurrent
// use and for the OpenGL implementations must only be used from the thread
// that owns the GL context.
//
// Two OpenGL implementations are available, selected by build tag in the same
// way as the renderer they are derived from. The default is OpenGL 3.2 core.
// Building with the gl21 tag selects OpenGL 2.1.
//
// The Null device performs no GPU work. It records every call and tracks the
// binding state so that code using a Device can be tested without a GL
// context.
package gpu
