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

package texture

import (
	"fmt"

	"github.com/jetsetilly/glatlas/gpu"
	"github.com/jetsetilly/glatlas/pixels"
)

// Texture2D is a single 2D texture on a gpu.Device.
type Texture2D struct {
	dev gpu.Device
	id  uint32

	// dimensions of the most recent upload
	width  int
	height int
}

// New is the preferred method of initialisation for the Texture2D type. A new
// texture name is allocated on the device. Destroy() should be called when
// the texture is no longer required.
func New(dev gpu.Device) *Texture2D {
	return &Texture2D{
		dev: dev,
		id:  dev.GenTexture(),
	}
}

func (tex *Texture2D) String() string {
	if tex.id == 0 {
		return "texture (destroyed)"
	}
	return fmt.Sprintf("texture %d (%dx%d)", tex.id, tex.width, tex.height)
}

// ID returns the texture name. Returns zero if the texture has been destroyed.
func (tex *Texture2D) ID() uint32 {
	return tex.id
}

// Width returns the width of the most recent upload.
func (tex *Texture2D) Width() int {
	return tex.width
}

// Height returns the height of the most recent upload.
func (tex *Texture2D) Height() int {
	return tex.height
}

// Bind makes this the current 2D texture. Binding a destroyed texture has no
// effect.
func (tex *Texture2D) Bind() {
	if tex.id == 0 {
		return
	}
	tex.dev.BindTexture(tex.id)
}

// Unbind clears the 2D texture binding. The binding is cleared regardless of
// which texture is currently bound.
func (tex *Texture2D) Unbind() {
	tex.dev.BindTexture(0)
}

// DoWhileBound binds the texture and runs the function. The texture is left
// bound when the function returns. The function is not run if the texture has
// been destroyed.
func (tex *Texture2D) DoWhileBound(f func() error) error {
	if tex.id == 0 {
		return fmt.Errorf("texture: bind of destroyed texture")
	}
	tex.Bind()
	return f()
}

// Destroy releases the texture name. It is safe to call Destroy() more than
// once.
func (tex *Texture2D) Destroy() {
	if tex.id == 0 {
		return
	}
	tex.dev.DeleteTexture(tex.id)
	tex.id = 0
}

// upload pixel data to the texture. the texture must be bound
func (tex *Texture2D) upload(buf *pixels.Buffer) error {
	var format gpu.Format
	switch buf.Layout {
	case pixels.RGB24:
		format = gpu.RGB
	case pixels.RGBA32:
		format = gpu.RGBA
	default:
		return fmt.Errorf("texture: cannot upload %s pixels", buf.Layout)
	}

	tex.dev.TexImage2D(buf.Width, buf.Height, format, buf.Pix)
	tex.width = buf.Width
	tex.height = buf.Height

	return nil
}
