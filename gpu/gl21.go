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

//go:build gl21

package gpu

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/jetsetilly/glatlas/assert"
	"github.com/jetsetilly/glatlas/logger"
)

// GL is a Device implemented with OpenGL 2.1.
type GL struct {
	version string
	owner   assert.Owner
}

// NewGL initialises the OpenGL function pointers for the current context. A
// GL context must be current on the calling thread.
func NewGL() (*GL, error) {
	err := gl.Init()
	if err != nil {
		return nil, fmt.Errorf("gpu: %w", err)
	}

	dev := &GL{
		version: gl.GoStr(gl.GetString(gl.VERSION)),
		owner:   assert.NewOwner(),
	}

	// log GPU vendor information
	logger.Logf(logger.Allow, "gpu", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "gpu", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "gpu", "driver: %s", dev.version)

	// pixel rows from the decoders are tightly packed
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	// fixed function texturing
	gl.Enable(gl.TEXTURE_2D)

	return dev, nil
}

// Version returns the GL version string reported by the driver.
func (dev *GL) Version() string {
	return dev.version
}

// the GL context is only current on the goroutine that called NewGL()
func (dev *GL) checkOwner(call string) {
	if !dev.owner.IsOwner() {
		logger.Logf(logger.Allow, "gpu", "%s called from goroutine that does not own the GL context", call)
	}
}

// GenTexture implements the Device interface.
func (dev *GL) GenTexture() uint32 {
	dev.checkOwner("GenTexture")
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

// DeleteTexture implements the Device interface.
func (dev *GL) DeleteTexture(id uint32) {
	dev.checkOwner("DeleteTexture")
	gl.DeleteTextures(1, &id)
}

// BindTexture implements the Device interface.
func (dev *GL) BindTexture(id uint32) {
	dev.checkOwner("BindTexture")
	gl.BindTexture(gl.TEXTURE_2D, id)
}

// BoundTexture implements the Device interface.
func (dev *GL) BoundTexture() uint32 {
	dev.checkOwner("BoundTexture")
	var id int32
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &id)
	return uint32(id)
}

// TexImage2D implements the Device interface.
func (dev *GL) TexImage2D(width, height int, format Format, pixels []byte) {
	dev.checkOwner("TexImage2D")
	f := uint32(gl.RGB)
	if format == RGBA {
		f = gl.RGBA
	}

	var ptr unsafe.Pointer
	if len(pixels) > 0 {
		ptr = gl.Ptr(pixels)
	}

	gl.TexImage2D(gl.TEXTURE_2D, 0,
		int32(f), int32(width), int32(height), 0,
		f, gl.UNSIGNED_BYTE,
		ptr)
}

// TexFilter implements the Device interface.
func (dev *GL) TexFilter(min, mag Filter) {
	dev.checkOwner("TexFilter")
	filter := func(f Filter) int32 {
		if f == Nearest {
			return gl.NEAREST
		}
		return gl.LINEAR
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter(min))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter(mag))
}

// TexWrap implements the Device interface.
func (dev *GL) TexWrap(s, t Wrap) {
	dev.checkOwner("TexWrap")
	wrap := func(w Wrap) int32 {
		switch w {
		case ClampToEdge:
			return gl.CLAMP_TO_EDGE
		case ClampToBorder:
			return gl.CLAMP_TO_BORDER
		case MirroredRepeat:
			return gl.MIRRORED_REPEAT
		}
		return gl.REPEAT
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap(s))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap(t))
}
