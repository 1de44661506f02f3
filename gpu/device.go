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

package gpu

import (
	"fmt"
	"strings"
)

// Device is the set of texture primitives required to create and configure
// 2D textures.
type Device interface {
	// GenTexture allocates a new texture name. Zero is never returned.
	GenTexture() uint32

	// DeleteTexture releases the texture name. If the texture is bound then
	// the binding reverts to zero.
	DeleteTexture(id uint32)

	// BindTexture sets the 2D texture binding. An id of zero unbinds.
	BindTexture(id uint32)

	// BoundTexture returns the current 2D texture binding.
	BoundTexture() uint32

	// TexImage2D uploads pixel data to the bound texture. The pixel data is
	// tightly packed and in the specified format.
	TexImage2D(width, height int, format Format, pixels []byte)

	// TexFilter sets the minification and magnification filters of the bound
	// texture.
	TexFilter(min, mag Filter)

	// TexWrap sets the wrap mode on the S and T axes of the bound texture.
	TexWrap(s, t Wrap)
}

// Wrap is the texture wrap mode for one axis.
type Wrap int

// List of valid Wrap values.
const (
	ClampToEdge Wrap = iota
	ClampToBorder
	Repeat
	MirroredRepeat
)

// WrapList is the list of wrap modes in the order they are defined. Suitable
// for use in help messages.
var WrapList = []Wrap{ClampToEdge, ClampToBorder, Repeat, MirroredRepeat}

func (w Wrap) String() string {
	switch w {
	case ClampToEdge:
		return "clamp-to-edge"
	case ClampToBorder:
		return "clamp-to-border"
	case Repeat:
		return "repeat"
	case MirroredRepeat:
		return "mirrored-repeat"
	}
	return fmt.Sprintf("wrap(%d)", int(w))
}

// ParseWrap converts a string to a Wrap value. The string is compared without
// regard to case and underscores are treated as hyphens, so that the OpenGL
// names ("CLAMP_TO_EDGE", etc.) are also accepted.
func ParseWrap(s string) (Wrap, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	n = strings.TrimPrefix(n, "gl-")
	for _, w := range WrapList {
		if n == w.String() {
			return w, nil
		}
	}
	return Repeat, fmt.Errorf("gpu: unrecognised wrap mode (%s)", s)
}

// Filter is the texture filtering mode.
type Filter int

// List of valid Filter values.
const (
	Linear Filter = iota
	Nearest
)

func (f Filter) String() string {
	switch f {
	case Linear:
		return "linear"
	case Nearest:
		return "nearest"
	}
	return fmt.Sprintf("filter(%d)", int(f))
}

// Format is the format of pixel data uploaded with TexImage2D. Both formats
// are one unsigned byte per component.
type Format int

// List of valid Format values.
const (
	RGB Format = iota
	RGBA
)

func (f Format) String() string {
	switch f {
	case RGB:
		return "RGB"
	case RGBA:
		return "RGBA"
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// BytesPerPixel returns the number of bytes used by one pixel of the format.
func (f Format) BytesPerPixel() int {
	if f == RGBA {
		return 4
	}
	return 3
}
