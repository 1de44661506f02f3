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

package pixels

// Layout is the arrangement of colour components in a pixel. All layouts are
// one byte per component.
type Layout int

// List of valid Layout values.
const (
	Unknown Layout = iota
	RGB24
	BGR24
	RGBA32
	BGRA32
)

func (l Layout) String() string {
	switch l {
	case RGB24:
		return "RGB24"
	case BGR24:
		return "BGR24"
	case RGBA32:
		return "RGBA32"
	case BGRA32:
		return "BGRA32"
	}
	return "unknown"
}

// BytesPerPixel returns the number of bytes used by a single pixel. Returns
// zero for the Unknown layout.
func (l Layout) BytesPerPixel() int {
	switch l {
	case RGB24, BGR24:
		return 3
	case RGBA32, BGRA32:
		return 4
	}
	return 0
}

// HasAlpha returns true if the layout includes an alpha component.
func (l Layout) HasAlpha() bool {
	return l == RGBA32 || l == BGRA32
}

// Canonical returns the layout that texture data should be uploaded as. The
// alpha flag indicates whether the source image carries an alpha channel.
func Canonical(alpha bool) Layout {
	if alpha {
		return RGBA32
	}
	return RGB24
}

// offsets of the red, green, blue and alpha components in a pixel. alpha
// offset is -1 if the layout has no alpha component
func (l Layout) offsets() (r, g, b, a int) {
	switch l {
	case RGB24:
		return 0, 1, 2, -1
	case BGR24:
		return 2, 1, 0, -1
	case RGBA32:
		return 0, 1, 2, 3
	case BGRA32:
		return 2, 1, 0, 3
	}
	return -1, -1, -1, -1
}
