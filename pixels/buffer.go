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

import (
	"fmt"

	"github.com/jetsetilly/glatlas/curated"
	"github.com/jetsetilly/glatlas/errors"
)

// Buffer is decoded image data.
type Buffer struct {
	Width  int
	Height int
	Layout Layout

	// whether the source image carries an alpha channel. this can differ
	// from Layout.HasAlpha() if the decoder has added or removed the alpha
	// component
	HasAlpha bool

	// bits per pixel of the source image. zero if the source had the same
	// depth as Layout
	SourceDepth int

	// tightly packed rows, top row first
	Pix []byte

	// a description of the source format. for information only
	Format string
}

func (buf *Buffer) String() string {
	return fmt.Sprintf("%dx%d %s (%s)", buf.Width, buf.Height, buf.Layout, buf.Format)
}

// Depth returns the bits per pixel of the source image.
func (buf *Buffer) Depth() int {
	if buf.SourceDepth == 0 {
		return buf.Layout.BytesPerPixel() * 8
	}
	return buf.SourceDepth
}

// Source describes the pixel format of the source image. If the decoder
// converted the pixels from another depth then the description includes the
// source depth and format.
func (buf *Buffer) Source() string {
	if buf.Depth() == buf.Layout.BytesPerPixel()*8 {
		return buf.Layout.String()
	}
	return fmt.Sprintf("%s (%d-bit %s)", buf.Layout, buf.Depth(), buf.Format)
}

// Stride returns the number of bytes in one row of pixels.
func (buf *Buffer) Stride() int {
	return buf.Width * buf.Layout.BytesPerPixel()
}

// Valid returns an error if the dimensions, layout and length of the pixel
// data are not consistent.
func (buf *Buffer) Valid() error {
	if buf.Layout == Unknown {
		return fmt.Errorf("pixels: unknown layout")
	}
	if buf.Width <= 0 || buf.Height <= 0 {
		return fmt.Errorf("pixels: invalid dimensions %dx%d", buf.Width, buf.Height)
	}
	if len(buf.Pix) != buf.Stride()*buf.Height {
		return fmt.Errorf("pixels: expected %d bytes of %s data for %dx%d but have %d",
			buf.Stride()*buf.Height, buf.Layout, buf.Width, buf.Height, len(buf.Pix))
	}
	return nil
}

// Convert returns a new Buffer with the pixel data converted to the specified
// layout. If an alpha component is added it is set to fully opaque. If an
// alpha component is dropped then it is discarded without blending.
//
// The original buffer is returned unchanged if it is already in the requested
// layout.
func Convert(buf *Buffer, to Layout) (*Buffer, error) {
	if buf.Layout == to {
		return buf, nil
	}
	if buf.Layout == Unknown || to == Unknown {
		return nil, curated.Errorf(errors.UnsupportedConversion, buf.Layout, to)
	}
	if err := buf.Valid(); err != nil {
		return nil, err
	}

	sr, sg, sb, sa := buf.Layout.offsets()
	dr, dg, db, da := to.offsets()
	sbpp := buf.Layout.BytesPerPixel()
	dbpp := to.BytesPerPixel()

	n := buf.Width * buf.Height
	pix := make([]byte, n*dbpp)

	for i := 0; i < n; i++ {
		s := buf.Pix[i*sbpp : (i+1)*sbpp]
		d := pix[i*dbpp : (i+1)*dbpp]
		d[dr] = s[sr]
		d[dg] = s[sg]
		d[db] = s[sb]
		if da >= 0 {
			if sa >= 0 {
				d[da] = s[sa]
			} else {
				d[da] = 0xff
			}
		}
	}

	return &Buffer{
		Width:       buf.Width,
		Height:      buf.Height,
		Layout:      to,
		HasAlpha:    buf.HasAlpha,
		SourceDepth: buf.Depth(),
		Pix:         pix,
		Format:      buf.Format,
	}, nil
}

// FlipVertically reverses the order of the pixel rows in place.
func FlipVertically(buf *Buffer) {
	stride := buf.Stride()
	if stride == 0 || len(buf.Pix) < stride*buf.Height {
		return
	}

	tmp := make([]byte, stride)
	for top, bot := 0, buf.Height-1; top < bot; top, bot = top+1, bot-1 {
		t := buf.Pix[top*stride : (top+1)*stride]
		b := buf.Pix[bot*stride : (bot+1)*stride]
		copy(tmp, t)
		copy(t, b)
		copy(b, tmp)
	}
}
