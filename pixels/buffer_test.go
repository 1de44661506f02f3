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

package pixels_test

import (
	"testing"

	"github.com/jetsetilly/glatlas/curated"
	"github.com/jetsetilly/glatlas/errors"
	"github.com/jetsetilly/glatlas/pixels"
	"github.com/jetsetilly/glatlas/test"
)

func TestLayout(t *testing.T) {
	test.ExpectEquality(t, pixels.RGB24.BytesPerPixel(), 3)
	test.ExpectEquality(t, pixels.BGRA32.BytesPerPixel(), 4)
	test.ExpectEquality(t, pixels.Unknown.BytesPerPixel(), 0)
	test.ExpectSuccess(t, pixels.RGBA32.HasAlpha())
	test.ExpectFailure(t, pixels.BGR24.HasAlpha())
	test.ExpectEquality(t, pixels.Canonical(true), pixels.RGBA32)
	test.ExpectEquality(t, pixels.Canonical(false), pixels.RGB24)
}

func TestConvert(t *testing.T) {
	bgr := &pixels.Buffer{
		Width:  2,
		Height: 1,
		Layout: pixels.BGR24,
		Pix:    []byte{1, 2, 3, 4, 5, 6},
	}

	rgb, err := pixels.Convert(bgr, pixels.RGB24)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(rgb.Pix), string([]byte{3, 2, 1, 6, 5, 4}))
	test.ExpectEquality(t, rgb.Layout, pixels.RGB24)

	// original is unchanged
	test.ExpectEquality(t, string(bgr.Pix), string([]byte{1, 2, 3, 4, 5, 6}))

	// alpha added is opaque
	rgba, err := pixels.Convert(bgr, pixels.RGBA32)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(rgba.Pix), string([]byte{3, 2, 1, 255, 6, 5, 4, 255}))

	// alpha is preserved between alpha layouts
	bgra := &pixels.Buffer{
		Width:  1,
		Height: 1,
		Layout: pixels.BGRA32,
		Pix:    []byte{10, 20, 30, 40},
	}
	rgba, err = pixels.Convert(bgra, pixels.RGBA32)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(rgba.Pix), string([]byte{30, 20, 10, 40}))

	// alpha dropped
	rgb, err = pixels.Convert(bgra, pixels.RGB24)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(rgb.Pix), string([]byte{30, 20, 10}))

	// same layout returns the same buffer
	same, err := pixels.Convert(bgra, pixels.BGRA32)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, same, bgra)
}

func TestConvertFailure(t *testing.T) {
	buf := &pixels.Buffer{
		Width:  1,
		Height: 1,
		Layout: pixels.Unknown,
		Pix:    []byte{1, 2},
	}
	_, err := pixels.Convert(buf, pixels.RGB24)
	test.ExpectSuccess(t, curated.Is(err, errors.UnsupportedConversion))
	test.ExpectSuccess(t, errors.Is(err, errors.FormatError))

	// not enough data
	buf.Layout = pixels.RGB24
	_, err = pixels.Convert(buf, pixels.RGBA32)
	test.ExpectFailure(t, err)
}

func TestFlipVertically(t *testing.T) {
	buf := &pixels.Buffer{
		Width:  1,
		Height: 3,
		Layout: pixels.RGB24,
		Pix:    []byte{1, 1, 1, 2, 2, 2, 3, 3, 3},
	}
	pixels.FlipVertically(buf)
	test.ExpectEquality(t, string(buf.Pix), string([]byte{3, 3, 3, 2, 2, 2, 1, 1, 1}))

	// flipping twice restores the original
	pixels.FlipVertically(buf)
	test.ExpectEquality(t, string(buf.Pix), string([]byte{1, 1, 1, 2, 2, 2, 3, 3, 3}))

	even := &pixels.Buffer{
		Width:  2,
		Height: 2,
		Layout: pixels.RGBA32,
		Pix:    []byte{1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 4, 4, 4, 4},
	}
	pixels.FlipVertically(even)
	test.ExpectEquality(t, string(even.Pix), string([]byte{3, 3, 3, 3, 4, 4, 4, 4, 1, 1, 1, 1, 2, 2, 2, 2}))
}

func TestValid(t *testing.T) {
	buf := &pixels.Buffer{
		Width:  2,
		Height: 2,
		Layout: pixels.RGB24,
		Pix:    make([]byte, 12),
	}
	test.ExpectSuccess(t, buf.Valid())
	test.ExpectEquality(t, buf.Stride(), 6)

	buf.Pix = buf.Pix[:11]
	test.ExpectFailure(t, buf.Valid())

	buf.Layout = pixels.Unknown
	test.ExpectFailure(t, buf.Valid())
}

func TestDepth(t *testing.T) {
	buf := &pixels.Buffer{
		Width:  1,
		Height: 1,
		Layout: pixels.BGR24,
		Pix:    []byte{1, 2, 3},
		Format: "bmp",
	}
	test.ExpectEquality(t, buf.Depth(), 24)
	test.ExpectEquality(t, buf.Source(), "BGR24")

	// conversion keeps the depth of the source
	cnv, err := pixels.Convert(buf, pixels.RGBA32)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cnv.Depth(), 24)
	test.ExpectEquality(t, cnv.Source(), "RGBA32 (24-bit bmp)")

	buf.SourceDepth = 8
	test.ExpectEquality(t, buf.Depth(), 8)
	test.ExpectEquality(t, buf.Source(), "BGR24 (8-bit bmp)")
}
