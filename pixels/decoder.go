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
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"os"

	// image formats supported by ImageDecoder
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/anthonynsimon/bild/clone"
	"github.com/h2non/filetype"
	"github.com/jetsetilly/glatlas/curated"
	"github.com/jetsetilly/glatlas/errors"
)

// Decoder turns the image file at path into a Buffer.
//
// The error returned for a file that cannot be read should be an
// ImageNotFound error and the error for a file that cannot be decoded should
// be an ImageUndecodable error.
type Decoder interface {
	Decode(path string) (*Buffer, error)
}

// ImageDecoder implements the Decoder interface using the image package from
// the standard library, extended with the formats in golang.org/x/image.
//
// Sources that carry an alpha channel are decoded to non-premultiplied
// RGBA32. All other sources are decoded to RGB24. The depth of the source
// image is recorded in the SourceDepth field of the Buffer.
type ImageDecoder struct{}

// Decode implements the Decoder interface.
func (ImageDecoder) Decode(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, curated.Errorf(errors.ImageNotFound, path, err)
	}

	if !filetype.IsImage(data) {
		kind, _ := filetype.Match(data)
		if kind == filetype.Unknown {
			return nil, curated.Errorf(errors.ImageUndecodable, path, fmt.Errorf("unrecognised file type"))
		}
		return nil, curated.Errorf(errors.ImageUndecodable, path, fmt.Errorf("file is %s not an image", kind.MIME.Value))
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, curated.Errorf(errors.ImageUndecodable, path, err)
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, curated.Errorf(errors.ImageUndecodable, path, fmt.Errorf("image has no pixels"))
	}

	buf := &Buffer{
		Width:    b.Dx(),
		Height:   b.Dy(),
		HasAlpha: carriesAlpha(img),
		Format:   format,
	}
	buf.SourceDepth = sourceDepth(img, buf.HasAlpha)

	if buf.HasAlpha {
		nrgba := image.NewNRGBA(image.Rect(0, 0, buf.Width, buf.Height))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
		buf.Layout = RGBA32
		buf.Pix = nrgba.Pix
		return buf, nil
	}

	rgba := clone.AsRGBA(img)
	buf.Layout = RGB24
	buf.Pix = make([]byte, 0, buf.Width*buf.Height*3)
	for y := 0; y < buf.Height; y++ {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+buf.Width*4]
		for x := 0; x < len(row); x += 4 {
			buf.Pix = append(buf.Pix, row[x], row[x+1], row[x+2])
		}
	}

	return buf, nil
}

// carriesAlpha returns true if the image format carries an alpha channel. For
// premultiplied and paletted images the presence of any transparent pixel is
// taken to mean that the image carries alpha.
func carriesAlpha(img image.Image) bool {
	switch img := img.(type) {
	case *image.NRGBA, *image.NRGBA64, *image.Alpha, *image.Alpha16:
		return true
	case *image.Paletted:
		for _, c := range img.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return true
			}
		}
		return false
	case *image.RGBA:
		return !img.Opaque()
	case *image.RGBA64:
		return !img.Opaque()
	case *image.NYCbCrA:
		return !img.Opaque()
	}
	return false
}

// sourceDepth returns the bits per pixel of the image as it was stored. the
// image package decodes 24-bit files to *image.RGBA so the depth of those
// images depends on whether they carry alpha
func sourceDepth(img image.Image, alpha bool) int {
	switch img.(type) {
	case *image.Gray, *image.Paletted, *image.Alpha:
		return 8
	case *image.Gray16, *image.Alpha16:
		return 16
	case *image.CMYK:
		return 32
	case *image.RGBA64, *image.NRGBA64:
		if alpha {
			return 64
		}
		return 48
	}
	if alpha {
		return 32
	}
	return 24
}
