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

// Package sdlimage implements the pixels.Decoder interface with SDL_image.
//
// Surfaces in one of the layouts understood by the pixels package are copied
// as they are. Surfaces in any other format are converted by SDL to RGBA32 if
// the format carries alpha and to RGB24 if it does not.
package sdlimage

import (
	"fmt"

	"github.com/jetsetilly/glatlas/curated"
	"github.com/jetsetilly/glatlas/errors"
	"github.com/jetsetilly/glatlas/logger"
	"github.com/jetsetilly/glatlas/pixels"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// SDL pixel formats that have a direct equivalent in the pixels package. the
// byte-order names are used so that the layout is correct regardless of
// platform endianness
var layouts map[uint32]pixels.Layout

func init() {
	layouts = make(map[uint32]pixels.Layout)
	layouts[uint32(sdl.PIXELFORMAT_RGB24)] = pixels.RGB24
	layouts[uint32(sdl.PIXELFORMAT_BGR24)] = pixels.BGR24
	layouts[uint32(sdl.PIXELFORMAT_RGBA32)] = pixels.RGBA32
	layouts[uint32(sdl.PIXELFORMAT_BGRA32)] = pixels.BGRA32
}

// Decoder implements the pixels.Decoder interface.
type Decoder struct{}

// NewDecoder is the preferred method of initialisation for the Decoder type.
// Destroy() should be called when the Decoder is no longer required.
func NewDecoder() (*Decoder, error) {
	if err := img.Init(img.INIT_JPG | img.INIT_PNG | img.INIT_TIF | img.INIT_WEBP); err != nil {
		return nil, fmt.Errorf("sdlimage: %w", err)
	}
	return &Decoder{}, nil
}

// Destroy releases the resources held by SDL_image.
func (dec *Decoder) Destroy() {
	img.Quit()
}

// Decode implements the pixels.Decoder interface.
func (dec *Decoder) Decode(path string) (*pixels.Buffer, error) {
	srf, err := img.Load(path)
	if err != nil {
		return nil, curated.Errorf(errors.ImageNotFound, path, err)
	}
	defer srf.Free()

	format := srf.Format.Format
	name := sdl.GetPixelFormatName(uint(format))
	alpha := sdl.ISPIXELFORMAT_ALPHA(format)
	depth := int(srf.Format.BitsPerPixel)

	layout, ok := layouts[format]
	if !ok {
		to := uint32(sdl.PIXELFORMAT_RGB24)
		layout = pixels.RGB24
		if alpha {
			to = uint32(sdl.PIXELFORMAT_RGBA32)
			layout = pixels.RGBA32
		}

		logger.Logf(logger.Allow, "sdlimage", "converting %s from %s to %s", path, name, layout)

		conv, err := srf.ConvertFormat(to, 0)
		if err != nil {
			return nil, curated.Errorf(errors.ImageUndecodable, path, err)
		}
		defer conv.Free()
		srf = conv
	}

	buf := &pixels.Buffer{
		Width:       int(srf.W),
		Height:      int(srf.H),
		Layout:      layout,
		HasAlpha:    alpha,
		SourceDepth: depth,
		Format:      name,
	}

	err = copyPixels(srf, buf)
	if err != nil {
		return nil, curated.Errorf(errors.ImageUndecodable, path, err)
	}

	return buf, nil
}

// copy surface pixels into buffer, removing any row padding
func copyPixels(srf *sdl.Surface, buf *pixels.Buffer) error {
	if err := srf.Lock(); err != nil {
		return err
	}
	defer srf.Unlock()

	src := srf.Pixels()
	pitch := int(srf.Pitch)
	stride := buf.Stride()

	if pitch < stride || len(src) < pitch*(buf.Height-1)+stride {
		return fmt.Errorf("surface pitch (%d) is too small for %s", pitch, buf)
	}

	buf.Pix = make([]byte, stride*buf.Height)
	for y := 0; y < buf.Height; y++ {
		copy(buf.Pix[y*stride:(y+1)*stride], src[y*pitch:y*pitch+stride])
	}

	return buf.Valid()
}
