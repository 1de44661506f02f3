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
	"github.com/jetsetilly/glatlas/curated"
	"github.com/jetsetilly/glatlas/errors"
	"github.com/jetsetilly/glatlas/gpu"
	"github.com/jetsetilly/glatlas/logger"
	"github.com/jetsetilly/glatlas/pixels"
)

// Loader creates textures from image files.
type Loader struct {
	dev gpu.Device
	dec pixels.Decoder

	wrapS gpu.Wrap
	wrapT gpu.Wrap
}

// NewLoader is the preferred method of initialisation for the Loader type.
// The wrap mode for both axes is gpu.Repeat, which is the OpenGL default.
func NewLoader(dev gpu.Device, dec pixels.Decoder) Loader {
	return Loader{
		dev:   dev,
		dec:   dec,
		wrapS: gpu.Repeat,
		wrapT: gpu.Repeat,
	}
}

// SetWrapMode sets the wrap mode for both the S and T axes.
func (ldr *Loader) SetWrapMode(wrap gpu.Wrap) {
	ldr.wrapS = wrap
	ldr.wrapT = wrap
}

// SetWrapModes sets the wrap mode for the S and T axes independently.
func (ldr *Loader) SetWrapModes(wrapS gpu.Wrap, wrapT gpu.Wrap) {
	ldr.wrapS = wrapS
	ldr.wrapT = wrapT
}

// WrapModes returns the wrap modes for the S and T axes.
func (ldr Loader) WrapModes() (gpu.Wrap, gpu.Wrap) {
	return ldr.wrapS, ldr.wrapT
}

// Load decodes the image at path and uploads it to a new texture. The pixel
// data is uploaded as RGBA if the image carries alpha and as RGB if it does
// not.
//
// The returned texture is left bound.
func (ldr Loader) Load(path string) (*Texture2D, error) {
	buf, err := decode(ldr.dec, path)
	if err != nil {
		return nil, err
	}

	canonical := pixels.Canonical(buf.HasAlpha)
	if buf.Layout != canonical {
		logger.Logf(logger.Allow, "texture", "converting %s from %s to %s", path, buf.Layout, canonical)
		buf, err = pixels.Convert(buf, canonical)
		if err != nil {
			return nil, curated.Errorf(errors.ImageUndecodable, path, err)
		}
	}

	pixels.FlipVertically(buf)

	tex := New(ldr.dev)
	err = tex.DoWhileBound(func() error {
		if err := tex.upload(buf); err != nil {
			return err
		}
		ldr.dev.TexFilter(gpu.Linear, gpu.Linear)
		ldr.dev.TexWrap(ldr.wrapS, ldr.wrapT)
		return nil
	})
	if err != nil {
		tex.Destroy()
		return nil, curated.Errorf(errors.ImageUndecodable, path, err)
	}

	logger.Logf(logger.Allow, "texture", "%s from %s (%s, wrap %s/%s)", tex, path, buf.Format, ldr.wrapS, ldr.wrapT)

	return tex, nil
}

// decode image and check the result. errors from the decoder that are not
// already curated are treated as ImageUndecodable
func decode(dec pixels.Decoder, path string) (*pixels.Buffer, error) {
	buf, err := dec.Decode(path)
	if err != nil {
		if curated.IsAny(err) {
			return nil, err
		}
		return nil, curated.Errorf(errors.ImageUndecodable, path, err)
	}

	if err := buf.Valid(); err != nil {
		return nil, curated.Errorf(errors.ImageUndecodable, path, err)
	}

	return buf, nil
}
