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

// LoadRGB decodes the image at path and uploads it to a new texture. Only
// 24-bit source images decoded as RGB24 or BGR24 are accepted. Any other
// layout or source depth results in an UnsupportedPixelLayout error.
//
// Unlike Loader.Load() no wrap mode is set, so the device default applies.
// The returned texture is left bound.
func LoadRGB(dev gpu.Device, dec pixels.Decoder, path string) (*Texture2D, error) {
	buf, err := decode(dec, path)
	if err != nil {
		return nil, err
	}

	if buf.Depth() != 24 {
		return nil, curated.Errorf(errors.UnsupportedPixelLayout, buf.Source(), path)
	}

	switch buf.Layout {
	case pixels.RGB24:
	case pixels.BGR24:
		buf, err = pixels.Convert(buf, pixels.RGB24)
		if err != nil {
			return nil, curated.Errorf(errors.ImageUndecodable, path, err)
		}
	default:
		return nil, curated.Errorf(errors.UnsupportedPixelLayout, buf.Source(), path)
	}

	pixels.FlipVertically(buf)

	tex := New(dev)
	err = tex.DoWhileBound(func() error {
		if err := tex.upload(buf); err != nil {
			return err
		}
		dev.TexFilter(gpu.Linear, gpu.Linear)
		return nil
	})
	if err != nil {
		tex.Destroy()
		return nil, curated.Errorf(errors.ImageUndecodable, path, err)
	}

	logger.Logf(logger.Allow, "texture", "%s from %s (%s)", tex, path, buf.Format)

	return tex, nil
}
