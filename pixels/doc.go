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

// Package pixels describes decoded image data and the conversions required
// before the data can be uploaded as a texture.
//
// Decoded data is held in a Buffer. Pixel rows in a Buffer are tightly packed
// and in top-down order, as they are found in the image file. Conversion
// between the supported layouts is done with Convert(). FlipVertically()
// reverses the row order in place, which is required because texture row zero
// is at the bottom.
//
// The Decoder interface is the means by which an image file is turned into a
// Buffer. ImageDecoder is the pure Go implementation. The sdlimage
// sub-package provides an implementation using SDL_image.
package pixels
