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

// Package texture creates GPU textures from image files.
//
// A Texture2D owns exactly one texture name on a gpu.Device. It is created
// with New() and must be released with Destroy(). Texture2D values are only
// ever handled by pointer.
//
// A Loader decodes an image file, prepares the pixel data and uploads it to a
// new Texture2D, configured with linear filtering and the Loader's wrap modes.
// The Loader type is a small value and can be copied freely. LoadRGB() is a
// simpler loading function for images without alpha.
//
// Pixel rows are flipped during loading, so that the first row of the image
// file is the last row of the texture. Texture coordinates referring to the
// image file must be flipped to match. The atlas package does this for sprite
// frames.
package texture
