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

// Package atlas binds a sprite sheet description to the texture containing
// the sprites.
//
// An Atlas is loaded from a plist document with Load(). The image named by
// the document is loaded as a texture and every frame in the document is
// converted to normalised texture coordinates.
//
// Frame rectangles are flipped vertically during conversion, to match the row
// flip performed by the texture loader. The resulting rectangles can be used
// directly as texture coordinates for the texture returned by Texture().
package atlas

import (
	"fmt"
	"image"
	"path/filepath"
	"sort"

	"github.com/jetsetilly/glatlas/curated"
	"github.com/jetsetilly/glatlas/errors"
	"github.com/jetsetilly/glatlas/geom"
	"github.com/jetsetilly/glatlas/logger"
	"github.com/jetsetilly/glatlas/plist"
	"github.com/jetsetilly/glatlas/resources"
	"github.com/jetsetilly/glatlas/texture"
)

// Atlas is a texture and the named frames within it.
type Atlas struct {
	path   string
	size   image.Point
	tex    *texture.Texture2D
	frames map[string]geom.Rect
}

// Load the atlas described by the plist document at path. Relative paths are
// resolved by the resources package. The texture image is loaded with the
// supplied loader from a path relative to the document.
//
// The Atlas owns the texture. Destroy() should be called when the Atlas is
// no longer required.
func Load(path string, loader texture.Loader) (*Atlas, error) {
	abspath, err := resources.Abspath(path)
	if err != nil {
		return nil, curated.Errorf(errors.DocumentNotFound, path, err)
	}

	doc, err := plist.Parse(abspath)
	if err != nil {
		return nil, err
	}

	scale := geom.Vec2{
		X: 1.0 / float32(doc.Metadata.Size.X),
		Y: 1.0 / float32(doc.Metadata.Size.Y),
	}

	tex, err := loader.Load(filepath.Join(filepath.Dir(abspath), doc.Metadata.TextureFileName))
	if err != nil {
		return nil, err
	}

	if tex.Width() != doc.Metadata.Size.X || tex.Height() != doc.Metadata.Size.Y {
		logger.Logf(logger.Allow, "atlas", "%s: size in document (%dx%d) does not match texture (%dx%d)",
			abspath, doc.Metadata.Size.X, doc.Metadata.Size.Y, tex.Width(), tex.Height())
	}

	atl := &Atlas{
		path:   abspath,
		size:   doc.Metadata.Size,
		tex:    tex,
		frames: make(map[string]geom.Rect, len(doc.Frames)),
	}

	for _, f := range doc.Frames {
		if _, ok := atl.frames[f.Name]; ok {
			logger.Logf(logger.Allow, "atlas", "%s: duplicate frame '%s'. using last definition", abspath, f.Name)
		}
		atl.frames[f.Name] = FrameToUV(f.Rect, scale)
	}

	logger.Logf(logger.Allow, "atlas", "%s: %d frames in %s", abspath, len(atl.frames), tex)

	return atl, nil
}

// FrameToUV converts a frame in pixel coordinates to normalised texture
// coordinates. The rectangle is scaled and then flipped vertically.
func FrameToUV(r plist.PixelRect, scale geom.Vec2) geom.Rect {
	rect := geom.NewRect(float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height))
	return rect.Scaled(scale).FlippedY()
}

func (atl *Atlas) String() string {
	return fmt.Sprintf("%s (%d frames)", atl.path, len(atl.frames))
}

// Texture returns the texture containing the frames. The texture is valid
// until Destroy() is called.
func (atl *Atlas) Texture() *texture.Texture2D {
	return atl.tex
}

// FrameRect returns the texture coordinates of the named frame.
func (atl *Atlas) FrameRect(name string) (geom.Rect, error) {
	r, ok := atl.frames[name]
	if !ok {
		return geom.Rect{}, curated.Errorf(errors.FrameNotFound, name, atl.path)
	}
	return r, nil
}

// Names returns the names of all frames in the atlas, sorted.
func (atl *Atlas) Names() []string {
	names := make([]string, 0, len(atl.frames))
	for n := range atl.frames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of frames in the atlas.
func (atl *Atlas) Len() int {
	return len(atl.frames)
}

// Path returns the absolute path of the plist document.
func (atl *Atlas) Path() string {
	return atl.path
}

// Size returns the image size given by the plist document.
func (atl *Atlas) Size() image.Point {
	return atl.size
}

// Destroy releases the texture. It is safe to call Destroy() more than once.
func (atl *Atlas) Destroy() {
	atl.tex.Destroy()
}
