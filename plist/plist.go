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

package plist

import (
	"fmt"
	"image"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/jetsetilly/glatlas/curated"
	"github.com/jetsetilly/glatlas/errors"
	"github.com/jetsetilly/glatlas/resources"
)

// Metadata describes the image containing the packed sprites.
type Metadata struct {
	// filename of the image. relative to the document
	TextureFileName string

	// size of the image in pixels
	Size image.Point
}

// PixelRect is the position and size of a frame in the image, in pixels.
type PixelRect struct {
	X      uint32
	Y      uint32
	Width  uint32
	Height uint32
}

func (r PixelRect) String() string {
	return fmt.Sprintf("%d,%d %dx%d", r.X, r.Y, r.Width, r.Height)
}

// Frame is a single named sprite.
type Frame struct {
	Name string
	Rect PixelRect
}

// Document is the result of parsing a plist document.
type Document struct {
	// the path of the document as given to Parse() or Decode()
	Path string

	Metadata Metadata

	// frames in document order
	Frames []Frame
}

// Parse the plist document at path. Relative paths are resolved by the
// resources package.
func Parse(path string) (*Document, error) {
	text, err := resources.LoadString(path)
	if err != nil {
		return nil, curated.Errorf(errors.DocumentNotFound, path, err)
	}
	return Decode(strings.NewReader(text), path)
}

// Decode a plist document from the reader. The path is used in error messages
// and is recorded in the returned Document.
func Decode(r io.Reader, path string) (*Document, error) {
	tree, err := parseTree(r)
	if err != nil {
		return nil, curated.Errorf(errors.DocumentSyntax, path, err)
	}

	p := parser{path: path}

	pl, err := p.child(tree, "plist")
	if err != nil {
		return nil, err
	}
	dict, err := p.child(pl, "dict")
	if err != nil {
		return nil, err
	}

	doc := &Document{Path: path}

	// metadata is parsed first regardless of document order
	md, err := p.value(dict, "metadata")
	if err != nil {
		return nil, err
	}
	doc.Metadata, err = p.metadata(md)
	if err != nil {
		return nil, err
	}

	fr, err := p.value(dict, "frames")
	if err != nil {
		return nil, err
	}
	doc.Frames, err = p.frames(fr)
	if err != nil {
		return nil, err
	}

	return doc, nil
}

type parser struct {
	path string
}

func (p parser) child(parent *element, name string) (*element, error) {
	c := parent.firstChild(name)
	if c == nil {
		return nil, curated.Errorf(errors.ChildNotFound, name, p.path)
	}
	return c, nil
}

// value returns the element following the key element with the text key
func (p parser) value(dict *element, key string) (*element, error) {
	for i, c := range dict.children {
		if c.name == "key" && c.text == key {
			return p.sibling(dict, i)
		}
	}
	return nil, curated.Errorf(errors.KeyNotFound, key, p.path)
}

// sibling returns the element following the child at index i
func (p parser) sibling(parent *element, i int) (*element, error) {
	if i+1 >= len(parent.children) {
		return nil, curated.Errorf(errors.SiblingNotFound, parent.children[i].text, p.path)
	}
	return parent.children[i+1], nil
}

func (p parser) metadata(md *element) (Metadata, error) {
	var m Metadata

	fn, err := p.value(md, "textureFileName")
	if err != nil {
		return m, err
	}
	m.TextureFileName = fn.text

	sz, err := p.value(md, "size")
	if err != nil {
		return m, err
	}
	m.Size, err = ParseSize(sz.text)
	if err != nil {
		return m, curated.Errorf(errors.InvalidSize, sz.text, p.path)
	}

	return m, nil
}

func (p parser) frames(fr *element) ([]Frame, error) {
	var frames []Frame

	for i, c := range fr.children {
		if c.name != "key" {
			continue
		}

		dict, err := p.sibling(fr, i)
		if err != nil {
			return nil, err
		}

		f := Frame{Name: c.text}
		f.Rect, err = p.frameRect(f.Name, dict)
		if err != nil {
			return nil, err
		}

		frames = append(frames, f)
	}

	return frames, nil
}

func (p parser) frameRect(name string, dict *element) (PixelRect, error) {
	var r PixelRect

	// rectangle string alternative. only used if the x key is missing
	if _, err := p.value(dict, "x"); err != nil {
		if e, key := p.rectString(dict); e != nil {
			r, err := ParseRect(e.text)
			if err != nil {
				return r, curated.Errorf(errors.InvalidFrameValue, key, e.text, name, p.path)
			}
			return r, nil
		}
	}

	fields := []struct {
		key string
		v   *uint32
	}{
		{key: "x", v: &r.X},
		{key: "y", v: &r.Y},
		{key: "width", v: &r.Width},
		{key: "height", v: &r.Height},
	}

	for _, f := range fields {
		e, err := p.value(dict, f.key)
		if err != nil {
			return r, err
		}
		*f.v, err = parseUint(e)
		if err != nil {
			return r, curated.Errorf(errors.InvalidFrameValue, f.key, e.text, name, p.path)
		}
	}

	return r, nil
}

// rectString returns the value element and key of a frame or textureRect key
// in the dict. returns nil if neither key is present
func (p parser) rectString(dict *element) (*element, string) {
	for _, key := range []string{"frame", "textureRect"} {
		if e, err := p.value(dict, key); err == nil {
			return e, key
		}
	}
	return nil, ""
}

// parseUint parses the text of an integer, string or real element as an
// unsigned 32 bit value. real values must be whole numbers. whitespace around
// the number is ignored
func parseUint(e *element) (uint32, error) {
	if e.name == "real" {
		f, err := strconv.ParseFloat(strings.TrimSpace(e.text), 64)
		if err != nil {
			return 0, err
		}
		if f < 0 || f > math.MaxUint32 || f != math.Trunc(f) {
			return 0, fmt.Errorf("%s is not an unsigned integer", e.text)
		}
		return uint32(f), nil
	}

	v, err := strconv.ParseUint(strings.TrimSpace(e.text), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}
