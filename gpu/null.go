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

package gpu

import (
	"fmt"
	"strings"
)

// Upload records the parameters of a TexImage2D() call on the Null device.
type Upload struct {
	Width  int
	Height int
	Format Format
	Pixels []byte
}

// Params records the most recent upload and parameters of a texture on the
// Null device.
type Params struct {
	Upload    Upload
	Uploaded  bool
	MinFilter Filter
	MagFilter Filter
	WrapS     Wrap
	WrapT     Wrap
	WrapSet   bool
}

// Null is a Device that performs no GPU work. Calls are recorded and the
// binding state is tracked. Misuse, such as configuring a texture when
// nothing is bound or deleting an unknown texture, is noted and returned by
// the Err() function.
//
// The zero value is ready for use.
type Null struct {
	next    uint32
	bound   uint32
	live    map[uint32]*Params
	calls   []string
	misuse  []string
	deleted int
}

// NewNull is the preferred method of initialisation for the Null type.
func NewNull() *Null {
	return &Null{}
}

func (n *Null) record(s string, args ...any) {
	n.calls = append(n.calls, fmt.Sprintf(s, args...))
}

func (n *Null) fault(s string, args ...any) {
	n.misuse = append(n.misuse, fmt.Sprintf(s, args...))
}

// bound params. nil if nothing is bound
func (n *Null) params(call string) *Params {
	if n.bound == 0 {
		n.fault("%s: no texture bound", call)
		return nil
	}
	return n.live[n.bound]
}

// GenTexture implements the Device interface.
func (n *Null) GenTexture() uint32 {
	if n.live == nil {
		n.live = make(map[uint32]*Params)
	}
	n.next++
	n.live[n.next] = &Params{
		MinFilter: Linear,
		MagFilter: Linear,
		WrapS:     Repeat,
		WrapT:     Repeat,
	}
	n.record("GenTexture() %d", n.next)
	return n.next
}

// DeleteTexture implements the Device interface.
func (n *Null) DeleteTexture(id uint32) {
	n.record("DeleteTexture(%d)", id)
	if _, ok := n.live[id]; !ok {
		n.fault("DeleteTexture: unknown texture %d", id)
		return
	}
	delete(n.live, id)
	n.deleted++
	if n.bound == id {
		n.bound = 0
	}
}

// BindTexture implements the Device interface.
func (n *Null) BindTexture(id uint32) {
	n.record("BindTexture(%d)", id)
	if id != 0 {
		if _, ok := n.live[id]; !ok {
			n.fault("BindTexture: unknown texture %d", id)
			return
		}
	}
	n.bound = id
}

// BoundTexture implements the Device interface.
func (n *Null) BoundTexture() uint32 {
	return n.bound
}

// TexImage2D implements the Device interface. The pixel data is copied.
func (n *Null) TexImage2D(width, height int, format Format, pixels []byte) {
	n.record("TexImage2D(%d, %d, %s, %d bytes)", width, height, format, len(pixels))
	p := n.params("TexImage2D")
	if p == nil {
		return
	}
	if len(pixels) > 0 && len(pixels) != width*height*format.BytesPerPixel() {
		n.fault("TexImage2D: pixel data is %d bytes for %dx%d %s", len(pixels), width, height, format)
	}
	p.Upload = Upload{
		Width:  width,
		Height: height,
		Format: format,
		Pixels: append([]byte(nil), pixels...),
	}
	p.Uploaded = true
}

// TexFilter implements the Device interface.
func (n *Null) TexFilter(min, mag Filter) {
	n.record("TexFilter(%s, %s)", min, mag)
	p := n.params("TexFilter")
	if p == nil {
		return
	}
	p.MinFilter = min
	p.MagFilter = mag
}

// TexWrap implements the Device interface.
func (n *Null) TexWrap(s, t Wrap) {
	n.record("TexWrap(%s, %s)", s, t)
	p := n.params("TexWrap")
	if p == nil {
		return
	}
	p.WrapS = s
	p.WrapT = t
	p.WrapSet = true
}

// Live returns the number of textures that have been generated and not yet
// deleted.
func (n *Null) Live() int {
	return len(n.live)
}

// Deleted returns the number of textures that have been deleted.
func (n *Null) Deleted() int {
	return n.deleted
}

// Texture returns the recorded state of a live texture.
func (n *Null) Texture(id uint32) (Params, bool) {
	p, ok := n.live[id]
	if !ok {
		return Params{}, false
	}
	return *p, true
}

// Calls returns the list of recorded calls in the order they were made.
func (n *Null) Calls() []string {
	return n.calls
}

// Err returns an error describing any misuse of the device. Returns nil if
// there has been no misuse.
func (n *Null) Err() error {
	if len(n.misuse) == 0 {
		return nil
	}
	return fmt.Errorf("gpu: %s", strings.Join(n.misuse, "; "))
}
