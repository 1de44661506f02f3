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

// Package geom contains the float32 vector and rectangle types used to
// describe texture coordinates.
package geom

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec2 is a two component float32 vector.
type Vec2 struct {
	X, Y float32
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", v.X, v.Y)
}

// Mul multiplies the vector component-wise.
func (v Vec2) Mul(s Vec2) Vec2 {
	return Vec2{X: v.X * s.X, Y: v.Y * s.Y}
}

// Add adds the vectors component-wise.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub subtracts o from v component-wise.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Rect is an axis aligned rectangle described by its top-left and
// bottom-right corners. In pixel space Y grows downwards so TopLeft.Y is less
// than or equal to BottomRight.Y.
type Rect struct {
	TopLeft     Vec2
	BottomRight Vec2
}

// NewRect creates a Rect from a position and a size.
func NewRect(x, y, width, height float32) Rect {
	return Rect{
		TopLeft:     Vec2{X: x, Y: y},
		BottomRight: Vec2{X: x + width, Y: y + height},
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("%s - %s", r.TopLeft, r.BottomRight)
}

// Size returns the width and height of the rectangle.
func (r Rect) Size() Vec2 {
	return r.BottomRight.Sub(r.TopLeft)
}

// Scaled returns the rectangle with both corners multiplied by s.
func (r Rect) Scaled(s Vec2) Rect {
	return Rect{
		TopLeft:     r.TopLeft.Mul(s),
		BottomRight: r.BottomRight.Mul(s),
	}
}

// MovedTo returns the rectangle moved so that its top-left corner is at p. The
// size of the rectangle is unchanged.
func (r Rect) MovedTo(p Vec2) Rect {
	return Rect{
		TopLeft:     p,
		BottomRight: p.Add(r.Size()),
	}
}

// FlippedY reflects a rectangle in normalised space about the horizontal
// centre line. The new top edge is 1 minus the old bottom edge and the size
// is unchanged. Applying FlippedY twice returns the original rectangle.
func (r Rect) FlippedY() Rect {
	return r.MovedTo(Vec2{X: r.TopLeft.X, Y: 1 - r.BottomRight.Y})
}

// InUnitSquare returns true if both corners are within [0,1] on both axes. A
// texture coordinate rectangle outside the unit square is the result of a
// frame that lies outside the image size given by the atlas metadata.
func (r Rect) InUnitSquare() bool {
	return r.InUnitSquareWithin(0)
}

// InUnitSquareWithin is like InUnitSquare but allows each coordinate to lie
// up to epsilon outside the unit square.
func (r Rect) InUnitSquareWithin(epsilon float32) bool {
	in := func(v float32) bool { return v >= -epsilon && v <= 1+epsilon }
	return in(r.TopLeft.X) && in(r.TopLeft.Y) && in(r.BottomRight.X) && in(r.BottomRight.Y)
}

// ApproxEqual compares two rectangles allowing each coordinate to differ by
// no more than epsilon.
func (r Rect) ApproxEqual(o Rect, epsilon float32) bool {
	return math32.Abs(r.TopLeft.X-o.TopLeft.X) <= epsilon &&
		math32.Abs(r.TopLeft.Y-o.TopLeft.Y) <= epsilon &&
		math32.Abs(r.BottomRight.X-o.BottomRight.X) <= epsilon &&
		math32.Abs(r.BottomRight.Y-o.BottomRight.Y) <= epsilon
}
