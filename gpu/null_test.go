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

package gpu_test

import (
	"testing"

	"github.com/jetsetilly/glatlas/gpu"
	"github.com/jetsetilly/glatlas/test"
)

func TestNullLifetime(t *testing.T) {
	dev := gpu.NewNull()

	a := dev.GenTexture()
	b := dev.GenTexture()
	test.ExpectInequality(t, a, 0)
	test.ExpectInequality(t, a, b)
	test.ExpectEquality(t, dev.Live(), 2)

	dev.BindTexture(a)
	test.ExpectEquality(t, dev.BoundTexture(), a)

	// deleting the bound texture reverts the binding
	dev.DeleteTexture(a)
	test.ExpectEquality(t, dev.BoundTexture(), 0)
	test.ExpectEquality(t, dev.Live(), 1)
	test.ExpectEquality(t, dev.Deleted(), 1)

	test.ExpectSuccess(t, dev.Err())

	// deleting twice is misuse
	dev.DeleteTexture(a)
	test.ExpectFailure(t, dev.Err())
}

func TestNullUpload(t *testing.T) {
	dev := gpu.NewNull()
	id := dev.GenTexture()

	dev.BindTexture(id)
	dev.TexImage2D(2, 1, gpu.RGB, []byte{1, 2, 3, 4, 5, 6})
	dev.TexFilter(gpu.Nearest, gpu.Linear)
	dev.TexWrap(gpu.ClampToEdge, gpu.MirroredRepeat)
	test.ExpectSuccess(t, dev.Err())

	p, ok := dev.Texture(id)
	test.DemandSuccess(t, ok)
	test.ExpectSuccess(t, p.Uploaded)
	test.ExpectEquality(t, p.Upload.Width, 2)
	test.ExpectEquality(t, p.Upload.Height, 1)
	test.ExpectEquality(t, p.Upload.Format, gpu.RGB)
	test.ExpectEquality(t, string(p.Upload.Pixels), string([]byte{1, 2, 3, 4, 5, 6}))
	test.ExpectEquality(t, p.MinFilter, gpu.Nearest)
	test.ExpectEquality(t, p.WrapS, gpu.ClampToEdge)
	test.ExpectEquality(t, p.WrapT, gpu.MirroredRepeat)
	test.ExpectSuccess(t, p.WrapSet)

	test.ExpectEquality(t, len(dev.Calls()), 5)
	test.ExpectEquality(t, dev.Calls()[1], "BindTexture(1)")
}

func TestNullMisuse(t *testing.T) {
	dev := gpu.NewNull()
	dev.GenTexture()

	// nothing bound
	dev.TexFilter(gpu.Linear, gpu.Linear)
	test.ExpectFailure(t, dev.Err())

	dev = gpu.NewNull()
	id := dev.GenTexture()
	dev.BindTexture(id)

	// wrong amount of pixel data
	dev.TexImage2D(2, 2, gpu.RGBA, []byte{1, 2, 3})
	test.ExpectFailure(t, dev.Err())

	dev = gpu.NewNull()
	dev.BindTexture(99)
	test.ExpectFailure(t, dev.Err())
	test.ExpectEquality(t, dev.BoundTexture(), 0)
}
