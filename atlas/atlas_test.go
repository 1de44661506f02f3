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

package atlas_test

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/glatlas/atlas"
	"github.com/jetsetilly/glatlas/curated"
	"github.com/jetsetilly/glatlas/errors"
	"github.com/jetsetilly/glatlas/geom"
	"github.com/jetsetilly/glatlas/gpu"
	"github.com/jetsetilly/glatlas/pixels"
	"github.com/jetsetilly/glatlas/plist"
	"github.com/jetsetilly/glatlas/resources"
	"github.com/jetsetilly/glatlas/test"
	"github.com/jetsetilly/glatlas/texture"
)

const epsilon = 0.00001

type frame struct {
	name string
	rect plist.PixelRect
}

func writeAtlas(t *testing.T, dir string, width, height int, frames ...frame) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}
	f, err := os.Create(filepath.Join(dir, "a.png"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, png.Encode(f, img))
	test.DemandSuccess(t, f.Close())

	s := `<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0">
<dict>
	<key>frames</key>
	<dict>`
	for _, f := range frames {
		s += fmt.Sprintf(`
		<key>%s</key>
		<dict>
			<key>x</key><integer>%d</integer>
			<key>y</key><integer>%d</integer>
			<key>width</key><integer>%d</integer>
			<key>height</key><integer>%d</integer>
		</dict>`, f.name, f.rect.X, f.rect.Y, f.rect.Width, f.rect.Height)
	}
	s += fmt.Sprintf(`
	</dict>
	<key>metadata</key>
	<dict>
		<key>textureFileName</key>
		<string>a.png</string>
		<key>size</key>
		<string>{%d,%d}</string>
	</dict>
</dict>
</plist>`, width, height)

	fn := filepath.Join(dir, "atlas.plist")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(s), 0o600))

	return fn
}

func TestEndToEnd(t *testing.T) {
	fn := writeAtlas(t, t.TempDir(), 100, 100, frame{name: "sprite1", rect: plist.PixelRect{X: 10, Y: 10, Width: 20, Height: 20}})

	dev := gpu.NewNull()
	atl, err := atlas.Load(fn, texture.NewLoader(dev, pixels.ImageDecoder{}))
	test.DemandSuccess(t, err)

	r, err := atl.FrameRect("sprite1")
	test.DemandSuccess(t, err)
	test.ExpectApproximate(t, r.TopLeft.X, 0.1, epsilon)
	test.ExpectApproximate(t, r.TopLeft.Y, 0.7, epsilon)
	test.ExpectApproximate(t, r.BottomRight.X, 0.3, epsilon)
	test.ExpectApproximate(t, r.BottomRight.Y, 0.9, epsilon)

	test.ExpectEquality(t, atl.Len(), 1)
	test.ExpectEquality(t, atl.Path(), fn)
	test.ExpectEquality(t, atl.Size(), image.Point{X: 100, Y: 100})

	// texture has been uploaded
	tex := atl.Texture()
	test.ExpectInequality(t, tex.ID(), 0)
	p, ok := dev.Texture(tex.ID())
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, p.Upload.Width, 100)
	test.ExpectEquality(t, p.Upload.Format, gpu.RGB)

	// first row of the texture is the last row of the image
	test.ExpectEquality(t, p.Upload.Pixels[1], 99)

	atl.Destroy()
	atl.Destroy()
	test.ExpectEquality(t, dev.Live(), 0)
	test.ExpectSuccess(t, dev.Err())
}

func TestScale(t *testing.T) {
	frames := []frame{
		{name: "a", rect: plist.PixelRect{X: 0, Y: 0, Width: 64, Height: 32}},
		{name: "b", rect: plist.PixelRect{X: 64, Y: 32, Width: 16, Height: 96}},
		{name: "c", rect: plist.PixelRect{X: 200, Y: 100, Width: 56, Height: 28}},
	}
	fn := writeAtlas(t, t.TempDir(), 256, 128, frames...)

	atl, err := atlas.Load(fn, texture.NewLoader(gpu.NewNull(), pixels.ImageDecoder{}))
	test.DemandSuccess(t, err)
	defer atl.Destroy()

	test.ExpectEquality(t, len(atl.Names()), 3)
	test.ExpectEquality(t, atl.Names()[0], "a")

	for _, f := range frames {
		r, err := atl.FrameRect(f.name)
		test.DemandSuccess(t, err)

		sz := r.Size()
		test.ExpectApproximate(t, sz.X, float32(f.rect.Width)/256, epsilon, f.name)
		test.ExpectApproximate(t, sz.Y, float32(f.rect.Height)/128, epsilon, f.name)
		test.ExpectSuccess(t, r.InUnitSquare(), f.name)
	}
}

func TestFlipInverse(t *testing.T) {
	scale := geom.Vec2{X: 1.0 / 256, Y: 1.0 / 128}
	pr := plist.PixelRect{X: 12, Y: 40, Width: 30, Height: 50}

	uv := atlas.FrameToUV(pr, scale)
	orig := geom.NewRect(12, 40, 30, 50).Scaled(scale)

	test.ExpectSuccess(t, uv.FlippedY().ApproxEqual(orig, epsilon))
	test.ExpectSuccess(t, uv.FlippedY().FlippedY().ApproxEqual(uv, epsilon))
}

func TestDuplicateNames(t *testing.T) {
	fn := writeAtlas(t, t.TempDir(), 100, 100,
		frame{name: "a", rect: plist.PixelRect{X: 0, Y: 0, Width: 10, Height: 10}},
		frame{name: "a", rect: plist.PixelRect{X: 50, Y: 50, Width: 20, Height: 20}},
	)

	atl, err := atlas.Load(fn, texture.NewLoader(gpu.NewNull(), pixels.ImageDecoder{}))
	test.DemandSuccess(t, err)
	defer atl.Destroy()

	test.ExpectEquality(t, atl.Len(), 1)

	r, err := atl.FrameRect("a")
	test.DemandSuccess(t, err)
	test.ExpectApproximate(t, r.TopLeft.X, 0.5, epsilon)
	test.ExpectApproximate(t, r.Size().X, 0.2, epsilon)
}

func TestFrameNotFound(t *testing.T) {
	fn := writeAtlas(t, t.TempDir(), 10, 10, frame{name: "a", rect: plist.PixelRect{Width: 1, Height: 1}})

	atl, err := atlas.Load(fn, texture.NewLoader(gpu.NewNull(), pixels.ImageDecoder{}))
	test.DemandSuccess(t, err)
	defer atl.Destroy()

	_, err = atl.FrameRect("b")
	test.ExpectSuccess(t, curated.Is(err, errors.FrameNotFound))
	test.ExpectSuccess(t, errors.Is(err, errors.NotFound))
	test.ExpectFailureContaining(t, err, "'b'", fn)
}

func TestRelativePath(t *testing.T) {
	dir := t.TempDir()
	test.DemandSuccess(t, os.Mkdir(filepath.Join(dir, "sheets"), 0o700))
	writeAtlas(t, filepath.Join(dir, "sheets"), 10, 10, frame{name: "a", rect: plist.PixelRect{Width: 1, Height: 1}})

	test.DemandSuccess(t, resources.SetRoot(dir))
	t.Cleanup(func() { _ = resources.SetRoot("") })

	atl, err := atlas.Load("sheets/atlas.plist", texture.NewLoader(gpu.NewNull(), pixels.ImageDecoder{}))
	test.DemandSuccess(t, err)
	defer atl.Destroy()

	test.ExpectEquality(t, atl.Path(), filepath.Join(dir, "sheets", "atlas.plist"))
}

func TestLoadFailures(t *testing.T) {
	dir := t.TempDir()
	dev := gpu.NewNull()
	ldr := texture.NewLoader(dev, pixels.ImageDecoder{})

	_, err := atlas.Load(filepath.Join(dir, "missing.plist"), ldr)
	test.ExpectSuccess(t, curated.Is(err, errors.DocumentNotFound))

	// image is missing
	fn := writeAtlas(t, dir, 10, 10)
	test.DemandSuccess(t, os.Remove(filepath.Join(dir, "a.png")))
	_, err = atlas.Load(fn, ldr)
	test.ExpectSuccess(t, curated.Is(err, errors.ImageNotFound))
	test.ExpectSuccess(t, errors.Is(err, errors.NotFound))
	test.ExpectFailureContaining(t, err, "a.png")

	test.ExpectEquality(t, dev.Live(), 0)
}
