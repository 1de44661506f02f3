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
	"regexp"
	"strconv"
	"strings"
)

var (
	sizeRe = regexp.MustCompile(`^\{\s*(-?\d+)\s*,\s*(-?\d+)\s*\}$`)
	rectRe = regexp.MustCompile(`^\{\s*\{\s*(\d+)\s*,\s*(\d+)\s*\}\s*,\s*\{\s*(\d+)\s*,\s*(\d+)\s*\}\s*\}$`)
)

// ParseSize parses a size string of the form "{W, H}". Whitespace around the
// numbers and around the string is optional. Both values must be positive.
func ParseSize(s string) (image.Point, error) {
	m := sizeRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return image.Point{}, fmt.Errorf("plist: size must be of the form {W, H} (%s)", s)
	}

	w, err := strconv.Atoi(m[1])
	if err != nil {
		return image.Point{}, fmt.Errorf("plist: %w", err)
	}
	h, err := strconv.Atoi(m[2])
	if err != nil {
		return image.Point{}, fmt.Errorf("plist: %w", err)
	}

	if w <= 0 || h <= 0 {
		return image.Point{}, fmt.Errorf("plist: size must be positive (%s)", s)
	}

	return image.Point{X: w, Y: h}, nil
}

// ParseRect parses a rectangle string of the form "{{x, y}, {width, height}}".
// Whitespace around the numbers and around the string is optional.
func ParseRect(s string) (PixelRect, error) {
	m := rectRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return PixelRect{}, fmt.Errorf("plist: rectangle must be of the form {{x, y}, {w, h}} (%s)", s)
	}

	var v [4]uint32
	for i := range v {
		n, err := strconv.ParseUint(m[i+1], 10, 32)
		if err != nil {
			return PixelRect{}, fmt.Errorf("plist: %w", err)
		}
		v[i] = uint32(n)
	}

	return PixelRect{X: v[0], Y: v[1], Width: v[2], Height: v[3]}, nil
}
