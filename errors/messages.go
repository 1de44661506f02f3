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

package errors

// NotFound patterns.
const (
	// path, underlying error
	DocumentNotFound = "cannot read plist file '%s': %v"

	// element name, path
	ChildNotFound = "child element '%s' not found in '%s'"

	// element name, path
	SiblingNotFound = "sibling for '%s' not found in '%s'"

	// key name, path
	KeyNotFound = "key '%s' not found in '%s'"

	// path, underlying error
	ImageNotFound = "cannot find texture at '%s': %v"

	// frame name, path
	FrameNotFound = "frame '%s' not found in atlas '%s'"
)

// FormatError patterns.
const (
	// size string, path
	InvalidSize = "invalid size value '%s' in '%s'"

	// field name, value, frame name, path
	InvalidFrameValue = "invalid %s value '%s' for frame '%s' in '%s'"

	// path, underlying error
	ImageUndecodable = "cannot decode texture at '%s': %v"

	// pixel layout name, path
	UnsupportedPixelLayout = "unsupported image pixel format %s at '%s'"

	// from layout, to layout
	UnsupportedConversion = "cannot convert pixels from %s to %s"
)

// SyntaxError patterns.
const (
	// path, underlying error
	DocumentSyntax = "failed to load plist file '%s': %v"
)

var categories = map[string]Category{
	DocumentNotFound: NotFound,
	ChildNotFound:    NotFound,
	SiblingNotFound:  NotFound,
	KeyNotFound:      NotFound,
	ImageNotFound:    NotFound,
	FrameNotFound:    NotFound,

	InvalidSize:            FormatError,
	InvalidFrameValue:      FormatError,
	ImageUndecodable:       FormatError,
	UnsupportedPixelLayout: FormatError,
	UnsupportedConversion:  FormatError,

	DocumentSyntax: SyntaxError,
}
