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

import (
	"github.com/jetsetilly/glatlas/curated"
)

// Category is the broad kind of a failure.
type Category int

// List of valid Category values.
const (
	Uncategorised Category = iota
	NotFound
	FormatError
	SyntaxError
)

func (c Category) String() string {
	switch c {
	case NotFound:
		return "not found"
	case FormatError:
		return "format error"
	case SyntaxError:
		return "syntax error"
	}
	return "uncategorised"
}

// CategoryOf returns the category of the outermost curated error in the error
// chain. Uncategorised is returned for nil errors, uncurated errors and
// curated errors not created with a pattern from this package.
func CategoryOf(err error) Category {
	pattern, ok := curated.Pattern(err)
	if !ok {
		return Uncategorised
	}
	if c, ok := categories[pattern]; ok {
		return c
	}
	return Uncategorised
}

// Is returns true if the error is of the specified category.
func Is(err error, c Category) bool {
	return err != nil && CategoryOf(err) == c
}
