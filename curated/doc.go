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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. The pattern is what differentiates curated errors, not the
// formatted message. For example:
//
//	e := curated.Errorf("key '%s' not found in '%s'", "frames", "ui.plist")
//
//	if curated.Is(e, "key '%s' not found in '%s'") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. Curated errors passed as values to Errorf() form that
// chain.
//
// The Error() function normalises the chain so that adjacent duplicate parts
// are removed. Parts are separated by the sub-string ': ' as suggested on p239
// of "The Go Programming Language" (Donovan, Kernighan).
//
// Curated errors unwrap to any error values they were created with. This means
// that errors.Is() from the standard library can see through a curated error
// to, for example, fs.ErrNotExist.
//
// Sentinel patterns should be stored as const strings, suitably named and
// commented. The errors package in this module is the home for the patterns
// used by the atlas and texture packages.
package curated
