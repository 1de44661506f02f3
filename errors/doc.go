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

// Package errors holds the curated error patterns used by the texture, plist
// and atlas packages, and sorts every pattern into a Category.
//
// Errors are created with curated.Errorf() using one of the patterns in this
// package. For example:
//
//	return curated.Errorf(errors.KeyNotFound, "frames", path)
//
// Callers that care about the kind of failure, rather than the specific
// failure, ask for the category:
//
//	if errors.Is(err, errors.NotFound) {
//		...
//	}
//
// Every pattern includes the path of the file being processed. This is
// required so that a failure in a large set of assets can be traced to the
// file responsible.
package errors
