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

// Package modalflag wraps the flag package from the standard library. It
// adds program modes, each of which can have its own set of flags.
//
// Arguments are supplied with NewArgs() and parsed with Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("INFO", "CHECK", "VERSION")
//	r, err := md.Parse()
//
// After parsing, Mode() returns the selected mode. If the first non-flag
// argument is not one of the sub-modes then the first sub-mode in the list is
// selected and the argument is left in place. Sub-mode comparison is case
// insensitive.
//
// Flags for the selected mode are added after calling NewMode(). The next call
// to Parse() consumes them:
//
//	md.NewMode()
//	echo := md.AddBool("echo", false, "echo log to terminal")
//	r, err = md.Parse()
//
// A -help flag is always available and causes Parse() to print the flags and
// sub-modes of the current mode to the Output writer and return ParseHelp.
package modalflag
