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

// Package paths should be used whenever the program needs to find a file that
// belongs to the program itself, rather than to the user's assets. Currently
// that is only the preferences file.
//
// For development builds the configuration directory is ".glatlas" in the
// current working directory, if it exists. Otherwise the directory is
// "glatlas" in the user's configuration directory as reported by
// os.UserConfigDir().
//
// Asset files, atlas documents and their images, are found with the
// resources package.
package paths
