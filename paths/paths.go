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

package paths

import (
	"os"
	"path/filepath"
)

// the base path for all configuration files. note that we don't use this
// value directly except in the getBasePath() function. that function should
// be used instead.
const baseConfigPath = ".glatlas"

// ResourcePath returns the path to the named configuration file, prepended
// with operating system specific details. The directory leading to the file
// is created if necessary.
func ResourcePath(resource ...string) (string, error) {
	b, err := getBasePath()
	if err != nil {
		return "", err
	}

	p := filepath.Join(append([]string{b}, resource...)...)

	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return "", err
	}

	return p, nil
}

// getBasePath() returns baseConfigPath if it exists in the current directory.
// Otherwise the path is in the user's configuration directory.
func getBasePath() (string, error) {
	if _, err := os.Stat(baseConfigPath); err == nil {
		return baseConfigPath, nil
	}

	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cfg, baseConfigPath[1:]), nil
}
