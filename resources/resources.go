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

// Package resources resolves and loads asset files: atlas documents and the
// images they refer to.
//
// Relative paths are anchored at the resource root. By default the root is
// the current working directory. It can be changed with SetRoot(), for
// example from a command line flag. Absolute paths are never changed, other
// than being cleaned.
package resources

import (
	"fmt"
	"os"
	"path/filepath"
)

var root string

// SetRoot changes the directory that relative resource paths are anchored
// at. The directory must exist. An empty string restores the default of the
// current working directory.
func SetRoot(dir string) error {
	if dir == "" {
		root = ""
		return nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resources: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("resources: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("resources: %s is not a directory", abs)
	}

	root = abs
	return nil
}

// Root returns the current resource root. An empty string means the current
// working directory.
func Root() string {
	return root
}

// Abspath returns the absolute path for the resource.
func Abspath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	if root != "" {
		return filepath.Join(root, path), nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resources: %w", err)
	}
	return abs, nil
}

// LoadBytes returns the contents of the resource. The error from the os
// package is returned unchanged so that callers can test for fs.ErrNotExist.
func LoadBytes(path string) ([]byte, error) {
	abs, err := Abspath(path)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(abs)
}

// LoadString returns the contents of the resource as a string. The file is
// expected to be UTF-8 encoded.
func LoadString(path string) (string, error) {
	b, err := LoadBytes(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
