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

package prefs

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/glatlas/curated"
	"github.com/jetsetilly/glatlas/logger"
	"gopkg.in/yaml.v3"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences.yaml"

// WarningBoilerPlate is written to the top of every prefs file.
const WarningBoilerPlate = "# *** do not edit this file by hand while glatlas is running ***"

// NoPrefsFile is returned by Load() when the prefs file does not exist.
const NoPrefsFile = "prefs: no prefs file (%s)"

// Disk represents preference values as stored on disk. Values are added to a
// Disk with Add() and then saved and loaded as a group. Entries in the file
// that have not been added to the Disk instance are preserved when the file
// is saved.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	keys := dsk.keys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: no path for prefs file")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from Disk. The key
// must be unique to the Disk instance.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("prefs: empty key")
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key %s already added", key)
	}
	dsk.entries[key] = p
	return nil
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// read the prefs file into a map of strings. the file not existing is not an
// error at this level, the boolean return value is false in that case.
func (dsk *Disk) read() (map[string]string, bool, error) {
	data, err := os.ReadFile(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, false, nil
		}
		return nil, false, fmt.Errorf("prefs: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, true, fmt.Errorf("prefs: %s: %w", dsk.path, err)
	}

	vals := make(map[string]string, len(raw))
	for k, v := range raw {
		if v == nil {
			vals[k] = ""
		} else {
			vals[k] = fmt.Sprint(v)
		}
	}

	return vals, true, nil
}

// Save current preference values to disk.
func (dsk *Disk) Save() error {
	vals, _, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		vals[k] = p.String()
	}

	data, err := yaml.Marshal(vals)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	b := bytes.Buffer{}
	b.WriteString(WarningBoilerPlate)
	b.WriteString("\n")
	b.Write(data)

	if err := os.WriteFile(dsk.path, b.Bytes(), 0o600); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	logger.Logf(logger.Allow, "prefs", "saved %d values to %s", len(dsk.entries), dsk.path)

	return nil
}

// Load preference values from disk. Values on the top of the command line
// stack override values from the file. Command line values are applied even
// if the prefs file doesn't exist, in which case the NoPrefsFile error is
// still returned.
func (dsk *Disk) Load() error {
	vals, exists, err := dsk.read()
	if err != nil {
		return err
	}

	for _, k := range dsk.keys() {
		if v, ok := vals[k]; ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
		if ok, v := GetCommandLinePref(k); ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	if !exists {
		return curated.Errorf(NoPrefsFile, dsk.path)
	}

	return nil
}

// Reset all preference values in the Disk instance to their default values.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}
	return nil
}
