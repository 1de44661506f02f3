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

package texture

import (
	"fmt"

	"github.com/jetsetilly/glatlas/curated"
	"github.com/jetsetilly/glatlas/gpu"
	"github.com/jetsetilly/glatlas/prefs"
)

// Preferences for the texture loader.
type Preferences struct {
	dsk *prefs.Disk

	WrapS prefs.String
	WrapT prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are registered with a prefs.Disk using the file at
// path. The values are not loaded until Load() is called.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, fmt.Errorf("texture: %w", err)
	}

	validate := func(v prefs.Value) error {
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("texture: wrap mode must be a string")
		}
		if _, err := gpu.ParseWrap(s); err != nil {
			return fmt.Errorf("texture: %w", err)
		}
		return nil
	}
	p.WrapS.SetHookPre(validate)
	p.WrapT.SetHookPre(validate)

	err = p.dsk.Add("texture.wrapS", &p.WrapS)
	if err != nil {
		return nil, fmt.Errorf("texture: %w", err)
	}
	err = p.dsk.Add("texture.wrapT", &p.WrapT)
	if err != nil {
		return nil, fmt.Errorf("texture: %w", err)
	}

	err = p.SetDefaults()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() error {
	if err := p.WrapS.Set(gpu.Repeat.String()); err != nil {
		return err
	}
	return p.WrapT.Set(gpu.Repeat.String())
}

// Load texture preferences from disk. A missing prefs file is not an error.
func (p *Preferences) Load() error {
	err := p.dsk.Load()
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return err
	}
	return nil
}

// Save texture preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Apply the preferred wrap modes to the Loader.
func (p *Preferences) Apply(ldr *Loader) error {
	s, err := gpu.ParseWrap(p.WrapS.String())
	if err != nil {
		return fmt.Errorf("texture: %w", err)
	}
	t, err := gpu.ParseWrap(p.WrapT.String())
	if err != nil {
		return fmt.Errorf("texture: %w", err)
	}
	ldr.SetWrapModes(s, t)
	return nil
}
