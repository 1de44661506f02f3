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

package main

import (
	"fmt"

	"github.com/jetsetilly/glatlas/curated"
	"github.com/jetsetilly/glatlas/logger"
	"github.com/jetsetilly/glatlas/prefs"
)

// preferences for the glatlas program. stored in the same file as the
// texture preferences
type preferences struct {
	dsk *prefs.Disk

	// echo the log to the terminal. the -echo flag turns echoing on
	// regardless of this value
	echo prefs.Bool

	// number of entries kept by the central logger
	logEntries prefs.Int

	// number of log entries printed when loading an atlas fails
	logTail prefs.Int

	// how far outside the unit square a frame's texture coordinates can be
	// before the frame is reported as lying outside the atlas image
	uvTolerance prefs.Float
}

func newPreferences(path string) (*preferences, error) {
	p := &preferences{}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	p.logEntries.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return fmt.Errorf("log must keep at least one entry")
		}
		return nil
	})
	p.logEntries.SetHookPost(func(v prefs.Value) error {
		logger.SetMaxEntries(v.(int))
		return nil
	})
	p.logTail.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return fmt.Errorf("log tail cannot be negative")
		}
		return nil
	})
	p.uvTolerance.SetHookPre(func(v prefs.Value) error {
		if v.(float64) < 0 {
			return fmt.Errorf("uv tolerance cannot be negative")
		}
		return nil
	})

	err = p.dsk.Add("glatlas.echo", &p.echo)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("glatlas.logEntries", &p.logEntries)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("glatlas.logTail", &p.logTail)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("glatlas.uvTolerance", &p.uvTolerance)
	if err != nil {
		return nil, err
	}

	err = p.setDefaults()
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (p *preferences) setDefaults() error {
	if err := p.echo.Set(false); err != nil {
		return err
	}
	if err := p.logEntries.Set(logger.DefaultMaxEntries); err != nil {
		return err
	}
	if err := p.logTail.Set(10); err != nil {
		return err
	}
	return p.uvTolerance.Set(0.00001)
}

// load preferences from disk. a missing prefs file is not an error
func (p *preferences) load() error {
	err := p.dsk.Load()
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return err
	}
	return nil
}
