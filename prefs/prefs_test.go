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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/glatlas/curated"
	"github.com/jetsetilly/glatlas/prefs"
	"github.com/jetsetilly/glatlas/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.Get().(bool), false)

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.String(), "true")

	test.ExpectSuccess(t, v.Set("FALSE"))
	test.ExpectEquality(t, v.Get().(bool), false)

	test.ExpectSuccess(t, v.Set(" True "))
	test.ExpectEquality(t, v.Get().(bool), true)

	test.ExpectFailure(t, v.Set(10))

	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(bool), false)
}

func TestString(t *testing.T) {
	var v prefs.String
	test.ExpectEquality(t, v.String(), "")

	test.ExpectSuccess(t, v.Set("hello world"))
	test.ExpectEquality(t, v.String(), "hello world")

	v.SetMaxLen(5)
	test.ExpectEquality(t, v.String(), "hello")

	test.ExpectSuccess(t, v.Set("goodbye"))
	test.ExpectEquality(t, v.String(), "goodb")

	v.SetMaxLen(0)
	test.ExpectSuccess(t, v.Set("goodbye"))
	test.ExpectEquality(t, v.String(), "goodbye")

	test.ExpectFailure(t, v.Set(1.0))
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectEquality(t, v.Get().(int), 0)

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, v.String(), "10")

	test.ExpectSuccess(t, v.Set(" -3 "))
	test.ExpectEquality(t, v.Get().(int), -3)

	test.ExpectFailure(t, v.Set("ten"))
	test.ExpectEquality(t, v.Get().(int), -3)
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectSuccess(t, v.Set(0.5))
	test.ExpectEquality(t, v.String(), "0.5")

	// small values are not rounded away
	test.ExpectSuccess(t, v.Set(0.00001))
	test.ExpectEquality(t, v.String(), "1e-05")

	test.ExpectSuccess(t, v.Set("1.25"))
	test.ExpectApproximate(t, v.Get().(float64), 1.25, 0.0001)

	test.ExpectSuccess(t, v.Set(2))
	test.ExpectApproximate(t, v.Get().(float64), 2.0, 0.0001)

	test.ExpectFailure(t, v.Set("x"))
}

func TestHooks(t *testing.T) {
	var v prefs.String
	var post string

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(string) == "bad" {
			return fmt.Errorf("bad value")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(string)
		return nil
	})

	test.ExpectSuccess(t, v.Set("good"))
	test.ExpectEquality(t, post, "good")

	// pre hook prevents the update
	test.ExpectFailure(t, v.Set("bad"))
	test.ExpectEquality(t, v.String(), "good")
	test.ExpectEquality(t, post, "good")
}

func TestDiskSaveLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs.yaml")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var b prefs.Bool
	var s prefs.String
	var i prefs.Int
	test.DemandSuccess(t, dsk.Add("test.bool", &b))
	test.DemandSuccess(t, dsk.Add("test.string", &s))
	test.DemandSuccess(t, dsk.Add("test.int", &i))

	// keys must be unique
	test.ExpectFailure(t, dsk.Add("test.int", &i))

	// missing file
	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	test.DemandSuccess(t, b.Set(true))
	test.DemandSuccess(t, s.Set("foo"))
	test.DemandSuccess(t, i.Set(10))
	test.DemandSuccess(t, dsk.Save())

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(data), prefs.WarningBoilerPlate))

	test.DemandSuccess(t, dsk.Reset())
	test.ExpectEquality(t, s.String(), "")

	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, b.Get().(bool), true)
	test.ExpectEquality(t, s.String(), "foo")
	test.ExpectEquality(t, i.Get().(int), 10)
}

func TestDiskPreservesUnknownKeys(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs.yaml")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("other.key: bar\n"), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.DemandSuccess(t, dsk.Add("test.string", &s))
	test.DemandSuccess(t, s.Set("foo"))
	test.DemandSuccess(t, dsk.Save())

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "other.key: bar\n"))
	test.ExpectSuccess(t, strings.Contains(string(data), "test.string: foo\n"))
}

func TestDiskCommandLine(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs.yaml")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("test.string: foo\n"), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.DemandSuccess(t, dsk.Add("test.string", &s))

	prefs.PushCommandLineStack("test.string::bar; test.unused::1")
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, s.String(), "bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "test.unused::1")

	// command line value is not saved unless requested
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, s.String(), "foo")
}
