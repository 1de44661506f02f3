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

package resources_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/glatlas/resources"
	"github.com/jetsetilly/glatlas/test"
)

func TestAbspath(t *testing.T) {
	dir := t.TempDir()

	err := resources.SetRoot(dir)
	test.DemandSuccess(t, err)
	t.Cleanup(func() { _ = resources.SetRoot("") })

	p, err := resources.Abspath("atlas/ui.plist")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(dir, "atlas", "ui.plist"))

	// absolute paths are unchanged
	abs := filepath.Join(dir, "other", "..", "ui.plist")
	p, err = resources.Abspath(abs)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(dir, "ui.plist"))
}

func TestSetRoot(t *testing.T) {
	dir := t.TempDir()

	err := resources.SetRoot(filepath.Join(dir, "missing"))
	test.ExpectFailure(t, err)

	fn := filepath.Join(dir, "file")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("x"), 0o600))
	err = resources.SetRoot(fn)
	test.ExpectFailure(t, err)

	// a failed change leaves the root as it was
	test.ExpectEquality(t, resources.Root(), "")

	test.DemandSuccess(t, resources.SetRoot(dir))
	test.ExpectEquality(t, resources.Root(), dir)

	// the empty string restores the working directory as the root
	test.DemandSuccess(t, resources.SetRoot(""))
	test.ExpectEquality(t, resources.Root(), "")

	p, err := resources.Abspath("ui.plist")
	test.ExpectSuccess(t, err)
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(wd, "ui.plist"))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	test.DemandSuccess(t, resources.SetRoot(dir))
	t.Cleanup(func() { _ = resources.SetRoot("") })

	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "ui.plist"), []byte("<plist/>"), 0o600))

	s, err := resources.LoadString("ui.plist")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "<plist/>")

	_, err = resources.LoadBytes("missing.plist")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, fs.ErrNotExist))
}
