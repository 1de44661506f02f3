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

// Package assert contains runtime checks that are useful when debugging.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// GoroutineID returns an identifier for the calling goroutine. The result is
// different between goroutines and consistent for a given goroutine. It
// should only ever be used for debugging or testing purposes.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner records the goroutine that created it. Code that must only be used
// from one goroutine, such as code using a GL context, can check that it is
// being called from the owning goroutine.
type Owner struct {
	id uint64
}

// NewOwner returns an Owner for the calling goroutine.
func NewOwner() Owner {
	return Owner{id: GoroutineID()}
}

// IsOwner returns true if the calling goroutine is the owner.
func (o Owner) IsOwner() bool {
	return o.id == GoroutineID()
}
