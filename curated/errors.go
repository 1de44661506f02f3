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

package curated

import (
	"errors"
	"fmt"
	"strings"
)

type curated struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error. Formatting is deferred until Error() is
// called. Note that unlike fmt.Errorf() the %w verb is not needed to create a
// chain. Any error in the values list is automatically part of the chain.
func Errorf(pattern string, values ...any) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error implements the error interface.
func (er curated) Error() string {
	s := fmt.Sprintf(er.pattern, er.values...)

	// de-duplicate adjacent message parts
	p := strings.Split(s, ": ")
	d := p[:1]
	for i := 1; i < len(p); i++ {
		if p[i] != d[len(d)-1] {
			d = append(d, p[i])
		}
	}

	return strings.Join(d, ": ")
}

// Unwrap returns all error values that were used to create the curated error.
func (er curated) Unwrap() []error {
	var errs []error
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			errs = append(errs, e)
		}
	}
	return errs
}

// IsAny checks if the error is a curated error. Wrapping with fmt.Errorf()
// and the %w verb is seen through.
func IsAny(err error) bool {
	if err == nil {
		return false
	}
	var er curated
	return errors.As(err, &er)
}

// Is checks if the outermost curated error has been created with the
// specified pattern.
func Is(err error, pattern string) bool {
	if err == nil {
		return false
	}
	var er curated
	if errors.As(err, &er) {
		return er.pattern == pattern
	}
	return false
}

// Has checks if the pattern occurs anywhere in the error chain.
func Has(err error, pattern string) bool {
	if err == nil {
		return false
	}

	var er curated
	if !errors.As(err, &er) {
		return false
	}

	if er.pattern == pattern {
		return true
	}

	for _, e := range er.Unwrap() {
		if Has(e, pattern) {
			return true
		}
	}

	return false
}

// Pattern returns the pattern of the outermost curated error in the chain. The
// boolean return value is false if the error is not curated.
func Pattern(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	var er curated
	if errors.As(err, &er) {
		return er.pattern, true
	}
	return "", false
}
