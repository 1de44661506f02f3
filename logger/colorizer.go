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

package logger

import (
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// entry is emphasised and the detail is printed normally. Coloring is only
// applied if the output supports it.
type Colorizer struct {
	out *termenv.Output
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: termenv.NewOutput(out)}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	for _, l := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		tag, detail, ok := strings.Cut(l, ": ")
		if ok {
			tag = c.out.String(tag).Bold().Foreground(c.out.Color("6")).String()
			l = tag + ": " + detail
		}
		if _, err := io.WriteString(c.out, l+"\n"); err != nil {
			return n, err
		}
	}

	// report the number of bytes consumed from p, not the number of bytes
	// written to the output. the two can differ because of escape codes
	return len(p), nil
}
