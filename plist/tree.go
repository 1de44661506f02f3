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

package plist

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// element is a node in the document tree. only elements and their text are
// kept
type element struct {
	name string

	// text is kept as it appears in the document. sprite names and file
	// names are not trimmed
	text     string
	children []*element
}

// parseTree reads the XML document into a tree of elements. the returned
// element is the document itself and has no name
func parseTree(r io.Reader) (*element, error) {
	doc := &element{}
	stack := []*element{doc}
	text := []*strings.Builder{{}}

	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			e := &element{name: t.Name.Local}
			top := stack[len(stack)-1]
			top.children = append(top.children, e)
			stack = append(stack, e)
			text = append(text, &strings.Builder{})
		case xml.EndElement:
			e := stack[len(stack)-1]
			e.text = text[len(text)-1].String()
			stack = stack[:len(stack)-1]
			text = text[:len(text)-1]
		case xml.CharData:
			text[len(text)-1].Write(t)
		}
	}

	if len(doc.children) == 0 {
		return nil, fmt.Errorf("document is empty")
	}

	return doc, nil
}

// firstChild returns the first child element with the name. returns nil if
// there is no such child
func (e *element) firstChild(name string) *element {
	for _, c := range e.children {
		if c.name == name {
			return c
		}
	}
	return nil
}
