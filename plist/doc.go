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

// Package plist parses the property list documents that describe a packed
// sprite sheet.
//
// The expected document structure is:
//
//	<plist>
//	  <dict>
//	    <key>frames</key>
//	    <dict>
//	      <key>sprite name</key>
//	      <dict>
//	        <key>x</key><integer>0</integer>
//	        <key>y</key><integer>0</integer>
//	        <key>width</key><integer>16</integer>
//	        <key>height</key><integer>16</integer>
//	      </dict>
//	      ...
//	    </dict>
//	    <key>metadata</key>
//	    <dict>
//	      <key>textureFileName</key><string>sheet.png</string>
//	      <key>size</key><string>{256, 128}</string>
//	    </dict>
//	  </dict>
//	</plist>
//
// Keys and values in a dict are sibling elements. The value for a key is the
// element immediately following the key element.
//
// The metadata dict is always parsed before the frames dict, regardless of
// the order in the document. Frames are returned in document order. Sprite
// names are not required to be unique.
//
// As an alternative to the x, y, width and height keys, a frame dict may use
// a "frame" or "textureRect" key with a string value of the form
// "{{x, y}, {width, height}}".
package plist
