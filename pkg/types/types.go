//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package types

// A Point is a cursor position: a column within a row.
// Columns count runes and may equal the row length (insertion point).
type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

type Rect struct {
	Origin Point
	Size   Size
}

// Color is a 256-color terminal palette index, offset by one so that
// zero means the terminal default.
type Color uint16

const (
	ColorDefault Color = 0x00
	ColorBlack   Color = 0x01
	ColorWhite   Color = 0x08
	ColorMatch   Color = 0x0b
	ColorMax     Color = 0x100
)

// A Display receives cells from renderers.
type Display interface {
	SetCell(col int, row int, c rune, color Color)
	SetCursor(p Point)
}
