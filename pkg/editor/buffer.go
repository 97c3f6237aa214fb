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

package editor

import (
	"strings"

	rett "github.com/timburks/rett/pkg/types"
)

// A Buffer holds the rows of one panel and the cursor that edits them.
// A buffer always has at least one row, and the cursor always points
// at an existing row and a column no greater than that row's length.
type Buffer struct {
	name       string
	rows       []*Row
	cursor     rett.Point
	singleLine bool // single-line buffers ignore newlines and vertical movement
}

func NewBuffer(name string) *Buffer {
	b := &Buffer{name: name}
	b.rows = []*Row{NewRow("")}
	return b
}

// NewSingleLineBuffer creates a buffer that never grows past one row.
func NewSingleLineBuffer(name string) *Buffer {
	b := NewBuffer(name)
	b.singleLine = true
	return b
}

func (b *Buffer) GetName() string {
	return b.name
}

func (b *Buffer) IsSingleLine() bool {
	return b.singleLine
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRowLength(i int) int {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].Length()
	}
	return 0
}

func (b *Buffer) GetRow(i int) *Row {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i]
	}
	return nil
}

func (b *Buffer) GetCursor() rett.Point {
	return b.cursor
}

// SetCursor moves the cursor, clamping it into the buffer.
func (b *Buffer) SetCursor(p rett.Point) {
	b.cursor = p
	b.keepCursorInBuffer()
}

// Lines returns a copy of the buffer contents, one string per row.
func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.rows))
	for i, row := range b.rows {
		lines[i] = row.GetString()
	}
	return lines
}

// SetLines replaces the contents of the buffer.
// An empty slice leaves a single empty row.
func (b *Buffer) SetLines(lines []string) {
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
	if len(b.rows) == 0 {
		b.rows = append(b.rows, NewRow(""))
	}
	b.keepCursorInBuffer()
}

// SetText replaces the contents of the buffer with s split at newlines.
// Single-line buffers keep everything on one row.
func (b *Buffer) SetText(s string) {
	if b.singleLine {
		b.SetLines([]string{strings.ReplaceAll(s, "\n", "")})
		return
	}
	b.SetLines(strings.Split(s, "\n"))
}

// String returns the rows joined with newlines.
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

func (b *Buffer) currentRow() *Row {
	return b.rows[b.cursor.Row]
}

func (b *Buffer) InsertChar(c rune) {
	b.currentRow().InsertChar(b.cursor.Col, c)
	b.cursor.Col++
}

// Newline adds an empty row at the end of the buffer and moves the cursor
// to the start of the row below it. Rows are never split.
func (b *Buffer) Newline() {
	if b.singleLine {
		return
	}
	b.rows = append(b.rows, NewRow(""))
	b.cursor.Row++
	b.cursor.Col = 0
}

// Backspace deletes the character before the cursor. At the start of a row,
// the row is removed and its text is discarded.
func (b *Buffer) Backspace() {
	if b.cursor.Col > 0 {
		b.currentRow().DeleteChar(b.cursor.Col - 1)
		b.cursor.Col--
	} else if b.cursor.Row > 0 {
		row := b.cursor.Row
		b.rows = append(b.rows[0:row], b.rows[row+1:]...)
		b.cursor.Row--
		b.cursor.Col = b.currentRow().Length()
	}
}

func (b *Buffer) MoveUp() {
	if b.singleLine || b.cursor.Row == 0 {
		return
	}
	b.cursor.Row--
	b.MoveToEndOfLine()
}

func (b *Buffer) MoveDown() {
	if b.singleLine || b.cursor.Row >= len(b.rows)-1 {
		return
	}
	b.cursor.Row++
	b.MoveToEndOfLine()
}

func (b *Buffer) MoveLeft() {
	if b.cursor.Col > 0 {
		b.cursor.Col--
	}
}

func (b *Buffer) MoveRight() {
	if b.cursor.Col < b.currentRow().Length() {
		b.cursor.Col++
	}
}

func (b *Buffer) MoveToEndOfLine() {
	b.cursor.Col = b.currentRow().Length()
}

// ClearCurrentLine empties the row under the cursor but keeps the row.
func (b *Buffer) ClearCurrentLine() {
	b.currentRow().Clear()
	b.cursor.Col = 0
}

func (b *Buffer) keepCursorInBuffer() {
	b.cursor.Row = clipToRange(b.cursor.Row, 0, len(b.rows)-1)
	b.cursor.Col = clipToRange(b.cursor.Col, 0, b.currentRow().Length())
}

func clipToRange(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
