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

package screen

import (
	"github.com/mattn/go-runewidth"

	"github.com/timburks/rett/pkg/editor"
	rett "github.com/timburks/rett/pkg/types"
)

// Layout divides the screen into the pattern, text and matches panels,
// stacked vertically. The pattern panel has a fixed height and the other
// two share the remaining rows evenly.
func Layout(size rett.Size, patternHeight int) [3]rett.Rect {
	if patternHeight > size.Rows {
		patternHeight = size.Rows
	}
	rest := size.Rows - patternHeight
	textHeight := rest / 2
	matchesHeight := rest - textHeight
	var r [3]rett.Rect
	r[rett.FieldPattern] = rett.Rect{
		Origin: rett.Point{Row: 0, Col: 0},
		Size:   rett.Size{Rows: patternHeight, Cols: size.Cols},
	}
	r[rett.FieldText] = rett.Rect{
		Origin: rett.Point{Row: patternHeight, Col: 0},
		Size:   rett.Size{Rows: textHeight, Cols: size.Cols},
	}
	r[rett.FieldMatches] = rett.Rect{
		Origin: rett.Point{Row: patternHeight + textHeight, Col: 0},
		Size:   rett.Size{Rows: matchesHeight, Cols: size.Cols},
	}
	return r
}

func cellWidth(c rune) int {
	if w := runewidth.RuneWidth(c); w > 0 {
		return w
	}
	return 1
}

func stringWidth(s string) int {
	w := 0
	for _, c := range s {
		w += cellWidth(c)
	}
	return w
}

// A Panel draws a buffer inside a border titled with the buffer name.
// It keeps a scroll offset so that the cursor stays inside the border.
type Panel struct {
	frame  rett.Rect
	offset rett.Size // display offset in rows and runes
}

func NewPanel() *Panel {
	return &Panel{}
}

func (p *Panel) SetFrame(r rett.Rect) {
	p.frame = r
}

// inner size, without the border
func (p *Panel) textSize() rett.Size {
	s := rett.Size{Rows: p.frame.Size.Rows - 2, Cols: p.frame.Size.Cols - 2}
	if s.Rows < 0 {
		s.Rows = 0
	}
	if s.Cols < 0 {
		s.Cols = 0
	}
	return s
}

// Recompute the display offset to keep the cursor onscreen.
func (p *Panel) adjustDisplayOffsetForScrolling(b *editor.Buffer) {
	cursor := b.GetCursor()
	size := p.textSize()
	if cursor.Row < p.offset.Rows {
		// scroll up
		p.offset.Rows = cursor.Row
	}
	if size.Rows > 0 && cursor.Row-p.offset.Rows >= size.Rows {
		// scroll down
		p.offset.Rows = cursor.Row - size.Rows + 1
	}
	if cursor.Col < p.offset.Cols {
		// scroll left
		p.offset.Cols = cursor.Col
	}
	if row := b.GetRow(cursor.Row); row != nil && size.Cols > 0 {
		// scroll right until the text before the cursor leaves room for it
		for p.offset.Cols < cursor.Col && stringWidth(string(row.Text[p.offset.Cols:cursor.Col])) >= size.Cols {
			p.offset.Cols++
		}
	}
}

// Render draws the border, the title and the visible rows of b.
// Cells without a highlight color are drawn in foreground.
func (p *Panel) Render(b *editor.Buffer, d rett.Display, border, foreground rett.Color) {
	p.adjustDisplayOffsetForScrolling(b)
	p.renderBorder(b.GetName(), d, border)

	size := p.textSize()
	for i := 0; i < size.Rows; i++ {
		row := b.GetRow(i + p.offset.Rows)
		if row == nil {
			break
		}
		text := row.Text
		colors := row.GetColors()
		if p.offset.Cols < len(text) {
			text = text[p.offset.Cols:]
			colors = colors[p.offset.Cols:]
		} else {
			text = nil
		}
		x := 0
		for j, c := range text {
			w := cellWidth(c)
			// truncate line to fit the panel
			if x+w > size.Cols {
				break
			}
			color := foreground
			if j < len(colors) && colors[j] != rett.ColorDefault {
				color = colors[j]
			}
			d.SetCell(p.frame.Origin.Col+1+x, p.frame.Origin.Row+1+i, c, color)
			x += w
		}
	}
}

func (p *Panel) renderBorder(title string, d rett.Display, color rett.Color) {
	top := p.frame.Origin.Row
	left := p.frame.Origin.Col
	bottom := top + p.frame.Size.Rows - 1
	right := left + p.frame.Size.Cols - 1
	if bottom <= top || right <= left {
		return
	}
	for col := left + 1; col < right; col++ {
		d.SetCell(col, top, '─', color)
		d.SetCell(col, bottom, '─', color)
	}
	for row := top + 1; row < bottom; row++ {
		d.SetCell(left, row, '│', color)
		d.SetCell(right, row, '│', color)
	}
	d.SetCell(left, top, '┌', color)
	d.SetCell(right, top, '┐', color)
	d.SetCell(left, bottom, '└', color)
	d.SetCell(right, bottom, '┘', color)

	title = runewidth.Truncate(title, p.frame.Size.Cols-2, "")
	x := left + 1
	for _, c := range title {
		d.SetCell(x, top, c, color)
		x += cellWidth(c)
	}
}

// CursorPosition returns the screen position of the cursor of b.
// The border takes one cell, so an unscrolled cursor at (col, row)
// appears at (frame.Col + width(row[:col]) + 1, frame.Row + row + 1).
func (p *Panel) CursorPosition(b *editor.Buffer) rett.Point {
	cursor := b.GetCursor()
	before := ""
	if row := b.GetRow(cursor.Row); row != nil && p.offset.Cols < cursor.Col {
		before = string(row.Text[p.offset.Cols:min(cursor.Col, row.Length())])
	}
	return rett.Point{
		Col: p.frame.Origin.Col + stringWidth(before) + 1,
		Row: p.frame.Origin.Row + cursor.Row - p.offset.Rows + 1,
	}
}
