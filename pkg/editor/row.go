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
	rett "github.com/timburks/rett/pkg/types"
)

// A Row is a line of text in a buffer.
// Colors holds one display color per rune and is rewritten by the highlighter.
// ColorDefault cells are drawn in the foreground color.
type Row struct {
	Text   []rune
	Colors []rett.Color
}

func NewRow(text string) *Row {
	r := &Row{}
	r.setText([]rune(text))
	return r
}

func (r *Row) setText(text []rune) {
	r.Text = text
	r.Colors = make([]rett.Color, len(r.Text))
	r.resetColors()
}

func (r *Row) resetColors() {
	for j := range r.Colors {
		r.Colors[j] = rett.ColorDefault
	}
}

func (r *Row) GetString() string {
	return string(r.Text)
}

func (r *Row) GetColors() []rett.Color {
	return r.Colors
}

func (r *Row) Length() int {
	return len(r.Text)
}

// InsertChar inserts c before col. Columns past the end append.
func (r *Row) InsertChar(col int, c rune) {
	if col < 0 {
		col = 0
	}
	line := make([]rune, 0, len(r.Text)+1)
	if col <= len(r.Text) {
		line = append(line, r.Text[0:col]...)
	} else {
		line = append(line, r.Text...)
	}
	line = append(line, c)
	if col < len(r.Text) {
		line = append(line, r.Text[col:]...)
	}
	r.setText(line)
}

// delete character at col and return the deleted character
func (r *Row) DeleteChar(col int) rune {
	if len(r.Text) == 0 || col < 0 {
		return 0
	}
	if col > len(r.Text)-1 {
		col = len(r.Text) - 1
	}
	c := r.Text[col]
	line := make([]rune, 0, len(r.Text)-1)
	line = append(line, r.Text[0:col]...)
	line = append(line, r.Text[col+1:]...)
	r.setText(line)
	return c
}

func (r *Row) Clear() {
	r.setText(nil)
}
