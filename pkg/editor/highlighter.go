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
	"regexp"

	rett "github.com/timburks/rett/pkg/types"
)

// The MatchHighlighter colors the parts of a buffer covered by matches.
type MatchHighlighter struct {
	pattern *regexp.Regexp
	color   rett.Color
}

func NewMatchHighlighter(pattern *regexp.Regexp, color rett.Color) *MatchHighlighter {
	return &MatchHighlighter{pattern: pattern, color: color}
}

// Highlight resets the colors of every row and then colors each rune that
// falls inside a match. Matches are found in the joined text, so a match
// can span rows; the newlines themselves have no cell to color.
func (h *MatchHighlighter) Highlight(b *Buffer) {
	for _, r := range b.rows {
		r.resetColors()
	}
	if h.pattern == nil {
		return
	}
	text := b.String()
	matches := h.pattern.FindAllStringIndex(text, -1)
	if matches == nil {
		return
	}
	// walk the text once, tracking the row and column of each byte offset
	m := 0
	row, col := 0, 0
	for offset, c := range text {
		for m < len(matches) && offset >= matches[m][1] {
			m++
		}
		if m == len(matches) {
			break
		}
		if c == '\n' {
			row++
			col = 0
			continue
		}
		if offset >= matches[m][0] {
			colors := b.rows[row].GetColors()
			if col < len(colors) {
				colors[col] = h.color
			}
		}
		col++
	}
}

// HighlightMatches colors the text buffer with the compiled pattern.
func (e *Editor) HighlightMatches(color rett.Color) {
	NewMatchHighlighter(e.compiled, color).Highlight(e.text)
}
