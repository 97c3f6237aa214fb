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

// The Editor holds the state of a session: the pattern, text and matches
// buffers, which of them has focus, and the most recently compiled pattern.
// There is one editor per session and it is passed explicitly to the
// commander and the screen.
type Editor struct {
	running  bool
	focus    rett.Field
	compiled *regexp.Regexp // nil when no valid pattern has been compiled
	pattern  *Buffer
	text     *Buffer
	matches  *Buffer
}

func NewEditor() *Editor {
	return &Editor{
		running: true,
		focus:   rett.FieldText,
		pattern: NewSingleLineBuffer(rett.FieldPattern.String()),
		text:    NewBuffer(rett.FieldText.String()),
		matches: NewBuffer(rett.FieldMatches.String()),
	}
}

func (e *Editor) IsRunning() bool {
	return e.running
}

// Quit ends the session. Nothing else should be done with the editor afterwards.
func (e *Editor) Quit() {
	e.running = false
}

func (e *Editor) GetFocus() rett.Field {
	return e.focus
}

// SetFocus moves focus directly to f without adjusting any cursor.
func (e *Editor) SetFocus(f rett.Field) {
	e.focus = f
}

// FocusNext rotates focus and puts the cursor of the newly focused
// buffer at the end of its current row.
func (e *Editor) FocusNext() {
	e.focus = e.focus.Next()
	e.GetActiveBuffer().MoveToEndOfLine()
}

func (e *Editor) GetBuffer(f rett.Field) *Buffer {
	switch f {
	case rett.FieldPattern:
		return e.pattern
	case rett.FieldText:
		return e.text
	default:
		return e.matches
	}
}

func (e *Editor) GetActiveBuffer() *Buffer {
	return e.GetBuffer(e.focus)
}

func (e *Editor) GetPatternBuffer() *Buffer {
	return e.pattern
}

func (e *Editor) GetTextBuffer() *Buffer {
	return e.text
}

func (e *Editor) GetMatchesBuffer() *Buffer {
	return e.matches
}

// GetCompiledPattern returns the pattern used for matching, or nil.
func (e *Editor) GetCompiledPattern() *regexp.Regexp {
	return e.compiled
}

// SetPattern replaces the pattern and re-evaluates as if it had been typed.
func (e *Editor) SetPattern(s string) {
	e.pattern.SetText(s)
	e.pattern.MoveToEndOfLine()
	if e.compilePattern() {
		e.evaluateMatches()
	}
}

// SetText replaces the sample text and re-evaluates.
func (e *Editor) SetText(s string) {
	e.text.SetText(s)
	e.evaluateMatches()
}
