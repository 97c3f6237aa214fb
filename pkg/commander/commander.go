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

package commander

import (
	"fmt"
	"unicode"

	"github.com/timburks/rett/pkg/editor"
	rett "github.com/timburks/rett/pkg/types"
)

// The Commander converts user input into edits of the editor.
type Commander struct {
	editor  *editor.Editor
	debug   bool   // debug mode records information about events (key codes, etc)
	message string // status message
}

func NewCommander(e *editor.Editor) *Commander {
	c := &Commander{editor: e}
	c.bindPrimitives()
	return c
}

func (c *Commander) IsRunning() bool {
	return c.editor.IsRunning()
}

func (c *Commander) SetDebug(debug bool) {
	c.debug = debug
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) ProcessEvent(event *rett.Event) error {
	if event == nil {
		return nil
	}
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", *event)
	}
	switch event.Type {
	case rett.EventKey:
		return c.processKey(event)
	case rett.EventResize:
		return c.processResize(event)
	default:
		return nil
	}
}

func (c *Commander) processResize(event *rett.Event) error {
	return nil
}

func (c *Commander) processKey(event *rett.Event) error {
	e := c.editor
	b := e.GetActiveBuffer()

	key := event.Key
	ch := event.Ch

	// control-u clears the current line and nothing else
	if event.Mod&rett.ModCtrl != 0 && (ch == 'u' || ch == 'U') {
		b.ClearCurrentLine()
		return nil
	}
	if key != 0 {
		switch key {
		case rett.KeyEsc:
			e.Quit()
		case rett.KeyEnter:
			b.Newline()
			e.Evaluate()
		case rett.KeyTab:
			e.FocusNext()
		case rett.KeyBackspace:
			b.Backspace()
			e.Evaluate()
		case rett.KeyArrowUp:
			if !e.GetFocus().IsPattern() {
				b.MoveUp()
			}
		case rett.KeyArrowDown:
			if !e.GetFocus().IsPattern() {
				b.MoveDown()
			}
		case rett.KeyArrowLeft:
			b.MoveLeft()
		case rett.KeyArrowRight:
			b.MoveRight()
		}
		return nil
	}
	if ch != 0 && event.Mod&(rett.ModCtrl|rett.ModAlt) == 0 && unicode.IsPrint(ch) {
		b.InsertChar(ch)
		e.Evaluate()
	}
	return nil
}
