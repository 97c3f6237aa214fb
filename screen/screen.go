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
	"github.com/nsf/termbox-go"

	"github.com/timburks/rett/pkg/config"
	"github.com/timburks/rett/pkg/editor"
	rett "github.com/timburks/rett/pkg/types"
)

// The Screen draws the state of an Editor and reads terminal events.
type Screen struct {
	size   rett.Size // screen size
	config *config.Config
	panels [3]*Panel
}

func NewScreen(cfg *config.Config) (*Screen, error) {
	// Open the terminal.
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetOutputMode(termbox.Output256)
	termbox.SetInputMode(termbox.InputEsc)
	s := &Screen{config: cfg}
	for i := range s.panels {
		s.panels[i] = NewPanel()
	}
	return s, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(e *editor.Editor) {
	colors := s.config.Colors
	termbox.Clear(termbox.Attribute(colors.Foreground), termbox.Attribute(colors.Background))
	s.size.Cols, s.size.Rows = termbox.Size()

	if s.config.Highlight {
		e.HighlightMatches(colors.Match)
	}
	frames := Layout(s.size, s.config.PatternHeight)
	for f, p := range s.panels {
		field := rett.Field(f)
		p.SetFrame(frames[field])
		p.Render(e.GetBuffer(field), s, colors.Border, colors.Foreground)
	}
	// only the focused panel shows a cursor
	focus := e.GetFocus()
	s.SetCursor(s.panels[focus].CursorPosition(e.GetBuffer(focus)))
	termbox.Flush()
}

func (s *Screen) SetCell(j int, i int, c rune, color rett.Color) {
	termbox.SetCell(j, i, c, termbox.Attribute(color), termbox.Attribute(s.config.Colors.Background))
}

func (s *Screen) SetCursor(p rett.Point) {
	termbox.SetCursor(p.Col, p.Row)
}

func (s *Screen) GetNextEvent() *rett.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventKey:
		return translateKey(event)
	case termbox.EventResize:
		termbox.Flush()
		return &rett.Event{Type: rett.EventResize}
	default:
		return &rett.Event{Type: rett.EventRelease}
	}
}

// translateKey converts a termbox key event. termbox reports control
// chords as their own key codes; the ones rett cares about become a
// character with the control modifier.
func translateKey(event termbox.Event) *rett.Event {
	e := &rett.Event{Type: rett.EventKey}
	if event.Mod&termbox.ModAlt != 0 {
		e.Mod |= rett.ModAlt
	}
	if event.Key == 0 {
		e.Ch = event.Ch
		return e
	}
	switch event.Key {
	case termbox.KeyCtrlU:
		e.Ch = 'u'
		e.Mod |= rett.ModCtrl
	case termbox.KeySpace:
		e.Ch = ' '
	default:
		e.Key = key(event.Key)
	}
	return e
}

func key(k termbox.Key) rett.Key {
	switch k {
	case termbox.KeyArrowDown:
		return rett.KeyArrowDown
	case termbox.KeyArrowLeft:
		return rett.KeyArrowLeft
	case termbox.KeyArrowRight:
		return rett.KeyArrowRight
	case termbox.KeyArrowUp:
		return rett.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return rett.KeyBackspace
	case termbox.KeyEnter:
		return rett.KeyEnter
	case termbox.KeyEsc:
		return rett.KeyEsc
	case termbox.KeyTab:
		return rett.KeyTab
	default:
		return rett.KeyUnsupported
	}
}
