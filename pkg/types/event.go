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

// Event types
const (
	EventKey     = 0 // a key press
	EventRelease = 1
	EventResize  = 2
)

type Key uint16

// Keys that don't produce characters. Printable input arrives with
// Key == 0 and the character in Event.Ch.
const (
	KeyUnsupported Key = iota + 1
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyBackspace
	KeyEnter
	KeyEsc
	KeyTab
)

type Modifier uint8

const ModNone Modifier = 0

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
)

type Event struct {
	Type int
	Key  Key
	Ch   rune
	Mod  Modifier
}

// KeyNames maps readable names to events. Scripts use them to send keys.
var KeyNames = map[string]Event{
	"down":      {Key: KeyArrowDown},
	"left":      {Key: KeyArrowLeft},
	"right":     {Key: KeyArrowRight},
	"up":        {Key: KeyArrowUp},
	"backspace": {Key: KeyBackspace},
	"enter":     {Key: KeyEnter},
	"esc":       {Key: KeyEsc},
	"tab":       {Key: KeyTab},
	"space":     {Ch: ' '},
	"ctrl-u":    {Ch: 'u', Mod: ModCtrl},
}
