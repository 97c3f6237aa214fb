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
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/steelseries/golisp"

	rett "github.com/timburks/rett/pkg/types"
)

// bindPrimitives makes the commander's editor scriptable.
// Primitives are global in golisp, so the most recently created
// commander receives script calls.
func (c *Commander) bindPrimitives() {
	golisp.MakePrimitiveFunction("set-pattern", "1", c.setPatternImpl)
	golisp.MakePrimitiveFunction("set-text", "1", c.setTextImpl)
	golisp.MakePrimitiveFunction("type", "1", c.typeImpl)
	golisp.MakePrimitiveFunction("key", "1", c.keyImpl)
	golisp.MakePrimitiveFunction("focus", "0", c.focusImpl)
	golisp.MakePrimitiveFunction("pattern", "0", c.patternImpl)
	golisp.MakePrimitiveFunction("text", "0", c.textImpl)
	golisp.MakePrimitiveFunction("matches", "0", c.matchesImpl)
}

func stringArgument(name string, args *golisp.Data) (string, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return "", fmt.Errorf("%s requires a string argument", name)
	}
	return golisp.StringValue(val), nil
}

func (c *Commander) setPatternImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	s, err := stringArgument("set-pattern", args)
	if err != nil {
		return nil, err
	}
	c.editor.SetPattern(s)
	return golisp.StringWithValue(c.editor.GetMatchesBuffer().String()), nil
}

func (c *Commander) setTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	s, err := stringArgument("set-text", args)
	if err != nil {
		return nil, err
	}
	c.editor.SetText(s)
	return golisp.StringWithValue(c.editor.GetMatchesBuffer().String()), nil
}

// (type "abc") sends each character as a key press.
func (c *Commander) typeImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	s, err := stringArgument("type", args)
	if err != nil {
		return nil, err
	}
	for _, ch := range s {
		var event rett.Event
		if ch == '\n' {
			event = rett.Event{Type: rett.EventKey, Key: rett.KeyEnter}
		} else {
			event = rett.Event{Type: rett.EventKey, Ch: ch}
		}
		if err := c.ProcessEvent(&event); err != nil {
			return nil, err
		}
	}
	return golisp.StringWithValue(c.editor.GetMatchesBuffer().String()), nil
}

// (key "tab") sends a named key press.
func (c *Commander) keyImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	name, err := stringArgument("key", args)
	if err != nil {
		return nil, err
	}
	event, ok := rett.KeyNames[name]
	if !ok {
		return nil, fmt.Errorf("unknown key %q", name)
	}
	event.Type = rett.EventKey
	if err := c.ProcessEvent(&event); err != nil {
		return nil, err
	}
	return golisp.StringWithValue(c.editor.GetFocus().String()), nil
}

func (c *Commander) focusImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.StringWithValue(c.editor.GetFocus().String()), nil
}

func (c *Commander) patternImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.StringWithValue(c.editor.GetPatternBuffer().String()), nil
}

func (c *Commander) textImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.StringWithValue(c.editor.GetTextBuffer().String()), nil
}

func (c *Commander) matchesImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.StringWithValue(c.editor.GetMatchesBuffer().String()), nil
}

// ParseEval evaluates a lisp expression and returns its printed value,
// or the error message if evaluation failed.
func (c *Commander) ParseEval(command string) string {
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		log.Printf("ERR %+v", err)
		return err.Error()
	}
	if golisp.StringP(value) {
		return golisp.StringValue(value)
	}
	return golisp.String(value)
}

// ParseEvalFile evaluates every expression in a script file and
// returns the value of the last one.
func (c *Commander) ParseEvalFile(filename string) (string, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	source := strings.TrimSpace(string(b))
	if source == "" {
		return "", errors.New("empty script " + filename)
	}
	value, err := golisp.ParseAndEval("(begin " + source + "\n)")
	if err != nil {
		return "", fmt.Errorf("%s: %w", filename, err)
	}
	if golisp.StringP(value) {
		return golisp.StringValue(value), nil
	}
	return golisp.String(value), nil
}
