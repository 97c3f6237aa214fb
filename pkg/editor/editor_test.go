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
	"strings"
	"testing"

	rett "github.com/timburks/rett/pkg/types"
)

// typePattern types s into the pattern field the way a user would.
func typePattern(e *Editor, s string) {
	e.SetFocus(rett.FieldPattern)
	for _, c := range s {
		e.GetActiveBuffer().InsertChar(c)
		e.Evaluate()
	}
}

func TestNewEditor(t *testing.T) {
	e := NewEditor()
	if !e.IsRunning() {
		t.Errorf("New editor is not running")
	}
	if e.GetFocus() != rett.FieldText {
		t.Errorf("Unexpected initial focus: %s", e.GetFocus())
	}
	if !e.GetPatternBuffer().IsSingleLine() || e.GetTextBuffer().IsSingleLine() {
		t.Errorf("Only the pattern buffer should be single-line")
	}
	e.Quit()
	if e.IsRunning() {
		t.Errorf("Editor still running after quit")
	}
}

func TestFocusNextMovesCursorToEndOfLine(t *testing.T) {
	e := NewEditor()
	e.GetMatchesBuffer().SetLines([]string{"abc"})
	e.FocusNext()
	if e.GetFocus() != rett.FieldMatches {
		t.Errorf("Unexpected focus: %s", e.GetFocus())
	}
	checkCursor(t, e.GetMatchesBuffer(), 3, 0)
	e.FocusNext()
	e.FocusNext()
	if e.GetFocus() != rett.FieldText {
		t.Errorf("Focus did not return to text: %s", e.GetFocus())
	}
}

func TestNamedGroups(t *testing.T) {
	e := NewEditor()
	e.SetText("2024-01")
	typePattern(e, `(?P<y>\d+)-(?P<m>\d+)`)
	checkLines(t, e.GetMatchesBuffer(), "0.", "  0: 2024-01", "  y: 2024", "  m: 01")
}

func TestNumberedGroupsAcrossLines(t *testing.T) {
	e := NewEditor()
	e.SetText("a1\nb2")
	e.SetPattern(`([a-z])(\d)`)
	checkLines(t, e.GetMatchesBuffer(),
		"0.", "  0: a1", "  1: a", "  2: 1",
		"1.", "  0: b2", "  1: b", "  2: 2")
}

func TestMatchSpanningNewline(t *testing.T) {
	e := NewEditor()
	e.SetText("ab\ncd")
	e.SetPattern(`b\nc`)
	checkLines(t, e.GetMatchesBuffer(), "0.", "  0: b", "c")
}

func TestUnmatchedGroupsAreSkipped(t *testing.T) {
	e := NewEditor()
	e.SetText("b")
	e.SetPattern(`(a)|(b)`)
	checkLines(t, e.GetMatchesBuffer(), "0.", "  0: b", "  2: b")
}

func TestNoMatchesLeavesOneEmptyLine(t *testing.T) {
	e := NewEditor()
	e.SetText("xyz")
	e.SetPattern("q")
	checkLines(t, e.GetMatchesBuffer(), "")
	if e.GetCompiledPattern() == nil {
		t.Errorf("Valid pattern was not compiled")
	}
}

func TestEmptyPatternClearsMatches(t *testing.T) {
	e := NewEditor()
	e.SetText("aaa")
	typePattern(e, "a")
	if len(e.GetMatchesBuffer().Lines()) == 1 {
		t.Errorf("Expected matches for pattern a")
	}
	e.GetPatternBuffer().Backspace()
	e.Evaluate()
	checkLines(t, e.GetMatchesBuffer(), "")
	if e.GetCompiledPattern() != nil {
		t.Errorf("Empty pattern left a compiled pattern")
	}
}

func TestInvalidPatternKeepsCompiledPattern(t *testing.T) {
	e := NewEditor()
	e.SetText("caab")
	typePattern(e, "a+")
	valid := e.GetMatchesBuffer().Lines()
	checkLines(t, e.GetMatchesBuffer(), "0.", "  0: aa")
	compiled := e.GetCompiledPattern()

	typePattern(e, "(")
	lines := e.GetMatchesBuffer().Lines()
	_, err := regexp.Compile("a+(")
	if len(lines) != 1 || lines[0] != err.Error() {
		t.Errorf("Unexpected matches for invalid pattern: %q", lines)
	}
	if e.GetCompiledPattern() != compiled {
		t.Errorf("Invalid pattern replaced the compiled pattern")
	}

	e.GetPatternBuffer().Backspace()
	e.Evaluate()
	checkLines(t, e.GetMatchesBuffer(), valid...)
}

func TestTextEditsUseLastCompiledPattern(t *testing.T) {
	e := NewEditor()
	typePattern(e, "b+")
	typePattern(e, "[")
	e.SetFocus(rett.FieldText)
	for _, c := range "abb" {
		e.GetActiveBuffer().InsertChar(c)
		e.Evaluate()
	}
	checkLines(t, e.GetMatchesBuffer(), "0.", "  0: bb")
}

func TestEvaluateIsIdempotent(t *testing.T) {
	e := NewEditor()
	e.SetText("one 1\ntwo 22\n")
	typePattern(e, `(?P<word>\w+) (\d+)`)
	first := strings.Join(e.GetMatchesBuffer().Lines(), "\n")
	e.Evaluate()
	second := strings.Join(e.GetMatchesBuffer().Lines(), "\n")
	if first != second {
		t.Errorf("Evaluation is not idempotent:\n%s\n---\n%s", first, second)
	}
}

func TestMatchesEditsAreOverwritten(t *testing.T) {
	e := NewEditor()
	e.SetText("x")
	e.SetPattern("x")
	e.SetFocus(rett.FieldMatches)
	e.GetActiveBuffer().InsertChar('!')
	e.Evaluate()
	checkLines(t, e.GetMatchesBuffer(), "0.", "  0: x")
}

func TestFormatMatches(t *testing.T) {
	re := regexp.MustCompile(`(?P<key>\w+)=(\w*)`)
	lines := FormatMatches(re, "a=1 b=")
	expected := []string{"0.", "  0: a=1", "  key: a", "  2: 1", "1.", "  0: b=", "  key: b", "  2: "}
	if strings.Join(lines, "|") != strings.Join(expected, "|") {
		t.Errorf("Unexpected report: %q", lines)
	}
}
