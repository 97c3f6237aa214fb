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
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
)

// Evaluate recomputes the matches buffer. The pattern is recompiled only
// when the pattern field has focus; edits to other fields rerun the last
// successfully compiled pattern.
func (e *Editor) Evaluate() {
	if e.focus.IsPattern() {
		if !e.compilePattern() {
			return
		}
	}
	e.evaluateMatches()
}

// compilePattern compiles the pattern buffer and reports whether matching
// should continue. An invalid pattern shows the compiler error in the
// matches buffer and leaves the previously compiled pattern in place.
func (e *Editor) compilePattern() bool {
	source := e.pattern.String()
	if source == "" {
		e.compiled = nil
		e.matches.SetLines(nil)
		return true
	}
	re, err := regexp.Compile(source)
	if err != nil {
		log.Printf("compile %q: %v", source, err)
		e.matches.SetLines([]string{err.Error()})
		return false
	}
	e.compiled = re
	return true
}

func (e *Editor) evaluateMatches() {
	if e.compiled == nil {
		return
	}
	// captured text may contain newlines, so the report is split into rows again
	e.matches.SetText(strings.Join(FormatMatches(e.compiled, e.text.String()), "\n"))
}

// FormatMatches lists every match of re in text. Each match gets a numbered
// header followed by one indented line per capture group, starting with
// the whole match as group 0. Named groups are labeled by name.
// Groups that did not take part in a match are left out.
func FormatMatches(re *regexp.Regexp, text string) []string {
	lines := make([]string, 0)
	names := re.SubexpNames()
	for i, match := range re.FindAllStringSubmatchIndex(text, -1) {
		lines = append(lines, fmt.Sprintf("%d.", i))
		for g := 0; g < len(names); g++ {
			start, end := match[2*g], match[2*g+1]
			if start < 0 {
				continue
			}
			label := names[g]
			if label == "" {
				label = strconv.Itoa(g)
			}
			lines = append(lines, fmt.Sprintf("  %s: %s", label, text[start:end]))
		}
	}
	return lines
}
