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

import "fmt"

// A Field identifies one of the three editable panels.
// The focused field receives character input and shows its cursor.
type Field int

const (
	FieldPattern Field = iota
	FieldText
	FieldMatches
)

// Next returns the field that follows f when focus is rotated.
func (f Field) Next() Field {
	switch f {
	case FieldPattern:
		return FieldText
	case FieldText:
		return FieldMatches
	default:
		return FieldPattern
	}
}

func (f Field) IsPattern() bool {
	return f == FieldPattern
}

func (f Field) IsText() bool {
	return f == FieldText
}

func (f Field) IsMatches() bool {
	return f == FieldMatches
}

// String returns the panel title of the field.
func (f Field) String() string {
	switch f {
	case FieldPattern:
		return "regex"
	case FieldText:
		return "text"
	case FieldMatches:
		return "matches"
	default:
		return "unknown"
	}
}

// ParseField converts a panel title back into a Field.
func ParseField(name string) (Field, error) {
	switch name {
	case "regex", "pattern":
		return FieldPattern, nil
	case "text":
		return FieldText, nil
	case "matches", "output":
		return FieldMatches, nil
	default:
		return FieldText, fmt.Errorf("unknown field %q", name)
	}
}
