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

// Package editor implements the editing and evaluation state of rett.
// An editor owns three buffers: a single-line pattern, the sample text,
// and the matches report. Edits are made to the focused buffer by the
// commander; after edits to the pattern or the text, the editor
// evaluates the pattern against the text and rewrites the matches buffer.
package editor
