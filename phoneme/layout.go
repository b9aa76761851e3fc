// Copyright 2026 The Chewing-Go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package phoneme

// LayoutMapper translates one ASCII keystroke under a given keyboard
// layout into the phoneme field it contributes to the in-progress
// syllable (and, for layouts like Hsu that admit ambiguous mappings,
// an alternate field). The mapping tables themselves are keyboard
// layout/symbol data, out of this module's scope — only this seam
// lives here, so the engine core never needs to know which layout is
// active beyond dispatching through it.
type LayoutMapper interface {
	// Key reports the (field, alt, ok) triple for one keystroke: field
	// is ORed into the in-progress syllable code, alt is a second
	// candidate field for ambiguous layouts (0 if the mapping is
	// unambiguous), ok is false if the layout does not bind key at all.
	Key(key byte) (field, alt Code, ok bool)
}
