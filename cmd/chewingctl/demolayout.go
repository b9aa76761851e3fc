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

package main

import "github.com/chewing-go/core/phoneme"

// demoLayout is a small, fixed subset of keys used to drive replay
// scripts from the command line. It is not a keyboard layout table in
// the engine's sense — those remain an external collaborator per
// phoneme.LayoutMapper, out of this module's scope — just enough
// single-key-to-single-field bindings to exercise HandleKey end to end
// without shipping a real standard-keyboard table alongside a CLI demo
// tool.
type demoLayout struct{}

var demoInitials = map[byte]uint8{
	'b': 1, 'p': 2, 'm': 3, 'f': 4,
	'd': 5, 't': 6, 'n': 7, 'l': 8,
	'g': 9, 'k': 10, 'h': 11,
	'j': 12, 'q': 13, 'x': 14,
	'z': 15, 'c': 16, 's': 17,
	'r': 18,
}

var demoMedials = map[byte]uint8{
	'i': 1, 'u': 2, 'v': 3,
}

var demoFinals = map[byte]uint8{
	'a': 1, 'o': 2, 'e': 3, 'y': 4,
	'w': 5, 'k': 6, 'g': 7, 'n': 8,
}

var demoTones = map[byte]uint8{
	'1': 1, '2': 2, '3': 3, '4': 4, '5': 5,
}

// Key answers the field a keystroke contributes to an in-progress
// syllable. 'k', 'g' and 'n' are shared between demoInitials and demoFinals
// above; finals win when both claim a key so a script can still spell
// single-final syllables, a limitation acceptable in a demo-only table.
func (demoLayout) Key(key byte) (field, alt phoneme.Code, ok bool) {
	if final, found := demoFinals[key]; found {
		return phoneme.Pack(0, 0, final, 0), 0, true
	}
	if initial, found := demoInitials[key]; found {
		return phoneme.Pack(initial, 0, 0, 0), 0, true
	}
	if medial, found := demoMedials[key]; found {
		return phoneme.Pack(0, medial, 0, 0), 0, true
	}
	if tone, found := demoTones[key]; found {
		return phoneme.Pack(0, 0, 0, tone), 0, true
	}
	return 0, 0, false
}
