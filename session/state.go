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

// Package session holds the mutable buffers a live input session keeps
// between keystrokes: the in-progress phoneme sequence, the mixed
// Chinese/symbol preedit, break/connect markers, and the user's prior
// candidate selections.
package session

import "github.com/chewing-go/core/phoneme"

// CellKind distinguishes a preedit cell that corresponds to one
// phoneme from one that holds a picked symbol.
type CellKind int

const (
	CellChinese CellKind = iota
	CellSymbol
)

// PreeditCell is one displayed glyph slot.
type PreeditCell struct {
	Kind CellKind
	// Glyph is the UTF-8 rendering shown to the user.
	Glyph string
	// SymbolKey is the ASCII key that opened the symbol picker which
	// produced this cell, used to reopen the picker at this position.
	// Zero for CHINESE cells.
	SymbolKey byte
}

// Selection records that the user has fixed phoneme positions
// [From,To) to Phrase by choosing a candidate.
type Selection struct {
	From, To int
	Phrase   string
}

// overlaps reports whether s overlaps the half-open range [from,to).
func (s Selection) overlaps(from, to int) bool {
	return s.From < to && from < s.To
}

// containedIn reports whether s is fully inside [from,to).
func (s Selection) containedIn(from, to int) bool {
	return from <= s.From && s.To <= to
}

// State is the full mutable buffer set of one session. Build one with
// New: the zero value lacks the position-0 Break and Connect slots, so
// it does not keep those slices one longer than Phoneme.
type State struct {
	Phoneme    phoneme.Seq
	PhonemeAlt phoneme.Seq

	Preedit     []PreeditCell
	CursorCells int

	Selections []Selection

	// Break and Connect are indexed by phoneme boundary position,
	// 0..len(Phoneme), inclusive — one longer than Phoneme itself.
	Break   []bool
	Connect []bool

	InSelection bool
	ChiEngMode  bool
	ShapeMode   bool

	// Lifetime is the opaque counter incremented on every commit; it
	// is stamped onto user-phrase entries as their last_used time.
	Lifetime int
}

// New returns an empty, ready-to-use session state.
func New() *State {
	return &State{
		Break:   []bool{false},
		Connect: []bool{false},
	}
}

// PhonemeCursor derives the phoneme-sequence index the cell cursor
// currently points at: the cell cursor minus every SYMBOL cell before it.
func (s *State) PhonemeCursor() int {
	count := 0
	for i := 0; i < s.CursorCells && i < len(s.Preedit); i++ {
		if s.Preedit[i].Kind == CellSymbol {
			count++
		}
	}
	return s.CursorCells - count
}

// chineseCellIndexForPhoneme returns the preedit-cell index of the
// n-th CHINESE cell, or -1 if there aren't that many.
func (s *State) chineseCellIndexForPhoneme(n int) int {
	seen := 0
	for i, c := range s.Preedit {
		if c.Kind == CellChinese {
			if seen == n {
				return i
			}
			seen++
		}
	}
	return -1
}
