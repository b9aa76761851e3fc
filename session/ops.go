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

package session

import (
	"fmt"

	"github.com/chewing-go/core/phoneme"
)

// insertBool splices v into bools at index i.
func insertBool(bools []bool, i int, v bool) []bool {
	bools = append(bools, false)
	copy(bools[i+1:], bools[i:])
	bools[i] = v
	return bools
}

// removeAt splices out the element at index i.
func removeAt(bools []bool, i int) []bool {
	return append(bools[:i], bools[i+1:]...)
}

// AddChinese inserts phone (and its alternate mapping, if any) into
// the phoneme sequence at the current cursor, and a matching CHINESE
// cell into the preedit buffer. Selections at or after the cursor
// shift right to stay attached to their original phonemes.
func (s *State) AddChinese(phone, alt phoneme.Code) error {
	if len(s.Phoneme) >= phoneme.MaxPhoneSeq {
		return fmt.Errorf("session: phoneme sequence is full (max %d)", phoneme.MaxPhoneSeq)
	}
	pc := s.PhonemeCursor()

	s.Phoneme = append(s.Phoneme, 0)
	copy(s.Phoneme[pc+1:], s.Phoneme[pc:])
	s.Phoneme[pc] = phone

	s.PhonemeAlt = append(s.PhonemeAlt, 0)
	copy(s.PhonemeAlt[pc+1:], s.PhonemeAlt[pc:])
	s.PhonemeAlt[pc] = alt

	s.Preedit = append(s.Preedit, PreeditCell{})
	copy(s.Preedit[s.CursorCells+1:], s.Preedit[s.CursorCells:])
	s.Preedit[s.CursorCells] = PreeditCell{Kind: CellChinese}

	s.Break = insertBool(s.Break, pc, false)
	s.Connect = insertBool(s.Connect, pc, false)
	s.Connect[pc] = false

	for i := range s.Selections {
		if s.Selections[i].From >= pc {
			s.Selections[i].From++
			s.Selections[i].To++
		}
	}

	s.CursorCells++
	return nil
}

// AddSymbol inserts a SYMBOL cell at the cursor, remembering key for a
// later symbol-picker reopen at this position.
func (s *State) AddSymbol(glyph string, key byte) {
	s.Preedit = append(s.Preedit, PreeditCell{})
	copy(s.Preedit[s.CursorCells+1:], s.Preedit[s.CursorCells:])
	s.Preedit[s.CursorCells] = PreeditCell{Kind: CellSymbol, Glyph: glyph, SymbolKey: key}
	s.CursorCells++
}

// DeleteCell removes the preedit cell at index i. If it is a CHINESE
// cell, the corresponding phoneme is removed too, and every selection
// overlapping that phoneme position is dropped while selections
// strictly to its right shift left by one.
func (s *State) DeleteCell(i int) error {
	if i < 0 || i >= len(s.Preedit) {
		return fmt.Errorf("session: cell index %d out of range", i)
	}
	cell := s.Preedit[i]
	if cell.Kind == CellChinese {
		pi := 0
		for j := 0; j < i; j++ {
			if s.Preedit[j].Kind == CellChinese {
				pi++
			}
		}
		s.Phoneme = append(s.Phoneme[:pi], s.Phoneme[pi+1:]...)
		s.PhonemeAlt = append(s.PhonemeAlt[:pi], s.PhonemeAlt[pi+1:]...)
		s.Break = removeAt(s.Break, pi)
		s.Connect = removeAt(s.Connect, pi)

		kept := s.Selections[:0]
		for _, sel := range s.Selections {
			switch {
			case sel.overlaps(pi, pi+1):
				// dropped
			case sel.From > pi:
				sel.From--
				sel.To--
				kept = append(kept, sel)
			default:
				kept = append(kept, sel)
			}
		}
		s.Selections = kept
	}
	s.Preedit = append(s.Preedit[:i], s.Preedit[i+1:]...)
	if i < s.CursorCells {
		s.CursorCells--
	}
	return nil
}

// SetBreak toggles the break flag at phoneme-boundary position pos.
// If the flag ends up set, every selection crossing pos (without pos
// being one of its endpoints) is dropped.
func (s *State) SetBreak(pos int) error {
	if pos < 0 || pos >= len(s.Break) {
		return fmt.Errorf("session: break position %d out of range", pos)
	}
	s.Break[pos] = !s.Break[pos]
	if s.Break[pos] {
		s.dropSelectionsCrossing(pos)
	}
	return nil
}

// SetConnect toggles the connect flag at phoneme-boundary position pos.
func (s *State) SetConnect(pos int) error {
	if pos < 0 || pos >= len(s.Connect) {
		return fmt.Errorf("session: connect position %d out of range", pos)
	}
	s.Connect[pos] = !s.Connect[pos]
	return nil
}

func (s *State) dropSelectionsCrossing(pos int) {
	kept := s.Selections[:0]
	for _, sel := range s.Selections {
		if sel.From < pos && pos < sel.To {
			continue
		}
		kept = append(kept, sel)
	}
	s.Selections = kept
}
