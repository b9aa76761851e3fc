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

package chewing

import "fmt"

// KeyboardLayout is the closed set of keyboard layouts a session may
// be told it is receiving keystrokes under. The ordinals are stable
// and match the order layout tables are enumerated in upstream
// libchewing; this package only carries the enum, the mapping tables
// themselves are an external phoneme.LayoutMapper collaborator.
type KeyboardLayout int

const (
	Default KeyboardLayout = iota
	Hsu
	IBM
	GinYieh
	ET
	ET26
	Dvorak
	DvorakHsu
	DachenCP26
	HanyuPinyin
	THLPinyin
	MPS2Pinyin
	Carpalx
	ColemakDHAnsi
	ColemakDHOrth
	Workman
	Colemak
)

func (k KeyboardLayout) valid() bool {
	return k >= Default && k <= Colemak
}

// Config is the full tunable surface of spec §6, validated as a unit
// on every setter: an invalid call leaves the previous value in place
// and returns ErrInvalidInput.
type Config struct {
	KbType                   KeyboardLayout
	CandPerPage              int
	MaxChiSymbolLen          int
	SelKeys                  []byte
	AddPhraseForward         bool
	SpaceAsSelection         bool
	EscCleanAllBuf           bool
	AutoShiftCur             bool
	EasySymbolInput          bool
	PhraseChoiceRearward     bool
	AutoLearn                bool
	ChiEngMode               bool
	ShapeMode                bool
	EnableFullwidthToggleKey bool
}

func defaultConfig() Config {
	return Config{
		KbType:          Default,
		CandPerPage:     10,
		MaxChiSymbolLen: 16,
		SelKeys:         []byte("1234567890"),
		AutoLearn:       true,
		ChiEngMode:      true,
	}
}

// SetKbType validates and applies a new keyboard layout.
func (s *Session) SetKbType(kb KeyboardLayout) error {
	if !kb.valid() {
		return fmt.Errorf("kb_type %d: %w", kb, ErrInvalidInput)
	}
	s.conf.KbType = kb
	return nil
}

// KbType returns the current keyboard layout.
func (s *Session) KbType() KeyboardLayout { return s.conf.KbType }

// SetCandPerPage validates and applies a new candidates-per-page count.
func (s *Session) SetCandPerPage(n int) error {
	if n < 1 || n > 10 {
		return fmt.Errorf("cand_per_page %d out of [1,10]: %w", n, ErrInvalidInput)
	}
	s.conf.CandPerPage = n
	s.candCtl.SetPerPage(n)
	return nil
}

// CandPerPage returns the current candidates-per-page count.
func (s *Session) CandPerPage() int { return s.conf.CandPerPage }

// SetMaxChiSymbolLen validates and applies a new preedit capacity.
func (s *Session) SetMaxChiSymbolLen(n int) error {
	if n < 1 || n > maxChiSymbolLenCeiling {
		return fmt.Errorf("max_chi_symbol_len %d out of [1,%d]: %w", n, maxChiSymbolLenCeiling, ErrInvalidInput)
	}
	s.conf.MaxChiSymbolLen = n
	return nil
}

// MaxChiSymbolLen returns the current preedit capacity.
func (s *Session) MaxChiSymbolLen() int { return s.conf.MaxChiSymbolLen }

// maxChiSymbolLenCeiling bounds max_chi_symbol_len at the same value
// as phoneme.MaxPhoneSeq, the bound on the phoneme sequence itself.
const maxChiSymbolLenCeiling = 50

// SetSelKeys validates and applies a new selection-key array: up to
// 10 distinct ASCII codes.
func (s *Session) SetSelKeys(keys []byte) error {
	if len(keys) == 0 || len(keys) > 10 {
		return fmt.Errorf("sel_keys length %d out of [1,10]: %w", len(keys), ErrInvalidInput)
	}
	seen := make(map[byte]struct{}, len(keys))
	for _, k := range keys {
		if k == 0 {
			return fmt.Errorf("sel_keys contains a zero byte: %w", ErrInvalidInput)
		}
		if _, dup := seen[k]; dup {
			return fmt.Errorf("sel_keys contains a duplicate %q: %w", k, ErrInvalidInput)
		}
		seen[k] = struct{}{}
	}
	s.conf.SelKeys = append([]byte(nil), keys...)
	return nil
}

// SelKeys returns a copy of the current selection-key array.
func (s *Session) SelKeys() []byte { return append([]byte(nil), s.conf.SelKeys...) }

// SetAddPhraseDirection stores the add-phrase direction setting,
// forward (true) or reversed (false). Session has no add-phrase
// operation, so nothing in this package reads the value.
func (s *Session) SetAddPhraseDirection(forward bool) { s.conf.AddPhraseForward = forward }

// AddPhraseDirection reports the current add-phrase direction.
func (s *Session) AddPhraseDirection() bool { return s.conf.AddPhraseForward }

// SetSpaceAsSelection toggles whether Space opens the candidate picker.
func (s *Session) SetSpaceAsSelection(v bool) { s.conf.SpaceAsSelection = v }

// SpaceAsSelection reports the current setting.
func (s *Session) SpaceAsSelection() bool { return s.conf.SpaceAsSelection }

// SetEscCleanAllBuf toggles whether Esc clears the whole preedit
// buffer rather than just the in-progress bopomofo syllable.
func (s *Session) SetEscCleanAllBuf(v bool) { s.conf.EscCleanAllBuf = v }

// EscCleanAllBuf reports the current setting.
func (s *Session) EscCleanAllBuf() bool { return s.conf.EscCleanAllBuf }

// SetAutoShiftCur stores the auto_shift_cur setting (cursor advancing
// past a freshly chosen selection). No event handler reads it; the
// cursor does not move when a candidate is chosen.
func (s *Session) SetAutoShiftCur(v bool) { s.conf.AutoShiftCur = v }

// AutoShiftCur reports the current setting.
func (s *Session) AutoShiftCur() bool { return s.conf.AutoShiftCur }

// SetEasySymbolInput stores the easy_symbol_input setting. No event
// handler reads it; there is no single-keystroke easy-symbol table.
func (s *Session) SetEasySymbolInput(v bool) { s.conf.EasySymbolInput = v }

// EasySymbolInput reports the current setting.
func (s *Session) EasySymbolInput() bool { return s.conf.EasySymbolInput }

// SetPhraseChoiceRearward toggles the avail-length ordering direction.
func (s *Session) SetPhraseChoiceRearward(v bool) {
	s.conf.PhraseChoiceRearward = v
	s.candCtl.SetRearward(v)
}

// PhraseChoiceRearward reports the current setting.
func (s *Session) PhraseChoiceRearward() bool { return s.conf.PhraseChoiceRearward }

// SetAutoLearn toggles whether a commit updates the user phrase store.
func (s *Session) SetAutoLearn(v bool) { s.conf.AutoLearn = v }

// AutoLearn reports the current setting.
func (s *Session) AutoLearn() bool { return s.conf.AutoLearn }

// SetChiEngMode stores the Chinese/English mode flag (Capslock also
// flips it). No event handler reads it: Bopomofo keys are mapped the
// same way in either mode.
func (s *Session) SetChiEngMode(v bool) { s.conf.ChiEngMode = v }

// ChiEngMode reports the current setting.
func (s *Session) ChiEngMode() bool { return s.conf.ChiEngMode }

// SetShapeMode toggles full-width/half-width shape mode.
func (s *Session) SetShapeMode(v bool) { s.conf.ShapeMode = v }

// ShapeMode reports the current setting.
func (s *Session) ShapeMode() bool { return s.conf.ShapeMode }

// SetEnableFullwidthToggleKey toggles whether Shift-Space switches
// shape mode.
func (s *Session) SetEnableFullwidthToggleKey(v bool) { s.conf.EnableFullwidthToggleKey = v }

// EnableFullwidthToggleKey reports the current setting.
func (s *Session) EnableFullwidthToggleKey() bool { return s.conf.EnableFullwidthToggleKey }
