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

import (
	"github.com/chewing-go/core/candidate"
	"github.com/chewing-go/core/phoneme"
	"github.com/chewing-go/core/preedit"
	"github.com/chewing-go/core/session"
)

// EventKind tags the variant an Event carries.
type EventKind int

const (
	EventBopomofo EventKind = iota
	EventArrow
	EventEnter
	EventEsc
	EventDel
	EventBackspace
	EventHome
	EventEnd
	EventSpace
	EventTab
	EventShiftTab
	EventPageUp
	EventPageDown
	EventShiftLeft
	EventShiftRight
	EventCtrlNum
	EventDefault
	EventCapslock
	EventShiftSpace
	EventNumpad
)

// ArrowDir distinguishes the two arrow-key events this engine cares
// about: horizontal cursor movement within the preedit buffer.
type ArrowDir int

const (
	ArrowLeft ArrowDir = iota
	ArrowRight
)

// Event is the tagged union of keyboard inputs HandleKey accepts.
// Only the fields relevant to Kind are meaningful; the constructors
// below are the intended way to build one.
type Event struct {
	Kind  EventKind
	Key   byte
	Arrow ArrowDir
	Digit int
}

func Bopomofo(key byte) Event  { return Event{Kind: EventBopomofo, Key: key} }
func Arrow(dir ArrowDir) Event { return Event{Kind: EventArrow, Arrow: dir} }
func Enter() Event             { return Event{Kind: EventEnter} }
func Esc() Event                { return Event{Kind: EventEsc} }
func Del() Event                { return Event{Kind: EventDel} }
func Backspace() Event          { return Event{Kind: EventBackspace} }
func Home() Event               { return Event{Kind: EventHome} }
func End() Event                { return Event{Kind: EventEnd} }
func Space() Event              { return Event{Kind: EventSpace} }
func Tab() Event                { return Event{Kind: EventTab} }
func ShiftTab() Event           { return Event{Kind: EventShiftTab} }
func PageUp() Event             { return Event{Kind: EventPageUp} }
func PageDown() Event           { return Event{Kind: EventPageDown} }
func ShiftLeft() Event          { return Event{Kind: EventShiftLeft} }
func ShiftRight() Event         { return Event{Kind: EventShiftRight} }
func CtrlNum(digit int) Event   { return Event{Kind: EventCtrlNum, Digit: digit} }
func Default(key byte) Event    { return Event{Kind: EventDefault, Key: key} }
func Capslock() Event           { return Event{Kind: EventCapslock} }
func ShiftSpace() Event         { return Event{Kind: EventShiftSpace} }
func Numpad(key byte) Event     { return Event{Kind: EventNumpad, Key: key} }

// Classification is what every event handler returns: whether the
// keystroke changed nothing, was absorbed into session state, emitted
// committed UTF-8 output, or should sound an error tone.
type Classification int

const (
	KeystrokeIgnored Classification = iota
	Absorbed
	Committed
	Bell
)

func (c Classification) String() string {
	switch c {
	case KeystrokeIgnored:
		return "ignored"
	case Absorbed:
		return "absorbed"
	case Committed:
		return "committed"
	case Bell:
		return "bell"
	default:
		return "unknown"
	}
}

// HandleKey dispatches event to the session's state machine and
// returns how it was classified. A panic surfacing from any
// collaborator is treated as an invariant violation: it is logged at
// ERROR and the session's input buffers (never the store) are reset.
func (s *Session) HandleKey(event Event) (result Classification) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Interface("panic", r).Err(ErrInvariantViolation).
				Msg("chewing: resetting session buffers after invariant violation")
			s.Reset()
			result = Bell
		}
	}()

	switch event.Kind {
	case EventBopomofo:
		return s.handleBopomofo(event.Key)
	case EventArrow:
		return s.handleArrow(event.Arrow)
	case EventEnter:
		return s.commitAll()
	case EventEsc:
		return s.handleEsc()
	case EventDel:
		return s.handleDel()
	case EventBackspace:
		return s.handleBackspace()
	case EventHome:
		return s.handleHome()
	case EventEnd:
		return s.handleEnd()
	case EventSpace:
		return s.handleSpace()
	case EventTab:
		return s.handleTab()
	case EventShiftTab:
		return s.handleShiftTab()
	case EventPageUp:
		return s.handlePageUp()
	case EventPageDown:
		return s.handlePageDown()
	case EventShiftLeft:
		return s.handleShiftLeft()
	case EventShiftRight:
		return s.handleShiftRight()
	case EventCtrlNum:
		return s.handleCtrlNum(event.Digit)
	case EventDefault:
		return s.handleDefault(event.Key)
	case EventCapslock:
		return s.handleCapslock()
	case EventShiftSpace:
		return s.handleShiftSpace()
	case EventNumpad:
		return s.handleNumpad(event.Key)
	default:
		return Bell
	}
}

func toneOf(c phoneme.Code) uint8 {
	_, _, _, tone := c.Unpack()
	return tone
}

// handleBopomofo ORs key's mapped field into the in-progress syllable
// accumulator(s); the syllable commits to the preedit buffer the
// instant a tone field arrives, mirroring how a Bopomofo keyboard
// layout always ends a syllable on its tone key.
func (s *Session) handleBopomofo(key byte) Classification {
	if s.layout == nil {
		return Bell
	}
	field, alt, ok := s.layout.Key(key)
	if !ok {
		return Bell
	}
	before := toneOf(s.syllable)
	s.syllable |= field
	if alt != 0 {
		s.syllableAlt |= alt
	} else {
		s.syllableAlt |= field
	}
	if toneOf(s.syllable) != 0 && before == 0 {
		return s.commitSyllable()
	}
	return Absorbed
}

// commitSyllable inserts the completed in-progress syllable into the
// preedit buffer and, if that pushes the CHINESE cell count past
// max_chi_symbol_len, releases exactly one head interval to the
// commit buffer per spec §8's boundary rule. A released CHINESE head
// interval goes through auto-learn first, as on Enter.
func (s *Session) commitSyllable() Classification {
	phone, alt := s.syllable, s.syllableAlt
	s.syllable, s.syllableAlt = 0, 0
	if !phone.IsComplete() {
		return Bell
	}
	if len(s.state.Phoneme) >= phoneme.MaxPhoneSeq {
		return Bell
	}
	if alt == phone {
		alt = 0
	}
	if err := s.state.AddChinese(phone, alt); err != nil {
		s.logger.Error().Err(err).Msg("chewing: adding syllable to preedit")
		return Bell
	}
	s.rebuild()

	if chineseCellCount(s.state) <= s.conf.MaxChiSymbolLen {
		return Absorbed
	}
	if s.state.Preedit[0].Kind == session.CellChinese && len(s.cover.Intervals) > 0 {
		full := s.cover
		s.cover.Intervals = full.Intervals[:1]
		s.learnFromCommit()
		s.cover = full
	}
	released, err := preedit.ReleaseHead(s.state, s.cover)
	if err != nil {
		s.logger.Error().Err(err).Msg("chewing: releasing preedit head at capacity")
		return Bell
	}
	s.commitBuf += released
	s.rebuild()
	return Committed
}

// commitAll implements Enter: the whole preedit buffer is realized to
// UTF-8, auto-learn runs over the accepted cover inside a single user
// store transaction, and the input buffers reset for the next phrase.
func (s *Session) commitAll() Classification {
	if s.syllable != 0 {
		return Bell
	}
	if s.candCtl.State() == candidate.SelectingWord {
		return Bell
	}
	if len(s.state.Preedit) == 0 {
		return Bell
	}
	text := committedText(s.preeditBuf)
	s.learnFromCommit()
	s.commitBuf += text
	lifetime := s.state.Lifetime + 1
	s.Reset()
	s.state.Lifetime = lifetime
	return Committed
}

func (s *Session) handleArrow(dir ArrowDir) Classification {
	switch dir {
	case ArrowLeft:
		if s.state.CursorCells == 0 {
			return KeystrokeIgnored
		}
		s.state.CursorCells--
	case ArrowRight:
		if s.state.CursorCells >= len(s.state.Preedit) {
			return KeystrokeIgnored
		}
		s.state.CursorCells++
	}
	return Absorbed
}

// handleEsc clears, in priority order: an open candidate/symbol
// picker, an in-progress syllable, or (only if esc_clean_all_buf is
// set) the whole preedit buffer.
func (s *Session) handleEsc() Classification {
	switch {
	case s.candCtl.State() != candidate.Idle && s.candCtl.State() != candidate.Closed:
		s.candCtl.Escape()
		return Absorbed
	case s.syllable != 0:
		s.syllable, s.syllableAlt = 0, 0
		return Absorbed
	case s.conf.EscCleanAllBuf && len(s.state.Preedit) > 0:
		s.Reset()
		return Absorbed
	default:
		return KeystrokeIgnored
	}
}

func (s *Session) handleDel() Classification {
	if s.syllable != 0 {
		s.syllable, s.syllableAlt = 0, 0
		return Absorbed
	}
	cur := s.state.CursorCells
	if cur >= len(s.state.Preedit) {
		return Bell
	}
	if err := s.state.DeleteCell(cur); err != nil {
		return Bell
	}
	s.rebuild()
	return Absorbed
}

func (s *Session) handleBackspace() Classification {
	if s.syllable != 0 {
		s.syllable, s.syllableAlt = 0, 0
		return Absorbed
	}
	cur := s.state.CursorCells
	if cur == 0 {
		return Bell
	}
	if err := s.state.DeleteCell(cur - 1); err != nil {
		return Bell
	}
	s.rebuild()
	return Absorbed
}

func (s *Session) handleHome() Classification {
	if s.state.CursorCells == 0 {
		return KeystrokeIgnored
	}
	s.state.CursorCells = 0
	return Absorbed
}

func (s *Session) handleEnd() Classification {
	if s.state.CursorCells == len(s.state.Preedit) {
		return KeystrokeIgnored
	}
	s.state.CursorCells = len(s.state.Preedit)
	return Absorbed
}

// handleSpace is the most overloaded key: a tone key mid-syllable, a
// page-advance inside an open candidate picker, the candidate-picker
// open key when space_as_selection is set, or a literal space symbol
// otherwise.
func (s *Session) handleSpace() Classification {
	if s.syllable != 0 && s.layout != nil {
		if _, _, ok := s.layout.Key(' '); ok {
			return s.handleBopomofo(' ')
		}
	}
	switch {
	case s.candCtl.State() == candidate.SelectingWord:
		s.candCtl.NextPage()
		return Absorbed
	case s.conf.SpaceAsSelection && len(s.state.Phoneme) > 0:
		if err := s.candCtl.Open(s.state, s.dict, s.store); err != nil {
			return Bell
		}
		return Absorbed
	default:
		glyph := " "
		if s.conf.ShapeMode {
			glyph = "　"
		}
		s.state.AddSymbol(glyph, ' ')
		s.rebuild()
		return Absorbed
	}
}

// handleTab toggles a break point at the phoneme cursor; handleShiftTab
// toggles a connect marker there. Both force a cover rebuild since
// either can change the admissible interval set.
func (s *Session) handleTab() Classification {
	pos := s.state.PhonemeCursor()
	if err := s.state.SetBreak(pos); err != nil {
		return Bell
	}
	s.rebuild()
	return Absorbed
}

func (s *Session) handleShiftTab() Classification {
	pos := s.state.PhonemeCursor()
	if err := s.state.SetConnect(pos); err != nil {
		return Bell
	}
	s.rebuild()
	return Absorbed
}

func (s *Session) handlePageUp() Classification {
	if s.candCtl.State() != candidate.SelectingWord {
		return Bell
	}
	s.candCtl.PrevPage()
	return Absorbed
}

func (s *Session) handlePageDown() Classification {
	if s.candCtl.State() != candidate.SelectingWord {
		return Bell
	}
	s.candCtl.NextPage()
	return Absorbed
}

func (s *Session) handleShiftLeft() Classification {
	if s.candCtl.State() != candidate.SelectingWord {
		return Bell
	}
	if err := s.candCtl.PrevLength(s.state, s.dict, s.store); err != nil {
		return Bell
	}
	return Absorbed
}

func (s *Session) handleShiftRight() Classification {
	if s.candCtl.State() != candidate.SelectingWord {
		return Bell
	}
	if err := s.candCtl.NextLength(s.state, s.dict, s.store); err != nil {
		return Bell
	}
	return Absorbed
}

// handleCtrlNum chooses the digit-th candidate (1-based, per sel_keys
// position) on the current page.
func (s *Session) handleCtrlNum(digit int) Classification {
	if s.candCtl.State() != candidate.SelectingWord {
		return Bell
	}
	if err := s.candCtl.Choose(s.state, digit-1); err != nil {
		return Bell
	}
	s.rebuild()
	return Absorbed
}

// handleDefault inserts key verbatim as a one-byte symbol cell,
// bypassing phoneme composition entirely (chi_eng_mode off, or a
// punctuation key with no Bopomofo binding).
func (s *Session) handleDefault(key byte) Classification {
	if s.syllable != 0 {
		return Bell
	}
	s.state.AddSymbol(string(key), key)
	s.rebuild()
	return Absorbed
}

var fullwidthDigits = [10]string{"０", "１", "２", "３", "４", "５", "６", "７", "８", "９"}

func (s *Session) handleNumpad(key byte) Classification {
	if key < '0' || key > '9' {
		return Bell
	}
	glyph := string(key)
	if s.conf.ShapeMode {
		glyph = fullwidthDigits[key-'0']
	}
	s.state.AddSymbol(glyph, key)
	s.rebuild()
	return Absorbed
}

func (s *Session) handleCapslock() Classification {
	s.conf.ChiEngMode = !s.conf.ChiEngMode
	return Absorbed
}

func (s *Session) handleShiftSpace() Classification {
	if !s.conf.EnableFullwidthToggleKey {
		return KeystrokeIgnored
	}
	s.conf.ShapeMode = !s.conf.ShapeMode
	return Absorbed
}
