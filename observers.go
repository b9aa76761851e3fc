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
	"github.com/chewing-go/core/dict"
	"github.com/chewing-go/core/graph"
	"github.com/chewing-go/core/session"
)

// CommitBuffer returns the accumulated committed UTF-8 text and clears
// it — the owning flavor of the commit observer. Use PeekCommitBuffer
// for a borrowed read that leaves the buffer intact.
func (s *Session) CommitBuffer() string {
	text := s.commitBuf
	s.commitBuf = ""
	return text
}

// PeekCommitBuffer is the borrowed flavor of CommitBuffer: it returns
// the buffer's contents without clearing it.
func (s *Session) PeekCommitBuffer() string { return s.commitBuf }

// PreeditBuffer returns the realized preedit cells and their display
// intervals.
func (s *Session) PreeditBuffer() session.PreeditBuffer { return s.preeditBuf }

// BopomofoBuffer renders the in-progress syllable accumulator as its
// Zhuyin string, empty if no syllable is being composed.
func (s *Session) BopomofoBuffer() string { return s.syllable.String() }

// Candidates returns the candidate-picker's current page of phrase
// records, empty outside SelectingWord.
func (s *Session) Candidates() []dict.PhraseRecord {
	if s.candCtl.State() != candidate.SelectingWord {
		return nil
	}
	return s.candCtl.Page()
}

// CandidatePage and CandidatePageCount report the paging position
// within the open candidate list.
func (s *Session) CandidatePage() int      { return s.candCtl.PageIndex() }
func (s *Session) CandidatePageCount() int { return s.candCtl.PageCount() }

// CandidateAvailLengths exposes the avail-length list of the open
// word picker, longest-first.
func (s *Session) CandidateAvailLengths() []int { return s.candCtl.AvailLengths() }

// CandidateState reports the picker's current mode.
func (s *Session) CandidateState() candidate.State { return s.candCtl.State() }

// Intervals returns the cover currently backing the preedit buffer.
func (s *Session) Intervals() []graph.Interval {
	return append([]graph.Interval(nil), s.cover.Intervals...)
}

// AuxString returns the auxiliary status line (e.g. "no such phrase"),
// empty when there is nothing to report.
func (s *Session) AuxString() string { return s.aux }

// CursorPosition returns the preedit-cell index the cursor sits at.
func (s *Session) CursorPosition() int { return s.state.CursorCells }

// PhonemeCursor returns the phoneme-sequence index the cursor
// corresponds to, skipping SYMBOL cells.
func (s *Session) PhonemeCursor() int { return s.state.PhonemeCursor() }

// PhonemeLen returns the number of phonemes currently buffered.
func (s *Session) PhonemeLen() int { return len(s.state.Phoneme) }
