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

// Package chewing wires the dictionary, user phrase store, session
// state, candidate controller and preedit assembler into a single
// handle that consumes keyboard events and exposes the observable
// buffers of a live Bopomofo input session.
package chewing

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/chewing-go/core/autolearn"
	"github.com/chewing-go/core/candidate"
	"github.com/chewing-go/core/cnf"
	"github.com/chewing-go/core/dict"
	"github.com/chewing-go/core/graph"
	"github.com/chewing-go/core/phoneme"
	"github.com/chewing-go/core/preedit"
	"github.com/chewing-go/core/session"
	"github.com/chewing-go/core/userphrase"
	"github.com/chewing-go/core/userphrase/factory"
)

// Session is the single exported handle: one live input session over
// a static dictionary and a user phrase store.
type Session struct {
	logger zerolog.Logger
	conf   Config

	dict   *dict.Dict
	store  userphrase.Store
	layout phoneme.LayoutMapper

	state   *session.State
	candCtl *candidate.Controller

	cover      graph.Cover
	preeditBuf session.PreeditBuffer

	// syllable and syllableAlt accumulate the in-progress bopomofo
	// fields for the primary and alternate (ambiguous-layout) reading
	// until a tone field arrives and the syllable commits.
	syllable    phoneme.Code
	syllableAlt phoneme.Code

	commitBuf string
	aux       string
}

// New opens a session against the static dictionary at sysPath and a
// user phrase store rooted at userPath, logging through logger. The
// user store defaults to the flat-file backend; call SetUserStore to
// swap in a configured cnf.UserStoreConf-selected backend instead.
func New(sysPath, userPath string, logger zerolog.Logger) (*Session, error) {
	d, err := dict.Open(sysPath)
	if err != nil {
		return nil, fmt.Errorf("chewing: opening dictionary: %w", err)
	}
	if d.IsEmpty() {
		logger.Info().Err(ErrResourceMissing).Str("path", sysPath).
			Msg("chewing: starting with an empty static dictionary")
	}
	store := factory.New(cnf.UserStoreConf{}, userPath)
	conf := defaultConfig()

	s := &Session{
		logger: logger,
		conf:   conf,
		dict:   d,
		store:  store,
		state:  session.New(),
	}
	s.candCtl = candidate.New(conf.CandPerPage, conf.PhraseChoiceRearward, nil)
	return s, nil
}

// SetUserStore replaces the session's user phrase store, closing the
// previous one first. Use this after New to select a SQL-backed store
// via userphrase/factory instead of the flat-file default.
func (s *Session) SetUserStore(store userphrase.Store) error {
	if err := s.store.Close(); err != nil {
		s.logger.Error().Err(err).Msg("chewing: closing previous user store")
	}
	s.store = store
	return nil
}

// SetLayoutMapper injects the keyboard-layout collaborator that
// translates Bopomofo keystrokes into phoneme fields. Bopomofo events
// are answered with Bell until one is set.
func (s *Session) SetLayoutMapper(m phoneme.LayoutMapper) { s.layout = m }

// SetSymbolTable injects the symbol-picker collaborator.
func (s *Session) SetSymbolTable(t candidate.SymbolTable) { s.candCtl.SetSymbolTable(t) }

// Delete closes the session's user phrase store. The session must not
// be used afterward.
func (s *Session) Delete() error {
	return s.store.Close()
}

// Reset clears the session's input buffers — phoneme sequence,
// preedit, selections, in-progress syllable and candidate picker — but
// never touches the user phrase store. Lifetime keeps counting.
func (s *Session) Reset() {
	lifetime := s.state.Lifetime
	s.state = session.New()
	s.state.Lifetime = lifetime
	s.cover = graph.Cover{}
	s.preeditBuf = session.PreeditBuffer{}
	s.syllable, s.syllableAlt = 0, 0
	s.candCtl.Escape()
}

// AckCommit clears the commit buffer without returning it, for callers
// that already consumed its contents through CommitBuffer.
func (s *Session) AckCommit() { s.commitBuf = "" }

// rebuild recomputes the best cover and the realized preedit buffer
// from the current phoneme sequence, selections and break markers. It
// must run after any mutation to state.Phoneme, state.Selections or
// state.Break.
func (s *Session) rebuild() {
	all := graph.BuildAllCover(s.state.Phoneme, s.dict, s.store, s.state.Selections, s.state.Break)
	s.cover = graph.BuildBestCover(all, len(s.state.Phoneme))
	s.preeditBuf = preedit.Assemble(s.cover, s.state)
}

func chineseCellCount(st *session.State) int {
	n := 0
	for _, c := range st.Preedit {
		if c.Kind == session.CellChinese {
			n++
		}
	}
	return n
}

func committedText(buf session.PreeditBuffer) string {
	var b strings.Builder
	for _, c := range buf.Cells {
		b.WriteString(c.Glyph)
	}
	return b.String()
}

// learnFromCommit runs the auto-learn pass over the cover about to be
// committed, bracketed by the store's Begin/End. Against the SQL backend
// that is a real transaction, rolled back if Learn fails; the flat-file
// store's Begin/End do nothing, so upserts made before a failure stay.
func (s *Session) learnFromCommit() {
	if !s.conf.AutoLearn {
		return
	}
	if err := s.store.Begin(); err != nil {
		s.logger.Error().Err(fmt.Errorf("%w: %v", ErrStoreFailure, err)).Msg("chewing: beginning auto-learn transaction")
		return
	}
	err := autolearn.Learn(s.cover, s.store, s.state.Phoneme, s.state.Lifetime)
	if err != nil {
		s.logger.Error().Err(fmt.Errorf("%w: %v", ErrStoreFailure, err)).Msg("chewing: auto-learn failed")
	}
	if endErr := s.store.End(err == nil); endErr != nil {
		s.logger.Error().Err(fmt.Errorf("%w: %v", ErrStoreFailure, endErr)).Msg("chewing: ending auto-learn transaction")
	}
}
