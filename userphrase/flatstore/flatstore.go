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

// Package flatstore implements userphrase.Store as an in-memory map
// checkpointed to a CRC-tagged append-only file: every Put or Remove
// appends one record, and the latest record for a given key wins on
// reload. It is the backend selected when no SQL database is
// configured but learned phrases should still persist across sessions.
package flatstore

import (
	"fmt"
	"iter"
	"os"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/chewing-go/core/phoneme"
	"github.com/chewing-go/core/userphrase"
)

type entryKey struct {
	seq    string
	phrase string
}

func keyOf(seq phoneme.Seq, phrase string) entryKey {
	return entryKey{seq: seq.String(), phrase: phrase}
}

// Store is a flat-file-backed userphrase.Store.
type Store struct {
	path    string
	file    *os.File
	entries map[entryKey]userphrase.Entry

	cursorSeq string
	cursor    []userphrase.Entry
	cursorPos int
}

// Open loads path if it exists (tolerating a truncated trailing record
// as "the process died mid-write") and keeps it open for appends. A
// missing file is treated as a fresh, empty store.
func Open(path string) (*Store, error) {
	s := &Store{path: path, entries: make(map[entryKey]userphrase.Entry)}
	if err := s.load(); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("flatstore: failed to open %s for append: %w", path, err)
	}
	s.file = f
	return s, nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("flatstore: failed to read %s: %w", s.path, err)
	}
	recs, truncated := decodeAll(data)
	if truncated {
		log.Warn().Str("path", s.path).Msg("flatstore: trailing record truncated or corrupt, ignoring it")
	}
	for _, r := range recs {
		k := keyOf(r.seq, r.phrase)
		if r.tombstone {
			delete(s.entries, k)
			continue
		}
		s.entries[k] = userphrase.Entry{
			Seq:      r.seq,
			Phrase:   r.phrase,
			Time:     r.time,
			UserFreq: r.userFreq,
			MaxFreq:  r.maxFreq,
			OrigFreq: r.origFreq,
		}
	}
	return nil
}

func (s *Store) FirstByPhone(seq phoneme.Seq) (*userphrase.Entry, bool) {
	s.cursor = s.cursor[:0]
	want := seq.String()
	for _, e := range s.entries {
		if e.Seq.String() == want {
			s.cursor = append(s.cursor, e)
		}
	}
	sort.Slice(s.cursor, func(i, j int) bool { return s.cursor[i].Phrase < s.cursor[j].Phrase })
	s.cursorPos = 0
	return s.NextByPhone()
}

func (s *Store) NextByPhone() (*userphrase.Entry, bool) {
	if s.cursorPos >= len(s.cursor) {
		return nil, false
	}
	e := s.cursor[s.cursorPos]
	s.cursorPos++
	return &e, true
}

func (s *Store) Lookup(seq phoneme.Seq, phrase string) (*userphrase.Entry, bool) {
	e, ok := s.entries[keyOf(seq, phrase)]
	if !ok {
		return nil, false
	}
	return &e, true
}

func (s *Store) Upsert(seq phoneme.Seq, phrase string, lifetime int) error {
	if existing, ok := s.Lookup(seq, phrase); ok {
		existing.Time = lifetime
		return s.Put(*existing)
	}
	return s.Put(userphrase.Entry{
		Seq:      seq.Clone(),
		Phrase:   phrase,
		Time:     lifetime,
		UserFreq: 1,
		MaxFreq:  1,
		OrigFreq: 1,
	})
}

func (s *Store) Put(e userphrase.Entry) error {
	s.entries[keyOf(e.Seq, e.Phrase)] = e
	return s.appendRecord(record{seq: e.Seq, phrase: e.Phrase, time: e.Time,
		userFreq: e.UserFreq, maxFreq: e.MaxFreq, origFreq: e.OrigFreq})
}

func (s *Store) Remove(seq phoneme.Seq, phrase string) error {
	delete(s.entries, keyOf(seq, phrase))
	return s.appendRecord(record{seq: seq, phrase: phrase, tombstone: true})
}

func (s *Store) Enumerate() iter.Seq[userphrase.Entry] {
	return func(yield func(userphrase.Entry) bool) {
		for _, e := range s.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Begin and End are no-ops: the flat store has no transaction concept
// and commits each Put/Remove as it happens.
func (s *Store) Begin() error          { return nil }
func (s *Store) End(commit bool) error { return nil }

func (s *Store) Close() error {
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}

func (s *Store) appendRecord(r record) error {
	if _, err := s.file.Write(encode(r)); err != nil {
		return fmt.Errorf("flatstore: failed to append record for %q: %w", r.phrase, err)
	}
	return nil
}
