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

// Package userphrase defines the store abstraction that the engine's
// learned phrases are kept behind, independent of whichever backend
// (SQL database, flat file, or none) ends up serving it.
package userphrase

import (
	"iter"

	"github.com/chewing-go/core/phoneme"
)

// Entry is one learned phrase row, shaped after the userphrase_v1
// table: a phoneme sequence, the phrase it spells, the session lifetime
// counter of its last use, and the three frequency fields the
// auto-learn update rule maintains.
type Entry struct {
	Seq      phoneme.Seq
	Phrase   string
	Time     int
	UserFreq int
	MaxFreq  int
	OrigFreq int
}

// Store is the behavior every user-phrase backend must provide. It
// mirrors a cursor-based C API (FirstByPhone/NextByPhone) because the
// engine's candidate enumeration walks entries one phone sequence at a
// time, but adds Enumerate for the bulk listing the public API exposes.
type Store interface {
	// FirstByPhone starts a cursor over every entry whose Seq equals
	// seq and returns the first one, if any.
	FirstByPhone(seq phoneme.Seq) (*Entry, bool)

	// NextByPhone advances the cursor started by FirstByPhone.
	NextByPhone() (*Entry, bool)

	// Lookup finds one exact (seq, phrase) entry.
	Lookup(seq phoneme.Seq, phrase string) (*Entry, bool)

	// Upsert inserts the (seq, phrase) entry if absent, seeding
	// user_freq = orig_freq = max_freq = 1 and time = lifetime — the
	// explicit-add path of the public API, which carries no static-dict
	// frequency of its own. If the entry already exists, Upsert only
	// refreshes its time field; the §4.10 frequency-adjustment math
	// belongs to the autolearn package, which calls Put directly.
	Upsert(seq phoneme.Seq, phrase string, lifetime int) error

	// Put persists e verbatim, inserting or replacing by (Seq, Phrase).
	// autolearn uses this to write back an entry whose frequency fields
	// it has already computed.
	Put(e Entry) error

	// Remove deletes the (seq, phrase) entry, if present.
	Remove(seq phoneme.Seq, phrase string) error

	// Enumerate yields every stored entry. Each call starts a fresh,
	// independent iteration.
	Enumerate() iter.Seq[Entry]

	// Begin opens a write transaction; backends that have no notion
	// of transactions may treat it as a no-op.
	Begin() error

	// End closes the transaction started by Begin, committing or
	// rolling back per commit.
	End(commit bool) error

	Close() error
}
