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

package userphrase

import (
	"iter"

	"github.com/chewing-go/core/phoneme"
)

// NullStore is the store a session falls back to when no backend
// could be opened. Every call is a documented no-op: the session keeps
// running with no learned-phrase persistence rather than failing to
// start.
type NullStore struct{}

func (NullStore) FirstByPhone(seq phoneme.Seq) (*Entry, bool) { return nil, false }
func (NullStore) NextByPhone() (*Entry, bool)                 { return nil, false }
func (NullStore) Lookup(seq phoneme.Seq, phrase string) (*Entry, bool) {
	return nil, false
}
func (NullStore) Upsert(seq phoneme.Seq, phrase string, lifetime int) error { return nil }
func (NullStore) Put(e Entry) error                                        { return nil }
func (NullStore) Remove(seq phoneme.Seq, phrase string) error              { return nil }
func (NullStore) Enumerate() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {}
}
func (NullStore) Begin() error          { return nil }
func (NullStore) End(commit bool) error { return nil }
func (NullStore) Close() error          { return nil }
