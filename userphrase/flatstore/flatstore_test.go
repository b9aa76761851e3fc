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

package flatstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chewing-go/core/phoneme"
	"github.com/chewing-go/core/userphrase"
)

func TestUpsertThenLookup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.dat")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	seq := phoneme.Seq{0x1234, 0x5678}
	require.NoError(t, s.Upsert(seq, "測試", 42))

	e, ok := s.Lookup(seq, "測試")
	require.True(t, ok)
	assert.Equal(t, 42, e.Time)
	assert.Equal(t, 1, e.UserFreq)
}

func TestRemoveDeletesEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.dat")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	seq := phoneme.Seq{0x1234}
	require.NoError(t, s.Upsert(seq, "測", 1))
	require.NoError(t, s.Remove(seq, "測"))

	_, ok := s.Lookup(seq, "測")
	assert.False(t, ok)
}

func TestReloadReplaysRecordsInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.dat")
	s, err := Open(path)
	require.NoError(t, err)

	seq := phoneme.Seq{0x1234}
	require.NoError(t, s.Put(userphrase.Entry{Seq: seq, Phrase: "測", UserFreq: 1}))
	require.NoError(t, s.Put(userphrase.Entry{Seq: seq, Phrase: "測", UserFreq: 5}))
	require.NoError(t, s.Close())

	reloaded, err := Open(path)
	require.NoError(t, err)
	defer reloaded.Close()

	e, ok := reloaded.Lookup(seq, "測")
	require.True(t, ok)
	assert.Equal(t, 5, e.UserFreq, "later record must win on reload")
}

func TestReloadToleratesTruncatedTailRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.dat")
	s, err := Open(path)
	require.NoError(t, err)
	seq := phoneme.Seq{0x1234}
	require.NoError(t, s.Put(userphrase.Entry{Seq: seq, Phrase: "測", UserFreq: 1}))
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, append(data, 0xFF, 0xFF, 0xFF), 0o644))

	reloaded, err := Open(path)
	require.NoError(t, err)
	defer reloaded.Close()

	e, ok := reloaded.Lookup(seq, "測")
	require.True(t, ok)
	assert.Equal(t, 1, e.UserFreq)
}

func TestEnumerateYieldsAllEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.dat")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Upsert(phoneme.Seq{0x1234}, "測", 1))
	require.NoError(t, s.Upsert(phoneme.Seq{0x5678}, "試", 2))

	var count int
	for range s.Enumerate() {
		count++
	}
	assert.Equal(t, 2, count)
}
