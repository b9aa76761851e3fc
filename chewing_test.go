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
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chewing-go/core/phoneme"
)

// fakeLayout maps three keystrokes ('h','k','4') onto the three
// disjoint bit fields of phoneme code 0x1234 — the single syllable
// the test dictionary below recognizes.
type fakeLayout struct{}

func (fakeLayout) Key(key byte) (field, alt phoneme.Code, ok bool) {
	switch key {
	case 'h':
		return phoneme.Pack(9, 0, 0, 0), 0, true
	case 'k':
		return phoneme.Pack(0, 0, 6, 0), 0, true
	case '4':
		return phoneme.Pack(0, 0, 0, 4), 0, true
	default:
		return 0, 0, false
	}
}

func buildDictBlob() []byte {
	nodes := []byte{}
	appendNode := func(key uint16, childIdx uint32, numChildren uint8) {
		var buf [6]byte
		binary.LittleEndian.PutUint16(buf[0:2], key)
		buf[2] = byte(childIdx)
		buf[3] = byte(childIdx >> 8)
		buf[4] = byte(childIdx >> 16)
		buf[5] = numChildren
		nodes = append(nodes, buf[:]...)
	}
	appendNode(0, 1, 1)
	appendNode(0x1234, 2, 1)
	appendNode(0, 0, 2)

	var phraseBlob []byte
	appendRecord := func(freq uint32, phrase string) {
		var fb [4]byte
		binary.LittleEndian.PutUint32(fb[:], freq)
		phraseBlob = append(phraseBlob, fb[:]...)
		phraseBlob = append(phraseBlob, byte(len(phrase)))
		phraseBlob = append(phraseBlob, []byte(phrase)...)
	}
	appendRecord(500, "策")
	appendRecord(100, "測")

	const headerSize = 16
	const magicNumber = 0x4b454843
	header := make([]byte, headerSize)
	binary.LittleEndian.PutUint32(header[0:4], magicNumber)
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(nodes)/6))
	binary.LittleEndian.PutUint32(header[8:12], 0)
	binary.LittleEndian.PutUint32(header[12:16], uint32(headerSize+len(nodes)))

	blob := append(header, nodes...)
	blob = append(blob, phraseBlob...)
	return blob
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	dictPath := filepath.Join(t.TempDir(), "dict.dat")
	require.NoError(t, os.WriteFile(dictPath, buildDictBlob(), 0o644))
	userPath := t.TempDir()

	s, err := New(dictPath, userPath, zerolog.Nop())
	require.NoError(t, err)
	s.SetLayoutMapper(fakeLayout{})
	return s
}

func TestHandleKeyComposesSyllableAndCommitsHighestFrequencyPhrase(t *testing.T) {
	s := newTestSession(t)

	assert.Equal(t, Absorbed, s.HandleKey(Bopomofo('h')))
	assert.Equal(t, Absorbed, s.HandleKey(Bopomofo('k')))
	assert.Equal(t, Absorbed, s.HandleKey(Bopomofo('4')))
	assert.Equal(t, 1, s.PhonemeLen())

	assert.Equal(t, Committed, s.HandleKey(Enter()))
	assert.Equal(t, "策", s.CommitBuffer())
	assert.Empty(t, s.CommitBuffer(), "CommitBuffer clears on read")
}

func TestHandleKeyBellOnBopomofoWithoutLayoutMapper(t *testing.T) {
	s := newTestSession(t)
	s.SetLayoutMapper(nil)
	assert.Equal(t, Bell, s.HandleKey(Bopomofo('h')))
}

func TestHandleKeyBellOnUnboundKey(t *testing.T) {
	s := newTestSession(t)
	assert.Equal(t, Bell, s.HandleKey(Bopomofo('z')))
}

func TestEscClearsInProgressSyllableWithoutTouchingPreedit(t *testing.T) {
	s := newTestSession(t)
	s.HandleKey(Bopomofo('h'))
	require.NotEmpty(t, s.BopomofoBuffer())

	assert.Equal(t, Absorbed, s.HandleKey(Esc()))
	assert.Empty(t, s.BopomofoBuffer())
	assert.Equal(t, 0, s.PhonemeLen())
}

func TestEnterWithEmptyPreeditRingsBell(t *testing.T) {
	s := newTestSession(t)
	assert.Equal(t, Bell, s.HandleKey(Enter()))
}

func TestSetCandPerPageRejectsOutOfRange(t *testing.T) {
	s := newTestSession(t)
	err := s.SetCandPerPage(11)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 10, s.CandPerPage(), "rejected setter leaves the previous value unchanged")
}

func TestSetKbTypeRejectsOutOfRangeOrdinal(t *testing.T) {
	s := newTestSession(t)
	err := s.SetKbType(KeyboardLayout(999))
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, Default, s.KbType())

	require.NoError(t, s.SetKbType(Hsu))
	assert.Equal(t, Hsu, s.KbType())
}

func TestSetSelKeysRejectsDuplicates(t *testing.T) {
	s := newTestSession(t)
	err := s.SetSelKeys([]byte{'1', '2', '1'})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBackspaceRemovesLastSyllable(t *testing.T) {
	s := newTestSession(t)
	s.HandleKey(Bopomofo('h'))
	s.HandleKey(Bopomofo('k'))
	s.HandleKey(Bopomofo('4'))
	require.Equal(t, 1, s.PhonemeLen())
	s.HandleKey(End())

	assert.Equal(t, Absorbed, s.HandleKey(Backspace()))
	assert.Equal(t, 0, s.PhonemeLen())
}

func TestDebugSnapshotProducesValidJSON(t *testing.T) {
	s := newTestSession(t)
	s.HandleKey(Bopomofo('h'))
	data, err := s.DebugSnapshot()
	require.NoError(t, err)
	assert.Contains(t, string(data), "bopomofo")
}
