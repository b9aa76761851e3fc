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

package candidate

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chewing-go/core/dict"
	"github.com/chewing-go/core/session"
	"github.com/chewing-go/core/userphrase"
)

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

func openTestDict(t *testing.T) *dict.Dict {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dict.dat")
	require.NoError(t, os.WriteFile(path, buildDictBlob(), 0o644))
	d, err := dict.Open(path)
	require.NoError(t, err)
	return d
}

type fakeTable struct{}

func (fakeTable) Categories() []string             { return []string{"punctuation"} }
func (fakeTable) SymbolsIn(category string) []string { return []string{"，", "。", "『"} }

func TestOpenMaterializesCandidatesByDescendingFrequency(t *testing.T) {
	d := openTestDict(t)
	st := session.New()
	require.NoError(t, st.AddChinese(0x1234, 0))

	c := New(10, false, fakeTable{})
	require.NoError(t, c.Open(st, d, userphrase.NullStore{}))
	assert.Equal(t, SelectingWord, c.State())
	require.NotEmpty(t, c.Page())
	assert.Equal(t, "策", c.Page()[0].Phrase)
}

func TestChooseAppliesSelectionAndCloses(t *testing.T) {
	d := openTestDict(t)
	st := session.New()
	require.NoError(t, st.AddChinese(0x1234, 0))

	c := New(10, false, fakeTable{})
	require.NoError(t, c.Open(st, d, userphrase.NullStore{}))
	require.NoError(t, c.Choose(st, 0))

	assert.Equal(t, Closed, c.State())
	require.Len(t, st.Selections, 1)
	assert.Equal(t, "策", st.Selections[0].Phrase)
}

func TestEscapeReturnsToIdleWithoutMutatingState(t *testing.T) {
	d := openTestDict(t)
	st := session.New()
	require.NoError(t, st.AddChinese(0x1234, 0))

	c := New(10, false, fakeTable{})
	require.NoError(t, c.Open(st, d, userphrase.NullStore{}))
	c.Escape()

	assert.Equal(t, Idle, c.State())
	assert.Empty(t, st.Selections)
}

func TestSymbolPickerTwoLevelFlow(t *testing.T) {
	st := session.New()
	c := New(10, false, fakeTable{})

	require.NoError(t, c.OpenSymbols())
	assert.Equal(t, SymbolLevel1, c.State())

	require.NoError(t, c.ChooseCategory(0))
	assert.Equal(t, SymbolLevel2, c.State())

	require.NoError(t, c.ChooseSymbol(st, 2, '<'))
	assert.Equal(t, Closed, c.State())
	require.Len(t, st.Preedit, 1)
	assert.Equal(t, "『", st.Preedit[0].Glyph)
}

func TestPageCyclesAcrossPageBoundaries(t *testing.T) {
	d := openTestDict(t)
	st := session.New()
	require.NoError(t, st.AddChinese(0x1234, 0))

	c := New(1, false, fakeTable{})
	require.NoError(t, c.Open(st, d, userphrase.NullStore{}))
	require.Equal(t, 2, c.PageCount())

	c.NextPage()
	assert.Equal(t, "測", c.Page()[0].Phrase)
	c.NextPage()
	assert.Equal(t, "策", c.Page()[0].Phrase, "page index wraps back to 0")
}
