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

// Package dict implements the read-only, node-addressed phrase trie
// described by the engine's static dictionary: a blob of fixed-size
// nodes, each keyed by a 16-bit phoneme code and addressed by a 24-bit
// child index, with a key-0 child marking a phrase-record terminal.
//
// Opening a missing or malformed file never fails loudly: a Dict that
// could not load its blob answers every lookup with no match, so a
// session can still start and simply run with an empty dictionary.
package dict

import (
	"encoding/binary"
	"math"
	"os"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/chewing-go/core/phoneme"
)

// MagicNumber identifies a valid dictionary blob.
const MagicNumber uint32 = 0x4b454843 // "CHEK"

const (
	headerSize = 16 // magic(4) + nodeCount(4) + rootIndex(4) + phraseBase(4)
	nodeSize   = 6  // phoneKey(2) + childIdx(3) + numChildren(1)
)

// Handle addresses a trie node that terminated a successful lookup.
type Handle uint32

// NoHandle is the invalid handle, returned alongside found == false.
const NoHandle Handle = math.MaxUint32

// PhraseRecord is one phrase string attached to a terminal trie node,
// together with its static base frequency.
type PhraseRecord struct {
	Phrase string
	Freq   uint32
}

// Dict is an opened static phrase dictionary. The zero value is not
// usable; construct one with Open.
type Dict struct {
	blob       []byte
	nodeCount  uint32
	rootIndex  uint32
	phraseBase uint32
	empty      bool
}

// Open reads path into memory and validates its header. On any
// filesystem or format error it logs a warning and returns a degraded,
// empty Dict rather than an error — callers that need to distinguish
// "empty on purpose" from "failed to load" can check IsEmpty.
func Open(path string) (*Dict, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("dict: static dictionary unavailable, running empty")
		return &Dict{empty: true}, nil
	}
	d, ok := parse(data)
	if !ok {
		log.Warn().Str("path", path).Msg("dict: static dictionary malformed, running empty")
		return &Dict{empty: true}, nil
	}
	log.Info().Str("path", path).Uint32("nodes", d.nodeCount).Msg("dict: loaded static dictionary")
	return d, nil
}

func parse(data []byte) (*Dict, bool) {
	if len(data) < headerSize {
		return nil, false
	}
	magic := binary.LittleEndian.Uint32(data[0:4])
	if magic != MagicNumber {
		return nil, false
	}
	nodeCount := binary.LittleEndian.Uint32(data[4:8])
	rootIndex := binary.LittleEndian.Uint32(data[8:12])
	phraseBase := binary.LittleEndian.Uint32(data[12:16])
	needed := headerSize + int(nodeCount)*nodeSize
	if len(data) < needed || int(phraseBase) > len(data) {
		return nil, false
	}
	return &Dict{
		blob:       data,
		nodeCount:  nodeCount,
		rootIndex:  rootIndex,
		phraseBase: phraseBase,
	}, true
}

// IsEmpty reports whether the dictionary carries no data, either
// because the backing file was missing/malformed or because it was
// never populated.
func (d *Dict) IsEmpty() bool {
	return d == nil || d.empty
}

func (d *Dict) node(idx uint32) (phoneKey uint16, childIdx uint32, numChildren uint8) {
	off := headerSize + int(idx)*nodeSize
	phoneKey = binary.LittleEndian.Uint16(d.blob[off : off+2])
	childIdx = uint32(d.blob[off+2]) | uint32(d.blob[off+3])<<8 | uint32(d.blob[off+4])<<16
	numChildren = d.blob[off+5]
	return
}

// FindPhrase walks the trie along seq and returns the handle of the
// terminal (key-0) child marking end-of-phrase, or NoHandle, false if
// any phoneme in seq is missing or the terminal sentinel is absent.
func (d *Dict) FindPhrase(seq phoneme.Seq) (Handle, bool) {
	if d.IsEmpty() || len(seq) == 0 {
		return NoHandle, false
	}
	cur := d.rootIndex
	for _, code := range seq {
		_, childIdx, numChildren := d.node(cur)
		next, ok := d.findChild(childIdx, numChildren, uint16(code))
		if !ok {
			return NoHandle, false
		}
		cur = next
	}
	_, childIdx, numChildren := d.node(cur)
	term, ok := d.findChild(childIdx, numChildren, 0)
	if !ok {
		return NoHandle, false
	}
	return Handle(term), true
}

func (d *Dict) findChild(childBase uint32, numChildren uint8, key uint16) (uint32, bool) {
	for i := uint32(0); i < uint32(numChildren); i++ {
		idx := childBase + i
		if idx >= d.nodeCount {
			break
		}
		k, _, _ := d.node(idx)
		if k == key {
			return idx, true
		}
	}
	return 0, false
}

// PhraseRecords returns every phrase string attached to h, ordered by
// descending static frequency. An invalid or empty handle yields nil.
//
// libchewing exposes this as a phrase_first/phrase_next iterator pair
// over a C-side cursor; Go has no useful analogue for that
// iterator-by-reference state, and the record set behind one terminal
// node is always small and bounded, so it is simply returned as a
// slice.
func (d *Dict) PhraseRecords(h Handle) []PhraseRecord {
	if d.IsEmpty() || h == NoHandle {
		return nil
	}
	_, recOffset, recCount := d.node(uint32(h))
	off := d.phraseBase + recOffset
	records := make([]PhraseRecord, 0, recCount)
	for i := 0; i < int(recCount); i++ {
		if off+5 > uint32(len(d.blob)) {
			break
		}
		freq := binary.LittleEndian.Uint32(d.blob[off : off+4])
		off += 4
		plen := uint32(d.blob[off])
		off++
		if off+plen > uint32(len(d.blob)) {
			break
		}
		phrase := string(d.blob[off : off+plen])
		off += plen
		records = append(records, PhraseRecord{Phrase: phrase, Freq: freq})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Freq > records[j].Freq })
	return records
}
