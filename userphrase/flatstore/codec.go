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
	"encoding/binary"
	"hash/crc32"

	"github.com/chewing-go/core/phoneme"
)

// record is the decoded form of one append-only block: either a
// full entry (put) or a deletion marker for (seq, phrase) (tombstone).
type record struct {
	seq       phoneme.Seq
	phrase    string
	tombstone bool
	time      int
	userFreq  int
	maxFreq   int
	origFreq  int
}

const (
	kindPut       = 1
	kindTombstone = 2
)

// encode renders r as one self-contained block: a little-endian
// length prefix, the payload, and a CRC32 checksum over the payload —
// so a reader can validate each block independently of the ones
// around it.
func encode(r record) []byte {
	payload := encodePayload(r)
	block := make([]byte, 4+len(payload)+4)
	binary.LittleEndian.PutUint32(block[0:4], uint32(len(payload)))
	copy(block[4:], payload)
	crc := crc32.ChecksumIEEE(payload)
	binary.LittleEndian.PutUint32(block[4+len(payload):], crc)
	return block
}

func encodePayload(r record) []byte {
	kind := byte(kindPut)
	if r.tombstone {
		kind = kindTombstone
	}
	buf := []byte{kind, byte(len(r.seq))}
	for _, c := range r.seq {
		var cb [2]byte
		binary.LittleEndian.PutUint16(cb[:], uint16(c))
		buf = append(buf, cb[:]...)
	}
	buf = append(buf, byte(len(r.phrase)))
	buf = append(buf, []byte(r.phrase)...)
	if !r.tombstone {
		var fb [16]byte
		binary.LittleEndian.PutUint32(fb[0:4], uint32(r.time))
		binary.LittleEndian.PutUint32(fb[4:8], uint32(r.userFreq))
		binary.LittleEndian.PutUint32(fb[8:12], uint32(r.maxFreq))
		binary.LittleEndian.PutUint32(fb[12:16], uint32(r.origFreq))
		buf = append(buf, fb[:]...)
	}
	return buf
}

// decodeAll reads every valid, checksum-verified block from data in
// order. If the trailing bytes don't form a complete, checksum-valid
// block — the process died mid-append — those bytes are dropped and
// truncated is reported true.
func decodeAll(data []byte) (recs []record, truncated bool) {
	off := 0
	for off < len(data) {
		if off+4 > len(data) {
			return recs, true
		}
		payloadLen := int(binary.LittleEndian.Uint32(data[off : off+4]))
		blockEnd := off + 4 + payloadLen + 4
		if payloadLen < 0 || blockEnd > len(data) {
			return recs, true
		}
		payload := data[off+4 : off+4+payloadLen]
		wantCRC := binary.LittleEndian.Uint32(data[off+4+payloadLen : blockEnd])
		if crc32.ChecksumIEEE(payload) != wantCRC {
			return recs, true
		}
		r, ok := decodePayload(payload)
		if !ok {
			return recs, true
		}
		recs = append(recs, r)
		off = blockEnd
	}
	return recs, false
}

func decodePayload(payload []byte) (record, bool) {
	if len(payload) < 2 {
		return record{}, false
	}
	kind := payload[0]
	length := int(payload[1])
	off := 2
	seq := make(phoneme.Seq, length)
	for i := 0; i < length; i++ {
		if off+2 > len(payload) {
			return record{}, false
		}
		seq[i] = phoneme.Code(binary.LittleEndian.Uint16(payload[off : off+2]))
		off += 2
	}
	if off >= len(payload) {
		return record{}, false
	}
	phraseLen := int(payload[off])
	off++
	if off+phraseLen > len(payload) {
		return record{}, false
	}
	phrase := string(payload[off : off+phraseLen])
	off += phraseLen

	r := record{seq: seq, phrase: phrase, tombstone: kind == kindTombstone}
	if kind == kindPut {
		if off+16 > len(payload) {
			return record{}, false
		}
		r.time = int(binary.LittleEndian.Uint32(payload[off : off+4]))
		r.userFreq = int(binary.LittleEndian.Uint32(payload[off+4 : off+8]))
		r.maxFreq = int(binary.LittleEndian.Uint32(payload[off+8 : off+12]))
		r.origFreq = int(binary.LittleEndian.Uint32(payload[off+12 : off+16]))
	}
	return r, true
}
