// Package phoneme implements the Bopomofo phoneme codec: packing and
// unpacking a single syllable into a 16-bit code and converting it to and
// from its UTF-8 Zhuyin rendering. The codec is purely functional — it
// carries no state and never fails loudly; illegal combinations simply
// round-trip as incomplete codes, per the caller's responsibility to
// treat them as such.
package phoneme

import (
	"fmt"
	"strings"
)

// Code is a packed Bopomofo syllable: initial (bits 9-13), medial
// (bits 7-8), final (bits 3-6), tone (bits 0-2). Zero in any field means
// "absent".
type Code uint16

const (
	initialShift = 9
	medialShift  = 7
	finalShift   = 3
	toneShift    = 0

	initialMask = 0x1F // 5 bits
	medialMask  = 0x03 // 2 bits
	finalMask   = 0x0F // 4 bits
	toneMask    = 0x07 // 3 bits
)

// Pack combines the four syllable fields into a single Code. Values
// outside their field width are truncated by the caller's responsibility
// — Pack itself does not validate legality, only bit placement.
func Pack(initial, medial, final, tone uint8) Code {
	return Code(uint16(initial&initialMask)<<initialShift |
		uint16(medial&medialMask)<<medialShift |
		uint16(final&finalMask)<<finalShift |
		uint16(tone&toneMask)<<toneShift)
}

// Unpack splits a Code back into its four fields.
func (c Code) Unpack() (initial, medial, final, tone uint8) {
	initial = uint8((uint16(c) >> initialShift) & initialMask)
	medial = uint8((uint16(c) >> medialShift) & medialMask)
	final = uint8((uint16(c) >> finalShift) & finalMask)
	tone = uint8((uint16(c) >> toneShift) & toneMask)
	return
}

// IsComplete reports whether c carries enough information to be placed
// in a committed phoneme sequence: either its final or its tone field is
// non-zero, and the (initial, medial, final) combination names a legal
// Mandarin syllable. Incomplete codes may only live inside an in-progress
// syllable buffer.
//
// Legality here is reduced to the one structural rule that actually
// matters for round-tripping: the retroflex/dental sibilant initials
// (ㄓㄔㄕㄖㄗㄘㄙ) never combine with the ㄧ or ㄩ medials in Mandarin.
// libchewing instead ships a ~1300-entry enumerated syllable table; that
// table is bopomofo-layout data, not conversion-engine logic, so it is
// out of the scope this module reproduces (see DESIGN.md).
func (c Code) IsComplete() bool {
	if c == 0 {
		return false
	}
	initial, medial, final, tone := c.Unpack()
	if final == 0 && tone == 0 {
		return false
	}
	const sibilantFirst, sibilantLast = 15, 21
	if initial >= sibilantFirst && initial <= sibilantLast && (medial == 1 || medial == 3) {
		return false
	}
	return true
}

// String renders c as its UTF-8 Zhuyin representation (to_bopomofo_string).
// The zero code renders as the empty string.
func (c Code) String() string {
	if c == 0 {
		return ""
	}
	var b strings.Builder
	initial, medial, final, tone := c.Unpack()
	if initial > 0 && int(initial) < len(initials) {
		b.WriteString(initials[initial])
	}
	if medial > 0 && int(medial) < len(medials) {
		b.WriteString(medials[medial])
	}
	if final > 0 && int(final) < len(finals) {
		b.WriteString(finals[final])
	}
	if tone > 0 && int(tone) < len(tones) {
		b.WriteString(tones[tone])
	}
	return b.String()
}

// FromBopomofo parses a UTF-8 Zhuyin syllable string back into a Code
// (from_bopomofo_string).
func FromBopomofo(s string) (Code, error) {
	var initial, medial, final, tone uint8
	for _, r := range s {
		ch := string(r)
		switch {
		case indexOf(initials, ch) > 0:
			initial = uint8(indexOf(initials, ch))
		case indexOf(medials, ch) > 0:
			medial = uint8(indexOf(medials, ch))
		case indexOf(finals, ch) > 0:
			final = uint8(indexOf(finals, ch))
		case indexOf(tones, ch) > 0:
			tone = uint8(indexOf(tones, ch))
		default:
			return 0, fmt.Errorf("phoneme: unrecognized bopomofo glyph %q in %q", ch, s)
		}
	}
	if final != 0 && tone == 0 {
		// Unmarked syllables are conventionally first tone.
		tone = 1
	}
	return Pack(initial, medial, final, tone), nil
}

func indexOf(table []string, v string) int {
	for i, t := range table {
		if t == v && t != "" {
			return i
		}
	}
	return -1
}

// SyllableLen returns the number of Zhuyin characters the code renders
// as (sequence_length).
func (c Code) SyllableLen() int {
	return len([]rune(c.String()))
}

// Seq is a bounded ordered sequence of phonemes, one per CHINESE preedit
// cell.
type Seq []Code

// MaxPhoneSeq is the hard upper bound on a phoneme sequence's length.
const MaxPhoneSeq = 50

// Clone returns an independent copy of the sequence.
func (s Seq) Clone() Seq {
	out := make(Seq, len(s))
	copy(out, s)
	return out
}

// String renders the sequence as its constituent Zhuyin syllables
// separated by spaces, suitable as a map key or log field — it is not
// meant to round-trip through FromBopomofo.
func (s Seq) String() string {
	var b strings.Builder
	for i, c := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	return b.String()
}
