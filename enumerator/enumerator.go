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

// Package enumerator gathers candidate phrases for a phoneme span out
// of the static dictionary and the user phrase store, filtered against
// whatever selections the caller has already fixed.
package enumerator

import (
	"github.com/chewing-go/core/dict"
	"github.com/chewing-go/core/phoneme"
	"github.com/chewing-go/core/session"
	"github.com/chewing-go/core/userphrase"
)

// Phrases returns every candidate phrase spelled by seq[begin:end],
// sourced from the static dictionary and the user phrase store,
// deduplicated (a user entry wins over a dictionary entry of the same
// string) and ordered by descending frequency. It returns nil if the
// span conflicts with an existing selection per consistency below, or
// if it crosses a break position in breaks.
func Phrases(begin, end int, seq phoneme.Seq, d *dict.Dict, store userphrase.Store, selections []session.Selection, breaks []bool) []dict.PhraseRecord {
	if crossesBreak(begin, end, breaks) {
		return nil
	}
	if !consistent(begin, end, selections) {
		return nil
	}

	span := seq[begin:end]
	byPhrase := make(map[string]dict.PhraseRecord)
	var order []string
	add := func(r dict.PhraseRecord) {
		if _, seen := byPhrase[r.Phrase]; !seen {
			order = append(order, r.Phrase)
		}
		byPhrase[r.Phrase] = r
	}

	if h, ok := d.FindPhrase(span); ok {
		for _, r := range d.PhraseRecords(h) {
			if agreesWithSelections(begin, end, r.Phrase, selections) {
				add(r)
			}
		}
	}

	if e, ok := store.FirstByPhone(span); ok {
		for {
			if agreesWithSelections(begin, end, e.Phrase, selections) {
				add(dict.PhraseRecord{Phrase: e.Phrase, Freq: uint32(e.UserFreq)})
			}
			e, ok = store.NextByPhone()
			if !ok {
				break
			}
		}
	}

	out := make([]dict.PhraseRecord, 0, len(byPhrase))
	for _, p := range order {
		out = append(out, byPhrase[p])
	}
	sortDescending(out)
	return out
}

// crossesBreak reports whether a break flag is set at any position
// strictly inside (begin,end), mirroring graph.CrossesBreak — kept as
// its own copy here since graph imports this package.
func crossesBreak(begin, end int, breaks []bool) bool {
	for p := begin + 1; p < end; p++ {
		if p < len(breaks) && breaks[p] {
			return true
		}
	}
	return false
}

// agreesWithSelections reports whether phrase, spelling span
// [begin,end), matches every selection fully contained in that span on
// the substring the selection covers.
func agreesWithSelections(begin, end int, phrase string, selections []session.Selection) bool {
	runes := []rune(phrase)
	if len(runes) != end-begin {
		return true
	}
	for _, s := range selections {
		if begin <= s.From && s.To <= end {
			got := string(runes[s.From-begin : s.To-begin])
			if got != s.Phrase {
				return false
			}
		}
	}
	return true
}

// consistent reports whether [begin,end) may be considered as a span
// at all, given the selections already fixed by the user: a selection
// fully inside the span must be honored by every surviving candidate
// (checked by the caller when filtering phrase strings, not here,
// since that requires per-candidate substring comparison); a selection
// that merely crosses the span's boundary rules the whole span out.
func consistent(begin, end int, selections []session.Selection) bool {
	for _, s := range selections {
		contained := begin <= s.From && s.To <= end
		if contained {
			continue
		}
		intersects := s.From < end && begin < s.To
		if intersects {
			return false
		}
	}
	return true
}

// sortDescending orders records by descending frequency, stable on
// ties so dictionary iteration order (itself descending-frequency) is
// preserved among equal-frequency user/dict entries.
func sortDescending(records []dict.PhraseRecord) {
	for i := 1; i < len(records); i++ {
		for j := i; j > 0 && records[j].Freq > records[j-1].Freq; j-- {
			records[j], records[j-1] = records[j-1], records[j]
		}
	}
}
