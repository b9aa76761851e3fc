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

// Package graph builds the interval graph a phoneme sequence admits:
// every admissible (begin,end) span paired with its best phrase, and
// the covers — partitions of [0,N) into non-overlapping intervals —
// those spans can form.
package graph

import (
	"github.com/chewing-go/core/dict"
	"github.com/chewing-go/core/enumerator"
	"github.com/chewing-go/core/phoneme"
	"github.com/chewing-go/core/session"
	"github.com/chewing-go/core/userphrase"
)

// Source tags where an interval's phrase came from.
type Source int

const (
	SourceDictionary Source = iota
	SourceUser
	SourceSelection
)

// MaxPhraseLen bounds how many phonemes a single interval may span.
const MaxPhraseLen = 11

// Interval is one admissible span with the phrase chosen for it.
// Spans reference phoneme positions by index, never by pointer, so a
// cover is just a slice of Intervals with no parent/child linkage to
// maintain.
type Interval struct {
	From, To int
	Phrase   string
	Freq     uint32
	Source   Source
}

// Len returns the phoneme-position span length To-From.
func (iv Interval) Len() int { return iv.To - iv.From }

// Cover is a complete, non-overlapping partition of [0,N).
type Cover struct {
	Intervals []Interval
}

// candidateIntervals enumerates every admissible (begin,end) pair and
// its single highest-frequency phrase, skipping spans that cross a
// break position or that exceed MaxPhraseLen.
func candidateIntervals(seq phoneme.Seq, d *dict.Dict, store userphrase.Store, selections []session.Selection, breaks []bool) []Interval {
	n := len(seq)
	var out []Interval
	for begin := 0; begin < n; begin++ {
		for end := begin + 1; end <= n && end-begin <= MaxPhraseLen; end++ {
			if CrossesBreak(begin, end, breaks) {
				break
			}
			records := enumerator.Phrases(begin, end, seq, d, store, selections, breaks)
			if len(records) == 0 {
				continue
			}
			best := records[0]
			src := SourceDictionary
			if isUserOnly(begin, end, seq, d, best.Phrase) {
				src = SourceUser
			}
			out = append(out, Interval{From: begin, To: end, Phrase: best.Phrase, Freq: best.Freq, Source: src})
		}
	}
	return out
}

// CrossesBreak reports whether a break flag is set at any position
// strictly inside (begin,end) — a break at begin or at end does not
// prevent the span from starting or ending there.
func CrossesBreak(begin, end int, breaks []bool) bool {
	for p := begin + 1; p < end; p++ {
		if p < len(breaks) && breaks[p] {
			return true
		}
	}
	return false
}

// isUserOnly is a light heuristic used only to tag interval Source for
// observers; it does not affect scoring. A phrase the static
// dictionary does not know at all is attributed to the user store.
func isUserOnly(begin, end int, seq phoneme.Seq, d *dict.Dict, phrase string) bool {
	h, ok := d.FindPhrase(seq[begin:end])
	if !ok {
		return true
	}
	for _, r := range d.PhraseRecords(h) {
		if r.Phrase == phrase {
			return false
		}
	}
	return true
}

// BuildAllCover produces the all-cover interactive-editing interval
// list: every admissible span's best phrase, then the contained- and
// unreachable-removal passes.
func BuildAllCover(seq phoneme.Seq, d *dict.Dict, store userphrase.Store, selections []session.Selection, breaks []bool) []Interval {
	ivs := candidateIntervals(seq, d, store, selections, breaks)
	ivs = removeContained(ivs)
	ivs = removeUnreachable(ivs, len(seq))
	return ivs
}

// removeContained drops any interval whose span is a proper subset of
// another admissible interval's span.
func removeContained(ivs []Interval) []Interval {
	out := ivs[:0:0]
	for i, a := range ivs {
		subset := false
		for j, b := range ivs {
			if i == j {
				continue
			}
			if b.From <= a.From && a.To <= b.To && (b.From != a.From || b.To != a.To) {
				subset = true
				break
			}
		}
		if !subset {
			out = append(out, a)
		}
	}
	return out
}

// removeUnreachable drops any interval i such that no complete cover of
// [0,N) can include i. Treating the admissible intervals as edges of a
// DAG over positions 0..N, i survives iff position i.From is reachable
// from 0 by chaining other admissible intervals (forward) and position
// i.To can reach N the same way (backward) — i.e. some full partition
// of [0,N) chains through i.
func removeUnreachable(ivs []Interval, n int) []Interval {
	forward := make([]bool, n+1)
	forward[0] = true
	for p := 0; p < n; p++ {
		if !forward[p] {
			continue
		}
		for _, iv := range ivs {
			if iv.From == p {
				forward[iv.To] = true
			}
		}
	}

	backward := make([]bool, n+1)
	backward[n] = true
	for p := n - 1; p >= 0; p-- {
		for _, iv := range ivs {
			if iv.From == p && backward[iv.To] {
				backward[p] = true
				break
			}
		}
	}

	out := ivs[:0:0]
	for _, iv := range ivs {
		if forward[iv.From] && backward[iv.To] {
			out = append(out, iv)
		}
	}
	return out
}
