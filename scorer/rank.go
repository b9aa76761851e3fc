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

package scorer

import (
	"github.com/czcorpus/cnc-gokit/collections"

	"github.com/chewing-go/core/graph"
)

// rankedCover pairs a cover with its precomputed ranking keys so
// Compare never needs to rescan the interval list.
type rankedCover struct {
	cover          graph.Cover
	score          int64
	connectCrosses int
}

// Compare orders by descending score, breaking ties by descending
// connect-crossing count (covers that honor more user Tab-joins sort
// first). Equal covers (same score and crossing count) compare equal,
// which is what lets the tree's unique-value insertion collapse
// rebuilds that produce the identical ranking twice.
func (r *rankedCover) Compare(other collections.Comparable) int {
	o, ok := other.(*rankedCover)
	if !ok {
		return -1
	}
	if r.score != o.score {
		if r.score > o.score {
			return -1
		}
		return 1
	}
	if r.connectCrosses != o.connectCrosses {
		if r.connectCrosses > o.connectCrosses {
			return -1
		}
		return 1
	}
	return 0
}

func connectCrossings(c graph.Cover, connect []bool) int {
	n := 0
	for _, iv := range c.Intervals {
		for p := iv.From + 1; p < iv.To; p++ {
			if p < len(connect) && connect[p] {
				n++
			}
		}
	}
	return n
}

// dominatedBy reports whether every interval of a also appears in b,
// i.e. a's cover is a containment-subset of b's and therefore adds no
// alternative the candidate list doesn't already offer.
func dominatedBy(a, b graph.Cover) bool {
	if len(a.Intervals) > len(b.Intervals) {
		return false
	}
	for _, ia := range a.Intervals {
		found := false
		for _, ib := range b.Intervals {
			if ia.From == ib.From && ia.To == ib.To && ia.Phrase == ib.Phrase {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Rank orders covers by composite score, breaking ties by connect
// crossings, rejecting any cover that an already-kept cover contains
// and evicting any already-kept cover that the new one contains. The
// surviving, ordered set is built with collections.BinTree's
// unique-value insertion exactly as cmd/udex used it for deduplicating
// token-feature variants; containment is handled by a separate first
// pass, and the tree's "unique" collapses covers whose score and
// connect-crossing count tie exactly.
func Rank(covers []graph.Cover, connect []bool) []graph.Cover {
	// First pass: eliminate every cover dominated by another, saving
	// each surviving cover's record the way a new interval, on save,
	// evicts any existing record it contains (§4.7).
	var survivors []graph.Cover
	for _, c := range covers {
		dominated := false
		kept := survivors[:0]
		for _, s := range survivors {
			switch {
			case dominatedBy(s, c):
				// s is redundant now that c subsumes it; drop it.
			case dominatedBy(c, s):
				dominated = true
				kept = append(kept, s)
			default:
				kept = append(kept, s)
			}
		}
		survivors = kept
		if !dominated {
			survivors = append(survivors, c)
		}
	}

	// Second pass: feed survivors into a BinTree for sorted,
	// unique-value insertion, exactly the pattern cmd/udex used to
	// deduplicate token-feature variants — here "unique" collapses
	// covers whose score and connect-crossing count tie exactly.
	tree := new(collections.BinTree[*rankedCover])
	tree.UniqValues = true
	for _, c := range survivors {
		tree.Add(&rankedCover{cover: c, score: Score(c), connectCrosses: connectCrossings(c, connect)})
	}

	ranked := tree.ToSlice()
	out := make([]graph.Cover, len(ranked))
	for i, rc := range ranked {
		out[i] = rc.cover
	}
	return out
}
