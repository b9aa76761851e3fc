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

package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveContainedDropsSubsetSpans(t *testing.T) {
	ivs := []Interval{
		{From: 0, To: 2, Phrase: "測試"},
		{From: 0, To: 1, Phrase: "測"},
		{From: 1, To: 2, Phrase: "試"},
	}
	out := removeContained(ivs)
	assert.Len(t, out, 1)
	assert.Equal(t, "測試", out[0].Phrase)
}

func TestRemoveUnreachableKeepsSoleCoverOfAPosition(t *testing.T) {
	ivs := []Interval{
		{From: 0, To: 1, Phrase: "測"},
		{From: 1, To: 2, Phrase: "試"},
	}
	out := removeUnreachable(ivs, 2)
	assert.Len(t, out, 2)
}

// TestRemoveUnreachableKeepsIntervalsThatOnlyCoexistWithDifferentPartners
// covers a sequence of length 3 where every position is touched by more
// than one interval, but two distinct two-interval covers exist: {S,W}
// and {V,U}. Both multi-phoneme intervals V and W must survive even
// though no position is exclusively theirs.
func TestRemoveUnreachableKeepsIntervalsThatOnlyCoexistWithDifferentPartners(t *testing.T) {
	s := Interval{From: 0, To: 1, Phrase: "S"}
	tv := Interval{From: 1, To: 2, Phrase: "T"}
	u := Interval{From: 2, To: 3, Phrase: "U"}
	v := Interval{From: 0, To: 2, Phrase: "V"}
	w := Interval{From: 1, To: 3, Phrase: "W"}
	ivs := []Interval{s, tv, u, v, w}

	out := removeUnreachable(ivs, 3)
	assert.Len(t, out, 5)
}

func TestBuildBestCoverCoversWholeSequenceWithoutOverlap(t *testing.T) {
	intervals := []Interval{
		{From: 0, To: 2, Phrase: "測試", Freq: 500},
		{From: 0, To: 1, Phrase: "測", Freq: 100},
		{From: 1, To: 2, Phrase: "試", Freq: 100},
	}
	cover := BuildBestCover(intervals, 2)

	pos := 0
	for _, iv := range cover.Intervals {
		assert.Equal(t, pos, iv.From)
		pos = iv.To
	}
	assert.Equal(t, 2, pos)
}

func TestBuildBestCoverPrefersLongerHigherFrequencyInterval(t *testing.T) {
	intervals := []Interval{
		{From: 0, To: 2, Phrase: "測試", Freq: 500},
		{From: 0, To: 1, Phrase: "測", Freq: 100},
		{From: 1, To: 2, Phrase: "試", Freq: 100},
	}
	cover := BuildBestCover(intervals, 2)
	assert.Len(t, cover.Intervals, 1)
	assert.Equal(t, "測試", cover.Intervals[0].Phrase)
}

func TestBuildBestCoverFallsBackToSinglePhonemeIntervalsWhenNoneAdmissible(t *testing.T) {
	cover := BuildBestCover(nil, 3)
	assert.Len(t, cover.Intervals, 3)
	for i, iv := range cover.Intervals {
		assert.Equal(t, i, iv.From)
		assert.Equal(t, i+1, iv.To)
	}
}
