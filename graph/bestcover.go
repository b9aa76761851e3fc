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

import "math"

// intervalDPWeight is the per-interval fixed cost subtracted from the
// forward-pass score. Because sum-of-lengths is constant across any
// full cover of [0,N) (it always equals N), the dynamic program's only
// real job is to prefer fewer, longer, higher-frequency intervals —
// exactly what the average-length and variance-penalty rules reward
// globally. A flat per-interval penalty approximates both without
// requiring the DP state to carry the running interval count and
// pairwise length differences those rules are defined over.
const intervalDPWeight = 1400

// BuildBestCover runs the forward DP over every candidate interval and
// returns the highest-scoring full cover of [0,len(seq)).
func BuildBestCover(intervals []Interval, n int) Cover {
	if n == 0 {
		return Cover{}
	}

	const negInf = math.MinInt64
	best := make([]int64, n+1)
	from := make([]int, n+1)
	chosen := make([]Interval, n+1)
	for p := 1; p <= n; p++ {
		best[p] = negInf
	}

	byTo := make(map[int][]Interval, n)
	for _, iv := range intervals {
		byTo[iv.To] = append(byTo[iv.To], iv)
	}

	for p := 1; p <= n; p++ {
		for _, iv := range byTo[p] {
			if best[iv.From] == negInf {
				continue
			}
			candidate := best[iv.From] + localScore(iv)
			if candidate > best[p] {
				best[p] = candidate
				from[p] = iv.From
				chosen[p] = iv
			}
		}
		if best[p] == negInf {
			// No admissible interval ends exactly here; fall back to a
			// single-phoneme interval with no phrase information so the
			// DP always has a path to the end, per §4.6's promise that a
			// best cover always exists for [0,N).
			best[p] = best[p-1]
			from[p] = p - 1
			chosen[p] = Interval{From: p - 1, To: p, Source: SourceDictionary}
		}
	}

	var ivs []Interval
	for p := n; p > 0; p = from[p] {
		ivs = append([]Interval{chosen[p]}, ivs...)
	}
	return Cover{Intervals: ivs}
}

func localScore(iv Interval) int64 {
	freqTerm := int64(iv.Freq)
	if iv.Len() == 1 {
		freqTerm /= 512
	}
	return 1000*int64(iv.Len()) + freqTerm - intervalDPWeight
}
