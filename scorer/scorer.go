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

// Package scorer ranks alternative covers of a phoneme sequence by a
// weighted composite score, breaking ties by how many connect-marked
// positions each cover honors.
package scorer

import "github.com/chewing-go/core/graph"

// Rule is one named, weighted scoring contribution over a whole cover.
type Rule struct {
	Name   string
	Weight int64
	Apply  func(graph.Cover) int64
}

// SumLength is Σ L_i, the total phoneme count covered. It is constant
// across any full cover of the same sequence but is kept as a named
// rule for fidelity to spec §4.7's table.
var SumLength = Rule{Name: "sumLength", Weight: 1000, Apply: func(c graph.Cover) int64 {
	var sum int64
	for _, iv := range c.Intervals {
		sum += int64(iv.Len())
	}
	return sum
}}

// AvgLength is 6·ΣL_i/N_intervals; the factor 6 (lcm(1,2,3)) keeps the
// division exact for the common interval-count cases.
var AvgLength = Rule{Name: "avgLength", Weight: 1000, Apply: func(c graph.Cover) int64 {
	if len(c.Intervals) == 0 {
		return 0
	}
	var sum int64
	for _, iv := range c.Intervals {
		sum += int64(iv.Len())
	}
	return 6 * sum / int64(len(c.Intervals))
}}

// VarianceLength penalizes covers whose interval lengths differ a lot
// from one another, summing the pairwise absolute differences.
var VarianceLength = Rule{Name: "varianceLength", Weight: 100, Apply: func(c graph.Cover) int64 {
	var penalty int64
	for i := 0; i < len(c.Intervals); i++ {
		for j := i + 1; j < len(c.Intervals); j++ {
			d := int64(c.Intervals[i].Len() - c.Intervals[j].Len())
			if d < 0 {
				d = -d
			}
			penalty += d
		}
	}
	return -penalty
}}

// FreqSum sums interval frequency, discounting single-phoneme
// intervals by 512 since those are abundant and otherwise would
// dominate the score.
var FreqSum = Rule{Name: "freqSum", Weight: 1, Apply: func(c graph.Cover) int64 {
	var sum int64
	for _, iv := range c.Intervals {
		f := int64(iv.Freq)
		if iv.Len() == 1 {
			f /= 512
		}
		sum += f
	}
	return sum
}}

// ruleChain is the fixed, ordered set of rules folded into a cover's
// composite score, mirroring how a named-transform chain folds a
// value through each step in turn except the contributions are summed
// rather than piped.
var ruleChain = []Rule{SumLength, AvgLength, VarianceLength, FreqSum}

// Score computes cover's composite score as the weighted sum of every
// rule in the chain.
func Score(cover graph.Cover) int64 {
	var total int64
	for _, r := range ruleChain {
		total += r.Weight * r.Apply(cover)
	}
	return total
}
