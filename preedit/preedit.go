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

// Package preedit fills the session's preedit cells from the current
// best cover and enforces the maximum-length head-release policy.
package preedit

import (
	"github.com/chewing-go/core/graph"
	"github.com/chewing-go/core/session"
)

// Assemble walks cover's intervals and fills the glyph of every
// CHINESE cell from the interval's chosen phrase, then derives the
// display-interval list mapping phoneme spans to the preedit-cell
// spans they occupy (stepping across intervening SYMBOL cells).
func Assemble(cover graph.Cover, st *session.State) session.PreeditBuffer {
	cells := append([]session.PreeditCell(nil), st.Preedit...)

	for _, iv := range cover.Intervals {
		glyphs := []rune(iv.Phrase)
		for offset := 0; offset < iv.Len() && offset < len(glyphs); offset++ {
			ci := chineseCellIndex(cells, iv.From+offset)
			if ci < 0 {
				continue
			}
			cells[ci].Glyph = string(glyphs[offset])
		}
	}

	intervals := make([]session.DisplayInterval, 0, len(cover.Intervals))
	for _, iv := range cover.Intervals {
		cellFrom := chineseCellIndex(cells, iv.From)
		cellTo := chineseCellIndex(cells, iv.To-1) + 1
		if cellFrom < 0 || cellTo <= cellFrom {
			continue
		}
		intervals = append(intervals, session.DisplayInterval{
			CellFrom:  cellFrom,
			CellTo:    cellTo,
			PhoneFrom: iv.From,
			PhoneTo:   iv.To,
		})
	}

	return session.PreeditBuffer{Cells: cells, Intervals: intervals}
}

// chineseCellIndex returns the preedit-cell index of the n-th CHINESE
// cell in cells, or -1 if there aren't that many.
func chineseCellIndex(cells []session.PreeditCell, n int) int {
	seen := 0
	for i, c := range cells {
		if c.Kind == session.CellChinese {
			if seen == n {
				return i
			}
			seen++
		}
	}
	return -1
}
