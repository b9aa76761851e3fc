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

package preedit

import (
	"fmt"

	"github.com/chewing-go/core/graph"
	"github.com/chewing-go/core/session"
)

// ReleaseHead determines how many leading preedit cells to commit when
// the buffer has grown past max_chi_symbol_len: if the first cell is a
// SYMBOL, every leading SYMBOL cell releases up to (not including) the
// first CHINESE cell; otherwise exactly the first interval of cover
// starting at phoneme position 0 releases. It mutates st, removing the
// released cells, and returns the committed glyphs in cell order.
//
// The caller is responsible for running auto-learn (package autolearn)
// over the released interval(s) before or after this call, since §4.10
// fires on every release-by-max-length event as well as on commit.
func ReleaseHead(st *session.State, cover graph.Cover) (string, error) {
	buf := session.PreeditBuffer{Cells: st.Preedit}
	n := releaseCount(buf, cover)
	if n == 0 {
		return "", fmt.Errorf("preedit: nothing to release")
	}

	var committed []rune
	for i := 0; i < n; i++ {
		committed = append(committed, []rune(st.Preedit[0].Glyph)...)
		if err := st.DeleteCell(0); err != nil {
			return "", fmt.Errorf("preedit: release head: %w", err)
		}
	}
	return string(committed), nil
}

// releaseCount computes how many leading cells ReleaseHead should
// remove, without mutating anything.
func releaseCount(buf session.PreeditBuffer, cover graph.Cover) int {
	if len(buf.Cells) == 0 {
		return 0
	}
	if buf.Cells[0].Kind == session.CellSymbol {
		n := 0
		for _, c := range buf.Cells {
			if c.Kind != session.CellSymbol {
				break
			}
			n++
		}
		return n
	}
	for _, iv := range cover.Intervals {
		if iv.From == 0 {
			return chineseCellIndex(buf.Cells, iv.To-1) + 1
		}
	}
	return 0
}
