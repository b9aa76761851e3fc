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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chewing-go/core/graph"
	"github.com/chewing-go/core/session"
)

func TestAssembleFillsGlyphsAndComputesIntervals(t *testing.T) {
	st := session.New()
	require.NoError(t, st.AddChinese(0x1111, 0))
	require.NoError(t, st.AddChinese(0x2222, 0))

	cover := graph.Cover{Intervals: []graph.Interval{{From: 0, To: 2, Phrase: "測試"}}}
	buf := Assemble(cover, st)

	require.Len(t, buf.Cells, 2)
	assert.Equal(t, "測", buf.Cells[0].Glyph)
	assert.Equal(t, "試", buf.Cells[1].Glyph)
	require.Len(t, buf.Intervals, 1)
	assert.Equal(t, 0, buf.Intervals[0].CellFrom)
	assert.Equal(t, 2, buf.Intervals[0].CellTo)
}

func TestAssembleSkipsSymbolCellsWhenMappingIntervals(t *testing.T) {
	st := session.New()
	require.NoError(t, st.AddChinese(0x1111, 0))
	st.AddSymbol("，", '<')
	require.NoError(t, st.AddChinese(0x2222, 0))

	cover := graph.Cover{Intervals: []graph.Interval{{From: 0, To: 1, Phrase: "測"}, {From: 1, To: 2, Phrase: "試"}}}
	buf := Assemble(cover, st)

	assert.Equal(t, "測", buf.Cells[0].Glyph)
	assert.Equal(t, "，", buf.Cells[1].Glyph)
	assert.Equal(t, "試", buf.Cells[2].Glyph)
	require.Len(t, buf.Intervals, 2)
	assert.Equal(t, 2, buf.Intervals[1].CellFrom)
	assert.Equal(t, 3, buf.Intervals[1].CellTo)
}

func TestReleaseHeadReleasesFirstIntervalWhenLeadingCellIsChinese(t *testing.T) {
	st := session.New()
	require.NoError(t, st.AddChinese(0x1111, 0))
	require.NoError(t, st.AddChinese(0x2222, 0))
	require.NoError(t, st.AddChinese(0x3333, 0))
	st.Preedit[0].Glyph, st.Preedit[1].Glyph, st.Preedit[2].Glyph = "測", "試", "品"

	cover := graph.Cover{Intervals: []graph.Interval{{From: 0, To: 2, Phrase: "測試"}, {From: 2, To: 3, Phrase: "品"}}}
	committed, err := ReleaseHead(st, cover)
	require.NoError(t, err)
	assert.Equal(t, "測試", committed)
	assert.Len(t, st.Preedit, 1)
	assert.Equal(t, "品", st.Preedit[0].Glyph)
}

func TestReleaseHeadReleasesLeadingSymbolsUntilFirstChineseCell(t *testing.T) {
	st := session.New()
	st.AddSymbol("，", '<')
	st.AddSymbol("。", '>')
	require.NoError(t, st.AddChinese(0x1111, 0))
	st.Preedit[2].Glyph = "測"

	committed, err := ReleaseHead(st, graph.Cover{})
	require.NoError(t, err)
	assert.Equal(t, "，。", committed)
	require.Len(t, st.Preedit, 1)
	assert.Equal(t, "測", st.Preedit[0].Glyph)
}
