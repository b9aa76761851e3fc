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

package chewing

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/chewing-go/core/candidate"
	"github.com/chewing-go/core/graph"
)

// debugSnapshot is the JSON shape DebugSnapshot emits: every buffer an
// observer could ask for, gathered into one value for a bug report or
// a chewingctl dump.
type debugSnapshot struct {
	Phoneme      string           `json:"phoneme"`
	Bopomofo     string           `json:"bopomofo"`
	Preedit      []string         `json:"preedit"`
	Cover        []graph.Interval `json:"cover"`
	CursorCells  int              `json:"cursorCells"`
	CandidateOn  bool             `json:"candidateOpen"`
	CommitBuffer string           `json:"commitBuffer"`
	Config       Config           `json:"config"`
}

// DebugSnapshot serializes the session's full observable state to
// indented JSON, ambient tooling the public API never exposed but
// which is invaluable for `chewingctl replay` and bug reports.
func (s *Session) DebugSnapshot() ([]byte, error) {
	glyphs := make([]string, len(s.preeditBuf.Cells))
	for i, c := range s.preeditBuf.Cells {
		glyphs[i] = c.Glyph
	}
	snap := debugSnapshot{
		Phoneme:      s.state.Phoneme.String(),
		Bopomofo:     s.syllable.String(),
		Preedit:      glyphs,
		Cover:        s.cover.Intervals,
		CursorCells:  s.state.CursorCells,
		CandidateOn:  s.candCtl.State() == candidate.SelectingWord || s.candCtl.State() == candidate.SymbolLevel1 || s.candCtl.State() == candidate.SymbolLevel2,
		CommitBuffer: s.commitBuf,
		Config:       s.conf,
	}
	data, err := sonic.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("chewing: marshaling debug snapshot: %w", err)
	}
	return data, nil
}
