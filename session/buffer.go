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

package session

// DisplayInterval maps one cover interval's phoneme-position span to
// the preedit-cell span it occupies, once intervening SYMBOL cells are
// accounted for.
type DisplayInterval struct {
	CellFrom, CellTo       int
	PhoneFrom, PhoneTo     int
}

// PreeditBuffer is the realized, displayable form of the current cover:
// every preedit cell's glyph filled in, plus the display-interval list
// the UI uses to highlight phrase boundaries.
type PreeditBuffer struct {
	Cells     []PreeditCell
	Intervals []DisplayInterval
}
