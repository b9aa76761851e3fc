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

// Package candidate drives the candidate-picker and symbol-picker
// state machines: computing the avail-length list at the cursor,
// materializing and paging the candidate list for a chosen length, and
// applying a selection back onto the session state.
package candidate

import (
	"fmt"

	"github.com/chewing-go/core/dict"
	"github.com/chewing-go/core/enumerator"
	"github.com/chewing-go/core/graph"
	"github.com/chewing-go/core/session"
	"github.com/chewing-go/core/userphrase"
)

// State is the controller's current picker mode.
type State int

const (
	Idle State = iota
	SelectingWord
	SymbolLevel1
	SymbolLevel2
	Closed
)

// SymbolTable is the external collaborator supplying symbol-picker
// categories and the symbols each one contains; layout/table data is
// out of this module's scope (spec §1), only the picker state machine
// lives here.
type SymbolTable interface {
	Categories() []string
	SymbolsIn(category string) []string
}

// Controller holds the picker's open-session state. The zero value is
// Idle and ready to use.
type Controller struct {
	state State

	cursorFrom int
	avail      []int // candidate lengths at the cursor, in offer order
	availIdx   int

	candidates []dict.PhraseRecord
	page       int
	perPage    int
	rearward   bool

	symbols    SymbolTable
	categories []string
	catIdx     int
	symList    []string
}

// New returns an idle controller. perPage must be in [1,10] (the
// caller validates via cnf.EngineConf); rearward selects the
// phrase_choice_rearward avail-list ordering.
func New(perPage int, rearward bool, symbols SymbolTable) *Controller {
	return &Controller{perPage: perPage, rearward: rearward, symbols: symbols}
}

// State reports the controller's current mode.
func (c *Controller) State() State { return c.state }

// SetPerPage changes the paging width for subsequent Page/PageCount
// calls; it does not re-page candidates already open.
func (c *Controller) SetPerPage(n int) { c.perPage = n }

// SetRearward changes the avail-length ordering direction for the
// next Open call; it does not affect a picker already open.
func (c *Controller) SetRearward(v bool) { c.rearward = v }

// SetSymbolTable replaces the symbol-category collaborator.
func (c *Controller) SetSymbolTable(t SymbolTable) { c.symbols = t }

// Open computes the avail list at the phoneme cursor and opens the
// word picker on the longest available length (or, under rearward,
// the longest length ending at the cursor). A break set anywhere in
// st.Break bounds the avail list the same way it bounds graph spans:
// no offered length may cross it.
func (c *Controller) Open(st *session.State, d *dict.Dict, store userphrase.Store) error {
	cursor := st.PhonemeCursor()
	c.cursorFrom = cursor
	c.avail = availLengths(cursor, len(st.Phoneme), c.rearward, st.Break)
	if len(c.avail) == 0 {
		return fmt.Errorf("candidate: no admissible length at cursor %d", cursor)
	}
	c.availIdx = 0
	c.state = SelectingWord
	c.page = 0
	return c.materialize(st, d, store)
}

func (c *Controller) materialize(st *session.State, d *dict.Dict, store userphrase.Store) error {
	length := c.avail[c.availIdx]
	begin, end := c.spanForLength(length)
	records := enumerator.Phrases(begin, end, st.Phoneme, d, store, st.Selections, st.Break)
	c.candidates = records
	c.page = 0
	return nil
}

// spanForLength returns the [begin,end) phoneme span for the
// currently chosen avail length, anchored forward from the cursor
// normally, or ending at the cursor under rearward mode.
func (c *Controller) spanForLength(length int) (int, int) {
	if c.rearward {
		return c.cursorFrom - length, c.cursorFrom
	}
	return c.cursorFrom, c.cursorFrom + length
}

// availLengths lists candidate phrase lengths at the cursor, longest
// first, bounded by graph.MaxPhraseLen, the sequence length, and the
// nearest break position so no offered length ever spans one — the
// word picker must respect the same "no phrase crosses a break"
// invariant graph candidate spans do.
func availLengths(cursor, n int, rearward bool, breaks []bool) []int {
	var max int
	if rearward {
		max = cursor
		for l := 1; l <= max; l++ {
			if graph.CrossesBreak(cursor-l, cursor, breaks) {
				max = l - 1
				break
			}
		}
	} else {
		max = n - cursor
		for l := 1; l <= max; l++ {
			if graph.CrossesBreak(cursor, cursor+l, breaks) {
				max = l - 1
				break
			}
		}
	}
	if max > graph.MaxPhraseLen {
		max = graph.MaxPhraseLen
	}
	lens := make([]int, 0, max)
	for l := max; l >= 1; l-- {
		lens = append(lens, l)
	}
	return lens
}

// NextLength cycles to the next (shorter) avail length, wrapping.
func (c *Controller) NextLength(st *session.State, d *dict.Dict, store userphrase.Store) error {
	if c.state != SelectingWord {
		return fmt.Errorf("candidate: not selecting a word")
	}
	c.availIdx = (c.availIdx + 1) % len(c.avail)
	return c.materialize(st, d, store)
}

// PrevLength cycles to the previous (longer) avail length, wrapping.
func (c *Controller) PrevLength(st *session.State, d *dict.Dict, store userphrase.Store) error {
	if c.state != SelectingWord {
		return fmt.Errorf("candidate: not selecting a word")
	}
	c.availIdx = (c.availIdx - 1 + len(c.avail)) % len(c.avail)
	return c.materialize(st, d, store)
}

// PageIndex returns the current page's zero-based index.
func (c *Controller) PageIndex() int { return c.page }

// PageCount returns ceil(total/perPage), at least 1.
func (c *Controller) PageCount() int {
	if len(c.candidates) == 0 {
		return 1
	}
	return (len(c.candidates) + c.perPage - 1) / c.perPage
}

// Page returns the slice of candidates on the current page.
func (c *Controller) Page() []dict.PhraseRecord {
	start := c.page * c.perPage
	if start >= len(c.candidates) {
		return nil
	}
	end := start + c.perPage
	if end > len(c.candidates) {
		end = len(c.candidates)
	}
	return c.candidates[start:end]
}

// NextPage rotates to the next page, cyclically.
func (c *Controller) NextPage() { c.page = (c.page + 1) % c.PageCount() }

// PrevPage rotates to the previous page, cyclically.
func (c *Controller) PrevPage() { c.page = (c.page - 1 + c.PageCount()) % c.PageCount() }

// FirstPage jumps to page 0.
func (c *Controller) FirstPage() { c.page = 0 }

// LastPage jumps to the final page.
func (c *Controller) LastPage() { c.page = c.PageCount() - 1 }

// Choose applies the candidate at pageIndex (within the current page)
// to st: any selection overlapping the new span is dropped, the new
// selection is appended, connect flags interior to the span are
// cleared (now implied by the fixed phrase), and the controller
// closes.
func (c *Controller) Choose(st *session.State, pageIndex int) error {
	page := c.Page()
	if pageIndex < 0 || pageIndex >= len(page) {
		return fmt.Errorf("candidate: page index %d out of range", pageIndex)
	}
	rec := page[pageIndex]
	length := c.avail[c.availIdx]
	begin, end := c.spanForLength(length)

	kept := st.Selections[:0:0]
	for _, s := range st.Selections {
		if s.From < end && begin < s.To {
			continue
		}
		kept = append(kept, s)
	}
	kept = append(kept, session.Selection{From: begin, To: end, Phrase: rec.Phrase})
	st.Selections = kept

	for p := begin + 1; p < end; p++ {
		if p < len(st.Connect) {
			st.Connect[p] = false
		}
	}

	c.state = Closed
	return nil
}

// Escape returns the controller to Idle without mutating st, from any
// open picker state.
func (c *Controller) Escape() {
	c.state = Idle
	c.candidates = nil
	c.avail = nil
	c.categories = nil
	c.symList = nil
}

// AvailLengths exposes the current avail list, longest-first order
// preserved, for observers that want to render it.
func (c *Controller) AvailLengths() []int { return append([]int(nil), c.avail...) }
