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

package candidate

import (
	"fmt"

	"github.com/chewing-go/core/session"
)

// OpenSymbols opens the two-level symbol picker at level one, listing
// categories from the injected SymbolTable.
func (c *Controller) OpenSymbols() error {
	if c.symbols == nil {
		return fmt.Errorf("candidate: no symbol table configured")
	}
	c.categories = c.symbols.Categories()
	if len(c.categories) == 0 {
		return fmt.Errorf("candidate: symbol table has no categories")
	}
	c.catIdx = 0
	c.state = SymbolLevel1
	return nil
}

// Categories exposes the level-one category list.
func (c *Controller) Categories() []string { return c.categories }

// ChooseCategory descends into level two, listing the symbols in
// categories[idx].
func (c *Controller) ChooseCategory(idx int) error {
	if c.state != SymbolLevel1 {
		return fmt.Errorf("candidate: not at the symbol category level")
	}
	if idx < 0 || idx >= len(c.categories) {
		return fmt.Errorf("candidate: category index %d out of range", idx)
	}
	c.catIdx = idx
	c.symList = c.symbols.SymbolsIn(c.categories[idx])
	c.state = SymbolLevel2
	return nil
}

// Symbols exposes the level-two symbol list of the chosen category.
func (c *Controller) Symbols() []string { return c.symList }

// ChooseSymbol inserts (or replaces, if key is nonzero and the cursor
// sits on a SYMBOL cell already) the chosen glyph at the cursor and
// closes the picker.
func (c *Controller) ChooseSymbol(st *session.State, idx int, key byte) error {
	if c.state != SymbolLevel2 {
		return fmt.Errorf("candidate: not at the symbol level")
	}
	if idx < 0 || idx >= len(c.symList) {
		return fmt.Errorf("candidate: symbol index %d out of range", idx)
	}
	st.AddSymbol(c.symList[idx], key)
	c.state = Closed
	return nil
}
