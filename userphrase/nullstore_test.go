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

package userphrase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chewing-go/core/phoneme"
)

func TestNullStoreNeverFails(t *testing.T) {
	var s NullStore

	assert.NoError(t, s.Begin())
	assert.NoError(t, s.Upsert(phoneme.Seq{1}, "x", 1))
	assert.NoError(t, s.Put(Entry{Phrase: "x"}))
	assert.NoError(t, s.Remove(phoneme.Seq{1}, "x"))
	assert.NoError(t, s.End(true))
	assert.NoError(t, s.Close())

	_, ok := s.Lookup(phoneme.Seq{1}, "x")
	assert.False(t, ok)

	var count int
	for range s.Enumerate() {
		count++
	}
	assert.Zero(t, count)
}
