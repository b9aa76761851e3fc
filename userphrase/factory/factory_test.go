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

package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chewing-go/core/cnf"
	"github.com/chewing-go/core/userphrase"
	"github.com/chewing-go/core/userphrase/flatstore"
)

func TestNewDefaultsToFlatStore(t *testing.T) {
	store := New(cnf.UserStoreConf{}, t.TempDir())
	defer store.Close()

	_, ok := store.(*flatstore.Store)
	require.True(t, ok, "empty driver must select the flat-file store")

	require.NoError(t, store.Upsert(nil, "測", 1))
	e, ok := store.Lookup(nil, "測")
	require.True(t, ok)
	assert.Equal(t, 1, e.Time)
}

func TestNewUnknownDriverFallsBackToNullStore(t *testing.T) {
	store := New(cnf.UserStoreConf{Driver: "postgres"}, t.TempDir())
	_, ok := store.(userphrase.NullStore)
	assert.True(t, ok)
}
