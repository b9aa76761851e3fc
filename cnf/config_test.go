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

package cnf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFillsDefaults(t *testing.T) {
	c := EngineConf{SystemDictPath: "/usr/share/chewing/dict.dat"}
	require.NoError(t, c.Validate())
	assert.Equal(t, DfltCandPerPage, c.CandPerPage)
	assert.Equal(t, DfltMaxChiSymbolLen, c.MaxChiSymbolLen)
}

func TestValidateRejectsMissingDictPath(t *testing.T) {
	var c EngineConf
	assert.Error(t, c.Validate())
}

func TestValidateRejectsOutOfRangeCandPerPage(t *testing.T) {
	c := EngineConf{SystemDictPath: "x", CandPerPage: 11}
	assert.Error(t, c.Validate())

	c.CandPerPage = 0
	assert.NoError(t, c.Validate())
}

func TestValidateRejectsUnknownStoreDriver(t *testing.T) {
	c := EngineConf{SystemDictPath: "x", UserStore: UserStoreConf{Driver: "postgres"}}
	assert.Error(t, c.Validate())
}

func TestLoadConfRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chewing.json")
	const raw = `{"systemDictPath":"/data/dict.dat","candPerPage":8,"userStore":{"driver":"sqlite","dsn":"user.db"}}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	conf, err := LoadConf(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/dict.dat", conf.SystemDictPath)
	assert.Equal(t, 8, conf.CandPerPage)
	assert.Equal(t, "sqlite", conf.UserStore.Driver)
	assert.True(t, conf.UserStore.IsConfigured())
}

func TestLoadConfMissingFile(t *testing.T) {
	_, err := LoadConf(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestDumpRoundTrip(t *testing.T) {
	c := EngineConf{SystemDictPath: "/data/dict.dat"}
	require.NoError(t, c.Validate())
	data, err := c.Dump()
	require.NoError(t, err)
	assert.Contains(t, string(data), "/data/dict.dat")
}
