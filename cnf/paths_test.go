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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDirAndIsFile(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, IsDir(dir))
	assert.False(t, IsFile(dir))
	assert.False(t, IsDir(dir+"/does-not-exist"))
}

func TestResolveDataPathsFallsBackWhenUnset(t *testing.T) {
	t.Setenv(DataPathsEnv, "")
	got := ResolveDataPaths("/usr/share/chewing")
	assert.Equal(t, []string{"/usr/share/chewing"}, got)
}

func TestResolveDataPathsFiltersNonDirectories(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(DataPathsEnv, dir+string(filepath.ListSeparator)+"/nonexistent-chewing-path")
	got := ResolveDataPaths("/fallback")
	assert.Equal(t, []string{dir}, got)
}

func TestResolveUserPathFallsBack(t *testing.T) {
	t.Setenv(UserPathEnv, "")
	assert.Equal(t, "/home/user/.chewing", ResolveUserPath("/home/user/.chewing"))
}
