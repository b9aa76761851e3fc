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
)

// DataPathsEnv and UserPathEnv name the environment variables the engine
// searches before falling back to the configured defaults.
const (
	DataPathsEnv = "CHEWING_PATH"
	UserPathEnv  = "CHEWING_USER_PATH"
)

// IsDir reports whether path names an existing directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile reports whether path names an existing regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ResolveDataPaths returns the ordered list of directories the engine
// should search for the static dictionary, built from the OS
// list-separator-delimited CHEWING_PATH environment variable, falling
// back to dflt when the variable is unset or empty.
func ResolveDataPaths(dflt ...string) []string {
	raw := os.Getenv(DataPathsEnv)
	if raw == "" {
		return dflt
	}
	paths := filepath.SplitList(raw)
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if IsDir(p) {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return dflt
	}
	return out
}

// ResolveUserPath returns the directory the user phrase store should
// live under: CHEWING_USER_PATH if set and usable, otherwise dflt.
func ResolveUserPath(dflt string) string {
	if p := os.Getenv(UserPathEnv); p != "" && IsDir(p) {
		return p
	}
	return dflt
}
