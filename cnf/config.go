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

// Package cnf holds the engine's JSON configuration surface: where the
// static dictionary and user phrase store live, which store backend to
// use, and the tunables exposed through the session's validated setters.
package cnf

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

// UserStoreConf selects and parameterizes the user phrase store backend.
type UserStoreConf struct {
	// Driver is "sqlite" or "mysql" for a database/sql backend, or ""
	// for the default CRC-tagged flat-file store. userphrase.NullStore
	// is never selected here — it is the factory's fallback when the
	// configured backend fails to open.
	Driver string `json:"driver"`
	DSN    string `json:"dsn"`
}

// IsConfigured reports whether a database/sql backend was requested.
func (c *UserStoreConf) IsConfigured() bool {
	return c.Driver != ""
}

// EngineConf is the engine's top-level configuration, loaded from JSON.
type EngineConf struct {
	SystemDictPath string        `json:"systemDictPath"`
	UserPhrasePath string        `json:"userPhrasePath,omitempty"`
	UserStore      UserStoreConf `json:"userStore"`

	CandPerPage          int  `json:"candPerPage"`
	MaxChiSymbolLen      int  `json:"maxChiSymbolLen"`
	AutoLearn            bool `json:"autoLearn"`
	PhraseChoiceRearward bool `json:"phraseChoiceRearward"`
	AddPhraseForward     bool `json:"addPhraseForward"`
	SelectAreaLen        int  `json:"selectAreaLen"`

	Verbosity int `json:"verbosity"`
}

const (
	// DfltCandPerPage matches spec's default candidates-per-page.
	DfltCandPerPage = 10

	// DfltMaxChiSymbolLen matches spec's default preedit capacity.
	DfltMaxChiSymbolLen = 16
)

// Validate fills in defaults and rejects configuration that the session
// could never operate under. It does not check filesystem paths exist —
// dict.Open and userphrase/factory.New degrade gracefully on their own.
func (c *EngineConf) Validate() error {
	if c.SystemDictPath == "" {
		return fmt.Errorf("cnf: systemDictPath must not be empty")
	}
	if c.CandPerPage == 0 {
		c.CandPerPage = DfltCandPerPage
	}
	if c.CandPerPage < 1 || c.CandPerPage > 10 {
		return fmt.Errorf("cnf: candPerPage must be within [1,10], got %d", c.CandPerPage)
	}
	if c.MaxChiSymbolLen == 0 {
		c.MaxChiSymbolLen = DfltMaxChiSymbolLen
	}
	if c.MaxChiSymbolLen < 1 {
		return fmt.Errorf("cnf: maxChiSymbolLen must be positive, got %d", c.MaxChiSymbolLen)
	}
	switch c.UserStore.Driver {
	case "", "sqlite", "mysql":
	default:
		return fmt.Errorf("cnf: unknown userStore.driver %q", c.UserStore.Driver)
	}
	return nil
}

// LoadConf reads and parses an EngineConf from confPath, then validates it.
func LoadConf(confPath string) (*EngineConf, error) {
	rawData, err := os.ReadFile(confPath)
	if err != nil {
		return nil, fmt.Errorf("cnf: failed to load config: %w", err)
	}
	var conf EngineConf
	if err := sonic.Unmarshal(rawData, &conf); err != nil {
		return nil, fmt.Errorf("cnf: failed to parse config: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	log.Info().Str("path", confPath).Msg("loaded engine configuration")
	return &conf, nil
}

// Dump serializes conf back to JSON, used by `chewingctl template-conf`.
func (c *EngineConf) Dump() ([]byte, error) {
	return sonic.MarshalIndent(c, "", "  ")
}
