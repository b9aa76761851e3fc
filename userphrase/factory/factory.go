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

// Package factory selects a userphrase.Store backend from configuration,
// the way db/factory.NewDatabaseWriter switches on a configured database
// type.
package factory

import (
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/chewing-go/core/cnf"
	"github.com/chewing-go/core/userphrase"
	"github.com/chewing-go/core/userphrase/flatstore"
	"github.com/chewing-go/core/userphrase/sqlstore"
)

// New opens the store named by conf against userPath (the resolved
// CHEWING_USER_PATH directory). On any failure to open the configured
// backend, it logs at ERROR and returns a userphrase.NullStore rather
// than an error, so session creation never aborts for want of a
// persistent store.
func New(conf cnf.UserStoreConf, userPath string) userphrase.Store {
	switch conf.Driver {
	case "sqlite":
		dsn := conf.DSN
		if dsn == "" {
			dsn = filepath.Join(userPath, "chewing.sqlite3")
		}
		store, err := sqlstore.Open("sqlite3", dsn)
		if err != nil {
			log.Error().Err(err).Msg("userphrase/factory: failed to open sqlite store, falling back to null store")
			return userphrase.NullStore{}
		}
		return store
	case "mysql":
		store, err := sqlstore.Open("mysql", conf.DSN)
		if err != nil {
			log.Error().Err(err).Msg("userphrase/factory: failed to open mysql store, falling back to null store")
			return userphrase.NullStore{}
		}
		return store
	case "":
		path := filepath.Join(userPath, "chewing.dat")
		store, err := flatstore.Open(path)
		if err != nil {
			log.Error().Err(err).Msg("userphrase/factory: failed to open flat store, falling back to null store")
			return userphrase.NullStore{}
		}
		return store
	default:
		log.Error().Str("driver", conf.Driver).Msg("userphrase/factory: unknown store driver, falling back to null store")
		return userphrase.NullStore{}
	}
}
