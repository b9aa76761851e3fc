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

// Package sqlstore implements userphrase.Store on top of database/sql,
// against either sqlite3 or mysql depending on the driver name it is
// opened with.
package sqlstore

import (
	"database/sql"
	"fmt"
	"iter"
	"strings"

	"github.com/rs/zerolog/log"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"

	"github.com/chewing-go/core/phoneme"
	"github.com/chewing-go/core/userphrase"
)

var selectCols = append(append([]string{"length"}, phoneColNames(phoneme.MaxPhoneSeq)...),
	"phrase", "time", "user_freq", "max_freq", "orig_freq")

// Writer is a userphrase.Store backed by a SQL database.
type Writer struct {
	db     *sql.DB
	tx     *sql.Tx
	driver string

	cursorRows *sql.Rows
}

// Open opens driverName (e.g. "sqlite3" or "mysql") at dsn and ensures
// the userphrase_v1 table exists, mirroring db/sqlite's
// openDatabase+createSchema pairing.
func Open(driverName, dsn string) (*Writer, error) {
	database, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: failed to open %s database: %w", driverName, err)
	}
	if err := database.Ping(); err != nil {
		return nil, fmt.Errorf("sqlstore: failed to reach %s database: %w", driverName, err)
	}
	if err := createSchema(database); err != nil {
		return nil, err
	}
	log.Info().Str("driver", driverName).Msg("sqlstore: opened user phrase store")
	return &Writer{db: database, driver: driverName}, nil
}

func (w *Writer) execer() interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
} {
	if w.tx != nil {
		return w.tx
	}
	return w.db
}

func (w *Writer) FirstByPhone(seq phoneme.Seq) (*userphrase.Entry, bool) {
	where, args := phoneWhere(seq)
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s", joinCols(selectCols), tableName, where)
	rows, err := w.execer().Query(query, args...)
	if err != nil {
		log.Warn().Err(err).Msg("sqlstore: FirstByPhone query failed")
		return nil, false
	}
	w.cursorRows = rows
	return w.NextByPhone()
}

func (w *Writer) NextByPhone() (*userphrase.Entry, bool) {
	if w.cursorRows == nil {
		return nil, false
	}
	if !w.cursorRows.Next() {
		w.cursorRows.Close()
		w.cursorRows = nil
		return nil, false
	}
	e, err := scanEntry(w.cursorRows)
	if err != nil {
		log.Warn().Err(err).Msg("sqlstore: NextByPhone scan failed")
		return nil, false
	}
	return e, true
}

func (w *Writer) Lookup(seq phoneme.Seq, phrase string) (*userphrase.Entry, bool) {
	where, args := phoneWhere(seq)
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s AND phrase = ?", joinCols(selectCols), tableName, where)
	row := w.execer().QueryRow(query, append(args, phrase)...)
	e, err := scanEntryRow(row)
	if err != nil {
		return nil, false
	}
	return e, true
}

func (w *Writer) Upsert(seq phoneme.Seq, phrase string, lifetime int) error {
	if existing, ok := w.Lookup(seq, phrase); ok {
		existing.Time = lifetime
		return w.Put(*existing)
	}
	return w.Put(userphrase.Entry{
		Seq:      seq.Clone(),
		Phrase:   phrase,
		Time:     lifetime,
		UserFreq: 1,
		MaxFreq:  1,
		OrigFreq: 1,
	})
}

func (w *Writer) Put(e userphrase.Entry) error {
	phoneCols := phoneColNames(phoneme.MaxPhoneSeq)
	allCols := append([]string{"length"}, phoneCols...)
	allCols = append(allCols, "phrase", "time", "user_freq", "max_freq", "orig_freq")
	placeholders := make([]string, len(allCols))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	args := append([]any{len(e.Seq)}, phoneArgs(e.Seq)...)
	args = append(args, e.Phrase, e.Time, e.UserFreq, e.MaxFreq, e.OrigFreq)

	query := fmt.Sprintf(
		"%s %s (%s) VALUES (%s)%s",
		upsertVerb(w.driver), tableName, joinCols(allCols), strings.Join(placeholders, ", "),
		upsertTail(w.driver, allCols),
	)
	if _, err := w.execer().Exec(query, args...); err != nil {
		return fmt.Errorf("sqlstore: failed to upsert entry for %q: %w", e.Phrase, err)
	}
	return nil
}

func (w *Writer) Remove(seq phoneme.Seq, phrase string) error {
	where, args := phoneWhere(seq)
	query := fmt.Sprintf("DELETE FROM %s WHERE %s AND phrase = ?", tableName, where)
	_, err := w.execer().Exec(query, append(args, phrase)...)
	if err != nil {
		return fmt.Errorf("sqlstore: failed to remove entry for %q: %w", phrase, err)
	}
	return nil
}

func (w *Writer) Enumerate() iter.Seq[userphrase.Entry] {
	return func(yield func(userphrase.Entry) bool) {
		query := fmt.Sprintf("SELECT %s FROM %s", joinCols(selectCols), tableName)
		rows, err := w.execer().Query(query)
		if err != nil {
			log.Warn().Err(err).Msg("sqlstore: Enumerate query failed")
			return
		}
		defer rows.Close()
		for rows.Next() {
			e, err := scanEntry(rows)
			if err != nil {
				log.Warn().Err(err).Msg("sqlstore: Enumerate scan failed")
				return
			}
			if !yield(*e) {
				return
			}
		}
	}
}

func (w *Writer) Begin() error {
	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("sqlstore: failed to begin transaction: %w", err)
	}
	w.tx = tx
	return nil
}

func (w *Writer) End(commit bool) error {
	if w.tx == nil {
		return nil
	}
	defer func() { w.tx = nil }()
	if commit {
		return w.tx.Commit()
	}
	return w.tx.Rollback()
}

func (w *Writer) Close() error {
	return w.db.Close()
}
