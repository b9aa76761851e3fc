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

package sqlstore

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/chewing-go/core/phoneme"
)

const tableName = "userphrase_v1"

// phoneColNames generates the phone_0..phone_{n-1} column name list, the
// way the teacher's generateColNames builds struct_attr-named columns
// out of a configured structure list.
func phoneColNames(n int) []string {
	cols := make([]string, n)
	for i := range cols {
		cols[i] = fmt.Sprintf("phone_%d", i)
	}
	return cols
}

func joinCols(cols []string) string {
	return strings.Join(cols, ", ")
}

// upsertVerb and upsertTail paper over the one point where sqlite3 and
// mysql diverge on "insert or replace by primary key" syntax.
func upsertVerb(driver string) string {
	if driver == "mysql" {
		return "REPLACE INTO"
	}
	return "INSERT OR REPLACE INTO"
}

func upsertTail(driver string, cols []string) string {
	return ""
}

func createSchema(database *sql.DB) error {
	phoneCols := phoneColNames(phoneme.MaxPhoneSeq)
	colDefs := make([]string, len(phoneCols))
	for i, c := range phoneCols {
		colDefs[i] = c + " INTEGER"
	}
	stmt := fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s (
			length INTEGER NOT NULL,
			%s,
			phrase TEXT NOT NULL,
			time INTEGER NOT NULL,
			user_freq INTEGER NOT NULL,
			max_freq INTEGER NOT NULL,
			orig_freq INTEGER NOT NULL,
			PRIMARY KEY (%s, phrase)
		)`,
		tableName, joinCols(colDefs), joinCols(phoneCols),
	)
	_, err := database.Exec(stmt)
	if err != nil {
		return fmt.Errorf("sqlstore: failed to create table %s: %w", tableName, err)
	}
	return nil
}
