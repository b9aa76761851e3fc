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

	"github.com/chewing-go/core/phoneme"
	"github.com/chewing-go/core/userphrase"
)

// phoneArgs renders seq as MaxPhoneSeq positional values, 0 beyond its
// length, in phone_0..phone_{n-1} column order. Padding with 0 rather
// than NULL keeps every primary-key column non-NULL, so rows with the
// same (Seq, Phrase) conflict and are replaced.
func phoneArgs(seq phoneme.Seq) []any {
	args := make([]any, phoneme.MaxPhoneSeq)
	for i := range args {
		if i < len(seq) {
			args[i] = int64(seq[i])
		} else {
			args[i] = int64(0)
		}
	}
	return args
}

// phoneWhere builds an exact-match predicate over every phone_N column:
// "= ?" for positions inside seq, "= 0" beyond it.
func phoneWhere(seq phoneme.Seq) (string, []any) {
	clauses := make([]string, phoneme.MaxPhoneSeq)
	var args []any
	for i := 0; i < phoneme.MaxPhoneSeq; i++ {
		col := fmt.Sprintf("phone_%d", i)
		if i < len(seq) {
			clauses[i] = col + " = ?"
			args = append(args, int64(seq[i]))
		} else {
			clauses[i] = col + " = 0"
		}
	}
	where := clauses[0]
	for _, c := range clauses[1:] {
		where += " AND " + c
	}
	return where, args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(rows *sql.Rows) (*userphrase.Entry, error) {
	return scanRow(rows)
}

func scanEntryRow(row *sql.Row) (*userphrase.Entry, error) {
	return scanRow(row)
}

func scanRow(s rowScanner) (*userphrase.Entry, error) {
	var length int
	phoneDest := make([]any, phoneme.MaxPhoneSeq)
	phoneVals := make([]sql.NullInt64, phoneme.MaxPhoneSeq)
	for i := range phoneDest {
		phoneDest[i] = &phoneVals[i]
	}
	var phrase string
	var timeVal, userFreq, maxFreq, origFreq int

	dest := append([]any{&length}, phoneDest...)
	dest = append(dest, &phrase, &timeVal, &userFreq, &maxFreq, &origFreq)
	if err := s.Scan(dest...); err != nil {
		return nil, fmt.Errorf("sqlstore: scan failed: %w", err)
	}

	seq := make(phoneme.Seq, length)
	for i := 0; i < length; i++ {
		seq[i] = phoneme.Code(phoneVals[i].Int64)
	}
	return &userphrase.Entry{
		Seq:      seq,
		Phrase:   phrase,
		Time:     timeVal,
		UserFreq: userFreq,
		MaxFreq:  maxFreq,
		OrigFreq: origFreq,
	}, nil
}
