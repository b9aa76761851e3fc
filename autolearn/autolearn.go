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

// Package autolearn updates the user phrase store from a committed
// cover: multi-character intervals are learned directly, runs of
// single-character intervals are accumulated into synthetic phrases,
// and existing entries have their frequency adjusted by how long it
// has been since they were last used.
package autolearn

import (
	"fmt"

	"github.com/chewing-go/core/graph"
	"github.com/chewing-go/core/phoneme"
	"github.com/chewing-go/core/userphrase"
)

// Frequency-update constants, reproduced verbatim from libchewing's
// userphrase-sql.c / userphrase-private.h.
const (
	shortIncreaseFreq = 10
	mediumIncreaseFreq = 5
	longDecreaseFreq   = 10
	maxAllowFreq       = 99999999
)

// hardBreakWords never accumulate into a synthetic multi-character
// phrase on their own; they always flush the run they would otherwise
// extend, and are still learned as a single-character entry. Copied
// verbatim from libchewing's BREAK_WORD table (chewingutil.c).
var hardBreakWords = map[string]struct{}{
	"是": {}, "的": {}, "了": {}, "不": {},
	"也": {}, "而": {}, "你": {}, "我": {},
	"他": {}, "與": {}, "它": {}, "她": {},
	"其": {}, "就": {}, "和": {}, "或": {},
	"們": {}, "性": {}, "員": {}, "子": {},
	"上": {}, "下": {}, "中": {}, "內": {},
	"外": {}, "化": {}, "者": {}, "家": {},
	"兒": {}, "年": {}, "月": {}, "日": {},
	"時": {}, "分": {}, "秒": {}, "街": {},
	"路": {}, "村": {},
	"在": {},
}

// updateFreq reproduces UpdateFreq from userphrase-sql.c exactly.
func updateFreq(freq, maxFreq, origFreq, deltaTime int) int {
	switch {
	case deltaTime < 4000:
		var delta int
		if freq >= maxFreq {
			delta = min((maxFreq-origFreq)/5+1, shortIncreaseFreq)
		} else {
			delta = max((maxFreq-origFreq)/5+1, shortIncreaseFreq)
		}
		return min(freq+delta, maxAllowFreq)
	case deltaTime < 50000:
		var delta int
		if freq >= maxFreq {
			delta = min((maxFreq-origFreq)/10+1, mediumIncreaseFreq)
		} else {
			delta = max((maxFreq-origFreq)/10+1, mediumIncreaseFreq)
		}
		return min(freq+delta, maxAllowFreq)
	default:
		delta := max((freq-origFreq)/5, longDecreaseFreq)
		return max(freq-delta, origFreq)
	}
}

// Learn applies §4.10's two accumulation rules to cover's intervals
// and persists the result to store, stamping lifetime as the entries'
// last-used time.
func Learn(cover graph.Cover, store userphrase.Store, seq phoneme.Seq, lifetime int) error {
	var run []graph.Interval

	flush := func() error {
		if len(run) == 0 {
			return nil
		}
		defer func() { run = nil }()
		if len(run) == 1 {
			return upsertInterval(store, seq, run[0], lifetime)
		}
		return upsertSynthetic(store, seq, run, lifetime)
	}

	for _, iv := range cover.Intervals {
		switch {
		case iv.Len() >= 2:
			if err := flush(); err != nil {
				return err
			}
			if err := upsertInterval(store, seq, iv, lifetime); err != nil {
				return err
			}
		case isHardBreak(iv.Phrase):
			if err := flush(); err != nil {
				return err
			}
			if err := upsertInterval(store, seq, iv, lifetime); err != nil {
				return err
			}
		default:
			if len(run) > 0 && run[len(run)-1].To != iv.From {
				if err := flush(); err != nil {
					return err
				}
			}
			run = append(run, iv)
		}
	}
	return flush()
}

func isHardBreak(phrase string) bool {
	_, ok := hardBreakWords[phrase]
	return ok
}

func upsertInterval(store userphrase.Store, seq phoneme.Seq, iv graph.Interval, lifetime int) error {
	return upsert(store, seq[iv.From:iv.To], iv.Phrase, int(iv.Freq), lifetime)
}

func upsertSynthetic(store userphrase.Store, seq phoneme.Seq, run []graph.Interval, lifetime int) error {
	var phrase string
	from, to := run[0].From, run[0].To
	for _, iv := range run {
		phrase += iv.Phrase
		if iv.To > to {
			to = iv.To
		}
	}
	return upsert(store, seq[from:to], phrase, 1, lifetime)
}

// upsert inserts or frequency-adjusts one (span, phrase) entry.
// defaultFreq seeds orig_freq/user_freq/max_freq on first insert — the
// dictionary frequency the interval carried when the cover was built,
// or 1 for a synthetic run that never resolved to a dictionary entry.
func upsert(store userphrase.Store, span phoneme.Seq, phrase string, defaultFreq, lifetime int) error {
	existing, ok := store.Lookup(span, phrase)
	if !ok {
		maxFreq := defaultFreq
		if e, ok := store.FirstByPhone(span); ok {
			maxFreq = max(maxFreq, e.UserFreq)
			for {
				e, ok = store.NextByPhone()
				if !ok {
					break
				}
				maxFreq = max(maxFreq, e.UserFreq)
			}
		}
		return store.Put(userphrase.Entry{
			Seq: span, Phrase: phrase,
			Time: lifetime, UserFreq: defaultFreq, MaxFreq: maxFreq, OrigFreq: defaultFreq,
		})
	}

	deltaTime := lifetime - existing.Time
	newFreq := updateFreq(existing.UserFreq, existing.MaxFreq, existing.OrigFreq, deltaTime)
	updated := *existing
	updated.UserFreq = newFreq
	updated.Time = lifetime
	if err := store.Put(updated); err != nil {
		return fmt.Errorf("autolearn: updating %q: %w", phrase, err)
	}
	return nil
}
