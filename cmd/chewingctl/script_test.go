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

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chewing "github.com/chewing-go/core"
	"github.com/chewing-go/core/phoneme"
)

func TestParseScriptMixesBareKeysAndKeywords(t *testing.T) {
	script := []byte("# comment\nh\nk\n4\n\nenter\nesc\narrow:left\nctrlnum:3\n")
	events, err := parseScript(script)
	require.NoError(t, err)
	require.Len(t, events, 7)

	assert.Equal(t, chewing.Bopomofo('h'), events[0])
	assert.Equal(t, chewing.Bopomofo('k'), events[1])
	assert.Equal(t, chewing.Bopomofo('4'), events[2])
	assert.Equal(t, chewing.Enter(), events[3])
	assert.Equal(t, chewing.Esc(), events[4])
	assert.Equal(t, chewing.Arrow(chewing.ArrowLeft), events[5])
	assert.Equal(t, chewing.CtrlNum(3), events[6])
}

func TestParseScriptRejectsUnknownKeyword(t *testing.T) {
	_, err := parseScript([]byte("bogus\n"))
	assert.Error(t, err)
}

func TestParseScriptRejectsMalformedArrow(t *testing.T) {
	_, err := parseScript([]byte("arrow:up\n"))
	assert.Error(t, err)
}

func TestDemoLayoutPrefersFinalOverSharedInitialKey(t *testing.T) {
	field, alt, ok := demoLayout{}.Key('k')
	require.True(t, ok)
	assert.Equal(t, phoneme.Code(0), alt)
	initial, _, final, _ := field.Unpack()
	assert.Equal(t, uint8(0), initial)
	assert.NotEqual(t, uint8(0), final)
}

func TestDemoLayoutRejectsUnboundKey(t *testing.T) {
	_, _, ok := demoLayout{}.Key('Q')
	assert.False(t, ok)
}
