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

package phoneme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	c := Pack(15, 2, 11, 4) // ㄓㄨㄤˋ
	initial, medial, final, tone := c.Unpack()
	assert.EqualValues(t, 15, initial)
	assert.EqualValues(t, 2, medial)
	assert.EqualValues(t, 11, final)
	assert.EqualValues(t, 4, tone)
}

func TestZeroCodeIsEmptyString(t *testing.T) {
	var c Code
	assert.Empty(t, c.String())
	assert.False(t, c.IsComplete())
}

func TestBopomofoStringRoundTrip(t *testing.T) {
	cases := []string{"ㄘㄜˋ", "ㄕˋ", "ㄌㄩˋ", "ㄓㄨㄥˋ"}
	for _, s := range cases {
		code, err := FromBopomofo(s)
		require.NoError(t, err)
		assert.Equal(t, s, code.String(), "round trip mismatch for %q", s)

		again, err := FromBopomofo(code.String())
		require.NoError(t, err)
		assert.Equal(t, code, again)
	}
}

func TestIsCompleteRejectsSibilantWithIMedial(t *testing.T) {
	// ㄓ (sibilant initial) + ㄧ (i-medial) is not a legal combination.
	c := Pack(15, 1, 0, 1)
	assert.False(t, c.IsComplete())
}

func TestIsCompleteAcceptsPlainFinal(t *testing.T) {
	c := Pack(5, 0, 1, 1) // ㄉㄚ
	assert.True(t, c.IsComplete())
}

func TestFromBopomofoUnrecognizedGlyph(t *testing.T) {
	_, err := FromBopomofo("x")
	assert.Error(t, err)
}

func TestSyllableLen(t *testing.T) {
	code, err := FromBopomofo("ㄘㄜˋ")
	require.NoError(t, err)
	assert.Equal(t, 3, code.SyllableLen())
}
