/*
Copyright 2023 The utf-convert Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package utf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// sampleStrings cover ASCII, Latin, BMP multibyte and supplementary-plane
// codepoints. All are valid UTF-8.
var sampleStrings = []string{
	"",
	"hello, world",
	"héllo wörld",
	"日本語テキスト",
	"\U0001d538\U0001d539ℂ \U0001d11e \U0001f60a",
	"mixed: aé€\U0001d11e\n",
}

func TestValidCodepoint(t *testing.T) {
	testCases := []struct {
		cp   rune
		want bool
	}{
		{0, true},
		{'a', true},
		{0xD7FF, true},
		{0xD800, false},
		{0xDBFF, false},
		{0xDC00, false},
		{0xDFFF, false},
		{0xE000, true},
		{0xFFFD, true},
		{0xFFFF, true},
		{0x10000, true},
		{0x10FFFF, true},
		{0x110000, false},
		{-1, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, ValidCodepoint(tc.cp), "ValidCodepoint(%#x)", tc.cp)
	}
}

func TestDecodeErrorMessage(t *testing.T) {
	err := &DecodeError{Encoding: "UTF-8", Position: 3}
	assert.Equal(t, "malformed UTF-8 sequence at position 3", err.Error())
}

func TestPolicySubstitute(t *testing.T) {
	assert.Equal(t, ReplacementChar, Policy{}.substitute())
	assert.Equal(t, '?', Policy{Replacement: '?'}.substitute())
}
