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
	"github.com/stretchr/testify/require"
)

func TestDecodeUTF8(t *testing.T) {
	testCases := []struct {
		name string
		in   []byte
		want []rune
	}{
		{"empty", nil, []rune{}},
		{"ascii", []byte("abc"), []rune("abc")},
		{"multibyte", []byte("aé€\U0001d11e"), []rune("aé€\U0001d11e")},
		{"stray_continuation", []byte{0x80}, []rune{0xFFFD}},
		{"stray_continuation_between", []byte{'a', 0xBF, 'b'}, []rune{'a', 0xFFFD, 'b'}},
		{"overlong_two_byte", []byte{0xC0, 0x80}, []rune{0xFFFD}},
		{"overlong_three_byte", []byte{0xE0, 0x80, 0x80}, []rune{0xFFFD}},
		{"overlong_four_byte", []byte{0xF0, 0x80, 0x80, 0x80}, []rune{0xFFFD}},
		{"truncated_two_byte", []byte{0xC2}, []rune{0xFFFD}},
		{"truncated_three_byte", []byte{0xE2, 0x82}, []rune{0xFFFD}},
		{"ascii_in_continuation_slot", []byte{0xC2, 0x41}, []rune{0xFFFD}},
		{"lead_in_continuation_slot", []byte{0xC2, 0xC3, 0xA9}, []rune{0xFFFD, 0xE9}},
		{"encoded_surrogate", []byte{0xED, 0xA0, 0x80}, []rune{0xFFFD}},
		{"beyond_max", []byte{0xF4, 0x90, 0x80, 0x80}, []rune{0xFFFD}},
		{"legacy_five_byte", []byte{0xF8, 0x88, 0x80, 0x80, 0x80}, []rune{0xFFFD}},
		{"legacy_six_byte", []byte{0xFC, 0x84, 0x80, 0x80, 0x80, 0x80}, []rune{0xFFFD}},
		{"fe_byte", []byte{0xFE}, []rune{0xFFFD}},
		{"ff_then_ascii", []byte{0xFF, 'A'}, []rune{0xFFFD, 'A'}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeUTF8(tc.in, Policy{})
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeUTF8CustomReplacement(t *testing.T) {
	got, err := DecodeUTF8([]byte{0xFF, 'A'}, Policy{Replacement: '?'})
	require.NoError(t, err)
	assert.Equal(t, []rune("?A"), got)
}

func TestDecodeUTF8Strict(t *testing.T) {
	testCases := []struct {
		name    string
		in      []byte
		wantPos int
	}{
		{"ff_alone", []byte{0xFF}, 0},
		{"overlong_after_ascii", []byte{'a', 'b', 0xC0, 0x80}, 2},
		{"truncated_tail", []byte{'a', 0xE2, 0x82}, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeUTF8(tc.in, Policy{Strict: true})
			assert.Nil(t, got)
			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, "UTF-8", decodeErr.Encoding)
			assert.Equal(t, tc.wantPos, decodeErr.Position)
		})
	}
}

func TestEncodeUTF8(t *testing.T) {
	testCases := []struct {
		name string
		in   []rune
		want []byte
	}{
		{"empty", nil, []byte{}},
		{"ascii", []rune("abc"), []byte("abc")},
		{"length_bands", []rune{0x7F, 0x80, 0x7FF, 0x800, 0xFFFF, 0x10000, 0x10FFFF},
			[]byte("\x7f\xc2\x80\xdf\xbf\xe0\xa0\x80\xef\xbf\xbf\xf0\x90\x80\x80\xf4\x8f\xbf\xbf")},
		{"surrogate_replaced", []rune{0xD800}, []byte{0xEF, 0xBF, 0xBD}},
		{"negative_replaced", []rune{-1}, []byte{0xEF, 0xBF, 0xBD}},
		{"beyond_max_replaced", []rune{0x110000}, []byte{0xEF, 0xBF, 0xBD}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EncodeUTF8(tc.in))
		})
	}
}

func TestUTF8RoundTrip(t *testing.T) {
	for _, s := range sampleStrings {
		cps, err := DecodeUTF8([]byte(s), Policy{Strict: true})
		require.NoError(t, err, "decoding %q", s)
		assert.Equal(t, []rune(s), cps)
		assert.Equal(t, []byte(s), EncodeUTF8(cps), "round trip of %q", s)
	}
}
