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
	"github.com/jr1221/utf-convert/go/utf/internal/window"
)

const (
	utf8OneByteMax   rune = 0x7F
	utf8TwoByteMax   rune = 0x7FF
	utf8ThreeByteMax rune = 0xFFFF
)

// utf8ShortestMax[n] is the largest value representable with n-1
// continuation bytes. A sequence with n continuation bytes whose value does
// not exceed it is overlong. The decoder accepts the legacy 5- and 6-byte
// forms structurally, so the table extends past the 4-byte modern limit;
// their values always fail the MaxCodepoint check regardless.
var utf8ShortestMax = [6]rune{0, 0x7F, 0x7FF, 0xFFFF, 0x1FFFFF, 0x3FFFFFF}

// decodeRuneUTF8 decodes one sequence from the cursor. The boolean is false
// once the window is exhausted. A continuation slot occupied by a byte that
// itself looks like a leading byte (>= 0xC0) is pushed back so it starts the
// next sequence.
func decodeRuneUTF8(it *window.Iter[byte], pol Policy) (rune, bool, error) {
	if !it.MoveNext() {
		return 0, false, nil
	}
	start := it.Position() - 1
	b := it.Current()

	if b < 0x80 {
		return rune(b), true, nil
	}
	if b < 0xC0 {
		// Stray continuation byte with no sequence in progress.
		return malformed(encodingUTF8, start, pol)
	}

	var need int
	var cp rune
	switch {
	case b < 0xE0:
		need, cp = 1, rune(b&0x1F)
	case b < 0xF0:
		need, cp = 2, rune(b&0x0F)
	case b < 0xF8:
		need, cp = 3, rune(b&0x07)
	case b < 0xFC:
		need, cp = 4, rune(b&0x03) // legacy 5-byte form
	case b < 0xFE:
		need, cp = 5, rune(b&0x01) // legacy 6-byte form
	default:
		return malformed(encodingUTF8, start, pol)
	}

	seen := 0
	for seen < need && it.MoveNext() {
		c := it.Current()
		if c&0xC0 != 0x80 {
			if c >= 0xC0 {
				it.Backup(1)
			}
			break
		}
		cp = cp<<6 | rune(c&0x3F)
		seen++
	}

	switch {
	case seen != need: // truncated or bad continuation
	case highSurrogateMin <= cp && cp <= lowSurrogateMax:
	case cp <= utf8ShortestMax[need]: // overlong
	case cp > MaxCodepoint:
	default:
		return cp, true, nil
	}
	return malformed(encodingUTF8, start, pol)
}

// DecodeUTF8 converts UTF-8 encoded bytes into codepoints. Malformed
// sequences are handled per pol: substituted under the zero Policy, or
// aborting with a *DecodeError positioned at the byte where the sequence
// began when pol.Strict is set.
func DecodeUTF8(src []byte, pol Policy) ([]rune, error) {
	it := window.New(src)
	return decodeAll(len(src), func() (rune, bool, error) {
		return decodeRuneUTF8(it, pol)
	})
}

func encodedLenUTF8(cp rune) int {
	switch {
	case !ValidCodepoint(cp):
		return 3 // the U+FFFD sequence
	case cp <= utf8OneByteMax:
		return 1
	case cp <= utf8TwoByteMax:
		return 2
	case cp <= utf8ThreeByteMax:
		return 3
	default:
		return 4
	}
}

// EncodeUTF8 converts codepoints into UTF-8 encoded bytes. Values outside
// the Unicode scalar range are emitted as the U+FFFD sequence 0xEF 0xBF
// 0xBD; encoding never fails. The output is exactly sized in a first pass.
func EncodeUTF8(cps []rune) []byte {
	size := 0
	for _, cp := range cps {
		size += encodedLenUTF8(cp)
	}

	out := make([]byte, size)
	n := 0
	for _, cp := range cps {
		if !ValidCodepoint(cp) {
			cp = ReplacementChar
		}
		switch {
		case cp <= utf8OneByteMax:
			out[n] = byte(cp)
			n++
		case cp <= utf8TwoByteMax:
			out[n] = 0xC0 | byte(cp>>6)
			out[n+1] = 0x80 | byte(cp)&0x3F
			n += 2
		case cp <= utf8ThreeByteMax:
			out[n] = 0xE0 | byte(cp>>12)
			out[n+1] = 0x80 | byte(cp>>6)&0x3F
			out[n+2] = 0x80 | byte(cp)&0x3F
			n += 3
		default:
			out[n] = 0xF0 | byte(cp>>18)
			out[n+1] = 0x80 | byte(cp>>12)&0x3F
			out[n+2] = 0x80 | byte(cp>>6)&0x3F
			out[n+3] = 0x80 | byte(cp)&0x3F
			n += 4
		}
	}
	return out
}
