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

// decodeRuneUTF16 decodes one codepoint from a cursor over 16-bit code
// units. A high surrogate followed by another high surrogate pushes the
// second unit back so it is reconsidered as the start of the next pair; any
// other failed pairing consumes the offending unit with the surrogate.
func decodeRuneUTF16(it *window.Iter[uint16], pol Policy) (rune, bool, error) {
	if !it.MoveNext() {
		return 0, false, nil
	}
	start := it.Position() - 1
	u := rune(it.Current())

	if u < highSurrogateMin || u > lowSurrogateMax {
		return u, true, nil
	}
	if u >= lowSurrogateMin {
		// Low surrogate with no preceding high surrogate.
		return malformed(encodingUTF16, start, pol)
	}
	if !it.MoveNext() {
		return malformed(encodingUTF16, start, pol)
	}
	u2 := rune(it.Current())
	if u2 < lowSurrogateMin || u2 > lowSurrogateMax {
		if u2 >= highSurrogateMin && u2 <= highSurrogateMax {
			it.Backup(1)
		}
		return malformed(encodingUTF16, start, pol)
	}
	return (u-highSurrogateMin)<<10 + (u2 - lowSurrogateMin) + surrogateSelf, true, nil
}

// DecodeUTF16 converts host-order 16-bit code units into codepoints,
// combining surrogate pairs. Malformed input (lone or misordered
// surrogates) is handled per pol, with error positions counted in units.
func DecodeUTF16(src []uint16, pol Policy) ([]rune, error) {
	it := window.New(src)
	return decodeAll(len(src), func() (rune, bool, error) {
		return decodeRuneUTF16(it, pol)
	})
}

// EncodeUTF16 converts codepoints into 16-bit code units, emitting a
// surrogate pair for codepoints above 0xFFFF. Values outside the Unicode
// scalar range are emitted as U+FFFD; encoding never fails.
func EncodeUTF16(cps []rune) []uint16 {
	size := 0
	for _, cp := range cps {
		if ValidCodepoint(cp) && cp >= surrogateSelf {
			size += 2
		} else {
			size++
		}
	}

	out := make([]uint16, size)
	n := 0
	for _, cp := range cps {
		if !ValidCodepoint(cp) {
			cp = ReplacementChar
		}
		if cp < surrogateSelf {
			out[n] = uint16(cp)
			n++
		} else {
			cp -= surrogateSelf
			out[n] = uint16(highSurrogateMin + cp>>10)
			out[n+1] = uint16(lowSurrogateMin + cp&0x3FF)
			n += 2
		}
	}
	return out
}

// StringToCodepoints bridges a host string into the codepoint domain by
// routing its UTF-16 form through the UTF-16 decoder. This is the single
// seam string-typed callers use to obtain codepoints.
func StringToCodepoints(s string) []rune {
	cps, _ := DecodeUTF16(EncodeUTF16([]rune(s)), Policy{})
	return cps
}

// CodepointsToString is the inverse bridge. Values outside the Unicode
// scalar range become U+FFFD in the result.
func CodepointsToString(cps []rune) string {
	return string(EncodeUTF8(cps))
}
