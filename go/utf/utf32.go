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

type byteOrder int

const (
	bigEndian byteOrder = iota
	littleEndian
)

// HasUTF32BEBOM reports whether p begins with the big-endian UTF-32 byte
// order mark 0x00 0x00 0xFE 0xFF.
func HasUTF32BEBOM(p []byte) bool {
	return len(p) >= 4 && p[0] == 0x00 && p[1] == 0x00 && p[2] == 0xFE && p[3] == 0xFF
}

// HasUTF32LEBOM reports whether p begins with the little-endian UTF-32 byte
// order mark 0xFF 0xFE 0x00 0x00.
func HasUTF32LEBOM(p []byte) bool {
	return len(p) >= 4 && p[0] == 0xFF && p[1] == 0xFE && p[2] == 0x00 && p[3] == 0x00
}

// HasUTF32BOM reports whether p begins with a UTF-32 byte order mark of
// either byte order.
func HasUTF32BOM(p []byte) bool {
	return HasUTF32BEBOM(p) || HasUTF32LEBOM(p)
}

// decodeRuneUTF32 reassembles one 4-byte group in the given byte order and
// validates it as a Unicode scalar value. A trailing group shorter than 4
// bytes is one malformed sequence that consumes all remaining bytes.
func decodeRuneUTF32(it *window.Iter[byte], order byteOrder, pol Policy) (rune, bool, error) {
	if !it.MoveNext() {
		return 0, false, nil
	}
	start := it.Position() - 1

	var b [4]byte
	b[0] = it.Current()
	for i := 1; i < 4; i++ {
		if !it.MoveNext() {
			return malformed(encodingUTF32, start, pol)
		}
		b[i] = it.Current()
	}

	var v uint32
	if order == littleEndian {
		v = uint32(b[3])<<24 | uint32(b[2])<<16 | uint32(b[1])<<8 | uint32(b[0])
	} else {
		v = uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	}
	if v > uint32(MaxCodepoint) || !ValidCodepoint(rune(v)) {
		return malformed(encodingUTF32, start, pol)
	}
	return rune(v), true, nil
}

// DecodeUTF32 converts UTF-32 encoded bytes into codepoints. A leading byte
// order mark selects the byte order and is stripped; without one the input
// is taken as big-endian.
func DecodeUTF32(src []byte, pol Policy) ([]rune, error) {
	it := window.New(src)
	order := bigEndian
	switch {
	case HasUTF32BEBOM(src):
		it.Skip(4)
	case HasUTF32LEBOM(src):
		order = littleEndian
		it.Skip(4)
	}
	return decodeAll(len(src)/4, func() (rune, bool, error) {
		return decodeRuneUTF32(it, order, pol)
	})
}

// DecodeUTF32BE converts big-endian UTF-32 encoded bytes into codepoints,
// stripping a leading big-endian byte order mark when stripBOM is set.
func DecodeUTF32BE(src []byte, pol Policy, stripBOM bool) ([]rune, error) {
	it := window.New(src)
	if stripBOM && HasUTF32BEBOM(src) {
		it.Skip(4)
	}
	return decodeAll(len(src)/4, func() (rune, bool, error) {
		return decodeRuneUTF32(it, bigEndian, pol)
	})
}

// DecodeUTF32LE is DecodeUTF32BE for little-endian input.
func DecodeUTF32LE(src []byte, pol Policy, stripBOM bool) ([]rune, error) {
	it := window.New(src)
	if stripBOM && HasUTF32LEBOM(src) {
		it.Skip(4)
	}
	return decodeAll(len(src)/4, func() (rune, bool, error) {
		return decodeRuneUTF32(it, littleEndian, pol)
	})
}

// EncodeUTF32 converts codepoints into big-endian UTF-32 encoded bytes with
// a leading byte order mark.
func EncodeUTF32(cps []rune) []byte {
	return EncodeUTF32BE(cps, true)
}

// EncodeUTF32BE converts codepoints into big-endian UTF-32 encoded bytes,
// optionally prefixed with a byte order mark. Values outside the Unicode
// scalar range are emitted as U+FFFD; encoding never fails.
func EncodeUTF32BE(cps []rune, writeBOM bool) []byte {
	return putUTF32(cps, bigEndian, writeBOM)
}

// EncodeUTF32LE is EncodeUTF32BE for little-endian output.
func EncodeUTF32LE(cps []rune, writeBOM bool) []byte {
	return putUTF32(cps, littleEndian, writeBOM)
}

func putUTF32(cps []rune, order byteOrder, writeBOM bool) []byte {
	size := 4 * len(cps)
	if writeBOM {
		size += 4
	}

	out := make([]byte, size)
	n := 0
	if writeBOM {
		if order == littleEndian {
			out[0], out[1] = 0xFF, 0xFE
		} else {
			out[2], out[3] = 0xFE, 0xFF
		}
		n = 4
	}
	for _, cp := range cps {
		if !ValidCodepoint(cp) {
			cp = ReplacementChar
		}
		v := uint32(cp)
		if order == littleEndian {
			out[n], out[n+1], out[n+2], out[n+3] = byte(v), byte(v>>8), byte(v>>16), byte(v>>24)
		} else {
			out[n], out[n+1], out[n+2], out[n+3] = byte(v>>24), byte(v>>16), byte(v>>8), byte(v)
		}
		n += 4
	}
	return out
}
