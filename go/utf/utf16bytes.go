package utf

import (
	"github.com/jr1221/utf-convert/go/utf/internal/window"
)

// HasUTF16BEBOM reports whether p begins with the big-endian UTF-16 byte
// order mark 0xFE 0xFF.
func HasUTF16BEBOM(p []byte) bool {
	return len(p) >= 2 && p[0] == 0xFE && p[1] == 0xFF
}

// HasUTF16LEBOM reports whether p begins with the little-endian UTF-16 byte
// order mark 0xFF 0xFE.
func HasUTF16LEBOM(p []byte) bool {
	return len(p) >= 2 && p[0] == 0xFF && p[1] == 0xFE
}

// HasUTF16BOM reports whether p begins with a UTF-16 byte order mark of
// either byte order.
func HasUTF16BOM(p []byte) bool {
	return HasUTF16BEBOM(p) || HasUTF16LEBOM(p)
}

// Outcomes of pulling one 16-bit unit out of a byte cursor.
const (
	unitOK = iota
	unitEOF
	unitTruncated
)

func nextUTF16Unit(it *window.Iter[byte], order byteOrder) (rune, int, int) {
	if !it.MoveNext() {
		return 0, it.Position(), unitEOF
	}
	start := it.Position() - 1
	b0 := it.Current()
	if !it.MoveNext() {
		// Odd trailing byte; it stays consumed.
		return 0, start, unitTruncated
	}
	b1 := it.Current()
	if order == littleEndian {
		return rune(b1)<<8 | rune(b0), start, unitOK
	}
	return rune(b0)<<8 | rune(b1), start, unitOK
}

// decodeRuneUTF16Bytes mirrors decodeRuneUTF16 but treats each pair of bytes
// in the given byte order as one unit, so error positions are byte indices.
func decodeRuneUTF16Bytes(it *window.Iter[byte], order byteOrder, pol Policy) (rune, bool, error) {
	u, start, st := nextUTF16Unit(it, order)
	switch st {
	case unitEOF:
		return 0, false, nil
	case unitTruncated:
		return malformed(encodingUTF16, start, pol)
	}

	if u < highSurrogateMin || u > lowSurrogateMax {
		return u, true, nil
	}
	if u >= lowSurrogateMin {
		return malformed(encodingUTF16, start, pol)
	}
	u2, _, st2 := nextUTF16Unit(it, order)
	if st2 != unitOK {
		return malformed(encodingUTF16, start, pol)
	}
	if u2 < lowSurrogateMin || u2 > lowSurrogateMax {
		if u2 >= highSurrogateMin && u2 <= highSurrogateMax {
			// Both bytes of the unit go back; it starts the next pair.
			it.Backup(2)
		}
		return malformed(encodingUTF16, start, pol)
	}
	return (u-highSurrogateMin)<<10 + (u2 - lowSurrogateMin) + surrogateSelf, true, nil
}

// DecodeUTF16Bytes converts UTF-16 encoded bytes into codepoints. A leading
// byte order mark selects the byte order and is stripped; without one the
// input is taken as big-endian.
func DecodeUTF16Bytes(src []byte, pol Policy) ([]rune, error) {
	it := window.New(src)
	order := bigEndian
	switch {
	case HasUTF16BEBOM(src):
		it.Skip(2)
	case HasUTF16LEBOM(src):
		order = littleEndian
		it.Skip(2)
	}
	return decodeAll(len(src)/2, func() (rune, bool, error) {
		return decodeRuneUTF16Bytes(it, order, pol)
	})
}

// DecodeUTF16BE converts big-endian UTF-16 encoded bytes into codepoints,
// stripping a leading big-endian byte order mark when stripBOM is set.
func DecodeUTF16BE(src []byte, pol Policy, stripBOM bool) ([]rune, error) {
	it := window.New(src)
	if stripBOM && HasUTF16BEBOM(src) {
		it.Skip(2)
	}
	return decodeAll(len(src)/2, func() (rune, bool, error) {
		return decodeRuneUTF16Bytes(it, bigEndian, pol)
	})
}

// DecodeUTF16LE is DecodeUTF16BE for little-endian input.
func DecodeUTF16LE(src []byte, pol Policy, stripBOM bool) ([]rune, error) {
	it := window.New(src)
	if stripBOM && HasUTF16LEBOM(src) {
		it.Skip(2)
	}
	return decodeAll(len(src)/2, func() (rune, bool, error) {
		return decodeRuneUTF16Bytes(it, littleEndian, pol)
	})
}

// EncodeUTF16Bytes converts codepoints into big-endian UTF-16 encoded bytes
// with a leading byte order mark.
func EncodeUTF16Bytes(cps []rune) []byte {
	return EncodeUTF16BE(cps, true)
}

// EncodeUTF16BE converts codepoints into big-endian UTF-16 encoded bytes,
// optionally prefixed with a byte order mark. Values outside the Unicode
// scalar range are emitted as U+FFFD; encoding never fails.
func EncodeUTF16BE(cps []rune, writeBOM bool) []byte {
	return putUTF16Units(EncodeUTF16(cps), bigEndian, writeBOM)
}

// EncodeUTF16LE is EncodeUTF16BE for little-endian output.
func EncodeUTF16LE(cps []rune, writeBOM bool) []byte {
	return putUTF16Units(EncodeUTF16(cps), littleEndian, writeBOM)
}

func putUTF16Units(units []uint16, order byteOrder, writeBOM bool) []byte {
	size := 2 * len(units)
	if writeBOM {
		size += 2
	}

	out := make([]byte, size)
	n := 0
	if writeBOM {
		if order == littleEndian {
			out[0], out[1] = 0xFF, 0xFE
		} else {
			out[0], out[1] = 0xFE, 0xFF
		}
		n = 2
	}
	for _, u := range units {
		if order == littleEndian {
			out[n], out[n+1] = byte(u), byte(u>>8)
		} else {
			out[n], out[n+1] = byte(u>>8), byte(u)
		}
		n += 2
	}
	return out
}
