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

// Iterator is one lazy decode traversal. Codepoints are decoded on demand;
// the caller may stop calling Next at any point.
type Iterator struct {
	step func() (rune, bool, error)
	cp   rune
	err  error
	done bool
}

// Next decodes the next codepoint, returning false when the input is
// exhausted or, under a strict Policy, when a malformed sequence is hit; in
// the latter case Err reports it.
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}
	cp, ok, err := it.step()
	if err != nil || !ok {
		it.err = err
		it.done = true
		return false
	}
	it.cp = cp
	return true
}

// Codepoint returns the codepoint produced by the last successful Next.
func (it *Iterator) Codepoint() rune {
	return it.cp
}

// Err returns the decode error that stopped the traversal, if any.
func (it *Iterator) Err() error {
	return it.err
}

// Iterable produces independent lazy decode traversals over one input
// window. Each Iterator call starts a fresh decode bound to the same backing
// slice and Policy; nothing is shared or cached between traversals, so
// consuming an Iterable twice performs the decode twice.
type Iterable struct {
	fresh func() *Iterator
}

// Iterator starts a new traversal from the beginning of the window.
func (s Iterable) Iterator() *Iterator {
	return s.fresh()
}

// Codepoints drains one full traversal.
func (s Iterable) Codepoints() ([]rune, error) {
	it := s.Iterator()
	var out []rune
	for it.Next() {
		out = append(out, it.Codepoint())
	}
	return out, it.Err()
}

// IterateUTF8 returns a restartable lazy view of DecodeUTF8(src, pol).
func IterateUTF8(src []byte, pol Policy) Iterable {
	return Iterable{fresh: func() *Iterator {
		it := window.New(src)
		return &Iterator{step: func() (rune, bool, error) {
			return decodeRuneUTF8(it, pol)
		}}
	}}
}

// IterateUTF16 returns a restartable lazy view of DecodeUTF16(src, pol).
func IterateUTF16(src []uint16, pol Policy) Iterable {
	return Iterable{fresh: func() *Iterator {
		it := window.New(src)
		return &Iterator{step: func() (rune, bool, error) {
			return decodeRuneUTF16(it, pol)
		}}
	}}
}

// IterateUTF16Bytes returns a restartable lazy view of
// DecodeUTF16Bytes(src, pol). The byte order mark is sniffed afresh on each
// traversal.
func IterateUTF16Bytes(src []byte, pol Policy) Iterable {
	return Iterable{fresh: func() *Iterator {
		it := window.New(src)
		order := bigEndian
		switch {
		case HasUTF16BEBOM(src):
			it.Skip(2)
		case HasUTF16LEBOM(src):
			order = littleEndian
			it.Skip(2)
		}
		return &Iterator{step: func() (rune, bool, error) {
			return decodeRuneUTF16Bytes(it, order, pol)
		}}
	}}
}

// IterateUTF32 returns a restartable lazy view of DecodeUTF32(src, pol).
// The byte order mark is sniffed afresh on each traversal.
func IterateUTF32(src []byte, pol Policy) Iterable {
	return Iterable{fresh: func() *Iterator {
		it := window.New(src)
		order := bigEndian
		switch {
		case HasUTF32BEBOM(src):
			it.Skip(4)
		case HasUTF32LEBOM(src):
			order = littleEndian
			it.Skip(4)
		}
		return &Iterator{step: func() (rune, bool, error) {
			return decodeRuneUTF32(it, order, pol)
		}}
	}}
}
