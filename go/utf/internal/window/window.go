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

// Package window provides the bounded cursor that every transfer-format
// decoder consumes its code units through. Decoders never index the backing
// slice directly; the cursor keeps the position bookkeeping uniform whether
// the units are bytes or 16-bit values.
package window

// Unit is a fixed-width code unit: a byte for UTF-8/UTF-32 input, a 16-bit
// value for UTF-16 input.
type Unit interface {
	~uint8 | ~uint16
}

// Iter is a forward cursor over a window of code units with one-slot
// pushback. The backing slice is borrowed for the lifetime of the iteration
// and never mutated.
type Iter[U Unit] struct {
	src []U
	pos int // units consumed from the window start
	cur U
}

// New returns a cursor positioned before the first unit of src.
func New[U Unit](src []U) *Iter[U] {
	return &Iter[U]{src: src}
}

// MoveNext advances the cursor by one unit. It returns false when the window
// is exhausted, in which case Current reverts to the zero sentinel.
func (it *Iter[U]) MoveNext() bool {
	if it.pos >= len(it.src) {
		it.cur = 0
		return false
	}
	it.cur = it.src[it.pos]
	it.pos++
	return true
}

// Current returns the unit produced by the last successful MoveNext, or zero
// before the first advance and after exhaustion.
func (it *Iter[U]) Current() U {
	return it.cur
}

// Position returns the number of units consumed from the window start.
func (it *Iter[U]) Position() int {
	return it.pos
}

// Remaining returns the number of units left in the window.
func (it *Iter[U]) Remaining() int {
	return len(it.src) - it.pos
}

// Backup rewinds the cursor by n units so they are produced again by
// subsequent MoveNext calls. Rewinding past the window start is a caller bug;
// the cursor clamps at the start rather than corrupting its state.
func (it *Iter[U]) Backup(n int) {
	if n > it.pos {
		n = it.pos
	}
	it.pos -= n
	if it.pos > 0 {
		it.cur = it.src[it.pos-1]
	} else {
		it.cur = 0
	}
}

// Skip advances the cursor by n units without producing them, clamping at the
// window end. Used to discard a byte order mark before decoding starts.
func (it *Iter[U]) Skip(n int) {
	if n > it.Remaining() {
		n = it.Remaining()
	}
	it.pos += n
	it.cur = 0
}
