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

// Package utf converts between sequences of Unicode codepoints and the
// UTF-8, UTF-16 and UTF-32 transfer formats, in both directions, with
// configurable handling of malformed input.
//
// Decoders take a slice of code units (bytes, or uint16 values for the
// host-unit UTF-16 path) and a Policy; the slice is the decode window and is
// never mutated. Under the zero Policy every malformed sequence becomes one
// replacement codepoint and decoding continues; under a strict Policy the
// first malformed sequence aborts the call with a *DecodeError positioned at
// the unit where the sequence began. Encoders never fail: codepoints outside
// the Unicode scalar range are emitted as U+FFFD.
package utf

import "fmt"

const (
	// ReplacementChar is substituted for malformed input when decoding
	// under a non-strict Policy.
	ReplacementChar rune = 0xFFFD

	// MaxCodepoint is the largest valid Unicode scalar value.
	MaxCodepoint rune = 0x10FFFF
)

// The UTF-16 surrogate ranges. 0xD800-0xDBFF encodes the high 10 bits of a
// pair, 0xDC00-0xDFFF the low 10 bits; the codepoint is those 20 bits plus
// 0x10000.
const (
	highSurrogateMin rune = 0xD800
	highSurrogateMax rune = 0xDBFF
	lowSurrogateMin  rune = 0xDC00
	lowSurrogateMax  rune = 0xDFFF
	surrogateSelf    rune = 0x10000
)

// Encoding names as reported by DecodeError.
const (
	encodingUTF8  = "UTF-8"
	encodingUTF16 = "UTF-16"
	encodingUTF32 = "UTF-32"
)

// ValidCodepoint reports whether cp is a Unicode scalar value: within
// [0, MaxCodepoint] and outside the surrogate range. Every codepoint
// surfaced by a decoder satisfies this predicate.
func ValidCodepoint(cp rune) bool {
	return (0 <= cp && cp < highSurrogateMin) || (lowSurrogateMax < cp && cp <= MaxCodepoint)
}

// Policy selects how a decode call treats malformed input. A Policy is
// immutable for the lifetime of the call.
//
// The zero Policy substitutes ReplacementChar for every malformed sequence
// and never fails.
type Policy struct {
	// Replacement, when nonzero, overrides ReplacementChar as the
	// substituted codepoint.
	Replacement rune

	// Strict aborts the call with a *DecodeError at the first malformed
	// sequence. No partial result is returned.
	Strict bool
}

func (p Policy) substitute() rune {
	if p.Replacement != 0 {
		return p.Replacement
	}
	return ReplacementChar
}

// DecodeError reports a malformed sequence encountered under a strict
// Policy.
type DecodeError struct {
	// Encoding is the transfer format being decoded.
	Encoding string

	// Position is the index, in code units from the start of the decoded
	// window, of the unit where the malformed sequence began.
	Position int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed %s sequence at position %d", e.Encoding, e.Position)
}

// malformed routes one malformed sequence through the policy: a positioned
// error under Strict, a substituted codepoint otherwise.
func malformed(encoding string, pos int, pol Policy) (rune, bool, error) {
	if pol.Strict {
		return 0, false, &DecodeError{Encoding: encoding, Position: pos}
	}
	return pol.substitute(), true, nil
}

// decodeAll drains a decode step function into a codepoint slice.
func decodeAll(capHint int, step func() (rune, bool, error)) ([]rune, error) {
	out := make([]rune, 0, capHint)
	for {
		cp, ok, err := step()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, cp)
	}
}
