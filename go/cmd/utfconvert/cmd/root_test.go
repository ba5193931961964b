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

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodingValueSet(t *testing.T) {
	var e encodingValue
	require.NoError(t, e.Set("utf16le"))
	assert.Equal(t, encUTF16LE, e)

	err := e.Set("latin1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "latin1")
	assert.Equal(t, encUTF16LE, e, "failed Set leaves the value unchanged")
}

func TestConvertDispatch(t *testing.T) {
	defer func() { fromEnc, toEnc, strict, writeBOM = encUTF8, encUTF8, false, false }()

	fromEnc, toEnc = encUTF8, encUTF32
	cps, err := decode([]byte("a€"))
	require.NoError(t, err)
	out := encode(cps)
	assert.Equal(t, []byte{
		0x00, 0x00, 0xFE, 0xFF,
		0x00, 0x00, 0x00, 'a',
		0x00, 0x00, 0x20, 0xAC,
	}, out)

	fromEnc, toEnc = encUTF32, encUTF16LE
	cps, err = decode(out)
	require.NoError(t, err)
	assert.Equal(t, []byte{'a', 0x00, 0xAC, 0x20}, encode(cps))

	fromEnc, strict = encUTF8, true
	_, err = decode([]byte{0xFF})
	assert.Error(t, err)
}
