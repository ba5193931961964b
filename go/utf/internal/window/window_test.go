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

package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterAdvance(t *testing.T) {
	it := New([]byte{0x41, 0x42, 0x43})

	assert.Equal(t, byte(0), it.Current(), "sentinel before the first advance")
	assert.Equal(t, 0, it.Position())
	assert.Equal(t, 3, it.Remaining())

	require.True(t, it.MoveNext())
	assert.Equal(t, byte(0x41), it.Current())
	assert.Equal(t, 1, it.Position())
	assert.Equal(t, 2, it.Remaining())

	require.True(t, it.MoveNext())
	require.True(t, it.MoveNext())
	assert.Equal(t, byte(0x43), it.Current())
	assert.Equal(t, 0, it.Remaining())

	assert.False(t, it.MoveNext())
	assert.Equal(t, byte(0), it.Current(), "sentinel after exhaustion")
	assert.False(t, it.MoveNext())
}

func TestIterBackup(t *testing.T) {
	it := New([]uint16{0xD835, 0xDD37, 0x41})
	require.True(t, it.MoveNext())
	require.True(t, it.MoveNext())

	it.Backup(1)
	assert.Equal(t, 1, it.Position())
	require.True(t, it.MoveNext())
	assert.Equal(t, uint16(0xDD37), it.Current(), "backed-up unit is produced again")
}

func TestIterBackupClampsAtStart(t *testing.T) {
	it := New([]byte{0x41})
	require.True(t, it.MoveNext())

	it.Backup(5)
	assert.Equal(t, 0, it.Position())
	assert.Equal(t, byte(0), it.Current())
	require.True(t, it.MoveNext())
	assert.Equal(t, byte(0x41), it.Current())
}

func TestIterSkip(t *testing.T) {
	it := New([]byte{0x00, 0x00, 0xFE, 0xFF, 0x41})

	it.Skip(4)
	assert.Equal(t, 4, it.Position())
	assert.Equal(t, 1, it.Remaining())
	require.True(t, it.MoveNext())
	assert.Equal(t, byte(0x41), it.Current())

	it.Skip(10)
	assert.Equal(t, 0, it.Remaining())
	assert.False(t, it.MoveNext())
}
