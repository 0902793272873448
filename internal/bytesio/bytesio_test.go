// Copyright 2026 The LabRAD-Go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bytesio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInt32RoundTrip(t *testing.T) {
	cases := []int32{0, 1, -1, 42, -42, 1 << 30, -(1 << 30)}
	for _, v := range cases {
		buf := make([]byte, 4)
		require.NoError(t, WriteInt32(buf, 0, v))
		got, err := ReadInt32(buf, 0)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestInt32BigEndianLayout(t *testing.T) {
	buf := make([]byte, 4)
	require.NoError(t, WriteInt32(buf, 0, 1))
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x01}, buf)

	require.NoError(t, WriteInt32(buf, 0, -1))
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, buf)
}

func TestUint32RoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	require.NoError(t, WriteUint32(buf, 0, 0xDEADBEEF))
	got, err := ReadUint32(buf, 0)
	require.NoError(t, err)
	require.Equal(t, uint32(0xDEADBEEF), got)
}

func TestFloat64RoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	require.NoError(t, WriteFloat64(buf, 0, 3.14159))
	got, err := ReadFloat64(buf, 0)
	require.NoError(t, err)
	require.InDelta(t, 3.14159, got, 1e-12)
}

func TestComplex128RoundTrip(t *testing.T) {
	buf := make([]byte, 16)
	v := complex(1.5, -2.5)
	require.NoError(t, WriteComplex128(buf, 0, v))
	got, err := ReadComplex128(buf, 0)
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestBoolRoundTrip(t *testing.T) {
	buf := make([]byte, 1)
	require.NoError(t, WriteBool(buf, 0, true))
	require.Equal(t, byte(1), buf[0])
	got, err := ReadBool(buf, 0)
	require.NoError(t, err)
	require.True(t, got)

	require.NoError(t, WriteBool(buf, 0, false))
	got, err = ReadBool(buf, 0)
	require.NoError(t, err)
	require.False(t, got)
}

func TestShortBufferErrors(t *testing.T) {
	buf := make([]byte, 2)
	_, err := ReadInt32(buf, 0)
	require.Error(t, err)

	err = WriteInt32(buf, 0, 1)
	require.Error(t, err)

	_, err = ReadUint64(buf, -1)
	require.Error(t, err)
}
