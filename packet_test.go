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

package labrad

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/labrad-go/core/internal/hydrant"
)

func TestPacketWriteReadRoundTrip(t *testing.T) {
	h := hydrant.New(7)
	ctx := hydrant.RandomContext()

	r1 := NewRecord(1, h.Generate(mustParse(t, "i")))
	r2 := NewRecord(2, h.Generate(mustParse(t, "(is)")))
	r3 := NewRecord(3, h.Generate(mustParse(t, "*2s")))
	p := NewPacket(ctx, 42, -5, r1, r2, r3)

	var buf bytes.Buffer
	_, err := p.WriteTo(&buf)
	require.NoError(t, err)

	var got Packet
	_, err = got.ReadFrom(&buf)
	require.NoError(t, err)

	require.Equal(t, p.Context, got.Context)
	require.Equal(t, p.Target, got.Target)
	require.Equal(t, p.Request, got.Request)
	require.Len(t, got.Records, 3)

	for i, want := range p.Records {
		require.Equal(t, want.ID, got.Records[i].ID)
		wantFlat, err := want.Data.Flatten()
		require.NoError(t, err)
		gotFlat, err := got.Records[i].Data.Flatten()
		require.NoError(t, err)
		require.Equal(t, wantFlat, gotFlat)
	}
}

func TestPacketWriteFlushesBufferedWriter(t *testing.T) {
	p := NewPacket(NewContext(0, 0), 0, 0)
	var underlying bytes.Buffer
	bw := bufio.NewWriter(&underlying)

	_, err := p.WriteTo(bw)
	require.NoError(t, err)
	require.Equal(t, 20, underlying.Len()) // header only, no records; flushed immediately
}

func TestPacketRecordOrderPreserved(t *testing.T) {
	r1 := NewRecord(1, New(mustParse(t, "i")))
	r2 := NewRecord(2, New(mustParse(t, "i")))
	p := NewPacket(NewContext(0, 0), 0, 0, r1, r2)

	var buf bytes.Buffer
	_, err := p.WriteTo(&buf)
	require.NoError(t, err)

	var got Packet
	_, err = got.ReadFrom(&buf)
	require.NoError(t, err)
	require.Equal(t, []uint32{1, 2}, []uint32{got.Records[0].ID, got.Records[1].ID})
}

func TestContextIsGlobal(t *testing.T) {
	require.True(t, NewContext(0, 0).IsGlobal())
	require.False(t, NewContext(1, 0).IsGlobal())
}
