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
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/labrad-go/core/internal/hydrant"
)

func mustParse(t *testing.T, tag string) Type {
	t.Helper()
	typ, err := Parse(tag)
	require.NoError(t, err)
	return typ
}

// TestFlattenScenario1 through 6 reproduce the concrete byte scenarios used
// to pin down the codec's exact framing.
func TestFlattenScenario1Int(t *testing.T) {
	d := New(mustParse(t, "i"))
	require.NoError(t, SetInt(d, 1))
	flat, err := d.Flatten()
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x01}, flat)
}

func TestFlattenScenario2String(t *testing.T) {
	d := New(mustParse(t, "s"))
	require.NoError(t, SetString(d, "ab"))
	flat, err := d.Flatten()
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x02, 'a', 'b'}, flat)
}

func TestFlattenScenario3Cluster(t *testing.T) {
	d := New(mustParse(t, "(bi)"))
	require.NoError(t, SetBool(d, true, 0))
	require.NoError(t, SetInt(d, -1, 1))
	flat, err := d.Flatten()
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0xFF, 0xFF, 0xFF, 0xFF}, flat)
}

func TestFlattenScenario4ListOfInt(t *testing.T) {
	d := New(mustParse(t, "*i"))
	d, err := SetArraySize(d, 3)
	require.NoError(t, err)
	require.NoError(t, SetInt(d, 7, 0))
	require.NoError(t, SetInt(d, 8, 1))
	require.NoError(t, SetInt(d, 9, 2))
	flat, err := d.Flatten()
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x00, 0x00, 0x00, 0x03,
		0x00, 0x00, 0x00, 0x07,
		0x00, 0x00, 0x00, 0x08,
		0x00, 0x00, 0x00, 0x09,
	}, flat)
}

func TestFlattenScenario5NestedListShape(t *testing.T) {
	d := New(mustParse(t, "*2i"))
	d, err := SetArrayShape(d, []int{2, 2})
	require.NoError(t, err)
	require.NoError(t, SetInt(d, 1, 0, 0))
	require.NoError(t, SetInt(d, 2, 0, 1))
	require.NoError(t, SetInt(d, 3, 1, 0))
	require.NoError(t, SetInt(d, 4, 1, 1))
	flat, err := d.Flatten()
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x00, 0x00, 0x00, 0x02,
		0x00, 0x00, 0x00, 0x02,
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x02,
		0x00, 0x00, 0x00, 0x03,
		0x00, 0x00, 0x00, 0x04,
	}, flat)
}

func TestFlattenScenario6Packet(t *testing.T) {
	inner := New(mustParse(t, "i"))
	require.NoError(t, SetInt(inner, 42))
	rec := NewRecord(7, inner)
	p := NewPacket(NewContext(1, 2), 3, 5, rec)

	var buf bytes.Buffer
	n, err := p.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)

	want := []byte{
		0x00, 0x00, 0x00, 0x01, // context.high
		0x00, 0x00, 0x00, 0x02, // context.low
		0x00, 0x00, 0x00, 0x05, // request
		0x00, 0x00, 0x00, 0x03, // target
		0x00, 0x00, 0x00, 0x11, // records_length
		0x00, 0x00, 0x00, 0x07, // record.id
		0x00, 0x00, 0x00, 0x01, 'i', // tag
		0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x2A, // payload
	}
	require.Equal(t, want, buf.Bytes())
}

func TestUnflattenIsInverseOfFlatten(t *testing.T) {
	h := hydrant.New(1)
	tags := []string{"i", "s", "(bi)", "*i", "*2i", "(is)", "*2(is)", "E", "Ei", "v[m/s]", "c", "t"}
	for _, tag := range tags {
		tag := tag
		t.Run(tag, func(t *testing.T) {
			typ := mustParse(t, tag)
			original := h.Generate(typ)
			flat, err := original.Flatten()
			require.NoError(t, err)

			roundTripped, err := Unflatten(bytes.NewReader(flat), typ)
			require.NoError(t, err)

			reflat, err := roundTripped.Flatten()
			require.NoError(t, err)
			require.Equal(t, flat, reflat)
		})
	}
}

func TestEmptyListBoundary(t *testing.T) {
	d := New(mustParse(t, "*i"))
	d, err := SetArraySize(d, 0)
	require.NoError(t, err)
	flat, err := d.Flatten()
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, flat)
}

func TestZeroLengthStringBoundary(t *testing.T) {
	d := New(mustParse(t, "s"))
	require.NoError(t, SetBytes(d, nil))
	flat, err := d.Flatten()
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, flat)
}

func TestSingleChildClusterRoundTrips(t *testing.T) {
	typ := mustParse(t, "(i)")
	d := New(typ)
	require.NoError(t, SetInt(d, 99, 0))
	flat, err := d.Flatten()
	require.NoError(t, err)

	rt, err := Unflatten(bytes.NewReader(flat), typ)
	require.NoError(t, err)
	v, err := GetInt(rt, 0)
	require.NoError(t, err)
	require.Equal(t, int32(99), v)
}

func TestNestedListOfStringsRoundTrips(t *testing.T) {
	typ := mustParse(t, "*2s")
	d := New(typ)
	d, err := SetArrayShape(d, []int{2, 2})
	require.NoError(t, err)
	require.NoError(t, SetString(d, "ab", 0, 0))
	require.NoError(t, SetString(d, "cde", 0, 1))
	require.NoError(t, SetString(d, "", 1, 0))
	require.NoError(t, SetString(d, "z", 1, 1))

	flat, err := d.Flatten()
	require.NoError(t, err)

	rt, err := Unflatten(bytes.NewReader(flat), typ)
	require.NoError(t, err)

	got, err := GetString(rt, 0, 1)
	require.NoError(t, err)
	require.Equal(t, "cde", got)
}

func TestViewCoherence(t *testing.T) {
	d := New(mustParse(t, "(is)"))
	require.NoError(t, SetInt(d, 5, 0))
	require.NoError(t, SetString(d, "hi", 1))

	sub, err := GetData(d, 1)
	require.NoError(t, err)
	require.NoError(t, SetString(sub, "bye"))

	got, err := GetString(d, 1)
	require.NoError(t, err)
	require.Equal(t, "bye", got)

	subFlat, err := sub.Flatten()
	require.NoError(t, err)
	fullFlat, err := d.Flatten()
	require.NoError(t, err)
	require.Equal(t, subFlat, fullFlat[4:])
}

func TestHeapReuseDoesNotGrowLength(t *testing.T) {
	d := New(mustParse(t, "s"))
	require.NoError(t, SetBytes(d, []byte("one")))
	require.NoError(t, SetBytes(d, []byte("two")))
	require.NoError(t, SetBytes(d, []byte("a longer third value")))
	require.Equal(t, 1, d.heap.Len())

	flat, err := d.Flatten()
	require.NoError(t, err)
	rt, err := Unflatten(bytes.NewReader(flat), mustParse(t, "s"))
	require.NoError(t, err)
	got, err := GetBytes(rt)
	require.NoError(t, err)
	require.Equal(t, []byte("a longer third value"), got)
}

func TestCloneIsIndependent(t *testing.T) {
	d := New(mustParse(t, "(is)"))
	require.NoError(t, SetInt(d, 1, 0))
	require.NoError(t, SetString(d, "orig", 1))

	clone, err := d.Clone()
	require.NoError(t, err)

	require.NoError(t, SetString(clone, "changed", 1))

	original, err := GetString(d, 1)
	require.NoError(t, err)
	require.Equal(t, "orig", original)

	changed, err := GetString(clone, 1)
	require.NoError(t, err)
	require.Equal(t, "changed", changed)
}

func TestTypeMismatchError(t *testing.T) {
	d := New(mustParse(t, "i"))
	_, err := GetBool(d)
	require.Error(t, err)
	var terr *TypeMismatchError
	require.ErrorAs(t, err, &terr)
}

func TestNonIndexableTypeError(t *testing.T) {
	d := New(mustParse(t, "i"))
	_, err := GetData(d, 0)
	require.Error(t, err)
	var nerr *NonIndexableTypeError
	require.ErrorAs(t, err, &nerr)
}

func TestPartialIndexErrorTooFewIndices(t *testing.T) {
	d := New(mustParse(t, "*2i"))
	_, err := SetArrayShape(d, []int{2, 2})
	require.NoError(t, err)
	_, err = GetData(d, 0)
	require.Error(t, err)
	var perr *PartialIndexError
	require.ErrorAs(t, err, &perr)
}

func TestPartialIndexErrorOutOfRange(t *testing.T) {
	d := New(mustParse(t, "*i"))
	d, err := SetArraySize(d, 2)
	require.NoError(t, err)
	_, err = GetData(d, 5)
	require.Error(t, err)
	var perr *PartialIndexError
	require.ErrorAs(t, err, &perr)
}

func TestShapeMismatchError(t *testing.T) {
	d := New(mustParse(t, "*2i"))
	_, err := SetArrayShape(d, []int{2})
	require.Error(t, err)
	var serr *ShapeMismatchError
	require.ErrorAs(t, err, &serr)
}

func TestErrorPayloadAccessor(t *testing.T) {
	typ := mustParse(t, "Ei")
	d := New(typ)
	require.NoError(t, SetError(d, 10, "boom"))
	payload, err := ErrorPayload(d)
	require.NoError(t, err)
	require.NoError(t, SetInt(payload, 55))

	code, msg, err := GetError(d)
	require.NoError(t, err)
	require.Equal(t, int32(10), code)
	require.Equal(t, "boom", msg)

	_, err = GetInt(d) // Ei has no cluster indices; payload reached via ErrorPayload only
	require.Error(t, err)
}

func TestErrorPayloadNoneDeclared(t *testing.T) {
	d := New(mustParse(t, "E"))
	_, err := ErrorPayload(d)
	require.Error(t, err)
	var nerr *NonIndexableTypeError
	require.ErrorAs(t, err, &nerr)
}

func TestTimeConsecutiveSlots(t *testing.T) {
	d := New(mustParse(t, "t"))
	require.NoError(t, SetTime(d, Instant{Seconds: 100, Fraction: 200}))
	got, err := GetTime(d)
	require.NoError(t, err)
	require.Equal(t, Instant{Seconds: 100, Fraction: 200}, got)

	flat, err := d.Flatten()
	require.NoError(t, err)
	require.Equal(t, uint64(100), beUint64(flat[0:8]))
	require.Equal(t, uint64(200), beUint64(flat[8:16]))
}

func beUint64(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}
