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
	"io"

	"github.com/labrad-go/core/internal/heap"
	"github.com/labrad-go/core/internal/trace"
)

// Data is a typed LabRAD value: a Type describing its shape, a fixed-width
// inline byte area holding scalars and variable-width slot indices, and a
// heap holding the actual bytes for any Str, List, or Error payload the
// type contains.
//
// A Data produced by indexing into another (GetData, or any scalar
// accessor) is a view: it shares both the inline backing array and the
// *heap.Heap pointer with its parent, so a Set through the view is visible
// through the parent and vice versa. Clone is the only operation that
// breaks this sharing.
type Data struct {
	typ    Type
	bytes  []byte
	offset int
	heap   *heap.Heap
}

// New allocates a fresh Data of type t: its inline area is sized to t's
// InlineWidth and every variable-width slot sentinel (List heap index,
// Str index, Error message index) is set to -1 ("unassigned"), ready to be
// populated through the accessor API.
func New(t Type) Data {
	buf := make([]byte, t.InlineWidth())
	fillUnassigned(buf, t)
	return Data{typ: t, bytes: buf, offset: 0, heap: heap.New()}
}

// fillUnassigned writes the -1 sentinel into every i32 slot of buf that
// denotes a heap index for t, recursing into Cluster children at their
// precomputed offsets. Fixed scalar bytes are left zeroed.
func fillUnassigned(buf []byte, t Type) {
	switch t.variant {
	case VariantStr:
		putSentinel(buf[0:4])
	case VariantList:
		// shape entries default to 0, a valid empty shape
		putSentinel(buf[4*t.depth : 4*t.depth+4])
	case VariantCluster:
		for i, c := range t.children {
			off := t.offsets[i]
			fillUnassigned(buf[off:off+c.width], c)
		}
	case VariantError:
		putSentinel(buf[4:8])
		if t.payload != nil {
			fillUnassigned(buf[8:8+t.payload.width], *t.payload)
		}
	}
}

func putSentinel(b []byte) {
	for i := range b {
		b[i] = 0xFF
	}
}

// Type returns d's type.
func (d Data) Type() Type { return d.typ }

// Unflatten reads a flattened byte sequence of type t from r and returns
// the Data it represents. It is the exact inverse of Flatten.
func Unflatten(r io.Reader, t Type) (Data, error) {
	trace.Log("unflatten", "type=%s", t.Tag())
	d := New(t)
	if err := unflattenInto(r, d); err != nil {
		return Data{}, err
	}
	return d, nil
}

// Flatten writes d as a self-contained byte sequence: fixed-width data
// verbatim, and the heap contents for every Str/List/Error payload reached
// from d's type, in the type's traversal order.
func (d Data) Flatten() ([]byte, error) {
	trace.Log("flatten", "type=%s", d.typ.Tag())
	var buf []byte
	var err error
	buf, err = appendFlatten(buf, d)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func (d Data) slice() []byte {
	return d.bytes[d.offset : d.offset+d.typ.width]
}
