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
	"github.com/labrad-go/core/internal/bytesio"
)

// appendFlatten writes d's flattened bytes to buf and returns the extended
// slice. Fixed-width data is copied from d's inline area verbatim;
// variable-width data is read out of d's heap through the inline i32
// sentinel recorded for that slot.
func appendFlatten(buf []byte, d Data) ([]byte, error) {
	t := d.typ
	inline := d.slice()

	if t.IsFixed() {
		return append(buf, inline...), nil
	}

	switch t.variant {
	case VariantStr:
		idx, err := bytesio.ReadInt32(inline, 0)
		if err != nil {
			return nil, &CodecError{Reason: "reading string heap index", Err: err}
		}
		content := d.heap.Get(idx)
		var lenBuf [4]byte
		if err := bytesio.WriteInt32(lenBuf[:], 0, int32(len(content))); err != nil {
			return nil, &CodecError{Reason: "writing string length", Err: err}
		}
		buf = append(buf, lenBuf[:]...)
		buf = append(buf, content...)
		return buf, nil

	case VariantList:
		return appendFlattenList(buf, d)

	case VariantCluster:
		for i, c := range t.children {
			child := Data{typ: c, bytes: d.bytes, offset: d.offset + t.offsets[i], heap: d.heap}
			var err error
			buf, err = appendFlatten(buf, child)
			if err != nil {
				return nil, err
			}
		}
		return buf, nil

	case VariantError:
		code, err := bytesio.ReadInt32(inline, 0)
		if err != nil {
			return nil, &CodecError{Reason: "reading error code", Err: err}
		}
		var codeBuf [4]byte
		_ = bytesio.WriteInt32(codeBuf[:], 0, code)
		buf = append(buf, codeBuf[:]...)

		msgIdx, err := bytesio.ReadInt32(inline, 4)
		if err != nil {
			return nil, &CodecError{Reason: "reading error message heap index", Err: err}
		}
		msg := d.heap.Get(msgIdx)
		var lenBuf [4]byte
		_ = bytesio.WriteInt32(lenBuf[:], 0, int32(len(msg)))
		buf = append(buf, lenBuf[:]...)
		buf = append(buf, msg...)

		if t.payload != nil {
			payload := Data{typ: *t.payload, bytes: d.bytes, offset: d.offset + 8, heap: d.heap}
			buf, err = appendFlatten(buf, payload)
			if err != nil {
				return nil, err
			}
		}
		return buf, nil

	default:
		return nil, &CodecError{Reason: "unrecognized variant " + t.variant.String()}
	}
}

// appendFlattenList writes a List's D shape dimensions followed by its
// element payload: a verbatim bulk copy of the heap slot when the element
// is fixed-width, or a per-element recursive walk when it is not.
func appendFlattenList(buf []byte, d Data) ([]byte, error) {
	t := d.typ
	inline := d.slice()
	shapeBytes := 4 * t.depth
	buf = append(buf, inline[:shapeBytes]...)

	total := 1
	for i := 0; i < t.depth; i++ {
		n, err := bytesio.ReadInt32(inline, 4*i)
		if err != nil {
			return nil, &CodecError{Reason: "reading list shape", Err: err}
		}
		total *= int(n)
	}

	idx, err := bytesio.ReadInt32(inline, shapeBytes)
	if err != nil {
		return nil, &CodecError{Reason: "reading list heap index", Err: err}
	}
	elemBytes := d.heap.Get(idx)

	elem := *t.elem
	if elem.IsFixed() {
		want := total * elem.width
		if len(elemBytes) < want {
			return nil, &CodecError{Reason: "list heap slot shorter than shape implies"}
		}
		return append(buf, elemBytes[:want]...), nil
	}

	for i := 0; i < total; i++ {
		child := Data{typ: elem, bytes: elemBytes, offset: i * elem.width, heap: d.heap}
		buf, err = appendFlatten(buf, child)
		if err != nil {
			return nil, err
		}
	}
	return buf, nil
}
