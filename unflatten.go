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

	"github.com/labrad-go/core/internal/bytesio"
)

// unflattenInto reads d's flattened representation from r into d's
// already-allocated inline area and heap.
func unflattenInto(r io.Reader, d Data) error {
	t := d.typ
	inline := d.slice()

	if t.IsFixed() {
		if _, err := io.ReadFull(r, inline); err != nil {
			return &CodecError{Reason: "reading fixed-width data", Err: err}
		}
		return nil
	}

	switch t.variant {
	case VariantStr:
		length, err := readLength(r)
		if err != nil {
			return err
		}
		slot := make([]byte, length)
		if length > 0 {
			if _, err := io.ReadFull(r, slot); err != nil {
				return &CodecError{Reason: "reading string bytes", Err: err}
			}
		}
		idx := d.heap.Alloc(length)
		d.heap.Set(idx, slot)
		return bytesio.WriteInt32(inline, 0, idx)

	case VariantList:
		return unflattenList(r, d)

	case VariantCluster:
		for i, c := range t.children {
			child := Data{typ: c, bytes: d.bytes, offset: d.offset + t.offsets[i], heap: d.heap}
			if err := unflattenInto(r, child); err != nil {
				return err
			}
		}
		return nil

	case VariantError:
		var codeBuf [4]byte
		if _, err := io.ReadFull(r, codeBuf[:]); err != nil {
			return &CodecError{Reason: "reading error code", Err: err}
		}
		code, _ := bytesio.ReadInt32(codeBuf[:], 0)
		if err := bytesio.WriteInt32(inline, 0, code); err != nil {
			return &CodecError{Reason: "writing error code", Err: err}
		}

		length, err := readLength(r)
		if err != nil {
			return err
		}
		msg := make([]byte, length)
		if length > 0 {
			if _, err := io.ReadFull(r, msg); err != nil {
				return &CodecError{Reason: "reading error message", Err: err}
			}
		}
		idx := d.heap.Alloc(length)
		d.heap.Set(idx, msg)
		if err := bytesio.WriteInt32(inline, 4, idx); err != nil {
			return &CodecError{Reason: "writing error message heap index", Err: err}
		}

		if t.payload != nil {
			payload := Data{typ: *t.payload, bytes: d.bytes, offset: d.offset + 8, heap: d.heap}
			return unflattenInto(r, payload)
		}
		return nil

	default:
		return &CodecError{Reason: "unrecognized variant " + t.variant.String()}
	}
}

func readLength(r io.Reader) (int, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, &CodecError{Reason: "reading length prefix", Err: err}
	}
	n, _ := bytesio.ReadInt32(buf[:], 0)
	if n < 0 {
		return 0, &CodecError{Reason: "negative length prefix"}
	}
	return int(n), nil
}

// unflattenList reads a List's D shape dimensions, allocates a heap slot
// sized for its flattened element data, then fills that slot either by a
// bulk read (fixed-width element) or a per-element recursive walk
// (variable-width element).
func unflattenList(r io.Reader, d Data) error {
	t := d.typ
	inline := d.slice()
	shapeBytes := 4 * t.depth

	var shapeBuf [4]byte
	total := 1
	for i := 0; i < t.depth; i++ {
		if _, err := io.ReadFull(r, shapeBuf[:]); err != nil {
			return &CodecError{Reason: "reading list shape", Err: err}
		}
		n, _ := bytesio.ReadInt32(shapeBuf[:], 0)
		if err := bytesio.WriteInt32(inline, 4*i, n); err != nil {
			return &CodecError{Reason: "writing list shape", Err: err}
		}
		total *= int(n)
	}

	elem := *t.elem
	slotSize := total * elem.width
	idx := d.heap.Alloc(slotSize)
	elemBytes := d.heap.Get(idx)

	if elem.IsFixed() {
		if slotSize > 0 {
			if _, err := io.ReadFull(r, elemBytes); err != nil {
				return &CodecError{Reason: "reading list element data", Err: err}
			}
		}
	} else {
		for i := 0; i < total; i++ {
			child := Data{typ: elem, bytes: elemBytes, offset: i * elem.width, heap: d.heap}
			if err := unflattenInto(r, child); err != nil {
				return err
			}
		}
	}

	return bytesio.WriteInt32(inline, shapeBytes, idx)
}
