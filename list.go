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

// SetArrayShape sizes the List navigated to by indices, allocating (or
// reallocating, for a List with a previously-assigned heap slot) a heap
// buffer large enough to hold shape's element count. shape's length must
// equal the List's depth; otherwise SetArrayShape fails with
// ShapeMismatchError. The returned Data is the newly-shaped List, ready for
// per-element Set calls at indices that extend into it.
func SetArrayShape(d Data, shape []int, indices ...int) (Data, error) {
	nav, err := navigate(d, indices)
	if err != nil {
		return Data{}, err
	}
	if nav.typ.variant != VariantList {
		return Data{}, mismatch(pathString(indices), VariantList, nav.typ)
	}
	t := nav.typ
	if len(shape) != t.depth {
		return Data{}, &ShapeMismatchError{Path: pathString(indices), Depth: t.depth, GotShape: len(shape)}
	}

	inline := nav.slice()
	total := 1
	for i, n := range shape {
		if err := bytesio.WriteInt32(inline, 4*i, int32(n)); err != nil {
			return Data{}, &CodecError{Reason: "writing list shape", Err: err}
		}
		total *= n
	}

	elem := *t.elem
	size := total * elem.width

	idx, err := bytesio.ReadInt32(inline, 4*t.depth)
	if err != nil {
		return Data{}, &CodecError{Reason: "reading list heap index", Err: err}
	}
	if idx < 0 {
		idx = nav.heap.Alloc(size)
	} else {
		nav.heap.Set(idx, make([]byte, size))
	}
	if err := bytesio.WriteInt32(inline, 4*t.depth, idx); err != nil {
		return Data{}, &CodecError{Reason: "writing list heap index", Err: err}
	}

	slot := nav.heap.Get(idx)
	fillUnassignedRepeated(slot, elem, total)

	return nav, nil
}

// SetArraySize is a convenience for a depth-1 List: it sizes the list to n
// elements. It fails with ShapeMismatchError if the navigated List's depth
// is not 1.
func SetArraySize(d Data, n int, indices ...int) (Data, error) {
	return SetArrayShape(d, []int{n}, indices...)
}

// fillUnassignedRepeated writes elem's unassigned-slot pattern into each of
// count consecutive elem-sized stretches of buf, so a freshly-shaped
// List's elements start out in the same state New's fixed-width fields do.
func fillUnassignedRepeated(buf []byte, elem Type, count int) {
	if elem.IsFixed() {
		return
	}
	for i := 0; i < count; i++ {
		off := i * elem.width
		fillUnassigned(buf[off:off+elem.width], elem)
	}
}
