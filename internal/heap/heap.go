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

// Package heap holds the variable-length payloads referenced by a Data
// value's fixed inline area.
//
// It plays the role the teacher library's arena "cold" region plays for
// messages: a side table that is empty until the first variable-width slot
// is written, then grows by one entry per distinct slot and is reused in
// place on every subsequent write to that slot.
package heap

import (
	"github.com/tiendc/go-deepcopy"
)

// Heap is an ordered sequence of byte buffers, indexed by the i32 sentinels
// stored in a Data's inline area. Index -1 (stored inline) means
// "unassigned"; it never denotes a real Heap entry.
type Heap struct {
	slots [][]byte
}

// New returns an empty heap.
func New() *Heap {
	return &Heap{}
}

// Alloc appends a new slot of the given size (initially zeroed) and returns
// its index.
func (h *Heap) Alloc(size int) int32 {
	idx := int32(len(h.slots))
	h.slots = append(h.slots, make([]byte, size))
	return idx
}

// Get returns the slot at idx, or nil if idx is negative (unassigned) or
// out of range. The returned slice aliases the heap's storage; mutating it
// mutates the heap.
func (h *Heap) Get(idx int32) []byte {
	if idx < 0 || int(idx) >= len(h.slots) {
		return nil
	}
	return h.slots[idx]
}

// Set replaces the contents of an existing slot, reusing its index rather
// than growing the heap. idx must have come from a prior Alloc on this
// heap.
func (h *Heap) Set(idx int32, b []byte) {
	h.slots[idx] = b
}

// Len returns the number of allocated slots.
func (h *Heap) Len() int {
	return len(h.slots)
}

// Clone returns a deep copy of h: the returned heap shares no backing
// arrays with h, so mutating one never affects the other.
func (h *Heap) Clone() (*Heap, error) {
	out := &Heap{}
	if len(h.slots) == 0 {
		return out, nil
	}
	if err := deepcopy.Copy(&out.slots, &h.slots); err != nil {
		return nil, err
	}
	return out, nil
}
