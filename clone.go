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

// Clone returns a deep copy of d: the clone shares no backing array and no
// *heap.Heap with d, so mutating one through any accessor never affects
// the other. This is the only operation that breaks the view-sharing a
// Data normally has with the value it was navigated from.
func (d Data) Clone() (Data, error) {
	clonedHeap, err := d.heap.Clone()
	if err != nil {
		return Data{}, err
	}
	root := make([]byte, len(d.bytes))
	copy(root, d.bytes)
	return Data{typ: d.typ, bytes: root, offset: d.offset, heap: clonedHeap}, nil
}
