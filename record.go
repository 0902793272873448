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

// Record pairs a setting ID with the Data passed to (or returned from) it.
// A Packet carries zero or more Records. Record has no behavior beyond
// construction and field access. It is not comparable with ==, because its
// Data holds slices, and it has no Equal method.
type Record struct {
	ID   uint32
	Data Data
}

// NewRecord constructs a Record.
func NewRecord(id uint32, data Data) Record {
	return Record{ID: id, Data: data}
}
