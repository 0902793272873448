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

// Context identifies the session a Packet belongs to: a pair of u32s that,
// together, scope a request to a particular client connection and
// sub-context within it. Context has no behavior beyond construction,
// field access, and equality.
type Context struct {
	High uint32
	Low  uint32
}

// NewContext constructs a Context from its high and low words.
func NewContext(high, low uint32) Context {
	return Context{High: high, Low: low}
}

// IsGlobal reports whether c is the global context (both words zero), the
// one context every connection shares regardless of which sub-context it
// negotiated.
func (c Context) IsGlobal() bool {
	return c.High == 0 && c.Low == 0
}
