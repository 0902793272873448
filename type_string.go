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

import "strings"

// Tag renders t as its canonical type tag: the compact, separator-free form
// that Parse accepts and that two Types compare equal by. Tag is stable
// across Go versions and processes, so it is safe to persist or send over
// the wire as a type signature.
func (t Type) Tag() string {
	var b strings.Builder
	t.writeTag(&b)
	return b.String()
}

func (t Type) writeTag(b *strings.Builder) {
	switch t.variant {
	case VariantEmpty:
		b.WriteByte('_')
	case VariantBool:
		b.WriteByte('b')
	case VariantInt:
		b.WriteByte('i')
	case VariantWord:
		b.WriteByte('w')
	case VariantStr:
		b.WriteByte('s')
	case VariantValue:
		b.WriteByte('v')
		b.WriteString(t.formatUnits())
	case VariantComplex:
		b.WriteByte('c')
		b.WriteString(t.formatUnits())
	case VariantTime:
		b.WriteByte('t')
	case VariantList:
		b.WriteByte('*')
		if t.depth != 1 {
			b.WriteString(itoa(t.depth))
		}
		t.elem.writeTag(b)
	case VariantCluster:
		b.WriteByte('(')
		for _, c := range t.children {
			c.writeTag(b)
		}
		b.WriteByte(')')
	case VariantError:
		b.WriteByte('E')
		if t.payload != nil {
			t.payload.writeTag(b)
		}
	}
}

// Pretty renders t in the loose, human-oriented form used in documentation
// and error messages: named variants, comma-separated cluster members, and
// a depth prefix only when it's more than one dimension, e.g.
// "*2(int, string)".
func (t Type) Pretty() string {
	var b strings.Builder
	t.writePretty(&b)
	return b.String()
}

func (t Type) writePretty(b *strings.Builder) {
	switch t.variant {
	case VariantEmpty:
		b.WriteString("none")
	case VariantBool:
		b.WriteString("bool")
	case VariantInt:
		b.WriteString("int")
	case VariantWord:
		b.WriteString("word")
	case VariantStr:
		b.WriteString("string")
	case VariantValue:
		b.WriteString("value")
		if t.hasUnits {
			b.WriteString(" [" + t.units + "]")
		}
	case VariantComplex:
		b.WriteString("complex")
		if t.hasUnits {
			b.WriteString(" [" + t.units + "]")
		}
	case VariantTime:
		b.WriteString("time")
	case VariantList:
		b.WriteByte('*')
		if t.depth != 1 {
			b.WriteString(itoa(t.depth))
		}
		t.elem.writePretty(b)
	case VariantCluster:
		b.WriteByte('(')
		for i, c := range t.children {
			if i > 0 {
				b.WriteString(", ")
			}
			c.writePretty(b)
		}
		b.WriteByte(')')
	case VariantError:
		b.WriteString("error")
		if t.payload != nil {
			b.WriteByte('(')
			t.payload.writePretty(b)
			b.WriteByte(')')
		}
	}
}

// String implements fmt.Stringer by returning t's canonical tag.
func (t Type) String() string { return t.Tag() }
