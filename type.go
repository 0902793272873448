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

// Package labrad implements the LabRAD wire protocol's type system, data
// model, and packet framing: a closed algebra of type tags, a flatten and
// unflatten codec between that algebra and a byte-oriented representation
// with a fixed inline area backed by a variable-width heap, and the packet
// envelope instruments and managers exchange over the wire.
package labrad

import (
	"strconv"
)

// Variant names one of the LabRAD algebra's closed set of type constructors.
type Variant int

const (
	// VariantEmpty is the unit type, written "_" in a tag.
	VariantEmpty Variant = iota
	VariantBool
	VariantInt
	VariantWord
	VariantStr
	VariantValue
	VariantComplex
	VariantTime
	VariantList
	VariantCluster
	VariantError
)

func (v Variant) String() string {
	switch v {
	case VariantEmpty:
		return "Empty"
	case VariantBool:
		return "Bool"
	case VariantInt:
		return "Int"
	case VariantWord:
		return "Word"
	case VariantStr:
		return "Str"
	case VariantValue:
		return "Value"
	case VariantComplex:
		return "Complex"
	case VariantTime:
		return "Time"
	case VariantList:
		return "List"
	case VariantCluster:
		return "Cluster"
	case VariantError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Type is an immutable value describing one node of the LabRAD type
// algebra. The zero Type is VariantEmpty.
//
// Rather than mirror the class-per-variant hierarchy the algebra suggests,
// Type collapses every variant into one tagged-union struct, the way the
// teacher library collapses every descriptor kind into a single table row:
// cheap to copy, cheap to compare by recomputing its canonical Tag rather
// than by field-by-field struct equality.
type Type struct {
	variant  Variant
	hasUnits bool
	units    string

	// List only.
	depth int
	elem  *Type

	// Cluster only.
	children []Type
	offsets  []int // inline byte offset of each child

	// Error only.
	payload *Type // nil means no payload

	width int  // inline byte width
	fixed bool // true if width is independent of any heap slot
}

// Empty returns the unit type.
func Empty() Type { return Type{variant: VariantEmpty, fixed: true} }

// Bool returns the boolean type, stored inline as one byte.
func Bool() Type { return Type{variant: VariantBool, width: 1, fixed: true} }

// Int returns the signed 32-bit integer type.
func Int() Type { return Type{variant: VariantInt, width: 4, fixed: true} }

// Word returns the unsigned 32-bit integer type.
func Word() Type { return Type{variant: VariantWord, width: 4, fixed: true} }

// Str returns the byte-string type. Its inline area is a single i32 heap
// index; its content lives entirely in the heap.
func Str() Type { return Type{variant: VariantStr, width: 4, fixed: false} }

// Value returns the unitless floating-point type.
func Value() Type { return Type{variant: VariantValue, width: 8, fixed: true} }

// ValueWithUnits returns the floating-point type carrying a units string,
// e.g. "m/s" or "GHz".
func ValueWithUnits(units string) Type {
	return Type{variant: VariantValue, hasUnits: true, units: units, width: 8, fixed: true}
}

// Complex returns the unitless complex type, stored as two consecutive
// 8-byte floats.
func Complex() Type { return Type{variant: VariantComplex, width: 16, fixed: true} }

// ComplexWithUnits returns the complex type carrying a units string.
func ComplexWithUnits(units string) Type {
	return Type{variant: VariantComplex, hasUnits: true, units: units, width: 16, fixed: true}
}

// Time returns the timestamp type: a pair of 8-byte big-endian integers,
// whole seconds followed by a binary fraction of a second.
func Time() Type { return Type{variant: VariantTime, width: 16, fixed: true} }

// List returns the type of a depth-dimensional rectangular array of elem.
// depth must be at least 1. A List's inline area holds depth i32 shape
// entries followed by one i32 heap index for its flattened element data.
func List(depth int, elem Type) Type {
	if depth < 1 {
		depth = 1
	}
	e := elem
	return Type{
		variant: VariantList,
		depth:   depth,
		elem:    &e,
		width:   4*depth + 4,
		fixed:   false,
	}
}

// Cluster returns the type of a fixed-size heterogeneous tuple of children,
// laid out as each child's inline bytes back to back in order.
func Cluster(children ...Type) Type {
	offsets := make([]int, len(children))
	width := 0
	fixed := true
	for i, c := range children {
		offsets[i] = width
		width += c.width
		fixed = fixed && c.fixed
	}
	return Type{
		variant:  VariantCluster,
		children: append([]Type(nil), children...),
		offsets:  offsets,
		width:    width,
		fixed:    fixed,
	}
}

// ErrorType returns the error type. If payload is non-nil, an instance also
// carries a value of that type alongside its code and message.
func ErrorType(payload *Type) Type {
	var p *Type
	if payload != nil {
		cp := *payload
		p = &cp
	}
	// Inline layout: 4-byte code, 4-byte heap index for message, then the
	// payload's own inline bytes (if any).
	width := 8
	fixed := false
	if p != nil {
		width += p.width
		fixed = false
	}
	return Type{variant: VariantError, payload: p, width: width, fixed: fixed}
}

// Variant reports which algebra constructor produced t.
func (t Type) Variant() Variant { return t.variant }

// InlineWidth returns the number of bytes t occupies in a Data's fixed
// inline area, independent of anything stored in the heap.
func (t Type) InlineWidth() int { return t.width }

// IsFixed reports whether every instance of t has the same flattened byte
// length, i.e. t contains no Str, List, or Error anywhere in its
// structure.
func (t Type) IsFixed() bool { return t.fixed }

// Depth returns a List's dimensionality. It panics if t is not a List.
func (t Type) Depth() int {
	if t.variant != VariantList {
		panic("labrad: Depth called on non-List type")
	}
	return t.depth
}

// Element returns a List's element type. It panics if t is not a List.
func (t Type) Element() Type {
	if t.variant != VariantList {
		panic("labrad: Element called on non-List type")
	}
	return *t.elem
}

// Size returns a Cluster's arity. It panics if t is not a Cluster.
func (t Type) Size() int {
	if t.variant != VariantCluster {
		panic("labrad: Size called on non-Cluster type")
	}
	return len(t.children)
}

// Subtype returns the i'th child of a Cluster. It panics if t is not a
// Cluster or i is out of range.
func (t Type) Subtype(i int) Type {
	if t.variant != VariantCluster {
		panic("labrad: Subtype called on non-Cluster type")
	}
	return t.children[i]
}

// ClusterOffset returns the inline byte offset of the i'th child of a
// Cluster. It panics if t is not a Cluster or i is out of range.
func (t Type) ClusterOffset(i int) int {
	if t.variant != VariantCluster {
		panic("labrad: ClusterOffset called on non-Cluster type")
	}
	return t.offsets[i]
}

// Payload returns an Error's payload type and whether one is present. It
// panics if t is not an Error.
func (t Type) Payload() (Type, bool) {
	if t.variant != VariantError {
		panic("labrad: Payload called on non-Error type")
	}
	if t.payload == nil {
		return Type{}, false
	}
	return *t.payload, true
}

// Units returns a Value or Complex type's units string and whether one was
// given. It panics if t is neither Value nor Complex.
func (t Type) Units() (string, bool) {
	if t.variant != VariantValue && t.variant != VariantComplex {
		panic("labrad: Units called on a type with no units")
	}
	return t.units, t.hasUnits
}

// Equal reports whether t and other describe the same type, structurally.
// Types are compared by their canonical tag rather than by field equality,
// since Type holds slices and pointers for which == is not defined.
func (t Type) Equal(other Type) bool {
	return t.Tag() == other.Tag()
}

// isComposite reports whether t is a Cluster or a List, the only variants
// that accept an index.
func (t Type) isComposite() bool {
	return t.variant == VariantCluster || t.variant == VariantList
}

// formatUnits renders a units suffix as it appears in a canonical tag:
// "[units]", or "[]" for an explicitly-unitless Value/Complex.
func (t Type) formatUnits() string {
	if !t.hasUnits {
		return ""
	}
	return "[" + t.units + "]"
}

func itoa(n int) string { return strconv.Itoa(n) }
