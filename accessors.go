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

// Instant is the value of a Time scalar: whole seconds since the LabRAD
// epoch, and a binary fraction of a second.
type Instant struct {
	Seconds  uint64
	Fraction uint64
}

// navigate walks d's type through indices and returns the Data found at
// the end of the walk.
//
// A Cluster index selects the i-th child (depth plays no role). A List
// index begins a shape walk: depth consecutive indices are consumed to
// locate one element, and the walk may continue into that element's own
// type with whatever indices remain. Indexing anything else is an error,
// and so is running out of indices partway through a List's shape or
// supplying an out-of-range index anywhere — both surface as
// PartialIndexError, since the algebra's error taxonomy has no separate
// "out of range" kind.
func navigate(d Data, indices []int) (Data, error) {
	if len(indices) == 0 {
		return d, nil
	}

	switch d.typ.variant {
	case VariantCluster:
		i := indices[0]
		if i < 0 || i >= len(d.typ.children) {
			return Data{}, &PartialIndexError{Path: pathString(indices), Reason: "cluster index out of range"}
		}
		child := Data{
			typ:    d.typ.children[i],
			bytes:  d.bytes,
			offset: d.offset + d.typ.offsets[i],
			heap:   d.heap,
		}
		return navigate(child, indices[1:])

	case VariantList:
		return navigateList(d, indices)

	default:
		return Data{}, &NonIndexableTypeError{Path: pathString(indices), Type: d.typ.Pretty()}
	}
}

func navigateList(d Data, indices []int) (Data, error) {
	t := d.typ
	if len(indices) < t.depth {
		return Data{}, &PartialIndexError{Path: pathString(indices), Reason: "not enough indices for list depth"}
	}

	inline := d.slice()
	dims := make([]int, t.depth)
	for i := 0; i < t.depth; i++ {
		n, err := bytesio.ReadInt32(inline, 4*i)
		if err != nil {
			return Data{}, &CodecError{Reason: "reading list shape", Err: err}
		}
		dims[i] = int(n)
	}

	flat := 0
	for i := 0; i < t.depth; i++ {
		idx := indices[i]
		if idx < 0 || idx >= dims[i] {
			return Data{}, &PartialIndexError{Path: pathString(indices), Reason: "list index out of range"}
		}
		flat = flat*dims[i] + idx
	}

	elem := *t.elem
	heapIdx, err := bytesio.ReadInt32(inline, 4*t.depth)
	if err != nil {
		return Data{}, &CodecError{Reason: "reading list heap index", Err: err}
	}
	elemBytes := d.heap.Get(heapIdx)

	child := Data{typ: elem, bytes: elemBytes, offset: flat * elem.width, heap: d.heap}
	return navigate(child, indices[t.depth:])
}

// GetData returns the sub-Data navigated to by indices, without regard to
// its variant. It is the general-purpose accessor the typed Is/Get/Set
// trio is built on.
func GetData(d Data, indices ...int) (Data, error) {
	return navigate(d, indices)
}

func mismatch(path string, expected Variant, got Type) error {
	return &TypeMismatchError{Path: path, Expected: expected.String(), Actual: got.Pretty()}
}

// IsBool reports whether the navigated subtype is Bool.
func IsBool(d Data, indices ...int) bool {
	nav, err := navigate(d, indices)
	return err == nil && nav.typ.variant == VariantBool
}

// GetBool reads a Bool scalar.
func GetBool(d Data, indices ...int) (bool, error) {
	nav, err := navigate(d, indices)
	if err != nil {
		return false, err
	}
	if nav.typ.variant != VariantBool {
		return false, mismatch(pathString(indices), VariantBool, nav.typ)
	}
	return bytesio.ReadBool(nav.bytes, nav.offset)
}

// SetBool writes a Bool scalar.
func SetBool(d Data, v bool, indices ...int) error {
	nav, err := navigate(d, indices)
	if err != nil {
		return err
	}
	if nav.typ.variant != VariantBool {
		return mismatch(pathString(indices), VariantBool, nav.typ)
	}
	return bytesio.WriteBool(nav.bytes, nav.offset, v)
}

// IsInt reports whether the navigated subtype is Int.
func IsInt(d Data, indices ...int) bool {
	nav, err := navigate(d, indices)
	return err == nil && nav.typ.variant == VariantInt
}

// GetInt reads an Int scalar.
func GetInt(d Data, indices ...int) (int32, error) {
	nav, err := navigate(d, indices)
	if err != nil {
		return 0, err
	}
	if nav.typ.variant != VariantInt {
		return 0, mismatch(pathString(indices), VariantInt, nav.typ)
	}
	return bytesio.ReadInt32(nav.bytes, nav.offset)
}

// SetInt writes an Int scalar.
func SetInt(d Data, v int32, indices ...int) error {
	nav, err := navigate(d, indices)
	if err != nil {
		return err
	}
	if nav.typ.variant != VariantInt {
		return mismatch(pathString(indices), VariantInt, nav.typ)
	}
	return bytesio.WriteInt32(nav.bytes, nav.offset, v)
}

// IsWord reports whether the navigated subtype is Word.
func IsWord(d Data, indices ...int) bool {
	nav, err := navigate(d, indices)
	return err == nil && nav.typ.variant == VariantWord
}

// GetWord reads a Word scalar.
func GetWord(d Data, indices ...int) (uint32, error) {
	nav, err := navigate(d, indices)
	if err != nil {
		return 0, err
	}
	if nav.typ.variant != VariantWord {
		return 0, mismatch(pathString(indices), VariantWord, nav.typ)
	}
	return bytesio.ReadUint32(nav.bytes, nav.offset)
}

// SetWord writes a Word scalar.
func SetWord(d Data, v uint32, indices ...int) error {
	nav, err := navigate(d, indices)
	if err != nil {
		return err
	}
	if nav.typ.variant != VariantWord {
		return mismatch(pathString(indices), VariantWord, nav.typ)
	}
	return bytesio.WriteUint32(nav.bytes, nav.offset, v)
}

// IsValue reports whether the navigated subtype is Value.
func IsValue(d Data, indices ...int) bool {
	nav, err := navigate(d, indices)
	return err == nil && nav.typ.variant == VariantValue
}

// GetValue reads a Value scalar.
func GetValue(d Data, indices ...int) (float64, error) {
	nav, err := navigate(d, indices)
	if err != nil {
		return 0, err
	}
	if nav.typ.variant != VariantValue {
		return 0, mismatch(pathString(indices), VariantValue, nav.typ)
	}
	return bytesio.ReadFloat64(nav.bytes, nav.offset)
}

// SetValue writes a Value scalar.
func SetValue(d Data, v float64, indices ...int) error {
	nav, err := navigate(d, indices)
	if err != nil {
		return err
	}
	if nav.typ.variant != VariantValue {
		return mismatch(pathString(indices), VariantValue, nav.typ)
	}
	return bytesio.WriteFloat64(nav.bytes, nav.offset, v)
}

// IsComplex reports whether the navigated subtype is Complex.
func IsComplex(d Data, indices ...int) bool {
	nav, err := navigate(d, indices)
	return err == nil && nav.typ.variant == VariantComplex
}

// GetComplex reads a Complex scalar.
func GetComplex(d Data, indices ...int) (complex128, error) {
	nav, err := navigate(d, indices)
	if err != nil {
		return 0, err
	}
	if nav.typ.variant != VariantComplex {
		return 0, mismatch(pathString(indices), VariantComplex, nav.typ)
	}
	return bytesio.ReadComplex128(nav.bytes, nav.offset)
}

// SetComplex writes a Complex scalar.
func SetComplex(d Data, v complex128, indices ...int) error {
	nav, err := navigate(d, indices)
	if err != nil {
		return err
	}
	if nav.typ.variant != VariantComplex {
		return mismatch(pathString(indices), VariantComplex, nav.typ)
	}
	return bytesio.WriteComplex128(nav.bytes, nav.offset, v)
}

// IsTime reports whether the navigated subtype is Time.
func IsTime(d Data, indices ...int) bool {
	nav, err := navigate(d, indices)
	return err == nil && nav.typ.variant == VariantTime
}

// GetTime reads a Time scalar.
func GetTime(d Data, indices ...int) (Instant, error) {
	nav, err := navigate(d, indices)
	if err != nil {
		return Instant{}, err
	}
	if nav.typ.variant != VariantTime {
		return Instant{}, mismatch(pathString(indices), VariantTime, nav.typ)
	}
	seconds, err := bytesio.ReadUint64(nav.bytes, nav.offset)
	if err != nil {
		return Instant{}, &CodecError{Reason: "reading time seconds", Err: err}
	}
	fraction, err := bytesio.ReadUint64(nav.bytes, nav.offset+8)
	if err != nil {
		return Instant{}, &CodecError{Reason: "reading time fraction", Err: err}
	}
	return Instant{Seconds: seconds, Fraction: fraction}, nil
}

// SetTime writes a Time scalar. Seconds and Fraction occupy consecutive
// 8-byte inline slots, in that order.
func SetTime(d Data, v Instant, indices ...int) error {
	nav, err := navigate(d, indices)
	if err != nil {
		return err
	}
	if nav.typ.variant != VariantTime {
		return mismatch(pathString(indices), VariantTime, nav.typ)
	}
	if err := bytesio.WriteUint64(nav.bytes, nav.offset, v.Seconds); err != nil {
		return &CodecError{Reason: "writing time seconds", Err: err}
	}
	return bytesio.WriteUint64(nav.bytes, nav.offset+8, v.Fraction)
}

// IsStr reports whether the navigated subtype is Str.
func IsStr(d Data, indices ...int) bool {
	nav, err := navigate(d, indices)
	return err == nil && nav.typ.variant == VariantStr
}

// GetBytes reads a Str scalar's content. The returned slice is a copy; it
// does not alias the Data's heap.
func GetBytes(d Data, indices ...int) ([]byte, error) {
	nav, err := navigate(d, indices)
	if err != nil {
		return nil, err
	}
	if nav.typ.variant != VariantStr {
		return nil, mismatch(pathString(indices), VariantStr, nav.typ)
	}
	idx, err := bytesio.ReadInt32(nav.bytes, nav.offset)
	if err != nil {
		return nil, &CodecError{Reason: "reading string heap index", Err: err}
	}
	src := nav.heap.Get(idx)
	out := make([]byte, len(src))
	copy(out, src)
	return out, nil
}

// SetBytes writes a Str scalar's content. If the slot has never been
// assigned, a new heap entry is allocated; otherwise the existing entry is
// replaced in place, keeping the same heap index.
func SetBytes(d Data, v []byte, indices ...int) error {
	nav, err := navigate(d, indices)
	if err != nil {
		return err
	}
	if nav.typ.variant != VariantStr {
		return mismatch(pathString(indices), VariantStr, nav.typ)
	}
	content := make([]byte, len(v))
	copy(content, v)

	idx, err := bytesio.ReadInt32(nav.bytes, nav.offset)
	if err != nil {
		return &CodecError{Reason: "reading string heap index", Err: err}
	}
	if idx < 0 {
		idx = nav.heap.Alloc(0)
		if err := bytesio.WriteInt32(nav.bytes, nav.offset, idx); err != nil {
			return &CodecError{Reason: "writing string heap index", Err: err}
		}
	}
	nav.heap.Set(idx, content)
	return nil
}

// IsError reports whether the navigated subtype is Error.
func IsError(d Data, indices ...int) bool {
	nav, err := navigate(d, indices)
	return err == nil && nav.typ.variant == VariantError
}

// GetError reads an Error scalar's code and message.
func GetError(d Data, indices ...int) (code int32, message string, err error) {
	nav, err := navigate(d, indices)
	if err != nil {
		return 0, "", err
	}
	if nav.typ.variant != VariantError {
		return 0, "", mismatch(pathString(indices), VariantError, nav.typ)
	}
	code, err = bytesio.ReadInt32(nav.bytes, nav.offset)
	if err != nil {
		return 0, "", &CodecError{Reason: "reading error code", Err: err}
	}
	idx, err := bytesio.ReadInt32(nav.bytes, nav.offset+4)
	if err != nil {
		return 0, "", &CodecError{Reason: "reading error message heap index", Err: err}
	}
	msg := nav.heap.Get(idx)
	return code, string(msg), nil
}

// SetError writes an Error scalar's code and message, leaving any payload
// untouched.
func SetError(d Data, code int32, message string, indices ...int) error {
	nav, err := navigate(d, indices)
	if err != nil {
		return err
	}
	if nav.typ.variant != VariantError {
		return mismatch(pathString(indices), VariantError, nav.typ)
	}
	if err := bytesio.WriteInt32(nav.bytes, nav.offset, code); err != nil {
		return &CodecError{Reason: "writing error code", Err: err}
	}

	idx, err := bytesio.ReadInt32(nav.bytes, nav.offset+4)
	if err != nil {
		return &CodecError{Reason: "reading error message heap index", Err: err}
	}
	content := []byte(message)
	if idx < 0 {
		idx = nav.heap.Alloc(0)
		if err := bytesio.WriteInt32(nav.bytes, nav.offset+4, idx); err != nil {
			return &CodecError{Reason: "writing error message heap index", Err: err}
		}
	}
	nav.heap.Set(idx, content)
	return nil
}

// ErrorPayload returns the sub-Data carrying an Error's payload value. It
// fails with NonIndexableTypeError if the navigated Error was declared
// with no payload type.
func ErrorPayload(d Data, indices ...int) (Data, error) {
	nav, err := navigate(d, indices)
	if err != nil {
		return Data{}, err
	}
	if nav.typ.variant != VariantError {
		return Data{}, mismatch(pathString(indices), VariantError, nav.typ)
	}
	if nav.typ.payload == nil {
		return Data{}, &NonIndexableTypeError{Path: pathString(indices), Type: nav.typ.Pretty()}
	}
	return Data{typ: *nav.typ.payload, bytes: nav.bytes, offset: nav.offset + 8, heap: nav.heap}, nil
}
