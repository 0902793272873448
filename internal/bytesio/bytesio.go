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

// Package bytesio reads and writes LabRAD's fixed-width scalar encodings at
// a (buffer, offset) pair. Every value is big-endian; nothing here
// allocates.
package bytesio

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// ErrShortBuffer is returned (wrapped with the offending offset and size)
// when a read or write would run past the end of the buffer.
type ErrShortBuffer struct {
	Offset, Size, Len int
}

func (e *ErrShortBuffer) Error() string {
	return fmt.Sprintf("bytesio: need %d bytes at offset %d, buffer has %d", e.Size, e.Offset, e.Len)
}

func checkBounds(b []byte, off, size int) error {
	if off < 0 || size < 0 || off+size > len(b) {
		return &ErrShortBuffer{Offset: off, Size: size, Len: len(b)}
	}
	return nil
}

// readUint reads a size-byte big-endian unsigned integer at off.
func readUint[T constraints.Unsigned](b []byte, off, size int) (T, error) {
	if err := checkBounds(b, off, size); err != nil {
		return 0, err
	}
	var v uint64
	for i := 0; i < size; i++ {
		v = v<<8 | uint64(b[off+i])
	}
	return T(v), nil
}

// writeUint writes a size-byte big-endian unsigned integer at off.
func writeUint[T constraints.Unsigned](b []byte, off, size int, v T) error {
	if err := checkBounds(b, off, size); err != nil {
		return err
	}
	u := uint64(v)
	for i := size - 1; i >= 0; i-- {
		b[off+i] = byte(u)
		u >>= 8
	}
	return nil
}

// ReadBool reads a single byte as a boolean: zero is false, anything else
// is true.
func ReadBool(b []byte, off int) (bool, error) {
	v, err := readUint[uint8](b, off, 1)
	return v != 0, err
}

// WriteBool writes a single byte: 1 for true, 0 for false.
func WriteBool(b []byte, off int, v bool) error {
	var u uint8
	if v {
		u = 1
	}
	return writeUint(b, off, 1, u)
}

// ReadInt32 reads a big-endian signed 32-bit integer.
func ReadInt32(b []byte, off int) (int32, error) {
	v, err := readUint[uint32](b, off, 4)
	return int32(v), err
}

// WriteInt32 writes a big-endian signed 32-bit integer.
func WriteInt32(b []byte, off int, v int32) error {
	return writeUint(b, off, 4, uint32(v))
}

// ReadUint32 reads a big-endian unsigned 32-bit integer.
func ReadUint32(b []byte, off int) (uint32, error) {
	return readUint[uint32](b, off, 4)
}

// WriteUint32 writes a big-endian unsigned 32-bit integer.
func WriteUint32(b []byte, off int, v uint32) error {
	return writeUint(b, off, 4, v)
}

// ReadInt64 reads a big-endian signed 64-bit integer.
func ReadInt64(b []byte, off int) (int64, error) {
	v, err := readUint[uint64](b, off, 8)
	return int64(v), err
}

// WriteInt64 writes a big-endian signed 64-bit integer.
func WriteInt64(b []byte, off int, v int64) error {
	return writeUint(b, off, 8, uint64(v))
}

// ReadUint64 reads a big-endian unsigned 64-bit integer.
func ReadUint64(b []byte, off int) (uint64, error) {
	return readUint[uint64](b, off, 8)
}

// WriteUint64 writes a big-endian unsigned 64-bit integer.
func WriteUint64(b []byte, off int, v uint64) error {
	return writeUint(b, off, 8, v)
}

// ReadFloat64 reads an IEEE-754 double at off.
func ReadFloat64(b []byte, off int) (float64, error) {
	v, err := readUint[uint64](b, off, 8)
	return math.Float64frombits(v), err
}

// WriteFloat64 writes an IEEE-754 double at off.
func WriteFloat64(b []byte, off int, v float64) error {
	return writeUint(b, off, 8, math.Float64bits(v))
}

// ReadComplex128 reads two consecutive doubles (real, then imaginary) at
// off.
func ReadComplex128(b []byte, off int) (complex128, error) {
	re, err := ReadFloat64(b, off)
	if err != nil {
		return 0, err
	}
	im, err := ReadFloat64(b, off+8)
	if err != nil {
		return 0, err
	}
	return complex(re, im), nil
}

// WriteComplex128 writes two consecutive doubles (real, then imaginary) at
// off.
func WriteComplex128(b []byte, off int, v complex128) error {
	if err := WriteFloat64(b, off, real(v)); err != nil {
		return err
	}
	return WriteFloat64(b, off+8, imag(v))
}
