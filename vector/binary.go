// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vector

import (
	"encoding/binary"

	"github.com/ajroetker/go-vecn/hwy"
)

// Binary encoding writes the N components back to back, each as the raw
// bits of T (IEEE 754 for floats) in the chosen byte order.

// ByteLen returns the encoded size of v in bytes.
func (v Vector[T, A]) ByteLen() int {
	return len(v.c) * hwy.SizeOf[T]()
}

// WriteLittleEndian encodes v into dst in little-endian order. It returns
// the number of bytes written and true, or 0 and false when dst is too
// small.
func (v Vector[T, A]) WriteLittleEndian(dst []byte) (int, bool) {
	return v.write(dst, binary.LittleEndian)
}

// WriteBigEndian encodes v into dst in big-endian order; see
// WriteLittleEndian.
func (v Vector[T, A]) WriteBigEndian(dst []byte) (int, bool) {
	return v.write(dst, binary.BigEndian)
}

func (v Vector[T, A]) write(dst []byte, order binary.ByteOrder) (int, bool) {
	n := v.ByteLen()
	if len(dst) < n {
		return 0, false
	}
	size := hwy.SizeOf[T]()
	for i := range len(v.c) {
		putBits(dst[i*size:], size, hwy.BitsOf(v.c[i]), order)
	}
	return n, true
}

// AppendBinary implements encoding.BinaryAppender in little-endian order.
func (v Vector[T, A]) AppendBinary(b []byte) ([]byte, error) {
	n := len(b)
	b = append(b, make([]byte, v.ByteLen())...)
	v.write(b[n:], binary.LittleEndian)
	return b, nil
}

// MarshalBinary implements encoding.BinaryMarshaler in little-endian order.
func (v Vector[T, A]) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(nil)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. data must hold
// exactly ByteLen bytes.
func (v *Vector[T, A]) UnmarshalBinary(data []byte) error {
	if len(data) != v.ByteLen() {
		return lengthError(v.ByteLen(), len(data), ErrShortSequence)
	}
	r, _ := read[T, A](data, binary.LittleEndian)
	*v = r
	return nil
}

// ReadLittleEndian decodes a vector from the start of src in little-endian
// order. It reports false when src is too short.
func ReadLittleEndian[T Number, A Components[T]](src []byte) (Vector[T, A], bool) {
	return read[T, A](src, binary.LittleEndian)
}

// ReadBigEndian decodes a vector from the start of src in big-endian
// order. It reports false when src is too short.
func ReadBigEndian[T Number, A Components[T]](src []byte) (Vector[T, A], bool) {
	return read[T, A](src, binary.BigEndian)
}

func read[T Number, A Components[T]](src []byte, order binary.ByteOrder) (r Vector[T, A], ok bool) {
	size := hwy.SizeOf[T]()
	if len(src) < len(r.c)*size {
		return r, false
	}
	for i := range len(r.c) {
		r.c[i] = hwy.FromBits[T](getBits(src[i*size:], size, order))
	}
	return r, true
}

func putBits(b []byte, size int, bits uint64, order binary.ByteOrder) {
	switch size {
	case 1:
		b[0] = byte(bits)
	case 2:
		order.PutUint16(b, uint16(bits))
	case 4:
		order.PutUint32(b, uint32(bits))
	default:
		order.PutUint64(b, bits)
	}
}

func getBits(b []byte, size int, order binary.ByteOrder) uint64 {
	switch size {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(order.Uint16(b))
	case 4:
		return uint64(order.Uint32(b))
	default:
		return order.Uint64(b)
	}
}
