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

package conv

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecked(t *testing.T) {
	t.Run("int to narrower int", func(t *testing.T) {
		v, err := Checked[int8](int32(127))
		require.NoError(t, err)
		assert.Equal(t, int8(127), v)

		_, err = Checked[int8](int32(128))
		assert.ErrorIs(t, err, ErrOverflow)

		_, err = Checked[int8](int32(-129))
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("signed to unsigned", func(t *testing.T) {
		_, err := Checked[uint16](int64(-1))
		assert.ErrorIs(t, err, ErrOverflow)

		v, err := Checked[uint64](int64(math.MaxInt64))
		require.NoError(t, err)
		assert.Equal(t, uint64(math.MaxInt64), v)
	})

	t.Run("unsigned to signed", func(t *testing.T) {
		_, err := Checked[int64](uint64(math.MaxUint64))
		assert.ErrorIs(t, err, ErrOverflow)

		v, err := Checked[int32](uint8(255))
		require.NoError(t, err)
		assert.Equal(t, int32(255), v)
	})

	t.Run("float to int truncates", func(t *testing.T) {
		v, err := Checked[int32](2.9)
		require.NoError(t, err)
		assert.Equal(t, int32(2), v)

		v, err = Checked[int32](-2.9)
		require.NoError(t, err)
		assert.Equal(t, int32(-2), v)

		u, err := Checked[uint8](float32(-0.5))
		require.NoError(t, err)
		assert.Equal(t, uint8(0), u)
	})

	t.Run("float to int overflow", func(t *testing.T) {
		_, err := Checked[int8](128.0)
		assert.ErrorIs(t, err, ErrOverflow)

		_, err = Checked[int64](9223372036854775808.0)
		assert.ErrorIs(t, err, ErrOverflow)

		_, err = Checked[uint64](-1.0)
		assert.ErrorIs(t, err, ErrOverflow)

		_, err = Checked[int32](math.NaN())
		assert.ErrorIs(t, err, ErrOverflow)

		_, err = Checked[int32](math.Inf(1))
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("to float never fails", func(t *testing.T) {
		f, err := Checked[float32](math.MaxFloat64)
		require.NoError(t, err)
		assert.True(t, math.IsInf(float64(f), 1))

		d, err := Checked[float64](uint64(math.MaxUint64))
		require.NoError(t, err)
		assert.Equal(t, 18446744073709551616.0, d)
	})
}

func TestOverflowError(t *testing.T) {
	_, err := Checked[uint8](int16(300))
	require.Error(t, err)

	var oe *OverflowError
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, "300", oe.Value)
	assert.Equal(t, "uint8", oe.Target)
	assert.Equal(t, "integer overflow: 300 cannot be converted to uint8", err.Error())
}

func TestSaturating(t *testing.T) {
	assert.Equal(t, int8(127), Saturating[int8](int32(1000)))
	assert.Equal(t, int8(-128), Saturating[int8](int32(-1000)))
	assert.Equal(t, uint8(0), Saturating[uint8](int64(-5)))
	assert.Equal(t, uint32(math.MaxUint32), Saturating[uint32](uint64(math.MaxUint64)))
	assert.Equal(t, int64(math.MaxInt64), Saturating[int64](uint64(math.MaxUint64)))
	assert.Equal(t, int16(12), Saturating[int16](uint8(12)))

	assert.Equal(t, int32(0), Saturating[int32](math.NaN()))
	assert.Equal(t, int32(math.MaxInt32), Saturating[int32](math.Inf(1)))
	assert.Equal(t, int32(math.MinInt32), Saturating[int32](float32(-3e9)))
	assert.Equal(t, uint64(math.MaxUint64), Saturating[uint64](1e20))
	assert.Equal(t, int64(math.MinInt64), Saturating[int64](-1e19))
	assert.Equal(t, int8(-3), Saturating[int8](-3.7))
}

func TestTruncating(t *testing.T) {
	assert.Equal(t, int8(-56), Truncating[int8](int32(200)))
	assert.Equal(t, uint8(0xff), Truncating[uint8](int64(-1)))
	assert.Equal(t, int32(-1), Truncating[int32](uint32(math.MaxUint32)))
	assert.Equal(t, uint16(0x3412), Truncating[uint16](uint32(0x56783412)))

	assert.Equal(t, int32(3), Truncating[int32](3.99))
	assert.Equal(t, int32(math.MaxInt32), Truncating[int32](1e12))
	assert.Equal(t, uint8(0), Truncating[uint8](math.NaN()))
	assert.Equal(t, float32(1.5), Truncating[float32](1.5))
}

func TestSameRepresentation(t *testing.T) {
	assert.True(t, SameRepresentation[int64, int64]())
	assert.True(t, SameRepresentation[int, int64]())
	assert.True(t, SameRepresentation[uint, uint64]())
	assert.False(t, SameRepresentation[int32, uint32]())
	assert.False(t, SameRepresentation[float32, int32]())
	assert.False(t, SameRepresentation[float32, float64]())

	assert.Equal(t, int64(-7), Reinterpret[int64](int(-7)))
	assert.Equal(t, uint64(42), Reinterpret[uint64](uint(42)))
}
