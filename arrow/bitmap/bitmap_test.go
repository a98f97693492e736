// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bitmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/lakefmt/arrow/bitmap"
	"github.com/lakefmt/arrow/memory"
)

func fromBits(mem memory.Allocator, bits ...bool) *bitmap.Bitmap {
	b := bitmap.New(mem, len(bits))
	buf := b.Buffer().Bytes()
	for i, v := range bits {
		byteIdx, bitIdx := i/8, uint(i%8)
		if v {
			buf[byteIdx] |= 1 << bitIdx
		} else {
			buf[byteIdx] &^= 1 << bitIdx
		}
	}
	return b
}

func TestBitmapNewIsAllValid(t *testing.T) {
	mem := memory.NewGoAllocator()
	b := bitmap.New(mem, 10)
	defer b.Release()

	for i := 0; i < 10; i++ {
		assert.True(t, b.IsSet(i))
	}
	assert.Equal(t, 10, b.Len())
}

func TestBitmapSliceAndSliceLen(t *testing.T) {
	mem := memory.NewGoAllocator()
	b := fromBits(mem, true, false, true, true, false, false, true, false)
	defer b.Release()

	s := b.Slice(2)
	defer s.Release()
	require.Equal(t, 6, s.Len())
	assert.Equal(t, []bool{true, true, false, false, true}, []bool{s.IsSet(0), s.IsSet(1), s.IsSet(2), s.IsSet(3), s.IsSet(4)})

	w := b.SliceLen(2, 3)
	defer w.Release()
	require.Equal(t, 3, w.Len())
	assert.True(t, w.IsSet(0))
	assert.True(t, w.IsSet(1))
	assert.False(t, w.IsSet(2))
}

func TestBitmapEqualIgnoresUnderlyingCapacity(t *testing.T) {
	mem := memory.NewGoAllocator()
	a := fromBits(mem, true, false, true)
	defer a.Release()
	b := fromBits(mem, true, false, true, true, true, true, true, true, true)
	defer b.Release()
	bSliced := b.SliceLen(0, 3)
	defer bSliced.Release()

	assert.True(t, a.Equal(bSliced))
	assert.False(t, a.Equal(b))
}

func TestBitmapCountSetBits(t *testing.T) {
	mem := memory.NewGoAllocator()
	b := fromBits(mem, true, false, true, true, false, true, false, false)
	defer b.Release()

	assert.Equal(t, 4, b.CountSetBits(0, 8))
	assert.Equal(t, 3, b.CountSetBits(2, 4))
}

// S1: Bitmap AND of two same-length bitmaps yields elementwise conjunction.
func TestBitmapAnd(t *testing.T) {
	mem := memory.NewGoAllocator()
	lhs := fromBits(mem, true, true, false, false)
	defer lhs.Release()
	rhs := fromBits(mem, true, false, true, false)
	defer rhs.Release()

	out, err := bitmap.And(mem, lhs, rhs)
	require.NoError(t, err)
	defer out.Release()

	assert.Equal(t, []bool{true, false, false, false}, []bool{out.IsSet(0), out.IsSet(1), out.IsSet(2), out.IsSet(3)})
}

// S2: Bitmap OR of two same-length bitmaps yields elementwise disjunction.
func TestBitmapOr(t *testing.T) {
	mem := memory.NewGoAllocator()
	lhs := fromBits(mem, true, true, false, false)
	defer lhs.Release()
	rhs := fromBits(mem, true, false, true, false)
	defer rhs.Release()

	out, err := bitmap.Or(mem, lhs, rhs)
	require.NoError(t, err)
	defer out.Release()

	assert.Equal(t, []bool{true, true, true, false}, []bool{out.IsSet(0), out.IsSet(1), out.IsSet(2), out.IsSet(3)})
}

// S3: AND/OR over mismatched-length bitmaps reports ErrShapeMismatch.
func TestBitmapAndOrShapeMismatch(t *testing.T) {
	mem := memory.NewGoAllocator()
	short := fromBits(mem, true, false)
	defer short.Release()
	long := fromBits(mem, true, false, true, true)
	defer long.Release()

	_, err := bitmap.And(mem, short, long)
	require.Error(t, err)
	assert.True(t, xerrors.Is(err, bitmap.ErrShapeMismatch))

	_, err = bitmap.Or(mem, short, long)
	require.Error(t, err)
	assert.True(t, xerrors.Is(err, bitmap.ErrShapeMismatch))
}

func TestBitmapWrapPanicsOnOutOfRange(t *testing.T) {
	mem := memory.NewGoAllocator()
	buf := memory.NewResizableBuffer(mem)
	buf.Resize(1)
	defer buf.Release()

	assert.Panics(t, func() {
		bitmap.Wrap(buf, 0, 9)
	})
}
