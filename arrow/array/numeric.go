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

package array

import (
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/lakefmt/arrow"
)

// FixedWidth is the type constraint for every scalar Go type the reader
// reinterprets a values buffer as. It mirrors the IntTypes/UintTypes/
// FixedWidthTypes family used across the Arrow-Go compute package (see
// SPEC_FULL.md DOMAIN STACK) — the idiom this module adopts for the
// polymorphism concern spec §9 calls out.
type FixedWidth interface {
	constraints.Integer | constraints.Float |
		arrow.DayTimeInterval | arrow.MonthDayNanoInterval | Decimal128
}

// Decimal128 is a 128-bit two's complement decimal value, stored as the
// wire's little-endian (lo, hi) pair of uint64 words.
type Decimal128 struct {
	Lo uint64
	Hi int64
}

// Primitive is a generic, read-only view over a values buffer holding T.
// Value reinterprets the backing bytes directly rather than copying element
// by element (the same zero-copy idiom the compute package uses via
// unsafe.Slice on a FixedWidthTypes constraint).
type Primitive[T FixedWidth] struct {
	base
}

func NewPrimitive[T FixedWidth](data arrow.ArrayData) *Primitive[T] {
	return &Primitive[T]{base{data}}
}

func (a *Primitive[T]) values() []T {
	buf := a.data.Buffers()[1]
	if buf == nil || buf.Len() == 0 {
		return nil
	}
	var z T
	sz := int(unsafe.Sizeof(z))
	n := buf.Len() / sz
	raw := unsafe.Slice((*T)(unsafe.Pointer(&buf.Bytes()[0])), n)
	return raw
}

// Value returns element i (already adjusted for the array's logical
// offset).
func (a *Primitive[T]) Value(i int) T {
	return a.values()[a.data.Offset()+i]
}

// Values returns the full backing slice windowed to this array's logical
// range.
func (a *Primitive[T]) Values() []T {
	v := a.values()
	if v == nil {
		return nil
	}
	return v[a.data.Offset() : a.data.Offset()+a.data.Len()]
}
