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

	"github.com/lakefmt/arrow"
)

// List is the array view for arrow.ListType: buffers are (validity,
// offsets int32), and the single child holds the concatenated values
// (§4.2, "List/LargeList/Map: 2 buffers + 1 child").
type List struct {
	base
}

func (a *List) offsetAt(i int) int64 {
	off := a.data.Buffers()[1]
	return int64(unsafe.Slice((*int32)(unsafe.Pointer(&off.Bytes()[0])), off.Len()/4)[i])
}

// ValueOffsets returns the [start, end) range into the values child for
// element i.
func (a *List) ValueOffsets(i int) (int64, int64) {
	idx := a.data.Offset() + i
	return a.offsetAt(idx), a.offsetAt(idx + 1)
}

// ListValues returns the full values child array (no slicing applied).
func (a *List) ListValues() arrow.Array {
	return MakeFromData(a.data.Children()[0])
}

// Value returns element i as a slice view over the values child.
func (a *List) Value(i int) arrow.Array {
	start, end := a.ValueOffsets(i)
	return MakeFromData(NewSliceData(a.data.Children()[0], start, end))
}

// LargeList is List with int64 offsets.
type LargeList struct {
	base
}

func (a *LargeList) offsetAt(i int) int64 {
	off := a.data.Buffers()[1]
	return unsafe.Slice((*int64)(unsafe.Pointer(&off.Bytes()[0])), off.Len()/8)[i]
}

func (a *LargeList) ValueOffsets(i int) (int64, int64) {
	idx := a.data.Offset() + i
	return a.offsetAt(idx), a.offsetAt(idx + 1)
}

func (a *LargeList) ListValues() arrow.Array {
	return MakeFromData(a.data.Children()[0])
}

func (a *LargeList) Value(i int) arrow.Array {
	start, end := a.ValueOffsets(i)
	return MakeFromData(NewSliceData(a.data.Children()[0], start, end))
}

// FixedSizeList holds exactly n elements per slot and has no offsets
// buffer: element i occupies values[i*n : (i+1)*n] (§4.2, "FixedSizeList:
// 1 buffer + 1 child").
type FixedSizeList struct {
	base
	n int
}

func (a *FixedSizeList) ListValues() arrow.Array {
	return MakeFromData(a.data.Children()[0])
}

func (a *FixedSizeList) Value(i int) arrow.Array {
	idx := int64(a.data.Offset() + i)
	start := idx * int64(a.n)
	end := start + int64(a.n)
	return MakeFromData(NewSliceData(a.data.Children()[0], start, end))
}

// Struct shares one validity bitmap across all children, each the same
// length as the parent (§4.2, "Struct: 1 buffer + N children").
type Struct struct {
	base
}

func (a *Struct) NumField() int { return len(a.data.Children()) }

func (a *Struct) Field(i int) arrow.Array {
	return MakeFromData(NewSliceData(a.data.Children()[i], int64(a.data.Offset()), int64(a.data.Offset()+a.data.Len())))
}

// Map is a List<Struct<key,value>> with entry-level accessors layered on
// top of the embedded List (§4.2 treats Map identically to List for buffer
// and child-cursor purposes).
type Map struct {
	List
	keysSorted bool
}

// Keys returns the key array sliced to element i's entry range.
func (a *Map) Keys(i int) arrow.Array {
	entries := a.data.Children()[0]
	start, end := a.ValueOffsets(i)
	off := int64(entries.Offset())
	keyChild := entries.Children()[0]
	return MakeFromData(NewSliceData(keyChild, off+start, off+end))
}

// Items returns the value array sliced to element i's entry range.
func (a *Map) Items(i int) arrow.Array {
	entries := a.data.Children()[0]
	start, end := a.ValueOffsets(i)
	off := int64(entries.Offset())
	valChild := entries.Children()[1]
	return MakeFromData(NewSliceData(valChild, off+start, off+end))
}

func (a *Map) KeysSorted() bool { return a.keysSorted }
