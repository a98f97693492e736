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

// Union is the array view for both dense and sparse unions. Buffer 0 is
// always the type-ids array (int8, one per logical row); dense unions carry
// an additional offsets buffer (int32) at index 1, sparse unions do not
// (§4.2, "Union: type-ids + [dense-only] offsets + N children").
type Union struct {
	base
	mode  arrow.UnionMode
	union *arrow.UnionType
}

func (a *Union) typeIDs() []int8 {
	buf := a.data.Buffers()[0]
	return unsafe.Slice((*int8)(unsafe.Pointer(&buf.Bytes()[0])), buf.Len())
}

// TypeID returns the on-wire type id tag of logical row i.
func (a *Union) TypeID(i int) int8 {
	return a.typeIDs()[a.data.Offset()+i]
}

func (a *Union) offsets() []int32 {
	buf := a.data.Buffers()[1]
	return unsafe.Slice((*int32)(unsafe.Pointer(&buf.Bytes()[0])), buf.Len()/4)
}

// ChildAndIndex returns the child array and the row index within it that
// backs logical row i: for dense unions that is the recorded offset, for
// sparse unions it is i itself (every child has the union's own length).
func (a *Union) ChildAndIndex(i int) (arrow.Array, int) {
	id := a.TypeID(i)
	pos, ok := a.union.ChildIndex(id)
	if !ok {
		return nil, 0
	}
	child := a.data.Children()[pos]
	if a.mode == arrow.DenseMode {
		return MakeFromData(child), int(a.offsets()[a.data.Offset()+i])
	}
	return MakeFromData(child), a.data.Offset() + i
}

func (a *Union) Mode() arrow.UnionMode       { return a.mode }
func (a *Union) UnionType() *arrow.UnionType { return a.union }

// IsNull/IsValid are overridden because buffer 0 on a union is the type-ids
// array, not a validity bitmap — unions carry no null bitmap of their own,
// nullness lives entirely in the selected child (§3).
func (a *Union) IsNull(i int) bool  { return false }
func (a *Union) IsValid(i int) bool { return true }
