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

// Package array holds the untyped ArrayData node, the typed array views
// built on top of it, the equality engine, and record construction.
package array

import (
	"sync/atomic"

	"github.com/lakefmt/arrow"
	"github.com/lakefmt/arrow/bitmap"
	"github.com/lakefmt/arrow/memory"
)

// Data is the concrete implementation of arrow.ArrayData (§3). Buffer
// cardinality and semantics per type are fixed by the reconstruction table
// in §4.2; Data itself makes no assumption about which type it holds.
type Data struct {
	refs *int64

	dtype    arrow.DataType
	length   int
	offset   int
	nullN    int
	buffers  []*memory.Buffer
	children []arrow.ArrayData
	dict     arrow.ArrayData
}

// NewData constructs a Data node. nullN may be passed as -1 when the null
// count is unknown (NewSliceData does so for a slice of a parent that has
// nulls); NullN then reports -1, and the count is not computed from
// buffers[0]. The reconstruction engine always passes the exact count from
// the field node.
func NewData(dtype arrow.DataType, length int, buffers []*memory.Buffer, children []arrow.ArrayData, nullN, offset int) *Data {
	for _, b := range buffers {
		if b != nil {
			b.Retain()
		}
	}
	for _, c := range children {
		c.Retain()
	}
	n := int64(1)
	return &Data{
		refs:     &n,
		dtype:    dtype,
		length:   length,
		offset:   offset,
		nullN:    nullN,
		buffers:  append([]*memory.Buffer(nil), buffers...),
		children: append([]arrow.ArrayData(nil), children...),
	}
}

// NewDataWithDictionary is NewData plus the dictionary values array
// (present only for dictionary-typed nodes per §3).
func NewDataWithDictionary(dtype arrow.DataType, length int, buffers []*memory.Buffer, nullN, offset int, dict arrow.ArrayData) *Data {
	d := NewData(dtype, length, buffers, nil, nullN, offset)
	if dict != nil {
		dict.Retain()
	}
	d.dict = dict
	return d
}

func (d *Data) DataType() arrow.DataType      { return d.dtype }
func (d *Data) Len() int                      { return d.length }
func (d *Data) Offset() int                   { return d.offset }
func (d *Data) NullN() int                    { return d.nullN }
func (d *Data) Buffers() []*memory.Buffer     { return d.buffers }
func (d *Data) Children() []arrow.ArrayData   { return d.children }
func (d *Data) Dictionary() arrow.ArrayData   { return d.dict }

func (d *Data) Retain() {
	if d.refs != nil {
		atomic.AddInt64(d.refs, 1)
	}
}

func (d *Data) Release() {
	if d.refs == nil {
		return
	}
	if atomic.AddInt64(d.refs, -1) == 0 {
		for _, b := range d.buffers {
			if b != nil {
				b.Release()
			}
		}
		for _, c := range d.children {
			c.Release()
		}
		if d.dict != nil {
			d.dict.Release()
		}
	}
}

// validityBitmap returns a bitmap view over buffer 0, or nil if the node
// has no null (buffer 0 is nil/absent), matching the "Validity buffer is
// elided... when null_count == 0" rule of §4.2.
func validityBitmap(d arrow.ArrayData) *bitmap.Bitmap {
	bufs := d.Buffers()
	if len(bufs) == 0 || bufs[0] == nil {
		return nil
	}
	return bitmap.Wrap(bufs[0], d.Offset(), d.Len())
}

// IsValid reports whether logical row i (already offset-adjusted by the
// caller's view) is non-null.
func IsValid(d arrow.ArrayData, i int) bool {
	if d.NullN() == 0 {
		return true
	}
	bm := validityBitmap(d)
	if bm == nil {
		return true
	}
	return bm.IsSet(i - d.Offset())
}

func IsNull(d arrow.ArrayData, i int) bool { return !IsValid(d, i) }

// NewSliceData returns a new ArrayData over the same buffers/children as d,
// restricted to the logical range [i, j). Used by List/LargeList/Map/Union
// to hand back a view of one element's child range without copying.
func NewSliceData(d arrow.ArrayData, i, j int64) arrow.ArrayData {
	data := d.(*Data)
	length := int(j - i)
	nullN := -1
	if data.nullN == 0 {
		nullN = 0
	}
	return NewData(data.dtype, length, data.buffers, data.children, nullN, data.offset+int(i))
}
