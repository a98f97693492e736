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
	"github.com/lakefmt/arrow"
	"github.com/lakefmt/arrow/bitutil"
)

// base is embedded by every typed array view; it forwards the boilerplate
// Array methods to the underlying Data node.
type base struct {
	data arrow.ArrayData
}

func (b *base) Data() arrow.ArrayData { return b.data }
func (b *base) DataType() arrow.DataType { return b.data.DataType() }
func (b *base) Len() int              { return b.data.Len() }
func (b *base) NullN() int            { return b.data.NullN() }
func (b *base) IsNull(i int) bool     { return IsNull(b.data, b.data.Offset()+i) }
func (b *base) IsValid(i int) bool    { return IsValid(b.data, b.data.Offset()+i) }
func (b *base) Retain()               { b.data.Retain() }
func (b *base) Release()              { b.data.Release() }

// MakeFromData builds the typed array view appropriate to data's logical
// type (§9, "Design Notes: Polymorphism" — exhaustive dispatch at this one
// site rather than inheritance).
func MakeFromData(data arrow.ArrayData) arrow.Array {
	switch dt := data.DataType().(type) {
	case *arrow.NullType:
		return &Null{base: base{data}}
	case *arrow.BooleanType:
		return &Boolean{base: base{data}}
	case *arrow.Int8Type:
		return NewPrimitive[int8](data)
	case *arrow.Int16Type:
		return NewPrimitive[int16](data)
	case *arrow.Int32Type:
		return NewPrimitive[int32](data)
	case *arrow.Int64Type:
		return NewPrimitive[int64](data)
	case *arrow.Uint8Type:
		return NewPrimitive[uint8](data)
	case *arrow.Uint16Type:
		return NewPrimitive[uint16](data)
	case *arrow.Uint32Type:
		return NewPrimitive[uint32](data)
	case *arrow.Uint64Type:
		return NewPrimitive[uint64](data)
	case *arrow.Float32Type:
		return NewPrimitive[float32](data)
	case *arrow.Float64Type:
		return NewPrimitive[float64](data)
	case *arrow.Date32Type:
		return NewPrimitive[int32](data)
	case *arrow.Date64Type:
		return NewPrimitive[int64](data)
	case *arrow.Time32Type:
		return NewPrimitive[int32](data)
	case *arrow.Time64Type:
		return NewPrimitive[int64](data)
	case *arrow.TimestampType:
		return NewPrimitive[int64](data)
	case *arrow.DurationType:
		return NewPrimitive[int64](data)
	case *arrow.MonthIntervalType:
		return NewPrimitive[int32](data)
	case *arrow.DayTimeIntervalType:
		return NewPrimitive[arrow.DayTimeInterval](data)
	case *arrow.MonthDayNanoIntervalType:
		return NewPrimitive[arrow.MonthDayNanoInterval](data)
	case *arrow.Decimal128Type:
		return NewPrimitive[Decimal128](data)
	case *arrow.FixedSizeBinaryType:
		return &FixedSizeBinary{base: base{data}, byteWidth: dt.ByteWidth}
	case *arrow.StringType:
		return &String{Binary{base: base{data}, large: false}}
	case *arrow.LargeStringType:
		return &LargeString{Binary{base: base{data}, large: true}}
	case *arrow.BinaryType:
		return &Binary{base: base{data}, large: false}
	case *arrow.LargeBinaryType:
		return &Binary{base: base{data}, large: true}
	case *arrow.ListType:
		return &List{base: base{data}}
	case *arrow.LargeListType:
		return &LargeList{base: base{data}}
	case *arrow.FixedSizeListType:
		return &FixedSizeList{base: base{data}, n: int(dt.Len())}
	case *arrow.StructType:
		return &Struct{base: base{data}}
	case *arrow.MapType:
		return &Map{List: List{base: base{data}}}
	case *arrow.UnionType:
		return &Union{base: base{data}, mode: dt.Mode(), union: dt}
	case *arrow.DictionaryType:
		return &Dictionary{base: base{data}}
	default:
		panic("array: unsupported data type " + data.DataType().String())
	}
}

// Null is the array view for arrow.NullType: every element is null, there
// are no buffers.
type Null struct{ base }

// Boolean reads each element as a single validity-style bit out of buffer 1
// (the values buffer for Boolean is itself a bitmap, not a byte-per-value
// array).
type Boolean struct{ base }

func (a *Boolean) Value(i int) bool {
	buf := a.data.Buffers()[1]
	if buf == nil {
		return false
	}
	return bitutil.BitIsSet(buf.Bytes(), a.data.Offset()+i)
}
