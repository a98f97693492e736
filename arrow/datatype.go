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

// Package arrow holds the logical type system, Schema/Field metadata, and
// the Array/Record interfaces the rest of the module is built against.
package arrow

import "fmt"

// Type is the tag of the closed variant set of Arrow logical types (§9,
// "Design Notes: Polymorphism" — a tagged variant with exhaustive dispatch
// at the reconstruction site, rather than inheritance).
type Type int

const (
	NULL Type = iota
	BOOL
	UINT8
	INT8
	UINT16
	INT16
	UINT32
	INT32
	UINT64
	INT64
	FLOAT32
	FLOAT64
	STRING
	BINARY
	LARGE_STRING
	LARGE_BINARY
	FIXED_SIZE_BINARY
	DATE32
	DATE64
	TIMESTAMP
	TIME32
	TIME64
	DURATION
	INTERVAL_MONTHS
	INTERVAL_DAY_TIME
	INTERVAL_MONTH_DAY_NANO
	DECIMAL128
	LIST
	LARGE_LIST
	FIXED_SIZE_LIST
	STRUCT
	SPARSE_UNION
	DENSE_UNION
	DICTIONARY
	MAP
)

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

var typeNames = map[Type]string{
	NULL: "null", BOOL: "bool",
	UINT8: "uint8", INT8: "int8", UINT16: "uint16", INT16: "int16",
	UINT32: "uint32", INT32: "int32", UINT64: "uint64", INT64: "int64",
	FLOAT32: "float32", FLOAT64: "float64",
	STRING: "utf8", BINARY: "binary", LARGE_STRING: "large_utf8", LARGE_BINARY: "large_binary",
	FIXED_SIZE_BINARY: "fixed_size_binary",
	DATE32:            "date32", DATE64: "date64",
	TIMESTAMP: "timestamp", TIME32: "time32", TIME64: "time64", DURATION: "duration",
	INTERVAL_MONTHS: "month_interval", INTERVAL_DAY_TIME: "day_time_interval", INTERVAL_MONTH_DAY_NANO: "month_day_nano_interval",
	DECIMAL128: "decimal128",
	LIST:       "list", LARGE_LIST: "large_list", FIXED_SIZE_LIST: "fixed_size_list",
	STRUCT: "struct", SPARSE_UNION: "sparse_union", DENSE_UNION: "dense_union",
	DICTIONARY: "dictionary", MAP: "map",
}

// DataType is the exhaustive interface every logical type implements.
type DataType interface {
	ID() Type
	Name() string
	String() string
}

// FixedWidthDataType is implemented by types with a constant per-element bit
// width (used to compute buffer sizes and to drive the narrow-int/float
// up-cast quirk in §4.2).
type FixedWidthDataType interface {
	DataType
	BitWidth() int
}

// BinaryDataType marks Binary/Utf8/LargeBinary/LargeUtf8: variable-width,
// 3-buffer (validity, offsets, values) types.
type BinaryDataType interface {
	DataType
	IsLarge() bool
}

// NestedDataType is implemented by types that carry child fields: List,
// LargeList, FixedSizeList, Struct, Union, Map.
type NestedDataType interface {
	DataType
	Fields() []Field
}

// UnionMode distinguishes the two physical layouts of union arrays (§4.3,
// GLOSSARY "Dense union"/"Sparse union").
type UnionMode int8

const (
	SparseMode UnionMode = iota
	DenseMode
)

func (m UnionMode) String() string {
	if m == DenseMode {
		return "dense"
	}
	return "sparse"
}

// IntervalUnit distinguishes the three interval physical layouts.
type IntervalUnit int8

const (
	YearMonthIntervalUnit IntervalUnit = iota
	DayTimeIntervalUnit
	MonthDayNanoIntervalUnit
)

// TimeUnit is the resolution of Time32/Time64/Timestamp/Duration values.
type TimeUnit int64

const (
	Second TimeUnit = iota
	Millisecond
	Microsecond
	Nanosecond
)

func (u TimeUnit) String() string {
	switch u {
	case Second:
		return "s"
	case Millisecond:
		return "ms"
	case Microsecond:
		return "us"
	case Nanosecond:
		return "ns"
	default:
		return "unknown"
	}
}

// Field node types carrying a single fixed bit-width payload buffer.
type (
	BooleanType struct{}
	Int8Type    struct{}
	Int16Type   struct{}
	Int32Type   struct{}
	Int64Type   struct{}
	Uint8Type   struct{}
	Uint16Type  struct{}
	Uint32Type  struct{}
	Uint64Type  struct{}
	Float32Type struct{}
	Float64Type struct{}
	NullType    struct{}
)

func (*BooleanType) ID() Type        { return BOOL }
func (*BooleanType) Name() string    { return "bool" }
func (*BooleanType) String() string  { return "bool" }
func (*BooleanType) BitWidth() int   { return 1 }
func (*Int8Type) ID() Type           { return INT8 }
func (*Int8Type) Name() string       { return "int8" }
func (*Int8Type) String() string     { return "int8" }
func (*Int8Type) BitWidth() int      { return 8 }
func (*Int16Type) ID() Type          { return INT16 }
func (*Int16Type) Name() string      { return "int16" }
func (*Int16Type) String() string    { return "int16" }
func (*Int16Type) BitWidth() int     { return 16 }
func (*Int32Type) ID() Type          { return INT32 }
func (*Int32Type) Name() string      { return "int32" }
func (*Int32Type) String() string    { return "int32" }
func (*Int32Type) BitWidth() int     { return 32 }
func (*Int64Type) ID() Type          { return INT64 }
func (*Int64Type) Name() string      { return "int64" }
func (*Int64Type) String() string    { return "int64" }
func (*Int64Type) BitWidth() int     { return 64 }
func (*Uint8Type) ID() Type          { return UINT8 }
func (*Uint8Type) Name() string      { return "uint8" }
func (*Uint8Type) String() string    { return "uint8" }
func (*Uint8Type) BitWidth() int     { return 8 }
func (*Uint16Type) ID() Type         { return UINT16 }
func (*Uint16Type) Name() string     { return "uint16" }
func (*Uint16Type) String() string   { return "uint16" }
func (*Uint16Type) BitWidth() int    { return 16 }
func (*Uint32Type) ID() Type         { return UINT32 }
func (*Uint32Type) Name() string     { return "uint32" }
func (*Uint32Type) String() string   { return "uint32" }
func (*Uint32Type) BitWidth() int    { return 32 }
func (*Uint64Type) ID() Type         { return UINT64 }
func (*Uint64Type) Name() string     { return "uint64" }
func (*Uint64Type) String() string   { return "uint64" }
func (*Uint64Type) BitWidth() int    { return 64 }
func (*Float32Type) ID() Type        { return FLOAT32 }
func (*Float32Type) Name() string    { return "float32" }
func (*Float32Type) String() string  { return "float32" }
func (*Float32Type) BitWidth() int   { return 32 }
func (*Float64Type) ID() Type        { return FLOAT64 }
func (*Float64Type) Name() string    { return "float64" }
func (*Float64Type) String() string  { return "float64" }
func (*Float64Type) BitWidth() int   { return 64 }
func (*NullType) ID() Type           { return NULL }
func (*NullType) Name() string       { return "null" }
func (*NullType) String() string     { return "null" }

var (
	PrimitiveTypes = struct {
		Boolean *BooleanType
		Int8    *Int8Type
		Int16   *Int16Type
		Int32   *Int32Type
		Int64   *Int64Type
		Uint8   *Uint8Type
		Uint16  *Uint16Type
		Uint32  *Uint32Type
		Uint64  *Uint64Type
		Float32 *Float32Type
		Float64 *Float64Type
	}{
		Boolean: &BooleanType{}, Int8: &Int8Type{}, Int16: &Int16Type{}, Int32: &Int32Type{}, Int64: &Int64Type{},
		Uint8: &Uint8Type{}, Uint16: &Uint16Type{}, Uint32: &Uint32Type{}, Uint64: &Uint64Type{},
		Float32: &Float32Type{}, Float64: &Float64Type{},
	}
	Null = &NullType{}
)
