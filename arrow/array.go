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

package arrow

import "github.com/lakefmt/arrow/memory"

// ArrayData is the untyped columnar node described in §3: type, length,
// null-count, buffers, children, and (for dictionary-typed nodes) a
// dictionary values array. It is implemented by array.Data; the interface
// lives here to let package arrow describe Array/Record without importing
// package array (which itself depends on arrow).
type ArrayData interface {
	DataType() DataType
	Len() int
	Offset() int
	NullN() int
	Buffers() []*memory.Buffer
	Children() []ArrayData
	Dictionary() ArrayData

	Retain()
	Release()
}

// Array is a typed, read-only view over an ArrayData node.
type Array interface {
	DataType() DataType
	Len() int
	NullN() int
	IsNull(i int) bool
	IsValid(i int) bool
	Data() ArrayData

	Retain()
	Release()
}

// Record is a columnar table: a Schema plus one same-length Array per
// field (§3, "RecordBatch").
type Record interface {
	Schema() *Schema
	Column(i int) Array
	ColumnName(i int) string
	NumCols() int64
	NumRows() int64

	Retain()
	Release()
}
