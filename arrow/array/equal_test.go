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
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lakefmt/arrow"
	"github.com/lakefmt/arrow/memory"
)

func int32Bytes(vals []int32) []byte {
	out := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(out[i*4:], uint32(v))
	}
	return out
}

func int8Bytes(vals []int8) []byte {
	out := make([]byte, len(vals))
	for i, v := range vals {
		out[i] = byte(v)
	}
	return out
}

func i32Data(vals []int32) arrow.ArrayData {
	buf := memory.NewBufferBytes(int32Bytes(vals))
	return NewData(&arrow.Int32Type{}, len(vals), []*memory.Buffer{nil, buf}, nil, 0, 0)
}

func strData(vals []string) arrow.ArrayData {
	offsets := make([]byte, 4*(len(vals)+1))
	var data []byte
	cursor := int32(0)
	for i, s := range vals {
		data = append(data, s...)
		cursor += int32(len(s))
		binary.LittleEndian.PutUint32(offsets[(i+1)*4:], uint32(cursor))
	}
	offBuf := memory.NewBufferBytes(offsets)
	valBuf := memory.NewBufferBytes(data)
	return NewData(&arrow.StringType{}, len(vals), []*memory.Buffer{nil, offBuf, valBuf}, nil, 0, 0)
}

func structData(fields []arrow.Field, children []arrow.ArrayData, length int) arrow.ArrayData {
	return NewData(arrow.StructOf(fields...), length, []*memory.Buffer{nil}, children, 0, 0)
}

func denseUnionData(fields []arrow.Field, typeIDs, rowTypeIDs []int8, offsets []int32, children []arrow.ArrayData) arrow.ArrayData {
	dt := arrow.UnionOf(arrow.DenseMode, fields, typeIDs)
	idBuf := memory.NewBufferBytes(int8Bytes(rowTypeIDs))
	offBuf := memory.NewBufferBytes(int32Bytes(offsets))
	return NewData(dt, len(rowTypeIDs), []*memory.Buffer{idBuf, offBuf}, children, 0, 0)
}

func sparseUnionData(fields []arrow.Field, typeIDs, rowTypeIDs []int8, children []arrow.ArrayData) arrow.ArrayData {
	dt := arrow.UnionOf(arrow.SparseMode, fields, typeIDs)
	idBuf := memory.NewBufferBytes(int8Bytes(rowTypeIDs))
	return NewData(dt, len(rowTypeIDs), []*memory.Buffer{idBuf}, children, 0, 0)
}

func mapData(entryField arrow.Field, rowOffsets []int32, entries arrow.ArrayData) arrow.ArrayData {
	dt := arrow.MapOf(entryField, false)
	offBuf := memory.NewBufferBytes(int32Bytes(rowOffsets))
	return NewData(dt, len(rowOffsets)-1, []*memory.Buffer{nil, offBuf}, []arrow.ArrayData{entries}, 0, 0)
}

func TestEqualStructDirect(t *testing.T) {
	fields := []arrow.Field{{Name: "x", Type: &arrow.Int32Type{}}, {Name: "y", Type: &arrow.StringType{}}}
	a := MakeFromData(structData(fields, []arrow.ArrayData{i32Data([]int32{1, 2}), strData([]string{"a", "b"})}, 2))
	b := MakeFromData(structData(fields, []arrow.ArrayData{i32Data([]int32{1, 2}), strData([]string{"a", "b"})}, 2))
	c := MakeFromData(structData(fields, []arrow.ArrayData{i32Data([]int32{1, 9}), strData([]string{"a", "b"})}, 2))

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
}

// unionFixture builds a 3-row union {int32, struct{x int32, y utf8}} with
// type-id pattern [0,1,0] in both dense (compacted children) and sparse
// (full-length children) layouts, so the struct variant's child arrays have
// different lengths across the two representations — the scenario
// equalDenseSparseUnion must handle via per-row comparison, not whole-array
// Equal.
func unionFixture() (dense, sparse *Union) {
	fields := []arrow.Field{
		{Name: "i", Type: &arrow.Int32Type{}},
		{Name: "s", Type: arrow.StructOf(
			arrow.Field{Name: "x", Type: &arrow.Int32Type{}},
			arrow.Field{Name: "y", Type: &arrow.StringType{}},
		)},
	}
	typeIDs := []int8{0, 1}
	rowTypeIDs := []int8{0, 1, 0}

	denseInt := i32Data([]int32{10, 30})
	denseStruct := structData(fields[1].Type.(*arrow.StructType).Fields(),
		[]arrow.ArrayData{i32Data([]int32{5}), strData([]string{"hey"})}, 1)
	denseOffsets := []int32{0, 0, 1}
	denseData := denseUnionData(fields, typeIDs, rowTypeIDs, denseOffsets, []arrow.ArrayData{denseInt, denseStruct})

	sparseInt := i32Data([]int32{10, 0, 30})
	sparseStruct := structData(fields[1].Type.(*arrow.StructType).Fields(),
		[]arrow.ArrayData{i32Data([]int32{0, 5, 0}), strData([]string{"", "hey", ""})}, 3)
	sparseData := sparseUnionData(fields, typeIDs, rowTypeIDs, []arrow.ArrayData{sparseInt, sparseStruct})

	return MakeFromData(denseData).(*Union), MakeFromData(sparseData).(*Union)
}

// unionEqual is exercised directly (rather than through the public Equal
// entry point) because arrow.TypeEqual treats differing union modes as
// differing types, so a dense/sparse pair never reaches Equal's Union
// dispatch — this is the actual internal comparison path a dense-vs-sparse
// round trip goes through.
func TestUnionEqualDenseVsSparseStructVariant(t *testing.T) {
	dense, sparse := unionFixture()
	assert.True(t, unionEqual(dense, sparse))
	// mixed mode the other way around (sparse l, dense r) must agree too.
	assert.True(t, unionEqual(sparse, dense))
}

func TestUnionEqualDenseVsSparseStructVariantMismatch(t *testing.T) {
	dense, sparse := unionFixture()
	// Corrupt the sparse side's selected struct row (index 1) only.
	fields := dense.union.Fields()
	badSparseStruct := structData(fields[1].Type.(*arrow.StructType).Fields(),
		[]arrow.ArrayData{i32Data([]int32{0, 5, 0}), strData([]string{"", "nope", ""})}, 3)
	badSparseData := sparseUnionData(dense.union.Fields(), dense.union.TypeIDs(), []int8{0, 1, 0},
		[]arrow.ArrayData{i32Data([]int32{10, 0, 30}), badSparseStruct})
	badSparse := MakeFromData(badSparseData).(*Union)

	assert.False(t, unionEqual(dense, badSparse))
}

func TestUnionEqualDenseVsDense(t *testing.T) {
	dense, _ := unionFixture()

	fields := dense.union.Fields()
	otherInt := i32Data([]int32{10, 30})
	otherStruct := structData(fields[1].Type.(*arrow.StructType).Fields(),
		[]arrow.ArrayData{i32Data([]int32{5}), strData([]string{"hey"})}, 1)
	other := MakeFromData(denseUnionData(fields, dense.union.TypeIDs(), []int8{0, 1, 0}, []int32{0, 0, 1},
		[]arrow.ArrayData{otherInt, otherStruct})).(*Union)

	assert.True(t, unionEqual(dense, other))
}

func TestUnionEqualSparseVsSparse(t *testing.T) {
	_, sparse := unionFixture()

	fields := sparse.union.Fields()
	otherInt := i32Data([]int32{10, 0, 30})
	otherStruct := structData(fields[1].Type.(*arrow.StructType).Fields(),
		[]arrow.ArrayData{i32Data([]int32{0, 5, 0}), strData([]string{"", "hey", ""})}, 3)
	other := MakeFromData(sparseUnionData(fields, sparse.union.TypeIDs(), []int8{0, 1, 0},
		[]arrow.ArrayData{otherInt, otherStruct})).(*Union)

	assert.True(t, unionEqual(sparse, other))
}

func TestMapEqualRoundTrip(t *testing.T) {
	entryField := arrow.Field{Name: "entries", Type: arrow.StructOf(
		arrow.Field{Name: "key", Type: &arrow.StringType{}},
		arrow.Field{Name: "value", Type: &arrow.Int32Type{}},
	)}

	buildMap := func(values []int32) arrow.Array {
		keys := strData([]string{"a", "b", "c"})
		vals := i32Data(values)
		entries := structData(entryField.Type.(*arrow.StructType).Fields(), []arrow.ArrayData{keys, vals}, 3)
		// Two map rows: row 0 has entries a and b, row 1 has entry c.
		data := mapData(entryField, []int32{0, 2, 3}, entries)
		return MakeFromData(data)
	}

	a := buildMap([]int32{1, 2, 3})
	b := buildMap([]int32{1, 2, 3})
	c := buildMap([]int32{1, 2, 99})

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))

	m := a.(*Map)
	assert.Equal(t, "a", m.Keys(0).(*String).Value(0))
	assert.Equal(t, "b", m.Keys(0).(*String).Value(1))
	assert.Equal(t, int32(3), m.Items(1).(*Primitive[int32]).Value(0))
}
