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

package ipc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakefmt/arrow"
	"github.com/lakefmt/arrow/array"
	"github.com/lakefmt/arrow/internal/flatbuf"
	"github.com/lakefmt/arrow/memory"
)

func recordBatchFrom(t *testing.T, rows int64, part flatbuf.RecordBatchPart, body []byte) *flatbuf.RecordBatch {
	t.Helper()
	b := newFBBuilder()
	msgBytes := flatbuf.BuildRecordBatchMessage(b, rows, part, int64(len(body)))
	msg := flatbuf.GetRootAsMessage(msgBytes, 0)
	require.Equal(t, flatbuf.MessageHeaderRecordBatch, msg.HeaderType())
	return msg.HeaderAsRecordBatch()
}

// TestBuildBatchPrimitiveRoundTrip decodes a three-column batch (int32,
// float64, utf8) with no nulls and checks every value comes back intact.
func TestBuildBatchPrimitiveRoundTrip(t *testing.T) {
	mem := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: &arrow.Int32Type{}},
		{Name: "score", Type: &arrow.Float64Type{}},
		{Name: "name", Type: &arrow.StringType{}},
	}, nil)

	bb := &bodyBuilder{}
	idNode, idBufs := int32Column(bb, []bool{true, true, true}, []int32{1, 2, 3})
	scoreNode, scoreBufs := float64Column(bb, []bool{true, true, true}, []float64{1.5, -2.25, 3})
	nameNode, nameBufs := utf8Column(bb, []bool{true, true, true}, []string{"a", "bb", "ccc"})

	part := flatbuf.RecordBatchPart{
		Nodes:   []flatbuf.FieldNodeValue{idNode, scoreNode, nameNode},
		Buffers: append(append(idBufs, scoreBufs...), nameBufs...),
	}
	body := bb.bytes()
	fb := recordBatchFrom(t, 3, part, body)

	rec, err := buildBatch(fb, memory.NewBufferBytes(body), schema, newDictMemo(), mem, flatbuf.MetadataVersionV5, nil)
	require.NoError(t, err)
	defer rec.Release()

	require.Equal(t, int64(3), rec.NumRows())
	idArr := rec.Column(0).(*array.Primitive[int32])
	assert.Equal(t, []int32{1, 2, 3}, idArr.Values())
	scoreArr := rec.Column(1).(*array.Primitive[float64])
	assert.Equal(t, []float64{1.5, -2.25, 3}, scoreArr.Values())
	nameArr := rec.Column(2).(*array.String)
	assert.Equal(t, "a", nameArr.Value(0))
	assert.Equal(t, "bb", nameArr.Value(1))
	assert.Equal(t, "ccc", nameArr.Value(2))
}

// TestBuildBatchNullHandling checks a column with a real validity bitmap.
func TestBuildBatchNullHandling(t *testing.T) {
	mem := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{{Name: "v", Type: &arrow.Int32Type{}, Nullable: true}}, nil)

	bb := &bodyBuilder{}
	node, bufs := int32Column(bb, []bool{true, false, true, false}, []int32{10, 0, 30, 0})
	part := flatbuf.RecordBatchPart{Nodes: []flatbuf.FieldNodeValue{node}, Buffers: bufs}
	body := bb.bytes()
	fb := recordBatchFrom(t, 4, part, body)

	rec, err := buildBatch(fb, memory.NewBufferBytes(body), schema, newDictMemo(), mem, flatbuf.MetadataVersionV5, nil)
	require.NoError(t, err)
	defer rec.Release()

	col := rec.Column(0)
	assert.True(t, col.IsValid(0))
	assert.False(t, col.IsValid(1))
	assert.True(t, col.IsValid(2))
	assert.False(t, col.IsValid(3))
	assert.Equal(t, 2, col.NullN())
}

// S4: projecting [2,0] both restricts and reorders the output, and every
// projected column keeps its declared type.
func TestBuildBatchProjectionReordersAndPreservesType(t *testing.T) {
	mem := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: &arrow.Int32Type{}},
		{Name: "unused", Type: &arrow.Float64Type{}},
		{Name: "name", Type: &arrow.StringType{}},
	}, nil)

	bb := &bodyBuilder{}
	idNode, idBufs := int32Column(bb, []bool{true, true}, []int32{7, 8})
	unusedNode, unusedBufs := float64Column(bb, []bool{true, true}, []float64{1, 2})
	nameNode, nameBufs := utf8Column(bb, []bool{true, true}, []string{"x", "yy"})

	part := flatbuf.RecordBatchPart{
		Nodes:   []flatbuf.FieldNodeValue{idNode, unusedNode, nameNode},
		Buffers: append(append(idBufs, unusedBufs...), nameBufs...),
	}
	body := bb.bytes()
	fb := recordBatchFrom(t, 2, part, body)

	rec, err := buildBatch(fb, memory.NewBufferBytes(body), schema, newDictMemo(), mem, flatbuf.MetadataVersionV5, []int{2, 0})
	require.NoError(t, err)
	defer rec.Release()

	require.Equal(t, int64(2), rec.NumCols())
	assert.True(t, arrow.TypeEqual(rec.Schema().Field(0).Type, &arrow.StringType{}))
	assert.True(t, arrow.TypeEqual(rec.Schema().Field(1).Type, &arrow.Int32Type{}))
	assert.Equal(t, "x", rec.Column(0).(*array.String).Value(0))
	assert.Equal(t, []int32{7, 8}, rec.Column(1).(*array.Primitive[int32]).Values())
}

// S7: a values buffer written at 64-bit width for a declared Int32 column
// is reinterpreted and downcast, except when length == 1.
func TestBuildBatchNarrowIntCastQuirk(t *testing.T) {
	mem := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{{Name: "v", Type: &arrow.Int32Type{}}}, nil)

	bb := &bodyBuilder{}
	wide := int64Bytes([]int64{100, -7, 42, 9000, 1, 2, 3, 4})
	node := flatbuf.FieldNodeValue{Length: 8, NullCount: 0}
	validityBuf := bb.empty()
	valuesBuf := bb.write(wide)
	part := flatbuf.RecordBatchPart{Nodes: []flatbuf.FieldNodeValue{node}, Buffers: []flatbuf.BufferValue{validityBuf, valuesBuf}}
	body := bb.bytes()
	fb := recordBatchFrom(t, 8, part, body)

	rec, err := buildBatch(fb, memory.NewBufferBytes(body), schema, newDictMemo(), mem, flatbuf.MetadataVersionV5, nil)
	require.NoError(t, err)
	defer rec.Release()

	col := rec.Column(0).(*array.Primitive[int32])
	assert.Equal(t, []int32{100, -7, 42, 9000, 1, 2, 3, 4}, col.Values())
	assert.Equal(t, 32, col.Data().Buffers()[1].Len())
}

// The length == 1 exception: an ambiguous 8-byte buffer for a single Int32
// element is left untouched, and the first element still decodes correctly.
func TestBuildBatchNarrowIntCastQuirkLengthOneException(t *testing.T) {
	mem := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{{Name: "v", Type: &arrow.Int32Type{}}}, nil)

	bb := &bodyBuilder{}
	wide := int64Bytes([]int64{99})
	node := flatbuf.FieldNodeValue{Length: 1, NullCount: 0}
	validityBuf := bb.empty()
	valuesBuf := bb.write(wide)
	part := flatbuf.RecordBatchPart{Nodes: []flatbuf.FieldNodeValue{node}, Buffers: []flatbuf.BufferValue{validityBuf, valuesBuf}}
	body := bb.bytes()
	fb := recordBatchFrom(t, 1, part, body)

	rec, err := buildBatch(fb, memory.NewBufferBytes(body), schema, newDictMemo(), mem, flatbuf.MetadataVersionV5, nil)
	require.NoError(t, err)
	defer rec.Release()

	col := rec.Column(0).(*array.Primitive[int32])
	assert.Equal(t, int32(99), col.Value(0))
	assert.Equal(t, 8, col.Data().Buffers()[1].Len())
}

// A struct column recurses into its children and shares the same cursor.
func TestBuildBatchStruct(t *testing.T) {
	mem := memory.NewGoAllocator()
	structType := arrow.StructOf(
		arrow.Field{Name: "x", Type: &arrow.Int32Type{}},
		arrow.Field{Name: "y", Type: &arrow.StringType{}},
	)
	schema := arrow.NewSchema([]arrow.Field{{Name: "s", Type: structType}}, nil)

	bb := &bodyBuilder{}
	structNode := flatbuf.FieldNodeValue{Length: 2, NullCount: 0}
	structValidity := bb.empty()
	xNode, xBufs := int32Column(bb, []bool{true, true}, []int32{1, 2})
	yNode, yBufs := utf8Column(bb, []bool{true, true}, []string{"p", "q"})

	part := flatbuf.RecordBatchPart{
		Nodes:   []flatbuf.FieldNodeValue{structNode, xNode, yNode},
		Buffers: append(append([]flatbuf.BufferValue{structValidity}, xBufs...), yBufs...),
	}
	body := bb.bytes()
	fb := recordBatchFrom(t, 2, part, body)

	rec, err := buildBatch(fb, memory.NewBufferBytes(body), schema, newDictMemo(), mem, flatbuf.MetadataVersionV5, nil)
	require.NoError(t, err)
	defer rec.Release()

	s := rec.Column(0).(*array.Struct)
	require.Equal(t, 2, s.NumField())
	assert.Equal(t, []int32{1, 2}, s.Field(0).(*array.Primitive[int32]).Values())
	assert.Equal(t, "p", s.Field(1).(*array.String).Value(0))
	assert.Equal(t, "q", s.Field(1).(*array.String).Value(1))
}

// A list column carries (validity, offsets) plus one recursively-built child.
func TestBuildBatchList(t *testing.T) {
	mem := memory.NewGoAllocator()
	listType := arrow.ListOf(arrow.Field{Name: "item", Type: &arrow.Int32Type{}})
	schema := arrow.NewSchema([]arrow.Field{{Name: "l", Type: listType}}, nil)

	bb := &bodyBuilder{}
	listNode := flatbuf.FieldNodeValue{Length: 2, NullCount: 0}
	listValidity := bb.empty()
	offsets := bb.write(int32Bytes([]int32{0, 2, 3}))
	childNode, childBufs := int32Column(bb, []bool{true, true, true}, []int32{1, 2, 3})

	part := flatbuf.RecordBatchPart{
		Nodes:   []flatbuf.FieldNodeValue{listNode, childNode},
		Buffers: append([]flatbuf.BufferValue{listValidity, offsets}, childBufs...),
	}
	body := bb.bytes()
	fb := recordBatchFrom(t, 2, part, body)

	rec, err := buildBatch(fb, memory.NewBufferBytes(body), schema, newDictMemo(), mem, flatbuf.MetadataVersionV5, nil)
	require.NoError(t, err)
	defer rec.Release()

	l := rec.Column(0).(*array.List)
	first := l.Value(0).(*array.Primitive[int32])
	assert.Equal(t, []int32{1, 2}, first.Values())
	second := l.Value(1).(*array.Primitive[int32])
	assert.Equal(t, []int32{3}, second.Values())
}

// Dictionary columns look the dictionary id up in the memo rather than
// carrying their own values buffer.
func TestBuildBatchDictionary(t *testing.T) {
	mem := memory.NewGoAllocator()
	dictType := &arrow.DictionaryType{Index: &arrow.Int32Type{}, Value: &arrow.StringType{}}
	schema := arrow.NewSchema([]arrow.Field{{Name: "d", Type: dictType, HasDictID: true, DictID: 42}}, nil)

	dicts := newDictMemo()
	// Build the dictionary's values array as a one-column utf8 batch, the
	// same way a file reader's PreloadDictionaries step would.
	vbb := &bodyBuilder{}
	vNode, vBufs := utf8Column(vbb, []bool{true, true}, []string{"red", "blue"})
	vPart := flatbuf.RecordBatchPart{Nodes: []flatbuf.FieldNodeValue{vNode}, Buffers: vBufs}
	vBody := vbb.bytes()
	vFB := recordBatchFrom(t, 2, vPart, vBody)
	valueSchema := arrow.NewSchema([]arrow.Field{{Name: "d", Type: &arrow.StringType{}}}, nil)
	vRec, err := buildBatch(vFB, memory.NewBufferBytes(vBody), valueSchema, dicts, mem, flatbuf.MetadataVersionV5, nil)
	require.NoError(t, err)
	defer vRec.Release()
	require.NoError(t, dicts.Add(42, vRec.Column(0).Data()))

	bb := &bodyBuilder{}
	node, bufs := int32Column(bb, []bool{true, true, true}, []int32{1, 0, 1})
	part := flatbuf.RecordBatchPart{Nodes: []flatbuf.FieldNodeValue{node}, Buffers: bufs}
	body := bb.bytes()
	fb := recordBatchFrom(t, 3, part, body)

	rec, err := buildBatch(fb, memory.NewBufferBytes(body), schema, dicts, mem, flatbuf.MetadataVersionV5, nil)
	require.NoError(t, err)
	defer rec.Release()

	d := rec.Column(0).(*array.Dictionary)
	assert.Equal(t, int64(1), d.Index(0))
	assert.Equal(t, int64(0), d.Index(1))
	values := d.Dictionary().(*array.String)
	assert.Equal(t, "blue", values.Value(1))
}

// A dense union reads type ids, offsets, and every child array in full.
func TestBuildBatchUnionDense(t *testing.T) {
	mem := memory.NewGoAllocator()
	unionType := arrow.UnionOf(arrow.DenseMode, []arrow.Field{
		{Name: "i", Type: &arrow.Int32Type{}},
		{Name: "s", Type: &arrow.StringType{}},
	}, []int8{0, 1})
	schema := arrow.NewSchema([]arrow.Field{{Name: "u", Type: unionType}}, nil)

	bb := &bodyBuilder{}
	unionNode := flatbuf.FieldNodeValue{Length: 3, NullCount: 0}
	typeIDs := bb.write([]byte{0, 1, 0})
	offsets := bb.write(int32Bytes([]int32{0, 0, 1}))
	iNode, iBufs := int32Column(bb, []bool{true, true}, []int32{10, 20})
	sNode, sBufs := utf8Column(bb, []bool{true}, []string{"hi"})

	part := flatbuf.RecordBatchPart{
		Nodes:   []flatbuf.FieldNodeValue{unionNode, iNode, sNode},
		Buffers: append(append([]flatbuf.BufferValue{typeIDs, offsets}, iBufs...), sBufs...),
	}
	body := bb.bytes()
	fb := recordBatchFrom(t, 3, part, body)

	rec, err := buildBatch(fb, memory.NewBufferBytes(body), schema, newDictMemo(), mem, flatbuf.MetadataVersionV5, nil)
	require.NoError(t, err)
	defer rec.Release()

	u := rec.Column(0).(*array.Union)
	assert.Equal(t, 3, u.Len())
}
