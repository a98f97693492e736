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
	"unsafe"

	"github.com/lakefmt/arrow"
	"github.com/lakefmt/arrow/array"
	"github.com/lakefmt/arrow/internal/flatbuf"
	"github.com/lakefmt/arrow/memory"
)

// batchBuilder is the array reconstruction engine of §4.2: it walks a
// schema in declaration order, advancing a field-node cursor and a
// buffer-descriptor cursor through the recursive type structure, the same
// way the teacher's arrayLoaderContext walked nodes/buffers one at a time
// via field()/buffer(). skip mode (the projection skip walk) advances both
// cursors through the identical recursive structure without reading any
// bytes, so decode and skip can never drift apart (§9, "Skip walk parity").
type batchBuilder struct {
	fb      *flatbuf.RecordBatch
	body    *memory.Buffer
	dicts   *dictMemo
	mem     memory.Allocator
	preV5   bool
	nodeIdx int
	bufIdx  int
}

func (b *batchBuilder) nextNode() (length, nullCount int64, err error) {
	if b.nodeIdx >= b.fb.NodesLength() {
		return 0, 0, newError(KindDecodeError, "field node cursor overrun at index %d", b.nodeIdx)
	}
	var n flatbuf.FieldNode
	b.fb.Nodes(&n, b.nodeIdx)
	b.nodeIdx++
	return n.Length(), n.NullCount(), nil
}

func (b *batchBuilder) nextBuffer() (*memory.Buffer, error) {
	if b.bufIdx >= b.fb.BuffersLength() {
		return nil, newError(KindDecodeError, "buffer cursor overrun at index %d", b.bufIdx)
	}
	var buf flatbuf.Buffer
	b.fb.Buffers(&buf, b.bufIdx)
	b.bufIdx++
	if buf.Length() == 0 {
		return nil, nil
	}
	if buf.Offset() < 0 || buf.Length() < 0 || buf.Offset()+buf.Length() > int64(b.body.Len()) {
		return nil, newError(KindDecodeError, "buffer [%d,%d) out of body bounds (body len=%d)",
			buf.Offset(), buf.Offset()+buf.Length(), b.body.Len())
	}
	return b.body.NewSlice(buf.Offset(), buf.Offset()+buf.Length()), nil
}

func (b *batchBuilder) skipBuffer() error {
	if b.bufIdx >= b.fb.BuffersLength() {
		return newError(KindDecodeError, "buffer cursor overrun at index %d", b.bufIdx)
	}
	b.bufIdx++
	return nil
}

// nullBuffer consumes the validity buffer slot, reading it only when
// null_count != 0 — a null_count of 0 elides the buffer entirely and the
// column is treated as all-valid (§4.2).
func (b *batchBuilder) nullBuffer(nullCount int64) (*memory.Buffer, error) {
	if nullCount == 0 {
		return nil, b.skipBuffer()
	}
	return b.nextBuffer()
}

// build dispatches on field.Type to the per-shape builder, exhaustively
// covering the buffer/node/child table in §4.2. skip replicates the same
// cursor advances without materializing an array (used by projection).
func (b *batchBuilder) build(field arrow.Field, skip bool) (arrow.Array, error) {
	switch dt := field.Type.(type) {
	case *arrow.NullType:
		return b.buildNull(skip)
	case *arrow.DictionaryType:
		return b.buildDictionary(field, dt, skip)
	case arrow.BinaryDataType:
		return b.buildBinary(dt, skip)
	case *arrow.ListType:
		return b.buildListLike(dt.ElemField(), dt, skip)
	case *arrow.LargeListType:
		return b.buildListLike(dt.ElemField(), dt, skip)
	case *arrow.MapType:
		return b.buildListLike(dt.ValueField(), dt, skip)
	case *arrow.FixedSizeListType:
		return b.buildFixedSizeList(dt, skip)
	case *arrow.StructType:
		return b.buildStruct(dt, skip)
	case *arrow.UnionType:
		return b.buildUnion(dt, skip)
	case arrow.FixedWidthDataType:
		// Bool, Int*, Uint*, Float*, Date*, Time*, Timestamp, Duration,
		// Interval*, Decimal128, and FixedSizeBinary all share the
		// (validity, values) shape — only the per-element bit width differs
		// (§4.2, "Fixed primitive" and "FixedSizeBinary" rows).
		return b.buildFixedWidth(dt, skip)
	default:
		return nil, newError(KindUnsupportedFeature, "unsupported field type %s", field.Type)
	}
}

func (b *batchBuilder) buildNull(skip bool) (arrow.Array, error) {
	length, nullCount, err := b.nextNode()
	if err != nil {
		return nil, err
	}
	if length != nullCount {
		return nil, newError(KindDecodeError, "null column length %d does not match null_count %d", length, nullCount)
	}
	if skip {
		return nil, nil
	}
	data := array.NewData(arrow.Null, int(length), nil, nil, int(nullCount), 0)
	defer data.Release()
	return array.MakeFromData(data), nil
}

func (b *batchBuilder) buildFixedWidth(dt arrow.FixedWidthDataType, skip bool) (arrow.Array, error) {
	length, nullCount, err := b.nextNode()
	if err != nil {
		return nil, err
	}
	if skip {
		if err := b.skipBuffer(); err != nil {
			return nil, err
		}
		return nil, b.skipBuffer()
	}
	validity, err := b.nullBuffer(nullCount)
	if err != nil {
		return nil, err
	}
	values, err := b.nextBuffer()
	if err != nil {
		return nil, err
	}
	values, err = applyNarrowCastQuirk(dt, values, int(length), b.mem)
	if err != nil {
		return nil, err
	}
	data := array.NewData(dt, int(length), []*memory.Buffer{validity, values}, nil, int(nullCount), 0)
	defer data.Release()
	return array.MakeFromData(data), nil
}

func (b *batchBuilder) buildBinary(dt arrow.BinaryDataType, skip bool) (arrow.Array, error) {
	length, nullCount, err := b.nextNode()
	if err != nil {
		return nil, err
	}
	if skip {
		for i := 0; i < 3; i++ {
			if err := b.skipBuffer(); err != nil {
				return nil, err
			}
		}
		return nil, nil
	}
	validity, err := b.nullBuffer(nullCount)
	if err != nil {
		return nil, err
	}
	offsets, err := b.nextBuffer()
	if err != nil {
		return nil, err
	}
	values, err := b.nextBuffer()
	if err != nil {
		return nil, err
	}
	data := array.NewData(dt, int(length), []*memory.Buffer{validity, offsets, values}, nil, int(nullCount), 0)
	defer data.Release()
	return array.MakeFromData(data), nil
}

func (b *batchBuilder) buildListLike(childField arrow.Field, dt arrow.DataType, skip bool) (arrow.Array, error) {
	length, nullCount, err := b.nextNode()
	if err != nil {
		return nil, err
	}
	if skip {
		if err := b.skipBuffer(); err != nil {
			return nil, err
		}
		if err := b.skipBuffer(); err != nil {
			return nil, err
		}
		_, err = b.build(childField, true)
		return nil, err
	}
	validity, err := b.nullBuffer(nullCount)
	if err != nil {
		return nil, err
	}
	offsets, err := b.nextBuffer()
	if err != nil {
		return nil, err
	}
	child, err := b.build(childField, false)
	if err != nil {
		return nil, err
	}
	defer child.Release()
	data := array.NewData(dt, int(length), []*memory.Buffer{validity, offsets}, []arrow.ArrayData{child.Data()}, int(nullCount), 0)
	defer data.Release()
	return array.MakeFromData(data), nil
}

func (b *batchBuilder) buildFixedSizeList(dt *arrow.FixedSizeListType, skip bool) (arrow.Array, error) {
	length, nullCount, err := b.nextNode()
	if err != nil {
		return nil, err
	}
	if skip {
		if err := b.skipBuffer(); err != nil {
			return nil, err
		}
		_, err = b.build(dt.ElemField(), true)
		return nil, err
	}
	validity, err := b.nullBuffer(nullCount)
	if err != nil {
		return nil, err
	}
	child, err := b.build(dt.ElemField(), false)
	if err != nil {
		return nil, err
	}
	defer child.Release()
	data := array.NewData(dt, int(length), []*memory.Buffer{validity}, []arrow.ArrayData{child.Data()}, int(nullCount), 0)
	defer data.Release()
	return array.MakeFromData(data), nil
}

func (b *batchBuilder) buildStruct(dt *arrow.StructType, skip bool) (arrow.Array, error) {
	length, nullCount, err := b.nextNode()
	if err != nil {
		return nil, err
	}
	if skip {
		if err := b.skipBuffer(); err != nil {
			return nil, err
		}
		for _, f := range dt.Fields() {
			if _, err := b.build(f, true); err != nil {
				return nil, err
			}
		}
		return nil, nil
	}
	validity, err := b.nullBuffer(nullCount)
	if err != nil {
		return nil, err
	}
	fields := dt.Fields()
	children := make([]arrow.ArrayData, len(fields))
	arrs := make([]arrow.Array, len(fields))
	for i, f := range fields {
		arrs[i], err = b.build(f, false)
		if err != nil {
			return nil, err
		}
		children[i] = arrs[i].Data()
	}
	defer releaseArrays(arrs)
	data := array.NewData(dt, int(length), []*memory.Buffer{validity}, children, int(nullCount), 0)
	defer data.Release()
	return array.MakeFromData(data), nil
}

// buildUnion reads a union array (§4.2): one field node carrying only a
// length (unions have no top-level validity concept), a type-ids buffer,
// a dense-mode-only offsets buffer, and one child array per union field.
// Metadata versions before the cutoff additionally carried a validity
// buffer ahead of the type ids, which is consumed and discarded here
// rather than skipped, so its presence never corrupts the cursor (§4.2,
// "pre-V5 union" quirk).
func (b *batchBuilder) buildUnion(dt *arrow.UnionType, skip bool) (arrow.Array, error) {
	length, _, err := b.nextNode()
	if err != nil {
		return nil, err
	}

	if b.preV5 {
		if skip {
			if err := b.skipBuffer(); err != nil {
				return nil, err
			}
		} else if legacy, err := b.nextBuffer(); err != nil {
			return nil, err
		} else if legacy != nil {
			legacy.Release()
		}
	}

	if skip {
		if err := b.skipBuffer(); err != nil {
			return nil, err
		}
		if dt.Mode() == arrow.DenseMode {
			if err := b.skipBuffer(); err != nil {
				return nil, err
			}
		}
		for _, f := range dt.Fields() {
			if _, err := b.build(f, true); err != nil {
				return nil, err
			}
		}
		return nil, nil
	}

	typeIDs, err := b.nextBuffer()
	if err != nil {
		return nil, err
	}
	buffers := []*memory.Buffer{typeIDs}
	if dt.Mode() == arrow.DenseMode {
		offsets, err := b.nextBuffer()
		if err != nil {
			return nil, err
		}
		buffers = append(buffers, offsets)
	}

	fields := dt.Fields()
	children := make([]arrow.ArrayData, len(fields))
	arrs := make([]arrow.Array, len(fields))
	for i, f := range fields {
		arrs[i], err = b.build(f, false)
		if err != nil {
			return nil, err
		}
		children[i] = arrs[i].Data()
	}
	defer releaseArrays(arrs)

	data := array.NewData(dt, int(length), buffers, children, 0, 0)
	defer data.Release()
	return array.MakeFromData(data), nil
}

func releaseArrays(arrs []arrow.Array) {
	for _, a := range arrs {
		if a != nil {
			a.Release()
		}
	}
}

// isNarrowCastType reports whether dt is a type the narrow-int/float
// up-cast quirk can apply to (§4.2, "Narrow-int up-cast quirk").
func isNarrowCastType(dt arrow.DataType) bool {
	switch dt.(type) {
	case *arrow.Int8Type, *arrow.Uint8Type, *arrow.Int16Type, *arrow.Uint16Type,
		*arrow.Int32Type, *arrow.Uint32Type, *arrow.Float32Type:
		return true
	default:
		return false
	}
}

// applyNarrowCastQuirk detects a values buffer written at 64-bit width for
// a narrower declared type and materializes a fresh buffer at the declared
// width (§4.2, S7). The length != 1 exception resolves the single-element
// ambiguity in favor of the natural width.
func applyNarrowCastQuirk(dt arrow.DataType, buf *memory.Buffer, length int, mem memory.Allocator) (*memory.Buffer, error) {
	if buf == nil || length == 0 || !isNarrowCastType(dt) {
		return buf, nil
	}
	if buf.Len()/8 != length || length == 1 {
		return buf, nil
	}
	out := memory.NewResizableBuffer(mem)
	if _, ok := dt.(*arrow.Float32Type); ok {
		wide := unsafe.Slice((*float64)(unsafe.Pointer(&buf.Bytes()[0])), length)
		out.Resize(length * 4)
		narrow := unsafe.Slice((*float32)(unsafe.Pointer(&out.Bytes()[0])), length)
		for i, v := range wide {
			narrow[i] = float32(v)
		}
		return out, nil
	}
	wide := unsafe.Slice((*int64)(unsafe.Pointer(&buf.Bytes()[0])), length)
	width := narrowIntByteWidth(dt)
	out.Resize(length * width)
	writeNarrowInts(dt, out.Bytes(), wide)
	return out, nil
}

func narrowIntByteWidth(dt arrow.DataType) int {
	switch dt.(type) {
	case *arrow.Int8Type, *arrow.Uint8Type:
		return 1
	case *arrow.Int16Type, *arrow.Uint16Type:
		return 2
	default:
		return 4
	}
}

func writeNarrowInts(dt arrow.DataType, dst []byte, wide []int64) {
	n := len(wide)
	switch dt.(type) {
	case *arrow.Int8Type:
		out := unsafe.Slice((*int8)(unsafe.Pointer(&dst[0])), n)
		for i, v := range wide {
			out[i] = int8(v)
		}
	case *arrow.Uint8Type:
		out := unsafe.Slice((*uint8)(unsafe.Pointer(&dst[0])), n)
		for i, v := range wide {
			out[i] = uint8(v)
		}
	case *arrow.Int16Type:
		out := unsafe.Slice((*int16)(unsafe.Pointer(&dst[0])), n)
		for i, v := range wide {
			out[i] = int16(v)
		}
	case *arrow.Uint16Type:
		out := unsafe.Slice((*uint16)(unsafe.Pointer(&dst[0])), n)
		for i, v := range wide {
			out[i] = uint16(v)
		}
	case *arrow.Int32Type:
		out := unsafe.Slice((*int32)(unsafe.Pointer(&dst[0])), n)
		for i, v := range wide {
			out[i] = int32(v)
		}
	case *arrow.Uint32Type:
		out := unsafe.Slice((*uint32)(unsafe.Pointer(&dst[0])), n)
		for i, v := range wide {
			out[i] = uint32(v)
		}
	}
}

// buildBatch assembles one RecordBatch from fb's nodes/buffers against
// schema, walking every field in declaration order so the cursors stay in
// sync; a projection re-orders only the *output* column slice, never the
// decode walk itself (§4.2 "Projection").
func buildBatch(fb *flatbuf.RecordBatch, body *memory.Buffer, schema *arrow.Schema, dicts *dictMemo, mem memory.Allocator, version flatbuf.MetadataVersion, projection []int) (*array.Record, error) {
	b := &batchBuilder{fb: fb, body: body, dicts: dicts, mem: mem, preV5: preV5Union(version)}

	var selected map[int]bool
	if projection != nil {
		selected = make(map[int]bool, len(projection))
		for _, idx := range projection {
			selected[idx] = true
		}
	}

	built := make([]arrow.Array, schema.NumFields())
	for i, f := range schema.Fields() {
		skip := selected != nil && !selected[i]
		arr, err := b.build(f, skip)
		if err != nil {
			releaseArrays(built)
			return nil, err
		}
		built[i] = arr
	}
	defer releaseArrays(built)

	outSchema := schema
	cols := built
	if projection != nil {
		var err error
		outSchema, err = schema.Project(projection)
		if err != nil {
			return nil, wrapError(KindSchemaMismatch, err, "invalid projection")
		}
		cols = make([]arrow.Array, len(projection))
		for i, idx := range projection {
			cols[i] = built[idx]
		}
	}

	rec, err := array.NewRecord(outSchema, cols, fb.Length())
	if err != nil {
		return nil, wrapError(KindDecodeError, err, "could not build record batch")
	}
	return rec, nil
}

func (b *batchBuilder) buildDictionary(field arrow.Field, dt *arrow.DictionaryType, skip bool) (arrow.Array, error) {
	length, nullCount, err := b.nextNode()
	if err != nil {
		return nil, err
	}
	if skip {
		if err := b.skipBuffer(); err != nil {
			return nil, err
		}
		return nil, b.skipBuffer()
	}
	validity, err := b.nullBuffer(nullCount)
	if err != nil {
		return nil, err
	}
	indices, err := b.nextBuffer()
	if err != nil {
		return nil, err
	}
	if !field.HasDictID {
		return nil, newError(KindSchemaMismatch, "dictionary-typed field %q declares no dictionary id", field.Name)
	}
	values, ok := b.dicts.Lookup(field.DictID)
	if !ok {
		return nil, newError(KindSchemaMismatch, "dictionary id %d not registered for field %q", field.DictID, field.Name)
	}
	data := array.NewDataWithDictionary(dt, int(length), []*memory.Buffer{validity, indices}, int(nullCount), 0, values)
	defer data.Release()
	return array.MakeFromData(data), nil
}
