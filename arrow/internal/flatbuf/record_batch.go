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

package flatbuf

import flatbuffers "github.com/google/flatbuffers/go"

// RecordBatch describes one batch's field nodes and buffer descriptors,
// plus its own declared row count (§4.2, "explicit row_count").
type RecordBatch struct {
	_tab flatbuffers.Table
}

func GetRootAsRecordBatch(buf []byte, offset flatbuffers.UOffsetT) *RecordBatch {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	r := &RecordBatch{}
	r.Init(buf, n+offset)
	return r
}

func (r *RecordBatch) Init(buf []byte, i flatbuffers.UOffsetT) {
	r._tab.Bytes = buf
	r._tab.Pos = i
}

func (r *RecordBatch) Length() int64 {
	if o := flatbuffers.UOffsetT(r._tab.Offset(4)); o != 0 {
		return r._tab.GetInt64(o + r._tab.Pos)
	}
	return 0
}

func (r *RecordBatch) NodesLength() int {
	if o := flatbuffers.UOffsetT(r._tab.Offset(6)); o != 0 {
		return r._tab.VectorLen(o)
	}
	return 0
}

func (r *RecordBatch) Nodes(obj *FieldNode, j int) bool {
	o := flatbuffers.UOffsetT(r._tab.Offset(6))
	if o == 0 {
		return false
	}
	a := r._tab.Vector(o)
	obj.Init(r._tab.Bytes, a+flatbuffers.UOffsetT(j)*16)
	return true
}

func (r *RecordBatch) BuffersLength() int {
	if o := flatbuffers.UOffsetT(r._tab.Offset(8)); o != 0 {
		return r._tab.VectorLen(o)
	}
	return 0
}

func (r *RecordBatch) Buffers(obj *Buffer, j int) bool {
	o := flatbuffers.UOffsetT(r._tab.Offset(8))
	if o == 0 {
		return false
	}
	a := r._tab.Vector(o)
	obj.Init(r._tab.Bytes, a+flatbuffers.UOffsetT(j)*16)
	return true
}

func RecordBatchStart(b *flatbuffers.Builder) { b.StartObject(3) }
func RecordBatchAddLength(b *flatbuffers.Builder, v int64) {
	b.PrependInt64Slot(0, v, 0)
}
func RecordBatchAddNodes(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(1, v, 0)
}
func RecordBatchAddBuffers(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(2, v, 0)
}
func RecordBatchEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT { return b.EndObject() }

func RecordBatchStartNodesVector(b *flatbuffers.Builder, n int) flatbuffers.UOffsetT {
	return b.StartVector(16, n, 8)
}
func RecordBatchStartBuffersVector(b *flatbuffers.Builder, n int) flatbuffers.UOffsetT {
	return b.StartVector(16, n, 8)
}

// DictionaryBatch wraps a RecordBatch of dictionary values under a
// dictionary id, with an isDelta flag; the ipc readers reject delta batches
// with an UnsupportedFeature error.
type DictionaryBatch struct {
	_tab flatbuffers.Table
}

func GetRootAsDictionaryBatch(buf []byte, offset flatbuffers.UOffsetT) *DictionaryBatch {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	d := &DictionaryBatch{}
	d.Init(buf, n+offset)
	return d
}

func (d *DictionaryBatch) Init(buf []byte, i flatbuffers.UOffsetT) {
	d._tab.Bytes = buf
	d._tab.Pos = i
}

func (d *DictionaryBatch) Id() int64 {
	if o := flatbuffers.UOffsetT(d._tab.Offset(4)); o != 0 {
		return d._tab.GetInt64(o + d._tab.Pos)
	}
	return 0
}

func (d *DictionaryBatch) Data(obj *RecordBatch) *RecordBatch {
	o := flatbuffers.UOffsetT(d._tab.Offset(6))
	if o == 0 {
		return nil
	}
	if obj == nil {
		obj = &RecordBatch{}
	}
	obj.Init(d._tab.Bytes, d._tab.Indirect(o+d._tab.Pos))
	return obj
}

func (d *DictionaryBatch) IsDelta() bool {
	if o := flatbuffers.UOffsetT(d._tab.Offset(8)); o != 0 {
		return d._tab.GetBool(o + d._tab.Pos)
	}
	return false
}

func DictionaryBatchStart(b *flatbuffers.Builder) { b.StartObject(3) }
func DictionaryBatchAddId(b *flatbuffers.Builder, v int64) {
	b.PrependInt64Slot(0, v, 0)
}
func DictionaryBatchAddData(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(1, v, 0)
}
func DictionaryBatchAddIsDelta(b *flatbuffers.Builder, v bool) {
	b.PrependBoolSlot(2, v, false)
}
func DictionaryBatchEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT { return b.EndObject() }
