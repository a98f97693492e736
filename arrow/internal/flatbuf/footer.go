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

// Block is one (offset, metaDataLength, bodyLength) entry in the file
// footer's record-batch or dictionary block index (§6). Like Buffer and
// FieldNode, Block is a genuine FlatBuffers struct (fixed
// 24-byte inline layout: int64, int32, 4 bytes padding, int64) rather than
// a table, matching the real Arrow schema and letting Footer's two block
// vectors be addressed without a vtable per element.
type Block struct {
	_tab flatbuffers.Table
}

func (blk *Block) Init(buf []byte, i flatbuffers.UOffsetT) {
	blk._tab.Bytes = buf
	blk._tab.Pos = i
}

func (blk *Block) Offset() int64        { return blk._tab.GetInt64(blk._tab.Pos + 0) }
func (blk *Block) MetaDataLength() int32 { return blk._tab.GetInt32(blk._tab.Pos + 8) }
func (blk *Block) BodyLength() int64    { return blk._tab.GetInt64(blk._tab.Pos + 16) }

// PrependBlock writes one Block struct inline; callers build the
// dictionaries/recordBatches vectors back-to-front, per FlatBuffers vector-
// of-structs convention.
func PrependBlock(b *flatbuffers.Builder, offset int64, metaDataLength int32, bodyLength int64) {
	b.Prep(8, 24)
	b.PrependInt64(bodyLength)
	b.Pad(4)
	b.PrependInt32(metaDataLength)
	b.PrependInt64(offset)
}

// Footer is the file format's tail structure: schema, and the two block
// indices (§6).
type Footer struct {
	_tab flatbuffers.Table
}

func GetRootAsFooter(buf []byte, offset flatbuffers.UOffsetT) *Footer {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	f := &Footer{}
	f.Init(buf, n+offset)
	return f
}

func (f *Footer) Init(buf []byte, i flatbuffers.UOffsetT) {
	f._tab.Bytes = buf
	f._tab.Pos = i
}

func (f *Footer) Version() MetadataVersion {
	if o := flatbuffers.UOffsetT(f._tab.Offset(4)); o != 0 {
		return MetadataVersion(f._tab.GetInt16(o + f._tab.Pos))
	}
	return MetadataVersionV1
}

func (f *Footer) Schema(obj *Schema) *Schema {
	o := flatbuffers.UOffsetT(f._tab.Offset(6))
	if o == 0 {
		return nil
	}
	if obj == nil {
		obj = &Schema{}
	}
	obj.Init(f._tab.Bytes, f._tab.Indirect(o+f._tab.Pos))
	return obj
}

func (f *Footer) DictionariesLength() int {
	if o := flatbuffers.UOffsetT(f._tab.Offset(8)); o != 0 {
		return f._tab.VectorLen(o)
	}
	return 0
}

func (f *Footer) Dictionaries(obj *Block, j int) bool {
	o := flatbuffers.UOffsetT(f._tab.Offset(8))
	if o == 0 {
		return false
	}
	a := f._tab.Vector(o)
	obj.Init(f._tab.Bytes, a+flatbuffers.UOffsetT(j)*24)
	return true
}

func (f *Footer) RecordBatchesLength() int {
	if o := flatbuffers.UOffsetT(f._tab.Offset(10)); o != 0 {
		return f._tab.VectorLen(o)
	}
	return 0
}

func (f *Footer) RecordBatches(obj *Block, j int) bool {
	o := flatbuffers.UOffsetT(f._tab.Offset(10))
	if o == 0 {
		return false
	}
	a := f._tab.Vector(o)
	obj.Init(f._tab.Bytes, a+flatbuffers.UOffsetT(j)*24)
	return true
}

func FooterStart(b *flatbuffers.Builder) { b.StartObject(4) }
func FooterAddVersion(b *flatbuffers.Builder, v MetadataVersion) {
	b.PrependInt16Slot(0, int16(v), int16(MetadataVersionV1))
}
func FooterAddSchema(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(1, v, 0)
}
func FooterAddDictionaries(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(2, v, 0)
}
func FooterAddRecordBatches(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(3, v, 0)
}
func FooterEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT { return b.EndObject() }

func FooterStartDictionariesVector(b *flatbuffers.Builder, n int) flatbuffers.UOffsetT {
	return b.StartVector(24, n, 8)
}
func FooterStartRecordBatchesVector(b *flatbuffers.Builder, n int) flatbuffers.UOffsetT {
	return b.StartVector(24, n, 8)
}
