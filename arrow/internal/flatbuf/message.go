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

// Message is the top-level metadata envelope framed by the IPC layer: a
// version, a header-type tag selecting Schema/DictionaryBatch/RecordBatch,
// the header table itself, and the length of the body region that follows
// it on the wire (spec §6's root_as_message contract).
type Message struct {
	_tab flatbuffers.Table
}

func GetRootAsMessage(buf []byte, offset flatbuffers.UOffsetT) *Message {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	m := &Message{}
	m.Init(buf, n+offset)
	return m
}

func (m *Message) Init(buf []byte, i flatbuffers.UOffsetT) {
	m._tab.Bytes = buf
	m._tab.Pos = i
}

func (m *Message) Version() MetadataVersion {
	if o := flatbuffers.UOffsetT(m._tab.Offset(4)); o != 0 {
		return MetadataVersion(m._tab.GetInt16(o + m._tab.Pos))
	}
	return MetadataVersionV1
}

func (m *Message) HeaderType() MessageHeader {
	if o := flatbuffers.UOffsetT(m._tab.Offset(6)); o != 0 {
		return MessageHeader(m._tab.GetByte(o + m._tab.Pos))
	}
	return MessageHeaderNONE
}

func (m *Message) header(obj *flatbuffers.Table) bool {
	o := flatbuffers.UOffsetT(m._tab.Offset(8))
	if o == 0 {
		return false
	}
	m._tab.Union(obj, o)
	return true
}

// HeaderAsSchema returns the header as a Schema, or nil if HeaderType isn't
// MessageHeaderSchema.
func (m *Message) HeaderAsSchema() *Schema {
	if m.HeaderType() != MessageHeaderSchema {
		return nil
	}
	t := &flatbuffers.Table{}
	if !m.header(t) {
		return nil
	}
	s := &Schema{}
	s.Init(t.Bytes, t.Pos)
	return s
}

// HeaderAsRecordBatch returns the header as a RecordBatch, or nil if
// HeaderType isn't MessageHeaderRecordBatch.
func (m *Message) HeaderAsRecordBatch() *RecordBatch {
	if m.HeaderType() != MessageHeaderRecordBatch {
		return nil
	}
	t := &flatbuffers.Table{}
	if !m.header(t) {
		return nil
	}
	r := &RecordBatch{}
	r.Init(t.Bytes, t.Pos)
	return r
}

// HeaderAsDictionaryBatch returns the header as a DictionaryBatch, or nil if
// HeaderType isn't MessageHeaderDictionaryBatch.
func (m *Message) HeaderAsDictionaryBatch() *DictionaryBatch {
	if m.HeaderType() != MessageHeaderDictionaryBatch {
		return nil
	}
	t := &flatbuffers.Table{}
	if !m.header(t) {
		return nil
	}
	d := &DictionaryBatch{}
	d.Init(t.Bytes, t.Pos)
	return d
}

func (m *Message) BodyLength() int64 {
	if o := flatbuffers.UOffsetT(m._tab.Offset(10)); o != 0 {
		return m._tab.GetInt64(o + m._tab.Pos)
	}
	return 0
}

func MessageStart(b *flatbuffers.Builder) { b.StartObject(4) }
func MessageAddVersion(b *flatbuffers.Builder, v MetadataVersion) {
	b.PrependInt16Slot(0, int16(v), int16(MetadataVersionV1))
}
func MessageAddHeaderType(b *flatbuffers.Builder, v MessageHeader) {
	b.PrependByteSlot(1, byte(v), 0)
}
func MessageAddHeader(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(2, v, 0)
}
func MessageAddBodyLength(b *flatbuffers.Builder, v int64) {
	b.PrependInt64Slot(3, v, 0)
}
func MessageEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT { return b.EndObject() }
