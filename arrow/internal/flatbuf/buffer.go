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

// Buffer is a (offset, length) descriptor into a RecordBatch's body region.
// Like Block, it is a genuine FlatBuffers struct (fixed 16-byte inline
// layout), stored directly in RecordBatch's buffers vector with no
// per-element vtable.
type Buffer struct {
	_tab flatbuffers.Table
}

func (b *Buffer) Init(buf []byte, i flatbuffers.UOffsetT) {
	b._tab.Bytes = buf
	b._tab.Pos = i
}

func (b *Buffer) Offset() int64 { return b._tab.GetInt64(b._tab.Pos + 0) }
func (b *Buffer) Length() int64 { return b._tab.GetInt64(b._tab.Pos + 8) }

// FieldNode is a (length, null_count) pair describing one array in the
// recursive walk (§4.2); also a struct, same shape as Buffer.
type FieldNode struct {
	_tab flatbuffers.Table
}

func (n *FieldNode) Init(buf []byte, i flatbuffers.UOffsetT) {
	n._tab.Bytes = buf
	n._tab.Pos = i
}

func (n *FieldNode) Length() int64    { return n._tab.GetInt64(n._tab.Pos + 0) }
func (n *FieldNode) NullCount() int64 { return n._tab.GetInt64(n._tab.Pos + 8) }

// PrependBuffer writes one Buffer struct inline (see PrependBlock).
func PrependBuffer(b *flatbuffers.Builder, offset, length int64) {
	b.Prep(8, 16)
	b.PrependInt64(length)
	b.PrependInt64(offset)
}

// PrependFieldNode writes one FieldNode struct inline (see PrependBlock).
func PrependFieldNode(b *flatbuffers.Builder, length, nullCount int64) {
	b.Prep(8, 16)
	b.PrependInt64(nullCount)
	b.PrependInt64(length)
}
