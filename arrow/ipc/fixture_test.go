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
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/require"

	"github.com/lakefmt/arrow"
	"github.com/lakefmt/arrow/internal/flatbuf"
)

// bodyBuilder accumulates a record batch's body region, handing back
// (offset, length) descriptors 8-byte-aligned the way a real writer would.
type bodyBuilder struct {
	buf []byte
}

func (bb *bodyBuilder) pad() {
	for len(bb.buf)%8 != 0 {
		bb.buf = append(bb.buf, 0)
	}
}

func (bb *bodyBuilder) write(b []byte) flatbuf.BufferValue {
	bb.pad()
	off := int64(len(bb.buf))
	bb.buf = append(bb.buf, b...)
	return flatbuf.BufferValue{Offset: off, Length: int64(len(b))}
}

func (bb *bodyBuilder) empty() flatbuf.BufferValue {
	return flatbuf.BufferValue{Offset: int64(len(bb.buf)), Length: 0}
}

func (bb *bodyBuilder) bytes() []byte {
	bb.pad()
	return bb.buf
}

// packValidity builds a validity bitmap byte slice from a per-element
// validity mask. A nil mask means "all valid, nothing written" — callers
// still reserve a buffer slot via empty() per §4.2's node/buffer table.
func packValidity(valid []bool) []byte {
	out := make([]byte, (len(valid)+7)/8)
	for i, v := range valid {
		if v {
			out[i/8] |= 1 << uint(i%8)
		}
	}
	return out
}

func countNulls(valid []bool) int64 {
	var n int64
	for _, v := range valid {
		if !v {
			n++
		}
	}
	return n
}

// fixedWidthColumn writes a validity buffer (when any element is null) and a
// values buffer of raw little-endian bytes, matching buildFixedWidth's
// (validity, values) shape.
func fixedWidthColumn(bb *bodyBuilder, valid []bool, values []byte) (flatbuf.FieldNodeValue, []flatbuf.BufferValue) {
	nullCount := countNulls(valid)
	node := flatbuf.FieldNodeValue{Length: int64(len(valid)), NullCount: nullCount}
	var validityBuf flatbuf.BufferValue
	if nullCount == 0 {
		validityBuf = bb.empty()
	} else {
		validityBuf = bb.write(packValidity(valid))
	}
	valuesBuf := bb.write(values)
	return node, []flatbuf.BufferValue{validityBuf, valuesBuf}
}

func int32Bytes(vals []int32) []byte {
	out := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(out[i*4:], uint32(v))
	}
	return out
}

func int64Bytes(vals []int64) []byte {
	out := make([]byte, 8*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint64(out[i*8:], uint64(v))
	}
	return out
}

func float64Bytes(vals []float64) []byte {
	out := make([]byte, 8*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint64(out[i*8:], math.Float64bits(v))
	}
	return out
}

func int32Column(bb *bodyBuilder, valid []bool, vals []int32) (flatbuf.FieldNodeValue, []flatbuf.BufferValue) {
	return fixedWidthColumn(bb, valid, int32Bytes(vals))
}

func float64Column(bb *bodyBuilder, valid []bool, vals []float64) (flatbuf.FieldNodeValue, []flatbuf.BufferValue) {
	return fixedWidthColumn(bb, valid, float64Bytes(vals))
}

// utf8Column writes a (validity, offsets, values) shape matching buildBinary.
func utf8Column(bb *bodyBuilder, valid []bool, vals []string) (flatbuf.FieldNodeValue, []flatbuf.BufferValue) {
	nullCount := countNulls(valid)
	node := flatbuf.FieldNodeValue{Length: int64(len(valid)), NullCount: nullCount}
	var validityBuf flatbuf.BufferValue
	if nullCount == 0 {
		validityBuf = bb.empty()
	} else {
		validityBuf = bb.write(packValidity(valid))
	}

	offsets := make([]byte, 4*(len(vals)+1))
	var data []byte
	cursor := int32(0)
	binary.LittleEndian.PutUint32(offsets[0:], uint32(cursor))
	for i, s := range vals {
		data = append(data, s...)
		cursor += int32(len(s))
		binary.LittleEndian.PutUint32(offsets[(i+1)*4:], uint32(cursor))
	}
	offsetsBuf := bb.write(offsets)
	valuesBuf := bb.write(data)
	return node, []flatbuf.BufferValue{validityBuf, offsetsBuf, valuesBuf}
}

// frameMessage wraps raw flatbuffer message bytes in the on-wire framing of
// §6: an optional continuation marker, a 4-byte little-endian length, the
// metadata bytes, and trailing zero padding to an 8-byte boundary.
func frameMessage(meta []byte, continuation bool) []byte {
	var buf bytes.Buffer
	if continuation {
		var marker [4]byte
		binary.LittleEndian.PutUint32(marker[:], continuationMarker)
		buf.Write(marker[:])
	}
	var length [4]byte
	binary.LittleEndian.PutUint32(length[:], uint32(len(meta)))
	buf.Write(length[:])
	buf.Write(meta)
	for buf.Len()%8 != 0 {
		buf.WriteByte(0)
	}
	return buf.Bytes()
}

func newFBBuilder() *flatbuffers.Builder { return flatbuffers.NewBuilder(1024) }

// partBody is one record batch's (node/buffer table, body bytes) pair,
// ready to be framed into a message.
type partBody struct {
	rows int64
	part flatbuf.RecordBatchPart
	body []byte
}

type dictPartBody struct {
	id int64
	partBody
}

// buildFileBytes assembles a complete Arrow file (§6 "Tail"): leading magic,
// framed dictionary and record batch messages each followed directly by
// their body, the footer, the footer's length, and trailing magic.
func buildFileBytes(t *testing.T, schema *arrow.Schema, dicts []dictPartBody, records []partBody) []byte {
	t.Helper()
	out := append([]byte{}, Magic[:]...)

	var dictBlocks, recordBlocks []flatbuf.BlockValue

	for _, d := range dicts {
		b := newFBBuilder()
		msgBytes := flatbuf.BuildDictionaryBatchMessage(b, d.id, d.rows, d.part, int64(len(d.body)))
		framed := frameMessage(msgBytes, false)
		offset := int64(len(out))
		out = append(out, framed...)
		out = append(out, d.body...)
		for len(out)%8 != 0 {
			out = append(out, 0)
		}
		dictBlocks = append(dictBlocks, flatbuf.BlockValue{Offset: offset, MetaDataLength: int32(len(framed)), BodyLength: int64(len(d.body))})
	}

	for _, r := range records {
		b := newFBBuilder()
		msgBytes := flatbuf.BuildRecordBatchMessage(b, r.rows, r.part, int64(len(r.body)))
		framed := frameMessage(msgBytes, false)
		offset := int64(len(out))
		out = append(out, framed...)
		out = append(out, r.body...)
		for len(out)%8 != 0 {
			out = append(out, 0)
		}
		recordBlocks = append(recordBlocks, flatbuf.BlockValue{Offset: offset, MetaDataLength: int32(len(framed)), BodyLength: int64(len(r.body))})
	}

	fb := newFBBuilder()
	footerBytes, err := flatbuf.BuildFooter(fb, schema, dictBlocks, recordBlocks)
	require.NoError(t, err)
	out = append(out, footerBytes...)

	var footerLen [4]byte
	binary.LittleEndian.PutUint32(footerLen[:], uint32(len(footerBytes)))
	out = append(out, footerLen[:]...)
	out = append(out, Magic[:]...)
	return out
}

// buildStreamBytes assembles a message stream (§4.5): a schema message,
// then each dictionary/record message in wire order, terminated by a
// zero-length message.
func buildStreamBytes(schema *arrow.Schema, dicts []dictPartBody, records []partBody, continuationOnFirst bool) []byte {
	var out []byte

	sb := newFBBuilder()
	schemaMsg, _ := flatbuf.BuildSchemaMessage(sb, schema)
	out = append(out, frameMessage(schemaMsg, continuationOnFirst)...)

	for _, d := range dicts {
		b := newFBBuilder()
		msgBytes := flatbuf.BuildDictionaryBatchMessage(b, d.id, d.rows, d.part, int64(len(d.body)))
		out = append(out, frameMessage(msgBytes, false)...)
		out = append(out, d.body...)
	}
	for _, r := range records {
		b := newFBBuilder()
		msgBytes := flatbuf.BuildRecordBatchMessage(b, r.rows, r.part, int64(len(r.body)))
		out = append(out, frameMessage(msgBytes, false)...)
		out = append(out, r.body...)
	}

	var zero [4]byte
	out = append(out, zero[:]...)
	return out
}

// buildDeltaDictionaryMessage is BuildDictionaryBatchMessage with IsDelta
// forced true, for exercising the unconditional delta-rejection path (S6).
func buildDeltaDictionaryMessage(t *testing.T, b *flatbuffers.Builder, id, rows int64, part flatbuf.RecordBatchPart, bodyLength int64) []byte {
	t.Helper()
	b.Reset()

	flatbuf.RecordBatchStartBuffersVector(b, len(part.Buffers))
	for i := len(part.Buffers) - 1; i >= 0; i-- {
		buf := part.Buffers[i]
		flatbuf.PrependBuffer(b, buf.Offset, buf.Length)
	}
	buffersOff := b.EndVector(len(part.Buffers))

	flatbuf.RecordBatchStartNodesVector(b, len(part.Nodes))
	for i := len(part.Nodes) - 1; i >= 0; i-- {
		n := part.Nodes[i]
		flatbuf.PrependFieldNode(b, n.Length, n.NullCount)
	}
	nodesOff := b.EndVector(len(part.Nodes))

	flatbuf.RecordBatchStart(b)
	flatbuf.RecordBatchAddLength(b, rows)
	flatbuf.RecordBatchAddNodes(b, nodesOff)
	flatbuf.RecordBatchAddBuffers(b, buffersOff)
	rbOff := flatbuf.RecordBatchEnd(b)

	flatbuf.DictionaryBatchStart(b)
	flatbuf.DictionaryBatchAddId(b, id)
	flatbuf.DictionaryBatchAddData(b, rbOff)
	flatbuf.DictionaryBatchAddIsDelta(b, true)
	dbOff := flatbuf.DictionaryBatchEnd(b)

	flatbuf.MessageStart(b)
	flatbuf.MessageAddVersion(b, flatbuf.MetadataVersionV5)
	flatbuf.MessageAddHeaderType(b, flatbuf.MessageHeaderDictionaryBatch)
	flatbuf.MessageAddHeader(b, dbOff)
	flatbuf.MessageAddBodyLength(b, bodyLength)
	msg := flatbuf.MessageEnd(b)
	b.Finish(msg)
	return b.FinishedBytes()
}

// appendFooterTail appends the footer-length field and trailing magic that
// close out an Arrow file, given the already-appended footer bytes.
func appendFooterTail(out, footerBytes []byte) []byte {
	var footerLen [4]byte
	binary.LittleEndian.PutUint32(footerLen[:], uint32(len(footerBytes)))
	out = append(out, footerLen[:]...)
	out = append(out, Magic[:]...)
	return out
}
