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
	"encoding/binary"

	"github.com/lakefmt/arrow/internal/flatbuf"
	"github.com/lakefmt/arrow/memory"
)

// message is a decoded metadata envelope (§6's root_as_message contract):
// version, header type, body length, and the typed header accessors,
// backed by the flatbuffer bytes kept alive in meta.
type message struct {
	meta *memory.Buffer
	fb   *flatbuf.Message
}

func newMessage(metaBytes []byte) *message {
	return &message{meta: memory.NewBufferBytes(metaBytes), fb: flatbuf.GetRootAsMessage(metaBytes, 0)}
}

func (m *message) Release()                          { m.meta.Release() }
func (m *message) Version() flatbuf.MetadataVersion   { return m.fb.Version() }
func (m *message) HeaderType() flatbuf.MessageHeader  { return m.fb.HeaderType() }
func (m *message) BodyLength() int64                  { return m.fb.BodyLength() }

// decodeMessageMeta parses buf as (optional continuation marker) + 4-byte
// little-endian length + flatbuffer bytes (+ trailing padding, ignored),
// exactly as framed on the wire (§6). A zero length is the stream/file
// terminator and is reported by returning a nil message with a nil error.
func decodeMessageMeta(buf []byte) (*message, error) {
	pos := 0
	if len(buf) >= 4 && binary.LittleEndian.Uint32(buf[:4]) == continuationMarker {
		pos = 4
	}
	if len(buf) < pos+4 {
		return nil, newError(KindInvalidFormat, "message metadata too short (%d bytes)", len(buf))
	}
	length := int(binary.LittleEndian.Uint32(buf[pos : pos+4]))
	pos += 4
	if length == 0 {
		return nil, nil
	}
	if length < 0 || len(buf) < pos+length {
		return nil, newError(KindInvalidFormat, "message metadata truncated: want %d bytes, have %d", length, len(buf)-pos)
	}
	return newMessage(buf[pos : pos+length]), nil
}

// versionCompatible implements the legacy V1 wildcard (§4.4): when the
// file's own stored version is V1, any message version is accepted; a
// fully-versioned file still requires an exact match.
func versionCompatible(got, want flatbuf.MetadataVersion) bool {
	return want == v1MetadataVersion || got == want
}

// preV5Union reports whether version predates the removal of the union
// array's extra validity buffer (§4.2, "For metadata versions earlier than
// a known cutoff, union arrays carry an extra validity buffer").
func preV5Union(version flatbuf.MetadataVersion) bool {
	return version < flatbuf.MetadataVersionV5
}

// fileBlock is one (offset, metaDataLength, bodyLength) entry from the
// footer's record-batch or dictionary block index (§6), bound to the
// source it was read from.
type fileBlock struct {
	r              ReadAtSeeker
	offset         int64
	metaDataLength int32
	bodyLength     int64
}

func (b fileBlock) readMessage() (*message, error) {
	if b.metaDataLength <= 0 {
		return nil, newError(KindInvalidFormat, "invalid block metadata length %d at offset %d", b.metaDataLength, b.offset)
	}
	buf := make([]byte, b.metaDataLength)
	if _, err := b.r.ReadAt(buf, b.offset); err != nil {
		return nil, wrapError(KindIO, err, "could not read block metadata at offset %d", b.offset)
	}
	msg, err := decodeMessageMeta(buf)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, newError(KindInvalidFormat, "block at offset %d has a zero-length message", b.offset)
	}
	return msg, nil
}

func (b fileBlock) readBody(mem memory.Allocator) (*memory.Buffer, error) {
	raw := memory.NewResizableBuffer(mem)
	raw.Resize(int(b.bodyLength))
	if b.bodyLength > 0 {
		bodyOffset := b.offset + int64(b.metaDataLength)
		if _, err := b.r.ReadAt(raw.Bytes(), bodyOffset); err != nil {
			raw.Release()
			return nil, wrapError(KindIO, err, "could not read block body at offset %d", bodyOffset)
		}
	}
	return raw, nil
}
