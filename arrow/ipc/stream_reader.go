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
	"io"

	"github.com/lakefmt/arrow"
	"github.com/lakefmt/arrow/internal/flatbuf"
	"github.com/lakefmt/arrow/memory"
)

// StreamReader reads the no-footer message stream of §4.5: a schema
// message, then zero or more dictionary-batch and record-batch messages in
// wire order, terminated by a zero-length message or a clean EOF.
type StreamReader struct {
	r io.Reader

	schema     *arrow.Schema
	dicts      *dictMemo
	projection []int
	mem        memory.Allocator

	finished bool
	record   arrow.Record
}

// NewStreamReader reads the schema message (unless WithSchema was supplied)
// and returns a reader positioned at the first record or dictionary batch.
func NewStreamReader(r io.Reader, opts ...Option) (*StreamReader, error) {
	cfg := newConfig(opts...)
	s := &StreamReader{r: r, dicts: cfg.dictMemo, projection: cfg.projection, mem: cfg.mem}

	if cfg.schema != nil {
		s.schema = cfg.schema
	} else {
		msg, err := s.nextMessage()
		if err != nil {
			return nil, err
		}
		if msg == nil {
			return nil, newError(KindInvalidFormat, "stream ended before a schema message was read")
		}
		defer msg.Release()
		if msg.HeaderType() != flatbuf.MessageHeaderSchema {
			return nil, newError(KindInvalidFormat, "first stream message is not a schema message")
		}
		schema, err := flatbuf.SchemaToArrow(msg.fb.HeaderAsSchema())
		if err != nil {
			return nil, wrapError(KindInvalidMetadata, err, "could not decode stream schema")
		}
		s.schema = schema
	}

	if s.projection != nil {
		if _, err := s.schema.Project(s.projection); err != nil {
			return nil, wrapError(KindSchemaMismatch, err, "invalid projection")
		}
	}

	return s, nil
}

// Schema returns the stream's schema.
func (s *StreamReader) Schema() *arrow.Schema { return s.schema }

// IsFinished reports whether the stream has reached its terminator.
func (s *StreamReader) IsFinished() bool { return s.finished }

// nextMessage reads one length-prefixed metadata message from the wire
// (§6 "Stream format"). A zero-length message, or an EOF while reading the
// length prefix (including one partway through its 4 bytes), is reported
// as (nil, nil) and
// marks the stream finished — both are legal stream terminators (§4.5).
func (s *StreamReader) nextMessage() (*message, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(s.r, lenBuf[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			s.finished = true
			return nil, nil
		}
		return nil, wrapError(KindIO, err, "could not read message length prefix")
	}

	length := binary.LittleEndian.Uint32(lenBuf[:])
	if length == continuationMarker {
		if _, err := io.ReadFull(s.r, lenBuf[:]); err != nil {
			return nil, wrapError(KindIO, err, "could not read message length after continuation marker")
		}
		length = binary.LittleEndian.Uint32(lenBuf[:])
	}

	if length == 0 {
		s.finished = true
		return nil, nil
	}

	meta := make([]byte, length)
	if _, err := io.ReadFull(s.r, meta); err != nil {
		return nil, wrapError(KindIO, err, "could not read message metadata")
	}

	return newMessage(meta), nil
}

func (s *StreamReader) readBody(bodyLength int64) (*memory.Buffer, error) {
	raw := memory.NewResizableBuffer(s.mem)
	raw.Resize(int(bodyLength))
	if bodyLength > 0 {
		if _, err := io.ReadFull(s.r, raw.Bytes()); err != nil {
			raw.Release()
			return nil, wrapError(KindIO, err, "could not read message body")
		}
	}
	return raw, nil
}

// absorbDictionary reconstructs one dictionary batch's values array and
// registers it under its id. A stream may update a previously-registered
// id with a fresh (non-delta) batch (§5, "stream-appended dictionaries may
// update a previously-seen ID"); delta batches remain unsupported (S6).
func (s *StreamReader) absorbDictionary(msg *message) error {
	dictBatch := msg.fb.HeaderAsDictionaryBatch()
	if dictBatch.IsDelta() {
		return newError(KindUnsupportedFeature, "delta dictionary batches are not supported (id=%d)", dictBatch.Id())
	}

	fields := s.schema.FieldsWithDictID(dictBatch.Id())
	if len(fields) == 0 {
		return newError(KindSchemaMismatch, "no field declares dictionary id %d", dictBatch.Id())
	}
	dt, ok := fields[0].Type.(*arrow.DictionaryType)
	if !ok {
		return newError(KindSchemaMismatch, "field for dictionary id %d is not dictionary-encoded", dictBatch.Id())
	}
	valueSchema := arrow.NewSchema([]arrow.Field{{Name: fields[0].Name, Type: dt.Value, Nullable: fields[0].Nullable}}, nil)

	body, err := s.readBody(msg.BodyLength())
	if err != nil {
		return err
	}
	defer body.Release()

	rec, err := buildBatch(dictBatch.Data(nil), body, valueSchema, s.dicts, s.mem, msg.Version(), nil)
	if err != nil {
		return wrapError(KindDecodeError, err, "could not reconstruct dictionary %d", dictBatch.Id())
	}
	defer rec.Release()

	s.dicts.Replace(dictBatch.Id(), rec.Column(0).Data())
	return nil
}

// Read returns the next record batch, transparently absorbing any
// intervening dictionary batches. At the stream's terminator it returns
// (nil, io.EOF).
func (s *StreamReader) Read() (arrow.Record, error) {
	for {
		if s.finished {
			return nil, io.EOF
		}

		msg, err := s.nextMessage()
		if err != nil {
			return nil, err
		}
		if msg == nil {
			return nil, io.EOF
		}

		switch msg.HeaderType() {
		case flatbuf.MessageHeaderDictionaryBatch:
			err := s.absorbDictionary(msg)
			msg.Release()
			if err != nil {
				return nil, err
			}
			continue

		case flatbuf.MessageHeaderRecordBatch:
			body, err := s.readBody(msg.BodyLength())
			if err != nil {
				msg.Release()
				return nil, err
			}
			rec, err := buildBatch(msg.fb.HeaderAsRecordBatch(), body, s.schema, s.dicts, s.mem, msg.Version(), s.projection)
			body.Release()
			msg.Release()
			if err != nil {
				return nil, err
			}
			if s.record != nil {
				s.record.Release()
			}
			s.record = rec
			return rec, nil

		default:
			headerType := msg.HeaderType()
			msg.Release()
			return nil, newError(KindInvalidFormat, "unexpected message header type %v in stream", headerType)
		}
	}
}

// Close releases the currently cached record. The underlying reader is not
// closed.
func (s *StreamReader) Close() error {
	if s.record != nil {
		s.record.Release()
		s.record = nil
	}
	return nil
}
