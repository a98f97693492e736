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
	"io"

	"github.com/lakefmt/arrow"
	"github.com/lakefmt/arrow/internal/flatbuf"
	"github.com/lakefmt/arrow/memory"
)

// FileReader implements the Open/PreloadDictionaries/Ready/Iterate state
// machine of §4.4 against a random-access Arrow file.
type FileReader struct {
	r ReadAtSeeker

	footerOffset int64
	footerBuf    *memory.Buffer
	footer       *flatbuf.Footer

	schema     *arrow.Schema
	dicts      *dictMemo
	projection []int
	mem        memory.Allocator

	record arrow.Record
	irec   int
}

// NewFileReader opens r as an Arrow file: it locates and decodes the
// footer, preloads every dictionary block, and decodes the schema (§4.4,
// steps Open and PreloadDictionaries).
func NewFileReader(r ReadAtSeeker, opts ...Option) (*FileReader, error) {
	cfg := newConfig(opts...)

	f := &FileReader{
		r:          r,
		dicts:      cfg.dictMemo,
		projection: cfg.projection,
		mem:        cfg.mem,
	}

	f.footerOffset = cfg.footerOff
	if f.footerOffset <= 0 {
		off, err := r.Seek(0, io.SeekEnd)
		if err != nil {
			return nil, wrapError(KindIO, err, "could not determine footer offset")
		}
		f.footerOffset = off
	}

	if err := f.readFooter(); err != nil {
		return nil, err
	}

	schema, err := flatbuf.SchemaToArrow(f.footer.Schema(nil))
	if err != nil {
		return nil, wrapError(KindInvalidMetadata, err, "could not decode schema")
	}
	f.schema = schema

	if err := f.preloadDictionaries(); err != nil {
		return nil, err
	}

	if cfg.schema != nil && !cfg.schema.Equal(f.schema) {
		return nil, newError(KindSchemaMismatch, "inconsistent schema for reading (got: %v, want: %v)", f.schema, cfg.schema)
	}
	if f.projection != nil {
		if _, err := f.schema.Project(f.projection); err != nil {
			return nil, wrapError(KindSchemaMismatch, err, "invalid projection")
		}
	}

	return f, nil
}

// readFooter validates the trailing magic and decodes the footer flatbuffer
// (§4.4 step 1, §6 "Tail").
func (f *FileReader) readFooter() error {
	minSize := int64(len(Magic)*2 + 4)
	if f.footerOffset <= minSize {
		return newError(KindInvalidFormat, "file too small (size=%d)", f.footerOffset)
	}

	trailer := int64(len(Magic) + 4)
	buf := make([]byte, trailer)
	if _, err := f.r.ReadAt(buf, f.footerOffset-trailer); err != nil {
		return wrapError(KindIO, err, "could not read trailing magic and footer length")
	}
	if !bytes.Equal(buf[4:], Magic[:]) {
		return newError(KindInvalidFormat, "not an Arrow file: trailing magic mismatch")
	}

	size := int64(binary.LittleEndian.Uint32(buf[:4]))
	if size <= 0 || size+minSize > f.footerOffset {
		return newError(KindInvalidFormat, "inconsistent footer length %d", size)
	}

	footerBytes := make([]byte, size)
	if _, err := f.r.ReadAt(footerBytes, f.footerOffset-trailer-size); err != nil {
		return wrapError(KindIO, err, "could not read footer")
	}

	leading := make([]byte, len(Magic))
	if _, err := f.r.ReadAt(leading, 0); err != nil {
		return wrapError(KindIO, err, "could not read leading magic")
	}
	if !bytes.Equal(leading, Magic[:]) {
		return newError(KindInvalidFormat, "not an Arrow file: leading magic mismatch")
	}

	f.footerBuf = memory.NewBufferBytes(footerBytes)
	f.footer = flatbuf.GetRootAsFooter(footerBytes, 0)
	return nil
}

func (f *FileReader) block(i int) (fileBlock, error) {
	var blk flatbuf.Block
	if !f.footer.RecordBatches(&blk, i) {
		return fileBlock{}, newError(KindInvalidFormat, "could not extract record batch block %d", i)
	}
	return fileBlock{r: f.r, offset: blk.Offset(), metaDataLength: blk.MetaDataLength(), bodyLength: blk.BodyLength()}, nil
}

func (f *FileReader) dictBlock(i int) (fileBlock, error) {
	var blk flatbuf.Block
	if !f.footer.Dictionaries(&blk, i) {
		return fileBlock{}, newError(KindInvalidFormat, "could not extract dictionary block %d", i)
	}
	return fileBlock{r: f.r, offset: blk.Offset(), metaDataLength: blk.MetaDataLength(), bodyLength: blk.BodyLength()}, nil
}

// preloadDictionaries reads every dictionary block's message and body,
// reconstructs its single-column values array, and registers it under its
// dictionary id (§4.4 step 2). Delta dictionary batches are rejected (§1
// Non-goals, scenario S6).
func (f *FileReader) preloadDictionaries() error {
	for i := 0; i < f.NumDictionaries(); i++ {
		blk, err := f.dictBlock(i)
		if err != nil {
			return err
		}
		msg, err := blk.readMessage()
		if err != nil {
			return wrapError(KindIO, err, "could not read dictionary block %d", i)
		}
		if msg.HeaderType() != flatbuf.MessageHeaderDictionaryBatch {
			msg.Release()
			return newError(KindInvalidFormat, "dictionary block %d does not hold a dictionary batch", i)
		}

		dictBatch := msg.fb.HeaderAsDictionaryBatch()
		if dictBatch.IsDelta() {
			msg.Release()
			return newError(KindUnsupportedFeature, "delta dictionary batches are not supported (id=%d)", dictBatch.Id())
		}

		fields := f.schema.FieldsWithDictID(dictBatch.Id())
		if len(fields) == 0 {
			msg.Release()
			return newError(KindSchemaMismatch, "no field declares dictionary id %d", dictBatch.Id())
		}
		dt, ok := fields[0].Type.(*arrow.DictionaryType)
		if !ok {
			msg.Release()
			return newError(KindSchemaMismatch, "field for dictionary id %d is not dictionary-encoded", dictBatch.Id())
		}
		valueSchema := arrow.NewSchema([]arrow.Field{{Name: fields[0].Name, Type: dt.Value, Nullable: fields[0].Nullable}}, nil)

		body, err := blk.readBody(f.mem)
		if err != nil {
			msg.Release()
			return err
		}

		rec, err := buildBatch(dictBatch.Data(nil), body, valueSchema, f.dicts, f.mem, msg.Version(), nil)
		body.Release()
		msg.Release()
		if err != nil {
			return wrapError(KindDecodeError, err, "could not reconstruct dictionary %d", dictBatch.Id())
		}

		values := rec.Column(0).Data()
		if err := f.dicts.Add(dictBatch.Id(), values); err != nil {
			rec.Release()
			return err
		}
		rec.Release()
	}
	return nil
}

// Schema returns the file's schema.
func (f *FileReader) Schema() *arrow.Schema { return f.schema }

// NumDictionaries returns the number of dictionary blocks in the footer.
func (f *FileReader) NumDictionaries() int {
	if f.footer == nil {
		return 0
	}
	return f.footer.DictionariesLength()
}

// NumRecords returns the number of record batch blocks in the footer.
func (f *FileReader) NumRecords() int { return f.footer.RecordBatchesLength() }

// Version returns the file's metadata version.
func (f *FileReader) Version() flatbuf.MetadataVersion { return f.footer.Version() }

// Close releases the footer buffer and the currently cached record.
func (f *FileReader) Close() error {
	if f.footerBuf != nil {
		f.footerBuf.Release()
		f.footerBuf = nil
	}
	if f.record != nil {
		f.record.Release()
		f.record = nil
	}
	return nil
}

// Record returns the i-th record batch. The returned value is valid until
// the next call to Record; callers that need it longer must Retain it.
func (f *FileReader) Record(i int) (arrow.Record, error) {
	rec, err := f.RecordAt(i)
	if err != nil {
		return nil, err
	}
	if f.record != nil {
		f.record.Release()
	}
	f.record = rec
	return rec, nil
}

// RecordAt reads and reconstructs the i-th record batch. Ownership
// transfers to the caller, who must Release it.
func (f *FileReader) RecordAt(i int) (arrow.Record, error) {
	if i < 0 || i >= f.NumRecords() {
		return nil, newError(KindDecodeError, "record index %d out of bounds [0,%d)", i, f.NumRecords())
	}

	blk, err := f.block(i)
	if err != nil {
		return nil, err
	}
	msg, err := blk.readMessage()
	if err != nil {
		return nil, wrapError(KindIO, err, "could not read record batch block %d", i)
	}
	defer msg.Release()

	if !versionCompatible(msg.Version(), f.footer.Version()) {
		return nil, newError(KindInvalidMetadata, "record batch %d metadata version %v incompatible with file version %v", i, msg.Version(), f.footer.Version())
	}
	if msg.HeaderType() != flatbuf.MessageHeaderRecordBatch {
		return nil, newError(KindInvalidFormat, "block %d is not a record batch message", i)
	}

	body, err := blk.readBody(f.mem)
	if err != nil {
		return nil, err
	}
	defer body.Release()

	rec, err := buildBatch(msg.fb.HeaderAsRecordBatch(), body, f.schema, f.dicts, f.mem, msg.Version(), f.projection)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// SetIndex repositions the Read iteration cursor to i (§4.4 "Ready"),
// without touching the currently cached record. The next Read call will
// return record i.
func (f *FileReader) SetIndex(i int) error {
	if i < 0 || i > f.NumRecords() {
		return newError(KindDecodeError, "record index %d out of bounds [0,%d]", i, f.NumRecords())
	}
	f.irec = i
	return nil
}

// Read returns the current record batch, advancing the internal cursor.
// At end of file it returns (nil, io.EOF).
func (f *FileReader) Read() (arrow.Record, error) {
	if f.irec == f.NumRecords() {
		return nil, io.EOF
	}
	rec, err := f.Record(f.irec)
	f.irec++
	return rec, err
}
