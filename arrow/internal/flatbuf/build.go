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

import (
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/lakefmt/arrow"
)

// BuildSchemaMessage encodes schema as a standalone Message(Schema) and
// returns its finished bytes. The writer side proper is out of scope for
// this module (spec §1); this, and the sibling Build* functions below,
// exist only so the package's own tests can produce self-consistent IPC
// fixtures without depending on an externally produced Arrow file.
func BuildSchemaMessage(b *flatbuffers.Builder, schema *arrow.Schema) ([]byte, error) {
	b.Reset()
	schemaOff, err := buildSchema(b, schema)
	if err != nil {
		return nil, err
	}
	MessageStart(b)
	MessageAddVersion(b, MetadataVersionV5)
	MessageAddHeaderType(b, MessageHeaderSchema)
	MessageAddHeader(b, schemaOff)
	MessageAddBodyLength(b, 0)
	msg := MessageEnd(b)
	b.Finish(msg)
	return b.FinishedBytes(), nil
}

// RecordBatchPart describes one column's field node + buffer descriptors,
// already flattened in reconstruction-walk order (matches §4.2's node/
// buffer cursor lock-step).
type RecordBatchPart struct {
	Nodes   []FieldNodeValue
	Buffers []BufferValue
}

type FieldNodeValue struct {
	Length    int64
	NullCount int64
}

type BufferValue struct {
	Offset int64
	Length int64
}

// BuildRecordBatchMessage encodes a Message(RecordBatch) header. bodyLength
// is the caller-computed padded length of the body bytes that follow it on
// the wire.
func BuildRecordBatchMessage(b *flatbuffers.Builder, rows int64, part RecordBatchPart, bodyLength int64) []byte {
	b.Reset()

	RecordBatchStartBuffersVector(b, len(part.Buffers))
	for i := len(part.Buffers) - 1; i >= 0; i-- {
		buf := part.Buffers[i]
		PrependBuffer(b, buf.Offset, buf.Length)
	}
	buffersOff := b.EndVector(len(part.Buffers))

	RecordBatchStartNodesVector(b, len(part.Nodes))
	for i := len(part.Nodes) - 1; i >= 0; i-- {
		n := part.Nodes[i]
		PrependFieldNode(b, n.Length, n.NullCount)
	}
	nodesOff := b.EndVector(len(part.Nodes))

	RecordBatchStart(b)
	RecordBatchAddLength(b, rows)
	RecordBatchAddNodes(b, nodesOff)
	RecordBatchAddBuffers(b, buffersOff)
	rbOff := RecordBatchEnd(b)

	MessageStart(b)
	MessageAddVersion(b, MetadataVersionV5)
	MessageAddHeaderType(b, MessageHeaderRecordBatch)
	MessageAddHeader(b, rbOff)
	MessageAddBodyLength(b, bodyLength)
	msg := MessageEnd(b)
	b.Finish(msg)
	return b.FinishedBytes()
}

// BuildDictionaryBatchMessage encodes a Message(DictionaryBatch) header
// wrapping one RecordBatch of dictionary values.
func BuildDictionaryBatchMessage(b *flatbuffers.Builder, id int64, rows int64, part RecordBatchPart, bodyLength int64) []byte {
	b.Reset()

	RecordBatchStartBuffersVector(b, len(part.Buffers))
	for i := len(part.Buffers) - 1; i >= 0; i-- {
		buf := part.Buffers[i]
		PrependBuffer(b, buf.Offset, buf.Length)
	}
	buffersOff := b.EndVector(len(part.Buffers))

	RecordBatchStartNodesVector(b, len(part.Nodes))
	for i := len(part.Nodes) - 1; i >= 0; i-- {
		n := part.Nodes[i]
		PrependFieldNode(b, n.Length, n.NullCount)
	}
	nodesOff := b.EndVector(len(part.Nodes))

	RecordBatchStart(b)
	RecordBatchAddLength(b, rows)
	RecordBatchAddNodes(b, nodesOff)
	RecordBatchAddBuffers(b, buffersOff)
	rbOff := RecordBatchEnd(b)

	DictionaryBatchStart(b)
	DictionaryBatchAddId(b, id)
	DictionaryBatchAddData(b, rbOff)
	DictionaryBatchAddIsDelta(b, false)
	dbOff := DictionaryBatchEnd(b)

	MessageStart(b)
	MessageAddVersion(b, MetadataVersionV5)
	MessageAddHeaderType(b, MessageHeaderDictionaryBatch)
	MessageAddHeader(b, dbOff)
	MessageAddBodyLength(b, bodyLength)
	msg := MessageEnd(b)
	b.Finish(msg)
	return b.FinishedBytes()
}

// BuildFooter encodes the file-format tail structure: schema plus the two
// block indices.
func BuildFooter(b *flatbuffers.Builder, schema *arrow.Schema, dictionaries, recordBatches []BlockValue) ([]byte, error) {
	b.Reset()
	schemaOff, err := buildSchema(b, schema)
	if err != nil {
		return nil, err
	}

	FooterStartRecordBatchesVector(b, len(recordBatches))
	for i := len(recordBatches) - 1; i >= 0; i-- {
		blk := recordBatches[i]
		PrependBlock(b, blk.Offset, blk.MetaDataLength, blk.BodyLength)
	}
	rbsOff := b.EndVector(len(recordBatches))

	FooterStartDictionariesVector(b, len(dictionaries))
	for i := len(dictionaries) - 1; i >= 0; i-- {
		blk := dictionaries[i]
		PrependBlock(b, blk.Offset, blk.MetaDataLength, blk.BodyLength)
	}
	dictsOff := b.EndVector(len(dictionaries))

	FooterStart(b)
	FooterAddVersion(b, MetadataVersionV5)
	FooterAddSchema(b, schemaOff)
	FooterAddDictionaries(b, dictsOff)
	FooterAddRecordBatches(b, rbsOff)
	f := FooterEnd(b)
	b.Finish(f)
	return b.FinishedBytes(), nil
}

type BlockValue struct {
	Offset         int64
	MetaDataLength int32
	BodyLength     int64
}

func buildSchema(b *flatbuffers.Builder, schema *arrow.Schema) (flatbuffers.UOffsetT, error) {
	fieldOffs := make([]flatbuffers.UOffsetT, schema.NumFields())
	for i, f := range schema.Fields() {
		off, err := buildField(b, f)
		if err != nil {
			return 0, err
		}
		fieldOffs[i] = off
	}
	SchemaStartFieldsVector(b, len(fieldOffs))
	for i := len(fieldOffs) - 1; i >= 0; i-- {
		b.PrependUOffsetT(fieldOffs[i])
	}
	fieldsVec := b.EndVector(len(fieldOffs))

	SchemaStart(b)
	SchemaAddFields(b, fieldsVec)
	return SchemaEnd(b), nil
}

func buildField(b *flatbuffers.Builder, f arrow.Field) (flatbuffers.UOffsetT, error) {
	valueType := f.Type
	var dictOff flatbuffers.UOffsetT
	if f.HasDictID {
		dt, ok := valueType.(*arrow.DictionaryType)
		if !ok {
			return 0, fmt.Errorf("arrow/internal/flatbuf: field %q has a dict id but is not a DictionaryType", f.Name)
		}
		idxOff, err := buildIntTypeMeta(b, dt.Index)
		if err != nil {
			return 0, err
		}
		DictionaryEncodingStart(b)
		DictionaryEncodingAddId(b, f.DictID)
		DictionaryEncodingAddIndexType(b, idxOff)
		DictionaryEncodingAddIsOrdered(b, dt.Ordered)
		dictOff = DictionaryEncodingEnd(b)
		valueType = dt.Value
	}

	typeTag, typeOff, childOffs, err := buildType(b, valueType)
	if err != nil {
		return 0, err
	}

	var childrenVec flatbuffers.UOffsetT
	if len(childOffs) > 0 {
		FieldStartChildrenVector(b, len(childOffs))
		for i := len(childOffs) - 1; i >= 0; i-- {
			b.PrependUOffsetT(childOffs[i])
		}
		childrenVec = b.EndVector(len(childOffs))
	}

	nameOff := b.CreateString(f.Name)

	FieldStart(b)
	FieldAddName(b, nameOff)
	FieldAddNullable(b, f.Nullable)
	FieldAddTypeType(b, typeTag)
	FieldAddType(b, typeOff)
	if dictOff != 0 {
		FieldAddDictionary(b, dictOff)
	}
	if childrenVec != 0 {
		FieldAddChildren(b, childrenVec)
	}
	return FieldEnd(b), nil
}

func buildIntTypeMeta(b *flatbuffers.Builder, dt arrow.DataType) (flatbuffers.UOffsetT, error) {
	bw, signed, err := intParams(dt)
	if err != nil {
		return 0, err
	}
	TypeMetaStart(b)
	TypeMetaAddBitWidth(b, bw)
	TypeMetaAddIsSigned(b, signed)
	return TypeMetaEnd(b), nil
}

func intParams(dt arrow.DataType) (int32, bool, error) {
	switch dt.(type) {
	case *arrow.Int8Type:
		return 8, true, nil
	case *arrow.Int16Type:
		return 16, true, nil
	case *arrow.Int32Type:
		return 32, true, nil
	case *arrow.Int64Type:
		return 64, true, nil
	case *arrow.Uint8Type:
		return 8, false, nil
	case *arrow.Uint16Type:
		return 16, false, nil
	case *arrow.Uint32Type:
		return 32, false, nil
	case *arrow.Uint64Type:
		return 64, false, nil
	default:
		return 0, false, fmt.Errorf("arrow/internal/flatbuf: %s is not a valid dictionary index type", dt)
	}
}

// buildType writes one Type-tag's params table (and recursively, its
// children's Field tables) and returns the tag, the params-table offset,
// and the child Field offsets (the caller assembles the children vector,
// since Field is the only place a children vector is attached).
func buildType(b *flatbuffers.Builder, dt arrow.DataType) (Type, flatbuffers.UOffsetT, []flatbuffers.UOffsetT, error) {
	switch t := dt.(type) {
	case *arrow.NullType:
		TypeMetaStart(b)
		return TypeNull, TypeMetaEnd(b), nil, nil
	case *arrow.BooleanType:
		TypeMetaStart(b)
		return TypeBool, TypeMetaEnd(b), nil, nil
	case *arrow.Int8Type, *arrow.Int16Type, *arrow.Int32Type, *arrow.Int64Type,
		*arrow.Uint8Type, *arrow.Uint16Type, *arrow.Uint32Type, *arrow.Uint64Type:
		bw, signed, _ := intParams(dt)
		TypeMetaStart(b)
		TypeMetaAddBitWidth(b, bw)
		TypeMetaAddIsSigned(b, signed)
		return TypeInt, TypeMetaEnd(b), nil, nil
	case *arrow.Float32Type:
		TypeMetaStart(b)
		TypeMetaAddFloatPrecision(b, PrecisionSingle)
		return TypeFloatingPoint, TypeMetaEnd(b), nil, nil
	case *arrow.Float64Type:
		TypeMetaStart(b)
		TypeMetaAddFloatPrecision(b, PrecisionDouble)
		return TypeFloatingPoint, TypeMetaEnd(b), nil, nil
	case *arrow.StringType:
		TypeMetaStart(b)
		return TypeUtf8, TypeMetaEnd(b), nil, nil
	case *arrow.LargeStringType:
		TypeMetaStart(b)
		return TypeLargeUtf8, TypeMetaEnd(b), nil, nil
	case *arrow.BinaryType:
		TypeMetaStart(b)
		return TypeBinary, TypeMetaEnd(b), nil, nil
	case *arrow.LargeBinaryType:
		TypeMetaStart(b)
		return TypeLargeBinary, TypeMetaEnd(b), nil, nil
	case *arrow.FixedSizeBinaryType:
		TypeMetaStart(b)
		TypeMetaAddByteWidth(b, int32(t.ByteWidth))
		return TypeFixedSizeBinary, TypeMetaEnd(b), nil, nil
	case *arrow.Date32Type:
		TypeMetaStart(b)
		TypeMetaAddDateUnit(b, DateUnitDay)
		return TypeDate, TypeMetaEnd(b), nil, nil
	case *arrow.Date64Type:
		TypeMetaStart(b)
		TypeMetaAddDateUnit(b, DateUnitMillisecond)
		return TypeDate, TypeMetaEnd(b), nil, nil
	case *arrow.Time32Type:
		TypeMetaStart(b)
		TypeMetaAddBitWidth(b, 32)
		TypeMetaAddTimeUnit(b, timeUnitFromArrow(t.Unit))
		return TypeTime, TypeMetaEnd(b), nil, nil
	case *arrow.Time64Type:
		TypeMetaStart(b)
		TypeMetaAddBitWidth(b, 64)
		TypeMetaAddTimeUnit(b, timeUnitFromArrow(t.Unit))
		return TypeTime, TypeMetaEnd(b), nil, nil
	case *arrow.TimestampType:
		tzOff := flatbuffers.UOffsetT(0)
		if t.TimeZone != "" {
			tzOff = b.CreateString(t.TimeZone)
		}
		TypeMetaStart(b)
		TypeMetaAddTimeUnit(b, timeUnitFromArrow(t.Unit))
		if tzOff != 0 {
			TypeMetaAddTimezone(b, tzOff)
		}
		return TypeTimestamp, TypeMetaEnd(b), nil, nil
	case *arrow.DurationType:
		TypeMetaStart(b)
		TypeMetaAddTimeUnit(b, timeUnitFromArrow(t.Unit))
		return TypeDuration, TypeMetaEnd(b), nil, nil
	case *arrow.MonthIntervalType:
		TypeMetaStart(b)
		TypeMetaAddIntervalUnit(b, IntervalUnitYearMonth)
		return TypeInterval, TypeMetaEnd(b), nil, nil
	case *arrow.DayTimeIntervalType:
		TypeMetaStart(b)
		TypeMetaAddIntervalUnit(b, IntervalUnitDayTime)
		return TypeInterval, TypeMetaEnd(b), nil, nil
	case *arrow.MonthDayNanoIntervalType:
		TypeMetaStart(b)
		TypeMetaAddIntervalUnit(b, IntervalUnitMonthDayNano)
		return TypeInterval, TypeMetaEnd(b), nil, nil
	case *arrow.Decimal128Type:
		TypeMetaStart(b)
		TypeMetaAddDecimalPrecision(b, t.Precision)
		TypeMetaAddDecimalScale(b, t.Scale)
		return TypeDecimal, TypeMetaEnd(b), nil, nil
	case *arrow.ListType:
		childOff, err := buildField(b, t.ElemField())
		if err != nil {
			return 0, 0, nil, err
		}
		TypeMetaStart(b)
		return TypeList, TypeMetaEnd(b), []flatbuffers.UOffsetT{childOff}, nil
	case *arrow.LargeListType:
		childOff, err := buildField(b, t.ElemField())
		if err != nil {
			return 0, 0, nil, err
		}
		TypeMetaStart(b)
		return TypeLargeList, TypeMetaEnd(b), []flatbuffers.UOffsetT{childOff}, nil
	case *arrow.FixedSizeListType:
		childOff, err := buildField(b, t.ElemField())
		if err != nil {
			return 0, 0, nil, err
		}
		TypeMetaStart(b)
		TypeMetaAddListSize(b, t.Len())
		return TypeFixedSizeList, TypeMetaEnd(b), []flatbuffers.UOffsetT{childOff}, nil
	case *arrow.StructType:
		childOffs := make([]flatbuffers.UOffsetT, len(t.Fields()))
		for i, cf := range t.Fields() {
			off, err := buildField(b, cf)
			if err != nil {
				return 0, 0, nil, err
			}
			childOffs[i] = off
		}
		TypeMetaStart(b)
		return TypeStruct, TypeMetaEnd(b), childOffs, nil
	case *arrow.MapType:
		childOff, err := buildField(b, t.ValueField())
		if err != nil {
			return 0, 0, nil, err
		}
		TypeMetaStart(b)
		TypeMetaAddKeysSorted(b, t.KeysSorted())
		return TypeMap, TypeMetaEnd(b), []flatbuffers.UOffsetT{childOff}, nil
	case *arrow.UnionType:
		childOffs := make([]flatbuffers.UOffsetT, len(t.Fields()))
		for i, cf := range t.Fields() {
			off, err := buildField(b, cf)
			if err != nil {
				return 0, 0, nil, err
			}
			childOffs[i] = off
		}
		typeIDs := t.TypeIDs()
		TypeMetaStartTypeIdsVector(b, len(typeIDs))
		for i := len(typeIDs) - 1; i >= 0; i-- {
			b.PrependInt32(int32(typeIDs[i]))
		}
		idsVec := b.EndVector(len(typeIDs))
		mode := UnionModeSparse
		if t.Mode() == arrow.DenseMode {
			mode = UnionModeDense
		}
		TypeMetaStart(b)
		TypeMetaAddUnionMode(b, mode)
		TypeMetaAddTypeIds(b, idsVec)
		return TypeUnion, TypeMetaEnd(b), childOffs, nil
	default:
		return 0, 0, nil, fmt.Errorf("arrow/internal/flatbuf: unsupported data type %s", dt)
	}
}

func timeUnitFromArrow(u arrow.TimeUnit) TimeUnit {
	switch u {
	case arrow.Second:
		return TimeUnitSecond
	case arrow.Millisecond:
		return TimeUnitMillisecond
	case arrow.Microsecond:
		return TimeUnitMicrosecond
	default:
		return TimeUnitNanosecond
	}
}

func TypeMetaStartTypeIdsVector(b *flatbuffers.Builder, n int) flatbuffers.UOffsetT {
	return b.StartVector(4, n, 4)
}
