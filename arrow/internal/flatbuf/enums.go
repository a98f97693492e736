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

// Package flatbuf is a hand-written, deliberately scoped-down metadata
// codec built on the real github.com/google/flatbuffers runtime. It is not
// generated by flatc and does not reproduce Arrow's published .fbs schema
// field-for-field: per SPEC_FULL.md ("Metadata payloads are opaque to this
// specification"), the only requirement is that this package's own
// encoder and decoder agree with each other and satisfy the contract
// listed in spec §6 — bit-exact interop with externally-produced Arrow
// files is explicitly not a goal.
package flatbuf

// MetadataVersion mirrors the wire's schema version tag. V1 is a wildcard:
// a file whose footer declares V1 accepts record batch messages of any
// version (SUPPLEMENTED FEATURES, "metadata-version V1 wildcard tolerance").
type MetadataVersion int16

const (
	MetadataVersionV1 MetadataVersion = iota
	MetadataVersionV2
	MetadataVersionV3
	MetadataVersionV4
	MetadataVersionV5
)

// MessageHeader is the tag selecting which of Schema/DictionaryBatch/
// RecordBatch a Message carries.
type MessageHeader byte

const (
	MessageHeaderNONE MessageHeader = iota
	MessageHeaderSchema
	MessageHeaderDictionaryBatch
	MessageHeaderRecordBatch
)

// Type is the logical-type discriminant carried by Field.TypeType. Unlike
// the real Arrow schema, each variant's parameters live in one shared
// TypeMeta table (see type_meta.go) rather than a true FlatBuffers union —
// this package never needs to interoperate with externally generated
// union tables, so the simplification costs nothing.
type Type byte

const (
	TypeNONE Type = iota
	TypeNull
	TypeInt
	TypeFloatingPoint
	TypeBinary
	TypeUtf8
	TypeBool
	TypeDecimal
	TypeDate
	TypeTime
	TypeTimestamp
	TypeInterval
	TypeList
	TypeStruct
	TypeUnion
	TypeFixedSizeBinary
	TypeFixedSizeList
	TypeMap
	TypeDuration
	TypeLargeBinary
	TypeLargeUtf8
	TypeLargeList
)

// Precision is FloatingPoint's bit width tag.
type Precision int16

const (
	PrecisionHalf Precision = iota
	PrecisionSingle
	PrecisionDouble
)

// DateUnit distinguishes Date32 (DAY) from Date64 (MILLISECOND).
type DateUnit int16

const (
	DateUnitDay DateUnit = iota
	DateUnitMillisecond
)

// TimeUnit is shared by Time, Timestamp, and Duration.
type TimeUnit int16

const (
	TimeUnitSecond TimeUnit = iota
	TimeUnitMillisecond
	TimeUnitMicrosecond
	TimeUnitNanosecond
)

// IntervalUnit covers all three interval representations, including
// MonthDayNano (added to real Arrow after YearMonth/DayTime).
type IntervalUnit int16

const (
	IntervalUnitYearMonth IntervalUnit = iota
	IntervalUnitDayTime
	IntervalUnitMonthDayNano
)

// UnionMode is Sparse or Dense.
type UnionMode int16

const (
	UnionModeSparse UnionMode = iota
	UnionModeDense
)
