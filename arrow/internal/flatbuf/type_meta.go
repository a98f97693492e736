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

// TypeMeta carries the parameters of whichever Type a Field's TypeType
// selects: bit widths, units, precision/scale, a timezone string, a
// type-ids vector (Union), and the Map keys-sorted flag. See the package
// doc for why this is one table instead of a true union.
type TypeMeta struct {
	_tab flatbuffers.Table
}

func GetRootAsTypeMeta(buf []byte, offset flatbuffers.UOffsetT) *TypeMeta {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	t := &TypeMeta{}
	t.Init(buf, n+offset)
	return t
}

func (t *TypeMeta) Init(buf []byte, i flatbuffers.UOffsetT) {
	t._tab.Bytes = buf
	t._tab.Pos = i
}

func (t *TypeMeta) Table() flatbuffers.Table { return t._tab }

func (t *TypeMeta) BitWidth() int32 {
	if o := flatbuffers.UOffsetT(t._tab.Offset(4)); o != 0 {
		return t._tab.GetInt32(o + t._tab.Pos)
	}
	return 0
}

func (t *TypeMeta) IsSigned() bool {
	if o := flatbuffers.UOffsetT(t._tab.Offset(6)); o != 0 {
		return t._tab.GetBool(o + t._tab.Pos)
	}
	return false
}

func (t *TypeMeta) FloatPrecision() Precision {
	if o := flatbuffers.UOffsetT(t._tab.Offset(8)); o != 0 {
		return Precision(t._tab.GetInt16(o + t._tab.Pos))
	}
	return PrecisionHalf
}

func (t *TypeMeta) ByteWidth() int32 {
	if o := flatbuffers.UOffsetT(t._tab.Offset(10)); o != 0 {
		return t._tab.GetInt32(o + t._tab.Pos)
	}
	return 0
}

func (t *TypeMeta) ListSize() int32 {
	if o := flatbuffers.UOffsetT(t._tab.Offset(12)); o != 0 {
		return t._tab.GetInt32(o + t._tab.Pos)
	}
	return 0
}

func (t *TypeMeta) DecimalPrecision() int32 {
	if o := flatbuffers.UOffsetT(t._tab.Offset(14)); o != 0 {
		return t._tab.GetInt32(o + t._tab.Pos)
	}
	return 0
}

func (t *TypeMeta) DecimalScale() int32 {
	if o := flatbuffers.UOffsetT(t._tab.Offset(16)); o != 0 {
		return t._tab.GetInt32(o + t._tab.Pos)
	}
	return 0
}

func (t *TypeMeta) DateUnit() DateUnit {
	if o := flatbuffers.UOffsetT(t._tab.Offset(18)); o != 0 {
		return DateUnit(t._tab.GetInt16(o + t._tab.Pos))
	}
	return DateUnitDay
}

func (t *TypeMeta) TimeUnit() TimeUnit {
	if o := flatbuffers.UOffsetT(t._tab.Offset(20)); o != 0 {
		return TimeUnit(t._tab.GetInt16(o + t._tab.Pos))
	}
	return TimeUnitSecond
}

func (t *TypeMeta) Timezone() string {
	if o := flatbuffers.UOffsetT(t._tab.Offset(22)); o != 0 {
		return string(t._tab.ByteVector(o + t._tab.Pos))
	}
	return ""
}

func (t *TypeMeta) IntervalUnit() IntervalUnit {
	if o := flatbuffers.UOffsetT(t._tab.Offset(24)); o != 0 {
		return IntervalUnit(t._tab.GetInt16(o + t._tab.Pos))
	}
	return IntervalUnitYearMonth
}

func (t *TypeMeta) UnionMode() UnionMode {
	if o := flatbuffers.UOffsetT(t._tab.Offset(26)); o != 0 {
		return UnionMode(t._tab.GetInt16(o + t._tab.Pos))
	}
	return UnionModeSparse
}

func (t *TypeMeta) TypeIdsLength() int {
	if o := flatbuffers.UOffsetT(t._tab.Offset(28)); o != 0 {
		return t._tab.VectorLen(o)
	}
	return 0
}

func (t *TypeMeta) TypeIds(j int) int32 {
	if o := flatbuffers.UOffsetT(t._tab.Offset(28)); o != 0 {
		a := t._tab.Vector(o)
		return t._tab.GetInt32(a + flatbuffers.UOffsetT(j)*4)
	}
	return 0
}

func (t *TypeMeta) KeysSorted() bool {
	if o := flatbuffers.UOffsetT(t._tab.Offset(30)); o != 0 {
		return t._tab.GetBool(o + t._tab.Pos)
	}
	return false
}

func TypeMetaStart(b *flatbuffers.Builder) { b.StartObject(14) }
func TypeMetaAddBitWidth(b *flatbuffers.Builder, v int32) {
	b.PrependInt32Slot(0, v, 0)
}
func TypeMetaAddIsSigned(b *flatbuffers.Builder, v bool) {
	b.PrependBoolSlot(1, v, false)
}
func TypeMetaAddFloatPrecision(b *flatbuffers.Builder, v Precision) {
	b.PrependInt16Slot(2, int16(v), int16(PrecisionHalf))
}
func TypeMetaAddByteWidth(b *flatbuffers.Builder, v int32) {
	b.PrependInt32Slot(3, v, 0)
}
func TypeMetaAddListSize(b *flatbuffers.Builder, v int32) {
	b.PrependInt32Slot(4, v, 0)
}
func TypeMetaAddDecimalPrecision(b *flatbuffers.Builder, v int32) {
	b.PrependInt32Slot(5, v, 0)
}
func TypeMetaAddDecimalScale(b *flatbuffers.Builder, v int32) {
	b.PrependInt32Slot(6, v, 0)
}
func TypeMetaAddDateUnit(b *flatbuffers.Builder, v DateUnit) {
	b.PrependInt16Slot(7, int16(v), int16(DateUnitDay))
}
func TypeMetaAddTimeUnit(b *flatbuffers.Builder, v TimeUnit) {
	b.PrependInt16Slot(8, int16(v), int16(TimeUnitSecond))
}
func TypeMetaAddTimezone(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(9, v, 0)
}
func TypeMetaAddIntervalUnit(b *flatbuffers.Builder, v IntervalUnit) {
	b.PrependInt16Slot(10, int16(v), int16(IntervalUnitYearMonth))
}
func TypeMetaAddUnionMode(b *flatbuffers.Builder, v UnionMode) {
	b.PrependInt16Slot(11, int16(v), int16(UnionModeSparse))
}
func TypeMetaAddTypeIds(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(12, v, 0)
}
func TypeMetaAddKeysSorted(b *flatbuffers.Builder, v bool) {
	b.PrependBoolSlot(13, v, false)
}
func TypeMetaEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT { return b.EndObject() }
