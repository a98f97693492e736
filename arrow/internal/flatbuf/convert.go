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

	"github.com/lakefmt/arrow"
)

// SchemaToArrow decodes a flatbuf Schema into the domain arrow.Schema.
func SchemaToArrow(s *Schema) (*arrow.Schema, error) {
	fields := make([]arrow.Field, s.FieldsLength())
	for i := range fields {
		var fbf Field
		s.Fields(&fbf, i)
		f, err := FieldToArrow(&fbf)
		if err != nil {
			return nil, err
		}
		fields[i] = f
	}
	return arrow.NewSchema(fields, nil), nil
}

// FieldToArrow decodes one flatbuf Field, recursing into children and
// resolving the dictionary encoding if present.
func FieldToArrow(f *Field) (arrow.Field, error) {
	dt, err := DataTypeToArrow(f)
	if err != nil {
		return arrow.Field{}, err
	}
	out := arrow.Field{Name: f.Name(), Type: dt, Nullable: f.Nullable()}
	var enc DictionaryEncoding
	if d := f.Dictionary(&enc); d != nil {
		out.HasDictID = true
		out.DictID = d.Id()
	}
	return out, nil
}

func childField(f *Field, i int) (arrow.Field, error) {
	var c Field
	f.Children(&c, i)
	return FieldToArrow(&c)
}

// DataTypeToArrow decodes a Field's TypeType/Type/children into the
// concrete arrow.DataType, recursing for nested types. If the field has a
// dictionary encoding, the returned type is a DictionaryType wrapping the
// plain value type (the encoding's IndexType supplies the index type).
func DataTypeToArrow(f *Field) (arrow.DataType, error) {
	valueType, err := plainDataTypeToArrow(f)
	if err != nil {
		return nil, err
	}
	var enc DictionaryEncoding
	if d := f.Dictionary(&enc); d != nil {
		var idxMeta TypeMeta
		idx, err := intTypeFromMeta(d.IndexType(&idxMeta))
		if err != nil {
			return nil, err
		}
		return &arrow.DictionaryType{Index: idx, Value: valueType, Ordered: d.IsOrdered()}, nil
	}
	return valueType, nil
}

func intTypeFromMeta(t *TypeMeta) (arrow.DataType, error) {
	if t == nil {
		return arrow.PrimitiveTypes.Int32, nil
	}
	switch t.BitWidth() {
	case 8:
		if t.IsSigned() {
			return arrow.PrimitiveTypes.Int8, nil
		}
		return arrow.PrimitiveTypes.Uint8, nil
	case 16:
		if t.IsSigned() {
			return arrow.PrimitiveTypes.Int16, nil
		}
		return arrow.PrimitiveTypes.Uint16, nil
	case 32:
		if t.IsSigned() {
			return arrow.PrimitiveTypes.Int32, nil
		}
		return arrow.PrimitiveTypes.Uint32, nil
	case 64:
		if t.IsSigned() {
			return arrow.PrimitiveTypes.Int64, nil
		}
		return arrow.PrimitiveTypes.Uint64, nil
	default:
		return nil, fmt.Errorf("arrow/internal/flatbuf: unsupported dictionary index bit width %d", t.BitWidth())
	}
}

func plainDataTypeToArrow(f *Field) (arrow.DataType, error) {
	var meta TypeMeta
	tm := f.Type(&meta)
	switch f.TypeType() {
	case TypeNull:
		return arrow.Null, nil
	case TypeBool:
		return &arrow.BooleanType{}, nil
	case TypeInt:
		return intTypeFromMeta(tm)
	case TypeFloatingPoint:
		switch tm.FloatPrecision() {
		case PrecisionSingle:
			return &arrow.Float32Type{}, nil
		case PrecisionDouble:
			return &arrow.Float64Type{}, nil
		default:
			return nil, fmt.Errorf("arrow/internal/flatbuf: unsupported floating point precision %d", tm.FloatPrecision())
		}
	case TypeUtf8:
		return &arrow.StringType{}, nil
	case TypeLargeUtf8:
		return &arrow.LargeStringType{}, nil
	case TypeBinary:
		return &arrow.BinaryType{}, nil
	case TypeLargeBinary:
		return &arrow.LargeBinaryType{}, nil
	case TypeFixedSizeBinary:
		return &arrow.FixedSizeBinaryType{ByteWidth: int(tm.ByteWidth())}, nil
	case TypeDate:
		if tm.DateUnit() == DateUnitDay {
			return &arrow.Date32Type{}, nil
		}
		return &arrow.Date64Type{}, nil
	case TypeTime:
		if tm.BitWidth() == 32 {
			return &arrow.Time32Type{Unit: timeUnitToArrow(tm.TimeUnit())}, nil
		}
		return &arrow.Time64Type{Unit: timeUnitToArrow(tm.TimeUnit())}, nil
	case TypeTimestamp:
		return &arrow.TimestampType{Unit: timeUnitToArrow(tm.TimeUnit()), TimeZone: tm.Timezone()}, nil
	case TypeDuration:
		return &arrow.DurationType{Unit: timeUnitToArrow(tm.TimeUnit())}, nil
	case TypeInterval:
		switch tm.IntervalUnit() {
		case IntervalUnitYearMonth:
			return &arrow.MonthIntervalType{}, nil
		case IntervalUnitDayTime:
			return &arrow.DayTimeIntervalType{}, nil
		default:
			return &arrow.MonthDayNanoIntervalType{}, nil
		}
	case TypeDecimal:
		return &arrow.Decimal128Type{Precision: tm.DecimalPrecision(), Scale: tm.DecimalScale()}, nil
	case TypeList:
		child, err := childField(f, 0)
		if err != nil {
			return nil, err
		}
		return arrow.ListOf(child), nil
	case TypeLargeList:
		child, err := childField(f, 0)
		if err != nil {
			return nil, err
		}
		return arrow.LargeListOf(child), nil
	case TypeFixedSizeList:
		child, err := childField(f, 0)
		if err != nil {
			return nil, err
		}
		return arrow.FixedSizeListOf(tm.ListSize(), child), nil
	case TypeStruct:
		fields := make([]arrow.Field, f.ChildrenLength())
		for i := range fields {
			c, err := childField(f, i)
			if err != nil {
				return nil, err
			}
			fields[i] = c
		}
		return arrow.StructOf(fields...), nil
	case TypeMap:
		entry, err := childField(f, 0)
		if err != nil {
			return nil, err
		}
		return arrow.MapOf(entry, tm.KeysSorted()), nil
	case TypeUnion:
		fields := make([]arrow.Field, f.ChildrenLength())
		for i := range fields {
			c, err := childField(f, i)
			if err != nil {
				return nil, err
			}
			fields[i] = c
		}
		typeIDs := make([]int8, tm.TypeIdsLength())
		for i := range typeIDs {
			typeIDs[i] = int8(tm.TypeIds(i))
		}
		mode := arrow.SparseMode
		if tm.UnionMode() == UnionModeDense {
			mode = arrow.DenseMode
		}
		return arrow.UnionOf(mode, fields, typeIDs), nil
	default:
		return nil, fmt.Errorf("arrow/internal/flatbuf: unsupported field type tag %d", f.TypeType())
	}
}

func timeUnitToArrow(u TimeUnit) arrow.TimeUnit {
	switch u {
	case TimeUnitSecond:
		return arrow.Second
	case TimeUnitMillisecond:
		return arrow.Millisecond
	case TimeUnitMicrosecond:
		return arrow.Microsecond
	default:
		return arrow.Nanosecond
	}
}
