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

package arrow

import "fmt"

// Metadata is an ordered set of key/value string pairs attached to a Field
// or Schema.
type Metadata struct {
	keys   []string
	values []string
}

func NewMetadata(keys, values []string) Metadata {
	return Metadata{keys: append([]string(nil), keys...), values: append([]string(nil), values...)}
}

func (m Metadata) Len() int { return len(m.keys) }
func (m Metadata) Keys() []string { return m.keys }
func (m Metadata) Value(i int) string { return m.values[i] }

func (m Metadata) Equal(other Metadata) bool {
	if len(m.keys) != len(other.keys) {
		return false
	}
	for i := range m.keys {
		if m.keys[i] != other.keys[i] || m.values[i] != other.values[i] {
			return false
		}
	}
	return true
}

// Field is one column's declared shape: name, logical type, nullability,
// and (for dictionary-typed fields) the dictionary id binding it to a
// values array in the dictionary registry (§3, "Dictionary registry").
type Field struct {
	Name     string
	Type     DataType
	Nullable bool
	Metadata Metadata

	HasDictID bool
	DictID    int64
}

func (f Field) String() string {
	n := "nullable"
	if !f.Nullable {
		n = "not null"
	}
	return fmt.Sprintf("%s: %s (%s)", f.Name, f.Type, n)
}

// Equal compares name, logical type, and nullability. Dictionary id is not
// compared (a dict id is an instance binding, not part of the logical
// shape), matching the original's "we don't currently record the isOrdered
// field" posture toward dictionary metadata.
func (f Field) Equal(other Field) bool {
	return f.Name == other.Name && f.Nullable == other.Nullable && TypeEqual(f.Type, other.Type)
}

// Schema is an ordered list of Fields plus schema-level metadata.
type Schema struct {
	fields   []Field
	metadata Metadata
	index    map[string]int
}

func NewSchema(fields []Field, metadata *Metadata) *Schema {
	s := &Schema{fields: append([]Field(nil), fields...), index: make(map[string]int, len(fields))}
	if metadata != nil {
		s.metadata = *metadata
	}
	for i, f := range fields {
		s.index[f.Name] = i
	}
	return s
}

func (s *Schema) Fields() []Field    { return s.fields }
func (s *Schema) Field(i int) Field  { return s.fields[i] }
func (s *Schema) NumFields() int     { return len(s.fields) }
func (s *Schema) Metadata() Metadata { return s.metadata }

func (s *Schema) Equal(other *Schema) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return s == other
	}
	if len(s.fields) != len(other.fields) {
		return false
	}
	for i := range s.fields {
		if !s.fields[i].Equal(other.fields[i]) {
			return false
		}
	}
	return true
}

// Project returns a new Schema containing only the fields at the given
// indices, in the order given (§4.2 "Projection": "the returned batch
// carries the projected schema").
func (s *Schema) Project(indices []int) (*Schema, error) {
	fields := make([]Field, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= len(s.fields) {
			return nil, fmt.Errorf("arrow: projection index %d out of range [0,%d)", idx, len(s.fields))
		}
		fields[i] = s.fields[idx]
	}
	return NewSchema(fields, &s.metadata), nil
}

// FieldsWithDictID returns every field — recursively through
// list/large_list/fixed_size_list/struct/map/union nesting — whose dictionary
// encoding uses the given id. A dictionary batch on the wire carries only a
// values RecordBatch, not a type, so the reader must look the value type up
// this way (SPEC_FULL.md, "dictionary-id-to-field lookup through the
// schema").
func (s *Schema) FieldsWithDictID(id int64) []Field {
	var out []Field
	for _, f := range s.fields {
		collectDictFields(f, id, &out)
	}
	return out
}

func collectDictFields(f Field, id int64, out *[]Field) {
	if f.HasDictID && f.DictID == id {
		*out = append(*out, f)
	}
	if nt, ok := f.Type.(NestedDataType); ok {
		for _, child := range nt.Fields() {
			collectDictFields(child, id, out)
		}
	}
}

// TypeEqual reports deep structural equality between two logical types,
// following nested fields recursively. This is the comparison the union
// equality dispatch (§4.3) uses to short-circuit on a variant type
// mismatch before comparing any values.
func TypeEqual(a, b DataType) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.ID() != b.ID() {
		return false
	}
	switch at := a.(type) {
	case *FixedSizeBinaryType:
		return at.ByteWidth == b.(*FixedSizeBinaryType).ByteWidth
	case *Time32Type:
		return at.Unit == b.(*Time32Type).Unit
	case *Time64Type:
		return at.Unit == b.(*Time64Type).Unit
	case *TimestampType:
		bt := b.(*TimestampType)
		return at.Unit == bt.Unit && at.TimeZone == bt.TimeZone
	case *DurationType:
		return at.Unit == b.(*DurationType).Unit
	case *Decimal128Type:
		bt := b.(*Decimal128Type)
		return at.Precision == bt.Precision && at.Scale == bt.Scale
	case *ListType:
		return TypeEqual(at.Elem(), b.(*ListType).Elem())
	case *LargeListType:
		return TypeEqual(at.Elem(), b.(*LargeListType).Elem())
	case *FixedSizeListType:
		bt := b.(*FixedSizeListType)
		return at.Len() == bt.Len() && TypeEqual(at.Elem(), bt.Elem())
	case *StructType:
		bt := b.(*StructType)
		if len(at.Fields()) != len(bt.Fields()) {
			return false
		}
		for i := range at.Fields() {
			if !at.Fields()[i].Equal(bt.Fields()[i]) {
				return false
			}
		}
		return true
	case *MapType:
		return TypeEqual(at.ValueType(), b.(*MapType).ValueType())
	case *UnionType:
		bt := b.(*UnionType)
		if at.Mode() != bt.Mode() || len(at.Fields()) != len(bt.Fields()) {
			return false
		}
		for i := range at.Fields() {
			if !at.Fields()[i].Equal(bt.Fields()[i]) {
				return false
			}
		}
		return true
	case *DictionaryType:
		bt := b.(*DictionaryType)
		return at.Ordered == bt.Ordered && TypeEqual(at.Index, bt.Index) && TypeEqual(at.Value, bt.Value)
	default:
		return true // zero-field types: equal iff same ID, already checked above
	}
}
