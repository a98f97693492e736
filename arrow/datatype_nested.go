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

import (
	"fmt"
	"strings"
)

// ListType is a variable-length list of Elem, backed by a monotonic int32
// offsets buffer (§3, "variable-width arrays hold offsets monotonically
// non-decreasing").
type ListType struct{ elem Field }

func ListOf(elem Field) *ListType { return &ListType{elem: elem} }

func (t *ListType) ID() Type         { return LIST }
func (t *ListType) Name() string     { return "list" }
func (t *ListType) String() string   { return fmt.Sprintf("list<%s>", t.elem.Type) }
func (t *ListType) Elem() DataType   { return t.elem.Type }
func (t *ListType) ElemField() Field { return t.elem }
func (t *ListType) Fields() []Field  { return []Field{t.elem} }

// LargeListType is ListType with an int64 offsets buffer.
type LargeListType struct{ elem Field }

func LargeListOf(elem Field) *LargeListType { return &LargeListType{elem: elem} }

func (t *LargeListType) ID() Type         { return LARGE_LIST }
func (t *LargeListType) Name() string     { return "large_list" }
func (t *LargeListType) String() string   { return fmt.Sprintf("large_list<%s>", t.elem.Type) }
func (t *LargeListType) Elem() DataType   { return t.elem.Type }
func (t *LargeListType) ElemField() Field { return t.elem }
func (t *LargeListType) Fields() []Field  { return []Field{t.elem} }

// FixedSizeListType holds exactly N elements per slot, with no offsets
// buffer at all.
type FixedSizeListType struct {
	elem Field
	n    int32
}

func FixedSizeListOf(n int32, elem Field) *FixedSizeListType {
	return &FixedSizeListType{elem: elem, n: n}
}

func (t *FixedSizeListType) ID() Type         { return FIXED_SIZE_LIST }
func (t *FixedSizeListType) Name() string     { return "fixed_size_list" }
func (t *FixedSizeListType) String() string {
	return fmt.Sprintf("fixed_size_list<%s>[%d]", t.elem.Type, t.n)
}
func (t *FixedSizeListType) Elem() DataType   { return t.elem.Type }
func (t *FixedSizeListType) ElemField() Field { return t.elem }
func (t *FixedSizeListType) Len() int32       { return t.n }
func (t *FixedSizeListType) Fields() []Field  { return []Field{t.elem} }

// StructType is a fixed set of named, possibly differently-typed fields
// sharing one validity bitmap.
type StructType struct{ fields []Field }

func StructOf(fields ...Field) *StructType { return &StructType{fields: fields} }

func (t *StructType) ID() Type        { return STRUCT }
func (t *StructType) Name() string    { return "struct" }
func (t *StructType) Fields() []Field { return t.fields }
func (t *StructType) Field(i int) Field { return t.fields[i] }
func (t *StructType) String() string {
	var parts []string
	for _, f := range t.fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Name, f.Type))
	}
	return fmt.Sprintf("struct<%s>", strings.Join(parts, ", "))
}

// UnionType is a tagged union over Fields, using TypeIDs as the
// mapping from on-wire type-id byte to position in Fields (they need not be
// 0..N-1 or densely packed).
type UnionType struct {
	mode        UnionMode
	fields      []Field
	typeIDs     []int8
	idToField   map[int8]int
}

func UnionOf(mode UnionMode, fields []Field, typeIDs []int8) *UnionType {
	idx := make(map[int8]int, len(typeIDs))
	for i, id := range typeIDs {
		idx[id] = i
	}
	return &UnionType{mode: mode, fields: fields, typeIDs: typeIDs, idToField: idx}
}

func (t *UnionType) ID() Type {
	if t.mode == DenseMode {
		return DENSE_UNION
	}
	return SPARSE_UNION
}
func (t *UnionType) Name() string      { return t.mode.String() + "_union" }
func (t *UnionType) Mode() UnionMode   { return t.mode }
func (t *UnionType) Fields() []Field   { return t.fields }
func (t *UnionType) TypeIDs() []int8   { return t.typeIDs }

// ChildIndex maps an on-wire type id to the index into Fields()/children,
// and reports whether it is known.
func (t *UnionType) ChildIndex(typeID int8) (int, bool) {
	i, ok := t.idToField[typeID]
	return i, ok
}

func (t *UnionType) String() string {
	var parts []string
	for i, f := range t.fields {
		parts = append(parts, fmt.Sprintf("%d: %s", t.typeIDs[i], f.Type))
	}
	return fmt.Sprintf("%s_union<%s>", t.mode, strings.Join(parts, ", "))
}

// MapType is a List<Struct<key, value>> with a distinguished key/value
// entry shape; KeysSorted records whether producers guaranteed sorted keys
// per entry (advisory only — not enforced on read).
type MapType struct {
	entry      Field // a Struct field "entries" whose two children are key, value
	keysSorted bool
}

func MapOf(entry Field, keysSorted bool) *MapType {
	return &MapType{entry: entry, keysSorted: keysSorted}
}

func (t *MapType) ID() Type          { return MAP }
func (t *MapType) Name() string      { return "map" }
func (t *MapType) String() string    { return fmt.Sprintf("map<%s>", t.entry.Type) }
func (t *MapType) ValueType() DataType { return t.entry.Type }
func (t *MapType) ValueField() Field   { return t.entry }
func (t *MapType) KeysSorted() bool    { return t.keysSorted }
func (t *MapType) Fields() []Field     { return []Field{t.entry} }

// StructEntry returns the underlying Struct<key,value> type of a map's
// entries field, panicking if the map was built with a non-Struct entry
// type (a schema-construction bug, not a runtime condition).
func (t *MapType) StructEntry() *StructType {
	st, ok := t.entry.Type.(*StructType)
	if !ok {
		panic("arrow: map entry field is not a struct")
	}
	return st
}

// DictionaryType encodes Value (the dictionary's value type) via Index
// (always an integer type). The DictID that binds this field to its values
// array lives on the owning Field, not here (§3, GLOSSARY "Dictionary ID"),
// matching the wire format where multiple fields can share one dictionary.
type DictionaryType struct {
	Index   DataType
	Value   DataType
	Ordered bool
}

func (t *DictionaryType) ID() Type      { return DICTIONARY }
func (t *DictionaryType) Name() string  { return "dictionary" }
func (t *DictionaryType) String() string {
	return fmt.Sprintf("dictionary<values=%s, indices=%s, ordered=%t>", t.Value, t.Index, t.Ordered)
}
