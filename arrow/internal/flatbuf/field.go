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

// Field is one column's on-wire declaration: name, nullability, logical
// type (TypeType + Type params table), optional dictionary encoding, and
// nested children (List/Struct/Union/Map/FixedSizeList).
type Field struct {
	_tab flatbuffers.Table
}

func (f *Field) Init(buf []byte, i flatbuffers.UOffsetT) {
	f._tab.Bytes = buf
	f._tab.Pos = i
}

func (f *Field) Name() string {
	if o := flatbuffers.UOffsetT(f._tab.Offset(4)); o != 0 {
		return string(f._tab.ByteVector(o + f._tab.Pos))
	}
	return ""
}

func (f *Field) Nullable() bool {
	if o := flatbuffers.UOffsetT(f._tab.Offset(6)); o != 0 {
		return f._tab.GetBool(o + f._tab.Pos)
	}
	return false
}

func (f *Field) TypeType() Type {
	if o := flatbuffers.UOffsetT(f._tab.Offset(8)); o != 0 {
		return Type(f._tab.GetByte(o + f._tab.Pos))
	}
	return TypeNONE
}

func (f *Field) Type(obj *TypeMeta) *TypeMeta {
	o := flatbuffers.UOffsetT(f._tab.Offset(10))
	if o == 0 {
		return nil
	}
	if obj == nil {
		obj = &TypeMeta{}
	}
	obj.Init(f._tab.Bytes, f._tab.Indirect(o+f._tab.Pos))
	return obj
}

func (f *Field) Dictionary(obj *DictionaryEncoding) *DictionaryEncoding {
	o := flatbuffers.UOffsetT(f._tab.Offset(12))
	if o == 0 {
		return nil
	}
	if obj == nil {
		obj = &DictionaryEncoding{}
	}
	obj.Init(f._tab.Bytes, f._tab.Indirect(o+f._tab.Pos))
	return obj
}

func (f *Field) ChildrenLength() int {
	if o := flatbuffers.UOffsetT(f._tab.Offset(14)); o != 0 {
		return f._tab.VectorLen(o)
	}
	return 0
}

func (f *Field) Children(obj *Field, j int) bool {
	o := flatbuffers.UOffsetT(f._tab.Offset(14))
	if o == 0 {
		return false
	}
	a := f._tab.Vector(o)
	obj.Init(f._tab.Bytes, f._tab.Indirect(a+flatbuffers.UOffsetT(j)*4))
	return true
}

func FieldStart(b *flatbuffers.Builder) { b.StartObject(6) }
func FieldAddName(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(0, v, 0)
}
func FieldAddNullable(b *flatbuffers.Builder, v bool) { b.PrependBoolSlot(1, v, false) }
func FieldAddTypeType(b *flatbuffers.Builder, v Type) { b.PrependByteSlot(2, byte(v), 0) }
func FieldAddType(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(3, v, 0)
}
func FieldAddDictionary(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(4, v, 0)
}
func FieldAddChildren(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(5, v, 0)
}
func FieldEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT { return b.EndObject() }

func FieldStartChildrenVector(b *flatbuffers.Builder, n int) flatbuffers.UOffsetT {
	return b.StartVector(4, n, 4)
}

// DictionaryEncoding binds a Field to a dictionary id, declares the index
// type, and an ordering flag (decoded into arrow.DictionaryType.Ordered).
type DictionaryEncoding struct {
	_tab flatbuffers.Table
}

func (d *DictionaryEncoding) Init(buf []byte, i flatbuffers.UOffsetT) {
	d._tab.Bytes = buf
	d._tab.Pos = i
}

func (d *DictionaryEncoding) Id() int64 {
	if o := flatbuffers.UOffsetT(d._tab.Offset(4)); o != 0 {
		return d._tab.GetInt64(o + d._tab.Pos)
	}
	return 0
}

func (d *DictionaryEncoding) IndexType(obj *TypeMeta) *TypeMeta {
	o := flatbuffers.UOffsetT(d._tab.Offset(6))
	if o == 0 {
		return nil
	}
	if obj == nil {
		obj = &TypeMeta{}
	}
	obj.Init(d._tab.Bytes, d._tab.Indirect(o+d._tab.Pos))
	return obj
}

func (d *DictionaryEncoding) IsOrdered() bool {
	if o := flatbuffers.UOffsetT(d._tab.Offset(8)); o != 0 {
		return d._tab.GetBool(o + d._tab.Pos)
	}
	return false
}

func DictionaryEncodingStart(b *flatbuffers.Builder) { b.StartObject(3) }
func DictionaryEncodingAddId(b *flatbuffers.Builder, v int64) {
	b.PrependInt64Slot(0, v, 0)
}
func DictionaryEncodingAddIndexType(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(1, v, 0)
}
func DictionaryEncodingAddIsOrdered(b *flatbuffers.Builder, v bool) {
	b.PrependBoolSlot(2, v, false)
}
func DictionaryEncodingEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT { return b.EndObject() }
