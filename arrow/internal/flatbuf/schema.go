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

// Schema is an ordered list of top-level Fields.
type Schema struct {
	_tab flatbuffers.Table
}

func GetRootAsSchema(buf []byte, offset flatbuffers.UOffsetT) *Schema {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	s := &Schema{}
	s.Init(buf, n+offset)
	return s
}

func (s *Schema) Init(buf []byte, i flatbuffers.UOffsetT) {
	s._tab.Bytes = buf
	s._tab.Pos = i
}

func (s *Schema) FieldsLength() int {
	if o := flatbuffers.UOffsetT(s._tab.Offset(4)); o != 0 {
		return s._tab.VectorLen(o)
	}
	return 0
}

func (s *Schema) Fields(obj *Field, j int) bool {
	o := flatbuffers.UOffsetT(s._tab.Offset(4))
	if o == 0 {
		return false
	}
	a := s._tab.Vector(o)
	obj.Init(s._tab.Bytes, s._tab.Indirect(a+flatbuffers.UOffsetT(j)*4))
	return true
}

func SchemaStart(b *flatbuffers.Builder) { b.StartObject(1) }
func SchemaAddFields(b *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(0, v, 0)
}
func SchemaEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT { return b.EndObject() }

func SchemaStartFieldsVector(b *flatbuffers.Builder, n int) flatbuffers.UOffsetT {
	return b.StartVector(4, n, 4)
}
