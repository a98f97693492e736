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

package array

import (
	"unsafe"

	"github.com/lakefmt/arrow"
)

// Dictionary is the array view for arrow.DictionaryType: buffer 1 holds the
// index values (width per dt.Index), and Data's dictionary slot holds the
// values array looked up by dictionary id at reconstruction time (§4.4).
type Dictionary struct {
	base
}

// Indices returns the index array, reinterpreted according to the
// dictionary's declared index type.
func (a *Dictionary) Indices() arrow.Array {
	dt := a.data.DataType().(*arrow.DictionaryType)
	idxData := NewData(dt.Index, a.data.Len(), a.data.Buffers(), nil, a.data.NullN(), a.data.Offset())
	return MakeFromData(idxData)
}

// Dictionary returns the shared values array this node's indices point
// into.
func (a *Dictionary) Dictionary() arrow.Array {
	dict := a.data.Dictionary()
	if dict == nil {
		return nil
	}
	return MakeFromData(dict)
}

// Index returns the raw index value at row i as an int64 regardless of the
// declared index width (int8/16/32/64), which is all callers generally need
// to look the value up in the dictionary.
func (a *Dictionary) Index(i int) int64 {
	dt := a.data.DataType().(*arrow.DictionaryType)
	buf := a.data.Buffers()[1]
	idx := a.data.Offset() + i
	switch dt.Index.(type) {
	case *arrow.Int8Type:
		return int64(unsafe.Slice((*int8)(unsafe.Pointer(&buf.Bytes()[0])), buf.Len())[idx])
	case *arrow.Uint8Type:
		return int64(buf.Bytes()[idx])
	case *arrow.Int16Type:
		return int64(unsafe.Slice((*int16)(unsafe.Pointer(&buf.Bytes()[0])), buf.Len()/2)[idx])
	case *arrow.Uint16Type:
		return int64(unsafe.Slice((*uint16)(unsafe.Pointer(&buf.Bytes()[0])), buf.Len()/2)[idx])
	case *arrow.Int32Type:
		return int64(unsafe.Slice((*int32)(unsafe.Pointer(&buf.Bytes()[0])), buf.Len()/4)[idx])
	case *arrow.Uint32Type:
		return int64(unsafe.Slice((*uint32)(unsafe.Pointer(&buf.Bytes()[0])), buf.Len()/4)[idx])
	default:
		return unsafe.Slice((*int64)(unsafe.Pointer(&buf.Bytes()[0])), buf.Len()/8)[idx]
	}
}
