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

import "unsafe"

// Binary is the array view shared by Binary and LargeBinary (String and
// LargeString embed it and just reinterpret the bytes as UTF-8 on Value).
// Buffer layout is fixed at 3 by §4.2: (validity, offsets, values).
type Binary struct {
	base
	large bool
}

func (a *Binary) offsetAt(i int) int64 {
	off := a.data.Buffers()[1]
	if a.large {
		return int64(unsafe.Slice((*int64)(unsafe.Pointer(&off.Bytes()[0])), off.Len()/8)[i])
	}
	return int64(unsafe.Slice((*int32)(unsafe.Pointer(&off.Bytes()[0])), off.Len()/4)[i])
}

// ValueBytes returns the raw bytes of element i.
func (a *Binary) ValueBytes(i int) []byte {
	idx := a.data.Offset() + i
	start := a.offsetAt(idx)
	end := a.offsetAt(idx + 1)
	values := a.data.Buffers()[2]
	if values == nil {
		return nil
	}
	return values.Bytes()[start:end]
}

// String is Binary viewed as UTF-8 text.
type String struct{ Binary }

func (a *String) Value(i int) string { return string(a.Binary.ValueBytes(i)) }

// LargeString is the int64-offset counterpart of String.
type LargeString struct{ Binary }

func (a *LargeString) Value(i int) string { return string(a.Binary.ValueBytes(i)) }

// FixedSizeBinary holds byteWidth bytes per slot, no offsets buffer.
type FixedSizeBinary struct {
	base
	byteWidth int
}

func (a *FixedSizeBinary) Value(i int) []byte {
	buf := a.data.Buffers()[1]
	if buf == nil {
		return nil
	}
	idx := a.data.Offset() + i
	start := idx * a.byteWidth
	return buf.Bytes()[start : start+a.byteWidth]
}
