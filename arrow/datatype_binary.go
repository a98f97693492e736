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

type (
	StringType         struct{}
	BinaryType         struct{}
	LargeStringType    struct{}
	LargeBinaryType    struct{}
	FixedSizeBinaryType struct{ ByteWidth int }
)

func (*StringType) ID() Type        { return STRING }
func (*StringType) Name() string    { return "utf8" }
func (*StringType) String() string  { return "utf8" }
func (*StringType) IsLarge() bool   { return false }

func (*BinaryType) ID() Type       { return BINARY }
func (*BinaryType) Name() string   { return "binary" }
func (*BinaryType) String() string { return "binary" }
func (*BinaryType) IsLarge() bool  { return false }

func (*LargeStringType) ID() Type       { return LARGE_STRING }
func (*LargeStringType) Name() string   { return "large_utf8" }
func (*LargeStringType) String() string { return "large_utf8" }
func (*LargeStringType) IsLarge() bool  { return true }

func (*LargeBinaryType) ID() Type       { return LARGE_BINARY }
func (*LargeBinaryType) Name() string   { return "large_binary" }
func (*LargeBinaryType) String() string { return "large_binary" }
func (*LargeBinaryType) IsLarge() bool  { return true }

func (t *FixedSizeBinaryType) ID() Type      { return FIXED_SIZE_BINARY }
func (t *FixedSizeBinaryType) Name() string  { return "fixed_size_binary" }
func (t *FixedSizeBinaryType) String() string {
	return fmt.Sprintf("fixed_size_binary[%d]", t.ByteWidth)
}
func (t *FixedSizeBinaryType) BitWidth() int { return t.ByteWidth * 8 }

var (
	BinaryTypes = struct {
		String      *StringType
		Binary      *BinaryType
		LargeString *LargeStringType
		LargeBinary *LargeBinaryType
	}{
		String: &StringType{}, Binary: &BinaryType{},
		LargeString: &LargeStringType{}, LargeBinary: &LargeBinaryType{},
	}
)
