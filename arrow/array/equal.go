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
	"bytes"
	"reflect"

	"github.com/lakefmt/arrow"
)

// Equal reports whether l and r have the same logical type and the same
// sequence of (null-ness, value) pairs. It is the top-level entry into the
// equality engine (§4.3); Union gets its own four-mode dispatch in
// equal_union.go, everything else is handled by equalRange below.
func Equal(l, r arrow.Array) bool {
	if l.Len() != r.Len() {
		return false
	}
	if !arrow.TypeEqual(l.DataType(), r.DataType()) {
		return false
	}
	if u, ok := l.(*Union); ok {
		ru, ok := r.(*Union)
		if !ok {
			return false
		}
		return unionEqual(u, ru)
	}
	return equalRange(l, r, 0, l.Len())
}

// equalRange compares [start,n) of l against [start,n) of r, dispatching on
// concrete type for the parts that need a typed read (variable-width
// binary, nested children) and falling back to raw value comparison for
// fixed-width primitives.
func equalRange(l, r arrow.Array, start, n int) bool {
	for i := start; i < n; i++ {
		if !elementEqual(l, i, r, i) {
			return false
		}
	}
	return true
}

// elementEqual compares element li of l against element rj of r, treating
// nulls as equal only to nulls.
func elementEqual(l arrow.Array, li int, r arrow.Array, rj int) bool {
	if l.IsNull(li) != r.IsNull(rj) {
		return false
	}
	if l.IsNull(li) {
		return true
	}
	return compareAt(l, li, r, rj)
}

// compareAt compares element li of l against element rj of r. Indices are
// independent (rather than a single shared i) because union child
// comparison needs to compare a dense union's offset-selected row against a
// sparse union's position-selected row.
func compareAt(l arrow.Array, li int, r arrow.Array, rj int) bool {
	switch lv := l.(type) {
	case *Null:
		return true
	case *Boolean:
		return lv.Value(li) == r.(*Boolean).Value(rj)
	case *Binary:
		return bytes.Equal(lv.ValueBytes(li), r.(*Binary).ValueBytes(rj))
	case *String:
		return lv.Value(li) == r.(*String).Value(rj)
	case *LargeString:
		return lv.Value(li) == r.(*LargeString).Value(rj)
	case *FixedSizeBinary:
		return bytes.Equal(lv.Value(li), r.(*FixedSizeBinary).Value(rj))
	case *List:
		return Equal(lv.Value(li), r.(*List).Value(rj))
	case *LargeList:
		return Equal(lv.Value(li), r.(*LargeList).Value(rj))
	case *FixedSizeList:
		return Equal(lv.Value(li), r.(*FixedSizeList).Value(rj))
	case *Struct:
		rv := r.(*Struct)
		for f := 0; f < lv.NumField(); f++ {
			if !elementEqual(lv.Field(f), li, rv.Field(f), rj) {
				return false
			}
		}
		return true
	case *Map:
		rv := r.(*Map)
		return Equal(lv.Keys(li), rv.Keys(rj)) && Equal(lv.Items(li), rv.Items(rj))
	case *Dictionary:
		rv := r.(*Dictionary)
		return Equal(MakeFromData(NewSliceData(lv.Dictionary().Data(), lv.Index(li), lv.Index(li)+1)),
			MakeFromData(NewSliceData(rv.Dictionary().Data(), rv.Index(rj), rv.Index(rj)+1)))
	default:
		return primitiveValueEqual(l, li, r, rj)
	}
}

// primitiveValueEqual compares element li/rj of two Primitive[T] arrays of
// the same T via reflection: Go generics give us one array type per T but
// no common non-generic interface to call Value(i) through, so this is the
// one place that pays reflection's cost for the uniformity it buys back.
func primitiveValueEqual(l arrow.Array, li int, r arrow.Array, rj int) bool {
	lv := reflect.ValueOf(l).MethodByName("Value").Call([]reflect.Value{reflect.ValueOf(li)})[0]
	rv := reflect.ValueOf(r).MethodByName("Value").Call([]reflect.Value{reflect.ValueOf(rj)})[0]
	return lv.Interface() == rv.Interface()
}
