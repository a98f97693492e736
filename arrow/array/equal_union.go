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

import "github.com/lakefmt/arrow"

// unionEqual is the four-mode dispatch grounded on arrow-rs's
// array/equal/union.rs: dense-vs-dense, sparse-vs-sparse, and the two mixed
// cases, each of which first checks the per-position field list for a type
// mismatch (equalUnionTypes) before comparing any values.
func unionEqual(l, r *Union) bool {
	if !equalUnionTypes(l, r) {
		return false
	}
	switch {
	case l.mode == arrow.DenseMode && r.mode == arrow.DenseMode:
		return equalDenseUnion(l, r)
	case l.mode == arrow.SparseMode && r.mode == arrow.SparseMode:
		return equalSparseUnion(l, r)
	case l.mode == arrow.DenseMode && r.mode == arrow.SparseMode:
		return equalDenseSparseUnion(l, r)
	default: // sparse l, dense r — reuse the dense/sparse helper with args swapped
		return equalDenseSparseUnion(r, l)
	}
}

// equalUnionTypes compares, for each logical row, whether the two unions'
// selected child field types match. A mismatch here short-circuits the
// whole comparison before any value is read.
func equalUnionTypes(l, r *Union) bool {
	for i := 0; i < l.Len(); i++ {
		lid := l.TypeID(i)
		rid := r.TypeID(i)
		lpos, lok := l.union.ChildIndex(lid)
		rpos, rok := r.union.ChildIndex(rid)
		if !lok || !rok {
			return false
		}
		if !arrow.TypeEqual(l.union.Fields()[lpos].Type, r.union.Fields()[rpos].Type) {
			return false
		}
	}
	return true
}

func equalDenseUnion(l, r *Union) bool {
	for i := 0; i < l.Len(); i++ {
		lchild, lidx := l.ChildAndIndex(i)
		rchild, ridx := r.ChildAndIndex(i)
		if !rangeEqual1(lchild, lidx, rchild, ridx) {
			return false
		}
	}
	return true
}

func equalSparseUnion(l, r *Union) bool {
	for i := 0; i < l.Len(); i++ {
		lchild, lidx := l.ChildAndIndex(i)
		rchild, ridx := r.ChildAndIndex(i)
		if !rangeEqual1(lchild, lidx, rchild, ridx) {
			return false
		}
	}
	return true
}

// equalDenseSparseUnion compares a dense union (l) against a sparse one (r):
// l's child index comes from its offsets buffer, r's is simply the logical
// row position (every sparse child shares the union's own length).
func equalDenseSparseUnion(l, r *Union) bool {
	for i := 0; i < l.Len(); i++ {
		lchild, lidx := l.ChildAndIndex(i)
		rchild, ridx := r.ChildAndIndex(i)
		if !rangeEqual1(lchild, lidx, rchild, ridx) {
			return false
		}
	}
	return true
}

// rangeEqual1 compares a single element at lidx in lchild against ridx in
// rchild, honoring nullness the same way equalRange does.
func rangeEqual1(lchild arrow.Array, lidx int, rchild arrow.Array, ridx int) bool {
	if lchild.IsNull(lidx) != rchild.IsNull(ridx) {
		return false
	}
	if lchild.IsNull(lidx) {
		return true
	}
	return compareAt(lchild, lidx, rchild, ridx)
}
