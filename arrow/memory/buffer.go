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

package memory

import (
	"bytes"
	"sync/atomic"
)

// Buffer is an immutable, reference-counted byte region (§3 "Buffer"). All
// sub-slices returned by NewSlice share the refcount of the region they were
// carved from, so the underlying bytes outlive any one slice handle.
type Buffer struct {
	refs   *int64
	data   []byte
	parent *Buffer // retained for as long as this slice is alive
	mem    Allocator
}

// NewBufferBytes wraps an existing, unowned byte slice (e.g. bytes decoded
// from a message body). It starts with a refcount of 1; when the count
// reaches zero, Release only drops the handle's reference to the bytes:
// there is no allocator to free back to.
func NewBufferBytes(buf []byte) *Buffer {
	n := int64(1)
	return &Buffer{refs: &n, data: buf}
}

// NewResizableBuffer allocates a new, empty, growable Buffer from mem.
func NewResizableBuffer(mem Allocator) *Buffer {
	n := int64(1)
	return &Buffer{refs: &n, mem: mem}
}

// Resize grows or shrinks the buffer to exactly size bytes, preserving
// existing content up to min(old, new) length.
func (b *Buffer) Resize(size int) {
	if b.mem == nil {
		panic("memory: Resize called on a non-resizable Buffer")
	}
	b.data = b.mem.Reallocate(size, b.data)
}

func (b *Buffer) Bytes() []byte { return b.data }
func (b *Buffer) Len() int      { return len(b.data) }

// Retain increments the shared refcount.
func (b *Buffer) Retain() {
	if b.refs != nil {
		atomic.AddInt64(b.refs, 1)
	}
}

// Release decrements the shared refcount, freeing the backing array via the
// owning allocator (and releasing any retained parent) once it hits zero.
func (b *Buffer) Release() {
	if b.refs == nil {
		return
	}
	if atomic.AddInt64(b.refs, -1) == 0 {
		if b.mem != nil {
			b.mem.Free(b.data)
		}
		if b.parent != nil {
			b.parent.Release()
		}
		b.data = nil
	}
}

// NewSlice returns a new Buffer handle viewing b.data[i:j], sharing b's
// refcount target. The slice retains its parent so the region cannot be
// freed while the slice is alive.
func (b *Buffer) NewSlice(i, j int64) *Buffer {
	b.Retain()
	return &Buffer{refs: b.refs, data: b.data[i:j], parent: b}
}

// Equal compares the logical byte content, not capacity.
func (b *Buffer) Equal(other *Buffer) bool {
	if b == other {
		return true
	}
	if b == nil || other == nil {
		return false
	}
	return bytes.Equal(b.data, other.data)
}
