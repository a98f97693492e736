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

package ipc

import (
	"sync"

	"github.com/lakefmt/arrow"
)

// dictMemo is the process-local registry mapping a dictionary id (§5) to
// the array.Data currently backing it. File readers populate it once
// during PreloadDictionaries; stream readers populate and then mutate it
// as later DictionaryBatch messages arrive.
type dictMemo struct {
	mu    sync.RWMutex
	byID  map[int64]arrow.ArrayData
}

func newDictMemo() *dictMemo {
	return &dictMemo{byID: make(map[int64]arrow.ArrayData)}
}

// Lookup returns the dictionary currently registered under id.
func (m *dictMemo) Lookup(id int64) (arrow.ArrayData, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.byID[id]
	return d, ok
}

// Add registers a never-before-seen dictionary id. Returns an error if id
// is already registered — the file format never redefines a dictionary
// (§5 "a file's dictionaries are each defined exactly once").
func (m *dictMemo) Add(id int64, data arrow.ArrayData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; ok {
		return newError(KindInvalidMetadata, "dictionary id %d already registered", id)
	}
	data.Retain()
	m.byID[id] = data
	return nil
}

// Replace overwrites the dictionary registered under id, retaining the
// new value and releasing the old one. Used for stream-time dictionary
// updates (non-delta; delta batches are rejected before this is reached)
// and, for ids seen for the first time, behaves like Add.
func (m *dictMemo) Replace(id int64, data arrow.ArrayData) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.byID[id]; ok {
		old.Release()
	}
	data.Retain()
	m.byID[id] = data
}

// Has reports whether id is currently registered.
func (m *dictMemo) Has(id int64) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.byID[id]
	return ok
}
