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
	"github.com/lakefmt/arrow"
	"github.com/lakefmt/arrow/memory"
)

// Option configures a FileReader or StreamReader at construction.
type Option func(*config)

type config struct {
	mem        memory.Allocator
	schema     *arrow.Schema
	footerOff  int64
	dictMemo   *dictMemo
	projection []int
}

func newConfig(opts ...Option) *config {
	cfg := &config{mem: memory.NewGoAllocator()}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.dictMemo == nil {
		cfg.dictMemo = newDictMemo()
	}
	return cfg
}

// WithAllocator overrides the allocator used for every buffer the reader
// allocates (defaults to memory.NewGoAllocator()).
func WithAllocator(mem memory.Allocator) Option {
	return func(c *config) { c.mem = mem }
}

// WithSchema supplies the schema the StreamReader should assume, bypassing
// the requirement that the first message be a schema message. FileReader
// still reads its schema from the footer and fails with a SchemaMismatch
// error when it differs from the supplied one.
func WithSchema(schema *arrow.Schema) Option {
	return func(c *config) { c.schema = schema }
}

// WithFooterOffset overrides the footer search start: by default the
// reader trusts the source's reported length, but a source that embeds an
// Arrow file inside a larger byte range needs to say where the Arrow
// payload actually ends.
func WithFooterOffset(offset int64) Option {
	return func(c *config) { c.footerOff = offset }
}

// WithDictionaryMemo injects a pre-populated dictionary registry, letting
// callers share dictionaries across multiple readers over related sources.
func WithDictionaryMemo(memo *dictMemo) Option {
	return func(c *config) { c.dictMemo = memo }
}

// WithProjection restricts both readers to the given top-level field
// indices (§4.2 "Projection"). Captured once at construction and applied
// to every subsequent batch.
func WithProjection(indices []int) Option {
	return func(c *config) { c.projection = indices }
}
