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
	"fmt"

	"github.com/lakefmt/arrow"
)

// Record is the concrete arrow.Record: a Schema plus one same-length Array
// per field (§3, "RecordBatch").
type Record struct {
	schema *arrow.Schema
	cols   []arrow.Array
	rows   int64
}

// NewRecord builds a Record, retaining each column. rows must equal every
// column's length; the reconstruction engine always supplies this from the
// wire's own declared row count rather than trusting column lengths to
// agree (§4.2, "explicit row_count").
func NewRecord(schema *arrow.Schema, cols []arrow.Array, rows int64) (*Record, error) {
	if len(cols) != schema.NumFields() {
		return nil, fmt.Errorf("arrow/array: record has %d columns, schema has %d fields", len(cols), schema.NumFields())
	}
	for i, c := range cols {
		if int64(c.Len()) != rows {
			return nil, fmt.Errorf("arrow/array: column %d (%s) has length %d, want %d", i, schema.Field(i).Name, c.Len(), rows)
		}
		c.Retain()
	}
	return &Record{schema: schema, cols: append([]arrow.Array(nil), cols...), rows: rows}, nil
}

func (r *Record) Schema() *arrow.Schema  { return r.schema }
func (r *Record) Column(i int) arrow.Array { return r.cols[i] }
func (r *Record) ColumnName(i int) string  { return r.schema.Field(i).Name }
func (r *Record) NumCols() int64           { return int64(len(r.cols)) }
func (r *Record) NumRows() int64           { return r.rows }

func (r *Record) Retain() {
	for _, c := range r.cols {
		c.Retain()
	}
}

func (r *Record) Release() {
	for _, c := range r.cols {
		c.Release()
	}
}
