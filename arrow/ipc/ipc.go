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

// Package ipc implements the Arrow IPC file and stream readers: framing,
// footer/schema decoding, dictionary accumulation, projection, and the
// array reconstruction engine that turns field nodes + buffer descriptors
// into a RecordBatch (spec §4.2, §4.4, §4.5).
package ipc

import "github.com/lakefmt/arrow/internal/flatbuf"

// Magic is the 6-byte file-format marker appearing at both the head and
// the tail of a file (§6).
var Magic = [6]byte{'A', 'R', 'R', 'O', 'W', '1'}

// continuationMarker prefixes every message's length field once a reader
// can no longer assume 4-byte-aligned legacy framing (§6).
const continuationMarker uint32 = 0xFFFFFFFF

// padTo8 rounds n up to the next multiple of 8, the alignment every
// metadata block and body region is padded to on the wire.
func padTo8(n int64) int64 { return (n + 7) &^ 7 }

// v1MetadataVersion is the legacy version value that SUPPLEMENTED FEATURES
// documents as a wildcard: when the file's footer declares V1, a message of
// any metadata version is accepted (see versionCompatible).
const v1MetadataVersion = flatbuf.MetadataVersionV1
