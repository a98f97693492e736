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

import "golang.org/x/xerrors"

// Kind classifies why a read failed (§7).
type Kind int

const (
	KindIO Kind = iota
	KindInvalidFormat
	KindInvalidMetadata
	KindSchemaMismatch
	KindUnsupportedFeature
	KindDecodeError
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindInvalidFormat:
		return "invalid format"
	case KindInvalidMetadata:
		return "invalid metadata"
	case KindSchemaMismatch:
		return "schema mismatch"
	case KindUnsupportedFeature:
		return "unsupported feature"
	case KindDecodeError:
		return "decode error"
	default:
		return "unknown"
	}
}

// Error wraps a Kind with a message and, where one exists, the underlying
// cause, following the %w-wrapping idiom used throughout the package.
type Error struct {
	Kind  Kind
	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return "arrow/ipc: " + e.msg + ": " + e.cause.Error()
	}
	return "arrow/ipc: " + e.msg
}

func (e *Error) Unwrap() error { return e.cause }

func newError(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, msg: xerrors.Errorf(format, args...).Error()}
}

func wrapError(kind Kind, cause error, format string, args ...interface{}) error {
	return &Error{Kind: kind, msg: xerrors.Errorf(format, args...).Error(), cause: cause}
}
