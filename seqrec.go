// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package seqrec writes and reads Fortran unformatted sequential records over
// io.Writer and io.Reader sinks.
//
// Semantics and design:
//   - Record framing: every record is self-delimited by a 4-byte payload byte
//     count written twice, once before the payload and once after it, in the
//     configured byte order. This is the convention used by unformatted
//     sequential Fortran I/O, so files produced here are readable by
//     Fortran-based solvers and vice versa.
//   - Columns: a record carries one to three parallel columns of equal length
//     (a single column, or x/y/z coordinate triples, or vertex-index triples).
//     The payload is row-major: row k emits column 0, column 1, … before row
//     k+1 begins.
//   - Byte order: chosen per Writer/Reader, independent of the host. Whether
//     element bytes need reversing is decided once per record against the
//     machine's native order; when the target order matches the host, element
//     bytes stream through untouched.
//   - Non-blocking aware: iox.ErrWouldBlock and iox.ErrMore are honored as
//     control-flow signals (re-exposed as seqrec.ErrWouldBlock / seqrec.ErrMore).
//     The default policy propagates ErrWouldBlock immediately; WithBlock or
//     WithRetryDelay emulate cooperative blocking on non-blocking sinks.
//
// Wire format, for a record of L rows, k columns, and element width W bytes
// (N = L*k*W, which must fit in a signed 32-bit integer):
//
//	[4 bytes: N, target byte order]
//	[N bytes: row-major elements, each W bytes in target byte order]
//	[4 bytes: N, target byte order — equal to the prefix]
//
// The library holds no state beyond the duration of one call, never opens or
// closes files, and never retries or logs; sink errors surface to the caller
// verbatim. A failed call leaves the sink position undefined past the last
// complete record.
package seqrec

import (
	"io"

	"code.hybscloud.com/iox"
)

// NewWriter returns a Writer that emits records to w.
//
// The caller owns w for the duration of each call and is responsible for
// opening and closing it; sequencing multiple records onto one sink is also
// the caller's concern.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	return &Writer{st: newStream(nil, w, opts...)}
}

// NewReader returns a Reader that consumes records from r.
func NewReader(r io.Reader, opts ...Option) *Reader {
	return &Reader{st: newStream(r, nil, opts...)}
}

// Writer writes self-delimited numeric records.
type Writer struct{ st *stream }

// Reader reads self-delimited numeric records.
type Reader struct{ st *stream }

// These are provided as package-level aliases so callers can reference the
// semantic control-flow errors without importing iox directly.
var (
	// ErrWouldBlock means “no further progress without waiting”.
	//
	// It is an expected, non-failure control-flow signal for non-blocking I/O.
	// Caller action: retry later, or configure RetryDelay to emulate
	// cooperative blocking on top of a non-blocking sink.
	ErrWouldBlock = iox.ErrWouldBlock

	// ErrMore means “this completion is usable and more completions will follow”.
	//
	// It is not io.EOF and not “try later”; the operation remains active.
	ErrMore = iox.ErrMore
)
