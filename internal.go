// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqrec

import (
	"encoding/binary"
	"io"
	"runtime"
	"time"

	"code.hybscloud.com/seqrec/internal/bo"
)

const (
	// maxColumns bounds the arity of one record: single columns, pairs, or
	// x/y/z style triples.
	maxColumns = 3

	// maxRecordLen is the largest payload byte count representable by a
	// signed 32-bit record marker.
	maxRecordLen = 1<<31 - 1

	// scratchLen sizes the reusable encode buffer; a multiple of 8 so element
	// boundaries never straddle a flush.
	scratchLen = 4096
)

type stream struct {
	rd io.Reader
	wr io.Writer

	order binary.ByteOrder

	retryDelay time.Duration

	// marker holds one 4-byte record marker or scalar.
	marker [4]byte

	// buf is the reusable element scratch buffer, allocated on first use.
	// Zero alloc steady-state.
	buf []byte
}

func newStream(r io.Reader, w io.Writer, opts ...Option) *stream {
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}
	return &stream{
		rd:         r,
		wr:         w,
		order:      o.ByteOrder,
		retryDelay: o.RetryDelay,
	}
}

// swapped reports whether the target order differs from the host order.
// Decided once per record, not per element.
func (s *stream) swapped() bool { return s.order != bo.Native() }

func (s *stream) scratch() []byte {
	if s.buf == nil {
		s.buf = make([]byte, scratchLen)
	}
	return s.buf
}

func (s *stream) waitOnceOnWouldBlock() bool {
	// returns whether the caller should retry
	if s.retryDelay < 0 {
		return false
	}
	if s.retryDelay == 0 {
		// Cooperative yield to avoid burning a full core when emulating
		// blocking on top of a non-blocking sink.
		runtime.Gosched()
		return true
	}
	time.Sleep(s.retryDelay)
	return true
}

// writeFull writes all of p to the sink, honoring the would-block policy.
// Any other sink error propagates verbatim.
func (s *stream) writeFull(p []byte) error {
	for len(p) > 0 {
		n, err := s.wr.Write(p)
		// Guard against broken Writers that violate the io.Writer contract by
		// returning (0, nil) on a non-empty buffer. Without this, the record
		// writer can spin indefinitely.
		if n == 0 && err == nil {
			return io.ErrShortWrite
		}
		p = p[n:]
		if err == nil {
			continue
		}
		if err == ErrWouldBlock && s.waitOnceOnWouldBlock() {
			continue
		}
		if len(p) == 0 && (err == ErrWouldBlock || err == ErrMore) {
			// The buffer is fully written; the signal belongs to a later call.
			return nil
		}
		return err
	}
	return nil
}

// readFull fills all of p from the sink. io.EOF after partial progress is
// reported as io.ErrUnexpectedEOF; at an exact record boundary it passes
// through so callers can distinguish a clean end of stream.
func (s *stream) readFull(p []byte) error {
	total := 0
	for total < len(p) {
		n, err := s.rd.Read(p[total:])
		// Same contract guard as writeFull, for Readers returning (0, nil).
		if n == 0 && err == nil {
			return io.ErrNoProgress
		}
		total += n
		if err == nil {
			continue
		}
		if err == ErrMore {
			// Usable completion with more to come: keep reading.
			continue
		}
		if err == ErrWouldBlock && s.waitOnceOnWouldBlock() {
			continue
		}
		if err == io.EOF && total > 0 && total < len(p) {
			return io.ErrUnexpectedEOF
		}
		if total == len(p) && (err == io.EOF || err == ErrWouldBlock) {
			return nil
		}
		return err
	}
	return nil
}

// writeMarker emits one 4-byte value in the target order: a record-length
// marker or a raw scalar.
func (s *stream) writeMarker(u uint32) error {
	if s.swapped() {
		u = bo.Swap32(u)
	}
	bo.Native().PutUint32(s.marker[:], u)
	return s.writeFull(s.marker[:])
}

// readMarker consumes one 4-byte value in the target order.
func (s *stream) readMarker() (uint32, error) {
	if err := s.readFull(s.marker[:]); err != nil {
		return 0, err
	}
	u := bo.Native().Uint32(s.marker[:])
	if s.swapped() {
		u = bo.Swap32(u)
	}
	return u, nil
}

// recordSize validates the column count and lengths and returns the row count
// and payload byte count. Violations are reported before any byte is emitted.
func recordSize(width int, lens ...int) (rows int, payload int64, err error) {
	if len(lens) < 1 || len(lens) > maxColumns {
		return 0, 0, ErrInvalidArgument
	}
	rows = lens[0]
	for _, n := range lens[1:] {
		if n != rows {
			return 0, 0, ErrColumnMismatch
		}
	}
	payload = int64(rows) * int64(len(lens)) * int64(width)
	if payload > maxRecordLen {
		return 0, 0, ErrTooLong
	}
	return rows, payload, nil
}
