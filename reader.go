// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqrec

import (
	"io"
	"math"

	"code.hybscloud.com/seqrec/internal/bo"
)

// ReadInt32 consumes one raw 4-byte integer in the target order, without
// record markers. It mirrors Writer.WriteInt32.
func (r *Reader) ReadInt32() (int32, error) {
	st := r.st
	if st.rd == nil {
		return 0, ErrInvalidArgument
	}
	u, err := st.readMarker()
	return int32(u), err
}

// ReadInt32Record consumes one record of 32-bit signed integers into the
// given columns.
//
// The caller-supplied columns declare the expected shape: their lengths must
// be equal, and the record's length marker must equal rows*columns*4 or
// ErrRecordLength is returned with nothing consumed past the leading marker.
// A trailing marker that disagrees with the leading one yields ErrRecordMarker;
// the record is corrupt and the stream position is unreliable.
//
// A clean io.EOF before the leading marker passes through, so callers can
// iterate records until end of stream.
func (r *Reader) ReadInt32Record(cols ...[]int32) error {
	st := r.st
	if st.rd == nil {
		return ErrInvalidArgument
	}
	lens := make([]int, len(cols))
	for i, c := range cols {
		lens[i] = len(c)
	}
	rows, payload, err := recordSize(4, lens...)
	if err != nil {
		return err
	}
	if err := st.beginRecord(payload); err != nil {
		return err
	}
	swap := st.swapped()
	nat := bo.Native()
	buf := st.scratch()
	arity := len(cols)
	elem, total := 0, rows*arity
	for elem < total {
		chunk := min(len(buf), (total-elem)*4)
		if err := st.readFull(buf[:chunk]); err != nil {
			if err == io.EOF {
				return io.ErrUnexpectedEOF
			}
			return err
		}
		for off := 0; off < chunk; off += 4 {
			u := nat.Uint32(buf[off:])
			if swap {
				u = bo.Swap32(u)
			}
			cols[elem%arity][elem/arity] = int32(u)
			elem++
		}
	}
	return st.endRecord(payload)
}

// ReadFloat32Record consumes one record of IEEE-754 single-precision elements.
// Shape and marker semantics match ReadInt32Record; bit patterns, including
// NaN payloads, reproduce exactly.
func (r *Reader) ReadFloat32Record(cols ...[]float32) error {
	st := r.st
	if st.rd == nil {
		return ErrInvalidArgument
	}
	lens := make([]int, len(cols))
	for i, c := range cols {
		lens[i] = len(c)
	}
	rows, payload, err := recordSize(4, lens...)
	if err != nil {
		return err
	}
	if err := st.beginRecord(payload); err != nil {
		return err
	}
	swap := st.swapped()
	nat := bo.Native()
	buf := st.scratch()
	arity := len(cols)
	elem, total := 0, rows*arity
	for elem < total {
		chunk := min(len(buf), (total-elem)*4)
		if err := st.readFull(buf[:chunk]); err != nil {
			if err == io.EOF {
				return io.ErrUnexpectedEOF
			}
			return err
		}
		for off := 0; off < chunk; off += 4 {
			u := nat.Uint32(buf[off:])
			if swap {
				u = bo.Swap32(u)
			}
			cols[elem%arity][elem/arity] = math.Float32frombits(u)
			elem++
		}
	}
	return st.endRecord(payload)
}

// ReadFloat64Record consumes one record of IEEE-754 double-precision elements.
// Shape and marker semantics match ReadInt32Record.
func (r *Reader) ReadFloat64Record(cols ...[]float64) error {
	st := r.st
	if st.rd == nil {
		return ErrInvalidArgument
	}
	lens := make([]int, len(cols))
	for i, c := range cols {
		lens[i] = len(c)
	}
	rows, payload, err := recordSize(8, lens...)
	if err != nil {
		return err
	}
	if err := st.beginRecord(payload); err != nil {
		return err
	}
	swap := st.swapped()
	nat := bo.Native()
	buf := st.scratch()
	arity := len(cols)
	elem, total := 0, rows*arity
	for elem < total {
		chunk := min(len(buf), (total-elem)*8)
		if err := st.readFull(buf[:chunk]); err != nil {
			if err == io.EOF {
				return io.ErrUnexpectedEOF
			}
			return err
		}
		for off := 0; off < chunk; off += 8 {
			u := nat.Uint64(buf[off:])
			if swap {
				u = bo.Swap64(u)
			}
			cols[elem%arity][elem/arity] = math.Float64frombits(u)
			elem++
		}
	}
	return st.endRecord(payload)
}

// beginRecord consumes the leading marker and checks it against the caller's
// expected payload size.
func (s *stream) beginRecord(payload int64) error {
	u, err := s.readMarker()
	if err != nil {
		return err
	}
	if int64(u) != payload {
		return ErrRecordLength
	}
	return nil
}

// endRecord consumes the trailing marker and checks it mirrors the prefix.
func (s *stream) endRecord(payload int64) error {
	u, err := s.readMarker()
	if err != nil {
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	if int64(u) != payload {
		return ErrRecordMarker
	}
	return nil
}
