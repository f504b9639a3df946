// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqrec

import (
	"math"

	"code.hybscloud.com/seqrec/internal/bo"
)

// WriteInt32 emits one raw 4-byte integer in the target order, without record
// markers. It is the building block for hand-rolled headers.
func (w *Writer) WriteInt32(v int32) error {
	st := w.st
	if st.wr == nil {
		return ErrInvalidArgument
	}
	return st.writeMarker(uint32(v))
}

// WriteInt32Record emits one self-delimited record of 32-bit signed integers.
//
// Between one and three columns of equal length form the record; the payload
// is row-major across the columns. The record markers and every element are
// written in the target byte order. On failure the sink may hold a partial
// record; callers must treat the file as unreliable from this record onward.
func (w *Writer) WriteInt32Record(cols ...[]int32) error {
	st := w.st
	if st.wr == nil {
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
	if err := st.writeMarker(uint32(payload)); err != nil {
		return err
	}
	swap := st.swapped()
	nat := bo.Native()
	buf := st.scratch()
	off := 0
	for k := 0; k < rows; k++ {
		for _, c := range cols {
			if off == len(buf) {
				if err := st.writeFull(buf); err != nil {
					return err
				}
				off = 0
			}
			u := uint32(c[k])
			if swap {
				u = bo.Swap32(u)
			}
			nat.PutUint32(buf[off:], u)
			off += 4
		}
	}
	if off > 0 {
		if err := st.writeFull(buf[:off]); err != nil {
			return err
		}
	}
	return st.writeMarker(uint32(payload))
}

// WriteFloat32Record emits one record of IEEE-754 single-precision elements.
//
// Elements are converted as raw bit patterns, so NaN payload bits and signed
// infinities reproduce exactly. Column and ordering semantics match
// WriteInt32Record.
func (w *Writer) WriteFloat32Record(cols ...[]float32) error {
	st := w.st
	if st.wr == nil {
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
	if err := st.writeMarker(uint32(payload)); err != nil {
		return err
	}
	swap := st.swapped()
	nat := bo.Native()
	buf := st.scratch()
	off := 0
	for k := 0; k < rows; k++ {
		for _, c := range cols {
			if off == len(buf) {
				if err := st.writeFull(buf); err != nil {
					return err
				}
				off = 0
			}
			u := math.Float32bits(c[k])
			if swap {
				u = bo.Swap32(u)
			}
			nat.PutUint32(buf[off:], u)
			off += 4
		}
	}
	if off > 0 {
		if err := st.writeFull(buf[:off]); err != nil {
			return err
		}
	}
	return st.writeMarker(uint32(payload))
}

// WriteFloat64Record emits one record of IEEE-754 double-precision elements.
// Column and ordering semantics match WriteInt32Record.
func (w *Writer) WriteFloat64Record(cols ...[]float64) error {
	st := w.st
	if st.wr == nil {
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
	if err := st.writeMarker(uint32(payload)); err != nil {
		return err
	}
	swap := st.swapped()
	nat := bo.Native()
	buf := st.scratch()
	off := 0
	for k := 0; k < rows; k++ {
		for _, c := range cols {
			if off == len(buf) {
				if err := st.writeFull(buf); err != nil {
					return err
				}
				off = 0
			}
			u := math.Float64bits(c[k])
			if swap {
				u = bo.Swap64(u)
			}
			nat.PutUint64(buf[off:], u)
			off += 8
		}
	}
	if off > 0 {
		if err := st.writeFull(buf[:off]); err != nil {
			return err
		}
	}
	return st.writeMarker(uint32(payload))
}
