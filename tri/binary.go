// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tri

import (
	"io"

	"code.hybscloud.com/seqrec"
)

// WriteBinary writes m to w as a binary ".tri" file in the given format.
//
// Layout, as four unformatted sequential records in the format's byte order:
//
//	record 0: nNode, nTri          (two 4-byte integers)
//	record 1: node coordinates     (x,y,z per node; 4- or 8-byte floats)
//	record 2: vertex indices       (i1,i2,i3 per triangle; 4-byte integers)
//	record 3: component IDs        (one 4-byte integer per triangle)
//
// CompID must be populated. Any sink error propagates verbatim and leaves the
// file unreliable from the failed record onward.
func WriteBinary(w io.Writer, m *Mesh, f Format) error {
	if err := m.check(); err != nil {
		return err
	}
	if m.CompID == nil {
		return ErrNoCompID
	}
	order, coordWidth := f.params()
	rw := seqrec.NewWriter(w, seqrec.WithByteOrder(order))

	if err := rw.WriteInt32Record([]int32{int32(m.NNode()), int32(m.NTri())}); err != nil {
		return err
	}
	if coordWidth == 8 {
		if err := rw.WriteFloat64Record(m.X, m.Y, m.Z); err != nil {
			return err
		}
	} else {
		x, y, z := narrow(m.X), narrow(m.Y), narrow(m.Z)
		if err := rw.WriteFloat32Record(x, y, z); err != nil {
			return err
		}
	}
	if err := rw.WriteInt32Record(m.I1, m.I2, m.I3); err != nil {
		return err
	}
	return rw.WriteInt32Record(m.CompID)
}

func narrow(col []float64) []float32 {
	out := make([]float32, len(col))
	for i, v := range col {
		out[i] = float32(v)
	}
	return out
}
