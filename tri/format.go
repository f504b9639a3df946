// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tri

import (
	"encoding/binary"

	"code.hybscloud.com/seqrec/internal/bo"
)

// Binary interchange formats.
//
// Single source of truth — format → (byte order, coordinate width):
//   - B4  → BigEndian,    4-byte coordinates (Cart3D default)
//   - LB4 → LittleEndian, 4-byte coordinates
//   - B8  → BigEndian,    8-byte coordinates
//   - LB8 → LittleEndian, 8-byte coordinates
//   - Native* variants use the host byte order (single-machine pipelines).
//
// Index and component records are 4-byte integers in every format; only the
// coordinate record width varies.

// Format selects the byte order and coordinate precision of a binary ".tri"
// file.
type Format uint8

const (
	B4 Format = iota
	LB4
	B8
	LB8
	Native4
	Native8
)

func (f Format) params() (order binary.ByteOrder, coordWidth int) {
	switch f {
	case B4:
		return binary.BigEndian, 4
	case LB4:
		return binary.LittleEndian, 4
	case B8:
		return binary.BigEndian, 8
	case LB8:
		return binary.LittleEndian, 8
	case Native4:
		return bo.Native(), 4
	case Native8:
		return bo.Native(), 8
	default:
		return binary.BigEndian, 4
	}
}

func (f Format) String() string {
	switch f {
	case B4:
		return "b4"
	case LB4:
		return "lb4"
	case B8:
		return "b8"
	case LB8:
		return "lb8"
	case Native4:
		return "ne4"
	case Native8:
		return "ne8"
	default:
		return "b4"
	}
}
